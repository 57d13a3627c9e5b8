package orders

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"herbadmin/frontend/shared/context"
	"herbadmin/frontend/shared/nav"
	"herbadmin/frontend/shared/status"
	"herbadmin/infrastructure/backend"
	"herbadmin/infrastructure/config"
	"herbadmin/models"
)

// A fresh order form starts with this many empty herb rows.
const defaultBlankRows = 5

// OrderFormQueryHandler renders the order form, either empty or filled with
// an existing order.
func OrderFormQueryHandler(client *backend.Client, cfg config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := context.GetSessionFromContext(r.Context())
		if !ok {
			http.Redirect(w, r, "/admin", http.StatusSeeOther)
			return
		}

		externalID := chi.URLParam(r, "externalID")

		data := OrderFormData{
			Nav:       nav.BuildTopNavData(session, cfg.DefaultBatchID, cfg.BillID),
			IsNew:     externalID == "",
			BlankRows: defaultBlankRows,
			Status:    status.FromQuery(r.URL.Query()),
		}

		// An unavailable catalog leaves the herb selects empty instead of
		// replacing the whole form with an error page.
		herbs, err := client.Herbs(r.Context())
		if err != nil {
			slog.Error("orders: herb catalog unavailable", slog.Any("err", err))
		}
		data.Herbs = herbs

		if externalID != "" {
			order, err := client.Order(r.Context(), session.Credential, externalID)
			switch {
			case errors.Is(err, backend.ErrNotFound):
				data.NotFound = true
			case err != nil:
				slog.Error("orders: failed to load order", slog.String("external_id", externalID), slog.Any("err", err))
				http.Error(w, "failed to load order", http.StatusInternalServerError)
				return
			default:
				data.Order = order
			}
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := OrderFormPage(data).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render order form", http.StatusInternalServerError)
			return
		}
	}
}

// SaveOrderCommandHandler validates the posted order and either creates a
// new one or updates the existing one.
func SaveOrderCommandHandler(client *backend.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := context.GetSessionFromContext(r.Context())
		if !ok {
			http.Redirect(w, r, "/admin", http.StatusSeeOther)
			return
		}

		externalID := chi.URLParam(r, "externalID")
		formPath := "/admin/orders/new"
		if externalID != "" {
			formPath = "/admin/orders/" + externalID
		}

		if err := r.ParseForm(); err != nil {
			http.Redirect(w, r, formPath+"?"+status.Invalid("Ungültige Formulardaten.").Query(), http.StatusSeeOther)
			return
		}

		order := parseOrderForm(r)
		order.ExternalID = externalID
		if err := ValidateOrder(order); err != nil {
			http.Redirect(w, r, formPath+"?"+status.Invalid(err.Error()).Query(), http.StatusSeeOther)
			return
		}

		if externalID == "" {
			if err := client.CreateOrder(r.Context(), session.Credential, order); err != nil {
				slog.Error("orders: failed to create order", slog.Any("err", err))
				http.Redirect(w, r, formPath+"?"+status.Failed("Beim Abschicken der Bestellung ist ein Fehler aufgetreten!").Query(), http.StatusSeeOther)
				return
			}
			http.Redirect(w, r, "/admin/orders?"+status.OK("Die Bestellung wurde gespeichert!").Query(), http.StatusSeeOther)
			return
		}

		if err := client.UpdateOrder(r.Context(), session.Credential, order); err != nil {
			slog.Error("orders: failed to update order", slog.String("external_id", externalID), slog.Any("err", err))
			http.Redirect(w, r, formPath+"?"+status.Failed("Beim Abschicken der Bestellung ist ein Fehler aufgetreten!").Query(), http.StatusSeeOther)
			return
		}
		http.Redirect(w, r, formPath+"?"+status.OK("Die Bestellung wurde aktualisiert!").Query(), http.StatusSeeOther)
	}
}

// parseOrderForm reads the posted fields and drops herb rows that are
// entirely empty. Rows with one side filled survive so validation can point
// at them.
func parseOrderForm(r *http.Request) models.Order {
	order := models.Order{
		FirstName: strings.TrimSpace(r.FormValue("first_name")),
		LastName:  strings.TrimSpace(r.FormValue("last_name")),
		Mail:      strings.TrimSpace(r.FormValue("mail")),
	}

	rows, err := strconv.Atoi(r.FormValue("rows"))
	if err != nil || rows < 0 || rows > 500 {
		rows = 0
	}
	for i := 0; i < rows; i++ {
		idx := strconv.Itoa(i)
		rawHerb := strings.TrimSpace(r.FormValue("herb_id_" + idx))
		rawQuantity := strings.TrimSpace(r.FormValue("quantity_" + idx))
		if rawHerb == "" && rawQuantity == "" {
			continue
		}
		herbID, _ := strconv.ParseInt(rawHerb, 10, 64)
		quantity, _ := strconv.ParseFloat(rawQuantity, 64)
		order.Lines = append(order.Lines, models.OrderLine{HerbID: herbID, Quantity: quantity})
	}
	return order
}
