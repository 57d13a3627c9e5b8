package bill

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"herbadmin/frontend/shared/context"
	"herbadmin/frontend/shared/money"
	"herbadmin/frontend/shared/nav"
	"herbadmin/frontend/shared/status"
	"herbadmin/infrastructure/backend"
	"herbadmin/infrastructure/config"
	"herbadmin/models"
)

const defaultBlankRows = 5

type BillPageData struct {
	Nav       nav.TopNavData
	IsNew     bool
	Bill      models.Bill
	Herbs     []models.Herb
	BlankRows int
	Status    status.Status
}

// BillPageQueryHandler renders the supplier bill form. A bill that does not
// exist yet renders as an empty form and is created on save.
func BillPageQueryHandler(client *backend.Client, cfg config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := context.GetSessionFromContext(r.Context())
		if !ok {
			http.Redirect(w, r, "/admin", http.StatusSeeOther)
			return
		}

		billID, err := strconv.ParseInt(chi.URLParam(r, "billID"), 10, 64)
		if err != nil {
			http.NotFound(w, r)
			return
		}

		data := BillPageData{
			Nav:       nav.BuildTopNavData(session, cfg.DefaultBatchID, cfg.BillID),
			BlankRows: defaultBlankRows,
			Status:    status.FromQuery(r.URL.Query()),
		}

		// An unavailable catalog leaves the herb selects empty instead of
		// replacing the whole form with an error page.
		herbs, err := client.Herbs(r.Context())
		if err != nil {
			slog.Error("bill: herb catalog unavailable", slog.Any("err", err))
		}
		data.Herbs = herbs

		bill, err := client.Bill(r.Context(), session.Credential, billID)
		switch {
		case errors.Is(err, backend.ErrNotFound):
			data.IsNew = true
			data.Bill = models.Bill{ID: billID}
		case err != nil:
			slog.Error("bill: failed to load bill", slog.Int64("bill_id", billID), slog.Any("err", err))
			http.Error(w, "failed to load bill", http.StatusInternalServerError)
			return
		default:
			data.Bill = bill
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := BillPage(data).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render bill", http.StatusInternalServerError)
			return
		}
	}
}

// SaveBillCommandHandler validates the posted bill and creates or updates
// it. Unit prices travel as cents.
func SaveBillCommandHandler(client *backend.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := context.GetSessionFromContext(r.Context())
		if !ok {
			http.Redirect(w, r, "/admin", http.StatusSeeOther)
			return
		}

		billID, err := strconv.ParseInt(chi.URLParam(r, "billID"), 10, 64)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		formPath := "/admin/bills/" + strconv.FormatInt(billID, 10)

		if err := r.ParseForm(); err != nil {
			http.Redirect(w, r, formPath+"?"+status.Invalid("Ungültige Formulardaten.").Query(), http.StatusSeeOther)
			return
		}

		bill, err := parseBillForm(r)
		if err != nil {
			http.Redirect(w, r, formPath+"?"+status.Invalid(err.Error()).Query(), http.StatusSeeOther)
			return
		}
		bill.ID = billID
		if err := ValidateBill(bill); err != nil {
			http.Redirect(w, r, formPath+"?"+status.Invalid(err.Error()).Query(), http.StatusSeeOther)
			return
		}

		if r.FormValue("exists") != "1" {
			if err := client.CreateBill(r.Context(), session.Credential, bill); err != nil {
				slog.Error("bill: failed to create bill", slog.Int64("bill_id", billID), slog.Any("err", err))
				http.Redirect(w, r, formPath+"?"+status.Failed("Beim Abschicken der Rechnung ist ein Fehler aufgetreten!").Query(), http.StatusSeeOther)
				return
			}
			http.Redirect(w, r, formPath+"?"+status.OK("Die Rechnung wurde gespeichert!").Query(), http.StatusSeeOther)
			return
		}

		if err := client.UpdateBill(r.Context(), session.Credential, bill); err != nil {
			slog.Error("bill: failed to update bill", slog.Int64("bill_id", billID), slog.Any("err", err))
			http.Redirect(w, r, formPath+"?"+status.Failed("Beim Abschicken der Rechnung ist ein Fehler aufgetreten!").Query(), http.StatusSeeOther)
			return
		}
		http.Redirect(w, r, formPath+"?"+status.OK("Die Rechnung wurde aktualisiert!").Query(), http.StatusSeeOther)
	}
}

// parseBillForm reads the posted fields. Rows that are entirely empty are
// skipped; any remaining row with an unparseable price is a validation
// error.
func parseBillForm(r *http.Request) (models.Bill, error) {
	bill := models.Bill{
		Date: strings.TrimSpace(r.FormValue("date")),
		VAT:  -1,
	}
	if rawVAT := strings.TrimSpace(r.FormValue("vat")); rawVAT != "" {
		vat, err := strconv.ParseFloat(rawVAT, 64)
		if err != nil || vat < 0 {
			return models.Bill{}, ErrVATRequired
		}
		bill.VAT = vat
	}

	rows, err := strconv.Atoi(r.FormValue("rows"))
	if err != nil || rows < 0 || rows > 500 {
		rows = 0
	}
	for i := 0; i < rows; i++ {
		idx := strconv.Itoa(i)
		rawHerb := strings.TrimSpace(r.FormValue("herb_id_" + idx))
		rawPrice := strings.TrimSpace(r.FormValue("unit_price_" + idx))
		rawQuantity := strings.TrimSpace(r.FormValue("quantity_" + idx))
		if rawHerb == "" && rawPrice == "" && rawQuantity == "" {
			continue
		}

		unitPrice, err := money.ParsePrice(rawPrice)
		if err != nil {
			return models.Bill{}, ErrInvalidPrices
		}
		herbID, _ := strconv.ParseInt(rawHerb, 10, 64)
		quantity, _ := strconv.ParseFloat(rawQuantity, 64)
		bill.Lines = append(bill.Lines, models.BillLine{HerbID: herbID, UnitPrice: unitPrice, Quantity: quantity})
	}
	return bill, nil
}
