package shipments

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"herbadmin/frontend/shared/context"
	"herbadmin/frontend/shared/nav"
	"herbadmin/frontend/shared/status"
	"herbadmin/infrastructure/backend"
	"herbadmin/infrastructure/config"
	"herbadmin/models"
)

const defaultBlankRows = 5

type ShipmentFormData struct {
	Nav       nav.TopNavData
	BatchID   int64
	IsNew     bool
	NotFound  bool
	Shipment  models.Shipment
	Herbs     []models.Herb
	BlankRows int
	Status    status.Status
}

// ShipmentFormQueryHandler renders the shipment form, empty for a new
// delivery or filled with an existing one.
func ShipmentFormQueryHandler(client *backend.Client, cfg config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := context.GetSessionFromContext(r.Context())
		if !ok {
			http.Redirect(w, r, "/admin", http.StatusSeeOther)
			return
		}

		batchID, err := strconv.ParseInt(chi.URLParam(r, "batchID"), 10, 64)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		rawShipmentID := chi.URLParam(r, "shipmentID")

		data := ShipmentFormData{
			Nav:       nav.BuildTopNavData(session, cfg.DefaultBatchID, cfg.BillID),
			BatchID:   batchID,
			IsNew:     rawShipmentID == "",
			BlankRows: defaultBlankRows,
			Status:    status.FromQuery(r.URL.Query()),
		}

		// An unavailable catalog leaves the herb selects empty instead of
		// replacing the whole form with an error page.
		herbs, err := client.Herbs(r.Context())
		if err != nil {
			slog.Error("shipments: herb catalog unavailable", slog.Any("err", err))
		}
		data.Herbs = herbs

		if rawShipmentID == "" {
			data.Shipment.Date = time.Now().Format("2006-01-02")
		} else {
			shipmentID, err := strconv.ParseInt(rawShipmentID, 10, 64)
			if err != nil {
				http.NotFound(w, r)
				return
			}
			shipment, err := client.Shipment(r.Context(), session.Credential, batchID, shipmentID)
			switch {
			case errors.Is(err, backend.ErrNotFound):
				data.NotFound = true
			case err != nil:
				slog.Error("shipments: failed to load shipment", slog.Int64("shipment_id", shipmentID), slog.Any("err", err))
				http.Error(w, "failed to load shipment", http.StatusInternalServerError)
				return
			default:
				data.Shipment = shipment
			}
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := ShipmentFormPage(data).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render shipment form", http.StatusInternalServerError)
			return
		}
	}
}

// SaveShipmentCommandHandler validates the posted delivery and creates or
// updates it.
func SaveShipmentCommandHandler(client *backend.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := context.GetSessionFromContext(r.Context())
		if !ok {
			http.Redirect(w, r, "/admin", http.StatusSeeOther)
			return
		}

		batchID, err := strconv.ParseInt(chi.URLParam(r, "batchID"), 10, 64)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		rawShipmentID := chi.URLParam(r, "shipmentID")

		basePath := "/admin/order_batches/" + strconv.FormatInt(batchID, 10) + "/shipments"
		formPath := basePath + "/new"
		if rawShipmentID != "" {
			formPath = basePath + "/" + rawShipmentID
		}

		if err := r.ParseForm(); err != nil {
			http.Redirect(w, r, formPath+"?"+status.Invalid("Ungültige Formulardaten.").Query(), http.StatusSeeOther)
			return
		}

		shipment := parseShipmentForm(r)
		if err := ValidateShipment(shipment); err != nil {
			http.Redirect(w, r, formPath+"?"+status.Invalid(err.Error()).Query(), http.StatusSeeOther)
			return
		}

		if rawShipmentID == "" {
			if err := client.CreateShipment(r.Context(), session.Credential, batchID, shipment); err != nil {
				slog.Error("shipments: failed to create shipment", slog.Int64("batch_id", batchID), slog.Any("err", err))
				http.Redirect(w, r, formPath+"?"+status.Failed("Beim Abschicken der Lieferungsinformationen ist ein Fehler aufgetreten!").Query(), http.StatusSeeOther)
				return
			}
			http.Redirect(w, r, basePath+"?"+status.OK("Die Lieferungsinformationen wurden gespeichert!").Query(), http.StatusSeeOther)
			return
		}

		shipment.ID, err = strconv.ParseInt(rawShipmentID, 10, 64)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		if err := client.UpdateShipment(r.Context(), session.Credential, batchID, shipment); err != nil {
			slog.Error("shipments: failed to update shipment", slog.Int64("shipment_id", shipment.ID), slog.Any("err", err))
			http.Redirect(w, r, formPath+"?"+status.Failed("Beim Abschicken der Lieferungsinformationen ist ein Fehler aufgetreten!").Query(), http.StatusSeeOther)
			return
		}
		http.Redirect(w, r, formPath+"?"+status.OK("Die Lieferungsinformationen wurden aktualisiert!").Query(), http.StatusSeeOther)
	}
}

func parseShipmentForm(r *http.Request) models.Shipment {
	shipment := models.Shipment{
		Date: strings.TrimSpace(r.FormValue("date")),
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
		shipment.Lines = append(shipment.Lines, models.ShipmentLine{HerbID: herbID, Quantity: quantity})
	}
	return shipment
}
