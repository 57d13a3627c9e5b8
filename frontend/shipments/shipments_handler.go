package shipments

import (
	"log/slog"
	"net/http"
	"sort"
	"strconv"

	"github.com/go-chi/chi/v5"

	"herbadmin/frontend/shared/context"
	"herbadmin/frontend/shared/nav"
	"herbadmin/frontend/shared/status"
	"herbadmin/infrastructure/backend"
	"herbadmin/infrastructure/config"
	"herbadmin/models"
)

type ShipmentsPageData struct {
	Nav       nav.TopNavData
	BatchID   int64
	Shipments []models.Shipment
	Status    status.Status
}

// ShipmentsPageQueryHandler lists the deliveries of a batch, oldest first.
func ShipmentsPageQueryHandler(client *backend.Client, cfg config.Config) http.HandlerFunc {
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

		shipments, err := client.Shipments(r.Context(), session.Credential, batchID)
		if err != nil {
			slog.Error("shipments: failed to load shipments", slog.Int64("batch_id", batchID), slog.Any("err", err))
			http.Error(w, "failed to load shipments", http.StatusInternalServerError)
			return
		}
		sort.SliceStable(shipments, func(i, j int) bool { return shipments[i].Date < shipments[j].Date })

		data := ShipmentsPageData{
			Nav:       nav.BuildTopNavData(session, cfg.DefaultBatchID, cfg.BillID),
			BatchID:   batchID,
			Shipments: shipments,
			Status:    status.FromQuery(r.URL.Query()),
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := ShipmentsPage(data).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render shipments", http.StatusInternalServerError)
			return
		}
	}
}
