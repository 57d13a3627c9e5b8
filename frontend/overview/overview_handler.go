package overview

import (
	"errors"
	"log/slog"
	"net/http"
	"slices"
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

type OverviewPageData struct {
	Nav      nav.TopNavData
	NotFound bool
	Batch    models.OrderBatch
	Stats    []models.HerbStat
	Status   status.Status
}

// OverviewPageQueryHandler renders one batch with its reconciled per-herb
// quantities.
func OverviewPageQueryHandler(client *backend.Client, cfg config.Config) http.HandlerFunc {
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

		data := OverviewPageData{
			Nav:    nav.BuildTopNavData(session, cfg.DefaultBatchID, cfg.BillID),
			Status: status.FromQuery(r.URL.Query()),
		}

		batch, err := client.OrderBatch(r.Context(), session.Credential, batchID)
		switch {
		case errors.Is(err, backend.ErrNotFound):
			data.NotFound = true
		case err != nil:
			slog.Error("overview: failed to load order batch", slog.Int64("batch_id", batchID), slog.Any("err", err))
			http.Error(w, "failed to load order batch", http.StatusInternalServerError)
			return
		default:
			data.Batch = batch
			stats, err := client.OrderBatchStats(r.Context(), session.Credential, batchID)
			if err != nil {
				slog.Error("overview: failed to load stats", slog.Int64("batch_id", batchID), slog.Any("err", err))
				http.Error(w, "failed to load stats", http.StatusInternalServerError)
				return
			}
			data.Stats = Reconcile(stats)
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := OverviewPage(data).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render overview", http.StatusInternalServerError)
			return
		}
	}
}

// UpdateBatchCommandHandler saves name and lifecycle state of a batch.
func UpdateBatchCommandHandler(client *backend.Client) http.HandlerFunc {
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
		formPath := "/admin/order_batches/" + strconv.FormatInt(batchID, 10)

		if err := r.ParseForm(); err != nil {
			http.Redirect(w, r, formPath+"?"+status.Invalid("Ungültige Formulardaten.").Query(), http.StatusSeeOther)
			return
		}

		name := strings.TrimSpace(r.FormValue("name"))
		state := strings.TrimSpace(r.FormValue("order_state"))
		if name == "" {
			http.Redirect(w, r, formPath+"?"+status.Invalid("Bitte gib den Namen für die Sammelbestellung ein!").Query(), http.StatusSeeOther)
			return
		}
		if state == "" {
			http.Redirect(w, r, formPath+"?"+status.Invalid("Bitte gib den Prozessstatus für die Sammelbestellung ein!").Query(), http.StatusSeeOther)
			return
		}
		if !slices.Contains(models.OrderStates, state) {
			http.Redirect(w, r, formPath+"?"+status.Invalid("Bitte gib den Prozessstatus für die Sammelbestellung ein!").Query(), http.StatusSeeOther)
			return
		}

		batch := models.OrderBatch{ID: batchID, Name: name, OrderState: state}
		if err := client.UpdateOrderBatch(r.Context(), session.Credential, batch); err != nil {
			slog.Error("overview: failed to update order batch", slog.Int64("batch_id", batchID), slog.Any("err", err))
			http.Redirect(w, r, formPath+"?"+status.Failed("Beim Speichern der Sammelbestellung ist ein Fehler aufgetreten!").Query(), http.StatusSeeOther)
			return
		}

		http.Redirect(w, r, formPath+"?"+status.OK("Die Sammelbestellung wurde aktualisiert!").Query(), http.StatusSeeOther)
	}
}
