package missing

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"herbadmin/frontend/shared/context"
	"herbadmin/frontend/shared/nav"
	"herbadmin/infrastructure/backend"
	"herbadmin/infrastructure/config"
	"herbadmin/models"
)

type MissingHerbsPageData struct {
	Nav      nav.TopNavData
	NotFound bool
	Entries  []models.MissingHerbEntry
}

// MissingHerbsPageQueryHandler renders the per-order shortage worklist of a
// batch.
func MissingHerbsPageQueryHandler(client *backend.Client, cfg config.Config) http.HandlerFunc {
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

		data := MissingHerbsPageData{
			Nav: nav.BuildTopNavData(session, cfg.DefaultBatchID, cfg.BillID),
		}

		_, err = client.OrderBatch(r.Context(), session.Credential, batchID)
		switch {
		case errors.Is(err, backend.ErrNotFound):
			data.NotFound = true
		case err != nil:
			slog.Error("missing: failed to load order batch", slog.Int64("batch_id", batchID), slog.Any("err", err))
			http.Error(w, "failed to load order batch", http.StatusInternalServerError)
			return
		default:
			entries, err := client.MissingHerbs(r.Context(), session.Credential, batchID)
			if err != nil {
				slog.Error("missing: failed to load missing herbs", slog.Int64("batch_id", batchID), slog.Any("err", err))
				http.Error(w, "failed to load missing herbs", http.StatusInternalServerError)
				return
			}
			entries = Differences(entries)
			Sort(entries)
			data.Entries = entries
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := MissingHerbsPage(data).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render missing herbs", http.StatusInternalServerError)
			return
		}
	}
}
