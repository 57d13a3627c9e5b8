package collective

import (
	"log/slog"
	"net/http"

	"herbadmin/frontend/shared/context"
	"herbadmin/frontend/shared/nav"
	"herbadmin/infrastructure/backend"
	"herbadmin/infrastructure/config"
)

// CollectiveOrderPageQueryHandler renders the aggregated collective order.
func CollectiveOrderPageQueryHandler(client *backend.Client, cfg config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := context.GetSessionFromContext(r.Context())
		if !ok {
			http.Redirect(w, r, "/admin", http.StatusSeeOther)
			return
		}

		rows, err := LoadCollectiveOrder(r.Context(), client, session.Credential)
		if err != nil {
			slog.Error("collective: failed to load collective order", slog.Any("err", err))
			http.Error(w, "failed to load collective order", http.StatusInternalServerError)
			return
		}

		data := CollectiveOrderPageData{
			Nav:  nav.BuildTopNavData(session, cfg.DefaultBatchID, cfg.BillID),
			Rows: rows,
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := CollectiveOrderPage(data).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render collective order", http.StatusInternalServerError)
			return
		}
	}
}
