package batches

import (
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"herbadmin/frontend/shared/context"
	"herbadmin/frontend/shared/nav"
	"herbadmin/frontend/shared/status"
	"herbadmin/infrastructure/backend"
	"herbadmin/infrastructure/config"
	"herbadmin/models"
)

type BatchesPageData struct {
	Nav     nav.TopNavData
	Batches []models.OrderBatch
	Status  status.Status
}

// BatchesPageQueryHandler renders the order batch list with the create
// form.
func BatchesPageQueryHandler(client *backend.Client, cfg config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := context.GetSessionFromContext(r.Context())
		if !ok {
			http.Redirect(w, r, "/admin", http.StatusSeeOther)
			return
		}

		batches, err := client.OrderBatches(r.Context(), session.Credential)
		if err != nil {
			slog.Error("batches: failed to load order batches", slog.Any("err", err))
			http.Error(w, "failed to load order batches", http.StatusInternalServerError)
			return
		}
		sort.SliceStable(batches, func(i, j int) bool { return batches[i].Name < batches[j].Name })

		data := BatchesPageData{
			Nav:     nav.BuildTopNavData(session, cfg.DefaultBatchID, cfg.BillID),
			Batches: batches,
			Status:  status.FromQuery(r.URL.Query()),
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := BatchesPage(data).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render order batches", http.StatusInternalServerError)
			return
		}
	}
}

// CreateBatchCommandHandler creates a new order batch from the posted name.
func CreateBatchCommandHandler(client *backend.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := context.GetSessionFromContext(r.Context())
		if !ok {
			http.Redirect(w, r, "/admin", http.StatusSeeOther)
			return
		}

		if err := r.ParseForm(); err != nil {
			http.Redirect(w, r, "/admin/order_batches?"+status.Invalid("Ungültige Formulardaten.").Query(), http.StatusSeeOther)
			return
		}

		name := strings.TrimSpace(r.FormValue("name"))
		if name == "" {
			http.Redirect(w, r, "/admin/order_batches?"+status.Invalid("Bitte gib einen Namen ein!").Query(), http.StatusSeeOther)
			return
		}

		if err := client.CreateOrderBatch(r.Context(), session.Credential, name); err != nil {
			slog.Error("batches: failed to create order batch", slog.Any("err", err))
			http.Redirect(w, r, "/admin/order_batches?"+status.Failed("Beim Erstellen der Kräuterbestellung ist ein Fehler aufgetreten!").Query(), http.StatusSeeOther)
			return
		}

		http.Redirect(w, r, "/admin/order_batches?"+status.OK("Die Kräuterbestellung wurde angelegt.").Query(), http.StatusSeeOther)
	}
}
