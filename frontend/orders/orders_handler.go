package orders

import (
	"log/slog"
	"net/http"

	"herbadmin/frontend/shared/context"
	"herbadmin/frontend/shared/nav"
	"herbadmin/frontend/shared/status"
	"herbadmin/infrastructure/backend"
	"herbadmin/infrastructure/config"
)

// OrdersPageQueryHandler renders the individual-orders list.
func OrdersPageQueryHandler(client *backend.Client, cfg config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := context.GetSessionFromContext(r.Context())
		if !ok {
			http.Redirect(w, r, "/admin", http.StatusSeeOther)
			return
		}

		orders, err := client.Orders(r.Context(), session.Credential)
		if err != nil {
			slog.Error("orders: failed to load orders", slog.Any("err", err))
			http.Error(w, "failed to load orders", http.StatusInternalServerError)
			return
		}

		data := OrdersPageData{
			Nav:    nav.BuildTopNavData(session, cfg.DefaultBatchID, cfg.BillID),
			Orders: BuildOrderRows(orders),
			Status: status.FromQuery(r.URL.Query()),
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := OrdersPage(data).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render orders page", http.StatusInternalServerError)
			return
		}
	}
}

// PriceMailsCommandHandler triggers the price mail for every order.
func PriceMailsCommandHandler(client *backend.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := context.GetSessionFromContext(r.Context())
		if !ok {
			http.Redirect(w, r, "/admin", http.StatusSeeOther)
			return
		}

		if err := client.SendPriceMails(r.Context(), session.Credential); err != nil {
			slog.Error("orders: failed to send price mails", slog.Any("err", err))
			http.Redirect(w, r, "/admin/orders?"+status.Failed("Beim Senden der Preis-Mails ist ein Fehler aufgetreten!").Query(), http.StatusSeeOther)
			return
		}

		http.Redirect(w, r, "/admin/orders?"+status.OK("Die Preis-Mails wurden erfolgreich gesendet!").Query(), http.StatusSeeOther)
	}
}
