package orders

import (
	"context"
	"fmt"
	"io"
	"strings"

	"herbadmin/frontend/shared/html"

	"github.com/a-h/templ"
)

// OrdersPage renders the individual-orders list with the price-mail action.
func OrdersPage(data OrdersPageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<h1>Einzelbestellungen</h1>`)
		b.WriteString(html.RenderStatus(data.Status))
		b.WriteString(`<a class="button-link" href="/admin/orders/new">Neue Bestellung</a>`)

		b.WriteString(`<table class="orders"><thead><tr><th>Name</th><th>E-Mail-Adresse</th><th class="numeric">Preis</th></tr></thead><tbody>`)
		for _, o := range data.Orders {
			b.WriteString(fmt.Sprintf(
				`<tr><td><a href="/admin/orders/%s">%s</a></td><td>%s</td><td class="numeric">%s</td></tr>`,
				templ.EscapeString(o.ExternalID),
				templ.EscapeString(o.Name),
				templ.EscapeString(o.Mail),
				templ.EscapeString(o.Price),
			))
		}
		b.WriteString(`</tbody></table>`)

		b.WriteString(`<form method="POST" action="/admin/orders/price-mails" onsubmit="return confirm('Möchten Sie die Preis-Mail für alle Bestellungen senden?');">`)
		b.WriteString(`<button type="submit">Preis-Mail schicken</button>`)
		b.WriteString(`</form>`)

		_, err := io.WriteString(w, html.RenderLayout("Einzelbestellungen", data.Nav.Render(), b.String()))
		return err
	})
}
