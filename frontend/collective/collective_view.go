package collective

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"herbadmin/frontend/shared/html"

	"github.com/a-h/templ"
)

// CollectiveOrderPage renders the summed collective order with the export
// links.
func CollectiveOrderPage(data CollectiveOrderPageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		batch := strconv.FormatInt(data.Nav.BatchID, 10)

		var b strings.Builder
		b.WriteString(`<h1>Sammelbestellung für Ayushakti</h1>`)
		b.WriteString(fmt.Sprintf(
			`<p><a class="button-link" href="/admin/order_batches/%s/collective.xlsx">Export (Excel)</a> <a class="button-link" href="/admin/order_batches/%s/collective.pdf">Export (PDF)</a></p>`,
			batch, batch))

		b.WriteString(`<table><thead><tr><th>Kräuter</th><th class="numeric">Anzahl</th></tr></thead><tbody>`)
		for _, row := range data.Rows {
			b.WriteString(fmt.Sprintf(
				`<tr><td>%s</td><td class="numeric">%s</td></tr>`,
				templ.EscapeString(row.HerbName),
				strconv.FormatFloat(row.Quantity, 'f', -1, 64)))
		}
		b.WriteString(`</tbody></table>`)

		_, err := io.WriteString(w, html.RenderLayout("Sammelbestellung", data.Nav.Render(), b.String()))
		return err
	})
}
