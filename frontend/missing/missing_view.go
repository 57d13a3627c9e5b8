package missing

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"herbadmin/frontend/shared/html"

	"github.com/a-h/templ"
)

// MissingHerbsPage renders the shortage table with a link to each affected
// order.
func MissingHerbsPage(data MissingHerbsPageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if data.NotFound {
			body := `<h1>Fehlende Kräuter</h1><p>Die angegebene Sammelbestellung wurde nicht gefunden!</p>`
			_, err := io.WriteString(w, html.RenderLayout("Fehlende Kräuter", data.Nav.Render(), body))
			return err
		}

		var b strings.Builder
		b.WriteString(`<h1>Fehlende Kräuter</h1>`)
		b.WriteString(`<table><thead><tr><th>Kräuter</th><th>Name</th><th class="numeric">Fehlende Anzahl</th><th>Details</th></tr></thead><tbody>`)
		for _, entry := range data.Entries {
			b.WriteString(fmt.Sprintf(
				`<tr><td>%s</td><td>%s</td><td class="numeric">%s</td><td><a href="/admin/orders/%s">Zur Bestellung</a></td></tr>`,
				templ.EscapeString(entry.HerbName),
				templ.EscapeString(entry.FirstName+" "+entry.LastName),
				strconv.FormatFloat(entry.Difference, 'f', -1, 64),
				templ.EscapeString(entry.ExternalOrderID)))
		}
		b.WriteString(`</tbody></table>`)

		_, err := io.WriteString(w, html.RenderLayout("Fehlende Kräuter", data.Nav.Render(), b.String()))
		return err
	})
}
