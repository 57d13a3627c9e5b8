package batches

import (
	"context"
	"fmt"
	"io"
	"strings"

	"herbadmin/frontend/shared/html"

	"github.com/a-h/templ"
)

// BatchesPage renders the batch list followed by the create form.
func BatchesPage(data BatchesPageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<h1>Kräuterbestellungen</h1>`)
		b.WriteString(html.RenderStatus(data.Status))

		b.WriteString(`<ul class="batches">`)
		for _, batch := range data.Batches {
			b.WriteString(fmt.Sprintf(
				`<li><a href="/admin/order_batches/%d">%s</a></li>`,
				batch.ID, templ.EscapeString(batch.Name)))
		}
		b.WriteString(`</ul>`)

		b.WriteString(`<form method="POST" action="/admin/order_batches">`)
		b.WriteString(`<fieldset><legend>Neue Kräuterbestellung erstellen</legend>`)
		b.WriteString(`<label for="name">Name</label><input type="text" id="name" name="name">`)
		b.WriteString(`</fieldset>`)
		b.WriteString(`<button type="submit">Erstellen</button>`)
		b.WriteString(`</form>`)

		_, err := io.WriteString(w, html.RenderLayout("Kräuterbestellungen", data.Nav.Render(), b.String()))
		return err
	})
}
