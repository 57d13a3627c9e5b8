package orders

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"herbadmin/frontend/shared/html"
	"herbadmin/models"

	"github.com/a-h/templ"
)

// OrderFormPage renders the create/edit form for a single order.
func OrderFormPage(data OrderFormData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		title := "Neue Bestellung"
		action := "/admin/orders/new"
		if !data.IsNew {
			title = "Bestellung bearbeiten"
			action = "/admin/orders/" + data.Order.ExternalID
		}

		if data.NotFound {
			body := `<h1>` + templ.EscapeString(title) + `</h1><p>Die angegebene Kräuterbestellung wurde nicht gefunden!</p><a class="button-link" href="/admin/orders">Zurück</a>`
			_, err := io.WriteString(w, html.RenderLayout(title, data.Nav.Render(), body))
			return err
		}

		var b strings.Builder
		b.WriteString(`<h1>` + templ.EscapeString(title) + `</h1>`)
		b.WriteString(html.RenderStatus(data.Status))
		if !data.IsNew {
			b.WriteString(fmt.Sprintf(
				`<p><a class="button-link" href="/admin/orders/%s/packing_slip.pdf">Packzettel (PDF)</a></p>`,
				templ.EscapeString(data.Order.ExternalID)))
		}

		b.WriteString(`<form method="POST" action="` + action + `">`)

		b.WriteString(`<fieldset><legend>Persönliche Informationen</legend>`)
		b.WriteString(textField("first_name", "Vorname", data.Order.FirstName))
		b.WriteString(textField("last_name", "Nachname", data.Order.LastName))
		b.WriteString(textField("mail", "E-Mail-Adresse", data.Order.Mail))
		b.WriteString(`</fieldset>`)

		b.WriteString(`<fieldset><legend>Kräuter</legend>`)
		b.WriteString(`<table class="order-lines"><thead><tr><th>Kräuter</th><th>Anzahl</th></tr></thead><tbody>`)
		row := 0
		for _, line := range data.Order.Lines {
			b.WriteString(herbRow(row, data.Herbs, line.HerbID, formatQuantity(line.Quantity)))
			row++
		}
		for i := 0; i < data.BlankRows; i++ {
			b.WriteString(herbRow(row, data.Herbs, 0, ""))
			row++
		}
		b.WriteString(`</tbody></table>`)
		b.WriteString(`<input type="hidden" name="rows" value="` + strconv.Itoa(row) + `">`)
		b.WriteString(`</fieldset>`)

		b.WriteString(`<a class="button-link" href="/admin/orders">Zurück</a> `)
		b.WriteString(`<button type="submit">Speichern</button>`)
		b.WriteString(`</form>`)

		_, err := io.WriteString(w, html.RenderLayout(title, data.Nav.Render(), b.String()))
		return err
	})
}

func textField(name, label, value string) string {
	return fmt.Sprintf(
		`<label for="%s">%s</label><input type="text" id="%s" name="%s" value="%s">`,
		name, templ.EscapeString(label), name, name, templ.EscapeString(value))
}

func herbRow(index int, herbs []models.Herb, selectedID int64, quantity string) string {
	idx := strconv.Itoa(index)
	var b strings.Builder
	b.WriteString(`<tr><td><select name="herb_id_` + idx + `"><option value=""></option>`)
	for _, h := range herbs {
		selected := ""
		if h.ID == selectedID {
			selected = ` selected`
		}
		b.WriteString(fmt.Sprintf(`<option value="%d"%s>%s</option>`, h.ID, selected, templ.EscapeString(h.Name)))
	}
	b.WriteString(`</select></td>`)
	b.WriteString(fmt.Sprintf(
		`<td><input type="number" step="any" min="0" name="quantity_%s" value="%s"></td></tr>`,
		idx, templ.EscapeString(quantity)))
	return b.String()
}

func formatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}
