package shipments

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

// ShipmentsPage renders the delivery list of a batch.
func ShipmentsPage(data ShipmentsPageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		base := "/admin/order_batches/" + strconv.FormatInt(data.BatchID, 10) + "/shipments"

		var b strings.Builder
		b.WriteString(`<h1>Lieferungen</h1>`)
		b.WriteString(html.RenderStatus(data.Status))

		b.WriteString(`<ul class="shipments">`)
		for _, shipment := range data.Shipments {
			b.WriteString(fmt.Sprintf(
				`<li><a href="%s/%d">%s</a></li>`,
				base, shipment.ID, templ.EscapeString(shipment.Date)))
		}
		b.WriteString(`</ul>`)
		b.WriteString(`<a class="button-link" href="` + base + `/new">Hinzufügen</a>`)

		_, err := io.WriteString(w, html.RenderLayout("Lieferungen", data.Nav.Render(), b.String()))
		return err
	})
}

// ShipmentFormPage renders the create/edit form for one delivery.
func ShipmentFormPage(data ShipmentFormData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		base := "/admin/order_batches/" + strconv.FormatInt(data.BatchID, 10) + "/shipments"

		title := "Neue Lieferung"
		action := base + "/new"
		if !data.IsNew {
			title = "Lieferung bearbeiten"
			action = fmt.Sprintf("%s/%d", base, data.Shipment.ID)
		}

		if data.NotFound {
			body := `<h1>` + templ.EscapeString(title) + `</h1><p>Die angegebene Lieferung wurde nicht gefunden!</p><a class="button-link" href="` + base + `">Zurück</a>`
			_, err := io.WriteString(w, html.RenderLayout(title, data.Nav.Render(), body))
			return err
		}

		var b strings.Builder
		b.WriteString(`<h1>` + templ.EscapeString(title) + `</h1>`)
		b.WriteString(html.RenderStatus(data.Status))

		b.WriteString(`<form method="POST" action="` + action + `">`)
		b.WriteString(`<label for="date">Lieferdatum</label>`)
		b.WriteString(fmt.Sprintf(`<input type="date" id="date" name="date" value="%s">`, templ.EscapeString(data.Shipment.Date)))

		b.WriteString(`<fieldset><legend>Kräuter</legend>`)
		b.WriteString(`<table class="order-lines"><thead><tr><th>Kräuter</th><th>Anzahl</th></tr></thead><tbody>`)
		row := 0
		for _, line := range data.Shipment.Lines {
			b.WriteString(herbRow(row, data.Herbs, line.HerbID, strconv.FormatFloat(line.Quantity, 'f', -1, 64)))
			row++
		}
		for i := 0; i < data.BlankRows; i++ {
			b.WriteString(herbRow(row, data.Herbs, 0, ""))
			row++
		}
		b.WriteString(`</tbody></table>`)
		b.WriteString(`<input type="hidden" name="rows" value="` + strconv.Itoa(row) + `">`)
		b.WriteString(`</fieldset>`)

		b.WriteString(`<a class="button-link" href="` + base + `">Zurück</a> `)
		b.WriteString(`<button type="submit">Speichern</button>`)
		b.WriteString(`</form>`)

		_, err := io.WriteString(w, html.RenderLayout(title, data.Nav.Render(), b.String()))
		return err
	})
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
