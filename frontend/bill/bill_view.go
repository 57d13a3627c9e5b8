package bill

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"herbadmin/frontend/shared/html"
	"herbadmin/frontend/shared/money"
	"herbadmin/models"

	"github.com/a-h/templ"
)

// BillPage renders the supplier bill form with one row per bill item. Unit
// prices are shown in euros.
func BillPage(data BillPageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		action := "/admin/bills/" + strconv.FormatInt(data.Bill.ID, 10)

		var b strings.Builder
		b.WriteString(`<h1>Rechnung</h1>`)
		b.WriteString(html.RenderStatus(data.Status))

		b.WriteString(`<form method="POST" action="` + action + `">`)
		exists := "1"
		if data.IsNew {
			exists = "0"
		}
		b.WriteString(`<input type="hidden" name="exists" value="` + exists + `">`)

		b.WriteString(`<label for="date">Rechnungsdatum</label>`)
		b.WriteString(fmt.Sprintf(`<input type="date" id="date" name="date" value="%s">`, templ.EscapeString(data.Bill.Date)))
		b.WriteString(`<label for="vat">Mehrwertsteuer</label>`)
		vat := ""
		if !data.IsNew {
			vat = strconv.FormatFloat(data.Bill.VAT, 'f', -1, 64)
		}
		b.WriteString(fmt.Sprintf(`<input type="text" id="vat" name="vat" value="%s">`, templ.EscapeString(vat)))

		b.WriteString(`<fieldset><legend>Rechnungsposten</legend>`)
		b.WriteString(`<table class="order-lines"><thead><tr><th>Kräuter</th><th>Einzelpreis</th><th>Anzahl</th></tr></thead><tbody>`)
		row := 0
		for _, line := range data.Bill.Lines {
			b.WriteString(billRow(row, data.Herbs, line.HerbID, money.FormatPrice(line.UnitPrice), strconv.FormatFloat(line.Quantity, 'f', -1, 64)))
			row++
		}
		for i := 0; i < data.BlankRows; i++ {
			b.WriteString(billRow(row, data.Herbs, 0, "", ""))
			row++
		}
		b.WriteString(`</tbody></table>`)
		b.WriteString(`<input type="hidden" name="rows" value="` + strconv.Itoa(row) + `">`)
		b.WriteString(`</fieldset>`)

		b.WriteString(`<button type="submit">Speichern</button>`)
		b.WriteString(`</form>`)

		_, err := io.WriteString(w, html.RenderLayout("Rechnung", data.Nav.Render(), b.String()))
		return err
	})
}

func billRow(index int, herbs []models.Herb, selectedID int64, unitPrice, quantity string) string {
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
		`<td><input type="text" name="unit_price_%s" value="%s"></td>`,
		idx, templ.EscapeString(unitPrice)))
	b.WriteString(fmt.Sprintf(
		`<td><input type="number" step="any" min="0" name="quantity_%s" value="%s"></td></tr>`,
		idx, templ.EscapeString(quantity)))
	return b.String()
}
