package overview

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

// orderStateLabels maps lifecycle states to the labels shown in the select.
var orderStateLabels = map[string]string{
	models.OrderStateCreated:              "Sammelbestellung erstellt",
	models.OrderStateOrdersOpen:           "Bestellungsannahme",
	models.OrderStateOrderBatchSubmitted:  "Sammelbestellung beendet",
	models.OrderStateShipmentDistribution: "Verteilung der Lieferung",
	models.OrderStateClosed:               "Abgeschlossen",
}

// OverviewPage renders the batch form followed by the reconciled herb
// table.
func OverviewPage(data OverviewPageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if data.NotFound {
			body := `<h1>Übersicht</h1><p>Die angegebene Sammelbestellung wurde nicht gefunden!</p>`
			_, err := io.WriteString(w, html.RenderLayout("Übersicht", data.Nav.Render(), body))
			return err
		}

		var b strings.Builder
		b.WriteString(`<h1>Allgemeine Informationen</h1>`)
		b.WriteString(html.RenderStatus(data.Status))

		b.WriteString(fmt.Sprintf(`<form method="POST" action="/admin/order_batches/%d">`, data.Batch.ID))
		b.WriteString(`<label for="name">Name der Sammelbestellung</label>`)
		b.WriteString(fmt.Sprintf(`<input type="text" id="name" name="name" value="%s">`, templ.EscapeString(data.Batch.Name)))
		b.WriteString(`<label for="order_state">Prozessstatus</label>`)
		b.WriteString(`<select id="order_state" name="order_state">`)
		for _, state := range models.OrderStates {
			selected := ""
			if state == data.Batch.OrderState {
				selected = ` selected`
			}
			b.WriteString(fmt.Sprintf(`<option value="%s"%s>%s</option>`, state, selected, templ.EscapeString(orderStateLabels[state])))
		}
		b.WriteString(`</select>`)
		b.WriteString(`<button type="submit">Speichern</button>`)
		b.WriteString(`</form>`)

		b.WriteString(`<h2>Bestellte Kräuter</h2>`)
		b.WriteString(`<table><thead><tr><th>Kräuter</th><th class="numeric">Bestellungen</th><th class="numeric">Abgerechnet</th><th class="numeric">Geliefert</th></tr></thead><tbody>`)
		for _, stat := range data.Stats {
			b.WriteString(fmt.Sprintf(
				`<tr><td>%s</td><td class="numeric">%s</td><td class="numeric">%s</td><td class="numeric">%s</td></tr>`,
				templ.EscapeString(stat.HerbName),
				formatQuantity(stat.QuantityOrdered),
				quantityCell(stat.QuantityBill, stat.BillDifference),
				quantityCell(stat.QuantityShipments, stat.ShipmentDifference)))
		}
		b.WriteString(`</tbody></table>`)

		_, err := io.WriteString(w, html.RenderLayout("Übersicht", data.Nav.Render(), b.String()))
		return err
	})
}

// quantityCell shows the quantity with the non-zero delta in parentheses.
// Herbs without bill or shipment data render an empty cell.
func quantityCell(quantity *float64, diff string) string {
	if quantity == nil {
		return ""
	}
	cell := formatQuantity(*quantity)
	if diff != "" {
		cell += " (" + templ.EscapeString(diff) + ")"
	}
	return cell
}

func formatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}
