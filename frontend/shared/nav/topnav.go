package nav

import (
	"fmt"
	"strconv"

	"herbadmin/models"

	"github.com/a-h/templ"
)

// TopNavData is shared with page renderers.
type TopNavData struct {
	Username string
	BatchID  int64
	BillID   int64
}

func BuildTopNavData(session models.Session, batchID, billID int64) TopNavData {
	return TopNavData{Username: session.Username, BatchID: batchID, BillID: billID}
}

// Render builds the admin navigation bar.
func (d TopNavData) Render() string {
	batch := strconv.FormatInt(d.BatchID, 10)
	bill := strconv.FormatInt(d.BillID, 10)
	return fmt.Sprintf(`<nav class="topnav">
<a href="/admin/orders">Einzelbestellungen</a>
<a href="/admin/collective_order">Sammelbestellung</a>
<a href="/admin/order_batches">Kräuterbestellungen</a>
<a href="/admin/order_batches/%s">Übersicht</a>
<a href="/admin/order_batches/%s/missing_herbs">Fehlende Kräuter</a>
<a href="/admin/order_batches/%s/shipments">Lieferungen</a>
<a href="/admin/bills/%s">Rechnung</a>
<form class="logout" method="POST" action="/admin/logout"><button type="submit">Abmelden (%s)</button></form>
</nav>`, batch, batch, batch, bill, templ.EscapeString(d.Username))
}
