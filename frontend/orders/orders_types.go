package orders

import (
	"sort"

	"herbadmin/frontend/shared/money"
	"herbadmin/frontend/shared/nav"
	"herbadmin/frontend/shared/status"
	"herbadmin/models"
)

// OrderRow is one entry on the individual-orders list.
type OrderRow struct {
	ExternalID string
	Name       string
	Mail       string
	Price      string
}

type OrdersPageData struct {
	Nav    nav.TopNavData
	Orders []OrderRow
	Status status.Status
}

// BuildOrderRows sorts orders by display name and renders the price in
// euros. Orders without a calculated price show a placeholder.
func BuildOrderRows(orders []models.Order) []OrderRow {
	rows := make([]OrderRow, 0, len(orders))
	for _, o := range orders {
		row := OrderRow{
			ExternalID: o.ExternalID,
			Name:       o.FirstName + " " + o.LastName,
			Mail:       o.Mail,
			Price:      "–",
		}
		if o.Price != nil {
			row.Price = money.FormatPrice(*o.Price) + " €"
		}
		rows = append(rows, row)
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return rows
}

// OrderFormData feeds both the create and the edit form.
type OrderFormData struct {
	Nav      nav.TopNavData
	IsNew    bool
	NotFound bool
	Order    models.Order
	Herbs    []models.Herb
	// BlankRows is how many empty herb rows the form renders below the
	// existing lines.
	BlankRows int
	Status    status.Status
}
