package collective

import (
	"herbadmin/frontend/shared/nav"
)

// Row is one herb of the joined collective order.
type Row struct {
	HerbName string
	Quantity float64
}

type CollectiveOrderPageData struct {
	Nav  nav.TopNavData
	Rows []Row
}
