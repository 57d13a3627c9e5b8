package overview

import (
	"strconv"

	"herbadmin/models"
)

// Reconcile computes the bill and shipment deltas against the ordered
// quantity. The input is not modified; a difference is only set when the
// quantity exists and the delta is non-zero, and positive deltas carry an
// explicit plus sign.
func Reconcile(stats []models.HerbStat) []models.HerbStat {
	out := make([]models.HerbStat, len(stats))
	for i, stat := range stats {
		stat.BillDifference = difference(stat.QuantityBill, stat.QuantityOrdered)
		stat.ShipmentDifference = difference(stat.QuantityShipments, stat.QuantityOrdered)
		out[i] = stat
	}
	return out
}

func difference(quantity *float64, ordered float64) string {
	if quantity == nil {
		return ""
	}
	delta := *quantity - ordered
	if delta == 0 {
		return ""
	}
	formatted := strconv.FormatFloat(delta, 'f', -1, 64)
	if delta > 0 {
		formatted = "+" + formatted
	}
	return formatted
}
