package collective

import (
	"context"
	"fmt"
	"sort"

	"herbadmin/infrastructure/backend"
	"herbadmin/models"
)

// LoadCollectiveOrder fetches the herb catalog and the aggregated order and
// joins them into display rows.
func LoadCollectiveOrder(ctx context.Context, client *backend.Client, auth string) ([]Row, error) {
	herbs, err := client.Herbs(ctx)
	if err != nil {
		return nil, fmt.Errorf("load herb catalog: %w", err)
	}
	lines, err := client.AggregatedOrders(ctx, auth)
	if err != nil {
		return nil, fmt.Errorf("load aggregated orders: %w", err)
	}
	return JoinCatalog(lines, herbs)
}

// JoinCatalog resolves the backend's aggregated herb-id sums against the
// herb catalog and sorts the result by herb name.
func JoinCatalog(lines []backend.AggregatedLine, herbs []models.Herb) ([]Row, error) {
	orderLines := make([]models.OrderLine, 0, len(lines))
	for _, line := range lines {
		orderLines = append(orderLines, models.OrderLine{HerbID: line.HerbID, Quantity: line.Quantity})
	}
	return Aggregate(orderLines, herbs)
}

// Aggregate sums the quantity per distinct herb across order lines and joins
// the herb names, sorted by name. A herb that appears on no line is omitted
// rather than zero-filled. A line whose herb id is missing from the catalog
// is an error, not a silently dropped row.
func Aggregate(lines []models.OrderLine, herbs []models.Herb) ([]Row, error) {
	byID := make(map[int64]string, len(herbs))
	for _, h := range herbs {
		byID[h.ID] = h.Name
	}

	totals := make(map[int64]float64, len(lines))
	order := make([]int64, 0, len(lines))
	for _, line := range lines {
		if _, ok := byID[line.HerbID]; !ok {
			return nil, fmt.Errorf("order line references unknown herb id %d", line.HerbID)
		}
		if _, seen := totals[line.HerbID]; !seen {
			order = append(order, line.HerbID)
		}
		totals[line.HerbID] += line.Quantity
	}

	rows := make([]Row, 0, len(order))
	for _, id := range order {
		rows = append(rows, Row{HerbName: byID[id], Quantity: totals[id]})
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].HerbName < rows[j].HerbName })
	return rows, nil
}
