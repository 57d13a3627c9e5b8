package backend

import (
	"context"
	"net/http"

	"herbadmin/models"
)

// OrderBatches lists all order batches.
func (c *Client) OrderBatches(ctx context.Context, auth string) ([]models.OrderBatch, error) {
	var wire []orderBatchWire
	if err := c.do(ctx, http.MethodGet, "/api/admin/order_batches", auth, nil, &wire, http.StatusOK); err != nil {
		return nil, err
	}
	batches := make([]models.OrderBatch, 0, len(wire))
	for _, w := range wire {
		batches = append(batches, models.OrderBatch{ID: w.ID, Name: w.Name, OrderState: w.OrderState})
	}
	return batches, nil
}

// OrderBatch loads one batch by id.
func (c *Client) OrderBatch(ctx context.Context, auth string, batchID int64) (models.OrderBatch, error) {
	var wire orderBatchWire
	if err := c.do(ctx, http.MethodGet, batchPath(batchID, ""), auth, nil, &wire, http.StatusOK); err != nil {
		return models.OrderBatch{}, err
	}
	if wire.ID == 0 {
		wire.ID = batchID
	}
	return models.OrderBatch{ID: wire.ID, Name: wire.Name, OrderState: wire.OrderState}, nil
}

func (c *Client) CreateOrderBatch(ctx context.Context, auth, name string) error {
	var created orderBatchWire
	return c.do(ctx, http.MethodPost, "/api/admin/order_batches", auth, orderBatchWire{Name: name}, &created, http.StatusCreated)
}

// UpdateOrderBatch persists name and lifecycle state via a full update.
func (c *Client) UpdateOrderBatch(ctx context.Context, auth string, batch models.OrderBatch) error {
	var updated orderBatchWire
	wire := orderBatchWire{ID: batch.ID, Name: batch.Name, OrderState: batch.OrderState}
	return c.do(ctx, http.MethodPut, batchPath(batch.ID, ""), auth, wire, &updated, http.StatusOK)
}

// OrderBatchStats loads the per-herb ordered/billed/shipped quantities.
func (c *Client) OrderBatchStats(ctx context.Context, auth string, batchID int64) ([]models.HerbStat, error) {
	var wire []herbStatWire
	if err := c.do(ctx, http.MethodGet, batchPath(batchID, "/stats"), auth, nil, &wire, http.StatusOK); err != nil {
		return nil, err
	}
	stats := make([]models.HerbStat, 0, len(wire))
	for _, w := range wire {
		stats = append(stats, models.HerbStat{
			HerbID:            w.HerbID,
			HerbName:          w.HerbName,
			QuantityOrdered:   w.QuantityOrdered,
			QuantityBill:      w.QuantityBill,
			QuantityShipments: w.QuantityShipments,
		})
	}
	return stats, nil
}

// MissingHerbs loads the raw per-order shortage rows.
func (c *Client) MissingHerbs(ctx context.Context, auth string, batchID int64) ([]models.MissingHerbEntry, error) {
	var wire []missingHerbWire
	if err := c.do(ctx, http.MethodGet, batchPath(batchID, "/missing-herbs"), auth, nil, &wire, http.StatusOK); err != nil {
		return nil, err
	}
	entries := make([]models.MissingHerbEntry, 0, len(wire))
	for _, w := range wire {
		entries = append(entries, models.MissingHerbEntry{
			HerbName:        w.HerbName,
			FirstName:       w.FirstName,
			LastName:        w.LastName,
			ExternalOrderID: w.ExternalOrderID,
			QuantityOrdered: w.QuantityOrdered,
			QuantityShipped: w.QuantityShipped,
		})
	}
	return entries, nil
}
