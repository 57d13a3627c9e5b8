package backend

import (
	"context"
	"net/http"
	"net/url"

	"herbadmin/models"
)

// Orders lists all individual orders of the current batch.
func (c *Client) Orders(ctx context.Context, auth string) ([]models.Order, error) {
	var wire []orderWire
	if err := c.do(ctx, http.MethodGet, "/api/admin/orders", auth, nil, &wire, http.StatusOK); err != nil {
		return nil, err
	}
	orders := make([]models.Order, 0, len(wire))
	for _, w := range wire {
		orders = append(orders, orderFromWire(w))
	}
	return orders, nil
}

// Order loads a single order by its external id.
func (c *Client) Order(ctx context.Context, auth, externalID string) (models.Order, error) {
	var wire orderWire
	if err := c.do(ctx, http.MethodGet, "/api/admin/orders/"+url.PathEscape(externalID), auth, nil, &wire, http.StatusOK); err != nil {
		return models.Order{}, err
	}
	return orderFromWire(wire), nil
}

func (c *Client) CreateOrder(ctx context.Context, auth string, order models.Order) error {
	var created orderWire
	return c.do(ctx, http.MethodPost, "/api/admin/orders", auth, orderToWire(order), &created, http.StatusCreated)
}

func (c *Client) UpdateOrder(ctx context.Context, auth string, order models.Order) error {
	var updated orderWire
	return c.do(ctx, http.MethodPut, "/api/admin/orders/"+url.PathEscape(order.ExternalID), auth, orderToWire(order), &updated, http.StatusOK)
}

// AggregatedOrders returns the backend's per-herb quantity sums, without
// herb names.
func (c *Client) AggregatedOrders(ctx context.Context, auth string) ([]AggregatedLine, error) {
	var wire []aggregatedLineWire
	if err := c.do(ctx, http.MethodGet, "/api/admin/orders/aggregated", auth, nil, &wire, http.StatusOK); err != nil {
		return nil, err
	}
	lines := make([]AggregatedLine, 0, len(wire))
	for _, w := range wire {
		lines = append(lines, AggregatedLine{HerbID: w.HerbID, Quantity: w.Quantity})
	}
	return lines, nil
}

// SendPriceMails triggers the price mail for every order.
func (c *Client) SendPriceMails(ctx context.Context, auth string) error {
	return c.do(ctx, http.MethodPost, "/api/admin/orders/price-mails", auth, nil, nil, http.StatusOK)
}
