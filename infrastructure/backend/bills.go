package backend

import (
	"context"
	"net/http"
	"strconv"

	"herbadmin/models"
)

func billPath(billID int64) string {
	return "/api/admin/bills/" + strconv.FormatInt(billID, 10)
}

// Bill loads the supplier bill for the current batch.
func (c *Client) Bill(ctx context.Context, auth string, billID int64) (models.Bill, error) {
	var wire billWire
	if err := c.do(ctx, http.MethodGet, billPath(billID), auth, nil, &wire, http.StatusOK); err != nil {
		return models.Bill{}, err
	}
	wire.ID = billID
	return billFromWire(wire), nil
}

func (c *Client) CreateBill(ctx context.Context, auth string, bill models.Bill) error {
	var created billWire
	return c.do(ctx, http.MethodPost, billPath(bill.ID), auth, billToWire(bill), &created, http.StatusCreated)
}

func (c *Client) UpdateBill(ctx context.Context, auth string, bill models.Bill) error {
	var updated billWire
	return c.do(ctx, http.MethodPut, billPath(bill.ID), auth, billToWire(bill), &updated, http.StatusOK)
}
