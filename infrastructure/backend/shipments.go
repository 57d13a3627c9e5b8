package backend

import (
	"context"
	"net/http"
	"strconv"

	"herbadmin/models"
)

func shipmentPath(batchID, shipmentID int64) string {
	return batchPath(batchID, "/shipments/"+strconv.FormatInt(shipmentID, 10))
}

// Shipments lists all shipments of a batch.
func (c *Client) Shipments(ctx context.Context, auth string, batchID int64) ([]models.Shipment, error) {
	var wire []shipmentWire
	if err := c.do(ctx, http.MethodGet, batchPath(batchID, "/shipments"), auth, nil, &wire, http.StatusOK); err != nil {
		return nil, err
	}
	shipments := make([]models.Shipment, 0, len(wire))
	for _, w := range wire {
		shipments = append(shipments, shipmentFromWire(w))
	}
	return shipments, nil
}

// Shipment loads one shipment of a batch.
func (c *Client) Shipment(ctx context.Context, auth string, batchID, shipmentID int64) (models.Shipment, error) {
	var wire shipmentWire
	if err := c.do(ctx, http.MethodGet, shipmentPath(batchID, shipmentID), auth, nil, &wire, http.StatusOK); err != nil {
		return models.Shipment{}, err
	}
	return shipmentFromWire(wire), nil
}

func (c *Client) CreateShipment(ctx context.Context, auth string, batchID int64, shipment models.Shipment) error {
	var created shipmentWire
	return c.do(ctx, http.MethodPost, batchPath(batchID, "/shipments"), auth, shipmentToWire(shipment), &created, http.StatusCreated)
}

func (c *Client) UpdateShipment(ctx context.Context, auth string, batchID int64, shipment models.Shipment) error {
	var updated shipmentWire
	return c.do(ctx, http.MethodPut, shipmentPath(batchID, shipment.ID), auth, shipmentToWire(shipment), &updated, http.StatusOK)
}
