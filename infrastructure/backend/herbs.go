package backend

import (
	"context"
	"net/http"

	"herbadmin/models"
)

// Herbs loads the full herb catalog. The endpoint is unauthenticated.
func (c *Client) Herbs(ctx context.Context) ([]models.Herb, error) {
	var wire []herbWire
	if err := c.do(ctx, http.MethodGet, "/api/herbs", "", nil, &wire, http.StatusOK); err != nil {
		return nil, err
	}
	herbs := make([]models.Herb, 0, len(wire))
	for _, h := range wire {
		herbs = append(herbs, models.Herb{ID: h.ID, Name: h.Name})
	}
	return herbs, nil
}

// HerbsByID indexes a catalog slice for lookups.
func HerbsByID(herbs []models.Herb) map[int64]models.Herb {
	byID := make(map[int64]models.Herb, len(herbs))
	for _, h := range herbs {
		byID[h.ID] = h
	}
	return byID
}
