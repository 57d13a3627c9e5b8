package shipments

import (
	"errors"
	"testing"

	"herbadmin/models"
)

func TestValidateShipment_Valid(t *testing.T) {
	t.Parallel()

	shipment := models.Shipment{
		Date: "2026-08-01",
		Lines: []models.ShipmentLine{
			{HerbID: 1, Quantity: 2},
		},
	}
	if err := ValidateShipment(shipment); err != nil {
		t.Fatalf("expected valid shipment, got %v", err)
	}
}

func TestValidateShipment_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		shipment models.Shipment
		want     error
	}{
		{
			"missing date",
			models.Shipment{Lines: []models.ShipmentLine{{HerbID: 1, Quantity: 1}}},
			ErrDateRequired,
		},
		{
			"bad date format",
			models.Shipment{Date: "01.08.2026", Lines: []models.ShipmentLine{{HerbID: 1, Quantity: 1}}},
			ErrDateRequired,
		},
		{
			"no lines",
			models.Shipment{Date: "2026-08-01"},
			ErrNoHerbs,
		},
		{
			"line without herb",
			models.Shipment{Date: "2026-08-01", Lines: []models.ShipmentLine{{Quantity: 1}}},
			ErrInvalidHerbLines,
		},
		{
			"line without quantity",
			models.Shipment{Date: "2026-08-01", Lines: []models.ShipmentLine{{HerbID: 1}}},
			ErrInvalidHerbLines,
		},
	}
	for _, c := range cases {
		if err := ValidateShipment(c.shipment); !errors.Is(err, c.want) {
			t.Fatalf("%s: expected %v, got %v", c.name, c.want, err)
		}
	}
}

func TestValidateShipment_AllowsRepeatedHerb(t *testing.T) {
	t.Parallel()

	shipment := models.Shipment{
		Date: "2026-08-01",
		Lines: []models.ShipmentLine{
			{HerbID: 1, Quantity: 2},
			{HerbID: 1, Quantity: 3},
		},
	}
	if err := ValidateShipment(shipment); err != nil {
		t.Fatalf("repeated herbs must be allowed on deliveries, got %v", err)
	}
}
