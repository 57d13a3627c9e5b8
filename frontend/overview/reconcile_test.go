package overview

import (
	"testing"

	"herbadmin/models"
)

func ptr(f float64) *float64 { return &f }

func TestReconcile_Differences(t *testing.T) {
	t.Parallel()

	stats := []models.HerbStat{
		{HerbName: "Ashwagandha", QuantityOrdered: 10, QuantityBill: ptr(12), QuantityShipments: ptr(8)},
		{HerbName: "Brahmi", QuantityOrdered: 5, QuantityBill: ptr(5), QuantityShipments: ptr(5)},
		{HerbName: "Shatavari", QuantityOrdered: 3},
	}

	out := Reconcile(stats)

	if out[0].BillDifference != "+2" {
		t.Fatalf("expected bill difference +2, got %q", out[0].BillDifference)
	}
	if out[0].ShipmentDifference != "-2" {
		t.Fatalf("expected shipment difference -2, got %q", out[0].ShipmentDifference)
	}
	if out[1].BillDifference != "" || out[1].ShipmentDifference != "" {
		t.Fatalf("expected no differences for matching quantities, got %q / %q", out[1].BillDifference, out[1].ShipmentDifference)
	}
	if out[2].BillDifference != "" || out[2].ShipmentDifference != "" {
		t.Fatalf("expected no differences without bill/shipment data, got %q / %q", out[2].BillDifference, out[2].ShipmentDifference)
	}
}

func TestReconcile_FractionalDifference(t *testing.T) {
	t.Parallel()

	out := Reconcile([]models.HerbStat{
		{HerbName: "Tulsi", QuantityOrdered: 2.5, QuantityShipments: ptr(3)},
	})
	if out[0].ShipmentDifference != "+0.5" {
		t.Fatalf("expected +0.5, got %q", out[0].ShipmentDifference)
	}
}

func TestReconcile_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	stats := []models.HerbStat{
		{HerbName: "Ashwagandha", QuantityOrdered: 10, QuantityBill: ptr(12)},
	}
	_ = Reconcile(stats)

	if stats[0].BillDifference != "" {
		t.Fatalf("input was mutated: %q", stats[0].BillDifference)
	}
}
