package missing

import (
	"testing"

	"herbadmin/models"
)

func ptr(f float64) *float64 { return &f }

func TestDifferences_TreatsMissingShipmentAsZero(t *testing.T) {
	t.Parallel()

	entries := Differences([]models.MissingHerbEntry{
		{HerbName: "Brahmi", QuantityOrdered: 4, QuantityShipped: ptr(1.5)},
		{HerbName: "Tulsi", QuantityOrdered: 2},
	})

	if entries[0].Difference != 2.5 {
		t.Fatalf("expected difference 2.5, got %v", entries[0].Difference)
	}
	if entries[1].Difference != 2 {
		t.Fatalf("expected difference 2 for nil shipped quantity, got %v", entries[1].Difference)
	}
}

func TestDifferences_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	in := []models.MissingHerbEntry{{HerbName: "Brahmi", QuantityOrdered: 4}}
	_ = Differences(in)
	if in[0].Difference != 0 {
		t.Fatalf("input was mutated: %v", in[0].Difference)
	}
}

func TestSort_ByHerbThenCustomer(t *testing.T) {
	t.Parallel()

	entries := []models.MissingHerbEntry{
		{HerbName: "Tulsi", FirstName: "Anna", LastName: "Berg"},
		{HerbName: "Brahmi", FirstName: "Zoe", LastName: "Adler"},
		{HerbName: "Brahmi", FirstName: "Anna", LastName: "Berg"},
	}
	Sort(entries)

	if entries[0].HerbName != "Brahmi" || entries[0].FirstName != "Anna" {
		t.Fatalf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].HerbName != "Brahmi" || entries[1].FirstName != "Zoe" {
		t.Fatalf("unexpected second entry: %+v", entries[1])
	}
	if entries[2].HerbName != "Tulsi" {
		t.Fatalf("unexpected third entry: %+v", entries[2])
	}
}
