package orders

import (
	"errors"
	"testing"

	"herbadmin/models"
)

func validOrder() models.Order {
	return models.Order{
		FirstName: "Anna",
		LastName:  "Berg",
		Mail:      "anna@example.org",
		Lines: []models.OrderLine{
			{HerbID: 1, Quantity: 2},
			{HerbID: 2, Quantity: 0.5},
		},
	}
}

func TestValidateOrder_Valid(t *testing.T) {
	t.Parallel()

	if err := ValidateOrder(validOrder()); err != nil {
		t.Fatalf("expected valid order, got %v", err)
	}
}

func TestValidateOrder_FieldOrder(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*models.Order)
		want   error
	}{
		{"first name", func(o *models.Order) { o.FirstName = " " }, ErrFirstNameRequired},
		{"last name", func(o *models.Order) { o.LastName = "" }, ErrLastNameRequired},
		{"mail", func(o *models.Order) { o.Mail = "" }, ErrMailRequired},
		{"no lines", func(o *models.Order) { o.Lines = nil }, ErrNoHerbs},
		{"missing herb", func(o *models.Order) { o.Lines[0].HerbID = 0 }, ErrInvalidHerbLines},
		{"zero quantity", func(o *models.Order) { o.Lines[1].Quantity = 0 }, ErrInvalidHerbLines},
		{"duplicate herb", func(o *models.Order) { o.Lines[1].HerbID = 1 }, ErrDuplicateHerbs},
	}
	for _, c := range cases {
		order := validOrder()
		c.mutate(&order)
		if err := ValidateOrder(order); !errors.Is(err, c.want) {
			t.Fatalf("%s: expected %v, got %v", c.name, c.want, err)
		}
	}
}

func TestBuildOrderRows_SortsByDisplayName(t *testing.T) {
	t.Parallel()

	price := int64(1250)
	rows := BuildOrderRows([]models.Order{
		{ExternalID: "b", FirstName: "Zoe", LastName: "Adler", Price: &price},
		{ExternalID: "a", FirstName: "Anna", LastName: "Berg"},
	})

	if rows[0].Name != "Anna Berg" || rows[1].Name != "Zoe Adler" {
		t.Fatalf("rows not sorted by display name: %+v", rows)
	}
	if rows[1].Price != "12.50 €" {
		t.Fatalf("expected formatted euro price, got %q", rows[1].Price)
	}
	if rows[0].Price != "–" {
		t.Fatalf("expected placeholder for missing price, got %q", rows[0].Price)
	}
}
