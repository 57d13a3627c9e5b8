package collective

import (
	"strings"
	"testing"

	"herbadmin/infrastructure/backend"
	"herbadmin/models"
)

func TestJoinCatalog_SortsByHerbName(t *testing.T) {
	t.Parallel()

	herbs := []models.Herb{
		{ID: 1, Name: "Tulsi"},
		{ID: 2, Name: "Ashwagandha"},
		{ID: 3, Name: "Brahmi"},
	}
	lines := []backend.AggregatedLine{
		{HerbID: 1, Quantity: 4},
		{HerbID: 3, Quantity: 1.5},
		{HerbID: 2, Quantity: 2},
	}

	rows, err := JoinCatalog(lines, herbs)
	if err != nil {
		t.Fatalf("JoinCatalog returned error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0].HerbName != "Ashwagandha" || rows[1].HerbName != "Brahmi" || rows[2].HerbName != "Tulsi" {
		t.Fatalf("rows not sorted by name: %+v", rows)
	}
	if rows[2].Quantity != 4 {
		t.Fatalf("quantity lost in join: %+v", rows[2])
	}
}

func TestJoinCatalog_UnknownHerbIsAnError(t *testing.T) {
	t.Parallel()

	herbs := []models.Herb{{ID: 1, Name: "Tulsi"}}
	lines := []backend.AggregatedLine{{HerbID: 99, Quantity: 1}}

	_, err := JoinCatalog(lines, herbs)
	if err == nil {
		t.Fatalf("expected error for unknown herb id")
	}
	if !strings.Contains(err.Error(), "99") {
		t.Fatalf("error should name the herb id, got %v", err)
	}
}

func TestAggregate_SumsPerHerb(t *testing.T) {
	t.Parallel()

	herbs := []models.Herb{
		{ID: 1, Name: "Tulsi"},
		{ID: 2, Name: "Ashwagandha"},
	}
	// Lines across several orders, the same herb more than once.
	lines := []models.OrderLine{
		{HerbID: 1, Quantity: 2},
		{HerbID: 2, Quantity: 1},
		{HerbID: 1, Quantity: 0.5},
		{HerbID: 1, Quantity: 3},
	}

	rows, err := Aggregate(lines, herbs)
	if err != nil {
		t.Fatalf("Aggregate returned error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].HerbName != "Ashwagandha" || rows[0].Quantity != 1 {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
	if rows[1].HerbName != "Tulsi" || rows[1].Quantity != 5.5 {
		t.Fatalf("unexpected summed row: %+v", rows[1])
	}
}

func TestAggregate_OmitsHerbsWithoutLines(t *testing.T) {
	t.Parallel()

	herbs := []models.Herb{
		{ID: 1, Name: "Tulsi"},
		{ID: 2, Name: "Ashwagandha"},
	}
	lines := []models.OrderLine{{HerbID: 2, Quantity: 3}}

	rows, err := Aggregate(lines, herbs)
	if err != nil {
		t.Fatalf("Aggregate returned error: %v", err)
	}
	if len(rows) != 1 || rows[0].HerbName != "Ashwagandha" {
		t.Fatalf("expected only the ordered herb, got %+v", rows)
	}
}

func TestJoinCatalog_EmptyAggregation(t *testing.T) {
	t.Parallel()

	rows, err := JoinCatalog(nil, []models.Herb{{ID: 1, Name: "Tulsi"}})
	if err != nil {
		t.Fatalf("JoinCatalog returned error: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(rows))
	}
}
