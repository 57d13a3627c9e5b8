package exports

import (
	"bytes"
	"testing"

	"herbadmin/frontend/collective"
	"herbadmin/models"
)

func TestRenderCollectivePDF(t *testing.T) {
	t.Parallel()

	pdf, err := renderCollectivePDF("Kräuterbestellung 2026", []collective.Row{
		{HerbName: "Ashwagandha", Quantity: 4},
		{HerbName: "Tulsi", Quantity: 1.5},
	})
	if err != nil {
		t.Fatalf("renderCollectivePDF returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("expected non-empty pdf bytes")
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output is not a pdf")
	}
}

func TestRenderPackingSlipPDF(t *testing.T) {
	t.Parallel()

	order := models.Order{
		ExternalID: "a1b2c3",
		FirstName:  "Anna",
		LastName:   "Berg",
		Mail:       "anna@example.org",
		Lines: []models.OrderLine{
			{HerbID: 1, Quantity: 2},
			{HerbID: 99, Quantity: 1},
		},
	}
	herbs := map[int64]models.Herb{1: {ID: 1, Name: "Tulsi"}}

	pdf, err := renderPackingSlipPDF(order, herbs)
	if err != nil {
		t.Fatalf("renderPackingSlipPDF returned error: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output is not a pdf")
	}
}

func TestRenderCode128PNG(t *testing.T) {
	t.Parallel()

	png, err := renderCode128PNG("a1b2c3", 600, 120)
	if err != nil {
		t.Fatalf("renderCode128PNG returned error: %v", err)
	}
	if len(png) == 0 {
		t.Fatalf("expected non-empty png bytes")
	}
}

func TestWriteCollectiveXLSX(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := writeCollectiveXLSX(&buf, "Kräuterbestellung 2026", []collective.Row{
		{HerbName: "Ashwagandha", Quantity: 4},
	})
	if err != nil {
		t.Fatalf("writeCollectiveXLSX returned error: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected non-empty workbook")
	}
}
