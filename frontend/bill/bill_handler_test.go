package bill

import (
	"errors"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"herbadmin/models"
)

func postForm(t *testing.T, form url.Values) *models.Bill {
	t.Helper()
	r := httptest.NewRequest("POST", "/admin/bills/42", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if err := r.ParseForm(); err != nil {
		t.Fatalf("parse form: %v", err)
	}
	bill, err := parseBillForm(r)
	if err != nil {
		t.Fatalf("parseBillForm: %v", err)
	}
	return &bill
}

func TestParseBillForm_ConvertsPricesToCents(t *testing.T) {
	t.Parallel()

	bill := postForm(t, url.Values{
		"date":         {"2026-08-01"},
		"vat":          {"19"},
		"rows":         {"2"},
		"herb_id_0":    {"1"},
		"unit_price_0": {"12.50"},
		"quantity_0":   {"2"},
	})

	if bill.Date != "2026-08-01" || bill.VAT != 19 {
		t.Fatalf("unexpected header fields: %+v", bill)
	}
	if len(bill.Lines) != 1 {
		t.Fatalf("expected the empty row to be skipped, got %d lines", len(bill.Lines))
	}
	if bill.Lines[0].UnitPrice != 1250 {
		t.Fatalf("expected 1250 cents, got %d", bill.Lines[0].UnitPrice)
	}
}

func TestParseBillForm_BadPriceFormat(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("POST", "/admin/bills/42", strings.NewReader(url.Values{
		"date":         {"2026-08-01"},
		"vat":          {"19"},
		"rows":         {"1"},
		"herb_id_0":    {"1"},
		"unit_price_0": {"12,50"},
		"quantity_0":   {"2"},
	}.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if err := r.ParseForm(); err != nil {
		t.Fatalf("parse form: %v", err)
	}

	if _, err := parseBillForm(r); !errors.Is(err, ErrInvalidPrices) {
		t.Fatalf("expected ErrInvalidPrices, got %v", err)
	}
}

func TestValidateBill(t *testing.T) {
	t.Parallel()

	valid := models.Bill{
		Date: "2026-08-01",
		VAT:  19,
		Lines: []models.BillLine{
			{HerbID: 1, UnitPrice: 1250, Quantity: 2},
			{HerbID: 1, UnitPrice: 900, Quantity: 1},
		},
	}
	if err := ValidateBill(valid); err != nil {
		t.Fatalf("expected valid bill (repeated herbs allowed), got %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*models.Bill)
		want   error
	}{
		{"missing date", func(b *models.Bill) { b.Date = "" }, ErrDateRequired},
		{"missing vat", func(b *models.Bill) { b.VAT = -1 }, ErrVATRequired},
		{"no lines", func(b *models.Bill) { b.Lines = nil }, ErrNoLines},
		{"line without herb", func(b *models.Bill) { b.Lines[0].HerbID = 0 }, ErrInvalidLines},
		{"line without quantity", func(b *models.Bill) { b.Lines[1].Quantity = 0 }, ErrInvalidLines},
	}
	for _, c := range cases {
		bill := valid
		bill.Lines = append([]models.BillLine(nil), valid.Lines...)
		c.mutate(&bill)
		if err := ValidateBill(bill); !errors.Is(err, c.want) {
			t.Fatalf("%s: expected %v, got %v", c.name, c.want, err)
		}
	}
}
