package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"herbadmin/models"
)

func TestBasicToken(t *testing.T) {
	t.Parallel()

	if got := BasicToken("admin", "secret"); got != "YWRtaW46c2VjcmV0" {
		t.Fatalf("unexpected token %q", got)
	}
}

func TestLogin(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/admin/login" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var body struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode login body: %v", err)
		}
		if body.Username != "admin" || body.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	if err := client.Login(context.Background(), "admin", "secret"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if err := client.Login(context.Background(), "admin", "wrong"); err == nil {
		t.Fatalf("expected error for rejected login")
	}
}

func TestOrders_DecodesSnakeCase(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Basic token123" {
			t.Errorf("unexpected auth header %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"external_id":"abc","first_name":"Anna","last_name":"Berg","mail":"anna@example.org","price":1250,
			 "herbs":[{"herb_id":3,"quantity":2.5}]}
		]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	orders, err := client.Orders(context.Background(), "token123")
	if err != nil {
		t.Fatalf("orders failed: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orders))
	}
	o := orders[0]
	if o.ExternalID != "abc" || o.FirstName != "Anna" || o.LastName != "Berg" {
		t.Fatalf("unexpected order %+v", o)
	}
	if o.Price == nil || *o.Price != 1250 {
		t.Fatalf("price not decoded: %+v", o.Price)
	}
	if len(o.Lines) != 1 || o.Lines[0].HerbID != 3 || o.Lines[0].Quantity != 2.5 {
		t.Fatalf("lines not decoded: %+v", o.Lines)
	}
}

func TestOrder_NotFound(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Order(context.Background(), "token", "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestOrderBatchStats_WireFieldNames(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/admin/order_batches/42/stats" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"herb_id":1,"herb_name":"Tulsi","quantity_orders":4,"quantity_bill":5},
			{"herb_id":2,"herb_name":"Brahmi","quantity_orders":2}
		]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	stats, err := client.OrderBatchStats(context.Background(), "token", 42)
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("expected 2 stats, got %d", len(stats))
	}
	// The backend names the ordered column quantity_orders.
	if stats[0].QuantityOrdered != 4 {
		t.Fatalf("quantity_orders not mapped: %+v", stats[0])
	}
	if stats[0].QuantityBill == nil || *stats[0].QuantityBill != 5 {
		t.Fatalf("quantity_bill not mapped: %+v", stats[0])
	}
	if stats[1].QuantityBill != nil || stats[1].QuantityShipments != nil {
		t.Fatalf("absent quantities must stay nil: %+v", stats[1])
	}
}

func TestMissingHerbs_NullableShippedQuantity(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/admin/order_batches/42/missing-herbs" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"herb_name":"Tulsi","first_name":"Anna","last_name":"Berg","external_order_id":"abc","quantity_ordered":4,"quantity_shipped":1.5},
			{"herb_name":"Brahmi","first_name":"Zoe","last_name":"Adler","external_order_id":"def","quantity_ordered":2}
		]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	entries, err := client.MissingHerbs(context.Background(), "token", 42)
	if err != nil {
		t.Fatalf("missing herbs failed: %v", err)
	}
	if entries[0].QuantityShipped == nil || *entries[0].QuantityShipped != 1.5 {
		t.Fatalf("quantity_shipped not mapped: %+v", entries[0])
	}
	if entries[1].QuantityShipped != nil {
		t.Fatalf("absent quantity_shipped must stay nil: %+v", entries[1])
	}
}

func TestCreateOrder_SendsSnakeCaseLines(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var raw map[string]any
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if _, ok := raw["first_name"]; !ok {
			t.Errorf("expected snake_case first_name, got %v", raw)
		}
		if _, ok := raw["herbs"]; !ok {
			t.Errorf("expected lines under herbs key, got %v", raw)
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"external_id":"abc"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	order := models.Order{
		FirstName: "Anna",
		LastName:  "Berg",
		Mail:      "anna@example.org",
		Lines:     []models.OrderLine{{HerbID: 1, Quantity: 2}},
	}
	if err := client.CreateOrder(context.Background(), "token", order); err != nil {
		t.Fatalf("create order failed: %v", err)
	}
}
