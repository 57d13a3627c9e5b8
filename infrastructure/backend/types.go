package backend

import "herbadmin/models"

// Wire types mirror the backend's snake_case JSON. In-memory code only sees
// the camelCase models; the translation happens exclusively in this package.

type herbWire struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type loginWire struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type orderLineWire struct {
	HerbID   int64   `json:"herb_id"`
	Quantity float64 `json:"quantity"`
}

type orderWire struct {
	ExternalID string         `json:"external_id,omitempty"`
	FirstName  string         `json:"first_name"`
	LastName   string         `json:"last_name"`
	Mail       string         `json:"mail"`
	Price      *int64         `json:"price,omitempty"`
	PaidAmount *int64         `json:"paid_amount,omitempty"`
	Herbs      []orderLineWire `json:"herbs"`
}

type aggregatedLineWire struct {
	HerbID   int64   `json:"herb_id"`
	Quantity float64 `json:"quantity"`
}

type billLineWire struct {
	HerbID    int64   `json:"herb_id"`
	UnitPrice int64   `json:"unit_price"`
	Quantity  float64 `json:"quantity"`
}

type billWire struct {
	ID    int64          `json:"id,omitempty"`
	Date  string         `json:"date"`
	VAT   float64        `json:"vat"`
	Herbs []billLineWire `json:"herbs"`
}

type shipmentWire struct {
	ID    int64           `json:"id,omitempty"`
	Date  string          `json:"date"`
	Herbs []orderLineWire `json:"herbs"`
}

type orderBatchWire struct {
	ID         int64  `json:"id,omitempty"`
	Name       string `json:"name"`
	OrderState string `json:"order_state,omitempty"`
}

// The stats endpoint names the ordered column quantity_orders on the wire.
type herbStatWire struct {
	HerbID            int64    `json:"herb_id"`
	HerbName          string   `json:"herb_name"`
	QuantityOrdered   float64  `json:"quantity_orders"`
	QuantityBill      *float64 `json:"quantity_bill"`
	QuantityShipments *float64 `json:"quantity_shipments"`
}

type missingHerbWire struct {
	HerbName        string   `json:"herb_name"`
	FirstName       string   `json:"first_name"`
	LastName        string   `json:"last_name"`
	ExternalOrderID string   `json:"external_order_id"`
	QuantityOrdered float64  `json:"quantity_ordered"`
	QuantityShipped *float64 `json:"quantity_shipped"`
}

// AggregatedLine is one backend-aggregated collective order row, not yet
// joined with the herb catalog.
type AggregatedLine struct {
	HerbID   int64
	Quantity float64
}

func orderToWire(o models.Order) orderWire {
	w := orderWire{
		ExternalID: o.ExternalID,
		FirstName:  o.FirstName,
		LastName:   o.LastName,
		Mail:       o.Mail,
		Price:      o.Price,
		PaidAmount: o.PaidAmount,
		Herbs:      make([]orderLineWire, 0, len(o.Lines)),
	}
	for _, l := range o.Lines {
		w.Herbs = append(w.Herbs, orderLineWire{HerbID: l.HerbID, Quantity: l.Quantity})
	}
	return w
}

func orderFromWire(w orderWire) models.Order {
	o := models.Order{
		ExternalID: w.ExternalID,
		FirstName:  w.FirstName,
		LastName:   w.LastName,
		Mail:       w.Mail,
		Price:      w.Price,
		PaidAmount: w.PaidAmount,
		Lines:      make([]models.OrderLine, 0, len(w.Herbs)),
	}
	for _, l := range w.Herbs {
		o.Lines = append(o.Lines, models.OrderLine{HerbID: l.HerbID, Quantity: l.Quantity})
	}
	return o
}

func billToWire(b models.Bill) billWire {
	w := billWire{ID: b.ID, Date: b.Date, VAT: b.VAT, Herbs: make([]billLineWire, 0, len(b.Lines))}
	for _, l := range b.Lines {
		w.Herbs = append(w.Herbs, billLineWire{HerbID: l.HerbID, UnitPrice: l.UnitPrice, Quantity: l.Quantity})
	}
	return w
}

func billFromWire(w billWire) models.Bill {
	b := models.Bill{ID: w.ID, Date: w.Date, VAT: w.VAT, Lines: make([]models.BillLine, 0, len(w.Herbs))}
	for _, l := range w.Herbs {
		b.Lines = append(b.Lines, models.BillLine{HerbID: l.HerbID, UnitPrice: l.UnitPrice, Quantity: l.Quantity})
	}
	return b
}

func shipmentToWire(s models.Shipment) shipmentWire {
	w := shipmentWire{ID: s.ID, Date: s.Date, Herbs: make([]orderLineWire, 0, len(s.Lines))}
	for _, l := range s.Lines {
		w.Herbs = append(w.Herbs, orderLineWire{HerbID: l.HerbID, Quantity: l.Quantity})
	}
	return w
}

func shipmentFromWire(w shipmentWire) models.Shipment {
	s := models.Shipment{ID: w.ID, Date: w.Date, Lines: make([]models.ShipmentLine, 0, len(w.Herbs))}
	for _, l := range w.Herbs {
		s.Lines = append(s.Lines, models.ShipmentLine{HerbID: l.HerbID, Quantity: l.Quantity})
	}
	return s
}
