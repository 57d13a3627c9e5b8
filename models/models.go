package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Herb is immutable reference data maintained out of band.
type Herb struct {
	ID   int64
	Name string
}

// OrderLine is one herb position inside an order.
type OrderLine struct {
	HerbID   int64
	Quantity float64
}

// Order is an individual customer order inside an order batch.
//
// Price and PaidAmount are in minor currency units (cents) and only set
// once a bill exists.
type Order struct {
	ExternalID string
	FirstName  string
	LastName   string
	Mail       string
	Price      *int64
	PaidAmount *int64
	Lines      []OrderLine
}

// BillLine is one herb position on the supplier bill. UnitPrice is in
// minor currency units.
type BillLine struct {
	HerbID    int64
	UnitPrice int64
	Quantity  float64
}

// Bill is the supplier bill for an order batch.
type Bill struct {
	ID    int64
	Date  string
	VAT   float64
	Lines []BillLine
}

// ShipmentLine is one herb position of a received shipment.
type ShipmentLine struct {
	HerbID   int64
	Quantity float64
}

// Shipment is one delivery received for an order batch.
type Shipment struct {
	ID    int64
	Date  string
	Lines []ShipmentLine
}

// Order batch lifecycle states in intended progression order. The overview
// form allows selecting any state directly; moving backwards is an
// administrative override, not an error.
const (
	OrderStateCreated              = "CREATED"
	OrderStateOrdersOpen           = "ORDERS_OPEN"
	OrderStateOrderBatchSubmitted  = "ORDER_BATCH_SUBMITTED"
	OrderStateShipmentDistribution = "SHIPMENT_DISTRIBUTION"
	OrderStateClosed               = "CLOSED"
)

// OrderStates lists all lifecycle states in progression order.
var OrderStates = []string{
	OrderStateCreated,
	OrderStateOrdersOpen,
	OrderStateOrderBatchSubmitted,
	OrderStateShipmentDistribution,
	OrderStateClosed,
}

// OrderBatch is a named collection period for orders, bills and shipments.
type OrderBatch struct {
	ID         int64
	Name       string
	OrderState string
}

// HerbStat is one reconciled row of the per-herb overview. QuantityBill and
// QuantityShipments are nil while no bill/shipment data exists for the herb.
// The difference fields are only set when the delta is non-zero.
type HerbStat struct {
	HerbID             int64
	HerbName           string
	QuantityOrdered    float64
	QuantityBill       *float64
	QuantityShipments  *float64
	BillDifference     string
	ShipmentDifference string
}

// MissingHerbEntry is one row of the per-order shortage worklist.
type MissingHerbEntry struct {
	HerbName        string
	FirstName       string
	LastName        string
	ExternalOrderID string
	QuantityOrdered float64
	QuantityShipped *float64
	Difference      float64
}

// Session carries the authenticated admin identity. Credential is the
// Basic-auth token sent to the backend; it is held in memory only and
// persisted exclusively as a sealed blob.
type Session struct {
	bun.BaseModel `bun:"table:sessions,alias:s"`

	ID               string    `bun:"id,pk"`
	Username         string    `bun:"username,notnull"`
	Credential       string    `bun:"-"`
	SealedCredential []byte    `bun:"credential_sealed,notnull"`
	ExpiresAt        time.Time `bun:"expires_at,notnull"`
	CreatedAt        time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt        time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}

// Expired returns true when the session expiry time has passed.
func (s Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}

// Authenticated reports whether the session carries a usable credential.
func (s Session) Authenticated() bool {
	return s.ID != "" && s.Credential != ""
}
