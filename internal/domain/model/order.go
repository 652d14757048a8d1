package model

import "time"

// OrderItem describes one purchased line of an order.
type OrderItem struct {
	ID       string
	Name     string
	Quantity float64
	Unit     string
	Price    float64
	Amount   float64
	Remarks  string
}

// NewOrderItem returns a fresh line with form defaults applied.
func NewOrderItem() OrderItem {
	return OrderItem{Quantity: 1}
}

// Order is a finalized snapshot of a submitted store order.
// Orders are never mutated after assembly; corrections require a new Order.
type Order struct {
	ID          string
	Date        string
	StoreName   string
	TaxID       string
	Address     string
	Email       string
	Remarks     string
	Items       []OrderItem
	TotalAmount float64
	CreatedAt   time.Time
	SyncedAt    *time.Time
}

// Clone returns a deep copy so callers can never reach the stored item slice.
func (o Order) Clone() Order {
	clone := o
	clone.Items = append([]OrderItem(nil), o.Items...)
	if o.SyncedAt != nil {
		syncedAt := *o.SyncedAt
		clone.SyncedAt = &syncedAt
	}
	return clone
}
