package model

// Product is a reference catalog entry supplied by an external source.
// The catalog is read-only to this service; it is consulted for autofill
// and price-deviation checks, never stored alongside orders.
type Product struct {
	Name  string
	Unit  string
	Price float64
}
