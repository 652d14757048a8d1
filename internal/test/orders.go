package test

import (
	"time"

	"github.com/orderflow/orderflow/internal/domain/model"
)

// SampleOrder returns a two-line order suitable for most tests.
func SampleOrder() model.Order {
	return model.Order{
		ID:        "ORD-20240501001",
		Date:      "2024-05-01",
		StoreName: "Main Street Store",
		TaxID:     "12345678",
		Address:   "1 Main Street",
		Email:     "store@example.com",
		Items: []model.OrderItem{
			{ID: "item-1", Name: "Widget", Quantity: 2, Unit: "pcs", Price: 10, Amount: 20},
			{ID: "item-2", Name: "Gadget", Quantity: 1, Unit: "pcs", Price: 5, Amount: 5},
		},
		TotalAmount: 25,
		CreatedAt:   time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

// SampleCatalog returns a catalog matching SampleOrder's first line.
func SampleCatalog() []model.Product {
	return []model.Product{
		{Name: "Widget", Unit: "pcs", Price: 10},
		{Name: "Gizmo", Unit: "box", Price: 30},
	}
}
