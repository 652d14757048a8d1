package usecase

import "github.com/orderflow/orderflow/internal/domain/model"

// Amount derives a line amount from quantity and unit price.
func Amount(quantity, price float64) float64 {
	return quantity * price
}

// Recalculate returns the item with its amount rederived. The amount is
// never set independently: every edit path goes through here.
func Recalculate(item model.OrderItem) model.OrderItem {
	item.Amount = Amount(item.Quantity, item.Price)
	return item
}

// Total sums line amounts. An empty sequence totals to zero.
func Total(items []model.OrderItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Amount
	}
	return total
}
