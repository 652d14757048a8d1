package usecase

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/orderflow/orderflow/internal/domain/model"
)

func TestAmount(t *testing.T) {
	require.Equal(t, 20.0, Amount(2, 10))
	require.Equal(t, 0.0, Amount(0, 10))
	require.Equal(t, 0.0, Amount(3, 0))
	require.Equal(t, 7.5, Amount(2.5, 3))
}

func TestRecalculateKeepsAmountDerived(t *testing.T) {
	item := model.OrderItem{Name: "Widget", Quantity: 2, Price: 10, Amount: 999}
	item = Recalculate(item)
	require.Equal(t, 20.0, item.Amount)

	item.Price = 12
	item = Recalculate(item)
	require.Equal(t, 24.0, item.Amount)

	item.Quantity = 3
	item = Recalculate(item)
	require.Equal(t, 36.0, item.Amount)
}

func TestTotal(t *testing.T) {
	require.Equal(t, 0.0, Total(nil))
	require.Equal(t, 0.0, Total([]model.OrderItem{}))

	items := []model.OrderItem{
		{Name: "Widget", Quantity: 2, Price: 10},
		{Name: "Gadget", Quantity: 1, Price: 5},
	}
	for i := range items {
		items[i] = Recalculate(items[i])
	}
	require.Equal(t, 20.0, items[0].Amount)
	require.Equal(t, 5.0, items[1].Amount)
	require.Equal(t, 25.0, Total(items))
}
