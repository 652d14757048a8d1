package repository

import (
	"context"

	"github.com/orderflow/orderflow/internal/domain/model"
)

// OrderRepository describes persistence operations with the order history.
// The history is append-only: orders are saved once and never updated,
// except for the sync timestamp recorded by the dispatcher.
type OrderRepository interface {
	Save(ctx context.Context, order model.Order) error
	GetByID(ctx context.Context, id string) (*model.Order, error)
	List(ctx context.Context) ([]model.Order, error)
	CountByDate(ctx context.Context, date string) (int, error)
	MarkSynced(ctx context.Context, id string) error
}
