package test

import (
	"context"
	"sync"

	domainErrors "github.com/orderflow/orderflow/internal/domain/errors"
	"github.com/orderflow/orderflow/internal/domain/model"
)

// OrderRepositoryStub stores orders in-memory for tests, newest first on
// List, with per-method overrides.
type OrderRepositoryStub struct {
	sync.Mutex

	SaveFn        func(context.Context, model.Order) error
	GetByIDFn     func(context.Context, string) (*model.Order, error)
	ListFn        func(context.Context) ([]model.Order, error)
	CountByDateFn func(context.Context, string) (int, error)
	MarkSyncedFn  func(context.Context, string) error

	Saved  []model.Order
	Synced []string
}

// Save appends the order unless an override or error is configured.
func (s *OrderRepositoryStub) Save(ctx context.Context, order model.Order) error {
	if s.SaveFn != nil {
		return s.SaveFn(ctx, order)
	}
	s.Lock()
	defer s.Unlock()
	s.Saved = append(s.Saved, order)
	return nil
}

// GetByID finds a stored order or returns not found.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id string) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	s.Lock()
	defer s.Unlock()
	for _, o := range s.Saved {
		if o.ID == id {
			order := o.Clone()
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List returns stored orders most recent first.
func (s *OrderRepositoryStub) List(ctx context.Context) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	s.Lock()
	defer s.Unlock()
	result := make([]model.Order, 0, len(s.Saved))
	for i := len(s.Saved) - 1; i >= 0; i-- {
		result = append(result, s.Saved[i].Clone())
	}
	return result, nil
}

// CountByDate counts stored orders with the given date.
func (s *OrderRepositoryStub) CountByDate(ctx context.Context, date string) (int, error) {
	if s.CountByDateFn != nil {
		return s.CountByDateFn(ctx, date)
	}
	s.Lock()
	defer s.Unlock()
	count := 0
	for _, o := range s.Saved {
		if o.Date == date {
			count++
		}
	}
	return count, nil
}

// MarkSynced records the sync call.
func (s *OrderRepositoryStub) MarkSynced(ctx context.Context, id string) error {
	if s.MarkSyncedFn != nil {
		return s.MarkSyncedFn(ctx, id)
	}
	s.Lock()
	defer s.Unlock()
	s.Synced = append(s.Synced, id)
	return nil
}
