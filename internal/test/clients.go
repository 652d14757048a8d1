package test

import (
	"context"
	"sync"

	"github.com/orderflow/orderflow/internal/domain/model"
)

// CatalogClientStub serves a fixed product list.
type CatalogClientStub struct {
	Products []model.Product
	Err      error
}

// Fetch returns the configured catalog.
func (s CatalogClientStub) Fetch(context.Context) ([]model.Product, error) {
	return s.Products, s.Err
}

// SheetsClientStub records orders sent to the spreadsheet sink.
type SheetsClientStub struct {
	sync.Mutex

	SendFn func(context.Context, model.Order) error
	Sent   []model.Order
	Err    error
}

// Send records the order and returns the configured error.
func (s *SheetsClientStub) Send(ctx context.Context, order model.Order) error {
	if s.SendFn != nil {
		return s.SendFn(ctx, order)
	}
	s.Lock()
	defer s.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.Sent = append(s.Sent, order)
	return nil
}

// DraftClientStub returns a fixed email draft.
type DraftClientStub struct {
	DraftFn    func(context.Context, model.Order) (model.EmailDraft, error)
	DraftValue model.EmailDraft
	Err        error
}

// Draft returns the configured draft or error.
func (s DraftClientStub) Draft(ctx context.Context, order model.Order) (model.EmailDraft, error) {
	if s.DraftFn != nil {
		return s.DraftFn(ctx, order)
	}
	if s.Err != nil {
		return model.EmailDraft{}, s.Err
	}
	return s.DraftValue, nil
}

// SyncQueueStub records enqueued orders.
type SyncQueueStub struct {
	sync.Mutex

	Enqueued []model.Order
	Full     bool
}

// Enqueue records the order unless the queue is marked full.
func (s *SyncQueueStub) Enqueue(order model.Order) bool {
	s.Lock()
	defer s.Unlock()
	if s.Full {
		return false
	}
	s.Enqueued = append(s.Enqueued, order)
	return true
}
