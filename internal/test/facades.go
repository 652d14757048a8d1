package test

import (
	"context"

	domainErrors "github.com/orderflow/orderflow/internal/domain/errors"
	"github.com/orderflow/orderflow/internal/domain/model"
	"github.com/orderflow/orderflow/internal/usecase"
)

// FacadeStub implements the handlers facade interfaces with overridable
// behaviour and sensible defaults.
type FacadeStub struct {
	SubmitOrderFn      func(context.Context, usecase.OrderForm, []model.OrderItem) (*model.Order, []usecase.Violation, error)
	OrderHistoryFn     func(context.Context) ([]model.Order, error)
	OrderFn            func(context.Context, string) (*model.Order, error)
	InvoiceDocumentsFn func(context.Context, string) ([]model.InvoiceDocument, error)
	EmailDraftFn       func(context.Context, string) (model.EmailDraft, string, error)
	CatalogFn          func(context.Context) []model.Product
	AutofillItemFn     func(context.Context, model.OrderItem) model.OrderItem
}

// SubmitOrder delegates to the override or accepts the order as-is.
func (s FacadeStub) SubmitOrder(ctx context.Context, form usecase.OrderForm, items []model.OrderItem) (*model.Order, []usecase.Violation, error) {
	if s.SubmitOrderFn != nil {
		return s.SubmitOrderFn(ctx, form, items)
	}
	order := SampleOrder()
	return &order, nil, nil
}

// OrderHistory delegates to the override or returns a single sample order.
func (s FacadeStub) OrderHistory(ctx context.Context) ([]model.Order, error) {
	if s.OrderHistoryFn != nil {
		return s.OrderHistoryFn(ctx)
	}
	return []model.Order{SampleOrder()}, nil
}

// Order delegates to the override or returns not found.
func (s FacadeStub) Order(ctx context.Context, id string) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

// InvoiceDocuments delegates to the override or returns not found.
func (s FacadeStub) InvoiceDocuments(ctx context.Context, id string) ([]model.InvoiceDocument, error) {
	if s.InvoiceDocumentsFn != nil {
		return s.InvoiceDocumentsFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

// EmailDraft delegates to the override or returns not found.
func (s FacadeStub) EmailDraft(ctx context.Context, id string) (model.EmailDraft, string, error) {
	if s.EmailDraftFn != nil {
		return s.EmailDraftFn(ctx, id)
	}
	return model.EmailDraft{}, "", domainErrors.ErrNotFound
}

// Catalog delegates to the override or returns no catalog.
func (s FacadeStub) Catalog(ctx context.Context) []model.Product {
	if s.CatalogFn != nil {
		return s.CatalogFn(ctx)
	}
	return nil
}

// AutofillItem delegates to the override or echoes the item.
func (s FacadeStub) AutofillItem(ctx context.Context, item model.OrderItem) model.OrderItem {
	if s.AutofillItemFn != nil {
		return s.AutofillItemFn(ctx, item)
	}
	return item
}

// HealthCheckerStub reports a configurable health state.
type HealthCheckerStub struct {
	Err error
}

// HealthCheck returns the configured error.
func (s HealthCheckerStub) HealthCheck(context.Context) error {
	return s.Err
}
