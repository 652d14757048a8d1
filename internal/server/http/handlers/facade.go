package handlers

import (
	"context"

	"github.com/orderflow/orderflow/internal/domain/model"
	"github.com/orderflow/orderflow/internal/usecase"
)

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	SubmitOrder(ctx context.Context, form usecase.OrderForm, items []model.OrderItem) (*model.Order, []usecase.Violation, error)
	OrderHistory(ctx context.Context) ([]model.Order, error)
	Order(ctx context.Context, id string) (*model.Order, error)
}

// InvoiceFacade renders printable invoice copies.
type InvoiceFacade interface {
	InvoiceDocuments(ctx context.Context, id string) ([]model.InvoiceDocument, error)
}

// DraftFacade produces notification email drafts.
type DraftFacade interface {
	EmailDraft(ctx context.Context, id string) (model.EmailDraft, string, error)
}

// CatalogFacade exposes the product catalog and autofill.
type CatalogFacade interface {
	Catalog(ctx context.Context) []model.Product
	AutofillItem(ctx context.Context, item model.OrderItem) model.OrderItem
}

// OrderFlowFacade aggregates the full set of operations used across handlers.
type OrderFlowFacade interface {
	OrderFacade
	InvoiceFacade
	DraftFacade
	CatalogFacade
}

// HealthChecker verifies the service's storage dependency.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}
