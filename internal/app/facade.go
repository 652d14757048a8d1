package app

import (
	"context"
	"log/slog"

	"github.com/orderflow/orderflow/internal/adapter/catalog"
	"github.com/orderflow/orderflow/internal/adapter/maildraft"
	"github.com/orderflow/orderflow/internal/domain/model"
	"github.com/orderflow/orderflow/internal/usecase"
)

// SyncQueue accepts persisted orders for background spreadsheet sync.
type SyncQueue interface {
	Enqueue(order model.Order) bool
}

// OrderFlowFacade orchestrates order submission and the read paths used
// by the HTTP surface.
type OrderFlowFacade struct {
	orders   *usecase.OrderUseCase
	invoices *usecase.InvoiceUseCase
	catalog  catalog.Client
	drafts   maildraft.Client
	sync     SyncQueue
	logger   *slog.Logger
}

// NewOrderFlowFacade constructs the facade.
func NewOrderFlowFacade(
	orders *usecase.OrderUseCase,
	invoices *usecase.InvoiceUseCase,
	catalogClient catalog.Client,
	draftClient maildraft.Client,
	sync SyncQueue,
	logger *slog.Logger,
) *OrderFlowFacade {
	return &OrderFlowFacade{
		orders:   orders,
		invoices: invoices,
		catalog:  catalogClient,
		drafts:   draftClient,
		sync:     sync,
		logger:   logger,
	}
}

// SubmitOrder validates the items against the current catalog, assembles
// and persists the order, then schedules the one-shot spreadsheet sync.
// Violations block submission and are returned to the caller; the order
// is only persisted when there are none.
func (f *OrderFlowFacade) SubmitOrder(ctx context.Context, form usecase.OrderForm, items []model.OrderItem) (*model.Order, []usecase.Violation, error) {
	products := f.Catalog(ctx)
	if violations := usecase.ValidateItems(items, products); len(violations) > 0 {
		return nil, violations, nil
	}

	order, err := f.orders.Submit(ctx, form, items)
	if err != nil {
		return nil, nil, err
	}

	// The order is already part of the history; a full queue or a
	// failing webhook must not undo or delay that.
	f.sync.Enqueue(order.Clone())

	return order, nil, nil
}

// OrderHistory returns all orders, most recent first.
func (f *OrderFlowFacade) OrderHistory(ctx context.Context) ([]model.Order, error) {
	return f.orders.History(ctx)
}

// Order returns a single order from the history.
func (f *OrderFlowFacade) Order(ctx context.Context, id string) (*model.Order, error) {
	return f.orders.Get(ctx, id)
}

// InvoiceDocuments renders both printable copies for an order.
func (f *OrderFlowFacade) InvoiceDocuments(ctx context.Context, id string) ([]model.InvoiceDocument, error) {
	order, err := f.orders.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return f.invoices.Documents(*order), nil
}

// EmailDraft returns the notification draft and a ready-made mailto URL.
// When the external text service fails the deterministic local template
// is substituted, so the caller always receives a usable draft.
func (f *OrderFlowFacade) EmailDraft(ctx context.Context, id string) (model.EmailDraft, string, error) {
	order, err := f.orders.Get(ctx, id)
	if err != nil {
		return model.EmailDraft{}, "", err
	}

	draft, draftErr := f.drafts.Draft(ctx, *order)
	if draftErr != nil {
		f.logger.Warn("email draft service failed, using local template",
			slog.String("order", order.ID), slog.String("error", draftErr.Error()))
		draft = maildraft.Fallback(*order)
	}

	return draft, maildraft.MailtoURL(*order, draft), nil
}

// Catalog returns the current product list, or nothing when the source
// is unavailable. Catalog failures never block order entry.
func (f *OrderFlowFacade) Catalog(ctx context.Context) []model.Product {
	products, err := f.catalog.Fetch(ctx)
	if err != nil {
		f.logger.Warn("catalog fetch failed, proceeding without catalog", slog.String("error", err.Error()))
		return nil
	}
	return products
}

// AutofillItem fills unit and price from the catalog for the item's name.
func (f *OrderFlowFacade) AutofillItem(ctx context.Context, item model.OrderItem) model.OrderItem {
	return usecase.Autofill(item, f.Catalog(ctx))
}
