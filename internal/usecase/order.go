package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/orderflow/orderflow/internal/domain/errors"
	"github.com/orderflow/orderflow/internal/domain/model"
	"github.com/orderflow/orderflow/internal/domain/repository"
)

// OrderForm carries the header fields collected from the order form.
type OrderForm struct {
	Date      string
	StoreName string
	TaxID     string
	Address   string
	Email     string
	Remarks   string
}

// OrderUseCase assembles and persists orders and serves the history.
type OrderUseCase struct {
	orders repository.OrderRepository
	now    func() time.Time
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders, now: time.Now}
}

// Assemble builds a finalized, immutable order from form fields and
// validated items: identifier from the day sequence, amounts and total
// rederived, creation timestamp stamped. Validation against the catalog
// is the caller's gate; assembling with missing preconditions is an error.
func (u *OrderUseCase) Assemble(ctx context.Context, form OrderForm, items []model.OrderItem) (*model.Order, error) {
	if len(items) == 0 {
		return nil, domainErrors.ErrEmptyOrder
	}
	if err := requireFields(form); err != nil {
		return nil, err
	}

	count, err := u.orders.CountByDate(ctx, form.Date)
	if err != nil {
		return nil, fmt.Errorf("count orders for %s: %w", form.Date, err)
	}
	id, err := FormatOrderID(form.Date, count+1)
	if err != nil {
		return nil, err
	}

	assembled := make([]model.OrderItem, len(items))
	for i, item := range items {
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
		assembled[i] = Recalculate(item)
	}

	return &model.Order{
		ID:          id,
		Date:        form.Date,
		StoreName:   form.StoreName,
		TaxID:       form.TaxID,
		Address:     form.Address,
		Email:       form.Email,
		Remarks:     form.Remarks,
		Items:       assembled,
		TotalAmount: Total(assembled),
		CreatedAt:   u.now().UTC(),
	}, nil
}

// Submit assembles the order and appends it to the history.
func (u *OrderUseCase) Submit(ctx context.Context, form OrderForm, items []model.OrderItem) (*model.Order, error) {
	order, err := u.Assemble(ctx, form, items)
	if err != nil {
		return nil, err
	}
	if err := u.orders.Save(ctx, *order); err != nil {
		return nil, fmt.Errorf("save order %s: %w", order.ID, err)
	}
	return order, nil
}

// History returns all orders, most recent first.
func (u *OrderUseCase) History(ctx context.Context) ([]model.Order, error) {
	return u.orders.List(ctx)
}

// Get returns a single order from the history.
func (u *OrderUseCase) Get(ctx context.Context, id string) (*model.Order, error) {
	return u.orders.GetByID(ctx, id)
}

func requireFields(form OrderForm) error {
	required := []struct {
		name  string
		value string
	}{
		{"date", form.Date},
		{"store name", form.StoreName},
		{"address", form.Address},
		{"email", form.Email},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return fmt.Errorf("%w: %s", domainErrors.ErrMissingField, field.name)
		}
	}
	return nil
}
