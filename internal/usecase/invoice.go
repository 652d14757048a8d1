package usecase

import (
	"strconv"

	"github.com/orderflow/orderflow/internal/domain/model"
	"github.com/orderflow/orderflow/internal/pkg/money"
)

// Padding targets keep two stacked copies on one printed page: short
// orders are padded up to defaultMinRows, long ones only up to
// denseMinRows. These are print-layout heuristics, kept apart from any
// validation logic.
const (
	defaultMinRows     = 5
	denseMinRows       = 1
	denseItemThreshold = 10
)

const invoiceTitle = "Sales Invoice"

// LayoutOptions tunes the row padding targets.
type LayoutOptions struct {
	MinRows            int
	DenseMinRows       int
	DenseItemThreshold int
}

// DefaultLayoutOptions returns the standard print-page targets.
func DefaultLayoutOptions() LayoutOptions {
	return LayoutOptions{
		MinRows:            defaultMinRows,
		DenseMinRows:       denseMinRows,
		DenseItemThreshold: denseItemThreshold,
	}
}

// InvoiceUseCase lays out printable invoice copies for finished orders.
type InvoiceUseCase struct {
	opts LayoutOptions
}

// NewInvoiceUseCase constructs the layout engine.
func NewInvoiceUseCase(opts LayoutOptions) *InvoiceUseCase {
	if opts.MinRows <= 0 {
		opts.MinRows = defaultMinRows
	}
	if opts.DenseMinRows <= 0 {
		opts.DenseMinRows = denseMinRows
	}
	if opts.DenseItemThreshold <= 0 {
		opts.DenseItemThreshold = denseItemThreshold
	}
	return &InvoiceUseCase{opts: opts}
}

func newDefaultInvoiceUseCase() *InvoiceUseCase {
	return NewInvoiceUseCase(DefaultLayoutOptions())
}

// Layout renders one copy of the invoice. Both copies carry identical
// rows; only the labeling differs. Header fields and the total come
// verbatim from the order, formatted for display only.
func (u *InvoiceUseCase) Layout(order model.Order, copy model.InvoiceCopy) model.InvoiceDocument {
	rows := make([]model.InvoiceRow, 0, len(order.Items))
	for _, item := range order.Items {
		rows = append(rows, model.InvoiceRow{
			Name:      item.Name,
			Quantity:  formatQuantity(item.Quantity),
			Unit:      item.Unit,
			UnitPrice: money.Format(item.Price),
			Amount:    money.Format(item.Amount),
			Remarks:   item.Remarks,
		})
	}

	// Pad with blank rows, never truncate real ones.
	target := u.opts.MinRows
	if len(order.Items) > u.opts.DenseItemThreshold {
		target = u.opts.DenseMinRows
	}
	for len(rows) < target {
		rows = append(rows, model.InvoiceRow{Blank: true})
	}

	return model.InvoiceDocument{
		Copy:           copy,
		Title:          invoiceTitle,
		CopyLabel:      copyLabel(copy),
		OrderID:        order.ID,
		Date:           order.Date,
		StoreName:      order.StoreName,
		TaxID:          order.TaxID,
		Address:        order.Address,
		Email:          order.Email,
		Rows:           rows,
		TotalAmount:    order.TotalAmount,
		FormattedTotal: money.Format(order.TotalAmount),
		SignatureLines: []string{"Approved By", "Handled By", "Received By (Seal)"},
	}
}

// Documents renders the factory copy followed by the store copy.
func (u *InvoiceUseCase) Documents(order model.Order) []model.InvoiceDocument {
	return []model.InvoiceDocument{
		u.Layout(order, model.FactoryCopy),
		u.Layout(order, model.StoreCopy),
	}
}

func copyLabel(copy model.InvoiceCopy) string {
	if copy == model.StoreCopy {
		return "Copy 2: Store Signed Receipt"
	}
	return "Copy 1: Factory Dispatch"
}

func formatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}
