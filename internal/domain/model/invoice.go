package model

// InvoiceCopy distinguishes the two printed copies of the same order.
// The copies carry identical row content and differ only in labeling.
type InvoiceCopy string

const (
	FactoryCopy InvoiceCopy = "FACTORY"
	StoreCopy   InvoiceCopy = "STORE"
)

// InvoiceRow is one printable table row. Blank rows pad the table so two
// stacked copies keep a consistent height on a single page.
type InvoiceRow struct {
	Blank     bool
	Name      string
	Quantity  string
	Unit      string
	UnitPrice string
	Amount    string
	Remarks   string
}

// InvoiceDocument is a fully laid out single copy of an invoice.
type InvoiceDocument struct {
	Copy           InvoiceCopy
	Title          string
	CopyLabel      string
	OrderID        string
	Date           string
	StoreName      string
	TaxID          string
	Address        string
	Email          string
	Rows           []InvoiceRow
	TotalAmount    float64
	FormattedTotal string
	SignatureLines []string
}
