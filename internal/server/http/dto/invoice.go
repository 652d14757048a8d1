package dto

// InvoiceRowResponse is one printable invoice table row.
type InvoiceRowResponse struct {
	Blank     bool   `json:"blank"`
	Name      string `json:"name"`
	Quantity  string `json:"quantity"`
	Unit      string `json:"unit"`
	UnitPrice string `json:"unit_price"`
	Amount    string `json:"amount"`
	Remarks   string `json:"remarks"`
}

// InvoiceDocumentResponse is one laid out invoice copy.
type InvoiceDocumentResponse struct {
	Copy           string               `json:"copy"`
	Title          string               `json:"title"`
	CopyLabel      string               `json:"copy_label"`
	OrderID        string               `json:"order_id"`
	Date           string               `json:"date"`
	StoreName      string               `json:"store_name"`
	TaxID          string               `json:"tax_id"`
	Address        string               `json:"address"`
	Email          string               `json:"email"`
	Rows           []InvoiceRowResponse `json:"rows"`
	TotalAmount    float64              `json:"total_amount"`
	FormattedTotal string               `json:"formatted_total"`
	SignatureLines []string             `json:"signature_lines"`
}

// InvoiceResponse carries both copies for printing.
type InvoiceResponse struct {
	OrderID   string                    `json:"order_id"`
	Documents []InvoiceDocumentResponse `json:"documents"`
}
