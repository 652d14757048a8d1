package dto

// ProductResponse describes one catalog entry.
type ProductResponse struct {
	Name  string  `json:"name"`
	Unit  string  `json:"unit"`
	Price float64 `json:"price"`
}

// AutofillRequest carries the line being edited.
type AutofillRequest struct {
	ID       string  `json:"id"`
	Name     string  `json:"name" binding:"required"`
	Quantity float64 `json:"quantity" binding:"required,gt=0"`
	Unit     string  `json:"unit"`
	Price    float64 `json:"price" binding:"gte=0"`
	Remarks  string  `json:"remarks"`
}
