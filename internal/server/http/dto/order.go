package dto

import "time"

// OrderItemPayload describes one submitted order line.
type OrderItemPayload struct {
	ID       string  `json:"id"`
	Name     string  `json:"name" binding:"required"`
	Quantity float64 `json:"quantity" binding:"required,gt=0"`
	Unit     string  `json:"unit"`
	Price    float64 `json:"price" binding:"gte=0"`
	Remarks  string  `json:"remarks"`
}

// SubmitOrderRequest describes the order form payload.
type SubmitOrderRequest struct {
	Date      string             `json:"date" binding:"required"`
	StoreName string             `json:"store_name" binding:"required"`
	TaxID     string             `json:"tax_id"`
	Address   string             `json:"address" binding:"required"`
	Email     string             `json:"email" binding:"required,email"`
	Remarks   string             `json:"remarks"`
	Items     []OrderItemPayload `json:"items" binding:"required,min=1,dive"`
}

// OrderItemResponse describes one stored order line.
type OrderItemResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Price    float64 `json:"price"`
	Amount   float64 `json:"amount"`
	Remarks  string  `json:"remarks"`
}

// OrderResponse describes a finalized order.
type OrderResponse struct {
	ID          string              `json:"id"`
	Date        string              `json:"date"`
	StoreName   string              `json:"store_name"`
	TaxID       string              `json:"tax_id"`
	Address     string              `json:"address"`
	Email       string              `json:"email"`
	Remarks     string              `json:"remarks"`
	Items       []OrderItemResponse `json:"items"`
	TotalAmount float64             `json:"total_amount"`
	CreatedAt   time.Time           `json:"created_at"`
	SyncedAt    *time.Time          `json:"synced_at,omitempty"`
}

// ViolationResponse describes one blocked-submission reason.
type ViolationResponse struct {
	Index   int    `json:"index"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

// SubmitRejectedResponse is returned when validation blocks submission.
type SubmitRejectedResponse struct {
	Violations []ViolationResponse `json:"violations"`
}
