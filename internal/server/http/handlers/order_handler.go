package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/orderflow/orderflow/internal/domain/errors"
	"github.com/orderflow/orderflow/internal/domain/model"
	"github.com/orderflow/orderflow/internal/server/http/dto"
	"github.com/orderflow/orderflow/internal/usecase"
)

// OrderHandler manages order-related endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Submit handles POST /api/orders.
func (h *OrderHandler) Submit(c *gin.Context) {
	var req dto.SubmitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	form := usecase.OrderForm{
		Date:      req.Date,
		StoreName: req.StoreName,
		TaxID:     req.TaxID,
		Address:   req.Address,
		Email:     req.Email,
		Remarks:   req.Remarks,
	}
	items := make([]model.OrderItem, 0, len(req.Items))
	for _, p := range req.Items {
		items = append(items, toOrderItem(p))
	}

	order, violations, err := h.facade.SubmitOrder(c.Request.Context(), form, items)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrEmptyOrder),
			errors.Is(err, domainErrors.ErrMissingField),
			errors.Is(err, domainErrors.ErrInvalidDate):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	if len(violations) > 0 {
		c.JSON(http.StatusUnprocessableEntity, dto.SubmitRejectedResponse{
			Violations: toViolationResponses(violations),
		})
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(*order))
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.OrderHistory(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}

	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.facade.Order(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(*order))
}
