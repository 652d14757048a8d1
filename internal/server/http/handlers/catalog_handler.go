package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orderflow/orderflow/internal/domain/model"
	"github.com/orderflow/orderflow/internal/server/http/dto"
)

// CatalogHandler exposes the product catalog and line autofill.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// List handles GET /api/catalog. An unavailable catalog is an empty
// list, not an error.
func (h *CatalogHandler) List(c *gin.Context) {
	products := h.facade.Catalog(c.Request.Context())

	response := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, dto.ProductResponse{Name: p.Name, Unit: p.Unit, Price: p.Price})
	}

	c.JSON(http.StatusOK, response)
}

// Autofill handles POST /api/items/autofill.
func (h *CatalogHandler) Autofill(c *gin.Context) {
	var req dto.AutofillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := h.facade.AutofillItem(c.Request.Context(), model.OrderItem{
		ID:       req.ID,
		Name:     req.Name,
		Quantity: req.Quantity,
		Unit:     req.Unit,
		Price:    req.Price,
		Remarks:  req.Remarks,
	})

	c.JSON(http.StatusOK, dto.OrderItemResponse{
		ID:       item.ID,
		Name:     item.Name,
		Quantity: item.Quantity,
		Unit:     item.Unit,
		Price:    item.Price,
		Amount:   item.Amount,
		Remarks:  item.Remarks,
	})
}
