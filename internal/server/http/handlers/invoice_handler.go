package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/orderflow/orderflow/internal/domain/errors"
	"github.com/orderflow/orderflow/internal/server/http/dto"
)

// InvoiceHandler serves printable invoice copies.
type InvoiceHandler struct {
	facade InvoiceFacade
}

// NewInvoiceHandler constructs InvoiceHandler.
func NewInvoiceHandler(facade InvoiceFacade) *InvoiceHandler {
	return &InvoiceHandler{facade: facade}
}

// Documents handles GET /api/orders/:id/invoice.
func (h *InvoiceHandler) Documents(c *gin.Context) {
	id := c.Param("id")
	documents, err := h.facade.InvoiceDocuments(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	response := dto.InvoiceResponse{OrderID: id}
	for _, doc := range documents {
		response.Documents = append(response.Documents, toInvoiceDocumentResponse(doc))
	}

	c.JSON(http.StatusOK, response)
}
