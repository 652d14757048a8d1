package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/orderflow/orderflow/internal/domain/errors"
	"github.com/orderflow/orderflow/internal/server/http/dto"
)

// DraftHandler serves notification email drafts.
type DraftHandler struct {
	facade DraftFacade
}

// NewDraftHandler constructs DraftHandler.
func NewDraftHandler(facade DraftFacade) *DraftHandler {
	return &DraftHandler{facade: facade}
}

// Draft handles GET /api/orders/:id/draft.
func (h *DraftHandler) Draft(c *gin.Context) {
	draft, mailto, err := h.facade.EmailDraft(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.DraftResponse{
		Subject: draft.Subject,
		Body:    draft.Body,
		Mailto:  mailto,
	})
}
