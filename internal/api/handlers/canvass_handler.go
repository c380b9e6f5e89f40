package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reqflow-io/reqflow/internal/application"
	"github.com/reqflow-io/reqflow/internal/domain/request"
	"github.com/reqflow-io/reqflow/pkg/response"
)

type CanvassHandler struct {
	service *application.CanvassService
}

func NewCanvassHandler(service *application.CanvassService) *CanvassHandler {
	return &CanvassHandler{service: service}
}

// Canvass compares the given quotation requests and returns per-item lowest
// prices, per-quotation totals and the recommended quotation.
func (h *CanvassHandler) Canvass(c *gin.Context) {
	var input request.CanvassDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.service.Canvass(c.Request.Context(), input.QuotationRequestIDs)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
