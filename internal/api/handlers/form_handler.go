package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/reqflow-io/reqflow/internal/application"
	"github.com/reqflow-io/reqflow/internal/domain/form"
	"github.com/reqflow-io/reqflow/pkg/response"
)

type FormHandler struct {
	service *application.FormService
}

func NewFormHandler(service *application.FormService) *FormHandler {
	return &FormHandler{service: service}
}

func (h *FormHandler) ListForms(c *gin.Context) {
	forms, err := h.service.ListForms()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, forms)
}

func (h *FormHandler) GetForm(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	f, err := h.service.GetForm(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

func (h *FormHandler) CreateForm(c *gin.Context) {
	var input form.CreateFormDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	f, err := h.service.CreateForm(input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}
