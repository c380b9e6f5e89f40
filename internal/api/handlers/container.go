package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reqflow-io/reqflow/internal/application"
	"github.com/reqflow-io/reqflow/internal/repository"
	"github.com/reqflow-io/reqflow/pkg/response"
	"gorm.io/gorm"
)

type Handlers struct {
	Form    *FormHandler
	Request *RequestHandler
	Canvass *CanvassHandler
	WS      *WSHandler
	Router  *gin.Engine
}

func New(svc *application.Services, repos *repository.Repos, router *gin.Engine) *Handlers {
	return &Handlers{
		Form:    NewFormHandler(svc.Form),
		Request: NewRequestHandler(svc.Request),
		Canvass: NewCanvassHandler(svc.Canvass),
		WS:      NewWSHandler(svc.Request),
		Router:  router,
	}
}

// writeError maps service errors onto HTTP statuses.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, application.ErrSessionNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		status = http.StatusNotFound
	case errors.Is(err, application.ErrSectionNotFound),
		errors.Is(err, application.ErrFieldNotFound),
		errors.Is(err, application.ErrSectionNotDuplicatable):
		status = http.StatusBadRequest
	case errors.Is(err, application.ErrSignerResolutionInFlight):
		status = http.StatusConflict
	case errors.Is(err, application.ErrEmptySignerList),
		errors.Is(err, application.ErrNoPrimarySigner):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, application.ErrDraftStoreUnavailable):
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, response.ErrorResponse{Error: err.Error()})
}
