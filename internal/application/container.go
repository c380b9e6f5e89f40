package application

import (
	"github.com/reqflow-io/reqflow/internal/repository"
)

type Services struct {
	Form    *FormService
	Request *RequestService
	Canvass *CanvassService
}

func New(repos *repository.Repos, drafts DraftStore) *Services {
	return &Services{
		Form:    NewFormService(repos),
		Request: NewRequestService(repos, drafts),
		Canvass: NewCanvassService(repos),
	}
}
