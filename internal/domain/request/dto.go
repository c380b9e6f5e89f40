package request

import "github.com/google/uuid"

type OpenRequestDTO struct {
	FormID    uuid.UUID  `json:"form_id" binding:"required"`
	ProjectID *uuid.UUID `json:"project_id"`
	// RequestID rehydrates the session from an already-submitted request.
	RequestID *uuid.UUID `json:"request_id"`
}

type FieldChangeDTO struct {
	SectionIndex int    `json:"section_index" binding:"min=0"`
	FieldIndex   int    `json:"field_index" binding:"min=0"`
	Value        string `json:"value"`
}

type SubmitRequestDTO struct {
	Remarks string `json:"remarks"`
}

type CanvassDTO struct {
	QuotationRequestIDs []uuid.UUID `json:"quotation_request_ids" binding:"required,min=1"`
}
