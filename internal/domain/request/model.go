package request

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/reqflow-io/reqflow/internal/domain/form"
	"github.com/reqflow-io/reqflow/internal/domain/signer"
	"gorm.io/datatypes"
)

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
	StatusCanceled Status = "Canceled"
)

// Request is a submitted, persisted request.
type Request struct {
	ID          uuid.UUID       `json:"request_id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FormID      uuid.UUID       `json:"request_form_id" gorm:"type:uuid;index"`
	RequesterID uuid.UUID       `json:"request_requester_id" gorm:"type:uuid;index"`
	ProjectID   *uuid.UUID      `json:"request_project_id" gorm:"type:uuid;index"`
	Code        string          `json:"request_code" gorm:"size:30;uniqueIndex"`
	Status      Status          `json:"request_status" gorm:"type:varchar(20);default:'Pending'"`
	Responses   []Response      `json:"request_response" gorm:"foreignKey:RequestID;constraint:OnDelete:CASCADE"`
	Signers     []RequestSigner `json:"request_signer" gorm:"foreignKey:RequestID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Response is one flattened (field, duplication id, value) triple. A nil
// DuplicatableID marks a field of a non-duplicated section instance.
type Response struct {
	ID             uuid.UUID      `json:"response_id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RequestID      uuid.UUID      `json:"response_request_id" gorm:"type:uuid;uniqueIndex:uq_response_field_dup,priority:1"`
	FieldID        uuid.UUID      `json:"response_field_id" gorm:"type:uuid;uniqueIndex:uq_response_field_dup,priority:2"`
	DuplicatableID *uuid.UUID     `json:"response_duplicatable_id" gorm:"type:uuid;uniqueIndex:uq_response_field_dup,priority:3"`
	Value          datatypes.JSON `json:"response_value" gorm:"type:jsonb"`
	CreatedAt      time.Time      `json:"created_at"`
}

func (Response) TableName() string {
	return "request_responses"
}

// RequestSigner is the approver list attached to a submission.
type RequestSigner struct {
	ID              uuid.UUID `json:"request_signer_id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RequestID       uuid.UUID `json:"request_signer_request_id" gorm:"type:uuid;index"`
	SignerID        uuid.UUID `json:"request_signer_signer_id" gorm:"type:uuid"`
	TeamMemberID    uuid.UUID `json:"request_signer_team_member_id" gorm:"type:uuid;not null"`
	IsPrimarySigner bool      `json:"request_signer_is_primary_signer"`
	Action          string    `json:"request_signer_action" gorm:"size:50"`
	Order           int       `json:"request_signer_order" gorm:"column:sort_order"`
	Status          Status    `json:"request_signer_status" gorm:"type:varchar(20);default:'Pending'"`
}

func (RequestSigner) TableName() string {
	return "request_signers"
}

// Handle identifies a persisted request; its code format is owned by the
// persistence layer.
type Handle struct {
	ID   uuid.UUID `json:"request_id"`
	Code string    `json:"request_code"`
}

// NamedResponse is a response joined with its field's name and order, the
// shape the canvass aggregator walks.
type NamedResponse struct {
	FieldID        uuid.UUID      `json:"field_id"`
	FieldName      string         `json:"field_name"`
	FieldOrder     int            `json:"field_order"`
	DuplicatableID *uuid.UUID     `json:"duplicatable_id"`
	Value          datatypes.JSON `json:"value"`
}

// Document is the single in-progress request mutated by the authoring
// session: the template's sections plus zero or more duplicated instances,
// and the currently resolved signer list.
type Document struct {
	FormID         uuid.UUID       `json:"form_id"`
	FormName       string          `json:"form_name"`
	RequesterID    uuid.UUID       `json:"requester_id"`
	ProjectID      *uuid.UUID      `json:"project_id"`
	Sections       []form.Section  `json:"sections"`
	Signers        []signer.Signer `json:"signers"`
	DefaultSigners []signer.Signer `json:"default_signers"`
}

// Flatten converts the document into persisted response rows. The document
// holds plain strings; the jsonb column holds their JSON encoding. Fields
// with an empty response are skipped. It fails if two fields would collide
// on the (field id, duplication id) key.
func (d *Document) Flatten() ([]Response, error) {
	type key struct {
		field uuid.UUID
		dup   uuid.UUID
	}
	seen := make(map[key]bool)
	var out []Response
	for _, sec := range d.Sections {
		for _, f := range sec.Fields {
			if f.Response == "" {
				continue
			}
			k := key{field: f.ID}
			if f.SectionDuplicatableID != nil {
				k.dup = *f.SectionDuplicatableID
			}
			if seen[k] {
				return nil, fmt.Errorf("duplicate response for field %s in instance %s", f.ID, k.dup)
			}
			seen[k] = true
			value, err := json.Marshal(f.Response)
			if err != nil {
				return nil, fmt.Errorf("encode response for field %s: %w", f.ID, err)
			}
			out = append(out, Response{
				FieldID:        f.ID,
				DuplicatableID: f.SectionDuplicatableID,
				Value:          datatypes.JSON(value),
			})
		}
	}
	return out, nil
}

// Unflatten rebuilds section instances from persisted responses against the
// template's sections: the original instance first, then one clone per
// duplication id in first-seen response order. Together with Flatten this
// round-trips losslessly.
func Unflatten(template []form.Section, responses []Response) []form.Section {
	byField := make(map[uuid.UUID][]Response)
	for _, r := range responses {
		byField[r.FieldID] = append(byField[r.FieldID], r)
	}

	var out []form.Section
	for _, tmpl := range template {
		fieldIDs := make(map[uuid.UUID]bool, len(tmpl.Fields))
		for _, f := range tmpl.Fields {
			fieldIDs[f.ID] = true
		}

		// Duplication ids seen among this section's responses, in order.
		var dupIDs []uuid.UUID
		seenDup := make(map[uuid.UUID]bool)
		for _, r := range responses {
			if r.DuplicatableID == nil || !fieldIDs[r.FieldID] {
				continue
			}
			if !seenDup[*r.DuplicatableID] {
				seenDup[*r.DuplicatableID] = true
				dupIDs = append(dupIDs, *r.DuplicatableID)
			}
		}

		out = append(out, buildInstance(tmpl, nil, byField))
		for _, dup := range dupIDs {
			id := dup
			out = append(out, buildInstance(tmpl, &id, byField))
		}
	}
	for i := range out {
		out[i].Order = i
	}
	return out
}

func buildInstance(tmpl form.Section, dup *uuid.UUID, byField map[uuid.UUID][]Response) form.Section {
	sec := tmpl
	sec.Fields = make([]form.Field, len(tmpl.Fields))
	copy(sec.Fields, tmpl.Fields)
	for i := range sec.Fields {
		f := &sec.Fields[i]
		f.SectionDuplicatableID = dup
		f.Response = ""
		for _, r := range byField[f.ID] {
			if sameDup(r.DuplicatableID, dup) {
				f.Response = decodeValue(r.Value)
				break
			}
		}
	}
	return sec
}

// decodeValue unwraps a stored jsonb value into the document's plain-string
// form, the inverse of the encoding Flatten applies.
func decodeValue(raw datatypes.JSON) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

func sameDup(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
