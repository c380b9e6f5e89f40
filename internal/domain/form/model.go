package form

import (
	"time"

	"github.com/google/uuid"
)

type FieldType string

// SignerScope names the routing dimension a signer-driver field's value
// feeds: the project, department or category branch of the signer lookup.
type SignerScope string

const (
	SignerScopeProject    SignerScope = "PROJECT"
	SignerScopeDepartment SignerScope = "DEPARTMENT"
	SignerScopeCategory   SignerScope = "CATEGORY"
)

const (
	FieldTypeText        FieldType = "TEXT"
	FieldTypeTextArea    FieldType = "TEXTAREA"
	FieldTypeNumber      FieldType = "NUMBER"
	FieldTypeSwitch      FieldType = "SWITCH"
	FieldTypeDropdown    FieldType = "DROPDOWN"
	FieldTypeMultiSelect FieldType = "MULTISELECT"
	FieldTypeDate        FieldType = "DATE"
	FieldTypeTime        FieldType = "TIME"
	FieldTypeFile        FieldType = "FILE"
	FieldTypeLink        FieldType = "LINK"
)

// Form is a request template: ordered sections, each with ordered fields.
type Form struct {
	ID          uuid.UUID `json:"form_id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `json:"form_name" gorm:"size:100;not null;uniqueIndex"`
	Description string    `json:"form_description" gorm:"type:text"`
	Sections    []Section `json:"form_section" gorm:"foreignKey:FormID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Section struct {
	ID             uuid.UUID `json:"section_id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FormID         uuid.UUID `json:"section_form_id" gorm:"type:uuid;index"`
	Name           string    `json:"section_name" gorm:"size:100;not null"`
	Order          int       `json:"section_order" gorm:"column:sort_order"`
	IsDuplicatable bool      `json:"section_is_duplicatable"`
	Fields         []Field   `json:"section_field" gorm:"foreignKey:SectionID;constraint:OnDelete:CASCADE"`
}

func (Section) TableName() string {
	return "form_sections"
}

// DuplicationID reports the duplication identity shared by the fields of
// this section instance, or nil for the template original.
func (s *Section) DuplicationID() *uuid.UUID {
	if len(s.Fields) == 0 {
		return nil
	}
	return s.Fields[0].SectionDuplicatableID
}

type Field struct {
	ID         uuid.UUID `json:"field_id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SectionID  uuid.UUID `json:"field_section_id" gorm:"type:uuid;index"`
	Name       string    `json:"field_name" gorm:"size:100;not null"`
	Type       FieldType `json:"field_type" gorm:"type:varchar(20);not null"`
	Order      int       `json:"field_order" gorm:"column:sort_order"`
	IsRequired bool      `json:"field_is_required"`
	// LookupKey names the reference table this field's options are fetched
	// from. A non-empty LookupKey marks the field as a cascade dependent of
	// every lookup field positioned before it in the same section.
	LookupKey string `json:"field_lookup_key" gorm:"size:100"`
	// IsSignerDriver marks a field whose value drives approver routing;
	// SignerScope says which routing dimension it drives. An empty scope on
	// a driver means project routing.
	IsSignerDriver bool        `json:"field_is_signer_driver"`
	SignerScope    SignerScope `json:"field_signer_scope" gorm:"type:varchar(20)"`
	Options        []Option    `json:"field_option" gorm:"foreignKey:FieldID;constraint:OnDelete:CASCADE"`

	// Live authoring state, never persisted on the template tables. The
	// flattened values land on the request_responses table instead.
	Response              string     `json:"field_response" gorm:"-"`
	SectionDuplicatableID *uuid.UUID `json:"field_section_duplicatable_id" gorm:"-"`
}

func (Field) TableName() string {
	return "form_fields"
}

type Option struct {
	ID      uuid.UUID `json:"option_id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FieldID uuid.UUID `json:"option_field_id" gorm:"type:uuid;index"`
	Value   string    `json:"option_value" gorm:"size:200;not null"`
	Order   int       `json:"option_order" gorm:"column:sort_order"`
}

func (Option) TableName() string {
	return "form_field_options"
}

// ReferenceOption backs the option-lookup collaborator: rows are grouped by
// lookup key and optionally hang off an upstream option's value, so that
// selecting "Category" narrows the rows served for "Equipment Name".
type ReferenceOption struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	LookupKey   string    `json:"lookup_key" gorm:"size:100;not null;index:idx_reference_options_key"`
	Value       string    `json:"value" gorm:"size:200;not null"`
	ParentValue string    `json:"parent_value" gorm:"size:200;index:idx_reference_options_parent"`
	Order       int       `json:"order" gorm:"column:sort_order"`
	CreatedAt   time.Time `json:"created_at"`
}

func (ReferenceOption) TableName() string {
	return "reference_options"
}
