package form

type CreateFormDTO struct {
	Name        string             `json:"form_name" binding:"required"`
	Description string             `json:"form_description"`
	Sections    []CreateSectionDTO `json:"sections" binding:"required"`
}

type CreateSectionDTO struct {
	Name           string           `json:"section_name" binding:"required"`
	IsDuplicatable bool             `json:"section_is_duplicatable"`
	Fields         []CreateFieldDTO `json:"fields" binding:"required"`
}

type CreateFieldDTO struct {
	Name           string      `json:"field_name" binding:"required"`
	Type           FieldType   `json:"field_type" binding:"required"`
	IsRequired     bool        `json:"field_is_required"`
	LookupKey      string      `json:"field_lookup_key"`
	IsSignerDriver bool        `json:"field_is_signer_driver"`
	SignerScope    SignerScope `json:"field_signer_scope"`
	Options        []string    `json:"options"`
}
