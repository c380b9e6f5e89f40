package application

import (
	"github.com/google/uuid"
	"github.com/reqflow-io/reqflow/internal/domain/form"
	"github.com/reqflow-io/reqflow/internal/domain/request"
	"github.com/reqflow-io/reqflow/internal/domain/signer"
)

// newTestDocument builds the document most tests run against: a general
// section whose Project field drives signer routing, and a duplicatable item
// section with a Category -> Equipment Name -> Brand lookup chain.
func newTestDocument() *request.Document {
	general := form.Section{
		ID:    uuid.New(),
		Name:  "General",
		Order: 0,
		Fields: []form.Field{
			{ID: uuid.New(), Name: "Project", Type: form.FieldTypeDropdown, Order: 0, LookupKey: "projects", IsSignerDriver: true, SignerScope: form.SignerScopeProject},
			{ID: uuid.New(), Name: "Purpose", Type: form.FieldTypeTextArea, Order: 1},
		},
	}
	items := form.Section{
		ID:             uuid.New(),
		Name:           "Item",
		Order:          1,
		IsDuplicatable: true,
		Fields: []form.Field{
			{ID: uuid.New(), Name: "Category", Type: form.FieldTypeDropdown, Order: 0, LookupKey: "equipment_categories"},
			{ID: uuid.New(), Name: "Equipment Name", Type: form.FieldTypeDropdown, Order: 1, LookupKey: "equipment_names"},
			{ID: uuid.New(), Name: "Brand", Type: form.FieldTypeDropdown, Order: 2, LookupKey: "equipment_brands"},
			{ID: uuid.New(), Name: "Quantity", Type: form.FieldTypeNumber, Order: 3},
		},
	}
	defaults := []signer.Signer{
		{ID: uuid.New(), TeamMemberID: uuid.New(), IsPrimarySigner: true, Action: "Approved", Order: 0},
		{ID: uuid.New(), TeamMemberID: uuid.New(), Action: "Noted", Order: 1},
	}
	defaults = signer.Normalize(defaults)
	return &request.Document{
		FormID:         uuid.New(),
		FormName:       "Equipment Requisition",
		RequesterID:    uuid.New(),
		Sections:       []form.Section{general, items},
		Signers:        defaults,
		DefaultSigners: defaults,
	}
}

func newTestSession() *Session {
	return newSession(newTestDocument())
}

func testOptions(values ...string) []form.Option {
	out := make([]form.Option, 0, len(values))
	for i, v := range values {
		out = append(out, form.Option{ID: uuid.New(), Value: v, Order: i})
	}
	return out
}

// fieldAt returns a copy of the addressed field from the live document.
func fieldAt(s *Session, sectionIdx, fieldIdx int) form.Field {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Sections[sectionIdx].Fields[fieldIdx]
}

func sectionCount(s *Session) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.doc.Sections)
}
