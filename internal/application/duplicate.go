package application

import (
	"strings"

	"github.com/google/uuid"
	"github.com/reqflow-io/reqflow/internal/domain/form"
)

// DuplicationManager clones duplicatable sections into fresh instances and
// removes clones, keeping order fields renumbered.
type DuplicationManager struct{}

func NewDuplicationManager() *DuplicationManager {
	return &DuplicationManager{}
}

// Duplicate deep-copies the original instance of the template section
// identified by sectionID, stamps one fresh duplication identity on every
// copied field, and inserts the clone immediately after the last existing
// instance of the same template section. Lookup-backed fields are re-seeded:
// their previously fetched option lists belong to the source instance and
// must be recomputed per instance, while static option lists stay shared.
func (m *DuplicationManager) Duplicate(s *Session, sectionID uuid.UUID) (form.Section, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var original *form.Section
	lastIdx := -1
	for i := range s.doc.Sections {
		if s.doc.Sections[i].ID == sectionID {
			if original == nil {
				original = &s.doc.Sections[i]
			}
			lastIdx = i
		}
	}
	if original == nil {
		return form.Section{}, ErrSectionNotFound
	}
	if !original.IsDuplicatable {
		return form.Section{}, ErrSectionNotDuplicatable
	}

	dupID := uuid.New()
	clone := *original
	clone.Fields = make([]form.Field, len(original.Fields))
	copy(clone.Fields, original.Fields)
	for i := range clone.Fields {
		f := &clone.Fields[i]
		f.SectionDuplicatableID = &dupID
		f.Response = ""
		if f.LookupKey != "" {
			f.Options = nil
		}
	}

	insertAt := lastIdx + 1
	clone.Order = insertAt
	s.doc.Sections = append(s.doc.Sections, form.Section{})
	copy(s.doc.Sections[insertAt+1:], s.doc.Sections[insertAt:])
	s.doc.Sections[insertAt] = clone
	renumberSections(s.doc.Sections)

	s.broadcastLocked(Event{Type: EventSectionAdded, Payload: s.snapshotLocked()})
	return clone, nil
}

// Remove deletes the section instance whose fields carry duplicationID. If
// no instance matches (for example the identity belongs to the sole
// non-duplicated original) nothing is removed. Auxiliary per-instance state
// is keyed by the duplication identity, so dropping it here cannot suffer
// index drift.
func (m *DuplicationManager) Remove(s *Session, duplicationID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.doc.Sections {
		dup := s.doc.Sections[i].DuplicationID()
		if dup != nil && *dup == duplicationID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	s.doc.Sections = append(s.doc.Sections[:idx], s.doc.Sections[idx+1:]...)
	renumberSections(s.doc.Sections)

	prefix := duplicationID.String() + "/"
	for k := range s.optionCache {
		if strings.HasPrefix(k, prefix) {
			delete(s.optionCache, k)
		}
	}
	inst := duplicationID.String()
	for k := range s.loading {
		if k.instance == inst {
			delete(s.loading, k)
		}
	}
	for k := range s.gens {
		if k.instance == inst {
			delete(s.gens, k)
		}
	}

	s.broadcastLocked(Event{Type: EventSectionRemoved, Payload: s.snapshotLocked()})
}

func renumberSections(sections []form.Section) {
	for i := range sections {
		sections[i].Order = i
	}
}
