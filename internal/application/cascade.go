package application

import (
	"context"
	"fmt"

	"github.com/reqflow-io/reqflow/internal/domain/form"
	"github.com/reqflow-io/reqflow/internal/domain/request"
	"github.com/reqflow-io/reqflow/internal/repository"
)

// CascadeResolver recomputes downstream option sets when an upstream field
// changes. Dependency chains are strictly linear inside a section instance:
// every lookup field positioned after the changed field is a dependent, and
// a change clears all of them, not just the immediate next one.
type CascadeResolver struct {
	lookup repository.OptionLookup
}

func NewCascadeResolver(lookup repository.OptionLookup) *CascadeResolver {
	return &CascadeResolver{lookup: lookup}
}

// OnFieldChange applies one field edit to the session document and refreshes
// its dependents. Effects are confined to the addressed section instance;
// sibling clones are never touched.
//
// An empty value clears the dependents without any lookup. A non-empty value
// marks the dependents as loading, fetches each dependent's option set
// narrowed by its immediate parent value in the instance, then swaps the new
// sets in and clears the stale selections. A lookup failure rolls the
// triggering field back to empty. If the same field changed again while a
// lookup was in flight, the stale result is discarded (last write wins).
func (r *CascadeResolver) OnFieldChange(ctx context.Context, s *Session, in request.FieldChangeDTO) error {
	s.mu.Lock()

	if in.SectionIndex < 0 || in.SectionIndex >= len(s.doc.Sections) {
		s.mu.Unlock()
		return ErrSectionNotFound
	}
	sec := &s.doc.Sections[in.SectionIndex]
	if in.FieldIndex < 0 || in.FieldIndex >= len(sec.Fields) {
		s.mu.Unlock()
		return ErrFieldNotFound
	}

	instance := instanceKey(sec)
	trigger := &sec.Fields[in.FieldIndex]
	trigger.Response = in.Value
	deps := dependentIndexes(sec, in.FieldIndex)

	if in.Value == "" {
		// Cleared upstream value: dependents revert to their pristine empty
		// state, no lookup.
		for _, j := range deps {
			f := &sec.Fields[j]
			f.Response = ""
			f.Options = nil
			delete(s.optionCache, cacheKey(instance, f.LookupKey))
		}
		s.broadcastLocked(Event{Type: EventFieldsUpdated, Payload: s.snapshotLocked()})
		s.mu.Unlock()
		return nil
	}

	key := fieldKey{instance: instance, fieldID: trigger.ID}
	gen := s.gens[key] + 1
	s.gens[key] = gen

	type target struct {
		fieldID   fieldKey
		lookupKey string
		filters   map[string]string
	}
	targets := make([]target, 0, len(deps))
	for _, j := range deps {
		f := &sec.Fields[j]
		f.Response = ""
		f.Options = nil
		fk := fieldKey{instance: instance, fieldID: f.ID}
		s.loading[fk] = true
		// Earlier dependents are already cleared, so the nearest non-empty
		// upstream value is the dependent's immediate parent in the chain.
		targets = append(targets, target{
			fieldID:   fk,
			lookupKey: f.LookupKey,
			filters:   immediateParentFilter(sec, j),
		})
	}
	s.broadcastLocked(Event{Type: EventFieldsLoading, Payload: s.loadingFieldsLocked()})
	s.mu.Unlock()

	// Suspension point: the lock is not held across the network-bound
	// lookups, so the session stays responsive and a newer edit can
	// supersede this one.
	fetched := make(map[string][]form.Option, len(targets))
	var lookupErr error
	for _, t := range targets {
		opts, err := r.lookup.FetchOptions(ctx, t.lookupKey, t.filters)
		if err != nil {
			lookupErr = err
			break
		}
		fetched[t.lookupKey] = opts
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Loading markers come off unconditionally, success or failure.
	for _, t := range targets {
		delete(s.loading, t.fieldID)
	}

	if s.gens[key] != gen {
		// A newer edit of the same field superseded this lookup.
		s.broadcastLocked(Event{Type: EventFieldsLoading, Payload: s.loadingFieldsLocked()})
		return nil
	}

	// Relocate the instance by identity: duplication or removal may have
	// shifted indices while the lookup was in flight.
	_, cur := s.sectionByInstance(instance)
	if cur == nil {
		return nil
	}

	if lookupErr != nil {
		for i := range cur.Fields {
			if cur.Fields[i].ID == key.fieldID {
				cur.Fields[i].Response = ""
			}
		}
		s.broadcastLocked(Event{Type: EventFieldsUpdated, Payload: s.snapshotLocked()})
		return fmt.Errorf("option lookup failed: %w", lookupErr)
	}

	for i := range cur.Fields {
		f := &cur.Fields[i]
		opts, ok := fetched[f.LookupKey]
		if !ok {
			continue
		}
		f.Options = opts
		f.Response = ""
		s.optionCache[cacheKey(instance, f.LookupKey)] = opts
	}
	s.broadcastLocked(Event{Type: EventFieldsUpdated, Payload: s.snapshotLocked()})
	return nil
}

// dependentIndexes returns the positions of the declared dependents of the
// field at idx: every lookup-backed field after it in the same instance.
func dependentIndexes(sec *form.Section, idx int) []int {
	var deps []int
	for j := idx + 1; j < len(sec.Fields); j++ {
		if sec.Fields[j].LookupKey != "" {
			deps = append(deps, j)
		}
	}
	return deps
}

// immediateParentFilter returns the nearest resolved upstream value before
// idx in the same instance, keyed by its field name. Only the immediate
// parent narrows a lookup; sending every ancestor value would let a value
// that collides across lookup levels leak rows into the wrong dependent.
func immediateParentFilter(sec *form.Section, idx int) map[string]string {
	for j := idx - 1; j >= 0; j-- {
		if v := sec.Fields[j].Response; v != "" {
			return map[string]string{sec.Fields[j].Name: v}
		}
	}
	return nil
}
