package application

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/reqflow-io/reqflow/internal/domain/form"
	"github.com/reqflow-io/reqflow/internal/domain/signer"
	"github.com/reqflow-io/reqflow/internal/repository"
)

// SignerResolver derives the approver chain from the routing-driving field
// values. Overrides replace the static default chain; several driving
// contexts (one per duplicated line item) are merged with first occurrence
// winning per team member. While a resolution is in flight the session's
// fetching flag is up and submission is refused.
type SignerResolver struct {
	options repository.OptionLookup
	signers repository.SignerLookup
}

func NewSignerResolver(options repository.OptionLookup, signers repository.SignerLookup) *SignerResolver {
	return &SignerResolver{options: options, signers: signers}
}

// Resolve recomputes the session's signer list. Driving values are read from
// the document's signer-driver fields across all section instances. With no
// driving value the list resets to the form's static defaults. A lookup
// failure keeps the previous list. A resolution superseded by a newer one
// discards its result; the fetching flag only comes down with the newest
// resolution so submission can never observe a half-applied chain.
func (r *SignerResolver) Resolve(ctx context.Context, s *Session) error {
	s.mu.Lock()
	gen := s.signerGen + 1
	s.signerGen = gen
	s.fetchingSigner = true
	drivers := collectDrivers(s.doc.Sections)
	formID := s.doc.FormID
	requesterID := s.doc.RequesterID
	defaults := append([]signer.Signer(nil), s.doc.DefaultSigners...)
	s.broadcastLocked(Event{Type: EventSignerFetching, Payload: true})
	s.mu.Unlock()

	resolved, err := r.resolveLists(ctx, formID, requesterID, drivers, defaults)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.signerGen != gen {
		// Superseded; the newer resolution owns the flag and the list.
		return nil
	}
	s.fetchingSigner = false
	if err != nil {
		s.broadcastLocked(Event{Type: EventSignerFetching, Payload: false})
		return fmt.Errorf("signer lookup failed: %w", err)
	}
	s.doc.Signers = resolved
	s.broadcastLocked(Event{Type: EventSignersUpdated, Payload: s.snapshotLocked()})
	return nil
}

func (r *SignerResolver) resolveLists(ctx context.Context, formID, requesterID uuid.UUID, drivers []driverValue, defaults []signer.Signer) ([]signer.Signer, error) {
	if len(drivers) == 0 {
		return signer.Normalize(defaults), nil
	}

	var lists [][]signer.Signer
	for _, d := range drivers {
		sc := repository.SignerContext{FormID: formID, RequesterID: &requesterID}
		switch d.scope {
		case form.SignerScopeCategory:
			// Categories are routed by the selected value itself.
			sc.Category = d.value
		case form.SignerScopeDepartment:
			id, err := d.resolveIdentity(ctx, r.options)
			if err != nil {
				return nil, err
			}
			sc.DepartmentID = &id
		default:
			id, err := d.resolveIdentity(ctx, r.options)
			if err != nil {
				return nil, err
			}
			sc.ProjectID = &id
		}
		list, err := r.signers.FetchSigners(ctx, sc)
		if err != nil {
			return nil, err
		}
		if len(list) > 0 {
			lists = append(lists, list)
		}
	}
	if len(lists) == 0 {
		// No context-specific override anywhere: static defaults apply.
		return signer.Normalize(defaults), nil
	}
	return signer.Merge(lists...), nil
}

// driverValue is one routing-driving field's current value together with its
// routing scope and the option set it was selected from.
type driverValue struct {
	lookupKey string
	value     string
	scope     form.SignerScope
	options   []form.Option
}

// resolveIdentity maps the selected display value to its internal identity,
// preferring the currently loaded option set over a lookup round-trip.
func (d driverValue) resolveIdentity(ctx context.Context, options repository.OptionLookup) (uuid.UUID, error) {
	for _, opt := range d.options {
		if opt.Value == d.value {
			return opt.ID, nil
		}
	}
	return options.ResolveValue(ctx, d.lookupKey, d.value)
}

// collectDrivers gathers non-empty signer-driver values across every
// section instance, one entry per instance so that line items carrying
// different routing contexts each contribute a signer list.
func collectDrivers(sections []form.Section) []driverValue {
	var out []driverValue
	for i := range sections {
		for j := range sections[i].Fields {
			f := &sections[i].Fields[j]
			if f.IsSignerDriver && f.Response != "" {
				out = append(out, driverValue{
					lookupKey: f.LookupKey,
					value:     f.Response,
					scope:     f.SignerScope,
					options:   f.Options,
				})
			}
		}
	}
	return out
}

// IsFetchingSigner reports whether a signer resolution is in flight for the
// session; submission handlers must reject while it is true.
func (s *Session) IsFetchingSigner() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fetchingSigner
}
