package application

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/reqflow-io/reqflow/internal/domain/request"
	"github.com/reqflow-io/reqflow/internal/domain/signer"
	"github.com/reqflow-io/reqflow/internal/repository"
)

// DraftStore is the optional, best-effort snapshot store used to survive
// accidental navigation away. It is never the source of truth.
type DraftStore interface {
	SaveDraft(ctx context.Context, sessionID uuid.UUID, snapshot []byte) error
	LoadDraft(ctx context.Context, sessionID uuid.UUID) ([]byte, error)
}

// RequestService runs the authoring lifecycle: it owns the session registry
// and drives the cascade, duplication and signer components against one
// session document at a time.
type RequestService struct {
	Repos    *repository.Repos
	Sessions *SessionManager

	cascade     *CascadeResolver
	duplication *DuplicationManager
	signers     *SignerResolver
	drafts      DraftStore
}

func NewRequestService(repos *repository.Repos, drafts DraftStore) *RequestService {
	return &RequestService{
		Repos:       repos,
		Sessions:    NewSessionManager(),
		cascade:     NewCascadeResolver(repos.Option),
		duplication: NewDuplicationManager(),
		signers:     NewSignerResolver(repos.Option, repos.Signer),
		drafts:      drafts,
	}
}

// Open starts an authoring session from a template, or rehydrates one from
// a previously submitted request when editing.
func (s *RequestService) Open(requesterID uuid.UUID, in request.OpenRequestDTO) (SessionView, error) {
	f, err := s.Repos.Form.GetFormByID(in.FormID)
	if err != nil {
		return SessionView{}, err
	}
	defaults, err := s.Repos.Form.DefaultSigners(in.FormID)
	if err != nil {
		return SessionView{}, err
	}
	defaults = signer.Normalize(defaults)

	doc := &request.Document{
		FormID:         f.ID,
		FormName:       f.Name,
		RequesterID:    requesterID,
		ProjectID:      in.ProjectID,
		Sections:       copySections(f.Sections),
		Signers:        defaults,
		DefaultSigners: defaults,
	}

	if in.RequestID != nil {
		prev, err := s.Repos.Request.GetRequestByID(*in.RequestID)
		if err != nil {
			return SessionView{}, err
		}
		doc.Sections = request.Unflatten(f.Sections, prev.Responses)
		doc.ProjectID = prev.ProjectID
	}

	sess := s.Sessions.Open(doc)
	return sess.Snapshot(), nil
}

func (s *RequestService) Get(sessionID uuid.UUID) (SessionView, error) {
	sess, err := s.Sessions.Get(sessionID)
	if err != nil {
		return SessionView{}, err
	}
	return sess.Snapshot(), nil
}

// Discard drops the in-progress request without saving.
func (s *RequestService) Discard(sessionID uuid.UUID) {
	s.Sessions.Close(sessionID)
}

// FieldChange applies one edit, cascades to dependents, and kicks off an
// asynchronous signer re-resolution when the edited field drives routing.
func (s *RequestService) FieldChange(ctx context.Context, sessionID uuid.UUID, in request.FieldChangeDTO) (SessionView, error) {
	sess, err := s.Sessions.Get(sessionID)
	if err != nil {
		return SessionView{}, err
	}

	sess.mu.Lock()
	isDriver := false
	if in.SectionIndex >= 0 && in.SectionIndex < len(sess.doc.Sections) {
		sec := &sess.doc.Sections[in.SectionIndex]
		if in.FieldIndex >= 0 && in.FieldIndex < len(sec.Fields) {
			isDriver = sec.Fields[in.FieldIndex].IsSignerDriver
		}
	}
	sess.mu.Unlock()

	if err := s.cascade.OnFieldChange(ctx, sess, in); err != nil {
		return sess.Snapshot(), err
	}

	if isDriver {
		go func() {
			// Detached from the request context: the UI learns the outcome
			// over the session event stream.
			if err := s.signers.Resolve(context.Background(), sess); err != nil {
				log.Printf("signer resolution for session %s: %v", sess.ID, err)
			}
		}()
	}
	return sess.Snapshot(), nil
}

func (s *RequestService) DuplicateSection(sessionID, sectionID uuid.UUID) (SessionView, error) {
	sess, err := s.Sessions.Get(sessionID)
	if err != nil {
		return SessionView{}, err
	}
	if _, err := s.duplication.Duplicate(sess, sectionID); err != nil {
		return SessionView{}, err
	}
	return sess.Snapshot(), nil
}

func (s *RequestService) RemoveSection(sessionID, duplicationID uuid.UUID) (SessionView, error) {
	sess, err := s.Sessions.Get(sessionID)
	if err != nil {
		return SessionView{}, err
	}
	s.duplication.Remove(sess, duplicationID)
	return sess.Snapshot(), nil
}

// ResolveSigners forces a synchronous signer re-resolution.
func (s *RequestService) ResolveSigners(ctx context.Context, sessionID uuid.UUID) (SessionView, error) {
	sess, err := s.Sessions.Get(sessionID)
	if err != nil {
		return SessionView{}, err
	}
	if err := s.signers.Resolve(ctx, sess); err != nil {
		return sess.Snapshot(), err
	}
	return sess.Snapshot(), nil
}

// Submit flattens the document and persists it with its signer list. It is
// refused while signer resolution is in flight, when the resolved list is
// empty, or when no primary signer is present. A persistence failure leaves
// the session document untouched so the author can retry.
func (s *RequestService) Submit(ctx context.Context, sessionID uuid.UUID, in request.SubmitRequestDTO) (request.Handle, error) {
	sess, err := s.Sessions.Get(sessionID)
	if err != nil {
		return request.Handle{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.fetchingSigner {
		return request.Handle{}, ErrSignerResolutionInFlight
	}
	if len(sess.doc.Signers) == 0 {
		return request.Handle{}, ErrEmptySignerList
	}
	if !signer.HasPrimary(sess.doc.Signers) {
		return request.Handle{}, ErrNoPrimarySigner
	}

	responses, err := sess.doc.Flatten()
	if err != nil {
		return request.Handle{}, err
	}

	req := &request.Request{
		FormID:      sess.doc.FormID,
		RequesterID: sess.doc.RequesterID,
		ProjectID:   sess.doc.ProjectID,
		Status:      request.StatusPending,
		Responses:   responses,
		Signers:     toRequestSigners(sess.doc.Signers),
	}
	handle, err := s.Repos.Request.SubmitRequest(ctx, req)
	if err != nil {
		return request.Handle{}, fmt.Errorf("submit failed: %w", err)
	}

	sess.broadcastLocked(Event{Type: EventRequestSubmitted, Payload: handle})
	return handle, nil
}

func toRequestSigners(list []signer.Signer) []request.RequestSigner {
	out := make([]request.RequestSigner, 0, len(list))
	for i, sg := range list {
		out = append(out, request.RequestSigner{
			SignerID:        sg.ID,
			TeamMemberID:    sg.TeamMemberID,
			IsPrimarySigner: sg.IsPrimarySigner,
			Action:          sg.Action,
			Order:           i,
			Status:          request.StatusPending,
		})
	}
	return out
}

// SaveDraft snapshots the session document to the draft store.
func (s *RequestService) SaveDraft(ctx context.Context, sessionID uuid.UUID) error {
	if s.drafts == nil {
		return ErrDraftStoreUnavailable
	}
	sess, err := s.Sessions.Get(sessionID)
	if err != nil {
		return err
	}
	view := sess.Snapshot()
	snapshot, err := json.Marshal(view.Document)
	if err != nil {
		return err
	}
	return s.drafts.SaveDraft(ctx, sessionID, snapshot)
}

// LoadDraft restores a saved snapshot into a fresh session.
func (s *RequestService) LoadDraft(ctx context.Context, sessionID uuid.UUID) (SessionView, error) {
	if s.drafts == nil {
		return SessionView{}, ErrDraftStoreUnavailable
	}
	snapshot, err := s.drafts.LoadDraft(ctx, sessionID)
	if err != nil {
		return SessionView{}, err
	}
	var doc request.Document
	if err := json.Unmarshal(snapshot, &doc); err != nil {
		return SessionView{}, err
	}
	sess := s.Sessions.Open(&doc)
	return sess.Snapshot(), nil
}
