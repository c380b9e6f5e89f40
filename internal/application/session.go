package application

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/reqflow-io/reqflow/internal/domain/form"
	"github.com/reqflow-io/reqflow/internal/domain/request"
	"github.com/reqflow-io/reqflow/internal/domain/signer"
)

var (
	ErrSessionNotFound          = errors.New("authoring session not found")
	ErrSectionNotFound          = errors.New("section not found")
	ErrFieldNotFound            = errors.New("field not found")
	ErrSectionNotDuplicatable   = errors.New("section is not duplicatable")
	ErrSignerResolutionInFlight = errors.New("signer resolution in progress, please wait")
	ErrEmptySignerList          = errors.New("no signers resolved for this request")
	ErrNoPrimarySigner          = errors.New("resolved signer list has no primary signer")
	ErrDraftStoreUnavailable    = errors.New("draft storage is not configured")
)

type EventType string

const (
	EventFieldsLoading    EventType = "fields_loading"
	EventFieldsUpdated    EventType = "fields_updated"
	EventSignerFetching   EventType = "signer_fetching"
	EventSignersUpdated   EventType = "signers_updated"
	EventSectionAdded     EventType = "section_added"
	EventSectionRemoved   EventType = "section_removed"
	EventRequestSubmitted EventType = "request_submitted"
)

type Event struct {
	Type    EventType   `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

// LoadingField addresses one field currently waiting on an option lookup,
// so the presentation layer can disable it.
type LoadingField struct {
	SectionIndex int `json:"section_index"`
	FieldIndex   int `json:"field_index"`
}

type fieldKey struct {
	instance string
	fieldID  uuid.UUID
}

// Session owns one in-progress request document. All mutations go through
// its mutex; that single lock is the Go stand-in for the original
// single-threaded event loop, so per-field updates are applied atomically
// and resolvers never interleave partial states.
type Session struct {
	ID uuid.UUID

	mu  sync.Mutex
	doc *request.Document

	// loading marks fields awaiting an option lookup.
	loading map[fieldKey]bool
	// gens implements last-write-wins per (instance, field): a lookup whose
	// generation no longer matches is discarded on completion.
	gens           map[fieldKey]uint64
	signerGen      uint64
	fetchingSigner bool

	// optionCache keeps per-instance fetched option sets keyed by
	// duplication identity, never by section index, so instance removal
	// cannot leave stale entries behind under index drift.
	optionCache map[string][]form.Option

	subscribers map[chan Event]struct{}
}

func newSession(doc *request.Document) *Session {
	return &Session{
		ID:          uuid.New(),
		doc:         doc,
		loading:     make(map[fieldKey]bool),
		gens:        make(map[fieldKey]uint64),
		optionCache: make(map[string][]form.Option),
		subscribers: make(map[chan Event]struct{}),
	}
}

// SessionView is a point-in-time copy handed to callers.
type SessionView struct {
	SessionID        uuid.UUID        `json:"session_id"`
	Document         request.Document `json:"document"`
	LoadingFields    []LoadingField   `json:"loading_fields"`
	IsFetchingSigner bool             `json:"is_fetching_signer"`
}

func (s *Session) Snapshot() SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() SessionView {
	doc := *s.doc
	doc.Sections = copySections(s.doc.Sections)
	doc.Signers = append([]signer.Signer(nil), s.doc.Signers...)
	return SessionView{
		SessionID:        s.ID,
		Document:         doc,
		LoadingFields:    s.loadingFieldsLocked(),
		IsFetchingSigner: s.fetchingSigner,
	}
}

func (s *Session) loadingFieldsLocked() []LoadingField {
	var out []LoadingField
	for si := range s.doc.Sections {
		sec := &s.doc.Sections[si]
		inst := instanceKey(sec)
		for fi := range sec.Fields {
			if s.loading[fieldKey{instance: inst, fieldID: sec.Fields[fi].ID}] {
				out = append(out, LoadingField{SectionIndex: si, FieldIndex: fi})
			}
		}
	}
	return out
}

// Subscribe registers a listener for session events. The returned channel
// is buffered; slow consumers drop events rather than block the engine.
func (s *Session) Subscribe() chan Event {
	ch := make(chan Event, 16)
	s.mu.Lock()
	s.subscribers[ch] = struct{}{}
	s.mu.Unlock()
	return ch
}

func (s *Session) Unsubscribe(ch chan Event) {
	s.mu.Lock()
	if _, ok := s.subscribers[ch]; ok {
		delete(s.subscribers, ch)
		close(ch)
	}
	s.mu.Unlock()
}

func (s *Session) broadcastLocked(ev Event) {
	for ch := range s.subscribers {
		select {
		case ch <- ev:
		default:
		}
	}
}

// sectionByInstance relocates a section instance by its stable identity.
// Indices may have shifted while a lookup was in flight.
func (s *Session) sectionByInstance(key string) (int, *form.Section) {
	for i := range s.doc.Sections {
		sec := &s.doc.Sections[i]
		if instanceKey(sec) == key {
			return i, sec
		}
	}
	return -1, nil
}

// instanceKey identifies one section instance: its duplication id for a
// clone, its template section id for the original.
func instanceKey(sec *form.Section) string {
	if dup := sec.DuplicationID(); dup != nil {
		return dup.String()
	}
	return sec.ID.String()
}

func cacheKey(instance, lookupKey string) string {
	return instance + "/" + lookupKey
}

func copySections(src []form.Section) []form.Section {
	out := make([]form.Section, len(src))
	copy(out, src)
	for i := range out {
		fields := make([]form.Field, len(out[i].Fields))
		copy(fields, out[i].Fields)
		out[i].Fields = fields
	}
	return out
}

// SessionManager is the registry of live authoring sessions.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

func NewSessionManager() *SessionManager {
	return &SessionManager{sessions: make(map[uuid.UUID]*Session)}
}

func (m *SessionManager) Open(doc *request.Document) *Session {
	s := newSession(doc)
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

func (m *SessionManager) Get(id uuid.UUID) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (m *SessionManager) Close(id uuid.UUID) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if !ok {
		return
	}
	s.mu.Lock()
	for ch := range s.subscribers {
		delete(s.subscribers, ch)
		close(ch)
	}
	s.mu.Unlock()
}
