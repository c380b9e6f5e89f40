package application

import (
	"testing"

	"github.com/google/uuid"
)

func TestSnapshotIsDetachedFromLiveDocument(t *testing.T) {
	sess := newTestSession()

	view := sess.Snapshot()
	view.Document.Sections[0].Fields[1].Response = "mutated copy"
	view.Document.Signers[0].Action = "MUTATED"

	if got := fieldAt(sess, 0, 1).Response; got != "" {
		t.Fatalf("live document changed through a snapshot: %q", got)
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.doc.Signers[0].Action == "MUTATED" {
		t.Fatal("live signer chain changed through a snapshot")
	}
}

func TestSubscribeReceivesBroadcasts(t *testing.T) {
	sess := newTestSession()
	ch := sess.Subscribe()
	defer sess.Unsubscribe(ch)

	sess.mu.Lock()
	sess.broadcastLocked(Event{Type: EventFieldsUpdated})
	sess.mu.Unlock()

	select {
	case ev := <-ch:
		if ev.Type != EventFieldsUpdated {
			t.Fatalf("event type = %q", ev.Type)
		}
	default:
		t.Fatal("no event delivered")
	}
}

func TestBroadcastNeverBlocksOnSlowSubscribers(t *testing.T) {
	sess := newTestSession()
	ch := sess.Subscribe()
	defer sess.Unsubscribe(ch)

	// Overflow the subscriber buffer; extra events must be dropped, not
	// stall the engine.
	sess.mu.Lock()
	for i := 0; i < 100; i++ {
		sess.broadcastLocked(Event{Type: EventFieldsLoading})
	}
	sess.mu.Unlock()

	if got := len(ch); got != cap(ch) {
		t.Fatalf("buffered events = %d, want full buffer %d", got, cap(ch))
	}
}

func TestSessionManagerCloseUnblocksSubscribers(t *testing.T) {
	mgr := NewSessionManager()
	sess := mgr.Open(newTestDocument())
	ch := sess.Subscribe()

	mgr.Close(sess.ID)

	if _, err := mgr.Get(sess.ID); err == nil {
		t.Fatal("closed session still registered")
	}
	if _, open := <-ch; open {
		t.Fatal("subscriber channel not closed with the session")
	}
}

func TestSessionManagerGetUnknown(t *testing.T) {
	mgr := NewSessionManager()
	if _, err := mgr.Get(uuid.New()); err != ErrSessionNotFound {
		t.Fatalf("err = %v, want ErrSessionNotFound", err)
	}
}
