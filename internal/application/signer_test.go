package application

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/reqflow-io/reqflow/internal/domain/form"
	"github.com/reqflow-io/reqflow/internal/domain/signer"
	"github.com/reqflow-io/reqflow/internal/repository"
	"github.com/reqflow-io/reqflow/internal/repository/mock"
)

func TestSignerResolve(t *testing.T) {
	newResolver := func(t *testing.T) (*SignerResolver, *mock.MockOptionLookup, *mock.MockSignerLookup) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)
		options := mock.NewMockOptionLookup(ctrl)
		signers := mock.NewMockSignerLookup(ctrl)
		return NewSignerResolver(options, signers), options, signers
	}

	t.Run("no driving value resets to the defaults", func(t *testing.T) {
		resolver, _, _ := newResolver(t)
		sess := newTestSession()
		sess.doc.Signers = nil

		if err := resolver.Resolve(context.Background(), sess); err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}

		view := sess.Snapshot()
		if len(view.Document.Signers) != len(sess.doc.DefaultSigners) {
			t.Fatalf("signers = %d, want the %d defaults", len(view.Document.Signers), len(sess.doc.DefaultSigners))
		}
		if view.IsFetchingSigner {
			t.Fatal("fetching flag still up after resolution")
		}
	})

	t.Run("driving value replaces the default chain", func(t *testing.T) {
		resolver, _, signers := newResolver(t)
		sess := newTestSession()

		projectID := uuid.New()
		sess.doc.Sections[0].Fields[0].Response = "Harbor Bridge"
		sess.doc.Sections[0].Fields[0].Options = []form.Option{
			{ID: projectID, Value: "Harbor Bridge"},
		}

		override := []signer.Signer{
			{ID: uuid.New(), TeamMemberID: uuid.New(), IsPrimarySigner: true, Action: "approved", Order: 0},
			{ID: uuid.New(), TeamMemberID: uuid.New(), Action: "noted", Order: 1},
		}
		signers.EXPECT().
			FetchSigners(gomock.Any(), signerContextMatcher{formID: sess.doc.FormID, projectID: &projectID}).
			Return(override, nil)

		if err := resolver.Resolve(context.Background(), sess); err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}

		got := sess.Snapshot().Document.Signers
		if len(got) != 2 {
			t.Fatalf("signers = %d, want the 2 overrides", len(got))
		}
		if got[0].TeamMemberID != override[0].TeamMemberID {
			t.Fatal("defaults were not replaced by the override chain")
		}
		if got[0].Action != "APPROVED" || got[1].Action != "NOTED" {
			t.Fatalf("actions not normalized: %q, %q", got[0].Action, got[1].Action)
		}
	})

	t.Run("unloaded driving value resolves through the reference store", func(t *testing.T) {
		resolver, options, signers := newResolver(t)
		sess := newTestSession()

		projectID := uuid.New()
		sess.doc.Sections[0].Fields[0].Response = "Harbor Bridge"

		options.EXPECT().
			ResolveValue(gomock.Any(), "projects", "Harbor Bridge").
			Return(projectID, nil)
		signers.EXPECT().
			FetchSigners(gomock.Any(), signerContextMatcher{formID: sess.doc.FormID, projectID: &projectID}).
			Return([]signer.Signer{
				{ID: uuid.New(), TeamMemberID: uuid.New(), IsPrimarySigner: true, Action: "APPROVED"},
			}, nil)

		if err := resolver.Resolve(context.Background(), sess); err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}
		if got := sess.Snapshot().Document.Signers; len(got) != 1 {
			t.Fatalf("signers = %d, want 1", len(got))
		}
	})

	t.Run("several driving contexts merge with first occurrence winning", func(t *testing.T) {
		resolver, _, signers := newResolver(t)
		sess := newTestSession()

		projectA := uuid.New()
		projectB := uuid.New()
		sess.doc.Sections[0].Fields[0].Response = "Project A"
		sess.doc.Sections[0].Fields[0].Options = []form.Option{{ID: projectA, Value: "Project A"}}

		// A second driver instance from a duplicated line item.
		driver := sess.doc.Sections[0].Fields[0]
		driver.ID = uuid.New()
		driver.Response = "Project B"
		driver.Options = []form.Option{{ID: projectB, Value: "Project B"}}
		dup := uuid.New()
		driver.SectionDuplicatableID = &dup
		sess.doc.Sections[1].Fields = append(sess.doc.Sections[1].Fields, driver)

		shared := uuid.New()
		listA := []signer.Signer{
			{ID: uuid.New(), TeamMemberID: shared, IsPrimarySigner: true, Action: "APPROVED", Order: 0},
			{ID: uuid.New(), TeamMemberID: uuid.New(), Action: "NOTED", Order: 1},
		}
		listB := []signer.Signer{
			// Same approver again under a different action: the first
			// occurrence must win.
			{ID: uuid.New(), TeamMemberID: shared, Action: "NOTED", Order: 0},
			{ID: uuid.New(), TeamMemberID: uuid.New(), Action: "NOTED", Order: 2},
		}
		signers.EXPECT().
			FetchSigners(gomock.Any(), signerContextMatcher{formID: sess.doc.FormID, projectID: &projectA}).
			Return(listA, nil)
		signers.EXPECT().
			FetchSigners(gomock.Any(), signerContextMatcher{formID: sess.doc.FormID, projectID: &projectB}).
			Return(listB, nil)

		if err := resolver.Resolve(context.Background(), sess); err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}

		got := sess.Snapshot().Document.Signers
		if len(got) != 3 {
			t.Fatalf("signers = %d, want 3 after dedup", len(got))
		}
		count := 0
		for _, s := range got {
			if s.TeamMemberID == shared {
				count++
				if !s.IsPrimarySigner {
					t.Fatal("later occurrence overwrote the first for the shared approver")
				}
			}
		}
		if count != 1 {
			t.Fatalf("shared approver appears %d times, want 1", count)
		}
	})

	t.Run("category driver routes by the selected value", func(t *testing.T) {
		// Category routing takes the value itself; no identity resolution.
		resolver, _, signers := newResolver(t)
		sess := newTestSession()

		sess.doc.Sections[1].Fields[0].IsSignerDriver = true
		sess.doc.Sections[1].Fields[0].SignerScope = form.SignerScopeCategory
		sess.doc.Sections[1].Fields[0].Response = "Heavy Equipment"

		override := []signer.Signer{
			{ID: uuid.New(), TeamMemberID: uuid.New(), IsPrimarySigner: true, Action: "APPROVED"},
		}
		signers.EXPECT().
			FetchSigners(gomock.Any(), signerContextMatcher{formID: sess.doc.FormID, category: "Heavy Equipment"}).
			Return(override, nil)

		if err := resolver.Resolve(context.Background(), sess); err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}
		got := sess.Snapshot().Document.Signers
		if len(got) != 1 || got[0].TeamMemberID != override[0].TeamMemberID {
			t.Fatalf("category override not applied: %+v", got)
		}
	})

	t.Run("department driver resolves its identity and routes by it", func(t *testing.T) {
		resolver, _, signers := newResolver(t)
		sess := newTestSession()

		departmentID := uuid.New()
		sess.doc.Sections[0].Fields[0].Name = "Department"
		sess.doc.Sections[0].Fields[0].LookupKey = "departments"
		sess.doc.Sections[0].Fields[0].SignerScope = form.SignerScopeDepartment
		sess.doc.Sections[0].Fields[0].Response = "Engineering"
		sess.doc.Sections[0].Fields[0].Options = []form.Option{{ID: departmentID, Value: "Engineering"}}

		signers.EXPECT().
			FetchSigners(gomock.Any(), signerContextMatcher{formID: sess.doc.FormID, departmentID: &departmentID}).
			Return([]signer.Signer{
				{ID: uuid.New(), TeamMemberID: uuid.New(), IsPrimarySigner: true, Action: "APPROVED"},
			}, nil)

		if err := resolver.Resolve(context.Background(), sess); err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}
		if got := sess.Snapshot().Document.Signers; len(got) != 1 {
			t.Fatalf("signers = %d, want 1", len(got))
		}
	})

	t.Run("empty override lists fall back to the defaults", func(t *testing.T) {
		resolver, _, signers := newResolver(t)
		sess := newTestSession()

		projectID := uuid.New()
		sess.doc.Sections[0].Fields[0].Response = "Side Project"
		sess.doc.Sections[0].Fields[0].Options = []form.Option{{ID: projectID, Value: "Side Project"}}

		signers.EXPECT().
			FetchSigners(gomock.Any(), gomock.Any()).
			Return(nil, nil)

		if err := resolver.Resolve(context.Background(), sess); err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}
		got := sess.Snapshot().Document.Signers
		if len(got) != len(sess.doc.DefaultSigners) {
			t.Fatalf("signers = %d, want the defaults", len(got))
		}
	})

	t.Run("lookup failure keeps the previous chain", func(t *testing.T) {
		resolver, _, signers := newResolver(t)
		sess := newTestSession()
		previous := append([]signer.Signer(nil), sess.doc.Signers...)

		sess.doc.Sections[0].Fields[0].Response = "Harbor Bridge"
		sess.doc.Sections[0].Fields[0].Options = []form.Option{{ID: uuid.New(), Value: "Harbor Bridge"}}
		signers.EXPECT().
			FetchSigners(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("routing store down"))

		err := resolver.Resolve(context.Background(), sess)
		if err == nil {
			t.Fatal("expected error from failed lookup")
		}

		view := sess.Snapshot()
		if view.IsFetchingSigner {
			t.Fatal("fetching flag still up after failure")
		}
		if len(view.Document.Signers) != len(previous) {
			t.Fatalf("previous chain lost: %d signers, want %d", len(view.Document.Signers), len(previous))
		}
	})

	t.Run("resolving twice with the same context is idempotent", func(t *testing.T) {
		resolver, _, signers := newResolver(t)
		sess := newTestSession()

		projectID := uuid.New()
		sess.doc.Sections[0].Fields[0].Response = "Harbor Bridge"
		sess.doc.Sections[0].Fields[0].Options = []form.Option{{ID: projectID, Value: "Harbor Bridge"}}

		override := []signer.Signer{
			{ID: uuid.New(), TeamMemberID: uuid.New(), IsPrimarySigner: true, Action: "APPROVED", Order: 0},
			{ID: uuid.New(), TeamMemberID: uuid.New(), Action: "NOTED", Order: 1},
		}
		signers.EXPECT().
			FetchSigners(gomock.Any(), gomock.Any()).
			Times(2).
			Return(override, nil)

		if err := resolver.Resolve(context.Background(), sess); err != nil {
			t.Fatalf("first Resolve failed: %v", err)
		}
		first := sess.Snapshot().Document.Signers
		if err := resolver.Resolve(context.Background(), sess); err != nil {
			t.Fatalf("second Resolve failed: %v", err)
		}
		second := sess.Snapshot().Document.Signers

		if len(first) != len(second) {
			t.Fatalf("chain length changed on re-resolution: %d vs %d", len(first), len(second))
		}
		for i := range first {
			if first[i].TeamMemberID != second[i].TeamMemberID {
				t.Fatalf("chain order changed on re-resolution at %d", i)
			}
		}
	})
}

// signerContextMatcher matches a routing context on its form and whichever
// scope dimension is set, without pinning the requester pointer.
type signerContextMatcher struct {
	formID       uuid.UUID
	projectID    *uuid.UUID
	departmentID *uuid.UUID
	category     string
}

func (m signerContextMatcher) Matches(x interface{}) bool {
	ctx, ok := x.(repository.SignerContext)
	if !ok || ctx.FormID != m.formID {
		return false
	}
	if m.projectID != nil {
		return ctx.ProjectID != nil && *ctx.ProjectID == *m.projectID
	}
	if m.departmentID != nil {
		return ctx.ProjectID == nil && ctx.DepartmentID != nil && *ctx.DepartmentID == *m.departmentID
	}
	return ctx.ProjectID == nil && ctx.DepartmentID == nil && ctx.Category == m.category
}

func (m signerContextMatcher) String() string {
	switch {
	case m.projectID != nil:
		return "signer context for project " + m.projectID.String()
	case m.departmentID != nil:
		return "signer context for department " + m.departmentID.String()
	default:
		return "signer context for category " + m.category
	}
}
