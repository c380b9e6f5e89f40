package repository_test

import (
	"context"
	"flag"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/reqflow-io/reqflow/internal/domain/form"
	"github.com/reqflow-io/reqflow/internal/domain/request"
	"github.com/reqflow-io/reqflow/internal/domain/signer"
	"github.com/reqflow-io/reqflow/internal/repository"
	"github.com/reqflow-io/reqflow/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(m.Run())
	}
	db, cleanup := testutils.SetupPostgresForIntegration()
	testDB = db
	code := m.Run()
	cleanup()
	os.Exit(code)
}

func repos(t *testing.T) *repository.Repos {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	return repository.NewRepositories(testDB)
}

func TestFormRepoRoundTrip(t *testing.T) {
	r := repos(t)

	f := &form.Form{
		Name: "Repo Round Trip " + uuid.NewString(),
		Sections: []form.Section{
			{Name: "General", Order: 0, Fields: []form.Field{
				{Name: "Project", Type: form.FieldTypeDropdown, Order: 0, LookupKey: "projects", IsSignerDriver: true},
				{Name: "Purpose", Type: form.FieldTypeTextArea, Order: 1},
			}},
			{Name: "Item", Order: 1, IsDuplicatable: true, Fields: []form.Field{
				{Name: "Category", Type: form.FieldTypeDropdown, Order: 0, LookupKey: "equipment_categories"},
			}},
		},
	}
	require.NoError(t, r.Form.CreateForm(f))

	loaded, err := r.Form.GetFormByID(f.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Sections, 2)
	assert.Equal(t, "General", loaded.Sections[0].Name)
	assert.Equal(t, "Project", loaded.Sections[0].Fields[0].Name)
	assert.True(t, loaded.Sections[0].Fields[0].IsSignerDriver)
	assert.True(t, loaded.Sections[1].IsDuplicatable)

	byName, err := r.Form.GetFormByName(f.Name)
	require.NoError(t, err)
	assert.Equal(t, f.ID, byName.ID)
}

func TestOptionLookupFiltersAndOrders(t *testing.T) {
	r := repos(t)
	ctx := context.Background()

	key := "lookup_" + uuid.NewString()[:8]
	rows := []form.ReferenceOption{
		{LookupKey: key, Value: "Excavator X300", ParentValue: "Excavator", Order: 1},
		{LookupKey: key, Value: "Excavator X200", ParentValue: "Excavator", Order: 0},
		{LookupKey: key, Value: "Tower Crane", ParentValue: "Crane", Order: 0},
	}
	require.NoError(t, testDB.Create(&rows).Error)

	options, err := r.Option.FetchOptions(ctx, key, map[string]string{"Category": "Excavator"})
	require.NoError(t, err)
	require.Len(t, options, 2)
	assert.Equal(t, "Excavator X200", options[0].Value)
	assert.Equal(t, "Excavator X300", options[1].Value)
	assert.Equal(t, 0, options[0].Order)
	assert.Equal(t, 1, options[1].Order)

	all, err := r.Option.FetchOptions(ctx, key, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	id, err := r.Option.ResolveValue(ctx, key, "Tower Crane")
	require.NoError(t, err)
	assert.Equal(t, rows[2].ID, id)
}

func TestRequestRepoSubmitAndReadBack(t *testing.T) {
	r := repos(t)
	ctx := context.Background()

	f := &form.Form{
		Name: "Submit Round Trip " + uuid.NewString(),
		Sections: []form.Section{
			{Name: "Item", Order: 0, Fields: []form.Field{
				{Name: "Item", Type: form.FieldTypeText, Order: 0},
				{Name: "Price per Unit", Type: form.FieldTypeNumber, Order: 1},
			}},
		},
	}
	require.NoError(t, r.Form.CreateForm(f))

	dup := uuid.New()
	requester := uuid.New()
	req := &request.Request{
		FormID:      f.ID,
		RequesterID: requester,
		Status:      request.StatusPending,
		Responses: []request.Response{
			{FieldID: f.Sections[0].Fields[0].ID, DuplicatableID: &dup, Value: datatypes.JSON(`"Cement"`)},
			{FieldID: f.Sections[0].Fields[1].ID, DuplicatableID: &dup, Value: datatypes.JSON(`"100"`)},
		},
		Signers: []request.RequestSigner{
			{SignerID: uuid.New(), TeamMemberID: uuid.New(), IsPrimarySigner: true, Action: "APPROVED", Order: 0, Status: request.StatusPending},
		},
	}

	handle, err := r.Request.SubmitRequest(ctx, req)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, handle.ID)
	assert.Regexp(t, `^REQ-[0-9A-F]{8}$`, handle.Code)

	loaded, err := r.Request.GetRequestByID(handle.ID)
	require.NoError(t, err)
	assert.Len(t, loaded.Responses, 2)
	assert.Len(t, loaded.Signers, 1)

	named, err := r.Request.GetNamedResponses(ctx, handle.ID)
	require.NoError(t, err)
	require.Len(t, named, 2)
	assert.Equal(t, "Item", named[0].FieldName)
	assert.Equal(t, "Price per Unit", named[1].FieldName)
	require.NotNil(t, named[0].DuplicatableID)
	assert.Equal(t, dup, *named[0].DuplicatableID)

	require.NoError(t, r.Request.UpdateStatus(handle.ID, request.StatusApproved))
	loaded, err = r.Request.GetRequestByID(handle.ID)
	require.NoError(t, err)
	assert.Equal(t, request.StatusApproved, loaded.Status)

	mine, err := r.Request.ListRequestsByRequester(requester)
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}

func TestDefaultSignersExcludeOverrides(t *testing.T) {
	r := repos(t)

	f := &form.Form{Name: "Signer Defaults " + uuid.NewString()}
	require.NoError(t, r.Form.CreateForm(f))

	projectID := uuid.New()
	rows := []signer.Signer{
		{FormID: f.ID, TeamMemberID: uuid.New(), IsPrimarySigner: true, Action: "APPROVED", Order: 0},
		{FormID: f.ID, TeamMemberID: uuid.New(), Action: "NOTED", Order: 1},
		{FormID: f.ID, ProjectID: &projectID, TeamMemberID: uuid.New(), Action: "APPROVED", Order: 0},
		{FormID: f.ID, Category: "Heavy Equipment", TeamMemberID: uuid.New(), Action: "APPROVED", Order: 0},
	}
	require.NoError(t, testDB.Create(&rows).Error)

	defaults, err := r.Form.DefaultSigners(f.ID)
	require.NoError(t, err)
	assert.Len(t, defaults, 2)
	for _, s := range defaults {
		assert.Nil(t, s.ProjectID)
		assert.Empty(t, s.Category)
	}

	overrides, err := r.Signer.FetchSigners(context.Background(), repository.SignerContext{
		FormID:    f.ID,
		ProjectID: &projectID,
	})
	require.NoError(t, err)
	assert.Len(t, overrides, 1)

	byCategory, err := r.Signer.FetchSigners(context.Background(), repository.SignerContext{
		FormID:   f.ID,
		Category: "Heavy Equipment",
	})
	require.NoError(t, err)
	assert.Len(t, byCategory, 1)
}
