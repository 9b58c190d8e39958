package sync

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvankuipers/tally/internal/api"
	"github.com/mvankuipers/tally/internal/domain"
	"github.com/mvankuipers/tally/internal/state"
)

func TestCreateEntry_InsertsServerRepresentation(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	svc, store := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/time-entries", r.URL.Path)
		// The server normalizes and enriches: its representation, not the
		// payload, must land in local state.
		ok(w, domain.TimeEntry{
			ID: "e-7", ProjectID: "p1", Date: "2026-03-02", Duration: 90,
			Description: "design review", Status: domain.EntryDraft,
			CreatedAt: now, UpdatedAt: now,
		})
	}))

	created, err := svc.CreateEntry(context.Background(), api.TimeEntryRequest{
		ProjectID: "p1", Date: "2026-03-02", Duration: 90, Description: "design review",
	})
	require.NoError(t, err)
	assert.Equal(t, "e-7", created.ID)

	entries := store.State().TimeEntries
	require.Len(t, entries, 1)
	assert.Equal(t, "e-7", entries[0].ID)
	assert.Equal(t, now, entries[0].CreatedAt, "server-assigned fields picked up")
}

func TestCreateEntry_ValidationRejectsBeforeNetwork(t *testing.T) {
	svc, store := newTestService(t, rejectAllRequests(t))

	_, err := svc.CreateEntry(context.Background(), api.TimeEntryRequest{
		ProjectID: "p1", Date: "2026-03-02", Duration: 0, // duration must be > 0
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Empty(t, store.State().TimeEntries, "no state mutation on validation failure")
}

func TestCreateEntry_ServerFailureLeavesStateUntouched(t *testing.T) {
	svc, store := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fail(w, http.StatusUnprocessableEntity, "PROJECT_INACTIVE", "cannot log time on an inactive project")
	}))

	store.Dispatch(state.SetTimeEntries{Entries: []domain.TimeEntry{
		{ID: "e1", ProjectID: "p1", Duration: 30, Status: domain.EntryDraft},
	}})
	before := store.State()

	_, err := svc.CreateEntry(context.Background(), api.TimeEntryRequest{
		ProjectID: "p1", Date: "2026-03-02", Duration: 30,
	})

	var apiErr *api.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "PROJECT_INACTIVE", apiErr.Code)
	assert.Equal(t, before, store.State(), "failed create must be invisible locally")
}

func TestUpdateEntry_NonDraftRejectedLocally(t *testing.T) {
	svc, store := newTestService(t, rejectAllRequests(t))

	store.Dispatch(state.SetTimeEntries{Entries: []domain.TimeEntry{
		{ID: "e1", ProjectID: "p1", Duration: 30, Status: domain.EntrySubmitted},
	}})
	before := store.State()

	_, err := svc.UpdateEntry(context.Background(), "e1", api.TimeEntryRequest{
		ProjectID: "p1", Date: "2026-03-02", Duration: 45,
	})

	assert.ErrorIs(t, err, domain.ErrEntryNotEditable)
	assert.Equal(t, before, store.State())
}

func TestDeleteEntry_DraftOnly(t *testing.T) {
	deleted := false
	svc, store := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/time-entries/e1", r.URL.Path)
		deleted = true
		ok(w, nil)
	}))

	store.Dispatch(state.SetTimeEntries{Entries: []domain.TimeEntry{
		{ID: "e1", ProjectID: "p1", Duration: 30, Status: domain.EntryDraft},
	}})

	require.NoError(t, svc.DeleteEntry(context.Background(), "e1"))
	assert.True(t, deleted)
	assert.Empty(t, store.State().TimeEntries)
}

func TestDeleteEntry_UnknownIDRejectedLocally(t *testing.T) {
	svc, _ := newTestService(t, rejectAllRequests(t))
	err := svc.DeleteEntry(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrEntryNotFound)
}

func TestSubmitEntries_UpdatesOnlyConfirmedIDs(t *testing.T) {
	submittedAt := time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC)
	svc, store := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/time-entries/submit", r.URL.Path)
		ok(w, api.BulkOutcome{
			Succeeded: []domain.TimeEntry{{
				ID: "e1", ProjectID: "p1", Duration: 30,
				Status: domain.EntrySubmitted, SubmittedAt: &submittedAt,
			}},
			Failed: []api.BulkFailure{{ID: "e2", Code: "NOT_DRAFT", Message: "already submitted"}},
		})
	}))

	store.Dispatch(state.SetTimeEntries{Entries: []domain.TimeEntry{
		{ID: "e1", ProjectID: "p1", Duration: 30, Status: domain.EntryDraft},
		{ID: "e2", ProjectID: "p1", Duration: 45, Status: domain.EntryDraft},
	}})

	outcome, err := svc.SubmitEntries(context.Background(), []string{"e1", "e2"})
	require.NoError(t, err)
	require.Len(t, outcome.Succeeded, 1)
	require.Len(t, outcome.Failed, 1)

	e1, okFound := store.State().EntryByID("e1")
	require.True(t, okFound)
	assert.Equal(t, domain.EntrySubmitted, e1.Status)
	require.NotNil(t, e1.SubmittedAt)
	assert.Equal(t, submittedAt, *e1.SubmittedAt)

	e2, okFound := store.State().EntryByID("e2")
	require.True(t, okFound)
	assert.Equal(t, domain.EntryDraft, e2.Status, "failed ids keep local status")
}

func TestSubmitThenDelete_RejectedBeforeNetwork(t *testing.T) {
	submitted := false
	svc, store := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/time-entries/submit" {
			submitted = true
			ok(w, api.BulkOutcome{
				Succeeded: []domain.TimeEntry{{ID: "e1", ProjectID: "p1", Duration: 30, Status: domain.EntrySubmitted}},
			})
			return
		}
		t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
	}))

	store.Dispatch(state.SetTimeEntries{Entries: []domain.TimeEntry{
		{ID: "e1", ProjectID: "p1", Duration: 30, Status: domain.EntryDraft},
	}})

	_, err := svc.SubmitEntries(context.Background(), []string{"e1"})
	require.NoError(t, err)
	require.True(t, submitted)

	// The entry is now submitted: deleting it must fail locally, with no
	// DELETE reaching the server.
	err = svc.DeleteEntry(context.Background(), "e1")
	assert.ErrorIs(t, err, domain.ErrEntryNotEditable)
}

func TestSubmitEntries_EmptyBatchSkipsNetwork(t *testing.T) {
	svc, _ := newTestService(t, rejectAllRequests(t))
	outcome, err := svc.SubmitEntries(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, outcome.Succeeded)
}

func TestSubmitEntries_AlreadySubmittedRejectedLocally(t *testing.T) {
	svc, store := newTestService(t, rejectAllRequests(t))

	store.Dispatch(state.SetTimeEntries{Entries: []domain.TimeEntry{
		{ID: "e1", ProjectID: "p1", Duration: 30, Status: domain.EntrySubmitted},
	}})

	_, err := svc.SubmitEntries(context.Background(), []string{"e1"})
	assert.ErrorIs(t, err, domain.ErrEntryNotSubmittable)
}

func TestApproveEntries_EmployeeRejectedBeforeNetwork(t *testing.T) {
	svc, store := newTestService(t, rejectAllRequests(t))

	store.Dispatch(state.SetCurrentUser{User: domain.User{ID: "u1", Role: domain.RoleEmployee}})

	_, err := svc.ApproveEntries(context.Background(), []string{"e1"}, "")
	assert.ErrorIs(t, err, domain.ErrRoleCannotApprove)
}

func TestRejectEntries_EmployeeRejectedBeforeNetwork(t *testing.T) {
	svc, store := newTestService(t, rejectAllRequests(t))

	store.Dispatch(state.SetCurrentUser{User: domain.User{ID: "u1", Role: domain.RoleEmployee}})

	_, err := svc.RejectEntries(context.Background(), []string{"e1"}, "not enough detail")
	assert.ErrorIs(t, err, domain.ErrRoleCannotApprove)
}

func TestApproveEntries_ManagerPassesRoleGuard(t *testing.T) {
	svc, store := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/time-entries/approve", r.URL.Path)
		ok(w, api.BulkOutcome{
			Succeeded: []domain.TimeEntry{{ID: "e1", ProjectID: "p1", Duration: 30, Status: domain.EntryApproved}},
		})
	}))

	store.Dispatch(state.SetCurrentUser{User: domain.User{ID: "u-mgr", Role: domain.RoleManager}})

	outcome, err := svc.ApproveEntries(context.Background(), []string{"e1"}, "")
	require.NoError(t, err)
	assert.Len(t, outcome.Succeeded, 1)
}

func TestApproveEntries_AppliesServerStatus(t *testing.T) {
	approvedAt := time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC)
	svc, store := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/time-entries/approve", r.URL.Path)
		ok(w, api.BulkOutcome{
			Succeeded: []domain.TimeEntry{{
				ID: "e1", ProjectID: "p1", Duration: 30,
				Status: domain.EntryApproved, ApprovedAt: &approvedAt, ApproverID: "u-mgr",
			}},
		})
	}))

	store.Dispatch(state.SetTimeEntries{Entries: []domain.TimeEntry{
		{ID: "e1", ProjectID: "p1", Duration: 30, Status: domain.EntrySubmitted},
	}})

	_, err := svc.ApproveEntries(context.Background(), []string{"e1"}, "looks good")
	require.NoError(t, err)

	e1, found := store.State().EntryByID("e1")
	require.True(t, found)
	assert.Equal(t, domain.EntryApproved, e1.Status)
	assert.Equal(t, "u-mgr", e1.ApproverID)
}
