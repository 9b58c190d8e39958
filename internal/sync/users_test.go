package sync

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvankuipers/tally/internal/api"
	"github.com/mvankuipers/tally/internal/domain"
)

func TestUpdateSecuritySettings_TerminatesOtherSessions(t *testing.T) {
	var terminated []string
	svc, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPut && r.URL.Path == "/users/u1/security":
			ok(w, nil)
		case r.Method == http.MethodGet && r.URL.Path == "/users/u1/sessions":
			ok(w, []domain.Session{
				{ID: "s-current", UserID: "u1", Current: true},
				{ID: "s-old", UserID: "u1"},
				{ID: "s-older", UserID: "u1"},
			})
		case r.Method == http.MethodDelete:
			terminated = append(terminated, r.URL.Path)
			ok(w, nil)
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	}))

	err := svc.UpdateSecuritySettings(context.Background(), "u1", api.SecuritySettingsRequest{
		Password: "correct-horse-battery",
	})

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		"/users/u1/sessions/s-old",
		"/users/u1/sessions/s-older",
	}, terminated, "current session survives")
}

func TestUpdateSecuritySettings_CleanupFailureDoesNotFailOperation(t *testing.T) {
	svc, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPut && r.URL.Path == "/users/u1/security":
			ok(w, nil)
		default:
			// Session listing and termination are down; the primary
			// operation must still report success.
			fail(w, http.StatusInternalServerError, "INTERNAL", "sessions unavailable")
		}
	}))

	err := svc.UpdateSecuritySettings(context.Background(), "u1", api.SecuritySettingsRequest{
		Password: "correct-horse-battery",
	})
	assert.NoError(t, err)
}

func TestUpdateSecuritySettings_PrimaryFailurePropagates(t *testing.T) {
	svc, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fail(w, http.StatusUnprocessableEntity, "WEAK_PASSWORD", "password does not meet policy")
	}))

	err := svc.UpdateSecuritySettings(context.Background(), "u1", api.SecuritySettingsRequest{
		Password: "correct-horse-battery",
	})

	var apiErr *api.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "WEAK_PASSWORD", apiErr.Code)
}

func TestUpdateUser_DispatchesServerRepresentation(t *testing.T) {
	svc, store := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ok(w, domain.User{ID: "u1", Email: "dana@example.com", Name: "Dana", Role: domain.RoleManager, IsActive: true})
	}))

	updated, err := svc.UpdateUser(context.Background(), "u1", api.UserRequest{
		Email: "dana@example.com", Name: "Dana", Role: "manager", IsActive: true,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RoleManager, updated.Role)
	users := store.State().Users
	assert.Empty(t, users, "update of a user not in local state is a collection no-op")
}

func TestPull_LoadsAllCollections(t *testing.T) {
	svc, store := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/users/me":
			ok(w, domain.User{ID: "u1", Name: "Dana", Role: domain.RoleEmployee})
		case "/clients":
			ok(w, []domain.Client{{ID: "c1", Name: "Acme", IsActive: true}})
		case "/projects":
			ok(w, []domain.Project{{ID: "p1", ClientID: "c1", Name: "Website", Status: domain.ProjectActive}})
		case "/time-entries":
			assert.Equal(t, "u1", r.URL.Query().Get("userId"))
			ok(w, []domain.TimeEntry{{ID: "e1", ProjectID: "p1", Duration: 30, Status: domain.EntryDraft}})
		case "/users":
			ok(w, []domain.User{{ID: "u1", Name: "Dana"}})
		case "/teams":
			ok(w, []domain.Team{{ID: "t1", Name: "Platform", ManagerID: "u9"}})
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	}))

	require.NoError(t, svc.Pull(context.Background()))

	s := store.State()
	assert.Len(t, s.Clients, 1)
	assert.Len(t, s.TimeEntries, 1)
	assert.Len(t, s.Users, 1)
	assert.Len(t, s.Teams, 1)
	require.NotNil(t, s.CurrentUser)
	assert.Equal(t, "u1", s.CurrentUser.ID)
	require.Len(t, s.Projects, 1)
	require.NotNil(t, s.Projects[0].Client, "projects denormalized against pulled clients")
}
