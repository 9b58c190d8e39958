package sync

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mvankuipers/tally/internal/api"
	"github.com/mvankuipers/tally/internal/state"
	"github.com/mvankuipers/tally/pkg/logger"
)

// newTestService wires a Service against an httptest backend.
func newTestService(t *testing.T, handler http.Handler) (*Service, *state.Store) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store := state.NewStore(logger.Nop())
	backend := api.NewClient("test-token", srv.URL, logger.Nop())
	return NewService(backend, store, logger.Nop()), store
}

// rejectAllRequests fails the test if any request arrives.
func rejectAllRequests(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		http.Error(w, "unexpected", http.StatusTeapot)
	})
}

func ok(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"success": true, "data": data})
}

func fail(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"error":   map[string]string{"code": code, "message": message},
	})
}
