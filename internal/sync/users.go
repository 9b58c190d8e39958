package sync

import (
	"context"

	"github.com/mvankuipers/tally/internal/api"
	"github.com/mvankuipers/tally/internal/domain"
	"github.com/mvankuipers/tally/internal/state"
)

func (s *Service) LoadUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.api.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	s.store.Dispatch(state.SetUsers{Users: users})
	return users, nil
}

func (s *Service) UpdateUser(ctx context.Context, id string, req api.UserRequest) (*domain.User, error) {
	if err := s.checkValid(req); err != nil {
		return nil, err
	}
	updated, err := s.api.UpdateUser(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.store.Dispatch(state.UpdateUser{User: *updated})
	return updated, nil
}

func (s *Service) ListSessions(ctx context.Context, userID string) ([]domain.Session, error) {
	return s.api.ListSessions(ctx, userID)
}

func (s *Service) TerminateSession(ctx context.Context, userID, sessionID string) error {
	return s.api.TerminateSession(ctx, userID, sessionID)
}

// UpdateSecuritySettings changes a user's security options, then makes
// a best-effort pass to terminate that user's other sessions. The
// cleanup is secondary: its failure is logged and never blocks or
// fails the settings change itself.
func (s *Service) UpdateSecuritySettings(ctx context.Context, userID string, req api.SecuritySettingsRequest) error {
	if err := s.checkValid(req); err != nil {
		return err
	}
	if err := s.api.UpdateSecuritySettings(ctx, userID, req); err != nil {
		return err
	}

	sessions, err := s.api.ListSessions(ctx, userID)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("session cleanup skipped: listing sessions failed")
		return nil
	}
	for _, sess := range sessions {
		if sess.Current {
			continue
		}
		if err := s.api.TerminateSession(ctx, userID, sess.ID); err != nil {
			s.log.Warn().Err(err).Str("session_id", sess.ID).Msg("session cleanup: terminate failed")
		}
	}
	return nil
}
