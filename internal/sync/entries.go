package sync

import (
	"context"
	"fmt"

	"github.com/mvankuipers/tally/internal/api"
	"github.com/mvankuipers/tally/internal/domain"
	"github.com/mvankuipers/tally/internal/state"
)

// LoadEntries replaces the local entry collection with a filtered
// server listing.
func (s *Service) LoadEntries(ctx context.Context, filter api.EntryFilter) ([]domain.TimeEntry, error) {
	entries, err := s.api.ListTimeEntries(ctx, filter)
	if err != nil {
		return nil, err
	}
	s.store.Dispatch(state.SetTimeEntries{Entries: entries})
	return entries, nil
}

// CreateEntry creates a draft on the server and inserts the returned
// representation, not the submitted payload, so server-assigned
// fields (id, timestamps, status) land in local state.
func (s *Service) CreateEntry(ctx context.Context, req api.TimeEntryRequest) (*domain.TimeEntry, error) {
	if err := s.checkValid(req); err != nil {
		return nil, err
	}
	created, err := s.api.CreateTimeEntry(ctx, req)
	if err != nil {
		return nil, err
	}
	s.store.Dispatch(state.AddTimeEntry{Entry: *created})
	return created, nil
}

// UpdateEntry edits a draft. Non-draft entries are rejected locally
// before any network call.
func (s *Service) UpdateEntry(ctx context.Context, id string, req api.TimeEntryRequest) (*domain.TimeEntry, error) {
	entry, ok := s.store.State().EntryByID(id)
	if !ok {
		return nil, fmt.Errorf("entry %s: %w", id, domain.ErrEntryNotFound)
	}
	if !entry.IsEditable() {
		return nil, fmt.Errorf("entry %s has status %s: %w", id, entry.Status, domain.ErrEntryNotEditable)
	}
	if err := s.checkValid(req); err != nil {
		return nil, err
	}
	updated, err := s.api.UpdateTimeEntry(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.store.Dispatch(state.UpdateTimeEntry{Entry: *updated})
	return updated, nil
}

// DeleteEntry deletes a draft. Non-draft entries are rejected locally
// before any network call.
func (s *Service) DeleteEntry(ctx context.Context, id string) error {
	entry, ok := s.store.State().EntryByID(id)
	if !ok {
		return fmt.Errorf("entry %s: %w", id, domain.ErrEntryNotFound)
	}
	if !entry.IsEditable() {
		return fmt.Errorf("entry %s has status %s: %w", id, entry.Status, domain.ErrEntryNotEditable)
	}
	if err := s.api.DeleteTimeEntry(ctx, id); err != nil {
		return err
	}
	s.store.Dispatch(state.DeleteTimeEntry{ID: id})
	return nil
}

// SubmitEntries submits a batch of drafts for approval. The backend may
// accept only part of the batch; only confirmed entries are updated
// locally and the per-id outcome is returned so callers can report
// exactly which ids failed. Entries known locally to have left draft
// status are rejected before any network call.
func (s *Service) SubmitEntries(ctx context.Context, ids []string) (*api.BulkOutcome, error) {
	if len(ids) == 0 {
		return &api.BulkOutcome{}, nil
	}
	for _, id := range ids {
		entry, ok := s.store.State().EntryByID(id)
		if ok && !entry.Status.CanTransition(domain.EntrySubmitted) {
			return nil, fmt.Errorf("entry %s has status %s: %w", id, entry.Status, domain.ErrEntryNotSubmittable)
		}
	}
	outcome, err := s.api.SubmitTimeEntries(ctx, ids)
	if err != nil {
		return nil, err
	}
	s.applyBulk(outcome, "submit")
	return outcome, nil
}

// ApproveEntries approves submitted entries (manager/admin action).
func (s *Service) ApproveEntries(ctx context.Context, ids []string, comment string) (*api.BulkOutcome, error) {
	if len(ids) == 0 {
		return &api.BulkOutcome{}, nil
	}
	if err := s.checkApprover(); err != nil {
		return nil, err
	}
	outcome, err := s.api.ApproveTimeEntries(ctx, ids, comment)
	if err != nil {
		return nil, err
	}
	s.applyBulk(outcome, "approve")
	return outcome, nil
}

// RejectEntries rejects submitted entries with a comment.
func (s *Service) RejectEntries(ctx context.Context, ids []string, comment string) (*api.BulkOutcome, error) {
	if len(ids) == 0 {
		return &api.BulkOutcome{}, nil
	}
	if err := s.checkApprover(); err != nil {
		return nil, err
	}
	outcome, err := s.api.RejectTimeEntries(ctx, ids, comment)
	if err != nil {
		return nil, err
	}
	s.applyBulk(outcome, "reject")
	return outcome, nil
}

// checkApprover gates approve/reject on the current user's role before
// any network call. With no current user loaded the server decides.
func (s *Service) checkApprover() error {
	u := s.store.State().CurrentUser
	if u != nil && !u.Role.CanApprove() {
		return fmt.Errorf("user %s has role %s: %w", u.ID, u.Role, domain.ErrRoleCannotApprove)
	}
	return nil
}

func (s *Service) applyBulk(outcome *api.BulkOutcome, action string) {
	for _, entry := range outcome.Succeeded {
		s.store.Dispatch(state.UpdateTimeEntry{Entry: entry})
	}
	if len(outcome.Failed) > 0 {
		s.log.Warn().
			Str("action", action).
			Int("succeeded", len(outcome.Succeeded)).
			Int("failed", len(outcome.Failed)).
			Msg("bulk action partially failed")
	}
}
