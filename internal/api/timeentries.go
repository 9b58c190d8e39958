package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/mvankuipers/tally/internal/domain"
)

// TimeEntryRequest is the create/update payload for a time entry.
// Validation runs client-side before any network call.
type TimeEntryRequest struct {
	ProjectID   string `json:"projectId" validate:"required"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime   string `json:"startTime,omitempty" validate:"omitempty"`
	EndTime     string `json:"endTime,omitempty" validate:"omitempty"`
	Duration    int    `json:"duration" validate:"required,gt=0"`
	Description string `json:"description"`
	IsBillable  bool   `json:"isBillable"`
}

// EntryFilter narrows a time entry listing. Zero fields are omitted.
type EntryFilter struct {
	UserID    string
	ProjectID string
	From      string // YYYY-MM-DD inclusive
	To        string // YYYY-MM-DD inclusive
}

func (f EntryFilter) query() string {
	q := url.Values{}
	if f.UserID != "" {
		q.Set("userId", f.UserID)
	}
	if f.ProjectID != "" {
		q.Set("projectId", f.ProjectID)
	}
	if f.From != "" {
		q.Set("from", f.From)
	}
	if f.To != "" {
		q.Set("to", f.To)
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// BulkOutcome reports per-id results of a bulk submit/approve/reject.
// The backend may accept a subset of the batch; only entries in
// Succeeded carry server-confirmed state.
type BulkOutcome struct {
	Succeeded []domain.TimeEntry `json:"succeeded"`
	Failed    []BulkFailure      `json:"failed"`
}

type BulkFailure struct {
	ID      string `json:"id"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type bulkRequest struct {
	IDs     []string `json:"ids"`
	Comment string   `json:"comment,omitempty"`
}

func (c *Client) ListTimeEntries(ctx context.Context, filter EntryFilter) ([]domain.TimeEntry, error) {
	var entries []domain.TimeEntry
	if err := c.do(ctx, http.MethodGet, "/time-entries"+filter.query(), nil, &entries); err != nil {
		return nil, fmt.Errorf("listing time entries: %w", err)
	}
	return entries, nil
}

func (c *Client) CreateTimeEntry(ctx context.Context, req TimeEntryRequest) (*domain.TimeEntry, error) {
	var created domain.TimeEntry
	if err := c.do(ctx, http.MethodPost, "/time-entries", req, &created); err != nil {
		return nil, fmt.Errorf("creating time entry: %w", err)
	}
	return &created, nil
}

func (c *Client) UpdateTimeEntry(ctx context.Context, id string, req TimeEntryRequest) (*domain.TimeEntry, error) {
	var updated domain.TimeEntry
	if err := c.do(ctx, http.MethodPut, "/time-entries/"+id, req, &updated); err != nil {
		return nil, fmt.Errorf("updating time entry %s: %w", id, err)
	}
	return &updated, nil
}

func (c *Client) DeleteTimeEntry(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/time-entries/"+id, nil, nil); err != nil {
		return fmt.Errorf("deleting time entry %s: %w", id, err)
	}
	return nil
}

// SubmitTimeEntries moves a batch of draft entries to submitted status.
func (c *Client) SubmitTimeEntries(ctx context.Context, ids []string) (*BulkOutcome, error) {
	var outcome BulkOutcome
	if err := c.do(ctx, http.MethodPost, "/time-entries/submit", bulkRequest{IDs: ids}, &outcome); err != nil {
		return nil, fmt.Errorf("submitting time entries: %w", err)
	}
	return &outcome, nil
}

// ApproveTimeEntries approves a batch of submitted entries.
func (c *Client) ApproveTimeEntries(ctx context.Context, ids []string, comment string) (*BulkOutcome, error) {
	var outcome BulkOutcome
	if err := c.do(ctx, http.MethodPost, "/time-entries/approve", bulkRequest{IDs: ids, Comment: comment}, &outcome); err != nil {
		return nil, fmt.Errorf("approving time entries: %w", err)
	}
	return &outcome, nil
}

// RejectTimeEntries rejects a batch of submitted entries with a comment.
func (c *Client) RejectTimeEntries(ctx context.Context, ids []string, comment string) (*BulkOutcome, error) {
	var outcome BulkOutcome
	if err := c.do(ctx, http.MethodPost, "/time-entries/reject", bulkRequest{IDs: ids, Comment: comment}, &outcome); err != nil {
		return nil, fmt.Errorf("rejecting time entries: %w", err)
	}
	return &outcome, nil
}
