package domain

import "time"

// TimeEntry is a single block of tracked work against a project.
// Durations are whole minutes; StartTime/EndTime are optional and only
// present for entries produced by the live timer.
type TimeEntry struct {
	ID          string      `json:"id"`
	ProjectID   string      `json:"projectId"`
	Date        string      `json:"date"` // YYYY-MM-DD
	StartTime   *time.Time  `json:"startTime,omitempty"`
	EndTime     *time.Time  `json:"endTime,omitempty"`
	Duration    int         `json:"duration"` // minutes
	Description string      `json:"description"`
	IsBillable  bool        `json:"isBillable"`
	Status      EntryStatus `json:"status"`
	SubmittedBy string      `json:"submittedBy,omitempty"`
	ApproverID  string      `json:"approverId,omitempty"`
	SubmittedAt *time.Time  `json:"submittedAt,omitempty"`
	ApprovedAt  *time.Time  `json:"approvedAt,omitempty"`
	RejectedAt  *time.Time  `json:"rejectedAt,omitempty"`
	Comment     string      `json:"comment,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// IsEditable reports whether the owner may still change or delete the
// entry. Only drafts are editable; anything in the approval pipeline is
// server-owned.
func (e *TimeEntry) IsEditable() bool {
	return e.Status == EntryDraft
}
