package domain

import "errors"

var (
	// ErrEntryNotEditable indicates an attempt to modify or delete a time
	// entry that has left draft status.
	ErrEntryNotEditable = errors.New("time entry is no longer editable")

	// ErrEntryNotSubmittable indicates a submit attempt on an entry whose
	// status does not allow the draft -> submitted move.
	ErrEntryNotSubmittable = errors.New("time entry cannot be submitted")

	// ErrRoleCannotApprove indicates the current user's role lacks the
	// approve/reject capability.
	ErrRoleCannotApprove = errors.New("role cannot approve or reject time entries")

	// ErrEntryNotFound indicates the referenced entry is not in local state.
	ErrEntryNotFound = errors.New("time entry not found")

	// ErrProjectNotFound indicates the referenced project is not in local state.
	ErrProjectNotFound = errors.New("project not found")

	// ErrClientNotFound indicates the referenced client is not in local state.
	ErrClientNotFound = errors.New("client not found")
)
