package domain

type EntryStatus string

const (
	EntryDraft     EntryStatus = "draft"
	EntrySubmitted EntryStatus = "submitted"
	EntryApproved  EntryStatus = "approved"
	EntryRejected  EntryStatus = "rejected"
)

// validEntryTransitions is the closed set of status moves the approval
// workflow allows: draft → submitted → {approved | rejected}.
var validEntryTransitions = map[EntryStatus][]EntryStatus{
	EntryDraft:     {EntrySubmitted},
	EntrySubmitted: {EntryApproved, EntryRejected},
}

// CanTransition reports whether an entry may move from one status to another.
func (s EntryStatus) CanTransition(to EntryStatus) bool {
	for _, next := range validEntryTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectInactive  ProjectStatus = "inactive"
	ProjectCompleted ProjectStatus = "completed"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// CanApprove reports whether the role is allowed to approve or reject
// submitted time entries.
func (r Role) CanApprove() bool {
	return r == RoleAdmin || r == RoleManager
}
