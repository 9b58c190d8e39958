package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntryStatusCanTransition(t *testing.T) {
	tests := []struct {
		from, to EntryStatus
		want     bool
	}{
		{EntryDraft, EntrySubmitted, true},
		{EntrySubmitted, EntryApproved, true},
		{EntrySubmitted, EntryRejected, true},
		{EntryDraft, EntryApproved, false},
		{EntryDraft, EntryRejected, false},
		{EntryApproved, EntryDraft, false},
		{EntryApproved, EntrySubmitted, false},
		{EntryRejected, EntrySubmitted, false},
		{EntrySubmitted, EntryDraft, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.from.CanTransition(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestRoleCanApprove(t *testing.T) {
	assert.True(t, RoleAdmin.CanApprove())
	assert.True(t, RoleManager.CanApprove())
	assert.False(t, RoleEmployee.CanApprove())
}

func TestTimeEntryIsEditable(t *testing.T) {
	for status, want := range map[EntryStatus]bool{
		EntryDraft:     true,
		EntrySubmitted: false,
		EntryApproved:  false,
		EntryRejected:  false,
	} {
		e := TimeEntry{Status: status}
		assert.Equal(t, want, e.IsEditable(), "status %s", status)
	}
}
