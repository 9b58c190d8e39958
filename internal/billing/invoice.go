// Package billing derives invoice summaries from the in-memory state
// tree. Everything here is pure computation: only approved, billable
// entries are invoiced, at each project's hourly rate.
package billing

import (
	"fmt"
	"sort"

	"github.com/mvankuipers/tally/internal/domain"
	"github.com/mvankuipers/tally/internal/state"
)

type Invoice struct {
	ClientID   string
	ClientName string
	From       string // YYYY-MM-DD inclusive, empty means unbounded
	To         string
	Lines      []Line
	TotalHours float64
	Total      float64
}

// Line aggregates one project's approved billable time.
type Line struct {
	ProjectID   string
	ProjectName string
	Minutes     int
	HourlyRate  float64
	Amount      float64

	// BudgetExceeded is set when the invoiced time or amount pushes past
	// the project's hours or amount budget.
	BudgetExceeded bool
}

// BuildInvoice summarizes approved billable entries for one client over
// an optional date range.
func BuildInvoice(s state.State, clientID, from, to string) (*Invoice, error) {
	client, ok := s.ClientByID(clientID)
	if !ok {
		return nil, fmt.Errorf("client %s: %w", clientID, domain.ErrClientNotFound)
	}

	projects := make(map[string]domain.Project)
	for _, p := range s.Projects {
		if p.ClientID == clientID {
			projects[p.ID] = p
		}
	}

	minutes := make(map[string]int)
	for _, e := range s.TimeEntries {
		if e.Status != domain.EntryApproved || !e.IsBillable {
			continue
		}
		if _, ok := projects[e.ProjectID]; !ok {
			continue
		}
		if from != "" && e.Date < from {
			continue
		}
		if to != "" && e.Date > to {
			continue
		}
		minutes[e.ProjectID] += e.Duration
	}

	inv := &Invoice{
		ClientID:   client.ID,
		ClientName: client.Name,
		From:       from,
		To:         to,
	}

	for projectID, mins := range minutes {
		p := projects[projectID]
		hours := float64(mins) / 60.0
		amount := hours * p.HourlyRate
		line := Line{
			ProjectID:   projectID,
			ProjectName: p.Name,
			Minutes:     mins,
			HourlyRate:  p.HourlyRate,
			Amount:      amount,
		}
		if p.Budget != nil {
			overAmount := p.Budget.Amount > 0 && amount > p.Budget.Amount
			overHours := p.Budget.Hours > 0 && hours > p.Budget.Hours
			line.BudgetExceeded = overAmount || overHours
		}
		inv.Lines = append(inv.Lines, line)
		inv.TotalHours += hours
		inv.Total += amount
	}

	sort.Slice(inv.Lines, func(i, j int) bool {
		return inv.Lines[i].ProjectName < inv.Lines[j].ProjectName
	})

	return inv, nil
}
