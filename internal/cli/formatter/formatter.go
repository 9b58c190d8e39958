// Package formatter renders CLI output: aligned tables and status
// coloring for the terminal.
package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mvankuipers/tally/internal/domain"
)

var (
	styleHeader = lipgloss.NewStyle().Bold(true)
	styleDim    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleGreen  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	styleYellow = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	styleRed    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	styleBlue   = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
)

// Table renders rows under a bold header with a separator line, padding
// each column to the widest visible cell.
func Table(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	cols := len(headers)
	widths := make([]int, cols)
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < cols && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	const gap = 2
	var b strings.Builder

	for i, h := range headers {
		b.WriteString(styleHeader.Render(h))
		if i < cols-1 {
			b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(h)+gap))
		}
	}
	b.WriteString("\n")

	for i, w := range widths {
		b.WriteString(styleDim.Render(strings.Repeat("─", w)))
		if i < cols-1 {
			b.WriteString(strings.Repeat(" ", gap))
		}
	}
	b.WriteString("\n")

	for _, row := range rows {
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			b.WriteString(cell)
			if i < cols-1 {
				pad := widths[i] - lipgloss.Width(cell)
				if pad < 0 {
					pad = 0
				}
				b.WriteString(strings.Repeat(" ", pad+gap))
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

// EntryStatus colors an approval status for list output.
func EntryStatus(status domain.EntryStatus) string {
	switch status {
	case domain.EntryApproved:
		return styleGreen.Render(string(status))
	case domain.EntrySubmitted:
		return styleYellow.Render(string(status))
	case domain.EntryRejected:
		return styleRed.Render(string(status))
	default:
		return styleDim.Render(string(status))
	}
}

// ProjectStatus colors a project lifecycle status.
func ProjectStatus(status domain.ProjectStatus) string {
	switch status {
	case domain.ProjectActive:
		return styleGreen.Render(string(status))
	case domain.ProjectCompleted:
		return styleBlue.Render(string(status))
	default:
		return styleDim.Render(string(status))
	}
}

// Hours formats minutes as "H:MM".
func Hours(minutes int) string {
	return fmt.Sprintf("%d:%02d", minutes/60, minutes%60)
}

// Dim renders muted text.
func Dim(s string) string { return styleDim.Render(s) }

// Warn renders attention-grabbing text.
func Warn(s string) string { return styleRed.Render(s) }
