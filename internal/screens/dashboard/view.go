package dashboard

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/vettalabs/vetta/internal/bank"
	"github.com/vettalabs/vetta/internal/interview"
	"github.com/vettalabs/vetta/internal/ui/theme"
)

func (d *DashboardScreen) View(width, height int) string {
	if d.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\n  Error: " + d.errMsg)
	}
	if d.loading {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Loading candidates...")
	}
	if d.confirmingWipe {
		return d.renderDeleteConfirm(width)
	}
	if d.showingDetail {
		return d.renderDetail(width, height)
	}
	return d.renderList(width, height)
}

func (d *DashboardScreen) renderList(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	orderArrow := "▼"
	if d.order == "asc" {
		orderArrow = "▲"
	}
	status := fmt.Sprintf("  %d candidate(s)  ·  sort: %s %s", len(d.records), d.sortBy, orderArrow)
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(status))
	b.WriteString("\n")

	if d.searchActive {
		b.WriteString("  Search: " + d.search.View())
		b.WriteString("\n")
	} else if d.searchTerm != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render("  Filter: " + d.searchTerm))
		b.WriteString("\n")
	}

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", maxInt(width-4, 0))))
	b.WriteString("\n")

	if len(d.records) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n  No finished interviews yet."))
		return b.String()
	}

	header := fmt.Sprintf("    %-24s %-28s %7s %7s  %s", "NAME", "EMAIL", "SCORE", "PCT", "DATE")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true).Render(header))
	b.WriteString("\n")

	for i, rec := range d.records {
		line := fmt.Sprintf("%-24s %-28s %7.1f %6.1f%%  %s",
			truncate(rec.Name, 24),
			truncate(rec.Email, 28),
			rec.FinalScore,
			rec.Percentage,
			rec.EndedAt.Format("2006-01-02 15:04"),
		)
		if i == d.selected {
			b.WriteString(theme.Selected.Render("  ▸ " + line))
		} else {
			b.WriteString(theme.Unselected.Render("    " + line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (d *DashboardScreen) renderDetail(width, height int) string {
	if d.selected < 0 || d.selected >= len(d.records) {
		return ""
	}
	rec := d.records[d.selected]

	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(theme.Title.Width(width).Render(rec.Name))
	b.WriteString("\n")
	contact := rec.Email
	if rec.Phone != "" {
		contact += "  ·  " + rec.Phone
	}
	b.WriteString(theme.Subtitle.Width(width).Render(contact))
	b.WriteString("\n\n")

	headline := fmt.Sprintf("Final score: %.1f  (%.1f%%)", rec.FinalScore, rec.Percentage)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Bold(true).
		Render(headline))
	b.WriteString("\n\n")

	narrative := lipgloss.NewStyle().
		Width(minInt(width-8, 74)).
		Foreground(theme.Text).
		Render(rec.SummaryText)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, narrative))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderTranscript(&rec, width)))

	return b.String()
}

// renderTranscript lists each question with its score and the answer's
// first line.
func renderTranscript(rec *interview.CandidateRecord, width int) string {
	var b strings.Builder
	for i, q := range rec.Questions {
		if i >= len(rec.Evaluations) {
			break
		}
		ev := rec.Evaluations[i]

		head := fmt.Sprintf("Q%d [%s] %.1f/10", i+1, q.Tier, ev.Score)
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(head))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(minInt(width-8, 74)).
			Foreground(theme.Text).
			Render(q.Text))
		b.WriteString("\n")
		if i < len(rec.Answers) {
			ans := firstLine(rec.Answers[i].Text)
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
				fmt.Sprintf("  ↳ %s  (%ds/%ds)", truncate(ans, 60), rec.Answers[i].TimeUsedSecs, bank.TimeLimit(q.Tier))))
			b.WriteString("\n")
		}
		if i < len(rec.Questions)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (d *DashboardScreen) renderDeleteConfirm(width int) string {
	name := ""
	if d.selected >= 0 && d.selected < len(d.records) {
		name = d.records[d.selected].Name
	}

	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(fmt.Sprintf("Delete %q?", name)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("This cannot be undone."))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("[Y] Yes, delete"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep"))
	return b.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
