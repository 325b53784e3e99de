// Package summary implements the post-interview summary screen.
package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/vettalabs/vetta/internal/bank"
	"github.com/vettalabs/vetta/internal/interview"
	"github.com/vettalabs/vetta/internal/router"
	"github.com/vettalabs/vetta/internal/screen"
	enginesummary "github.com/vettalabs/vetta/internal/summary"
	"github.com/vettalabs/vetta/internal/ui/layout"
	"github.com/vettalabs/vetta/internal/ui/theme"
)

// SummaryScreen shows the finished interview's report.
type SummaryScreen struct {
	record  *interview.CandidateRecord
	report  *enginesummary.Report
	saveErr error
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a summary screen for a finished interview. saveErr is the
// result of persisting the record; the summary still renders when the
// save failed.
func New(record *interview.CandidateRecord, saveErr error) *SummaryScreen {
	s := &SummaryScreen{record: record, saveErr: saveErr}
	if record != nil {
		// Recomputed rather than stored: the record keeps only the
		// headline numbers and narrative.
		s.report, _ = enginesummary.Summarize(record.Questions, record.Evaluations)
	}
	return s
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	if s.record == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  No interview to summarize.")
	}

	rec := s.record
	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(theme.Title.Width(width).Render("Interview Complete"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render(rec.Name))
	b.WriteString("\n\n")

	headline := fmt.Sprintf("%.1f / %.1f  (%.1f%%)", rec.FinalScore, maxScore(rec), rec.Percentage)
	headlineStyle := theme.Good
	if rec.Percentage < 50 {
		headlineStyle = theme.Bad
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(headlineStyle.Render(headline)))
	b.WriteString("\n\n")

	if s.report != nil {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderTierAverages(s.report)))
		b.WriteString("\n\n")
	}

	narrative := lipgloss.NewStyle().
		Width(min(width-8, 74)).
		Foreground(theme.Text).
		Render(rec.SummaryText)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, narrative))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderQuestionTable(rec)))

	if s.saveErr != nil {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("Warning: result could not be saved: " + s.saveErr.Error()))
	}

	return b.String()
}

func renderTierAverages(report *enginesummary.Report) string {
	var parts []string
	for _, ta := range report.TierAverages {
		label := strings.ToUpper(string(ta.Tier))
		value := "n/a"
		if ta.Defined {
			value = fmt.Sprintf("%.1f/10", ta.Average)
		}
		parts = append(parts,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(label+" ")+
				lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(value))
	}
	return strings.Join(parts, "    ")
}

func renderQuestionTable(rec *interview.CandidateRecord) string {
	var b strings.Builder
	for i, q := range rec.Questions {
		if i >= len(rec.Evaluations) {
			break
		}
		ev := rec.Evaluations[i]
		timeUsed := 0
		if i < len(rec.Answers) {
			timeUsed = rec.Answers[i].TimeUsedSecs
		}
		line := fmt.Sprintf("Q%d  %-6s  %4.1f/10  %3ds/%ds",
			i+1, q.Tier, ev.Score, timeUsed, bank.TimeLimit(q.Tier))
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if ev.Score < 4 {
			style = lipgloss.NewStyle().Foreground(theme.Error)
		}
		b.WriteString(style.Render(line))
		if i < len(rec.Questions)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func maxScore(rec *interview.CandidateRecord) float64 {
	return 10 * float64(len(rec.Evaluations))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
