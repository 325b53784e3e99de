package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/vettalabs/vetta/internal/bank"
	"github.com/vettalabs/vetta/internal/interview"
	"github.com/vettalabs/vetta/internal/ui/components"
	"github.com/vettalabs/vetta/internal/ui/theme"
)

func (s *InterviewScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.showingQuitConfirm {
		return renderQuitConfirm(width)
	}
	if s.showingFeedback {
		return s.renderFeedback(width)
	}

	switch s.sess.Stage {
	case interview.StageUpload:
		return s.renderUpload(width)
	case interview.StageInfoCollection:
		return s.renderInfoCollection(width)
	case interview.StageInterview:
		return s.renderQuestion(width, height)
	default:
		return ""
	}
}

func (s *InterviewScreen) renderUpload(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	b.WriteString(theme.Title.Width(width).Render("Upload Resume"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Vetta will pre-fill the candidate's details from a plain-text resume."))
	b.WriteString("\n\n")

	inputLine := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("File: " + s.input.View())
	b.WriteString(inputLine)
	b.WriteString("\n\n")

	if s.resumeErr != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("Could not load resume: " + s.resumeErr))
		b.WriteString("\n\n")
	}

	b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).
		Render("Leave blank and press Enter to fill everything in manually."))

	return b.String()
}

func (s *InterviewScreen) renderInfoCollection(width int) string {
	info := s.sess.Info

	var b strings.Builder
	b.WriteString("\n\n")

	b.WriteString(theme.Title.Width(width).Render("Candidate Details"))
	b.WriteString("\n\n")

	collected := []struct{ label, value string }{
		{"Name", info.Name},
		{"Email", info.Email},
		{"Phone", info.Phone},
	}
	var lines []string
	for _, f := range collected {
		if f.value == "" {
			continue
		}
		lines = append(lines,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(f.label+": ")+
				lipgloss.NewStyle().Foreground(theme.Text).Render(f.value))
	}
	if len(lines) > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(lines, "\n")))
		b.WriteString("\n\n")
	}

	prompt := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(fmt.Sprintf("Enter %s: %s", s.infoField, s.input.View()))
	b.WriteString(prompt)

	if s.fieldErr != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(s.fieldErr))
	}

	return b.String()
}

func (s *InterviewScreen) renderQuestion(width, height int) string {
	q, ok := s.sess.CurrentQuestion()
	if !ok {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Preparing questions...")
	}

	var b strings.Builder

	progress := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d/%d", s.sess.Current+1, len(s.sess.Questions)))

	badge := renderTierBadge(q.Tier)

	line := progress
	pad := width - lipgloss.Width(progress) - lipgloss.Width(badge) - 4
	if pad > 0 {
		line += strings.Repeat(" ", pad) + badge
	}
	b.WriteString(line)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	question := lipgloss.NewStyle().
		Width(min(width-8, 72)).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Text)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, question))
	b.WriteString("\n\n")

	bar := components.NewTimerBar(s.sess.Countdown, bank.TimeLimit(q.Tier), min(width-8, 72))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	if s.sess.Paused {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Warning).
			Bold(true).
			Render("Paused — press Ctrl+P to resume"))
		return b.String()
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.answer.View()))

	return b.String()
}

func (s *InterviewScreen) renderFeedback(width int) string {
	out := s.lastOutcome
	if out == nil {
		return ""
	}
	ev := out.Evaluation

	var b strings.Builder
	b.WriteString("\n\n")

	scoreStyle := theme.Good
	if ev.Score < 6 {
		scoreStyle = theme.Bad
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(scoreStyle.Render(fmt.Sprintf("Score: %.1f / 10", ev.Score))))
	b.WriteString("\n\n")

	feedback := lipgloss.NewStyle().
		Width(min(width-8, 70)).
		Foreground(theme.Text).
		Render(ev.Feedback)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, feedback))
	b.WriteString("\n\n")

	detail := fmt.Sprintf("Keyword matches: %d    Time bonus: +%.1f", ev.KeywordMatches, ev.TimeBonus)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(detail))
	b.WriteString("\n\n")

	next := "Press any key for the next question..."
	if out.Completed {
		next = "Press any key to see the summary..."
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(next))

	return b.String()
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Abandon this interview?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Nothing will be saved."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("[Y] Yes, abandon"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

func renderTierBadge(t bank.Tier) string {
	color := theme.Success
	switch t {
	case bank.TierMedium:
		color = theme.Warning
	case bank.TierHard:
		color = theme.Error
	}
	return lipgloss.NewStyle().
		Foreground(color).
		Bold(true).
		Render(strings.ToUpper(string(t)) + fmt.Sprintf(" · %ds", bank.TimeLimit(t)))
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
