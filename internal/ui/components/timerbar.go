package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/vettalabs/vetta/internal/ui/theme"
)

// TimerBar displays the remaining answer time as a draining bar.
// The fill color shifts as the budget runs out.
type TimerBar struct {
	Remaining int // seconds left
	Total     int // tier budget in seconds
	Width     int
}

// NewTimerBar creates a timer bar for a question's time budget.
func NewTimerBar(remaining, total, width int) TimerBar {
	return TimerBar{Remaining: remaining, Total: total, Width: width}
}

// View renders the timer bar with a mm:ss readout.
func (t TimerBar) View() string {
	ratio := 0.0
	if t.Total > 0 {
		ratio = float64(t.Remaining) / float64(t.Total)
	}

	readout := fmt.Sprintf(" %d:%02d", t.Remaining/60, t.Remaining%60)

	barWidth := t.Width - lipgloss.Width(readout)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * ratio)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}

	fill := theme.Success
	switch {
	case ratio < 0.2:
		fill = theme.Error
	case ratio < 0.5:
		fill = theme.Warning
	}

	bar := lipgloss.NewStyle().Background(fill).Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", barWidth-filled))

	return bar + lipgloss.NewStyle().Foreground(theme.TextDim).Render(readout)
}
