// Package home implements the landing screen: entry points into a new
// interview and the candidate dashboard.
package home

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/vettalabs/vetta/internal/bank"
	"github.com/vettalabs/vetta/internal/router"
	"github.com/vettalabs/vetta/internal/screen"
	"github.com/vettalabs/vetta/internal/screens/dashboard"
	sessionscreen "github.com/vettalabs/vetta/internal/screens/session"
	"github.com/vettalabs/vetta/internal/store"
	"github.com/vettalabs/vetta/internal/ui/components"
	"github.com/vettalabs/vetta/internal/ui/layout"
	"github.com/vettalabs/vetta/internal/ui/theme"
)

// statsLoadedMsg delivers the candidate count shown under the menu.
type statsLoadedMsg struct {
	Count int
	Err   error
}

// HomeScreen is the landing screen.
type HomeScreen struct {
	sampler    *bank.Sampler
	candidates store.CandidateRepo
	sortBy     store.SortField
	order      store.SortOrder

	menu      components.Menu
	count     int
	haveCount bool
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen. sortBy and order are the configured
// dashboard defaults, passed through when the dashboard is opened.
func New(sampler *bank.Sampler, candidates store.CandidateRepo, sortBy store.SortField, order store.SortOrder) *HomeScreen {
	h := &HomeScreen{
		sampler:    sampler,
		candidates: candidates,
		sortBy:     sortBy,
		order:      order,
	}
	h.menu = components.NewMenu([]components.MenuItem{
		{Label: "Start New Interview", Action: h.startInterview},
		{Label: "Candidate Dashboard", Action: h.openDashboard},
		{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }},
	})
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadStats()
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		if msg.Err == nil {
			h.count = msg.Count
			h.haveCount = true
		}
		return h, nil

	case tea.KeyMsg:
		var cmd tea.Cmd
		h.menu, cmd = h.menu.Update(msg)
		return h, cmd
	}
	return h, nil
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	b.WriteString(theme.Title.Width(width).Render("Vetta"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Timed technical interviews, scored as you go"))
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))
	b.WriteString("\n")

	if h.haveCount {
		stats := fmt.Sprintf("%d interview(s) on record", h.count)
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(stats))
	}

	return b.String()
}

func (h *HomeScreen) startInterview() tea.Cmd {
	sampler := h.sampler
	repo := h.candidates
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: sessionscreen.New(sampler, repo)}
	}
}

func (h *HomeScreen) openDashboard() tea.Cmd {
	repo := h.candidates
	sortBy, order := h.sortBy, h.order
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: dashboard.New(repo, sortBy, order)}
	}
}

func (h *HomeScreen) loadStats() tea.Cmd {
	repo := h.candidates
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		records, err := repo.List(ctx, store.ListOpts{})
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		return statsLoadedMsg{Count: len(records)}
	}
}
