// Package dashboard implements the interviewer-facing candidate list:
// finished interviews with search, sorting, a per-candidate detail view,
// and deletion.
package dashboard

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/vettalabs/vetta/internal/interview"
	"github.com/vettalabs/vetta/internal/router"
	"github.com/vettalabs/vetta/internal/screen"
	"github.com/vettalabs/vetta/internal/store"
	"github.com/vettalabs/vetta/internal/ui/components"
	"github.com/vettalabs/vetta/internal/ui/layout"
)

// candidatesLoadedMsg delivers a (re)loaded candidate listing.
type candidatesLoadedMsg struct {
	Records []interview.CandidateRecord
	Err     error
}

// candidateDeletedMsg reports the result of a delete.
type candidateDeletedMsg struct {
	Err error
}

// DashboardScreen implements screen.Screen for the candidate dashboard.
type DashboardScreen struct {
	repo store.CandidateRepo

	records  []interview.CandidateRecord
	selected int
	loading  bool
	errMsg   string

	sortBy store.SortField
	order  store.SortOrder

	search       components.TextInput
	searchActive bool
	searchTerm   string

	showingDetail  bool
	confirmingWipe bool
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates a dashboard screen. sortBy and order set the initial
// ordering, typically from config.
func New(repo store.CandidateRepo, sortBy store.SortField, order store.SortOrder) *DashboardScreen {
	if sortBy == "" {
		sortBy = store.SortByScore
	}
	if order == "" {
		order = store.OrderDesc
	}
	return &DashboardScreen{
		repo:    repo,
		loading: true,
		sortBy:  sortBy,
		order:   order,
		search:  components.NewTextInput("Search name or email...", 0),
	}
}

func (d *DashboardScreen) Init() tea.Cmd {
	return d.loadCandidates()
}

func (d *DashboardScreen) Title() string {
	if d.showingDetail {
		return "Candidate"
	}
	return "Dashboard"
}

func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	if d.confirmingWipe {
		return []layout.KeyHint{
			{Key: "Y", Description: "Delete"},
			{Key: "N", Description: "Cancel"},
		}
	}
	if d.showingDetail {
		return []layout.KeyHint{
			{Key: "X", Description: "Delete"},
			{Key: "Esc", Description: "Back"},
		}
	}
	if d.searchActive {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Apply"},
			{Key: "Esc", Description: "Clear"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "/", Description: "Search"},
		{Key: "S", Description: "Sort"},
		{Key: "O", Description: "Order"},
		{Key: "X", Description: "Delete"},
		{Key: "Esc", Description: "Back"},
	}
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case candidatesLoadedMsg:
		d.loading = false
		if msg.Err != nil {
			d.errMsg = msg.Err.Error()
			return d, nil
		}
		d.errMsg = ""
		d.records = msg.Records
		if d.selected >= len(d.records) {
			d.selected = len(d.records) - 1
		}
		if d.selected < 0 {
			d.selected = 0
		}
		return d, nil

	case candidateDeletedMsg:
		d.confirmingWipe = false
		d.showingDetail = false
		if msg.Err != nil {
			d.errMsg = msg.Err.Error()
			return d, nil
		}
		return d, d.loadCandidates()

	case tea.KeyMsg:
		return d.handleKey(msg)
	}

	if d.searchActive {
		var cmd tea.Cmd
		d.search, cmd = d.search.Update(msg)
		return d, cmd
	}
	return d, nil
}

func (d *DashboardScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if d.confirmingWipe {
		switch key {
		case "y", "Y":
			return d, d.deleteSelected()
		case "n", "N", "esc":
			d.confirmingWipe = false
		}
		return d, nil
	}

	if d.showingDetail {
		switch key {
		case "esc", "q", "enter":
			d.showingDetail = false
		case "x", "X":
			d.confirmingWipe = true
		}
		return d, nil
	}

	if d.searchActive {
		switch key {
		case "enter":
			d.searchActive = false
			d.searchTerm = d.search.Value()
			d.selected = 0
			return d, d.loadCandidates()
		case "esc":
			d.searchActive = false
			d.searchTerm = ""
			d.search.SetValue("")
			d.selected = 0
			return d, d.loadCandidates()
		}
		var cmd tea.Cmd
		d.search, cmd = d.search.Update(msg)
		return d, cmd
	}

	switch key {
	case "esc", "q":
		return d, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if d.selected > 0 {
			d.selected--
		}
	case "down", "j":
		if d.selected < len(d.records)-1 {
			d.selected++
		}
	case "enter":
		if len(d.records) > 0 {
			d.showingDetail = true
		}
	case "/":
		d.searchActive = true
		return d, d.search.Init()
	case "s", "S":
		d.sortBy = nextSortField(d.sortBy)
		return d, d.loadCandidates()
	case "o", "O":
		if d.order == store.OrderDesc {
			d.order = store.OrderAsc
		} else {
			d.order = store.OrderDesc
		}
		return d, d.loadCandidates()
	case "x", "X":
		if len(d.records) > 0 {
			d.confirmingWipe = true
		}
	case "r", "R":
		return d, d.loadCandidates()
	}

	return d, nil
}

func nextSortField(f store.SortField) store.SortField {
	switch f {
	case store.SortByScore:
		return store.SortByName
	case store.SortByName:
		return store.SortByDate
	default:
		return store.SortByScore
	}
}

func (d *DashboardScreen) loadCandidates() tea.Cmd {
	repo := d.repo
	opts := store.ListOpts{
		Search: d.searchTerm,
		SortBy: d.sortBy,
		Order:  d.order,
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		records, err := repo.List(ctx, opts)
		return candidatesLoadedMsg{Records: records, Err: err}
	}
}

func (d *DashboardScreen) deleteSelected() tea.Cmd {
	if d.selected < 0 || d.selected >= len(d.records) {
		return func() tea.Msg { return candidateDeletedMsg{} }
	}
	repo := d.repo
	sessionID := d.records[d.selected].SessionID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return candidateDeletedMsg{Err: repo.Delete(ctx, sessionID)}
	}
}
