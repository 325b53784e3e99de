package dashboard

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/vettalabs/vetta/internal/interview"
	"github.com/vettalabs/vetta/internal/router"
	"github.com/vettalabs/vetta/internal/store"
)

// fakeRepo implements store.CandidateRepo over a slice.
type fakeRepo struct {
	records  []interview.CandidateRecord
	lastOpts store.ListOpts
	deleted  []string
}

func (f *fakeRepo) Upsert(_ context.Context, _ *interview.CandidateRecord) error { return nil }
func (f *fakeRepo) Get(_ context.Context, _ string) (*interview.CandidateRecord, error) {
	return nil, nil
}
func (f *fakeRepo) List(_ context.Context, opts store.ListOpts) ([]interview.CandidateRecord, error) {
	f.lastOpts = opts
	return f.records, nil
}
func (f *fakeRepo) Delete(_ context.Context, sessionID string) error {
	f.deleted = append(f.deleted, sessionID)
	return nil
}
func (f *fakeRepo) Purge(_ context.Context) error { return nil }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testRepo() *fakeRepo {
	return &fakeRepo{records: []interview.CandidateRecord{
		{SessionID: "s1", Name: "Ada Lovelace", Email: "ada@example.com", FinalScore: 48.0, Percentage: 80.0, EndedAt: time.Now()},
		{SessionID: "s2", Name: "Grace Hopper", Email: "grace@example.com", FinalScore: 39.5, Percentage: 65.8, EndedAt: time.Now()},
	}}
}

func loaded(t *testing.T, d *DashboardScreen) *DashboardScreen {
	t.Helper()
	cmd := d.Init()
	if cmd == nil {
		t.Fatal("expected a load command")
	}
	scr, _ := d.Update(cmd())
	return scr.(*DashboardScreen)
}

func TestDashboard_ListsCandidates(t *testing.T) {
	d := loaded(t, New(testRepo(), store.SortByScore, store.OrderDesc))

	view := d.View(100, 30)
	if !strings.Contains(view, "Ada Lovelace") || !strings.Contains(view, "Grace Hopper") {
		t.Error("view missing candidate rows")
	}
}

func TestDashboard_EmptyState(t *testing.T) {
	d := loaded(t, New(&fakeRepo{}, store.SortByScore, store.OrderDesc))
	if !strings.Contains(d.View(100, 30), "No finished interviews yet.") {
		t.Error("expected the empty state message")
	}
}

func TestDashboard_SortCycleReloads(t *testing.T) {
	repo := testRepo()
	d := loaded(t, New(repo, store.SortByScore, store.OrderDesc))

	scr, cmd := d.Update(keyPress('s'))
	d = scr.(*DashboardScreen)
	if d.sortBy != store.SortByName {
		t.Errorf("sortBy = %s, want %s", d.sortBy, store.SortByName)
	}
	if cmd == nil {
		t.Fatal("expected a reload command")
	}
	cmd()
	if repo.lastOpts.SortBy != store.SortByName {
		t.Errorf("repo opts SortBy = %s, want %s", repo.lastOpts.SortBy, store.SortByName)
	}

	scr, cmd = d.Update(keyPress('o'))
	d = scr.(*DashboardScreen)
	if d.order != store.OrderAsc {
		t.Errorf("order = %s, want %s", d.order, store.OrderAsc)
	}
	if cmd == nil {
		t.Error("expected a reload command")
	}
}

func TestDashboard_SearchAppliesFilter(t *testing.T) {
	repo := testRepo()
	d := loaded(t, New(repo, store.SortByScore, store.OrderDesc))

	scr, _ := d.Update(keyPress('/'))
	d = scr.(*DashboardScreen)
	if !d.searchActive {
		t.Fatal("expected search to be active")
	}

	d.search.SetValue("ada")
	scr, cmd := d.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	d = scr.(*DashboardScreen)
	if d.searchTerm != "ada" {
		t.Errorf("searchTerm = %q, want %q", d.searchTerm, "ada")
	}
	if cmd == nil {
		t.Fatal("expected a reload command")
	}
	cmd()
	if repo.lastOpts.Search != "ada" {
		t.Errorf("repo opts Search = %q, want %q", repo.lastOpts.Search, "ada")
	}
}

func TestDashboard_DetailView(t *testing.T) {
	d := loaded(t, New(testRepo(), store.SortByScore, store.OrderDesc))

	scr, _ := d.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	d = scr.(*DashboardScreen)
	if !d.showingDetail {
		t.Fatal("expected detail view")
	}
	if !strings.Contains(d.View(100, 30), "ada@example.com") {
		t.Error("detail view missing contact info")
	}

	scr, _ = d.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	d = scr.(*DashboardScreen)
	if d.showingDetail {
		t.Error("expected detail view to close")
	}
}

func TestDashboard_DeleteConfirmFlow(t *testing.T) {
	repo := testRepo()
	d := loaded(t, New(repo, store.SortByScore, store.OrderDesc))

	scr, _ := d.Update(keyPress('x'))
	d = scr.(*DashboardScreen)
	if !d.confirmingWipe {
		t.Fatal("expected delete confirmation")
	}

	// N cancels.
	scr, _ = d.Update(keyPress('n'))
	d = scr.(*DashboardScreen)
	if d.confirmingWipe {
		t.Error("expected confirmation to be dismissed")
	}
	if len(repo.deleted) != 0 {
		t.Error("expected no deletion on cancel")
	}

	// Y deletes the selected record.
	scr, _ = d.Update(keyPress('x'))
	d = scr.(*DashboardScreen)
	scr, cmd := d.Update(keyPress('y'))
	d = scr.(*DashboardScreen)
	if cmd == nil {
		t.Fatal("expected a delete command")
	}
	cmd()
	if len(repo.deleted) != 1 || repo.deleted[0] != "s1" {
		t.Errorf("deleted = %v, want [s1]", repo.deleted)
	}
}

func TestDashboard_EscPops(t *testing.T) {
	d := loaded(t, New(testRepo(), store.SortByScore, store.OrderDesc))

	_, cmd := d.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command on esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected a PopScreenMsg")
	}
}
