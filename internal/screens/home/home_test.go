package home

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/vettalabs/vetta/internal/bank"
	"github.com/vettalabs/vetta/internal/interview"
	"github.com/vettalabs/vetta/internal/router"
	"github.com/vettalabs/vetta/internal/screens/dashboard"
	sessionscreen "github.com/vettalabs/vetta/internal/screens/session"
	"github.com/vettalabs/vetta/internal/store"
)

type fakeRepo struct {
	records []interview.CandidateRecord
}

func (f *fakeRepo) Upsert(_ context.Context, _ *interview.CandidateRecord) error { return nil }
func (f *fakeRepo) Get(_ context.Context, _ string) (*interview.CandidateRecord, error) {
	return nil, nil
}
func (f *fakeRepo) List(_ context.Context, _ store.ListOpts) ([]interview.CandidateRecord, error) {
	return f.records, nil
}
func (f *fakeRepo) Delete(_ context.Context, _ string) error { return nil }
func (f *fakeRepo) Purge(_ context.Context) error            { return nil }

func testHome() *HomeScreen {
	return New(bank.NewDefaultSampler(), &fakeRepo{
		records: make([]interview.CandidateRecord, 3),
	}, store.SortByScore, store.OrderDesc)
}

func enter() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func down() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyDown}
}

func TestHome_StatsLine(t *testing.T) {
	h := testHome()

	cmd := h.Init()
	if cmd == nil {
		t.Fatal("expected a stats load command")
	}
	scr, _ := h.Update(cmd())
	h = scr.(*HomeScreen)

	if !strings.Contains(h.View(80, 24), "3 interview(s) on record") {
		t.Error("view missing stats line")
	}
}

func TestHome_StartInterview(t *testing.T) {
	h := testHome()

	_, cmd := h.Update(enter())
	if cmd == nil {
		t.Fatal("expected a command from the menu")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("msg = %T, want PushScreenMsg", cmd())
	}
	if _, ok := push.Screen.(*sessionscreen.InterviewScreen); !ok {
		t.Errorf("screen = %T, want *sessionscreen.InterviewScreen", push.Screen)
	}
}

func TestHome_OpenDashboard(t *testing.T) {
	h := testHome()

	scr, _ := h.Update(down())
	h = scr.(*HomeScreen)
	_, cmd := h.Update(enter())
	if cmd == nil {
		t.Fatal("expected a command from the menu")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("msg = %T, want PushScreenMsg", cmd())
	}
	if _, ok := push.Screen.(*dashboard.DashboardScreen); !ok {
		t.Errorf("screen = %T, want *dashboard.DashboardScreen", push.Screen)
	}
}
