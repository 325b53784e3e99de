package summary

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/vettalabs/vetta/internal/bank"
	"github.com/vettalabs/vetta/internal/interview"
	"github.com/vettalabs/vetta/internal/router"
	"github.com/vettalabs/vetta/internal/scoring"
)

func testRecord() *interview.CandidateRecord {
	return &interview.CandidateRecord{
		SessionID: "test-session",
		Name:      "Ada Lovelace",
		Email:     "ada@example.com",
		Questions: []bank.Question{
			{ID: 1, Text: "Q1", Tier: bank.TierEasy},
			{ID: 2, Text: "Q2", Tier: bank.TierMedium},
		},
		Answers: []interview.Answer{
			{QuestionIndex: 0, Text: "a1", TimeUsedSecs: 5},
			{QuestionIndex: 1, Text: "a2", TimeUsedSecs: 30},
		},
		Evaluations: []scoring.Evaluation{
			{Score: 8.0, Feedback: "Good"},
			{Score: 6.5, Feedback: "Solid"},
		},
		FinalScore:  14.5,
		Percentage:  72.5,
		SummaryText: "Good performance overall.",
	}
}

func TestSummaryScreen_ViewShowsHeadline(t *testing.T) {
	s := New(testRecord(), nil)
	view := s.View(80, 24)

	for _, want := range []string{"Ada Lovelace", "72.5%", "Good performance overall."} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_ViewShowsSaveError(t *testing.T) {
	s := New(testRecord(), errors.New("disk full"))
	view := s.View(80, 24)
	if !strings.Contains(view, "disk full") {
		t.Error("view missing save error")
	}
}

func TestSummaryScreen_TierAveragesPartitioned(t *testing.T) {
	s := New(testRecord(), nil)
	if s.report == nil {
		t.Fatal("expected a recomputed report")
	}
	view := s.View(80, 24)
	// No hard question in the set.
	if !strings.Contains(view, "n/a") {
		t.Error("expected n/a for the unasked hard tier")
	}
}

func TestSummaryScreen_EnterPops(t *testing.T) {
	s := New(testRecord(), nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on enter")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected a PopScreenMsg")
	}
}

func TestSummaryScreen_NilRecord(t *testing.T) {
	s := New(nil, nil)
	if s.View(80, 24) == "" {
		t.Error("expected a placeholder view for nil record")
	}
}
