package store

import (
	"context"
	"testing"
	"time"

	"github.com/vettalabs/vetta/internal/bank"
	"github.com/vettalabs/vetta/internal/interview"
	"github.com/vettalabs/vetta/internal/scoring"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testRecord(sessionID string, score float64) *interview.CandidateRecord {
	now := time.Now().UTC().Truncate(time.Second)
	return &interview.CandidateRecord{
		SessionID: sessionID,
		Name:      "Ada Lovelace",
		Email:     "ada@example.com",
		Phone:     "555-123-4567",
		Questions: []bank.Question{
			{ID: 1, Text: "q1", Tier: bank.TierEasy, ReferenceAnswer: "ref", Category: "t"},
		},
		Answers: []interview.Answer{
			{QuestionIndex: 0, Text: "a1", TimeUsedSecs: 12, SubmittedAt: now},
		},
		Evaluations: []scoring.Evaluation{
			{Score: score, Feedback: "fine", KeywordMatches: 1, TimeBonus: 0.5},
		},
		FinalScore:  score,
		Percentage:  score * 10,
		SummaryText: "summary",
		Status:      interview.StatusCompleted,
		StartedAt:   now.Add(-5 * time.Minute),
		EndedAt:     now,
		RecordedAt:  now,
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestUpsertAndGetRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.Candidates()
	ctx := context.Background()

	rec := testRecord("session-1", 8)
	if err := repo.Upsert(ctx, rec); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, err := repo.Get(ctx, "session-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected record, got nil")
	}
	if got.Name != rec.Name || got.FinalScore != rec.FinalScore {
		t.Errorf("got %q/%v, want %q/%v", got.Name, got.FinalScore, rec.Name, rec.FinalScore)
	}
	if len(got.Questions) != 1 || got.Questions[0].Tier != bank.TierEasy {
		t.Errorf("questions did not round-trip: %+v", got.Questions)
	}
	if len(got.Evaluations) != 1 || got.Evaluations[0].TimeBonus != 0.5 {
		t.Errorf("evaluations did not round-trip: %+v", got.Evaluations)
	}
}

func TestGetMissingReturnsNil(t *testing.T) {
	s := openTestStore(t)

	got, err := s.Candidates().Get(context.Background(), "nope")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for missing record, got %+v", got)
	}
}

func TestUpsertReplacesSameSession(t *testing.T) {
	s := openTestStore(t)
	repo := s.Candidates()
	ctx := context.Background()

	if err := repo.Upsert(ctx, testRecord("session-1", 5)); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if err := repo.Upsert(ctx, testRecord("session-1", 9)); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	all, err := repo.List(ctx, ListOpts{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 record after re-finalize, got %d", len(all))
	}
	if all[0].FinalScore != 9 {
		t.Errorf("expected replaced score 9, got %v", all[0].FinalScore)
	}
}

func TestListSortAndSearch(t *testing.T) {
	s := openTestStore(t)
	repo := s.Candidates()
	ctx := context.Background()

	recA := testRecord("session-a", 4)
	recA.Name = "Alan Turing"
	recA.Email = "alan@example.com"
	recB := testRecord("session-b", 9)
	recC := testRecord("session-c", 7)
	recC.Name = "Grace Hopper"
	recC.Email = "grace@example.com"

	for _, rec := range []*interview.CandidateRecord{recA, recB, recC} {
		if err := repo.Upsert(ctx, rec); err != nil {
			t.Fatalf("upsert %s: %v", rec.SessionID, err)
		}
	}

	// Default: score descending.
	got, err := repo.List(ctx, ListOpts{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 || got[0].SessionID != "session-b" || got[2].SessionID != "session-a" {
		t.Errorf("unexpected score ordering: %+v", sessionIDs(got))
	}

	// Name ascending.
	got, err = repo.List(ctx, ListOpts{SortBy: SortByName, Order: OrderAsc})
	if err != nil {
		t.Fatalf("list by name: %v", err)
	}
	if got[0].Name != "Ada Lovelace" || got[2].Name != "Grace Hopper" {
		t.Errorf("unexpected name ordering: %v", []string{got[0].Name, got[1].Name, got[2].Name})
	}

	// Search by name substring, case-insensitive.
	got, err = repo.List(ctx, ListOpts{Search: "grace"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 1 || got[0].SessionID != "session-c" {
		t.Errorf("unexpected search result: %+v", sessionIDs(got))
	}
}

func TestDeleteAndPurge(t *testing.T) {
	s := openTestStore(t)
	repo := s.Candidates()
	ctx := context.Background()

	if err := repo.Upsert(ctx, testRecord("session-1", 5)); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := repo.Upsert(ctx, testRecord("session-2", 6)); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	if err := repo.Delete(ctx, "session-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	// Deleting an absent record is not an error.
	if err := repo.Delete(ctx, "session-1"); err != nil {
		t.Fatalf("delete absent: %v", err)
	}

	all, err := repo.List(ctx, ListOpts{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 record after delete, got %d", len(all))
	}

	if err := repo.Purge(ctx); err != nil {
		t.Fatalf("purge: %v", err)
	}
	all, err = repo.List(ctx, ListOpts{})
	if err != nil {
		t.Fatalf("list after purge: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected empty store after purge, got %d", len(all))
	}
}

func sessionIDs(recs []interview.CandidateRecord) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.SessionID
	}
	return out
}
