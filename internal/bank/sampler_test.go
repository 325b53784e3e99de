package bank

import (
	"errors"
	"math/rand"
	"testing"
)

func TestSampleTierOrder(t *testing.T) {
	s := NewSampler(rand.New(rand.NewSource(42)))

	qs, err := s.Sample(DefaultTierCounts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 6 {
		t.Fatalf("got %d questions, want 6", len(qs))
	}

	wantTiers := []Tier{TierEasy, TierEasy, TierMedium, TierMedium, TierHard, TierHard}
	for i, q := range qs {
		if q.Tier != wantTiers[i] {
			t.Errorf("question %d has tier %s, want %s", i, q.Tier, wantTiers[i])
		}
	}
}

func TestSampleWithoutReplacement(t *testing.T) {
	s := NewSampler(rand.New(rand.NewSource(7)))

	qs, err := s.Sample(TierCounts{Easy: Size(TierEasy), Medium: 0, Hard: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seen := make(map[int]bool)
	for _, q := range qs {
		if seen[q.ID] {
			t.Errorf("question %d drawn twice", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestSampleDeterministicWithFixedSeed(t *testing.T) {
	a, err := NewSampler(rand.New(rand.NewSource(99))).Sample(DefaultTierCounts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := NewSampler(rand.New(rand.NewSource(99))).Sample(DefaultTierCounts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := range a {
		if a[i].ID != b[i].ID {
			t.Errorf("position %d differs: %d vs %d", i, a[i].ID, b[i].ID)
		}
	}
}

func TestSampleInsufficientQuestions(t *testing.T) {
	s := NewSampler(rand.New(rand.NewSource(1)))

	_, err := s.Sample(TierCounts{Easy: Size(TierEasy) + 1, Medium: 2, Hard: 2})
	if !errors.Is(err, ErrInsufficientQuestions) {
		t.Fatalf("got %v, want ErrInsufficientQuestions", err)
	}
}

func TestTimeLimit(t *testing.T) {
	tests := []struct {
		tier Tier
		want int
	}{
		{TierEasy, 20},
		{TierMedium, 60},
		{TierHard, 120},
		{Tier("unknown"), 20},
	}

	for _, tt := range tests {
		if got := TimeLimit(tt.tier); got != tt.want {
			t.Errorf("TimeLimit(%s) = %d, want %d", tt.tier, got, tt.want)
		}
	}
}
