package bank

import (
	"fmt"
	"math/rand"
	"time"
)

// ErrInsufficientQuestions is returned when a tier has fewer questions
// available than the sampling policy requests.
var ErrInsufficientQuestions = fmt.Errorf("question bank: insufficient questions")

// Sampler draws random question sets from the catalogue.
// The random source is injected so tests can use a fixed seed.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler creates a Sampler backed by the given random source.
func NewSampler(rng *rand.Rand) *Sampler {
	return &Sampler{rng: rng}
}

// NewDefaultSampler creates a Sampler seeded from the wall clock.
func NewDefaultSampler() *Sampler {
	return NewSampler(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// Sample draws counts.Easy + counts.Medium + counts.Hard questions,
// uniformly at random without replacement within each tier, and returns
// them concatenated in the fixed tier order: easy, then medium, then hard.
// Downstream tier slicing by count depends on that order.
func (s *Sampler) Sample(counts TierCounts) ([]Question, error) {
	out := make([]Question, 0, counts.Total())
	for _, tier := range AllTiers() {
		n := counts.count(tier)
		pool := catalogue[tier]
		if n > len(pool) {
			return nil, fmt.Errorf("%w: tier %s has %d questions, need %d",
				ErrInsufficientQuestions, tier, len(pool), n)
		}
		out = append(out, s.drawn(pool, n)...)
	}
	return out, nil
}

// drawn picks n distinct questions from pool via a partial Fisher-Yates
// shuffle over a copy, leaving the catalogue untouched.
func (s *Sampler) drawn(pool []Question, n int) []Question {
	shuffled := make([]Question, len(pool))
	copy(shuffled, pool)
	for i := 0; i < n; i++ {
		j := i + s.rng.Intn(len(shuffled)-i)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled[:n]
}
