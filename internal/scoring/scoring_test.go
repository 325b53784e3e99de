package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vettalabs/vetta/internal/bank"
)

func mediumQuestion(reference string) bank.Question {
	return bank.Question{
		ID:              101,
		Text:            "Explain the thing.",
		Tier:            bank.TierMedium,
		ReferenceAnswer: reference,
		Category:        "Testing",
	}
}

func TestEvaluateLengthBuckets(t *testing.T) {
	// Reference with no matchable keywords keeps the bonus at zero,
	// and timeUsed at the full budget keeps the time bonus at zero.
	q := mediumQuestion("a an it")

	tests := []struct {
		name   string
		answer string
		want   float64
	}{
		{"empty", "", 2},
		{"short", "yes", 2},
		{"under twenty after trim", "   tiny answer   ", 2},
		{"medium", strings.Repeat("x", 50), 5},
		{"long", strings.Repeat("x", 150), 7},
		{"very long", strings.Repeat("x", 250), 8},
		// Buckets count characters, not bytes: 150 two-byte runes is
		// still a 150-character answer.
		{"long multibyte", strings.Repeat("é", 150), 7},
		{"short multibyte", strings.Repeat("日", 10), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := Evaluate(q, tt.answer, bank.MediumTimeLimit)
			assert.Equal(t, tt.want, ev.Score)
			assert.Zero(t, ev.KeywordMatches)
			assert.Zero(t, ev.TimeBonus)
		})
	}
}

func TestEvaluateEmptyAnswerLowestBand(t *testing.T) {
	q := mediumQuestion("closures scope variables functions")

	ev := Evaluate(q, "", 0)

	// Fast answering still earns the time bonus, but the length
	// contribution is pinned to the lowest bucket.
	assert.Equal(t, 3.0, ev.Score)
	assert.Contains(t, ev.Feedback, "needs improvement")
	assert.Contains(t, ev.Feedback, "medium")
}

func TestEvaluateKeywordMonotonicity(t *testing.T) {
	q := mediumQuestion("alpha bravo charlie delta echoes")
	keywords := []string{"alpha", "bravo", "charlie", "delta", "echoes"}

	// Pad every answer to the same length bucket so only the keyword
	// count varies.
	prev := -1.0
	for n := 0; n <= len(keywords); n++ {
		answer := strings.Join(keywords[:n], " ")
		answer += strings.Repeat("z", 150-len(answer))

		ev := Evaluate(q, answer, bank.MediumTimeLimit)
		require.Equal(t, n, ev.KeywordMatches)
		assert.GreaterOrEqual(t, ev.Score, prev, "score decreased at %d matches", n)
		prev = ev.Score
	}

	// Bonus is capped at 2: five matches score the same as four.
	four := strings.Join(keywords[:4], " ")
	four += strings.Repeat("z", 150-len(four))
	five := strings.Join(keywords, " ")
	five += strings.Repeat("z", 150-len(five))
	assert.Equal(t, Evaluate(q, four, bank.MediumTimeLimit).Score,
		Evaluate(q, five, bank.MediumTimeLimit).Score)
}

func TestEvaluateTimeBonusBands(t *testing.T) {
	q := mediumQuestion("a an it")

	tests := []struct {
		name     string
		timeUsed int
		want     float64
	}{
		{"fast", 10, 1},     // 10/60 < 0.5
		{"under half", 29, 1},
		{"good", 40, 0.5},   // 0.5 <= 40/60 < 0.8
		{"slow", 50, 0},     // 50/60 >= 0.8
		{"full budget", 60, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := Evaluate(q, strings.Repeat("x", 50), tt.timeUsed)
			assert.Equal(t, tt.want, ev.TimeBonus)
		})
	}
}

func TestEvaluateFullMarks(t *testing.T) {
	// 250-char answer with 3 keyword matches at 10% of a 60s budget:
	// clamp(8 + 1.5 + 1, 0, 10) = 10.0.
	q := mediumQuestion("alpha bravo charlie")

	answer := "alpha bravo charlie "
	answer += strings.Repeat("y", 250-len(answer))

	ev := Evaluate(q, answer, 6)

	assert.Equal(t, 10.0, ev.Score)
	assert.Equal(t, 3, ev.KeywordMatches)
	assert.Equal(t, 1.0, ev.TimeBonus)
	assert.Contains(t, ev.Feedback, "Excellent")
}

func TestExtractKeywordsFiltersStopWords(t *testing.T) {
	keywords := extractKeywords("the closures and scope for inner functions now")

	assert.ElementsMatch(t, []string{"closures", "scope", "inner", "functions"}, keywords)
}

func TestCountKeywordMatchesCaseInsensitive(t *testing.T) {
	got := countKeywordMatches("Virtual Trees diffing", "the virtual trees use a DIFFING step")

	assert.Equal(t, 3, got)
}
