package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vettalabs/vetta/internal/bank"
	"github.com/vettalabs/vetta/internal/scoring"
)

// sixQuestions builds a standard 2-per-tier question set in emission order.
func sixQuestions() []bank.Question {
	return []bank.Question{
		{ID: 1, Tier: bank.TierEasy},
		{ID: 2, Tier: bank.TierEasy},
		{ID: 3, Tier: bank.TierMedium},
		{ID: 4, Tier: bank.TierMedium},
		{ID: 5, Tier: bank.TierHard},
		{ID: 6, Tier: bank.TierHard},
	}
}

func evals(scores ...float64) []scoring.Evaluation {
	out := make([]scoring.Evaluation, len(scores))
	for i, s := range scores {
		out[i] = scoring.Evaluation{Score: s}
	}
	return out
}

func TestSummarizeFullInterview(t *testing.T) {
	report, err := Summarize(sixQuestions(), evals(8, 6, 7.5, 5, 4, 9))
	require.NoError(t, err)

	assert.Equal(t, 39.5, report.Score)
	assert.Equal(t, 60.0, report.MaxScore)
	assert.Equal(t, 65.8, report.Percentage)

	require.Len(t, report.TierAverages, 3)
	for _, ta := range report.TierAverages {
		assert.True(t, ta.Defined, "tier %s should be defined", ta.Tier)
	}

	assert.Equal(t, 7.0, report.TierAverageFor(bank.TierEasy).Average)
	assert.Equal(t, 6.3, report.TierAverageFor(bank.TierMedium).Average)
	assert.Equal(t, 6.5, report.TierAverageFor(bank.TierHard).Average)
}

func TestSummarizeScoreIsSumOfEvaluations(t *testing.T) {
	scores := []float64{2.5, 7.1, 9.9, 0, 10, 3.3}
	report, err := Summarize(sixQuestions(), evals(scores...))
	require.NoError(t, err)

	sum := 0.0
	for _, s := range scores {
		sum += s
	}
	assert.InDelta(t, sum, report.Score, 0.05)
	assert.InDelta(t, report.Score/report.MaxScore*100, report.Percentage, 0.05)
}

func TestSummarizeNarrativeBands(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		want   string
	}{
		{"excellent", []float64{9, 9, 9, 9, 9, 9}, "Excellent performance"},
		{"good", []float64{7, 7, 7, 7, 7, 7}, "Good performance"},
		{"average", []float64{5.5, 5.5, 5.5, 5.5, 5.5, 5.5}, "Average performance"},
		{"below average", []float64{2, 2, 2, 2, 2, 2}, "Below average"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := Summarize(sixQuestions(), evals(tt.scores...))
			require.NoError(t, err)
			assert.Contains(t, report.Narrative, tt.want)
			assert.Contains(t, report.Narrative, "Performance breakdown:")
		})
	}
}

func TestSummarizeEmptyTierPartition(t *testing.T) {
	questions := []bank.Question{
		{ID: 1, Tier: bank.TierEasy},
		{ID: 2, Tier: bank.TierEasy},
	}

	report, err := Summarize(questions, evals(6, 8))
	require.NoError(t, err)

	easy := report.TierAverageFor(bank.TierEasy)
	assert.True(t, easy.Defined)
	assert.Equal(t, 7.0, easy.Average)

	// Missing tiers are reported undefined instead of dividing by zero.
	assert.False(t, report.TierAverageFor(bank.TierMedium).Defined)
	assert.False(t, report.TierAverageFor(bank.TierHard).Defined)
	assert.Contains(t, report.Narrative, "Medium (n/a)")
	assert.Contains(t, report.Narrative, "Hard (n/a)")
}

func TestSummarizeNoEvaluations(t *testing.T) {
	_, err := Summarize(sixQuestions(), nil)
	assert.ErrorIs(t, err, ErrNoEvaluations)
}
