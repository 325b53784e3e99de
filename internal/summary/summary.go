// Package summary aggregates per-answer evaluations into a final report.
package summary

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/vettalabs/vetta/internal/bank"
	"github.com/vettalabs/vetta/internal/scoring"
)

// ErrNoEvaluations is returned when there is nothing to summarize.
var ErrNoEvaluations = errors.New("summary: no evaluations")

// TierAverage is the average score for one difficulty tier.
// Defined is false when the interview contained no questions of that
// tier; the average is meaningless in that case and must not be used.
type TierAverage struct {
	Tier    bank.Tier `json:"tier"`
	Average float64   `json:"average"`
	Defined bool      `json:"defined"`
}

// Report is the aggregate result of a completed interview.
type Report struct {
	// Score is the sum of all evaluation scores, one decimal place.
	Score float64 `json:"score"`

	// MaxScore is 10 points per question.
	MaxScore float64 `json:"max_score"`

	// Percentage is Score/MaxScore*100, one decimal place.
	Percentage float64 `json:"percentage"`

	// TierAverages holds one entry per tier in the fixed easy,
	// medium, hard order.
	TierAverages []TierAverage `json:"tier_averages"`

	// Narrative is the human-readable performance summary.
	Narrative string `json:"narrative"`
}

// TierAverageFor returns the average for a tier, or a zero undefined
// average when the tier is absent.
func (r *Report) TierAverageFor(t bank.Tier) TierAverage {
	for _, ta := range r.TierAverages {
		if ta.Tier == t {
			return ta
		}
	}
	return TierAverage{Tier: t}
}

// Summarize aggregates evaluations into a Report. Questions and
// evaluations are parallel slices in the question bank's fixed tier
// emission order (easy block, then medium, then hard); per-tier averages
// are computed over those contiguous blocks.
//
// A tier with no questions yields an undefined average rather than a
// division by zero.
func Summarize(questions []bank.Question, evaluations []scoring.Evaluation) (*Report, error) {
	if len(evaluations) == 0 {
		return nil, ErrNoEvaluations
	}

	total := 0.0
	for _, ev := range evaluations {
		total += ev.Score
	}
	total = round1(total)

	maxScore := float64(len(questions)) * 10
	percentage := 0.0
	if maxScore > 0 {
		percentage = round1(total / maxScore * 100)
	}

	averages := tierAverages(questions, evaluations)

	return &Report{
		Score:        total,
		MaxScore:     maxScore,
		Percentage:   percentage,
		TierAverages: averages,
		Narrative:    narrative(total, maxScore, percentage, averages),
	}, nil
}

// tierAverages partitions evaluations by the tier of the question at the
// same index and averages each partition.
func tierAverages(questions []bank.Question, evaluations []scoring.Evaluation) []TierAverage {
	sums := make(map[bank.Tier]float64)
	counts := make(map[bank.Tier]int)
	for i, q := range questions {
		if i >= len(evaluations) {
			break
		}
		sums[q.Tier] += evaluations[i].Score
		counts[q.Tier]++
	}

	out := make([]TierAverage, 0, 3)
	for _, tier := range bank.AllTiers() {
		ta := TierAverage{Tier: tier}
		if counts[tier] > 0 {
			ta.Average = round1(sums[tier] / float64(counts[tier]))
			ta.Defined = true
		}
		out = append(out, ta)
	}
	return out
}

// narrative builds the qualitative summary sentence plus the fixed
// per-tier breakdown clause.
func narrative(score, maxScore, percentage float64, averages []TierAverage) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Candidate completed the full-stack developer interview with an overall score of %.1f/%.0f (%.1f%%). ",
		score, maxScore, percentage)

	switch {
	case percentage >= 80:
		b.WriteString("Excellent performance across all difficulty levels. Strong candidate for the role.")
	case percentage >= 65:
		b.WriteString("Good performance with solid understanding of core concepts. Suitable for the role with some areas for growth.")
	case percentage >= 50:
		b.WriteString("Average performance. Shows basic understanding but needs improvement in several areas.")
	default:
		b.WriteString("Below average performance. Significant gaps in fundamental concepts that need addressing.")
	}

	parts := make([]string, 0, len(averages))
	for _, ta := range averages {
		label := strings.ToUpper(string(ta.Tier[0])) + string(ta.Tier[1:])
		if ta.Defined {
			parts = append(parts, fmt.Sprintf("%s (%.1f/10)", label, ta.Average))
		} else {
			parts = append(parts, fmt.Sprintf("%s (n/a)", label))
		}
	}
	fmt.Fprintf(&b, " Performance breakdown: %s.", strings.Join(parts, ", "))

	return b.String()
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
