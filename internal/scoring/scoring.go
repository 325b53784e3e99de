// Package scoring turns a free-text answer into a numeric evaluation.
//
// The score is a heuristic proxy built from answer length, keyword overlap
// with the reference answer, and answering speed. It is deliberately not a
// correctness checker: a fluent wrong answer can outscore a terse right one.
// This is a documented limitation of the approach, not a bug.
package scoring

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/vettalabs/vetta/internal/bank"
)

// Score bounds and bonus caps.
const (
	MinScore        = 0.0
	MaxScore        = 10.0
	KeywordBonusCap = 2.0
)

// Evaluation is the scored result of judging one answer.
// Produced exactly once per answer and never retroactively changed.
type Evaluation struct {
	// Score is the final score in [0,10], rounded to one decimal place.
	Score float64 `json:"score"`

	// Feedback is a short qualitative sentence for the candidate.
	Feedback string `json:"feedback"`

	// KeywordMatches is the number of reference-answer keywords found
	// in the answer.
	KeywordMatches int `json:"keyword_matches"`

	// TimeBonus is the bonus awarded for answering quickly (0, 0.5 or 1).
	TimeBonus float64 `json:"time_bonus"`
}

// Evaluate scores a free-text answer. Deterministic given its inputs:
// no randomness, no I/O.
//
// timeUsedSecs is how long the candidate spent, measured against the
// tier's time budget for the time bonus.
func Evaluate(q bank.Question, answer string, timeUsedSecs int) Evaluation {
	base := lengthScore(strings.TrimSpace(answer))

	matches := countKeywordMatches(q.ReferenceAnswer, answer)
	keywordBonus := math.Min(float64(matches)*0.5, KeywordBonusCap)

	timeBonus := timeBonusFor(q.Tier, timeUsedSecs)

	score := clamp(base+keywordBonus+timeBonus, MinScore, MaxScore)
	score = round1(score)

	return Evaluation{
		Score:          score,
		Feedback:       feedbackFor(score, q.Tier),
		KeywordMatches: matches,
		TimeBonus:      timeBonus,
	}
}

// lengthScore buckets the trimmed answer length into a base score.
// Length is counted in characters, not bytes, so multibyte text lands
// in the same bucket as its visible length suggests. An empty answer
// always lands in the lowest bucket.
func lengthScore(trimmed string) float64 {
	n := utf8.RuneCountInString(trimmed)
	switch {
	case n < 20:
		return 2
	case n < 100:
		return 5
	case n < 200:
		return 7
	default:
		return 8
	}
}

// timeBonusFor rewards answering well inside the tier's budget.
func timeBonusFor(tier bank.Tier, timeUsedSecs int) float64 {
	ratio := float64(timeUsedSecs) / float64(bank.TimeLimit(tier))
	switch {
	case ratio < 0.5:
		return 1
	case ratio < 0.8:
		return 0.5
	default:
		return 0
	}
}

// feedbackFor selects the feedback band for a score, with the tier name
// interpolated into the message.
func feedbackFor(score float64, tier bank.Tier) string {
	switch {
	case score >= 8:
		return "Excellent answer! You demonstrated strong understanding of this " + string(tier) + " level concept."
	case score >= 6:
		return "Good answer! You covered the main points for this " + string(tier) + " level question."
	case score >= 4:
		return "Decent attempt. Consider elaborating more on the key concepts for " + string(tier) + " level questions."
	default:
		return "This answer needs improvement. Try to provide more detailed explanations for " + string(tier) + " level concepts."
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
