package bank

// Tier classifies a question's difficulty. The tier drives both the
// per-question time budget and how many questions are sampled.
type Tier string

const (
	TierEasy   Tier = "easy"
	TierMedium Tier = "medium"
	TierHard   Tier = "hard"
)

// AllTiers returns the tiers in their fixed emission order.
// Sampling and summary slicing both rely on this order.
func AllTiers() []Tier {
	return []Tier{TierEasy, TierMedium, TierHard}
}

// Time budgets per tier, in seconds.
const (
	EasyTimeLimit   = 20
	MediumTimeLimit = 60
	HardTimeLimit   = 120
)

// TimeLimit returns the answer time budget in seconds for a tier.
// Unknown tiers fall back to the easy budget.
func TimeLimit(t Tier) int {
	switch t {
	case TierMedium:
		return MediumTimeLimit
	case TierHard:
		return HardTimeLimit
	default:
		return EasyTimeLimit
	}
}

// Question is a single interview question from the static catalogue.
type Question struct {
	// ID uniquely identifies the question within the catalogue.
	ID int

	// Text is the question prompt shown to the candidate.
	Text string

	// Tier is the difficulty classification.
	Tier Tier

	// ReferenceAnswer is a model answer used for keyword matching
	// during scoring. Never shown to the candidate mid-interview.
	ReferenceAnswer string

	// Category is a short topic label, e.g. "React Basics".
	Category string
}

// TierCounts specifies how many questions to sample from each tier.
type TierCounts struct {
	Easy   int
	Medium int
	Hard   int
}

// DefaultTierCounts is the sampling policy used for a standard interview:
// two questions per tier, six total.
var DefaultTierCounts = TierCounts{Easy: 2, Medium: 2, Hard: 2}

// Total returns the total number of questions requested.
func (tc TierCounts) Total() int {
	return tc.Easy + tc.Medium + tc.Hard
}

func (tc TierCounts) count(t Tier) int {
	switch t {
	case TierEasy:
		return tc.Easy
	case TierMedium:
		return tc.Medium
	case TierHard:
		return tc.Hard
	}
	return 0
}
