package matching

import "time"

// MatchResult is a scored, reasoned association between one profile and
// one policy. Discarded after the session; never persisted on its own.
type MatchResult struct {
	PolicyID       string     `json:"policy_id"`
	Title          string     `json:"title"`
	Category       string     `json:"category"`
	Score          float64    `json:"score"`
	MatchReasons   []string   `json:"match_reasons"`
	BenefitSummary string     `json:"benefit_summary"`
	Deadline       *time.Time `json:"deadline,omitempty"`
	ApplicationURL string     `json:"application_url,omitempty"`
}

// Weights assigns the contribution of each criterion. The full set must
// sum to 100 so scores stay within [0,100].
type Weights struct {
	Age        float64
	Employment float64
	Region     float64
	Interest   float64
	Income     float64
}

// DefaultWeights is the contracted weight table.
var DefaultWeights = Weights{
	Age:        30,
	Employment: 25,
	Region:     20,
	Interest:   15,
	Income:     10,
}

// Total returns the sum of all weights.
func (w Weights) Total() float64 {
	return w.Age + w.Employment + w.Region + w.Interest + w.Income
}

// Human-readable criterion labels, emitted into match_reasons in
// weight-descending order. Downstream explanation prompts rely on the
// most salient reason appearing first.
const (
	ReasonAge        = "연령 조건 충족"
	ReasonEmployment = "고용형태 조건 충족"
	ReasonRegion     = "지역 조건 충족"
	ReasonInterest   = "관심분야 일치"
	ReasonIncome     = "소득 조건 충족"
)
