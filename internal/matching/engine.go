package matching

import (
	"sort"
	"strings"
	"time"

	"youth-policy-backend/internal/policies"
	"youth-policy-backend/internal/profiles"
)

// Engine scores and ranks candidate policies against a validated profile.
// It is a pure function of its inputs: no I/O, no clock, no randomness.
type Engine struct {
	Weights Weights
}

// NewEngine constructs an Engine with the default weight table.
func NewEngine() Engine {
	return Engine{Weights: DefaultWeights}
}

// Match scores every candidate, drops those below minScore, sorts by
// score descending (ties: nearer deadline first, policies without a
// deadline last, then policy id ascending) and truncates to maxResults.
// An empty candidate or result set returns an empty slice, never an error.
func (e Engine) Match(p profiles.Profile, candidates []policies.Policy, minScore float64, maxResults int) []MatchResult {
	out := make([]MatchResult, 0, len(candidates))
	for _, policy := range candidates {
		result := e.score(p, policy)
		if result.Score < minScore {
			continue
		}
		out = append(out, result)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if !sameDeadline(a.Deadline, b.Deadline) {
			if a.Deadline == nil {
				return false
			}
			if b.Deadline == nil {
				return true
			}
			return a.Deadline.Before(*b.Deadline)
		}
		return a.PolicyID < b.PolicyID
	})

	if maxResults > 0 && len(out) > maxResults {
		out = out[:maxResults]
	}
	return out
}

func (e Engine) score(p profiles.Profile, policy policies.Policy) MatchResult {
	score := 0.0
	reasons := make([]string, 0, 5)

	// Criteria are evaluated and reported in weight-descending order.
	if p.Age >= policy.AgeMin && p.Age <= policy.AgeMax {
		score += e.Weights.Age
		reasons = append(reasons, ReasonAge)
	}
	if policy.OpenToEmployment(string(p.Employment)) {
		score += e.Weights.Employment
		reasons = append(reasons, ReasonEmployment)
	}
	if policy.OpenToRegion(p.Region) {
		score += e.Weights.Region
		reasons = append(reasons, ReasonRegion)
	}
	if interestMatches(p.Interest, policy) {
		score += e.Weights.Interest
		reasons = append(reasons, ReasonInterest)
	}
	if incomeEligible(p.Income, policy) {
		score += e.Weights.Income
		reasons = append(reasons, ReasonIncome)
	}

	return MatchResult{
		PolicyID:       policy.ID,
		Title:          policy.Title,
		Category:       policy.Category,
		Score:          score,
		MatchReasons:   reasons,
		BenefitSummary: policy.Benefit,
		Deadline:       policy.Deadline,
		ApplicationURL: policy.ApplicationURL,
	}
}

func interestMatches(interest string, policy policies.Policy) bool {
	if interest == "" {
		return false
	}
	if strings.EqualFold(interest, policy.Category) {
		return true
	}
	return containsFold(policy.Description, interest) || containsFold(policy.Title, interest)
}

func incomeEligible(income int, policy policies.Policy) bool {
	if policy.IncomeMax == nil {
		return true
	}
	return income <= *policy.IncomeMax
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func sameDeadline(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
