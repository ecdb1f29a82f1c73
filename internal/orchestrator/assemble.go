package orchestrator

import (
	"strconv"

	"youth-policy-backend/internal/explain"
	"youth-policy-backend/internal/matching"
	"youth-policy-backend/internal/profiles"
)

// GradedRecommendation augments an explained recommendation with a letter
// grade derived from its match score.
type GradedRecommendation struct {
	explain.Recommendation
	Grade string `json:"grade"`
}

// RecommendationResult is the assembled payload of one pipeline run.
type RecommendationResult struct {
	UserProfileSummary   string                        `json:"user_profile_summary"`
	TotalMatches         int                           `json:"total_matches"`
	AvgScore             float64                       `json:"avg_score"`
	CategoryDistribution matching.CategoryDistribution `json:"category_distribution"`
	Recommendations      []GradedRecommendation        `json:"recommendations"`
	ComparisonTable      ComparisonTable               `json:"comparison_table"`
}

// ComparisonTable presents the recommendations side by side, one row per
// policy in rank order.
type ComparisonTable struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

func comparisonTable(recs []GradedRecommendation) ComparisonTable {
	rows := make([][]string, len(recs))
	for i, rec := range recs {
		benefit := rec.BenefitSummary
		if benefit == "" {
			benefit = "정보 없음"
		}
		deadline := "상시 모집"
		if rec.Deadline != nil {
			deadline = rec.Deadline.Format("2006-01-02")
		}
		rows[i] = []string{
			rec.Title,
			strconv.FormatFloat(rec.Score, 'f', 1, 64) + "점 (" + rec.Grade + "등급)",
			benefit,
			"정보 없음",
			deadline,
		}
	}
	return ComparisonTable{
		Headers: []string{"정책명", "점수", "혜택", "주관기관", "마감일"},
		Rows:    rows,
	}
}

// Grade maps a match score to a letter grade.
func Grade(score float64) string {
	switch {
	case score >= 90:
		return "S"
	case score >= 80:
		return "A"
	case score >= 70:
		return "B"
	case score >= 60:
		return "C"
	default:
		return "D"
	}
}

func assemble(profile profiles.Profile, recs []explain.Recommendation) RecommendationResult {
	results := make([]matching.MatchResult, len(recs))
	graded := make([]GradedRecommendation, len(recs))
	for i, rec := range recs {
		results[i] = rec.MatchResult
		graded[i] = GradedRecommendation{
			Recommendation: rec,
			Grade:          Grade(rec.Score),
		}
	}
	return RecommendationResult{
		UserProfileSummary:   profile.Summary(),
		TotalMatches:         len(recs),
		AvgScore:             matching.AvgScore(results),
		CategoryDistribution: matching.Distribution(results),
		Recommendations:      graded,
		ComparisonTable:      comparisonTable(graded),
	}
}
