package sessions

import (
	"time"

	"youth-policy-backend/internal/explain"
	"youth-policy-backend/internal/matching"
)

// Stage status values recorded per pipeline stage.
const (
	StatusSuccess  = "success"
	StatusDegraded = "degraded"
	StatusFailed   = "failed"
)

// StageOutcome records how a single pipeline stage finished.
type StageOutcome struct {
	Stage    string  `json:"stage"`
	Status   string  `json:"status"`
	Duration float64 `json:"duration"`
	Detail   string  `json:"detail,omitempty"`
}

// Session is one completed recommendation run for a profile.
type Session struct {
	ID                   string                        `json:"session_id"`
	ProfileID            string                        `json:"profile_id"`
	ProfileSummary       string                        `json:"profile_summary"`
	Success              bool                          `json:"success"`
	ProcessingTime       float64                       `json:"processing_time"`
	AvgScore             float64                       `json:"avg_score"`
	StageOutcomes        []StageOutcome                `json:"stage_outcomes"`
	Recommendations      []explain.Recommendation      `json:"recommendations"`
	CategoryDistribution matching.CategoryDistribution `json:"category_distribution"`
	GeneratedAt          time.Time                     `json:"generated_at"`
}
