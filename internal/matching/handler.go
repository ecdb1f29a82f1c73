package matching

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"youth-policy-backend/internal/policies"
	"youth-policy-backend/internal/profiles"
	"youth-policy-backend/internal/shared/server/respond"
)

// Default thresholds for the matching surface.
const (
	DefaultMinScore   = 40.0
	DefaultMaxResults = 10
)

// Handler serves the standalone matching endpoint.
type Handler struct {
	Gateway *policies.Gateway
	Engine  Engine
}

// NewHandler constructs a Handler.
func NewHandler(gw *policies.Gateway, engine Engine) *Handler {
	return &Handler{Gateway: gw, Engine: engine}
}

// RegisterRoutes attaches matching routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/match", h.match)
}

type matchRequest struct {
	profiles.RawProfile
	MinScore   *float64 `json:"min_score"`
	MaxResults *int     `json:"max_results"`
}

type matchResultItem struct {
	PolicyID       string   `json:"policy_id"`
	Title          string   `json:"title"`
	Category       string   `json:"category"`
	Score          float64  `json:"score"`
	MatchReasons   []string `json:"match_reasons"`
	BenefitSummary string   `json:"benefit_summary"`
	Deadline       *string  `json:"deadline,omitempty"`
}

type matchResponse struct {
	Success              bool                 `json:"success"`
	Message              string               `json:"message"`
	UserProfileSummary   string               `json:"user_profile_summary"`
	TotalMatches         int                  `json:"total_matches"`
	AvgScore             float64              `json:"avg_score"`
	CategoryDistribution CategoryDistribution `json:"category_distribution"`
	Recommendations      []matchResultItem    `json:"recommendations"`
}

func (h *Handler) match(c *gin.Context) {
	var req matchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_body", "invalid request body", nil)
		return
	}

	profile, err := profiles.Validate(req.RawProfile)
	if err != nil {
		var vErr *profiles.ValidationError
		if errors.As(err, &vErr) {
			respond.Error(c, http.StatusUnprocessableEntity, "validation_error", vErr.Error(), vErr.Fields)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal", "프로필 검증 중 오류가 발생했습니다", nil)
		return
	}

	minScore := DefaultMinScore
	if req.MinScore != nil {
		minScore = *req.MinScore
	}
	maxResults := DefaultMaxResults
	if req.MaxResults != nil && *req.MaxResults > 0 {
		maxResults = *req.MaxResults
	}

	candidates, _, err := h.Gateway.FetchOrFallback(c.Request.Context(), policies.Filter{})
	if err != nil {
		respond.Error(c, http.StatusServiceUnavailable, "store_unavailable", "정책 데이터를 조회할 수 없습니다", nil)
		return
	}

	results := h.Engine.Match(profile, candidates, minScore, maxResults)

	items := make([]matchResultItem, 0, len(results))
	for _, r := range results {
		items = append(items, matchResultItem{
			PolicyID:       r.PolicyID,
			Title:          r.Title,
			Category:       r.Category,
			Score:          r.Score,
			MatchReasons:   r.MatchReasons,
			BenefitSummary: r.BenefitSummary,
			Deadline:       policies.FormatDeadline(r.Deadline),
		})
	}

	respond.OK(c, matchResponse{
		Success:              true,
		Message:              fmt.Sprintf("%d개 정책이 매칭되었습니다.", len(results)),
		UserProfileSummary:   profile.Summary(),
		TotalMatches:         len(results),
		AvgScore:             AvgScore(results),
		CategoryDistribution: Distribution(results),
		Recommendations:      items,
	})
}
