package orchestrator

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"youth-policy-backend/internal/matching"
	"youth-policy-backend/internal/policies"
	"youth-policy-backend/internal/profiles"
	"youth-policy-backend/internal/sessions"
	"youth-policy-backend/internal/shared/server/respond"
)

// Handler serves the end-to-end recommendation endpoint.
type Handler struct {
	Orchestrator *Orchestrator
}

func NewHandler(o *Orchestrator) *Handler {
	return &Handler{Orchestrator: o}
}

// RegisterRoutes attaches the pipeline route to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/orchestrator", h.recommend)
}

type recommendRequest struct {
	profiles.RawProfile
	MinScore   *float64 `json:"min_score"`
	MaxResults *int     `json:"max_results"`
}

type recommendResponse struct {
	SessionID            string                  `json:"session_id"`
	ProfileID            string                  `json:"profile_id"`
	Success              bool                    `json:"success"`
	Message              string                  `json:"message"`
	ProcessingTime       float64                 `json:"processing_time"`
	StepsSummary         []sessions.StageOutcome `json:"steps_summary"`
	RecommendationResult RecommendationResult    `json:"recommendation_result"`
	GeneratedAt          time.Time               `json:"generated_at"`
}

func (h *Handler) recommend(c *gin.Context) {
	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_body", "invalid request body", nil)
		return
	}

	minScore := matching.DefaultMinScore
	if req.MinScore != nil {
		minScore = *req.MinScore
	}
	maxResults := matching.DefaultMaxResults
	if req.MaxResults != nil && *req.MaxResults > 0 {
		maxResults = *req.MaxResults
	}

	session, result, err := h.Orchestrator.Run(c.Request.Context(), req.RawProfile, minScore, maxResults)
	if err != nil {
		var vErr *profiles.ValidationError
		switch {
		case errors.As(err, &vErr):
			respond.Error(c, http.StatusUnprocessableEntity, "validation_error", vErr.Error(), vErr.Fields)
		case errors.Is(err, policies.ErrNoCatalog):
			respond.Error(c, http.StatusServiceUnavailable, "no_catalog", "추천에 사용할 정책 데이터가 없습니다", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "pipeline_failed", "추천 처리 중 오류가 발생했습니다", nil)
		}
		return
	}

	c.Set("sessionId", session.ID)
	c.Set("profileId", session.ProfileID)

	respond.OK(c, recommendResponse{
		SessionID:            session.ID,
		ProfileID:            session.ProfileID,
		Success:              session.Success,
		Message:              fmt.Sprintf("%d개 정책을 추천했습니다.", result.TotalMatches),
		ProcessingTime:       session.ProcessingTime,
		StepsSummary:         session.StageOutcomes,
		RecommendationResult: result,
		GeneratedAt:          session.GeneratedAt,
	})
}
