package explain

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"youth-policy-backend/internal/matching"
	"youth-policy-backend/internal/profiles"
	"youth-policy-backend/internal/shared/server/respond"
)

// Handler serves standalone explanation requests for pre-scored policies.
type Handler struct {
	Generator *Generator
}

func NewHandler(g *Generator) *Handler {
	return &Handler{Generator: g}
}

// RegisterRoutes attaches explanation routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/explain", h.explainPolicies)
}

type explainPolicy struct {
	PolicyID       string   `json:"policy_id"`
	Title          string   `json:"title"`
	Category       string   `json:"category"`
	Score          float64  `json:"score"`
	MatchReasons   []string `json:"match_reasons"`
	BenefitSummary string   `json:"benefit_summary"`
	Deadline       *string  `json:"deadline"`
	ApplicationURL string   `json:"application_url"`
}

type explainRequest struct {
	profiles.RawProfile
	Policies []explainPolicy `json:"policies"`
}

type explainedItem struct {
	Recommendation
	Deadline *string `json:"deadline,omitempty"`
}

type explainResponse struct {
	Success            bool            `json:"success"`
	UserProfileSummary string          `json:"user_profile_summary"`
	TotalExplained     int             `json:"total_explained"`
	Policies           []explainedItem `json:"policies"`
}

func (h *Handler) explainPolicies(c *gin.Context) {
	var req explainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_body", "요청 본문을 해석할 수 없습니다.", nil)
		return
	}

	profile, err := profiles.Validate(req.RawProfile)
	if err != nil {
		var verr *profiles.ValidationError
		if errors.As(err, &verr) {
			respond.Error(c, http.StatusUnprocessableEntity, "validation_failed", "프로필 검증에 실패했습니다.", verr.Fields)
			return
		}
		respond.Error(c, http.StatusBadRequest, "invalid_profile", err.Error(), nil)
		return
	}

	results := make([]matching.MatchResult, 0, len(req.Policies))
	for _, p := range req.Policies {
		r := matching.MatchResult{
			PolicyID:       p.PolicyID,
			Title:          p.Title,
			Category:       p.Category,
			Score:          p.Score,
			MatchReasons:   p.MatchReasons,
			BenefitSummary: p.BenefitSummary,
			ApplicationURL: p.ApplicationURL,
		}
		if p.Deadline != nil && *p.Deadline != "" {
			t, err := time.Parse("2006-01-02", *p.Deadline)
			if err != nil {
				respond.Error(c, http.StatusBadRequest, "invalid_deadline", "마감일 형식은 YYYY-MM-DD 여야 합니다.", nil)
				return
			}
			r.Deadline = &t
		}
		results = append(results, r)
	}

	recs := h.Generator.ExplainAll(c.Request.Context(), profile, results)

	items := make([]explainedItem, 0, len(recs))
	for i, rec := range recs {
		items = append(items, explainedItem{
			Recommendation: rec,
			Deadline:       req.Policies[i].Deadline,
		})
	}

	respond.OK(c, explainResponse{
		Success:            true,
		UserProfileSummary: profile.Summary(),
		TotalExplained:     len(items),
		Policies:           items,
	})
}
