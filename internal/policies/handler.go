package policies

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"youth-policy-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the gateway.
type Handler struct {
	Gateway *Gateway
}

// NewHandler constructs a Handler.
func NewHandler(gw *Gateway) *Handler {
	return &Handler{Gateway: gw}
}

// RegisterRoutes attaches policy routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/policies", h.list)
	rg.GET("/policy/:id", h.get)
}

type policyItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

func (h *Handler) list(c *gin.Context) {
	filter := Filter{
		Category: c.Query("category"),
		Region:   c.Query("region"),
	}
	var ok bool
	if filter.Page, ok = queryInt(c, "page"); !ok {
		respond.Error(c, http.StatusBadRequest, "invalid_query", "page must be a positive integer", nil)
		return
	}
	if filter.Limit, ok = queryInt(c, "limit"); !ok {
		respond.Error(c, http.StatusBadRequest, "invalid_query", "limit must be a positive integer", nil)
		return
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}

	list, _, err := h.Gateway.FetchOrFallback(c.Request.Context(), filter)
	if err != nil {
		respond.Error(c, http.StatusServiceUnavailable, "store_unavailable", "정책 데이터를 조회할 수 없습니다", nil)
		return
	}

	items := make([]policyItem, 0, len(list))
	for _, p := range list {
		items = append(items, policyItem{
			ID:          p.ID,
			Title:       p.Title,
			Description: p.Description,
			Category:    p.Category,
		})
	}
	respond.OK(c, items)
}

func (h *Handler) get(c *gin.Context) {
	p, err := h.Gateway.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "정책을 찾을 수 없습니다", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal", "정책 조회 중 오류가 발생했습니다", nil)
		return
	}

	respond.OK(c, toPolicyResponse(p))
}

type policyResponse struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Category       string   `json:"category"`
	TargetAgeMin   int      `json:"target_age_min"`
	TargetAgeMax   int      `json:"target_age_max"`
	TargetRegions  []string `json:"target_regions"`
	TargetEmploy   []string `json:"target_employment"`
	TargetIncome   *int     `json:"target_income_max,omitempty"`
	Benefit        string   `json:"benefit"`
	BudgetMax      *int     `json:"budget_max,omitempty"`
	Deadline       *string  `json:"deadline,omitempty"`
	ApplicationURL string   `json:"application_url"`
}

func toPolicyResponse(p Policy) policyResponse {
	return policyResponse{
		ID:             p.ID,
		Title:          p.Title,
		Description:    p.Description,
		Category:       p.Category,
		TargetAgeMin:   p.AgeMin,
		TargetAgeMax:   p.AgeMax,
		TargetRegions:  p.Regions,
		TargetEmploy:   p.Employment,
		TargetIncome:   p.IncomeMax,
		Benefit:        p.Benefit,
		BudgetMax:      p.BudgetMax,
		Deadline:       FormatDeadline(p.Deadline),
		ApplicationURL: p.ApplicationURL,
	}
}

// FormatDeadline renders an optional deadline as an ISO date string.
func FormatDeadline(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}

func queryInt(c *gin.Context, key string) (int, bool) {
	raw := c.Query(key)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}
