package profiles

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"youth-policy-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches profile routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/profile", h.create)
	rg.GET("/profile/:id", h.get)
}

type createResponse struct {
	Success   bool   `json:"success"`
	ProfileID string `json:"profile_id"`
	Message   string `json:"message"`
}

func (h *Handler) create(c *gin.Context) {
	var raw RawProfile
	if err := c.ShouldBindJSON(&raw); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_body", "invalid request body", nil)
		return
	}

	profile, saved, err := h.Svc.Create(c.Request.Context(), raw)
	if err != nil {
		var vErr *ValidationError
		if errors.As(err, &vErr) {
			respond.Error(c, http.StatusUnprocessableEntity, "validation_error", vErr.Error(), vErr.Fields)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal", "프로필 생성 중 오류가 발생했습니다", nil)
		return
	}

	c.Set("profileId", profile.ID)
	msg := "프로필이 성공적으로 생성되었습니다."
	if saved {
		msg += " (데이터베이스 저장 완료)"
	}
	respond.JSON(c, http.StatusCreated, createResponse{
		Success:   true,
		ProfileID: profile.ID,
		Message:   msg,
	})
}

func (h *Handler) get(c *gin.Context) {
	id := c.Param("id")

	profile, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "프로필을 찾을 수 없습니다", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal", "프로필 조회 중 오류가 발생했습니다", nil)
		return
	}

	respond.OK(c, gin.H{
		"success": true,
		"profile": gin.H{
			"profile_id": profile.ID,
			"age":        profile.Age,
			"region":     profile.Region,
			"income":     profile.Income,
			"employment": profile.Employment,
			"interest":   profile.Interest,
			"created_at": profile.CreatedAt,
		},
	})
}
