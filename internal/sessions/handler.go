package sessions

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"youth-policy-backend/internal/shared/server/respond"
)

// Handler serves recommendation history endpoints.
type Handler struct {
	Repo Repo
}

func NewHandler(repo Repo) *Handler {
	return &Handler{Repo: repo}
}

// RegisterRoutes attaches history routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/user/:id/history", h.history)
}

type historyResponse struct {
	ProfileID     string    `json:"profile_id"`
	TotalSessions int       `json:"total_sessions"`
	Sessions      []Session `json:"sessions"`
}

func (h *Handler) history(c *gin.Context) {
	profileID := c.Param("id")

	list, err := h.Repo.ListByProfile(c.Request.Context(), profileID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "history_not_found", "해당 사용자의 추천 이력이 없습니다.", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "history_failed", "추천 이력을 조회하지 못했습니다.", nil)
		return
	}

	respond.OK(c, historyResponse{
		ProfileID:     profileID,
		TotalSessions: len(list),
		Sessions:      list,
	})
}
