package sessions

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BoraOzcoban/sukoc/internal/engine"
	"github.com/BoraOzcoban/sukoc/internal/shared/server/respond"
)

type Handler struct {
	Service *Service
}

// RegisterRoutes mounts the questionnaire session endpoints.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/answers", h.SaveAnswers)
	rg.PUT("/answers/:sessionId/complete", h.Complete)
	rg.GET("/answers/:userId", h.History)
}

type saveAnswersRequest struct {
	UserID  string          `json:"userId"`
	Answers []engine.Answer `json:"answers"`
}

// SaveAnswers handles POST /api/v1/answers.
func (h *Handler) SaveAnswers(c *gin.Context) {
	var req saveAnswersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_body", "invalid request body", nil)
		return
	}
	if req.UserID == "" {
		respond.Error(c, http.StatusBadRequest, "missing_user_id", "userId is required", nil)
		return
	}

	session, err := h.Service.SaveAnswers(c.Request.Context(), req.UserID, req.Answers)
	if err != nil {
		if errors.Is(err, ErrNoValidAnswers) {
			respond.Error(c, http.StatusBadRequest, "no_valid_answers", "at least one answer with questionId and category is required", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "save_failed", "could not save answers", nil)
		return
	}

	c.Set("sessionId", session.ID)
	respond.JSON(c, http.StatusCreated, session)
}

// Complete handles PUT /api/v1/answers/:sessionId/complete.
func (h *Handler) Complete(c *gin.Context) {
	sessionID := c.Param("sessionId")
	if sessionID == "" {
		respond.Error(c, http.StatusBadRequest, "missing_session_id", "sessionId is required", nil)
		return
	}

	session, err := h.Service.Complete(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "quiz session not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "complete_failed", "could not complete session", nil)
		return
	}

	c.Set("sessionId", session.ID)
	respond.OK(c, session)
}

// History handles GET /api/v1/answers/:userId.
func (h *Handler) History(c *gin.Context) {
	userID := c.Param("userId")
	if userID == "" {
		respond.Error(c, http.StatusBadRequest, "missing_user_id", "userId is required", nil)
		return
	}

	list, err := h.Service.History(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "list_failed", "could not list sessions", nil)
		return
	}
	respond.OK(c, list)
}
