package analysis

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BoraOzcoban/sukoc/internal/catalog"
	"github.com/BoraOzcoban/sukoc/internal/engine"
	"github.com/BoraOzcoban/sukoc/internal/shared/server/respond"
)

// Handler serves the questionnaire catalog and runs usage analyses. It holds
// no mutable state; the calculator and its catalog are read-only.
type Handler struct {
	Calc *engine.Calculator
}

// RegisterRoutes mounts the catalog and analysis endpoints.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analysis", h.Analyze)
	rg.GET("/questions", h.Questions)
	rg.GET("/questions/:id", h.QuestionByID)
	rg.GET("/suggestions", h.Suggestions)
	rg.GET("/suggestions/:category", h.SuggestionsByCategory)
}

type analyzeRequest struct {
	Answers       []engine.Answer `json:"answers"`
	HouseholdSize int             `json:"householdSize"`
}

// Analyze handles POST /api/v1/analysis.
func (h *Handler) Analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_body", "invalid request body", nil)
		return
	}

	result := h.Calc.Calculate(engine.NewAnswerMap(req.Answers), req.HouseholdSize)
	respond.OK(c, result)
}

// Questions handles GET /api/v1/questions with an optional category filter.
func (h *Handler) Questions(c *gin.Context) {
	cat := h.Calc.Catalog()
	if category := c.Query("category"); category != "" {
		list := cat.QuestionsByCategory(category)
		if list == nil {
			list = []catalog.Question{}
		}
		respond.OK(c, list)
		return
	}
	respond.OK(c, cat.Questions())
}

// QuestionByID handles GET /api/v1/questions/:id.
func (h *Handler) QuestionByID(c *gin.Context) {
	q, ok := h.Calc.Catalog().QuestionByID(c.Param("id"))
	if !ok {
		respond.Error(c, http.StatusNotFound, "not_found", "question not found", nil)
		return
	}
	respond.OK(c, q)
}

// Suggestions handles GET /api/v1/suggestions.
func (h *Handler) Suggestions(c *gin.Context) {
	respond.OK(c, h.Calc.Catalog().Suggestions())
}

// SuggestionsByCategory handles GET /api/v1/suggestions/:category.
func (h *Handler) SuggestionsByCategory(c *gin.Context) {
	list, ok := h.Calc.Catalog().SuggestionsByCategory(c.Param("category"))
	if !ok {
		respond.Error(c, http.StatusNotFound, "not_found", "suggestion category not found", nil)
		return
	}
	respond.OK(c, list)
}
