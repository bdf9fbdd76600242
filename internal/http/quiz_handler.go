package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"buyer-quiz/internal/scoring"
	"buyer-quiz/internal/service"
)

// QuizHandler serves the quiz catalog and the two scoring entry points.
type QuizHandler struct {
	logger  *zap.Logger
	catalog *scoring.Catalog
	quiz    *service.QuizService
}

func NewQuizHandler(logger *zap.Logger, catalog *scoring.Catalog, quiz *service.QuizService) *QuizHandler {
	return &QuizHandler{logger: logger, catalog: catalog, quiz: quiz}
}

// ListItems returns the published item catalog in presentation order.
func (h *QuizHandler) ListItems(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.catalog.Items()})
}

type submitQuizRequest struct {
	Name                string         `json:"name"`
	Email               string         `json:"email" binding:"required,email"`
	Phone               string         `json:"phone"`
	Answers             map[string]int `json:"answers"`
	SliderValue         *int           `json:"slider_value"`
	ConditionPreference string         `json:"condition_preference"`
}

// Submit scores a completed questionnaire, stores the lead and mails the memo.
func (h *QuizHandler) Submit(c *gin.Context) {
	var req submitQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid submission request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, report, err := h.quiz.Submit(c.Request.Context(), service.Submission{
		Name:                req.Name,
		Email:               req.Email,
		Phone:               req.Phone,
		Answers:             req.Answers,
		SliderValue:         req.SliderValue,
		ConditionPreference: req.ConditionPreference,
	})
	switch {
	case errors.Is(err, service.ErrSubmissionInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid submission"})
		return
	case errors.Is(err, service.ErrSubmissionRateLimited):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many submissions, try again later"})
		return
	case err != nil:
		h.logger.Error("quiz submission failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not process submission"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"result": result, "report": report})
}

// Preview scores answers without persisting anything. Used by the widget to
// render a teaser before asking for contact details.
func (h *QuizHandler) Preview(c *gin.Context) {
	var in scoring.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		h.logger.Warn("invalid preview request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.quiz.Preview(in)
	if err != nil {
		h.logger.Error("quiz preview failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not score answers"})
		return
	}

	c.JSON(http.StatusOK, result)
}
