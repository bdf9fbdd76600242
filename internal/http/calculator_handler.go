package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"buyer-quiz/internal/service"
)

// CalculatorHandler exposes the widget's mortgage math.
type CalculatorHandler struct {
	logger *zap.Logger
	calc   service.CalculatorService
}

func NewCalculatorHandler(logger *zap.Logger, calc service.CalculatorService) *CalculatorHandler {
	return &CalculatorHandler{logger: logger, calc: calc}
}

type mortgageRequest struct {
	Price         float64 `json:"price" binding:"required"`
	DownPayment   float64 `json:"down_payment"`
	AnnualRatePct float64 `json:"annual_rate_pct"`
	TermYears     int     `json:"term_years" binding:"required"`
}

func (h *CalculatorHandler) Mortgage(c *gin.Context) {
	var req mortgageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid mortgage request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	quote, err := h.calc.MortgagePayment(req.Price, req.DownPayment, req.AnnualRatePct, req.TermYears)
	if errors.Is(err, service.ErrCalculatorInvalidInput) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid calculator input"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not compute quote"})
		return
	}

	c.JSON(http.StatusOK, quote)
}

type affordabilityRequest struct {
	AnnualIncome  float64 `json:"annual_income" binding:"required"`
	MonthlyDebts  float64 `json:"monthly_debts"`
	DownPayment   float64 `json:"down_payment"`
	AnnualRatePct float64 `json:"annual_rate_pct"`
	TermYears     int     `json:"term_years" binding:"required"`
}

func (h *CalculatorHandler) Affordability(c *gin.Context) {
	var req affordabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid affordability request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	est, err := h.calc.Affordability(req.AnnualIncome, req.MonthlyDebts, req.DownPayment, req.AnnualRatePct, req.TermYears)
	if errors.Is(err, service.ErrCalculatorInvalidInput) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid calculator input"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not compute estimate"})
		return
	}

	c.JSON(http.StatusOK, est)
}
