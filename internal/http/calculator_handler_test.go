package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"buyer-quiz/internal/service"
)

func TestCalculatorHandlerMortgage(t *testing.T) {
	h := NewCalculatorHandler(zap.NewNop(), service.CalculatorService{})

	w := performJSON(t, h.Mortgage, http.MethodPost, "/calculators/mortgage", gin.H{
		"price":           360000,
		"down_payment":    60000,
		"annual_rate_pct": 6.0,
		"term_years":      30,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var quote service.MortgageQuote
	if err := json.Unmarshal(w.Body.Bytes(), &quote); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if quote.LoanAmount != 300000 || quote.MonthlyPayment <= 0 {
		t.Fatalf("unexpected quote: %+v", quote)
	}
}

func TestCalculatorHandlerMortgageInvalidInput(t *testing.T) {
	h := NewCalculatorHandler(zap.NewNop(), service.CalculatorService{})

	// Down payment swallows the whole price.
	w := performJSON(t, h.Mortgage, http.MethodPost, "/calculators/mortgage", gin.H{
		"price":        300000,
		"down_payment": 300000,
		"term_years":   30,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestCalculatorHandlerAffordability(t *testing.T) {
	h := NewCalculatorHandler(zap.NewNop(), service.CalculatorService{})

	w := performJSON(t, h.Affordability, http.MethodPost, "/calculators/affordability", gin.H{
		"annual_income":   120000,
		"monthly_debts":   0,
		"down_payment":    50000,
		"annual_rate_pct": 6.0,
		"term_years":      30,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var est service.AffordabilityEstimate
	if err := json.Unmarshal(w.Body.Bytes(), &est); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if est.MaxMonthlyPayment != 2800 {
		t.Fatalf("expected front-end cap 2800, got %v", est.MaxMonthlyPayment)
	}
}

func TestCalculatorHandlerAffordabilityMissingIncome(t *testing.T) {
	h := NewCalculatorHandler(zap.NewNop(), service.CalculatorService{})

	w := performJSON(t, h.Affordability, http.MethodPost, "/calculators/affordability", gin.H{
		"monthly_debts": 500,
		"term_years":    30,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
