package service

import (
	"errors"
	"math"
)

var ErrCalculatorInvalidInput = errors.New("calculator invalid input")

// Qualifying ratios used by the affordability estimate (28/36 rule).
const (
	frontEndRatio = 0.28
	backEndRatio  = 0.36
)

// MortgageQuote is a fixed-rate amortized payment estimate.
type MortgageQuote struct {
	LoanAmount     float64 `json:"loan_amount"`
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalInterest  float64 `json:"total_interest"`
	TotalCost      float64 `json:"total_cost"`
}

// AffordabilityEstimate is a comfortable price range from income and debts.
type AffordabilityEstimate struct {
	MaxMonthlyPayment float64 `json:"max_monthly_payment"`
	MaxLoanAmount     float64 `json:"max_loan_amount"`
	MaxPrice          float64 `json:"max_price"`
}

// CalculatorService holds the widget's financial math. Pure and stateless.
type CalculatorService struct{}

// MortgagePayment amortizes a fixed-rate loan. annualRatePct is a percentage
// (6.5 means 6.5%); a zero rate degrades to straight division.
func (CalculatorService) MortgagePayment(price, downPayment, annualRatePct float64, termYears int) (MortgageQuote, error) {
	if price <= 0 || downPayment < 0 || downPayment >= price || annualRatePct < 0 || termYears <= 0 {
		return MortgageQuote{}, ErrCalculatorInvalidInput
	}

	loan := price - downPayment
	months := float64(termYears * 12)

	var payment float64
	if annualRatePct == 0 {
		payment = loan / months
	} else {
		r := annualRatePct / 100 / 12
		factor := math.Pow(1+r, months)
		payment = loan * r * factor / (factor - 1)
	}

	payment = roundCents(payment)
	totalCost := roundCents(payment * months)

	return MortgageQuote{
		LoanAmount:     roundCents(loan),
		MonthlyPayment: payment,
		TotalInterest:  roundCents(totalCost - loan),
		TotalCost:      totalCost,
	}, nil
}

// Affordability sizes the loan a buyer can carry: housing at most 28% of
// gross monthly income and housing plus existing debts at most 36%, the
// tighter of the two winning.
func (c CalculatorService) Affordability(annualIncome, monthlyDebts, downPayment, annualRatePct float64, termYears int) (AffordabilityEstimate, error) {
	if annualIncome < 0 || monthlyDebts < 0 || downPayment < 0 || annualRatePct < 0 || termYears <= 0 {
		return AffordabilityEstimate{}, ErrCalculatorInvalidInput
	}

	grossMonthly := annualIncome / 12
	maxPayment := math.Min(grossMonthly*frontEndRatio, grossMonthly*backEndRatio-monthlyDebts)
	if maxPayment <= 0 {
		return AffordabilityEstimate{}, nil
	}

	months := float64(termYears * 12)
	var maxLoan float64
	if annualRatePct == 0 {
		maxLoan = maxPayment * months
	} else {
		r := annualRatePct / 100 / 12
		factor := math.Pow(1+r, months)
		maxLoan = maxPayment * (factor - 1) / (r * factor)
	}

	return AffordabilityEstimate{
		MaxMonthlyPayment: roundCents(maxPayment),
		MaxLoanAmount:     roundCents(maxLoan),
		MaxPrice:          roundCents(maxLoan + downPayment),
	}, nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
