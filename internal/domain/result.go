package domain

import "time"

// QuizResult is one scored questionnaire as persisted per lead.
type QuizResult struct {
	ID              string    `json:"id"`
	LeadID          string    `json:"lead_id"`
	Openness        float64   `json:"openness"`
	Conscientious   float64   `json:"conscientiousness"`
	Extraversion    float64   `json:"extraversion"`
	Agreeableness   float64   `json:"agreeableness"`
	RiskAversion    float64   `json:"risk_aversion"`
	TypeCode        string    `json:"type_code"`
	TypeConfidence  float64   `json:"type_confidence"`
	Archetype       string    `json:"archetype"`
	Inconsistencies []string  `json:"inconsistencies"`
	CreatedAt       time.Time `json:"created_at"`
}
