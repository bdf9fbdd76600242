package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"buyer-quiz/internal/domain"
	"buyer-quiz/internal/llm"
)

// ReportService turns a scored quiz into a narrative buyer memo. The LLM is
// best-effort: any failure falls back to a template memo so every submission
// gets a report.
type ReportService struct {
	llmClient llm.LLMClient
	logger    *zap.Logger
}

func NewReportService(llmClient llm.LLMClient, logger *zap.Logger) *ReportService {
	return &ReportService{
		llmClient: llmClient,
		logger:    logger,
	}
}

type reportPayload struct {
	Headline        string   `json:"headline"`
	Summary         string   `json:"summary"`
	Recommendations []string `json:"recommendations"`
}

// Generate produces the memo for one result. It never fails.
func (s *ReportService) Generate(ctx context.Context, lead domain.Lead, result domain.QuizResult) domain.Report {
	if s.llmClient != nil {
		if report, ok := s.generateFromLLM(ctx, lead, result); ok {
			return report
		}
	}
	return templateReport(result)
}

func (s *ReportService) generateFromLLM(ctx context.Context, lead domain.Lead, result domain.QuizResult) (domain.Report, bool) {
	prompt := buildReportPrompt(lead, result)

	raw, err := s.llmClient.Generate(ctx, prompt)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("report llm call failed, using template", zap.Error(err))
		}
		return domain.Report{}, false
	}

	payloadJSON := extractFirstJSONObject(cleanLLMJSONResponse(raw))
	if payloadJSON == "" {
		if s.logger != nil {
			s.logger.Warn("report llm response had no JSON object")
		}
		return domain.Report{}, false
	}

	var payload reportPayload
	if err := json.Unmarshal([]byte(payloadJSON), &payload); err != nil {
		if s.logger != nil {
			s.logger.Warn("report llm response unmarshal failed", zap.Error(err))
		}
		return domain.Report{}, false
	}

	if strings.TrimSpace(payload.Headline) == "" || strings.TrimSpace(payload.Summary) == "" {
		return domain.Report{}, false
	}

	return domain.Report{
		Headline:        strings.TrimSpace(payload.Headline),
		Summary:         strings.TrimSpace(payload.Summary),
		Recommendations: payload.Recommendations,
	}, true
}

func buildReportPrompt(lead domain.Lead, result domain.QuizResult) string {
	name := strings.TrimSpace(lead.Name)
	if name == "" {
		name = "this home buyer"
	}
	return fmt.Sprintf(reportPromptTemplate,
		name,
		result.Openness,
		result.Conscientious,
		result.Extraversion,
		result.Agreeableness,
		result.RiskAversion,
		result.TypeCode,
		result.TypeConfidence,
		result.Archetype,
		len(result.Inconsistencies),
	)
}

// templateReport is the offline memo used when no LLM is configured or the
// call fails.
func templateReport(result domain.QuizResult) domain.Report {
	summaries := map[string]string{
		"Visionary Host":            "You buy with your imagination first: how a space hosts people and ideas matters more to you than its spec sheet. Expect to fall for homes other buyers walk past.",
		"Steady Planner":            "You move deliberately and dislike surprises. A clear search plan with firm criteria will serve you far better than chasing listings as they appear.",
		"Risk-Guarded Nest-Builder": "Security drives your search. You will feel best with inspected, well-documented homes and a deal structure that leaves margin for the unexpected.",
		"Family-First Optimizer":    "You optimize for the people moving with you. Trade-offs come easily to you when they serve the household, so guard a short list of personal non-negotiables.",
		"Design-Forward Adventurer": "You are drawn to distinctive spaces and comfortable with the work they imply. Budget time and money for making a place your own.",
		"Balanced Explorer":         "No single instinct dominates your search, which makes you flexible. Your risk is drift: decide early which three things a home must get right.",
	}

	summary, ok := summaries[result.Archetype]
	if !ok {
		summary = summaries["Balanced Explorer"]
	}

	recs := []string{
		"Tour two homes outside your stated criteria to pressure-test them.",
		"Write down your walk-away price before the first offer, not during it.",
	}
	if len(result.Inconsistencies) > 0 {
		recs = append(recs, "Retake the quiz when you have a quiet ten minutes; a few of your answers pulled in opposite directions.")
	}

	return domain.Report{
		Headline:        fmt.Sprintf("You shop like a %s.", result.Archetype),
		Summary:         summary,
		Recommendations: recs,
	}
}
