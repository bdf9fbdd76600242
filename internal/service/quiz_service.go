package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"buyer-quiz/internal/domain"
	"buyer-quiz/internal/email"
	"buyer-quiz/internal/repository"
	"buyer-quiz/internal/scoring"
)

// SubmitRateLimiter throttles quiz submissions per respondent key.
type SubmitRateLimiter interface {
	Allow(key string) bool
}

// Submission is one completed questionnaire plus the respondent's contact
// details.
type Submission struct {
	Name                string
	Email               string
	Phone               string
	Answers             map[string]int
	SliderValue         *int
	ConditionPreference string
}

var (
	ErrSubmissionInvalid     = errors.New("submission invalid")
	ErrSubmissionRateLimited = errors.New("submission rate limited")
)

// QuizService orchestrates a submission: score, persist the lead and the
// result, generate the memo and deliver it. Scoring itself stays in the
// shared engine so the preview path can never drift from this one.
type QuizService struct {
	logger  *zap.Logger
	engine  *scoring.Engine
	leads   repository.LeadRepository
	results repository.ResultRepository
	reports *ReportService
	sender  email.Sender
	limiter SubmitRateLimiter
}

func NewQuizService(
	logger *zap.Logger,
	engine *scoring.Engine,
	leads repository.LeadRepository,
	results repository.ResultRepository,
	reports *ReportService,
	sender email.Sender,
	limiter SubmitRateLimiter,
) *QuizService {
	return &QuizService{
		logger:  logger,
		engine:  engine,
		leads:   leads,
		results: results,
		reports: reports,
		sender:  sender,
		limiter: limiter,
	}
}

// Preview scores a questionnaire without persisting anything.
func (s *QuizService) Preview(in scoring.Input) (scoring.Result, error) {
	return s.engine.Evaluate(in)
}

// Submit runs the full intake pipeline. Memo generation and email delivery
// are best-effort; persistence failures fail the call.
func (s *QuizService) Submit(ctx context.Context, sub Submission) (domain.QuizResult, domain.Report, error) {
	addr := strings.ToLower(strings.TrimSpace(sub.Email))
	if addr == "" {
		return domain.QuizResult{}, domain.Report{}, ErrSubmissionInvalid
	}

	if s.limiter != nil && !s.limiter.Allow(addr) {
		return domain.QuizResult{}, domain.Report{}, ErrSubmissionRateLimited
	}

	scored, err := s.engine.Evaluate(scoring.Input{
		Answers:             sub.Answers,
		SliderValue:         sub.SliderValue,
		ConditionPreference: sub.ConditionPreference,
	})
	if err != nil {
		return domain.QuizResult{}, domain.Report{}, fmt.Errorf("evaluate submission: %w", err)
	}

	now := time.Now().UTC()
	lead := domain.Lead{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(sub.Name),
		Email:     addr,
		Phone:     strings.TrimSpace(sub.Phone),
		CreatedAt: now,
		UpdatedAt: now,
	}

	lead, err = s.leads.UpsertByEmail(ctx, lead)
	if err != nil {
		return domain.QuizResult{}, domain.Report{}, fmt.Errorf("upsert lead: %w", err)
	}

	result := domain.QuizResult{
		ID:              uuid.NewString(),
		LeadID:          lead.ID,
		Openness:        scored.Scores.O,
		Conscientious:   scored.Scores.C,
		Extraversion:    scored.Scores.E,
		Agreeableness:   scored.Scores.A,
		RiskAversion:    scored.Scores.N,
		TypeCode:        scored.Type.Code,
		TypeConfidence:  scored.Type.Confidence,
		Archetype:       string(scored.Archetype),
		Inconsistencies: scored.Inconsistencies,
		CreatedAt:       now,
	}

	if err := s.results.Insert(ctx, result); err != nil {
		return domain.QuizResult{}, domain.Report{}, fmt.Errorf("insert result: %w", err)
	}

	report := s.reports.Generate(ctx, lead, result)

	if s.sender != nil {
		if err := s.sender.SendQuizReport(ctx, lead.Email, lead.Name, result, report); err != nil {
			if s.logger != nil {
				s.logger.Warn("report email failed", zap.Error(err), zap.String("lead_id", lead.ID))
			}
		}
	}

	if s.logger != nil {
		s.logger.Info("quiz submission scored",
			zap.String("lead_id", lead.ID),
			zap.String("type_code", result.TypeCode),
			zap.String("archetype", result.Archetype),
			zap.Int("inconsistencies", len(result.Inconsistencies)),
		)
	}

	return result, report, nil
}
