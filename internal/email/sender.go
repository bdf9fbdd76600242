package email

import (
	"context"
	"errors"

	"buyer-quiz/internal/domain"
)

// Sender delivers a scored quiz report to a respondent.
type Sender interface {
	SendQuizReport(ctx context.Context, toEmail, name string, result domain.QuizResult, report domain.Report) error
}

type disabledSender struct {
	reason string
}

func NewDisabledSender(reason string) Sender {
	return &disabledSender{reason: reason}
}

func (s *disabledSender) SendQuizReport(_ context.Context, _ string, _ string, _ domain.QuizResult, _ domain.Report) error {
	if s.reason == "" {
		return errors.New("email sender disabled")
	}
	return errors.New(s.reason)
}
