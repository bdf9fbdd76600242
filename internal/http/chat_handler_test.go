package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"buyer-quiz/internal/domain"
	"buyer-quiz/internal/service"
)

type mockChatRepo struct {
	messages []domain.ChatMessage
}

func (m *mockChatRepo) Insert(_ context.Context, msg domain.ChatMessage) error {
	m.messages = append(m.messages, msg)
	return nil
}

func (m *mockChatRepo) FindByVisitorID(_ context.Context, visitorID string, _ int) ([]domain.ChatMessage, error) {
	var out []domain.ChatMessage
	for _, msg := range m.messages {
		if msg.VisitorID == visitorID {
			out = append(out, msg)
		}
	}
	return out, nil
}

func TestChatHandlerRoutesMessage(t *testing.T) {
	repo := &mockChatRepo{}
	h := NewChatHandler(zap.NewNop(), service.NewChatService(zap.NewNop(), repo))

	w := performJSON(t, h.PostMessage, http.MethodPost, "/chat/messages", gin.H{
		"visitor_id": "v-1",
		"message":    "What would my monthly mortgage payment be?",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		VisitorID string            `json:"visitor_id"`
		Reply     service.ChatReply `json:"reply"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.VisitorID != "v-1" {
		t.Fatalf("expected visitor id to round-trip, got %q", resp.VisitorID)
	}
	if resp.Reply.Skill != service.SkillMortgageCalc {
		t.Fatalf("expected mortgage skill, got %q", resp.Reply.Skill)
	}
	if len(repo.messages) != 2 {
		t.Fatalf("expected both transcript rows, got %d", len(repo.messages))
	}
}

func TestChatHandlerMintsVisitorID(t *testing.T) {
	h := NewChatHandler(zap.NewNop(), service.NewChatService(zap.NewNop(), &mockChatRepo{}))

	w := performJSON(t, h.PostMessage, http.MethodPost, "/chat/messages", gin.H{
		"message": "hello there",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		VisitorID string `json:"visitor_id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.VisitorID == "" {
		t.Fatalf("expected a minted visitor id")
	}
}

func TestChatHandlerRejectsMissingMessage(t *testing.T) {
	h := NewChatHandler(zap.NewNop(), service.NewChatService(zap.NewNop(), &mockChatRepo{}))

	w := performJSON(t, h.PostMessage, http.MethodPost, "/chat/messages", gin.H{
		"visitor_id": "v-1",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
