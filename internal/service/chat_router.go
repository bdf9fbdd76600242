package service

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"buyer-quiz/internal/domain"
	"buyer-quiz/internal/repository"
)

// Chat skills the widget can route to.
const (
	SkillMortgageCalc      = "mortgage_calculator"
	SkillAffordabilityCalc = "affordability_calculator"
	SkillQuizInfo          = "quiz_info"
	SkillAgentHandoff      = "agent_handoff"
	SkillFallback          = "fallback"
)

// ChatReply is the routed answer for one visitor message.
type ChatReply struct {
	Skill   string `json:"skill"`
	Content string `json:"content"`
}

type chatRule struct {
	skill    string
	keywords []string
	reply    string
}

// chatRules is evaluated top to bottom; the first rule with a keyword hit
// wins. Calculator intents sit above quiz chatter because messages like
// "what does my score mean for my mortgage" should reach the calculator.
var chatRules = []chatRule{
	{
		skill:    SkillMortgageCalc,
		keywords: []string{"mortgage", "monthly payment", "interest", "rate", "loan"},
		reply:    "I can estimate a monthly payment. Tell me the price, your down payment, the rate and the term — or use the mortgage calculator below the quiz.",
	},
	{
		skill:    SkillAffordabilityCalc,
		keywords: []string{"afford", "budget", "income", "qualify", "how much house"},
		reply:    "Let's size your budget. Share your yearly income and monthly debt payments and I'll estimate a comfortable price range.",
	},
	{
		skill:    SkillQuizInfo,
		keywords: []string{"quiz", "personality", "archetype", "score", "type", "result"},
		reply:    "The quiz takes about three minutes: quick agree/disagree questions plus one slider. You'll get your buyer type and a short memo by email.",
	},
	{
		skill:    SkillAgentHandoff,
		keywords: []string{"agent", "human", "call", "talk", "contact", "tour", "showing", "visit"},
		reply:    "Happy to connect you with an agent. Leave your phone number here or finish the quiz and we'll reach out with someone who fits your style.",
	},
}

const chatFallbackReply = "I can help with the buyer quiz, mortgage math or connecting you to an agent. What would you like to do?"

var ErrChatEmptyMessage = errors.New("chat message empty")

// ChatService routes widget messages by keyword and keeps the transcript for
// the sales team. There is no LLM in this path.
type ChatService struct {
	logger   *zap.Logger
	messages repository.ChatRepository
}

func NewChatService(logger *zap.Logger, messages repository.ChatRepository) *ChatService {
	return &ChatService{
		logger:   logger,
		messages: messages,
	}
}

// Route picks the skill for one message. Pure: no storage, no clock.
func (s *ChatService) Route(text string) ChatReply {
	msg := normalizeChatText(text)

	for _, rule := range chatRules {
		if containsAny(msg, rule.keywords) {
			return ChatReply{Skill: rule.skill, Content: rule.reply}
		}
	}
	return ChatReply{Skill: SkillFallback, Content: chatFallbackReply}
}

// HandleMessage routes the message and records both sides of the exchange.
// Transcript persistence is best-effort.
func (s *ChatService) HandleMessage(ctx context.Context, visitorID, text string) (ChatReply, error) {
	if strings.TrimSpace(text) == "" {
		return ChatReply{}, ErrChatEmptyMessage
	}
	if strings.TrimSpace(visitorID) == "" {
		visitorID = uuid.NewString()
	}

	reply := s.Route(text)

	if s.messages != nil {
		now := time.Now().UTC()
		visitorMsg := domain.ChatMessage{
			ID:        uuid.NewString(),
			VisitorID: visitorID,
			Role:      domain.ChatRoleVisitor,
			Content:   strings.TrimSpace(text),
			CreatedAt: now,
		}
		assistantMsg := domain.ChatMessage{
			ID:        uuid.NewString(),
			VisitorID: visitorID,
			Role:      domain.ChatRoleAssistant,
			Skill:     reply.Skill,
			Content:   reply.Content,
			CreatedAt: now,
		}
		for _, m := range []domain.ChatMessage{visitorMsg, assistantMsg} {
			if err := s.messages.Insert(ctx, m); err != nil {
				if s.logger != nil {
					s.logger.Warn("chat transcript insert failed", zap.Error(err), zap.String("visitor_id", visitorID))
				}
				break
			}
		}
	}

	return reply, nil
}

// normalizeChatText lowercases and strips diacritics so keyword matching
// survives accented input.
func normalizeChatText(s string) string {
	s = strings.ToLower(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func containsAny(s string, list []string) bool {
	for _, x := range list {
		if strings.Contains(s, x) {
			return true
		}
	}
	return false
}
