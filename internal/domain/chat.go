package domain

import "time"

const (
	ChatRoleVisitor   = "visitor"
	ChatRoleAssistant = "assistant"
)

// ChatMessage is one line of a widget conversation, kept per anonymous
// visitor for the sales team.
type ChatMessage struct {
	ID        string    `json:"id"`
	VisitorID string    `json:"visitor_id"`
	Role      string    `json:"role"`
	Skill     string    `json:"skill,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
