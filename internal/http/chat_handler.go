package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"buyer-quiz/internal/service"
)

// ChatHandler serves the keyword-routed widget chat.
type ChatHandler struct {
	logger *zap.Logger
	chat   *service.ChatService
}

func NewChatHandler(logger *zap.Logger, chat *service.ChatService) *ChatHandler {
	return &ChatHandler{logger: logger, chat: chat}
}

type chatMessageRequest struct {
	VisitorID string `json:"visitor_id"`
	Message   string `json:"message" binding:"required"`
}

// PostMessage routes one visitor message and returns the reply along with the
// visitor id, minting one when the widget has none yet.
func (h *ChatHandler) PostMessage(c *gin.Context) {
	var req chatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid chat request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	visitorID := strings.TrimSpace(req.VisitorID)
	if visitorID == "" {
		visitorID = uuid.NewString()
	}

	reply, err := h.chat.HandleMessage(c.Request.Context(), visitorID, req.Message)
	if errors.Is(err, service.ErrChatEmptyMessage) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is empty"})
		return
	}
	if err != nil {
		h.logger.Error("chat routing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not process message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"visitor_id": visitorID, "reply": reply})
}
