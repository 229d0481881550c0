package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/geniesugar/geniesugar/internal/services"
)

type ChatHandler struct {
	chat *services.ChatService
}

func NewChatHandler(chat *services.ChatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

// Conversations handles GET /api/chat/conversations.
func (h *ChatHandler) Conversations(c *gin.Context) {
	conversations, err := h.chat.Conversations(c.Request.Context(), User(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, conversations)
}

// UnreadCount handles GET /api/chat/unread-count.
func (h *ChatHandler) UnreadCount(c *gin.Context) {
	count, err := h.chat.UnreadCount(c.Request.Context(), User(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// Messages handles GET /api/chat/messages/:partnerId. Fetching a thread marks
// the partner's messages as read.
func (h *ChatHandler) Messages(c *gin.Context) {
	messages, err := h.chat.Messages(c.Request.Context(), User(c).ID, c.Param("partnerId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

type sendMessageRequest struct {
	ReceiverID string `json:"receiverId"`
	Content    string `json:"content"`
}

// Send handles POST /api/chat/messages.
func (h *ChatHandler) Send(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	message, err := h.chat.Send(c.Request.Context(), User(c).ID, req.ReceiverID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, message)
}
