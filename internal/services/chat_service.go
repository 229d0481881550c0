package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/geniesugar/geniesugar/internal/apperrors"
	"github.com/geniesugar/geniesugar/internal/database"
	"gorm.io/gorm"
)

type ChatService struct {
	db *gorm.DB
}

func NewChatService(db *gorm.DB) *ChatService {
	return &ChatService{db: db}
}

// Conversation summarizes a chat thread for the inbox view.
type Conversation struct {
	Partner     database.User        `json:"partner"`
	LastMessage database.ChatMessage `json:"lastMessage"`
	UnreadCount int64                `json:"unreadCount"`
}

// Conversations lists every chat partner of the user with the latest message
// and the number of unread messages from that partner, newest thread first.
func (s *ChatService) Conversations(ctx context.Context, userID string) ([]Conversation, error) {
	var messages []database.ChatMessage
	if err := s.db.WithContext(ctx).
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&messages).Error; err != nil {
		return nil, fmt.Errorf("failed to get chat messages: %w", err)
	}

	latest := make(map[string]database.ChatMessage)
	order := make([]string, 0)
	for _, msg := range messages {
		partnerID := msg.SenderID
		if partnerID == userID {
			partnerID = msg.ReceiverID
		}
		if _, seen := latest[partnerID]; !seen {
			latest[partnerID] = msg
			order = append(order, partnerID)
		}
	}

	conversations := make([]Conversation, 0, len(order))
	for _, partnerID := range order {
		var partner database.User
		if err := s.db.WithContext(ctx).First(&partner, "id = ?", partnerID).Error; err != nil {
			continue
		}
		partner.Password = ""

		var unread int64
		if err := s.db.WithContext(ctx).
			Model(&database.ChatMessage{}).
			Where("sender_id = ? AND receiver_id = ? AND is_read = ?", partnerID, userID, false).
			Count(&unread).Error; err != nil {
			return nil, fmt.Errorf("failed to count unread messages: %w", err)
		}

		conversations = append(conversations, Conversation{
			Partner:     partner,
			LastMessage: latest[partnerID],
			UnreadCount: unread,
		})
	}
	return conversations, nil
}

// UnreadCount counts all unread messages addressed to the user.
func (s *ChatService) UnreadCount(ctx context.Context, userID string) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).
		Model(&database.ChatMessage{}).
		Where("receiver_id = ? AND is_read = ?", userID, false).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count unread messages: %w", err)
	}
	return count, nil
}

// Messages returns the full thread between the user and a partner in
// chronological order and marks the partner's messages as read.
func (s *ChatService) Messages(ctx context.Context, userID, partnerID string) ([]database.ChatMessage, error) {
	var messages []database.ChatMessage
	if err := s.db.WithContext(ctx).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userID, partnerID, partnerID, userID).
		Order("created_at ASC").
		Find(&messages).Error; err != nil {
		return nil, fmt.Errorf("failed to get messages: %w", err)
	}

	if err := s.db.WithContext(ctx).
		Model(&database.ChatMessage{}).
		Where("sender_id = ? AND receiver_id = ? AND is_read = ?", partnerID, userID, false).
		Update("is_read", true).Error; err != nil {
		return nil, fmt.Errorf("failed to mark messages read: %w", err)
	}
	return messages, nil
}

// Send delivers a message from the user to a receiver.
func (s *ChatService) Send(ctx context.Context, senderID, receiverID, content string) (*database.ChatMessage, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apperrors.NewValidationError("Message content is required")
	}
	if receiverID == senderID {
		return nil, apperrors.NewValidationError("Cannot send a message to yourself")
	}

	var receiver database.User
	err := s.db.WithContext(ctx).First(&receiver, "id = ?", receiverID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewNotFoundError("Recipient not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up recipient: %w", err)
	}

	message := &database.ChatMessage{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    strings.TrimSpace(content),
	}
	if err := s.db.WithContext(ctx).Create(message).Error; err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}
	return message, nil
}
