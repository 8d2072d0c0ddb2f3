package entities

import (
	"github.com/google/uuid"
)

// ChatMessage represents one message in a support conversation
type ChatMessage struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"userId"`
	AdminID   *uuid.UUID `json:"adminId,omitempty"`
	Message   string     `json:"message"`
	IsAdmin   bool       `json:"isAdmin"`
	CreatedAt Timestamp  `json:"createdAt"`
}

// CreateChatMessageInput represents an admin reply in a conversation
type CreateChatMessageInput struct {
	UserID  uuid.UUID `json:"userId" binding:"required"`
	Message string    `json:"message" binding:"required"`
}

// ChatConversation summarizes the support thread of one user,
// ordered by most recent activity.
type ChatConversation struct {
	UserID        uuid.UUID `json:"userId"`
	FullName      string    `json:"fullName"`
	Email         string    `json:"email"`
	LastMessage   string    `json:"lastMessage"`
	LastMessageAt Timestamp `json:"lastMessageAt"`
	MessageCount  int64     `json:"messageCount"`
}
