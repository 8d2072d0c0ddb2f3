package repositories

import (
	"context"

	"github.com/google/uuid"
	"trade-admin.backend/internal/domain/entities"
)

// ChatRepository defines support-chat data operations
type ChatRepository interface {
	Create(ctx context.Context, msg *entities.ChatMessage) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entities.ChatMessage, error)
	ListConversations(ctx context.Context) ([]entities.ChatConversation, error)
}
