package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"trade-admin.backend/internal/domain/entities"
	domainerrors "trade-admin.backend/internal/domain/errors"
	"trade-admin.backend/internal/domain/repositories"
)

const defaultConversationLimit = 100

// ChatUsecase handles support-chat business logic
type ChatUsecase struct {
	chatRepo repositories.ChatRepository
	userRepo repositories.UserRepository
}

// NewChatUsecase creates a new chat usecase
func NewChatUsecase(chatRepo repositories.ChatRepository, userRepo repositories.UserRepository) *ChatUsecase {
	return &ChatUsecase{
		chatRepo: chatRepo,
		userRepo: userRepo,
	}
}

// ListConversations returns every user with at least one chat message,
// ordered by most recent activity.
func (u *ChatUsecase) ListConversations(ctx context.Context) ([]entities.ChatConversation, error) {
	return u.chatRepo.ListConversations(ctx)
}

// GetConversation returns the chronological message history of one user.
func (u *ChatUsecase) GetConversation(ctx context.Context, userID uuid.UUID, limit int) ([]*entities.ChatMessage, error) {
	if _, err := u.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultConversationLimit
	}
	return u.chatRepo.ListByUser(ctx, userID, limit)
}

// SendAdminReply appends an admin message to a user's conversation.
func (u *ChatUsecase) SendAdminReply(ctx context.Context, input *entities.CreateChatMessageInput, adminID uuid.UUID) (*entities.ChatMessage, error) {
	if strings.TrimSpace(input.Message) == "" {
		return nil, domainerrors.BadRequest("message must not be empty")
	}
	if _, err := u.userRepo.GetByID(ctx, input.UserID); err != nil {
		return nil, err
	}

	msg := &entities.ChatMessage{
		ID:        uuid.New(),
		UserID:    input.UserID,
		AdminID:   &adminID,
		Message:   input.Message,
		IsAdmin:   true,
		CreatedAt: entities.NewTimestamp(time.Now()),
	}
	if err := u.chatRepo.Create(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}
