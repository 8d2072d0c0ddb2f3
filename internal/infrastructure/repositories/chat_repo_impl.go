package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"trade-admin.backend/internal/domain/entities"
	"trade-admin.backend/internal/infrastructure/models"
)

// ChatRepository implements support-chat data operations
type ChatRepository struct {
	db *gorm.DB
}

// NewChatRepository creates a new chat repository
func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

// Create creates a new chat message
func (r *ChatRepository) Create(ctx context.Context, msg *entities.ChatMessage) error {
	m := &models.ChatMessage{
		ID:        msg.ID,
		UserID:    msg.UserID,
		AdminID:   msg.AdminID,
		Message:   msg.Message,
		IsAdmin:   msg.IsAdmin,
		CreatedAt: msg.CreatedAt.Time,
	}

	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	msg.ID = m.ID
	return nil
}

// ListByUser returns the newest messages of one conversation, oldest first.
func (r *ChatRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entities.ChatMessage, error) {
	db := GetDB(ctx, r.db)

	var ms []models.ChatMessage
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id ASC").
		Limit(limit).
		Find(&ms).Error
	if err != nil {
		return nil, err
	}

	// Reverse into chronological order for display.
	msgs := make([]*entities.ChatMessage, len(ms))
	for i := range ms {
		m := &ms[i]
		msgs[len(ms)-1-i] = &entities.ChatMessage{
			ID:        m.ID,
			UserID:    m.UserID,
			AdminID:   m.AdminID,
			Message:   m.Message,
			IsAdmin:   m.IsAdmin,
			CreatedAt: entities.NewTimestamp(m.CreatedAt),
		}
	}
	return msgs, nil
}

// ListConversations summarizes every user with at least one message, most
// recently active first.
func (r *ChatRepository) ListConversations(ctx context.Context) ([]entities.ChatConversation, error) {
	db := GetDB(ctx, r.db)

	var rows []struct {
		UserID        uuid.UUID
		FullName      string
		Email         string
		MessageCount  int64
		LastMessageAt time.Time
	}
	err := db.WithContext(ctx).Model(&models.ChatMessage{}).
		Select("chat_messages.user_id, users.full_name, users.email, COUNT(*) AS message_count, MAX(chat_messages.created_at) AS last_message_at").
		Joins("JOIN users ON users.id = chat_messages.user_id").
		Group("chat_messages.user_id, users.full_name, users.email").
		Order("last_message_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	conversations := make([]entities.ChatConversation, 0, len(rows))
	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.UserID)
		conversations = append(conversations, entities.ChatConversation{
			UserID:        row.UserID,
			FullName:      row.FullName,
			Email:         row.Email,
			LastMessageAt: entities.NewTimestamp(row.LastMessageAt),
			MessageCount:  row.MessageCount,
		})
	}
	if len(ids) == 0 {
		return conversations, nil
	}

	// One pass over the threads in chronological order leaves the latest
	// message text per user in the map.
	var ms []models.ChatMessage
	err = db.WithContext(ctx).
		Where("user_id IN ?", ids).
		Order("created_at ASC, id ASC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	latest := make(map[uuid.UUID]string, len(ids))
	for i := range ms {
		latest[ms[i].UserID] = ms[i].Message
	}
	for i := range conversations {
		conversations[i].LastMessage = latest[conversations[i].UserID]
	}
	return conversations, nil
}
