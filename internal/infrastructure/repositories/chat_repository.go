package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/mahir-soa/FYP/domain"
)

// ConversationRepositoryImpl implements domain.ConversationRepository using GORM
type ConversationRepositoryImpl struct {
	db *gorm.DB
}

// DBConversation represents the database model for a chat conversation
type DBConversation struct {
	ID        uint   `gorm:"primaryKey"`
	Title     string `gorm:"size:255"`
	UserID    uint   `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (DBConversation) TableName() string {
	return "chat_conversations"
}

// DBMessage represents the database model for a chat message
type DBMessage struct {
	ID             uint   `gorm:"primaryKey"`
	ConversationID uint   `gorm:"index"`
	Role           string `gorm:"size:16"`
	Content        string `gorm:"type:text"`
	CreatedAt      time.Time
}

// TableName returns the table name for GORM
func (DBMessage) TableName() string {
	return "chat_messages"
}

// NewConversationRepository creates a new conversation repository
func NewConversationRepository(db *gorm.DB) domain.ConversationRepository {
	return &ConversationRepositoryImpl{db: db}
}

// FindAll implements domain.ConversationRepository
func (r *ConversationRepositoryImpl) FindAll(ctx context.Context) ([]domain.Conversation, error) {
	var dbConvs []DBConversation
	if err := r.db.WithContext(ctx).Order("updated_at DESC").Find(&dbConvs).Error; err != nil {
		return nil, err
	}
	convs := make([]domain.Conversation, 0, len(dbConvs))
	for i := range dbConvs {
		convs = append(convs, *r.dbToDomain(&dbConvs[i]))
	}
	return convs, nil
}

// FindByID implements domain.ConversationRepository
func (r *ConversationRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Conversation, error) {
	var dbConv DBConversation
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbConv).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrConversationNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbConv), nil
}

// Create implements domain.ConversationRepository
func (r *ConversationRepositoryImpl) Create(ctx context.Context, conv *domain.Conversation) error {
	dbConv := &DBConversation{Title: conv.Title, UserID: conv.UserID}
	if err := r.db.WithContext(ctx).Create(dbConv).Error; err != nil {
		return err
	}
	conv.ID = dbConv.ID
	conv.CreatedAt = dbConv.CreatedAt
	conv.UpdatedAt = dbConv.UpdatedAt
	return nil
}

// Update implements domain.ConversationRepository
func (r *ConversationRepositoryImpl) Update(ctx context.Context, conv *domain.Conversation) error {
	return r.db.WithContext(ctx).Model(&DBConversation{ID: conv.ID}).
		Updates(map[string]interface{}{"title": conv.Title, "updated_at": time.Now()}).Error
}

// Delete implements domain.ConversationRepository. Messages are removed with
// their conversation.
func (r *ConversationRepositoryImpl) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Where("conversation_id = ?", id).Delete(&DBMessage{}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(&DBConversation{}, id).Error
}

// FindMessages implements domain.ConversationRepository, oldest first
func (r *ConversationRepositoryImpl) FindMessages(ctx context.Context, conversationID uint) ([]domain.Message, error) {
	var dbMsgs []DBMessage
	err := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC").
		Find(&dbMsgs).Error
	if err != nil {
		return nil, err
	}
	msgs := make([]domain.Message, 0, len(dbMsgs))
	for _, m := range dbMsgs {
		msgs = append(msgs, domain.Message{
			ID:             m.ID,
			ConversationID: m.ConversationID,
			Role:           m.Role,
			Content:        m.Content,
			CreatedAt:      m.CreatedAt,
		})
	}
	return msgs, nil
}

// AddMessage implements domain.ConversationRepository
func (r *ConversationRepositoryImpl) AddMessage(ctx context.Context, msg *domain.Message) error {
	dbMsg := &DBMessage{
		ConversationID: msg.ConversationID,
		Role:           msg.Role,
		Content:        msg.Content,
	}
	if err := r.db.WithContext(ctx).Create(dbMsg).Error; err != nil {
		return err
	}
	msg.ID = dbMsg.ID
	msg.CreatedAt = dbMsg.CreatedAt
	return nil
}

func (r *ConversationRepositoryImpl) dbToDomain(c *DBConversation) *domain.Conversation {
	return &domain.Conversation{
		ID:        c.ID,
		Title:     c.Title,
		UserID:    c.UserID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
