package repository

import (
	"github.com/meetyou/meetyou-backend/internal/domain"
	"gorm.io/gorm"
)

// MessageRepository message data access interface
type MessageRepository interface {
	Create(msg *domain.Message) error
	FindConversation(user1ID, user2ID int64) ([]*domain.Message, error)
	FindUnread(receiverID, senderID int64) ([]*domain.Message, error)
	MarkConversationRead(receiverID, senderID int64) (int64, error)
	CountUnread(receiverID int64) (int64, error)
}

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

// Create creates a new message
func (r *messageRepository) Create(msg *domain.Message) error {
	return r.db.Create(msg).Error
}

// FindConversation returns all messages exchanged between the two users in
// chronological order
func (r *messageRepository) FindConversation(user1ID, user2ID int64) ([]*domain.Message, error) {
	var messages []*domain.Message
	err := r.db.
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			user1ID, user2ID, user2ID, user1ID).
		Order("sent_at ASC, id ASC").
		Find(&messages).Error
	return messages, err
}

// FindUnread returns unread messages addressed to receiverID from senderID
func (r *messageRepository) FindUnread(receiverID, senderID int64) ([]*domain.Message, error) {
	var messages []*domain.Message
	err := r.db.
		Where("receiver_id = ? AND sender_id = ? AND is_read = ?", receiverID, senderID, false).
		Order("sent_at ASC, id ASC").
		Find(&messages).Error
	return messages, err
}

// MarkConversationRead flips every unread message from senderID to receiverID
// in a single batch update; returns the number of rows affected
func (r *messageRepository) MarkConversationRead(receiverID, senderID int64) (int64, error) {
	result := r.db.Model(&domain.Message{}).
		Where("receiver_id = ? AND sender_id = ? AND is_read = ?", receiverID, senderID, false).
		Update("is_read", true)
	return result.RowsAffected, result.Error
}

// CountUnread counts unread messages addressed to receiverID
func (r *messageRepository) CountUnread(receiverID int64) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Message{}).
		Where("receiver_id = ? AND is_read = ?", receiverID, false).
		Count(&count).Error
	return count, err
}
