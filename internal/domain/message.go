package domain

import "time"

// Message represents a direct message between two users (messages table)
type Message struct {
	SentAt     time.Time `gorm:"column:sent_at;index" json:"sent_at"`
	Content    string    `gorm:"column:content;type:text;not null" json:"content"`
	SenderID   int64     `gorm:"column:sender_id;index;not null" json:"sender_id"`
	ReceiverID int64     `gorm:"column:receiver_id;index;not null" json:"receiver_id"`
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	IsRead     bool      `gorm:"column:is_read;default:false" json:"is_read"`
}

func (Message) TableName() string {
	return "messages"
}

// SendMessageRequest represents a send message request
type SendMessageRequest struct {
	Content    string `json:"content" binding:"required"`
	SenderID   int64  `json:"sender_id" binding:"required"`
	ReceiverID int64  `json:"receiver_id" binding:"required"`
}

// MessageResponse represents a message in API responses
type MessageResponse struct {
	SentAt     string `json:"sent_at"`
	Content    string `json:"content"`
	SenderID   int64  `json:"sender_id"`
	ReceiverID int64  `json:"receiver_id"`
	ID         int64  `json:"id"`
	IsRead     bool   `json:"is_read"`
}

// ToResponse converts Message to MessageResponse
func (m *Message) ToResponse() *MessageResponse {
	return &MessageResponse{
		ID:         m.ID,
		Content:    m.Content,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		SentAt:     m.SentAt.Format("2006-01-02 15:04:05"),
		IsRead:     m.IsRead,
	}
}
