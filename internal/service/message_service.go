package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/meetyou/meetyou-backend/internal/common"
	"github.com/meetyou/meetyou-backend/internal/domain"
	"github.com/meetyou/meetyou-backend/internal/repository"
	"github.com/meetyou/meetyou-backend/pkg/cache"
)

// MessageService business logic for direct messages
type MessageService interface {
	SendMessage(senderID, receiverID int64, content string) (*domain.MessageResponse, error)
	GetConversation(user1ID, user2ID int64) ([]*domain.MessageResponse, error)
	MarkMessagesAsRead(userID, interlocutorID int64) error
	GetUnreadMessagesCount(userID int64) (int64, error)
}

type messageService struct {
	repo     repository.MessageRepository
	userRepo repository.UserRepository
	cache    cache.Service
}

// NewMessageService creates a new MessageService. cacheService may be nil;
// unread counters then always hit the database.
func NewMessageService(repo repository.MessageRepository, userRepo repository.UserRepository, cacheService cache.Service) MessageService {
	return &messageService{
		repo:     repo,
		userRepo: userRepo,
		cache:    cacheService,
	}
}

// SendMessage sends a direct message from senderID to receiverID
func (s *messageService) SendMessage(senderID, receiverID int64, content string) (*domain.MessageResponse, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: message content cannot be empty", common.ErrInvalidInput)
	}
	if senderID == receiverID {
		return nil, fmt.Errorf("%w: cannot send a message to yourself", common.ErrInvalidInput)
	}

	if err := s.requireUser(senderID, "sender"); err != nil {
		return nil, err
	}
	if err := s.requireUser(receiverID, "receiver"); err != nil {
		return nil, err
	}

	msg := &domain.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
		SentAt:     time.Now(),
	}

	if err := s.repo.Create(msg); err != nil {
		return nil, err
	}

	s.invalidateUnread(receiverID)

	return msg.ToResponse(), nil
}

// GetConversation returns all messages between the two users in chronological
// order
func (s *messageService) GetConversation(user1ID, user2ID int64) ([]*domain.MessageResponse, error) {
	if err := s.requireUser(user1ID, "user"); err != nil {
		return nil, err
	}
	if err := s.requireUser(user2ID, "user"); err != nil {
		return nil, err
	}

	messages, err := s.repo.FindConversation(user1ID, user2ID)
	if err != nil {
		return nil, err
	}

	responses := make([]*domain.MessageResponse, len(messages))
	for i, m := range messages {
		responses[i] = m.ToResponse()
	}
	return responses, nil
}

// MarkMessagesAsRead marks every unread message sent to userID by
// interlocutorID as read, in one batch
func (s *messageService) MarkMessagesAsRead(userID, interlocutorID int64) error {
	if err := s.requireUser(userID, "user"); err != nil {
		return err
	}
	if err := s.requireUser(interlocutorID, "interlocutor"); err != nil {
		return err
	}

	if _, err := s.repo.MarkConversationRead(userID, interlocutorID); err != nil {
		return err
	}

	s.invalidateUnread(userID)
	return nil
}

// GetUnreadMessagesCount returns the number of unread messages addressed to
// userID, served from the cache when possible
func (s *messageService) GetUnreadMessagesCount(userID int64) (int64, error) {
	if err := s.requireUser(userID, "user"); err != nil {
		return 0, err
	}

	if s.cache != nil {
		if count, err := s.cache.GetUnreadCount(context.Background(), userID); err == nil {
			return count, nil
		}
	}

	count, err := s.repo.CountUnread(userID)
	if err != nil {
		return 0, err
	}

	if s.cache != nil {
		s.cache.SetUnreadCount(context.Background(), userID, count) //nolint:errcheck
	}
	return count, nil
}

func (s *messageService) requireUser(id int64, role string) error {
	exists, err := s.userRepo.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %s with id %d", common.ErrUserNotFound, role, id)
	}
	return nil
}

func (s *messageService) invalidateUnread(userID int64) {
	if s.cache != nil {
		s.cache.InvalidateUnreadCount(context.Background(), userID) //nolint:errcheck
	}
}
