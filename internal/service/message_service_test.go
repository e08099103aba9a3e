package service

import (
	"errors"
	"testing"
	"time"

	"github.com/meetyou/meetyou-backend/internal/common"
	"github.com/meetyou/meetyou-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSendMessage_Success(t *testing.T) {
	msgRepo := new(mockMessageRepo)
	userRepo := new(mockUserRepo)
	svc := NewMessageService(msgRepo, userRepo, nil)

	userRepo.On("ExistsByID", int64(1)).Return(true, nil)
	userRepo.On("ExistsByID", int64(2)).Return(true, nil)
	msgRepo.On("Create", mock.MatchedBy(func(m *domain.Message) bool {
		return m.SenderID == 1 && m.ReceiverID == 2 && m.Content == "hi" && !m.IsRead
	})).Return(nil)

	resp, err := svc.SendMessage(1, 2, "hi")

	assert.NoError(t, err)
	assert.Equal(t, int64(1), resp.SenderID)
	assert.Equal(t, int64(2), resp.ReceiverID)
	assert.Equal(t, "hi", resp.Content)
	assert.False(t, resp.IsRead)
	msgRepo.AssertExpectations(t)
}

func TestSendMessage_BlankContent(t *testing.T) {
	svc := NewMessageService(new(mockMessageRepo), new(mockUserRepo), nil)

	for _, content := range []string{"", "   ", "\t\n"} {
		_, err := svc.SendMessage(1, 2, content)
		assert.ErrorIs(t, err, common.ErrInvalidInput)
	}
}

func TestSendMessage_SelfSend(t *testing.T) {
	svc := NewMessageService(new(mockMessageRepo), new(mockUserRepo), nil)

	// self-send is rejected before user resolution, for any content
	_, err := svc.SendMessage(7, 7, "hello me")
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestSendMessage_SenderNotFound(t *testing.T) {
	msgRepo := new(mockMessageRepo)
	userRepo := new(mockUserRepo)
	svc := NewMessageService(msgRepo, userRepo, nil)

	userRepo.On("ExistsByID", int64(1)).Return(false, nil)

	_, err := svc.SendMessage(1, 2, "hi")
	assert.ErrorIs(t, err, common.ErrUserNotFound)
	msgRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestSendMessage_ReceiverNotFound(t *testing.T) {
	msgRepo := new(mockMessageRepo)
	userRepo := new(mockUserRepo)
	svc := NewMessageService(msgRepo, userRepo, nil)

	userRepo.On("ExistsByID", int64(1)).Return(true, nil)
	userRepo.On("ExistsByID", int64(2)).Return(false, nil)

	_, err := svc.SendMessage(1, 2, "hi")
	assert.ErrorIs(t, err, common.ErrUserNotFound)
}

func TestGetConversation_Success(t *testing.T) {
	msgRepo := new(mockMessageRepo)
	userRepo := new(mockUserRepo)
	svc := NewMessageService(msgRepo, userRepo, nil)

	userRepo.On("ExistsByID", int64(1)).Return(true, nil)
	userRepo.On("ExistsByID", int64(2)).Return(true, nil)
	msgRepo.On("FindConversation", int64(1), int64(2)).Return([]*domain.Message{
		{ID: 10, SenderID: 1, ReceiverID: 2, Content: "hi", SentAt: time.Now()},
		{ID: 11, SenderID: 2, ReceiverID: 1, Content: "hey", SentAt: time.Now()},
	}, nil)

	resp, err := svc.GetConversation(1, 2)

	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, "hi", resp[0].Content)
	assert.Equal(t, "hey", resp[1].Content)
}

func TestGetConversation_UserNotFound(t *testing.T) {
	msgRepo := new(mockMessageRepo)
	userRepo := new(mockUserRepo)
	svc := NewMessageService(msgRepo, userRepo, nil)

	userRepo.On("ExistsByID", int64(1)).Return(true, nil)
	userRepo.On("ExistsByID", int64(99)).Return(false, nil)

	_, err := svc.GetConversation(1, 99)
	assert.ErrorIs(t, err, common.ErrUserNotFound)
	msgRepo.AssertNotCalled(t, "FindConversation", mock.Anything, mock.Anything)
}

func TestMarkMessagesAsRead_Success(t *testing.T) {
	msgRepo := new(mockMessageRepo)
	userRepo := new(mockUserRepo)
	svc := NewMessageService(msgRepo, userRepo, nil)

	userRepo.On("ExistsByID", int64(2)).Return(true, nil)
	userRepo.On("ExistsByID", int64(1)).Return(true, nil)
	msgRepo.On("MarkConversationRead", int64(2), int64(1)).Return(int64(3), nil)

	err := svc.MarkMessagesAsRead(2, 1)

	assert.NoError(t, err)
	msgRepo.AssertExpectations(t)
}

func TestMarkMessagesAsRead_InterlocutorNotFound(t *testing.T) {
	msgRepo := new(mockMessageRepo)
	userRepo := new(mockUserRepo)
	svc := NewMessageService(msgRepo, userRepo, nil)

	userRepo.On("ExistsByID", int64(2)).Return(true, nil)
	userRepo.On("ExistsByID", int64(5)).Return(false, nil)

	err := svc.MarkMessagesAsRead(2, 5)
	assert.ErrorIs(t, err, common.ErrUserNotFound)
}

func TestGetUnreadMessagesCount_Success(t *testing.T) {
	msgRepo := new(mockMessageRepo)
	userRepo := new(mockUserRepo)
	svc := NewMessageService(msgRepo, userRepo, nil)

	userRepo.On("ExistsByID", int64(2)).Return(true, nil)
	msgRepo.On("CountUnread", int64(2)).Return(int64(4), nil)

	count, err := svc.GetUnreadMessagesCount(2)

	assert.NoError(t, err)
	assert.Equal(t, int64(4), count)
}

func TestGetUnreadMessagesCount_UserNotFound(t *testing.T) {
	svc := NewMessageService(new(mockMessageRepo), func() *mockUserRepo {
		m := new(mockUserRepo)
		m.On("ExistsByID", int64(42)).Return(false, nil)
		return m
	}(), nil)

	_, err := svc.GetUnreadMessagesCount(42)
	assert.ErrorIs(t, err, common.ErrUserNotFound)
}

func TestGetUnreadMessagesCount_RepoError(t *testing.T) {
	msgRepo := new(mockMessageRepo)
	userRepo := new(mockUserRepo)
	svc := NewMessageService(msgRepo, userRepo, nil)

	userRepo.On("ExistsByID", int64(2)).Return(true, nil)
	msgRepo.On("CountUnread", int64(2)).Return(int64(0), errors.New("db down"))

	_, err := svc.GetUnreadMessagesCount(2)
	assert.Error(t, err)
}
