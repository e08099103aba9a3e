package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/meetyou/meetyou-backend/internal/common"
	"github.com/meetyou/meetyou-backend/internal/domain"
	"github.com/meetyou/meetyou-backend/internal/service"
)

// MessageHandler handles direct message HTTP requests
type MessageHandler struct {
	service service.MessageService
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(service service.MessageService) *MessageHandler {
	return &MessageHandler{service: service}
}

// SendMessage handles POST /messages
// @Summary Send a direct message
// @Tags messages
// @Accept json
// @Produce json
// @Param request body domain.SendMessageRequest true "message"
// @Success 200 {object} common.APIResponse{data=domain.MessageResponse}
// @Router /messages [post]
func (h *MessageHandler) SendMessage(c *gin.Context) {
	var req domain.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	result, err := h.service.SendMessage(req.SenderID, req.ReceiverID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	common.SuccessResponse(c, result, nil)
}

// GetConversation handles GET /messages/conversation
// @Summary Conversation between two users
// @Tags messages
// @Produce json
// @Param user1_id query int true "first user"
// @Param user2_id query int true "second user"
// @Success 200 {object} common.APIResponse{data=[]domain.MessageResponse}
// @Router /messages/conversation [get]
func (h *MessageHandler) GetConversation(c *gin.Context) {
	user1ID, ok := queryID(c, "user1_id")
	if !ok {
		return
	}
	user2ID, ok := queryID(c, "user2_id")
	if !ok {
		return
	}

	result, err := h.service.GetConversation(user1ID, user2ID)
	if err != nil {
		respondError(c, err)
		return
	}

	common.SuccessResponse(c, result, &common.Meta{Total: int64(len(result))})
}

// MarkAsRead handles PUT /messages/read
// @Summary Mark messages from an interlocutor as read
// @Tags messages
// @Produce json
// @Param user_id query int true "receiving user"
// @Param interlocutor_id query int true "sending user"
// @Success 200 {object} common.APIResponse
// @Router /messages/read [put]
func (h *MessageHandler) MarkAsRead(c *gin.Context) {
	userID, ok := queryID(c, "user_id")
	if !ok {
		return
	}
	interlocutorID, ok := queryID(c, "interlocutor_id")
	if !ok {
		return
	}

	if err := h.service.MarkMessagesAsRead(userID, interlocutorID); err != nil {
		respondError(c, err)
		return
	}

	common.SuccessResponse(c, gin.H{"marked": true}, nil)
}

// GetUnreadCount handles GET /messages/unread/count
// @Summary Unread message count for a user
// @Tags messages
// @Produce json
// @Param user_id query int true "user"
// @Success 200 {object} common.APIResponse
// @Router /messages/unread/count [get]
func (h *MessageHandler) GetUnreadCount(c *gin.Context) {
	userID, ok := queryID(c, "user_id")
	if !ok {
		return
	}

	count, err := h.service.GetUnreadMessagesCount(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	common.SuccessResponse(c, gin.H{"unread_count": count}, nil)
}
