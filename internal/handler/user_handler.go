package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/meetyou/meetyou-backend/internal/common"
	"github.com/meetyou/meetyou-backend/internal/domain"
	"github.com/meetyou/meetyou-backend/internal/service"
)

// UserHandler handles user profile and interest HTTP requests
type UserHandler struct {
	service service.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// GetUser handles GET /users/:user_id
// @Summary Get a user profile
// @Tags users
// @Produce json
// @Param user_id path int true "user"
// @Success 200 {object} common.APIResponse{data=domain.UserResponse}
// @Router /users/{user_id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	result, err := h.service.GetUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	common.SuccessResponse(c, result, nil)
}

// SearchByInterest handles GET /users/search/interest
// @Summary Users having an interest
// @Tags users
// @Produce json
// @Param name query string true "interest name"
// @Success 200 {object} common.APIResponse{data=[]domain.UserResponse}
// @Router /users/search/interest [get]
func (h *UserHandler) SearchByInterest(c *gin.Context) {
	result, err := h.service.SearchByInterest(c.Query("name"))
	if err != nil {
		respondError(c, err)
		return
	}

	common.SuccessResponse(c, result, &common.Meta{Total: int64(len(result))})
}

// SearchByAllInterests handles GET /users/search/interests/all
// @Summary Users having all of the given interests
// @Tags users
// @Produce json
// @Param names query string true "comma-separated interest names"
// @Success 200 {object} common.APIResponse{data=[]domain.UserResponse}
// @Router /users/search/interests/all [get]
func (h *UserHandler) SearchByAllInterests(c *gin.Context) {
	result, err := h.service.SearchByAllInterests(splitNames(c.Query("names")))
	if err != nil {
		respondError(c, err)
		return
	}

	common.SuccessResponse(c, result, &common.Meta{Total: int64(len(result))})
}

// SearchByAnyInterests handles GET /users/search/interests/any
// @Summary Users having any of the given interests
// @Tags users
// @Produce json
// @Param names query string true "comma-separated interest names"
// @Success 200 {object} common.APIResponse{data=[]domain.UserResponse}
// @Router /users/search/interests/any [get]
func (h *UserHandler) SearchByAnyInterests(c *gin.Context) {
	result, err := h.service.SearchByAnyInterests(splitNames(c.Query("names")))
	if err != nil {
		respondError(c, err)
		return
	}

	common.SuccessResponse(c, result, &common.Meta{Total: int64(len(result))})
}

// AddInterest handles POST /users/:user_id/interests
// @Summary Attach an interest to a user
// @Tags users
// @Accept json
// @Produce json
// @Param user_id path int true "user"
// @Param request body domain.AddInterestRequest true "interest"
// @Success 200 {object} common.APIResponse{data=domain.UserResponse}
// @Router /users/{user_id}/interests [post]
func (h *UserHandler) AddInterest(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	var req domain.AddInterestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	result, err := h.service.AddInterest(userID, req.InterestType)
	if err != nil {
		respondError(c, err)
		return
	}

	common.SuccessResponse(c, result, nil)
}

// RemoveInterest handles DELETE /users/:user_id/interests
// @Summary Detach an interest from a user
// @Tags users
// @Produce json
// @Param user_id path int true "user"
// @Param name query string true "interest name"
// @Success 200 {object} common.APIResponse
// @Router /users/{user_id}/interests [delete]
func (h *UserHandler) RemoveInterest(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	if err := h.service.RemoveInterest(userID, c.Query("name")); err != nil {
		respondError(c, err)
		return
	}

	common.SuccessResponse(c, gin.H{"removed": true}, nil)
}

// ListInterests handles GET /interests
// @Summary List the interest catalog
// @Tags interests
// @Produce json
// @Success 200 {object} common.APIResponse{data=[]domain.InterestResponse}
// @Router /interests [get]
func (h *UserHandler) ListInterests(c *gin.Context) {
	result, err := h.service.ListInterests()
	if err != nil {
		respondError(c, err)
		return
	}

	common.SuccessResponse(c, result, &common.Meta{Total: int64(len(result))})
}

// CreateInterest handles POST /interests
// @Summary Create an interest
// @Tags interests
// @Accept json
// @Produce json
// @Param request body domain.AddInterestRequest true "interest"
// @Success 201 {object} common.APIResponse{data=domain.InterestResponse}
// @Router /interests [post]
func (h *UserHandler) CreateInterest(c *gin.Context) {
	var req domain.AddInterestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	result, err := h.service.CreateInterest(req.InterestType)
	if err != nil {
		respondError(c, err)
		return
	}

	common.CreatedResponse(c, result)
}

// splitNames splits a comma-separated list, dropping empty entries
func splitNames(raw string) []string {
	var names []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	return names
}
