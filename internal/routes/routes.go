package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/meetyou/meetyou-backend/internal/handler"
)

// Setup configures all API routes
func Setup(
	router *gin.Engine,
	userHandler *handler.UserHandler,
	messageHandler *handler.MessageHandler,
	photoHandler *handler.PhotoHandler,
) {
	api := router.Group("/api/v1")

	// Users and interests
	users := api.Group("/users")
	users.GET("/search/interest", userHandler.SearchByInterest)
	users.GET("/search/interests/all", userHandler.SearchByAllInterests)
	users.GET("/search/interests/any", userHandler.SearchByAnyInterests)
	users.GET("/:user_id", userHandler.GetUser)
	users.POST("/:user_id/interests", userHandler.AddInterest)
	users.DELETE("/:user_id/interests", userHandler.RemoveInterest)

	interests := api.Group("/interests")
	interests.GET("", userHandler.ListInterests)
	interests.POST("", userHandler.CreateInterest)

	// Direct messages
	messages := api.Group("/messages")
	messages.POST("", messageHandler.SendMessage)
	messages.GET("/conversation", messageHandler.GetConversation)
	messages.PUT("/read", messageHandler.MarkAsRead)
	messages.GET("/unread/count", messageHandler.GetUnreadCount)

	// Photos (nested under users)
	photos := users.Group("/:user_id/photos")
	photos.POST("", photoHandler.AddPhoto)
	photos.POST("/batch", photoHandler.AddMultiplePhotos)
	photos.GET("", photoHandler.GetAllUserPhotos)
	photos.GET("/:photo_id", photoHandler.GetPhotoByID)
	photos.PUT("/:photo_id", photoHandler.UpdatePhoto)
	photos.DELETE("/:photo_id", photoHandler.DeletePhoto)
	photos.PUT("/:photo_id/main", photoHandler.SetPhotoAsMain)
}
