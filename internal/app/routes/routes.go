package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prabal/classhub/internal/app/controllers"
	"github.com/prabal/classhub/internal/middleware"
)

// SetupRouter configures all application routes.
func SetupRouter(
	router *gin.Engine,
	userController *controllers.UserController,
	roomController *controllers.RoomController,
	contentController *controllers.ContentController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	v1.POST("/users", userController.AddUser)
	v1.GET("/users/:uname/rooms", userController.ListRooms)

	v1.POST("/rooms", roomController.CreateRoom)
	v1.GET("/rooms/:code", roomController.GetRoom)

	// --- Authenticated routes ---
	// Authentication is checked before any handler logic so the 401 path
	// never touches membership or room state.
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.RequireAuth())
	{
		authenticated.POST("/rooms/join", userController.JoinRoom)

		rooms := authenticated.Group("/rooms/:code")
		{
			rooms.POST("/posts", contentController.CreatePost)
			rooms.GET("/posts", contentController.ListPosts)
			rooms.POST("/announcements", contentController.CreateAnnouncement)
			rooms.GET("/announcements", contentController.ListAnnouncements)
		}
	}
}
