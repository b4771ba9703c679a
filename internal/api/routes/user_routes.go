package routes

import (
	"hireflow/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers the self-profile routes. Both roles may
// read and patch their own profile.
func RegisterUserRoutes(
	rg *gin.RouterGroup,
	userHandler handlers.UserHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	users := rg.Group("/users")
	users.Use(authMiddleware)
	{
		users.GET("/profile", userHandler.GetProfile)
		users.PUT("/profile", userHandler.UpdateProfile)
	}
}
