package routes

import (
	"hireflow/internal/api/handlers"
	"hireflow/internal/api/middleware"
	"hireflow/internal/app"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up the API routes by calling resource-specific
// registration functions.
func RegisterRoutes(router *gin.Engine, app *app.Application) {

	// --- Base API Group ---
	api := router.Group("/api")

	// Create handlers
	authHandler := handlers.NewAuthHandler(app.AuthService, app.Validator)
	userHandler := handlers.NewUserHandler(app.UserService, app.Validator)
	jobHandler := handlers.NewJobHandler(app.JobService, app.Validator)
	applicationHandler := handlers.NewApplicationHandler(app.ApplicationService, app.Validator)
	companyHandler := handlers.NewCompanyHandler(app.JobService, app.ApplicationService, app.Validator)
	fileHandler := handlers.NewFileHandler(&app.Config.Upload)

	// --- Middleware ---
	authMiddleware := middleware.JWTAuthMiddleware(app.Config.JWT.Secret, app.UserRepo)

	// --- Register Resource Routes ---
	RegisterAuthRoutes(api, authHandler, authMiddleware)
	RegisterUserRoutes(api, userHandler, authMiddleware)
	RegisterJobRoutes(api, jobHandler, authMiddleware)
	RegisterApplicationRoutes(api, applicationHandler, authMiddleware)
	RegisterCompanyRoutes(api, companyHandler, authMiddleware)
	RegisterFileRoutes(api, fileHandler, authMiddleware)

	// --- Health Check ---
	router.GET("/health", handlers.HealthCheck)
}
