package routes

import (
	"hireflow/internal/api/handlers"
	"hireflow/internal/api/middleware"
	"hireflow/internal/models"

	"github.com/gin-gonic/gin"
)

// RegisterApplicationRoutes registers the job seeker side of the
// application workflow. Every route requires an authenticated JOBSEEKER.
func RegisterApplicationRoutes(
	rg *gin.RouterGroup,
	applicationHandler handlers.ApplicationHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	applications := rg.Group("/applications")
	applications.Use(authMiddleware, middleware.RequireRole(models.RoleJobSeeker))
	{
		applications.POST("/jobs/:jobId", applicationHandler.Apply)
		applications.GET("/jobs/:jobId/check", applicationHandler.HasApplied)
		applications.GET("/my", applicationHandler.ListMyApplications)
	}
}
