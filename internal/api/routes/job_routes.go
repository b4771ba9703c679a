package routes

import (
	"hireflow/internal/api/handlers"
	"hireflow/internal/api/middleware"
	"hireflow/internal/models"

	"github.com/gin-gonic/gin"
)

// RegisterJobRoutes registers all routes related to job listings. The
// listing and detail reads are public; every write requires an
// authenticated COMPANY account.
func RegisterJobRoutes(
	rg *gin.RouterGroup,
	jobHandler handlers.JobHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	jobs := rg.Group("/jobs")
	{
		jobs.GET("", jobHandler.ListJobs)
		jobs.GET("/:id", jobHandler.GetJobByID)

		companyOnly := jobs.Group("")
		companyOnly.Use(authMiddleware, middleware.RequireRole(models.RoleCompany))
		{
			companyOnly.POST("", jobHandler.CreateJob)
			companyOnly.PUT("/:id", jobHandler.UpdateJob)
			companyOnly.DELETE("/:id", jobHandler.DeleteJob)
		}
	}
}
