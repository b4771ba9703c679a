package routes

import (
	"hireflow/internal/api/handlers"
	"hireflow/internal/api/middleware"
	"hireflow/internal/models"

	"github.com/gin-gonic/gin"
)

// RegisterCompanyRoutes registers the company dashboard and application
// review routes. Every route requires an authenticated COMPANY account;
// ownership of the touched job is checked in the service layer.
func RegisterCompanyRoutes(
	rg *gin.RouterGroup,
	companyHandler handlers.CompanyHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	company := rg.Group("/company")
	company.Use(authMiddleware, middleware.RequireRole(models.RoleCompany))
	{
		company.GET("/dashboard", companyHandler.DashboardStats)
		company.GET("/jobs", companyHandler.ListCompanyJobs)
		company.GET("/jobs/:jobId/applications", companyHandler.ListJobApplications)
		company.PATCH("/applications/:id/status", companyHandler.UpdateApplicationStatus)
	}
}
