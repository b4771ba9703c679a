package handlers

import (
	"net/http"

	"hireflow/internal/api/middleware"
	"hireflow/internal/services"
	"hireflow/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CompanyHandler holds dependencies for the company-side dashboard,
// listing management and application review operations.
type CompanyHandler struct {
	jobs         services.JobService
	applications services.ApplicationService
	validator    *validator.Validate
}

// NewCompanyHandler creates a new CompanyHandler.
func NewCompanyHandler(jobs services.JobService, applications services.ApplicationService, validate *validator.Validate) *CompanyHandler {
	return &CompanyHandler{
		jobs:         jobs,
		applications: applications,
		validator:    validate,
	}
}

// DashboardStats returns aggregate counts for the calling company.
func (h *CompanyHandler) DashboardStats(c *gin.Context) {
	user, err := middleware.GetCurrentUser(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	stats, err := h.jobs.DashboardStats(c.Request.Context(), &dto.DashboardStatsRequest{CompanyID: user.ID})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// ListCompanyJobs returns every listing owned by the caller, any status.
func (h *CompanyHandler) ListCompanyJobs(c *gin.Context) {
	user, err := middleware.GetCurrentUser(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	jobs, err := h.jobs.ListCompanyJobs(c.Request.Context(), &dto.ListJobsByCompanyRequest{CompanyID: user.ID})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	responses := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		responses = append(responses, services.MapJobToResponse(&jobs[i]))
	}

	c.JSON(http.StatusOK, responses)
}

// ListJobApplications returns the applications on one of the caller's
// listings, newest first.
func (h *CompanyHandler) ListJobApplications(c *gin.Context) {
	user, err := middleware.GetCurrentUser(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	jobID, err := uuid.Parse(c.Param("jobId"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid job ID format")
		return
	}

	apps, err := h.applications.ListApplicationsByJob(c.Request.Context(), &dto.ListApplicationsByJobRequest{JobID: jobID, UserID: user.ID})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	responses := make([]dto.ApplicationResponse, 0, len(apps))
	for i := range apps {
		responses = append(responses, services.MapApplicationToResponse(&apps[i]))
	}

	c.JSON(http.StatusOK, responses)
}

// UpdateApplicationStatus sets a new status and optionally notes on an
// application to one of the caller's listings.
func (h *CompanyHandler) UpdateApplicationStatus(c *gin.Context) {
	user, err := middleware.GetCurrentUser(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	appID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid application ID format")
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	req.ID = appID
	req.UserID = user.ID
	if err := h.validator.Struct(req); err != nil {
		respondValidationError(c, FormatValidationErrors(err))
		return
	}

	app, err := h.applications.UpdateStatus(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, services.MapApplicationToResponse(app))
}
