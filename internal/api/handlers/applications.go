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

// ApplicationHandler holds dependencies for job seeker application
// operations.
type ApplicationHandler struct {
	service   services.ApplicationService
	validator *validator.Validate
}

// NewApplicationHandler creates a new ApplicationHandler.
func NewApplicationHandler(service services.ApplicationService, validate *validator.Validate) *ApplicationHandler {
	return &ApplicationHandler{
		service:   service,
		validator: validate,
	}
}

// Apply submits an application to a job on behalf of the caller.
func (h *ApplicationHandler) Apply(c *gin.Context) {
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

	var req dto.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	req.JobID = jobID
	req.ApplicantID = user.ID
	if err := h.validator.Struct(req); err != nil {
		respondValidationError(c, FormatValidationErrors(err))
		return
	}

	app, err := h.service.Apply(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, services.MapApplicationToResponse(app))
}

// ListMyApplications returns the caller's applications, newest first.
func (h *ApplicationHandler) ListMyApplications(c *gin.Context) {
	user, err := middleware.GetCurrentUser(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	apps, err := h.service.ListMyApplications(c.Request.Context(), &dto.ListMyApplicationsRequest{ApplicantID: user.ID})
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

// HasApplied reports whether the caller already applied to a job.
func (h *ApplicationHandler) HasApplied(c *gin.Context) {
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

	applied, err := h.service.HasApplied(c.Request.Context(), &dto.HasAppliedRequest{JobID: jobID, ApplicantID: user.ID})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.HasAppliedResponse{HasApplied: applied})
}
