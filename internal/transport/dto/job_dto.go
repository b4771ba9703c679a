package dto

import (
	"time"

	"hireflow/internal/models"

	"github.com/google/uuid"
)

// --- Job Request DTOs ---

// CreateJobRequest defines the structure for creating a new job listing.
type CreateJobRequest struct {
	Title        string             `json:"title" validate:"required,max=255"`
	Description  string             `json:"description" validate:"required"`
	Requirements string             `json:"requirements"`
	Location     string             `json:"location" validate:"required,max=255"`
	Salary       string             `json:"salary" validate:"omitempty,max=100"`
	Type         models.JobType     `json:"type" validate:"required,oneof=FULL_TIME PART_TIME CONTRACT INTERNSHIP REMOTE"`
	Level        models.JobLevel    `json:"level" validate:"required,oneof=ENTRY_LEVEL MID_LEVEL SENIOR LEAD EXECUTIVE"`
	Category     models.JobCategory `json:"category" validate:"required,oneof=ENGINEERING DESIGN MARKETING DATA PRODUCT SALES OPERATIONS HR FINANCE OTHER"`
	Skills       []string           `json:"skills"`
	Benefits     []string           `json:"benefits"`
	Deadline     *time.Time         `json:"deadline,omitempty"` // Defaults to 30 days out when absent
	Status       *models.JobStatus  `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE CLOSED DRAFT"`
	CompanyID    uuid.UUID          `json:"-"` // Set internally by handler from auth context
}

// GetJobByIDRequest defines the structure for getting a job by ID.
type GetJobByIDRequest struct {
	ID uuid.UUID `json:"-" validate:"required"`
}

// ListJobsRequest defines parameters for the public filtered listing.
// All filters are optional and conjunctive. Page is 0-based.
type ListJobsRequest struct {
	Search   string `form:"search"`
	Type     string `form:"type"`
	Level    string `form:"level"`
	Category string `form:"category"`
	Location string `form:"location"`
	Page     int    `form:"page,default=0" validate:"omitempty,gte=0"`
	Size     int    `form:"size,default=10" validate:"omitempty,gt=0,lte=100"`
}

// ListJobsByCompanyRequest defines parameters for a company's own listings.
type ListJobsByCompanyRequest struct {
	CompanyID uuid.UUID `json:"-" validate:"required"` // Set internally by handler
}

// UpdateJobRequest defines a partial patch of a job. Absent fields are
// left untouched, not cleared.
type UpdateJobRequest struct {
	ID     uuid.UUID `json:"-" validate:"required"` // From URL path
	UserID uuid.UUID `json:"-"`                     // Set from auth context for ownership check

	Title        *string             `json:"title,omitempty" validate:"omitempty,max=255"`
	Description  *string             `json:"description,omitempty"`
	Requirements *string             `json:"requirements,omitempty"`
	Location     *string             `json:"location,omitempty" validate:"omitempty,max=255"`
	Salary       *string             `json:"salary,omitempty" validate:"omitempty,max=100"`
	Type         *models.JobType     `json:"type,omitempty" validate:"omitempty,oneof=FULL_TIME PART_TIME CONTRACT INTERNSHIP REMOTE"`
	Level        *models.JobLevel    `json:"level,omitempty" validate:"omitempty,oneof=ENTRY_LEVEL MID_LEVEL SENIOR LEAD EXECUTIVE"`
	Category     *models.JobCategory `json:"category,omitempty" validate:"omitempty,oneof=ENGINEERING DESIGN MARKETING DATA PRODUCT SALES OPERATIONS HR FINANCE OTHER"`
	Skills       *[]string           `json:"skills,omitempty"`
	Benefits     *[]string           `json:"benefits,omitempty"`
	Deadline     *time.Time          `json:"deadline,omitempty"`
	Status       *models.JobStatus   `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE CLOSED DRAFT"`
}

// DeleteJobRequest defines the structure for deleting a job.
type DeleteJobRequest struct {
	ID     uuid.UUID `json:"-" validate:"required"`
	UserID uuid.UUID `json:"-"` // Set from auth context for ownership check
}

// DashboardStatsRequest scopes aggregate stats to the calling company.
type DashboardStatsRequest struct {
	CompanyID uuid.UUID `json:"-" validate:"required"`
}

// --- Job Response DTOs ---

// JobResponse defines the standard job data returned to the client.
type JobResponse struct {
	ID               uuid.UUID          `json:"id"`
	Title            string             `json:"title"`
	Description      string             `json:"description"`
	Requirements     string             `json:"requirements"`
	Location         string             `json:"location"`
	Salary           string             `json:"salary"`
	Type             models.JobType     `json:"type"`
	Level            models.JobLevel    `json:"level"`
	Category         models.JobCategory `json:"category"`
	Skills           []string           `json:"skills"`
	Benefits         []string           `json:"benefits"`
	Deadline         time.Time          `json:"deadline"`
	Status           models.JobStatus   `json:"status"`
	CompanyID        uuid.UUID          `json:"companyId"`
	CompanyName      string             `json:"companyName"`
	ApplicationCount int                `json:"applicationCount"`
	CreatedAt        time.Time          `json:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt"`
}

// JobPageResponse is the paginated envelope for job listings.
type JobPageResponse struct {
	Content       []JobResponse `json:"content"`
	Page          int           `json:"page"`
	Size          int           `json:"size"`
	TotalElements int64         `json:"totalElements"`
	TotalPages    int           `json:"totalPages"`
	Last          bool          `json:"last"`
}

// DashboardStatsResponse aggregates a company's listing and application
// activity.
type DashboardStatsResponse struct {
	TotalJobs               int64 `json:"totalJobs"`
	ActiveJobs              int64 `json:"activeJobs"`
	ClosedJobs              int64 `json:"closedJobs"`
	TotalApplications       int64 `json:"totalApplications"`
	NewApplicationsThisWeek int64 `json:"newApplicationsThisWeek"`
}
