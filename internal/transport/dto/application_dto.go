package dto

import (
	"time"

	"hireflow/internal/models"

	"github.com/google/uuid"
)

// ApplyRequest defines the structure for submitting an application.
type ApplyRequest struct {
	JobID       uuid.UUID `json:"-" validate:"required"` // From URL path
	ApplicantID uuid.UUID `json:"-"`                     // Set from auth context

	CoverLetter  string `json:"coverLetter" validate:"omitempty,max=5000"`
	Phone        string `json:"phone" validate:"omitempty,max=50"`
	PortfolioURL string `json:"portfolioUrl" validate:"omitempty,max=255"`
	ResumeURL    string `json:"resumeUrl" validate:"omitempty,max=255"`
}

// ListMyApplicationsRequest scopes the listing to the calling applicant.
type ListMyApplicationsRequest struct {
	ApplicantID uuid.UUID `json:"-" validate:"required"`
}

// HasAppliedRequest checks for an existing (job, applicant) pair.
type HasAppliedRequest struct {
	JobID       uuid.UUID `json:"-" validate:"required"`
	ApplicantID uuid.UUID `json:"-"`
}

// ListApplicationsByJobRequest defines parameters for a company listing
// applications on one of its jobs.
type ListApplicationsByJobRequest struct {
	JobID  uuid.UUID `json:"-" validate:"required"` // From URL path
	UserID uuid.UUID `json:"-"`                     // Set from auth context for ownership check
}

// UpdateApplicationStatusRequest sets a new status and optionally
// overwrites company notes.
type UpdateApplicationStatusRequest struct {
	ID     uuid.UUID `json:"-" validate:"required"` // From URL path
	UserID uuid.UUID `json:"-"`                     // Set from auth context for ownership check

	Status models.ApplicationStatus `json:"status" validate:"required,oneof=PENDING REVIEWED SHORTLISTED ACCEPTED REJECTED"`
	Notes  *string                  `json:"notes,omitempty"`
}

// ApplicationResponse defines the application data returned to clients.
type ApplicationResponse struct {
	ID            uuid.UUID                `json:"id"`
	JobID         uuid.UUID                `json:"jobId"`
	JobTitle      string                   `json:"jobTitle"`
	CompanyName   string                   `json:"companyName"`
	ApplicantID   uuid.UUID                `json:"applicantId"`
	ApplicantName string                   `json:"applicantName"`
	CoverLetter   string                   `json:"coverLetter"`
	Phone         string                   `json:"phone"`
	PortfolioURL  string                   `json:"portfolioUrl"`
	ResumeURL     string                   `json:"resumeUrl"`
	Status        models.ApplicationStatus `json:"status"`
	CompanyNotes  *string                  `json:"companyNotes,omitempty"`
	CreatedAt     time.Time                `json:"createdAt"`
	UpdatedAt     time.Time                `json:"updatedAt"`
}

// HasAppliedResponse is the boolean existence payload for the apply check.
type HasAppliedResponse struct {
	HasApplied bool `json:"hasApplied"`
}
