package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"hireflow/internal/models"
	"hireflow/internal/storage"
	"hireflow/internal/transport/dto"
)

// mapRepoError maps storage errors to service errors.
func mapRepoError(err error, operation string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, operation)
	}
	if errors.Is(err, storage.ErrDuplicateEmail) {
		return fmt.Errorf("%w: %s (duplicate email)", ErrConflict, operation)
	}
	if errors.Is(err, storage.ErrConflict) {
		return fmt.Errorf("%w: %s (%v)", ErrConflict, operation, err)
	}
	log.Printf("Unexpected repository error during %s: %v", operation, err)
	return fmt.Errorf("internal error during %s: %w", operation, err)
}

// normalizeEnumFilter canonicalizes a user-supplied filter value to the
// stored enum spelling ("mid-level" -> "MID_LEVEL") and drops values
// outside the allowed set, matching the original's lenient parsing.
func normalizeEnumFilter(value string, allowed ...string) string {
	if strings.TrimSpace(value) == "" {
		return ""
	}
	v := strings.ToUpper(strings.TrimSpace(value))
	v = strings.ReplaceAll(v, "-", "_")
	v = strings.ReplaceAll(v, " ", "_")
	for _, a := range allowed {
		if v == a {
			return v
		}
	}
	return ""
}

// MapUserToResponse converts a models.User to a dto.UserResponse.
func MapUserToResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:                 user.ID,
		Name:               user.Name,
		Email:              user.Email,
		Role:               user.Role,
		IsActive:           user.IsActive,
		Title:              user.Title,
		Bio:                user.Bio,
		Location:           user.Location,
		Phone:              user.Phone,
		ResumeURL:          user.ResumeURL,
		Skills:             user.Skills,
		CompanyName:        user.CompanyName,
		Industry:           user.Industry,
		CompanySize:        user.CompanySize,
		Website:            user.Website,
		CompanyDescription: user.CompanyDescription,
		CreatedAt:          user.CreatedAt,
		UpdatedAt:          user.UpdatedAt,
	}
}

// MapJobToResponse converts a models.Job to a dto.JobResponse.
func MapJobToResponse(job *models.Job) dto.JobResponse {
	return dto.JobResponse{
		ID:               job.ID,
		Title:            job.Title,
		Description:      job.Description,
		Requirements:     job.Requirements,
		Location:         job.Location,
		Salary:           job.Salary,
		Type:             job.Type,
		Level:            job.Level,
		Category:         job.Category,
		Skills:           job.Skills,
		Benefits:         job.Benefits,
		Deadline:         job.Deadline,
		Status:           job.Status,
		CompanyID:        job.CompanyID,
		CompanyName:      job.CompanyName,
		ApplicationCount: job.ApplicationCount,
		CreatedAt:        job.CreatedAt,
		UpdatedAt:        job.UpdatedAt,
	}
}

// MapApplicationToResponse converts a models.Application to a
// dto.ApplicationResponse.
func MapApplicationToResponse(app *models.Application) dto.ApplicationResponse {
	return dto.ApplicationResponse{
		ID:            app.ID,
		JobID:         app.JobID,
		JobTitle:      app.JobTitle,
		CompanyName:   app.CompanyName,
		ApplicantID:   app.ApplicantID,
		ApplicantName: app.ApplicantName,
		CoverLetter:   app.CoverLetter,
		Phone:         app.Phone,
		PortfolioURL:  app.PortfolioURL,
		ResumeURL:     app.ResumeURL,
		Status:        app.Status,
		CompanyNotes:  app.CompanyNotes,
		CreatedAt:     app.CreatedAt,
		UpdatedAt:     app.UpdatedAt,
	}
}
