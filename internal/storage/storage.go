package storage

import (
	"context"
	"time"

	"hireflow/internal/models"
	"hireflow/internal/transport/dto"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(ctx context.Context, name, email, passwordHash string, role models.Role, companyName *string) (*models.User, error)
	GetByID(ctx context.Context, req *dto.GetUserByIdRequest) (*models.User, error)
	GetByEmail(ctx context.Context, req *dto.GetUserByEmailRequest) (*models.User, error)
	UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*models.User, error)
}

// JobRepository defines the interface for job data operations. List
// queries return jobs with skills, benefits, company name and
// application counts resolved via explicit joined queries.
type JobRepository interface {
	Create(ctx context.Context, req *dto.CreateJobRequest, deadline time.Time, status models.JobStatus) (*models.Job, error)
	GetByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error)
	ListActive(ctx context.Context, req *dto.ListJobsRequest) ([]models.Job, int64, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]models.Job, error)
	Update(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error)
	// DeleteCascade removes the job's applications, skill and benefit
	// rows and the job itself in a single transaction.
	DeleteCascade(ctx context.Context, jobID uuid.UUID) error
	CountByCompany(ctx context.Context, companyID uuid.UUID) (int64, error)
	CountByCompanyAndStatus(ctx context.Context, companyID uuid.UUID, status models.JobStatus) (int64, error)
}

// ApplicationRepository defines the interface for application data
// operations.
type ApplicationRepository interface {
	Create(ctx context.Context, req *dto.ApplyRequest) (*models.Application, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error)
	ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]models.Application, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]models.Application, error)
	ExistsByJobAndApplicant(ctx context.Context, jobID, applicantID uuid.UUID) (bool, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus, notes *string) (*models.Application, error)
	CountForCompany(ctx context.Context, companyID uuid.UUID) (int64, error)
	CountForCompanySince(ctx context.Context, companyID uuid.UUID, since time.Time) (int64, error)
}
