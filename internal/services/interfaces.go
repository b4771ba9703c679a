package services

import (
	"context"

	"hireflow/internal/models"
	"hireflow/internal/transport/dto"
)

// AuthService defines the interface for registration and token issuance.
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.AuthResponse, error)
}

// UserService defines the interface for profile business logic.
type UserService interface {
	GetByID(ctx context.Context, req *dto.GetUserByIdRequest) (*models.User, error)
	UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*models.User, error)
}

// JobService defines the interface for job-related business logic.
type JobService interface {
	CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error)
	GetJobByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error)
	ListJobs(ctx context.Context, req *dto.ListJobsRequest) (*dto.JobPageResponse, error)
	ListCompanyJobs(ctx context.Context, req *dto.ListJobsByCompanyRequest) ([]models.Job, error)
	UpdateJob(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error)
	DeleteJob(ctx context.Context, req *dto.DeleteJobRequest) error
	DashboardStats(ctx context.Context, req *dto.DashboardStatsRequest) (*dto.DashboardStatsResponse, error)
}

// ApplicationService defines the interface for application business logic.
type ApplicationService interface {
	Apply(ctx context.Context, req *dto.ApplyRequest) (*models.Application, error)
	ListMyApplications(ctx context.Context, req *dto.ListMyApplicationsRequest) ([]models.Application, error)
	HasApplied(ctx context.Context, req *dto.HasAppliedRequest) (bool, error)
	ListApplicationsByJob(ctx context.Context, req *dto.ListApplicationsByJobRequest) ([]models.Application, error)
	UpdateStatus(ctx context.Context, req *dto.UpdateApplicationStatusRequest) (*models.Application, error)
}
