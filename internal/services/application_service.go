package services

import (
	"context"
	"fmt"
	"log"

	"hireflow/internal/models"
	"hireflow/internal/storage"
	"hireflow/internal/transport/dto"

	"github.com/redis/go-redis/v9"
)

type applicationService struct {
	appRepo storage.ApplicationRepository
	jobRepo storage.JobRepository
	cache   *redis.Client
}

// NewApplicationService creates a new instance of ApplicationService.
// cache may be nil; it holds the job detail cache, which goes stale on
// every new application and must be dropped.
func NewApplicationService(appRepo storage.ApplicationRepository, jobRepo storage.JobRepository, cache *redis.Client) ApplicationService {
	return &applicationService{appRepo: appRepo, jobRepo: jobRepo, cache: cache}
}

// Apply submits an application to an ACTIVE job. The unique
// (job, applicant) constraint in storage arbitrates duplicate attempts,
// including concurrent ones; the loser surfaces as ErrConflict.
func (s *applicationService) Apply(ctx context.Context, req *dto.ApplyRequest) (*models.Application, error) {
	job, err := s.jobRepo.GetByID(ctx, &dto.GetJobByIDRequest{ID: req.JobID})
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching job %s for application", req.JobID))
	}

	if job.Status != models.JobStatusActive {
		log.Printf("Apply: Attempt to apply to non-active job %s (status: %s)", req.JobID, job.Status)
		return nil, fmt.Errorf("%w: this job is no longer accepting applications", ErrInvalidState)
	}

	application, err := s.appRepo.Create(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "creating application")
	}

	// The cached job detail embeds applicationCount; drop it so the
	// next read picks up the new application.
	if s.cache != nil {
		if err := s.cache.Del(ctx, jobCacheKeyPrefix+req.JobID.String()).Err(); err != nil {
			log.Printf("Apply: cache invalidate error for job %s: %v", req.JobID, err)
		}
	}

	log.Printf("Application submitted: applicant=%s for job=%s", req.ApplicantID, req.JobID)
	return application, nil
}

// ListMyApplications returns all applications by the caller, newest first.
func (s *applicationService) ListMyApplications(ctx context.Context, req *dto.ListMyApplicationsRequest) ([]models.Application, error) {
	apps, err := s.appRepo.ListByApplicant(ctx, req.ApplicantID)
	if err != nil {
		log.Printf("ListMyApplications: Error listing applications for %s: %v", req.ApplicantID, err)
		return nil, fmt.Errorf("internal error listing applications: %w", err)
	}
	return apps, nil
}

// HasApplied reports whether the caller already applied to the job.
func (s *applicationService) HasApplied(ctx context.Context, req *dto.HasAppliedRequest) (bool, error) {
	if _, err := s.jobRepo.GetByID(ctx, &dto.GetJobByIDRequest{ID: req.JobID}); err != nil {
		return false, mapRepoError(err, fmt.Sprintf("fetching job %s for apply check", req.JobID))
	}

	exists, err := s.appRepo.ExistsByJobAndApplicant(ctx, req.JobID, req.ApplicantID)
	if err != nil {
		return false, fmt.Errorf("internal error checking application: %w", err)
	}
	return exists, nil
}

// ListApplicationsByJob returns applications for a job owned by the
// caller, newest first.
func (s *applicationService) ListApplicationsByJob(ctx context.Context, req *dto.ListApplicationsByJobRequest) ([]models.Application, error) {
	job, err := s.jobRepo.GetByID(ctx, &dto.GetJobByIDRequest{ID: req.JobID})
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching job %s for application listing", req.JobID))
	}
	if job.CompanyID != req.UserID {
		log.Printf("ListApplicationsByJob: Forbidden attempt by user %s on job %s owned by %s", req.UserID, req.JobID, job.CompanyID)
		return nil, fmt.Errorf("%w: you can only view applications for your own jobs", ErrForbidden)
	}

	apps, err := s.appRepo.ListByJob(ctx, req.JobID)
	if err != nil {
		log.Printf("ListApplicationsByJob: Error listing applications for job %s: %v", req.JobID, err)
		return nil, fmt.Errorf("internal error listing applications: %w", err)
	}
	return apps, nil
}

// UpdateStatus sets the application status unconditionally after the
// ownership check. There is no transition graph: any status may move to
// any other. Notes are overwritten only when provided.
func (s *applicationService) UpdateStatus(ctx context.Context, req *dto.UpdateApplicationStatusRequest) (*models.Application, error) {
	application, err := s.appRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching application %s", req.ID))
	}

	job, err := s.jobRepo.GetByID(ctx, &dto.GetJobByIDRequest{ID: application.JobID})
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching job %s for application %s", application.JobID, req.ID))
	}
	if job.CompanyID != req.UserID {
		log.Printf("UpdateStatus: Forbidden attempt by user %s on application %s (job owner: %s)", req.UserID, req.ID, job.CompanyID)
		return nil, fmt.Errorf("%w: you can only update applications for your own jobs", ErrForbidden)
	}

	updated, err := s.appRepo.UpdateStatus(ctx, req.ID, req.Status, req.Notes)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("updating application %s", req.ID))
	}

	log.Printf("Application %s status set to %s by company %s", req.ID, req.Status, req.UserID)
	return updated, nil
}
