package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"hireflow/internal/models"
	"hireflow/internal/storage"
	"hireflow/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	jobCacheKeyPrefix = "hireflow:job:"
	jobCacheTTL       = 5 * time.Minute
	defaultDeadline   = 30 * 24 * time.Hour
)

type jobService struct {
	jobRepo storage.JobRepository
	appRepo storage.ApplicationRepository
	cache   *redis.Client // Optional; nil disables caching
}

// NewJobService creates a new instance of JobService. The redis client
// may be nil, in which case job detail reads always hit the database.
func NewJobService(jobRepo storage.JobRepository, appRepo storage.ApplicationRepository, cache *redis.Client) JobService {
	return &jobService{jobRepo: jobRepo, appRepo: appRepo, cache: cache}
}

// CreateJob creates a listing owned by the calling company. Deadline
// defaults to 30 days from now and status to ACTIVE when absent.
func (s *jobService) CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	deadline := time.Now().Add(defaultDeadline)
	if req.Deadline != nil {
		deadline = *req.Deadline
	}
	status := models.JobStatusActive
	if req.Status != nil {
		status = *req.Status
	}

	job, err := s.jobRepo.Create(ctx, req, deadline, status)
	if err != nil {
		log.Printf("JobService: Error creating job: %v", err)
		return nil, mapRepoError(err, "creating job")
	}

	log.Printf("Job created: '%s' by company %s", job.Title, job.CompanyID)
	return job, nil
}

// GetJobByID returns any job by ID, regardless of status. Only the
// public listing is restricted to ACTIVE.
func (s *jobService) GetJobByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error) {
	if job := s.cacheGet(ctx, req.ID); job != nil {
		return job, nil
	}

	job, err := s.jobRepo.GetByID(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("getting job %s", req.ID))
	}

	s.cacheSet(ctx, job)
	return job, nil
}

// ListJobs returns ACTIVE jobs matching the conjunctive filters, newest
// first, with page/size pagination (page is 0-based).
func (s *jobService) ListJobs(ctx context.Context, req *dto.ListJobsRequest) (*dto.JobPageResponse, error) {
	if req.Size <= 0 {
		req.Size = 10
	}
	if req.Page < 0 {
		req.Page = 0
	}
	req.Type = normalizeEnumFilter(req.Type,
		string(models.JobTypeFullTime), string(models.JobTypePartTime), string(models.JobTypeContract),
		string(models.JobTypeInternship), string(models.JobTypeRemote))
	req.Level = normalizeEnumFilter(req.Level,
		string(models.JobLevelEntry), string(models.JobLevelMid), string(models.JobLevelSenior),
		string(models.JobLevelLead), string(models.JobLevelExecutive))
	req.Category = normalizeEnumFilter(req.Category,
		string(models.JobCategoryEngineering), string(models.JobCategoryDesign), string(models.JobCategoryMarketing),
		string(models.JobCategoryData), string(models.JobCategoryProduct), string(models.JobCategorySales),
		string(models.JobCategoryOperations), string(models.JobCategoryHR), string(models.JobCategoryFinance),
		string(models.JobCategoryOther))

	jobs, total, err := s.jobRepo.ListActive(ctx, req)
	if err != nil {
		log.Printf("JobService: Error listing jobs: %v", err)
		return nil, fmt.Errorf("internal error listing jobs: %w", err)
	}

	totalPages := int((total + int64(req.Size) - 1) / int64(req.Size))
	content := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		content = append(content, MapJobToResponse(&jobs[i]))
	}

	return &dto.JobPageResponse{
		Content:       content,
		Page:          req.Page,
		Size:          req.Size,
		TotalElements: total,
		TotalPages:    totalPages,
		Last:          req.Page >= totalPages-1,
	}, nil
}

// ListCompanyJobs returns all jobs owned by the caller, any status,
// newest first.
func (s *jobService) ListCompanyJobs(ctx context.Context, req *dto.ListJobsByCompanyRequest) ([]models.Job, error) {
	jobs, err := s.jobRepo.ListByCompany(ctx, req.CompanyID)
	if err != nil {
		log.Printf("JobService: Error listing jobs for company %s: %v", req.CompanyID, err)
		return nil, fmt.Errorf("internal error listing company jobs: %w", err)
	}
	return jobs, nil
}

// UpdateJob applies a partial patch after the ownership check. NotFound
// wins over Forbidden so probing for job existence behaves uniformly.
func (s *jobService) UpdateJob(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error) {
	existing, err := s.jobRepo.GetByID(ctx, &dto.GetJobByIDRequest{ID: req.ID})
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching job %s for update", req.ID))
	}
	if existing.CompanyID != req.UserID {
		log.Printf("UpdateJob: Forbidden attempt by user %s on job %s owned by %s", req.UserID, req.ID, existing.CompanyID)
		return nil, fmt.Errorf("%w: you can only edit your own job listings", ErrForbidden)
	}

	job, err := s.jobRepo.Update(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("updating job %s", req.ID))
	}

	s.cacheInvalidate(ctx, req.ID)
	log.Printf("Job updated: '%s' by company %s", job.Title, req.UserID)
	return job, nil
}

// DeleteJob removes a job and cascades to its applications after the
// ownership check.
func (s *jobService) DeleteJob(ctx context.Context, req *dto.DeleteJobRequest) error {
	existing, err := s.jobRepo.GetByID(ctx, &dto.GetJobByIDRequest{ID: req.ID})
	if err != nil {
		return mapRepoError(err, fmt.Sprintf("fetching job %s for delete", req.ID))
	}
	if existing.CompanyID != req.UserID {
		log.Printf("DeleteJob: Forbidden attempt by user %s on job %s owned by %s", req.UserID, req.ID, existing.CompanyID)
		return fmt.Errorf("%w: you can only delete your own job listings", ErrForbidden)
	}

	if err := s.jobRepo.DeleteCascade(ctx, req.ID); err != nil {
		return mapRepoError(err, fmt.Sprintf("deleting job %s", req.ID))
	}

	s.cacheInvalidate(ctx, req.ID)
	log.Printf("Job deleted: id=%s by company %s", req.ID, req.UserID)
	return nil
}

// DashboardStats aggregates the caller's listing and application
// activity. The "new this week" window is strictly after now minus seven
// days.
func (s *jobService) DashboardStats(ctx context.Context, req *dto.DashboardStatsRequest) (*dto.DashboardStatsResponse, error) {
	totalJobs, err := s.jobRepo.CountByCompany(ctx, req.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("internal error counting jobs: %w", err)
	}
	activeJobs, err := s.jobRepo.CountByCompanyAndStatus(ctx, req.CompanyID, models.JobStatusActive)
	if err != nil {
		return nil, fmt.Errorf("internal error counting active jobs: %w", err)
	}
	closedJobs, err := s.jobRepo.CountByCompanyAndStatus(ctx, req.CompanyID, models.JobStatusClosed)
	if err != nil {
		return nil, fmt.Errorf("internal error counting closed jobs: %w", err)
	}
	totalApps, err := s.appRepo.CountForCompany(ctx, req.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("internal error counting applications: %w", err)
	}
	newApps, err := s.appRepo.CountForCompanySince(ctx, req.CompanyID, time.Now().AddDate(0, 0, -7))
	if err != nil {
		return nil, fmt.Errorf("internal error counting recent applications: %w", err)
	}

	return &dto.DashboardStatsResponse{
		TotalJobs:               totalJobs,
		ActiveJobs:              activeJobs,
		ClosedJobs:              closedJobs,
		TotalApplications:       totalApps,
		NewApplicationsThisWeek: newApps,
	}, nil
}

// --- Job detail cache ---

func (s *jobService) cacheGet(ctx context.Context, id uuid.UUID) *models.Job {
	if s.cache == nil {
		return nil
	}
	data, err := s.cache.Get(ctx, jobCacheKeyPrefix+id.String()).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("JobService: cache read error for job %s: %v", id, err)
		}
		return nil
	}
	var job models.Job
	if err := json.Unmarshal(data, &job); err != nil {
		log.Printf("JobService: cache decode error for job %s: %v", id, err)
		return nil
	}
	return &job
}

func (s *jobService) cacheSet(ctx context.Context, job *models.Job) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(job)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, jobCacheKeyPrefix+job.ID.String(), data, jobCacheTTL).Err(); err != nil {
		log.Printf("JobService: cache write error for job %s: %v", job.ID, err)
	}
}

func (s *jobService) cacheInvalidate(ctx context.Context, id uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, jobCacheKeyPrefix+id.String()).Err(); err != nil {
		log.Printf("JobService: cache invalidate error for job %s: %v", id, err)
	}
}
