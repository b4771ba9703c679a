package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"hireflow/internal/models"
	"hireflow/internal/storage"
	"hireflow/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const jobSelect = `
	SELECT j.id, j.title, j.description, j.requirements, j.location, j.salary,
	       j.type, j.level, j.category, j.deadline, j.status, j.company_id,
	       COALESCE(u.company_name, u.name) AS company_name,
	       (SELECT COUNT(*) FROM applications a WHERE a.job_id = j.id) AS application_count,
	       j.created_at, j.updated_at
	FROM jobs j
	JOIN users u ON u.id = j.company_id
`

const jobSkillsSelect = `SELECT skill FROM job_skills WHERE job_id = $1 ORDER BY position`
const jobSkillsDelete = `DELETE FROM job_skills WHERE job_id = $1`
const jobSkillsInsert = `INSERT INTO job_skills (job_id, skill, position) VALUES ($1, $2, $3)`

const jobBenefitsSelect = `SELECT benefit FROM job_benefits WHERE job_id = $1 ORDER BY position`
const jobBenefitsDelete = `DELETE FROM job_benefits WHERE job_id = $1`
const jobBenefitsInsert = `INSERT INTO job_benefits (job_id, benefit, position) VALUES ($1, $2, $3)`

// JobRepo implements the storage.JobRepository interface using PostgreSQL.
type JobRepo struct {
	db *pgxpool.Pool
}

// NewJobRepo creates a new JobRepo.
func NewJobRepo(db *pgxpool.Pool) *JobRepo {
	return &JobRepo{db: db}
}

// Compile-time check to ensure JobRepo implements JobRepository
var _ storage.JobRepository = (*JobRepo)(nil)

func scanJob(row pgx.Row) (*models.Job, error) {
	var j models.Job
	err := row.Scan(
		&j.ID,
		&j.Title,
		&j.Description,
		&j.Requirements,
		&j.Location,
		&j.Salary,
		&j.Type,
		&j.Level,
		&j.Category,
		&j.Deadline,
		&j.Status,
		&j.CompanyID,
		&j.CompanyName,
		&j.ApplicationCount,
		&j.CreatedAt,
		&j.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

// loadJobLists attaches skills and benefits to each job in a batch using
// two joined queries instead of per-row fetches.
func (r *JobRepo) loadJobLists(ctx context.Context, q Querier, jobs []models.Job) error {
	if len(jobs) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, len(jobs))
	index := make(map[uuid.UUID]*models.Job, len(jobs))
	for i := range jobs {
		ids[i] = jobs[i].ID
		index[jobs[i].ID] = &jobs[i]
	}

	load := func(query string, assign func(j *models.Job, v string)) error {
		rows, err := q.Query(ctx, query, ids)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var jobID uuid.UUID
			var v string
			if err := rows.Scan(&jobID, &v); err != nil {
				return err
			}
			if j, ok := index[jobID]; ok {
				assign(j, v)
			}
		}
		return rows.Err()
	}

	err := load(`SELECT job_id, skill FROM job_skills WHERE job_id = ANY($1) ORDER BY job_id, position`,
		func(j *models.Job, v string) { j.Skills = append(j.Skills, v) })
	if err != nil {
		return fmt.Errorf("failed to load job skills: %w", err)
	}
	err = load(`SELECT job_id, benefit FROM job_benefits WHERE job_id = ANY($1) ORDER BY job_id, position`,
		func(j *models.Job, v string) { j.Benefits = append(j.Benefits, v) })
	if err != nil {
		return fmt.Errorf("failed to load job benefits: %w", err)
	}
	return nil
}

// Create saves a new job listing with its skill and benefit rows in one
// transaction.
func (r *JobRepo) Create(ctx context.Context, req *dto.CreateJobRequest, deadline time.Time, status models.JobStatus) (*models.Job, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin job create: %w", err)
	}
	defer tx.Rollback(ctx)

	jobID := uuid.New()
	query := `
		INSERT INTO jobs (id, title, description, requirements, location, salary,
		                  type, level, category, deadline, status, company_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
	`
	_, err = tx.Exec(ctx, query,
		jobID,
		req.Title,
		req.Description,
		req.Requirements,
		req.Location,
		req.Salary,
		req.Type,
		req.Level,
		req.Category,
		deadline,
		status,
		req.CompanyID,
	)
	if err != nil {
		if isPgErr(err, pgForeignKeyViolation) {
			log.Printf("Error creating job: foreign key violation (company_id: %s): %v\n", req.CompanyID, err)
			return nil, fmt.Errorf("failed to create job: invalid company ID: %w", storage.ErrConflict)
		}
		log.Printf("Error creating job: %v\n", err)
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	if err := replaceStringList(ctx, tx, jobSkillsDelete, jobSkillsInsert, jobID, req.Skills); err != nil {
		return nil, fmt.Errorf("failed to insert job skills: %w", err)
	}
	if err := replaceStringList(ctx, tx, jobBenefitsDelete, jobBenefitsInsert, jobID, req.Benefits); err != nil {
		return nil, fmt.Errorf("failed to insert job benefits: %w", err)
	}

	createdJob, err := scanJob(tx.QueryRow(ctx, jobSelect+` WHERE j.id = $1`, jobID))
	if err != nil {
		return nil, fmt.Errorf("failed to read back created job: %w", err)
	}
	createdJob.Skills = req.Skills
	createdJob.Benefits = req.Benefits

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit job create: %w", err)
	}

	log.Printf("Job created successfully with ID: %s", createdJob.ID)
	return createdJob, nil
}

// GetByID retrieves a specific job by its ID. No status filter: CLOSED
// and DRAFT jobs remain visible by ID.
func (r *JobRepo) GetByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error) {
	job, err := scanJob(r.db.QueryRow(ctx, jobSelect+` WHERE j.id = $1`, req.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Job not found with ID: %s\n", req.ID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning job by ID %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to get job by ID %s: %w", req.ID, err)
	}

	if job.Skills, err = loadStringList(ctx, r.db, jobSkillsSelect, job.ID); err != nil {
		return nil, fmt.Errorf("failed to load skills for job %s: %w", job.ID, err)
	}
	if job.Benefits, err = loadStringList(ctx, r.db, jobBenefitsSelect, job.ID); err != nil {
		return nil, fmt.Errorf("failed to load benefits for job %s: %w", job.ID, err)
	}
	return job, nil
}

// ListActive retrieves ACTIVE jobs matching the conjunctive filters,
// newest first, along with the total matching count for pagination.
// Filter strings are expected pre-normalized by the service layer.
func (r *JobRepo) ListActive(ctx context.Context, req *dto.ListJobsRequest) ([]models.Job, int64, error) {
	conditions := []string{"j.status = 'ACTIVE'"}
	args := []any{}

	if req.Search != "" {
		args = append(args, "%"+req.Search+"%")
		conditions = append(conditions, fmt.Sprintf("(j.title ILIKE $%d OR j.description ILIKE $%d)", len(args), len(args)))
	}
	if req.Type != "" {
		args = append(args, req.Type)
		conditions = append(conditions, fmt.Sprintf("j.type = $%d", len(args)))
	}
	if req.Level != "" {
		args = append(args, req.Level)
		conditions = append(conditions, fmt.Sprintf("j.level = $%d", len(args)))
	}
	if req.Category != "" {
		args = append(args, req.Category)
		conditions = append(conditions, fmt.Sprintf("j.category = $%d", len(args)))
	}
	if req.Location != "" {
		args = append(args, "%"+req.Location+"%")
		conditions = append(conditions, fmt.Sprintf("j.location ILIKE $%d", len(args)))
	}

	where := " WHERE " + strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM jobs j` + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		log.Printf("Error counting active jobs: %v\n", err)
		return nil, 0, fmt.Errorf("failed to count jobs: %w", err)
	}

	listArgs := append(args, req.Size, req.Page*req.Size)
	query := fmt.Sprintf("%s%s ORDER BY j.created_at DESC LIMIT $%d OFFSET $%d",
		jobSelect, where, len(listArgs)-1, len(listArgs))

	jobs, err := r.queryJobs(ctx, query, listArgs...)
	if err != nil {
		log.Printf("Error querying active jobs: %v\n", err)
		return nil, 0, err
	}
	return jobs, total, nil
}

// ListByCompany retrieves all jobs (any status) owned by a company,
// newest first.
func (r *JobRepo) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]models.Job, error) {
	query := jobSelect + ` WHERE j.company_id = $1 ORDER BY j.created_at DESC`
	jobs, err := r.queryJobs(ctx, query, companyID)
	if err != nil {
		log.Printf("Error querying jobs for company %s: %v\n", companyID, err)
		return nil, err
	}
	return jobs, nil
}

func (r *JobRepo) queryJobs(ctx context.Context, query string, args ...any) ([]models.Job, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query jobs: %w", err)
	}
	defer rows.Close()

	jobs := []models.Job{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job row: %w", err)
		}
		jobs = append(jobs, *job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate job rows: %w", err)
	}

	if err := r.loadJobLists(ctx, r.db, jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// Update applies only the non-nil fields of the patch. company_id is
// never part of the SET clause. Skill/benefit lists, when present, are
// replaced wholesale in the same transaction.
func (r *JobRepo) Update(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error) {
	sets := []string{}
	args := []any{}

	addSet := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.Title != nil {
		addSet("title", *req.Title)
	}
	if req.Description != nil {
		addSet("description", *req.Description)
	}
	if req.Requirements != nil {
		addSet("requirements", *req.Requirements)
	}
	if req.Location != nil {
		addSet("location", *req.Location)
	}
	if req.Salary != nil {
		addSet("salary", *req.Salary)
	}
	if req.Type != nil {
		addSet("type", *req.Type)
	}
	if req.Level != nil {
		addSet("level", *req.Level)
	}
	if req.Category != nil {
		addSet("category", *req.Category)
	}
	if req.Deadline != nil {
		addSet("deadline", *req.Deadline)
	}
	if req.Status != nil {
		addSet("status", *req.Status)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin job update: %w", err)
	}
	defer tx.Rollback(ctx)

	sets = append(sets, "updated_at = NOW()")
	args = append(args, req.ID)
	query := fmt.Sprintf(`UPDATE jobs SET %s WHERE id = $%d`, strings.Join(sets, ", "), len(args))

	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		log.Printf("Error updating job %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to update job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, storage.ErrNotFound
	}

	if req.Skills != nil {
		if err := replaceStringList(ctx, tx, jobSkillsDelete, jobSkillsInsert, req.ID, *req.Skills); err != nil {
			return nil, fmt.Errorf("failed to update job skills: %w", err)
		}
	}
	if req.Benefits != nil {
		if err := replaceStringList(ctx, tx, jobBenefitsDelete, jobBenefitsInsert, req.ID, *req.Benefits); err != nil {
			return nil, fmt.Errorf("failed to update job benefits: %w", err)
		}
	}

	updatedJob, err := scanJob(tx.QueryRow(ctx, jobSelect+` WHERE j.id = $1`, req.ID))
	if err != nil {
		return nil, fmt.Errorf("failed to read back updated job: %w", err)
	}
	if updatedJob.Skills, err = loadStringList(ctx, tx, jobSkillsSelect, req.ID); err != nil {
		return nil, fmt.Errorf("failed to load skills for job %s: %w", req.ID, err)
	}
	if updatedJob.Benefits, err = loadStringList(ctx, tx, jobBenefitsSelect, req.ID); err != nil {
		return nil, fmt.Errorf("failed to load benefits for job %s: %w", req.ID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit job update: %w", err)
	}
	return updatedJob, nil
}

// DeleteCascade removes the job and its dependent rows (applications,
// skills, benefits) atomically. Dependents go first so the foreign keys
// never dangle mid-transaction.
func (r *JobRepo) DeleteCascade(ctx context.Context, jobID uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin job delete: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, query := range []string{
		`DELETE FROM applications WHERE job_id = $1`,
		`DELETE FROM job_skills WHERE job_id = $1`,
		`DELETE FROM job_benefits WHERE job_id = $1`,
	} {
		if _, err := tx.Exec(ctx, query, jobID); err != nil {
			log.Printf("Error deleting dependents of job %s: %v\n", jobID, err)
			return fmt.Errorf("failed to delete job dependents: %w", err)
		}
	}

	tag, err := tx.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, jobID)
	if err != nil {
		log.Printf("Error deleting job %s: %v\n", jobID, err)
		return fmt.Errorf("failed to delete job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit job delete: %w", err)
	}
	log.Printf("Job %s deleted with dependent applications", jobID)
	return nil
}

// CountByCompany returns the number of jobs owned by a company.
func (r *JobRepo) CountByCompany(ctx context.Context, companyID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs WHERE company_id = $1`, companyID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count jobs for company %s: %w", companyID, err)
	}
	return count, nil
}

// CountByCompanyAndStatus returns the number of a company's jobs in a
// given status.
func (r *JobRepo) CountByCompanyAndStatus(ctx context.Context, companyID uuid.UUID, status models.JobStatus) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs WHERE company_id = $1 AND status = $2`, companyID, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s jobs for company %s: %w", status, companyID, err)
	}
	return count, nil
}
