package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"hireflow/internal/models"
	"hireflow/internal/storage"
	"hireflow/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const applicationSelect = `
	SELECT a.id, a.job_id, a.applicant_id, a.cover_letter, a.phone,
	       a.portfolio_url, a.resume_url, a.status, a.company_notes,
	       j.title AS job_title,
	       COALESCE(c.company_name, c.name) AS company_name,
	       s.name AS applicant_name,
	       a.created_at, a.updated_at
	FROM applications a
	JOIN jobs j ON j.id = a.job_id
	JOIN users c ON c.id = j.company_id
	JOIN users s ON s.id = a.applicant_id
`

// ApplicationRepo implements the storage.ApplicationRepository interface
// using PostgreSQL.
type ApplicationRepo struct {
	db *pgxpool.Pool
}

// NewApplicationRepo creates a new ApplicationRepo.
func NewApplicationRepo(db *pgxpool.Pool) *ApplicationRepo {
	return &ApplicationRepo{db: db}
}

// Compile-time check to ensure ApplicationRepo implements ApplicationRepository
var _ storage.ApplicationRepository = (*ApplicationRepo)(nil)

func scanApplication(row pgx.Row) (*models.Application, error) {
	var a models.Application
	err := row.Scan(
		&a.ID,
		&a.JobID,
		&a.ApplicantID,
		&a.CoverLetter,
		&a.Phone,
		&a.PortfolioURL,
		&a.ResumeURL,
		&a.Status,
		&a.CompanyNotes,
		&a.JobTitle,
		&a.CompanyName,
		&a.ApplicantName,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts a new PENDING application. The (job_id, applicant_id)
// unique constraint arbitrates concurrent duplicate attempts: the loser
// receives ErrConflict.
func (r *ApplicationRepo) Create(ctx context.Context, req *dto.ApplyRequest) (*models.Application, error) {
	id := uuid.New()
	query := `
		INSERT INTO applications (id, job_id, applicant_id, cover_letter, phone,
		                          portfolio_url, resume_url, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query,
		id,
		req.JobID,
		req.ApplicantID,
		req.CoverLetter,
		req.Phone,
		req.PortfolioURL,
		req.ResumeURL,
		models.ApplicationStatusPending,
	)
	if err != nil {
		if isPgErr(err, pgUniqueViolation) {
			log.Printf("Duplicate application attempt: job %s, applicant %s\n", req.JobID, req.ApplicantID)
			return nil, fmt.Errorf("failed to create application: already applied: %w", storage.ErrConflict)
		}
		if isPgErr(err, pgForeignKeyViolation) {
			log.Printf("Error creating application: foreign key violation (job %s): %v\n", req.JobID, err)
			return nil, fmt.Errorf("failed to create application: %w", storage.ErrNotFound)
		}
		log.Printf("Error creating application: %v\n", err)
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	createdApp, err := scanApplication(r.db.QueryRow(ctx, applicationSelect+` WHERE a.id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("failed to read back created application: %w", err)
	}

	log.Printf("Application created successfully with ID: %s", createdApp.ID)
	return createdApp, nil
}

// GetByID retrieves a single application by ID.
func (r *ApplicationRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	app, err := scanApplication(r.db.QueryRow(ctx, applicationSelect+` WHERE a.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Application not found with ID: %s\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning application by ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to get application by ID %s: %w", id, err)
	}
	return app, nil
}

// ListByApplicant retrieves all applications by a job seeker, newest first.
func (r *ApplicationRepo) ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]models.Application, error) {
	query := applicationSelect + ` WHERE a.applicant_id = $1 ORDER BY a.created_at DESC`
	return r.queryApplications(ctx, query, applicantID)
}

// ListByJob retrieves all applications for a job, newest first.
func (r *ApplicationRepo) ListByJob(ctx context.Context, jobID uuid.UUID) ([]models.Application, error) {
	query := applicationSelect + ` WHERE a.job_id = $1 ORDER BY a.created_at DESC`
	return r.queryApplications(ctx, query, jobID)
}

func (r *ApplicationRepo) queryApplications(ctx context.Context, query string, args ...any) ([]models.Application, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		log.Printf("Error querying applications: %v\n", err)
		return nil, fmt.Errorf("failed to query applications: %w", err)
	}
	defer rows.Close()

	apps := []models.Application{}
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application row: %w", err)
		}
		apps = append(apps, *app)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate application rows: %w", err)
	}
	return apps, nil
}

// ExistsByJobAndApplicant reports whether an application exists for the
// (job, applicant) pair.
func (r *ApplicationRepo) ExistsByJobAndApplicant(ctx context.Context, jobID, applicantID uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM applications WHERE job_id = $1 AND applicant_id = $2)`
	if err := r.db.QueryRow(ctx, query, jobID, applicantID).Scan(&exists); err != nil {
		log.Printf("Error checking application existence (job %s, applicant %s): %v\n", jobID, applicantID, err)
		return false, fmt.Errorf("failed to check application existence: %w", err)
	}
	return exists, nil
}

// UpdateStatus sets the status unconditionally and overwrites notes only
// when provided.
func (r *ApplicationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus, notes *string) (*models.Application, error) {
	var tag string
	var err error
	if notes != nil {
		_, err = r.db.Exec(ctx,
			`UPDATE applications SET status = $1, company_notes = $2, updated_at = NOW() WHERE id = $3`,
			status, *notes, id)
		tag = "status+notes"
	} else {
		_, err = r.db.Exec(ctx,
			`UPDATE applications SET status = $1, updated_at = NOW() WHERE id = $2`,
			status, id)
		tag = "status"
	}
	if err != nil {
		log.Printf("Error updating application %s (%s): %v\n", id, tag, err)
		return nil, fmt.Errorf("failed to update application status: %w", err)
	}

	app, err := scanApplication(r.db.QueryRow(ctx, applicationSelect+` WHERE a.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read back updated application: %w", err)
	}
	return app, nil
}

// CountForCompany returns the total applications across all jobs owned by
// a company.
func (r *ApplicationRepo) CountForCompany(ctx context.Context, companyID uuid.UUID) (int64, error) {
	var count int64
	query := `
		SELECT COUNT(*)
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		WHERE j.company_id = $1
	`
	if err := r.db.QueryRow(ctx, query, companyID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count applications for company %s: %w", companyID, err)
	}
	return count, nil
}

// CountForCompanySince counts a company's applications created strictly
// after the cutoff instant.
func (r *ApplicationRepo) CountForCompanySince(ctx context.Context, companyID uuid.UUID, since time.Time) (int64, error) {
	var count int64
	query := `
		SELECT COUNT(*)
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		WHERE j.company_id = $1 AND a.created_at > $2
	`
	if err := r.db.QueryRow(ctx, query, companyID, since).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count recent applications for company %s: %w", companyID, err)
	}
	return count, nil
}
