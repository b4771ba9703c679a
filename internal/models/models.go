package models

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// --- Role Enum ---
type Role string

const (
	RoleJobSeeker Role = "JOBSEEKER"
	RoleCompany   Role = "COMPANY"
)

// Scan implements the sql.Scanner interface for Role
func (r *Role) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan Role: value is not string or []byte")
		}
	}
	v := Role(strVal)
	switch v {
	case RoleJobSeeker, RoleCompany:
		*r = v
		return nil
	default:
		return fmt.Errorf("invalid Role value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for Role
func (r Role) Value() (driver.Value, error) {
	return string(r), nil
}

// --- Job Type Enum ---
type JobType string

const (
	JobTypeFullTime   JobType = "FULL_TIME"
	JobTypePartTime   JobType = "PART_TIME"
	JobTypeContract   JobType = "CONTRACT"
	JobTypeInternship JobType = "INTERNSHIP"
	JobTypeRemote     JobType = "REMOTE"
)

func (jt *JobType) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan JobType: value is not string or []byte")
		}
	}
	v := JobType(strVal)
	switch v {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship, JobTypeRemote:
		*jt = v
		return nil
	default:
		return fmt.Errorf("invalid JobType value: %s", strVal)
	}
}

func (jt JobType) Value() (driver.Value, error) {
	return string(jt), nil
}

// --- Job Level Enum ---
type JobLevel string

const (
	JobLevelEntry     JobLevel = "ENTRY_LEVEL"
	JobLevelMid       JobLevel = "MID_LEVEL"
	JobLevelSenior    JobLevel = "SENIOR"
	JobLevelLead      JobLevel = "LEAD"
	JobLevelExecutive JobLevel = "EXECUTIVE"
)

func (jl *JobLevel) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan JobLevel: value is not string or []byte")
		}
	}
	v := JobLevel(strVal)
	switch v {
	case JobLevelEntry, JobLevelMid, JobLevelSenior, JobLevelLead, JobLevelExecutive:
		*jl = v
		return nil
	default:
		return fmt.Errorf("invalid JobLevel value: %s", strVal)
	}
}

func (jl JobLevel) Value() (driver.Value, error) {
	return string(jl), nil
}

// --- Job Category Enum ---
type JobCategory string

const (
	JobCategoryEngineering JobCategory = "ENGINEERING"
	JobCategoryDesign      JobCategory = "DESIGN"
	JobCategoryMarketing   JobCategory = "MARKETING"
	JobCategoryData        JobCategory = "DATA"
	JobCategoryProduct     JobCategory = "PRODUCT"
	JobCategorySales       JobCategory = "SALES"
	JobCategoryOperations  JobCategory = "OPERATIONS"
	JobCategoryHR          JobCategory = "HR"
	JobCategoryFinance     JobCategory = "FINANCE"
	JobCategoryOther       JobCategory = "OTHER"
)

func (jc *JobCategory) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan JobCategory: value is not string or []byte")
		}
	}
	v := JobCategory(strVal)
	switch v {
	case JobCategoryEngineering, JobCategoryDesign, JobCategoryMarketing, JobCategoryData,
		JobCategoryProduct, JobCategorySales, JobCategoryOperations, JobCategoryHR,
		JobCategoryFinance, JobCategoryOther:
		*jc = v
		return nil
	default:
		return fmt.Errorf("invalid JobCategory value: %s", strVal)
	}
}

func (jc JobCategory) Value() (driver.Value, error) {
	return string(jc), nil
}

// --- Job Status Enum ---
type JobStatus string

const (
	JobStatusActive JobStatus = "ACTIVE"
	JobStatusClosed JobStatus = "CLOSED"
	JobStatusDraft  JobStatus = "DRAFT"
)

func (js *JobStatus) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan JobStatus: value is not string or []byte")
		}
	}
	v := JobStatus(strVal)
	switch v {
	case JobStatusActive, JobStatusClosed, JobStatusDraft:
		*js = v
		return nil
	default:
		return fmt.Errorf("invalid JobStatus value: %s", strVal)
	}
}

func (js JobStatus) Value() (driver.Value, error) {
	return string(js), nil
}

// --- Application Status Enum ---
type ApplicationStatus string

const (
	ApplicationStatusPending     ApplicationStatus = "PENDING"
	ApplicationStatusReviewed    ApplicationStatus = "REVIEWED"
	ApplicationStatusShortlisted ApplicationStatus = "SHORTLISTED"
	ApplicationStatusAccepted    ApplicationStatus = "ACCEPTED"
	ApplicationStatusRejected    ApplicationStatus = "REJECTED"
)

func (as *ApplicationStatus) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan ApplicationStatus: value is not string or []byte")
		}
	}
	v := ApplicationStatus(strVal)
	switch v {
	case ApplicationStatusPending, ApplicationStatusReviewed, ApplicationStatusShortlisted,
		ApplicationStatusAccepted, ApplicationStatusRejected:
		*as = v
		return nil
	default:
		return fmt.Errorf("invalid ApplicationStatus value: %s", strVal)
	}
}

func (as ApplicationStatus) Value() (driver.Value, error) {
	return string(as), nil
}

// User represents an account in the system. Profile fields are
// role-conditional: title/bio/resume/skills belong to job seekers,
// the company_* fields to companies. Location and phone are shared.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         Role      `json:"role" db:"role"`
	IsActive     bool      `json:"isActive" db:"is_active"`

	// Job seeker profile
	Title     *string  `json:"title,omitempty" db:"title"`
	Bio       *string  `json:"bio,omitempty" db:"bio"`
	Location  *string  `json:"location,omitempty" db:"location"`
	Phone     *string  `json:"phone,omitempty" db:"phone"`
	ResumeURL *string  `json:"resumeUrl,omitempty" db:"resume_url"`
	Skills    []string `json:"skills,omitempty" db:"-"`

	// Company profile
	CompanyName        *string `json:"companyName,omitempty" db:"company_name"`
	Industry           *string `json:"industry,omitempty" db:"industry"`
	CompanySize        *string `json:"companySize,omitempty" db:"company_size"`
	Website            *string `json:"website,omitempty" db:"website"`
	CompanyDescription *string `json:"companyDescription,omitempty" db:"company_description"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Job represents a listing posted by a company. CompanyID is immutable
// after creation.
type Job struct {
	ID           uuid.UUID   `json:"id" db:"id"`
	Title        string      `json:"title" db:"title"`
	Description  string      `json:"description" db:"description"`
	Requirements string      `json:"requirements" db:"requirements"`
	Location     string      `json:"location" db:"location"`
	Salary       string      `json:"salary" db:"salary"`
	Type         JobType     `json:"type" db:"type"`
	Level        JobLevel    `json:"level" db:"level"`
	Category     JobCategory `json:"category" db:"category"`
	Skills       []string    `json:"skills" db:"-"`
	Benefits     []string    `json:"benefits" db:"-"`
	Deadline     time.Time   `json:"deadline" db:"deadline"`
	Status       JobStatus   `json:"status" db:"status"`
	CompanyID    uuid.UUID   `json:"companyId" db:"company_id"`

	// Denormalized read-side fields populated by joined queries.
	CompanyName      string `json:"companyName" db:"-"`
	ApplicationCount int    `json:"applicationCount" db:"-"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Application represents a job seeker's submission to a job. The
// (job_id, applicant_id) pair is unique.
type Application struct {
	ID           uuid.UUID         `json:"id" db:"id"`
	JobID        uuid.UUID         `json:"jobId" db:"job_id"`
	ApplicantID  uuid.UUID         `json:"applicantId" db:"applicant_id"`
	CoverLetter  string            `json:"coverLetter" db:"cover_letter"`
	Phone        string            `json:"phone" db:"phone"`
	PortfolioURL string            `json:"portfolioUrl" db:"portfolio_url"`
	ResumeURL    string            `json:"resumeUrl" db:"resume_url"`
	Status       ApplicationStatus `json:"status" db:"status"`
	CompanyNotes *string           `json:"companyNotes,omitempty" db:"company_notes"`

	// Read-side fields populated by joined queries for list views.
	JobTitle      string `json:"jobTitle" db:"-"`
	CompanyName   string `json:"companyName" db:"-"`
	ApplicantName string `json:"applicantName" db:"-"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
