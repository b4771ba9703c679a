package dto

import (
	"time"

	"hireflow/internal/models"

	"github.com/google/uuid"
)

// GetUserByEmailRequest defines the structure for resolving a user by email.
type GetUserByEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// GetUserByIdRequest defines the structure for getting a user by id.
type GetUserByIdRequest struct {
	ID uuid.UUID `json:"id" validate:"required"`
}

// UpdateProfileRequest defines the partial profile patch. Only non-nil
// fields overwrite existing state; the caller's role decides which field
// set is eligible.
type UpdateProfileRequest struct {
	UserID uuid.UUID `json:"-"` // Set internally by handler from auth context

	Name     *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Location *string `json:"location,omitempty" validate:"omitempty,max=255"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=50"`

	// Job seeker fields
	Title  *string   `json:"title,omitempty" validate:"omitempty,max=255"`
	Bio    *string   `json:"bio,omitempty"`
	Skills *[]string `json:"skills,omitempty"`

	// Company fields
	CompanyName        *string `json:"companyName,omitempty" validate:"omitempty,max=255"`
	Industry           *string `json:"industry,omitempty" validate:"omitempty,max=255"`
	CompanySize        *string `json:"companySize,omitempty" validate:"omitempty,max=50"`
	Website            *string `json:"website,omitempty" validate:"omitempty,max=255"`
	CompanyDescription *string `json:"companyDescription,omitempty"`
}

// UserResponse is the user payload returned to clients. Password hash is
// never included.
type UserResponse struct {
	ID       uuid.UUID   `json:"id"`
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Role     models.Role `json:"role"`
	IsActive bool        `json:"isActive"`

	Title     *string  `json:"title,omitempty"`
	Bio       *string  `json:"bio,omitempty"`
	Location  *string  `json:"location,omitempty"`
	Phone     *string  `json:"phone,omitempty"`
	ResumeURL *string  `json:"resumeUrl,omitempty"`
	Skills    []string `json:"skills,omitempty"`

	CompanyName        *string `json:"companyName,omitempty"`
	Industry           *string `json:"industry,omitempty"`
	CompanySize        *string `json:"companySize,omitempty"`
	Website            *string `json:"website,omitempty"`
	CompanyDescription *string `json:"companyDescription,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
