package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"hireflow/internal/models"
	"hireflow/internal/storage"
	"hireflow/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `id, name, email, password_hash, role, is_active,
		title, bio, location, phone, resume_url,
		company_name, industry, company_size, website, company_description,
		created_at, updated_at`

const userSkillsSelect = `SELECT skill FROM user_skills WHERE user_id = $1 ORDER BY position`
const userSkillsDelete = `DELETE FROM user_skills WHERE user_id = $1`
const userSkillsInsert = `INSERT INTO user_skills (user_id, skill, position) VALUES ($1, $2, $3)`

// UserRepo implements the storage.UserRepository interface using PostgreSQL.
type UserRepo struct {
	db *pgxpool.Pool
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(db *pgxpool.Pool) *UserRepo {
	return &UserRepo{db: db}
}

// Compile-time check to ensure UserRepo implements UserRepository
var _ storage.UserRepository = (*UserRepo)(nil)

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.IsActive,
		&u.Title,
		&u.Bio,
		&u.Location,
		&u.Phone,
		&u.ResumeURL,
		&u.CompanyName,
		&u.Industry,
		&u.CompanySize,
		&u.Website,
		&u.CompanyDescription,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user. The email unique constraint is the single
// arbiter of duplicates: a concurrent loser receives ErrDuplicateEmail.
func (r *UserRepo) Create(ctx context.Context, name, email, passwordHash string, role models.Role, companyName *string) (*models.User, error) {
	query := `
		INSERT INTO users (id, name, email, password_hash, role, is_active, company_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, TRUE, $6, NOW(), NOW())
		RETURNING ` + userColumns

	row := r.db.QueryRow(ctx, query, uuid.New(), name, email, passwordHash, role, companyName)

	createdUser, err := scanUser(row)
	if err != nil {
		if isPgErr(err, pgUniqueViolation) {
			log.Printf("Attempted to create user with duplicate email %s: %v\n", email, err)
			return nil, storage.ErrDuplicateEmail
		}
		log.Printf("Error creating user with email %s: %v\n", email, err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Printf("User created successfully with ID: %s", createdUser.ID)
	return createdUser, nil
}

// GetByID retrieves a single user by ID, including skills.
func (r *UserRepo) GetByID(ctx context.Context, req *dto.GetUserByIdRequest) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, req.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("User not found with ID: %s\n", req.ID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error getting user by ID %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to get user by ID %s: %w", req.ID, err)
	}

	if user.Skills, err = loadStringList(ctx, r.db, userSkillsSelect, user.ID); err != nil {
		return nil, fmt.Errorf("failed to load skills for user %s: %w", user.ID, err)
	}
	return user, nil
}

// GetByEmail retrieves a single user by email (including password hash),
// with skills.
func (r *UserRepo) GetByEmail(ctx context.Context, req *dto.GetUserByEmailRequest) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, req.Email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("User not found with email: %s\n", req.Email)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error getting user by email %s: %v\n", req.Email, err)
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	if user.Skills, err = loadStringList(ctx, r.db, userSkillsSelect, user.ID); err != nil {
		return nil, fmt.Errorf("failed to load skills for user %s: %w", user.ID, err)
	}
	return user, nil
}

// UpdateProfile applies only the non-nil fields of the patch. The skills
// list, when present, is replaced wholesale inside the same transaction
// as the row update.
func (r *UserRepo) UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*models.User, error) {
	sets := []string{}
	args := []any{}

	addSet := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.Name != nil {
		addSet("name", *req.Name)
	}
	if req.Location != nil {
		addSet("location", *req.Location)
	}
	if req.Phone != nil {
		addSet("phone", *req.Phone)
	}
	if req.Title != nil {
		addSet("title", *req.Title)
	}
	if req.Bio != nil {
		addSet("bio", *req.Bio)
	}
	if req.CompanyName != nil {
		addSet("company_name", *req.CompanyName)
	}
	if req.Industry != nil {
		addSet("industry", *req.Industry)
	}
	if req.CompanySize != nil {
		addSet("company_size", *req.CompanySize)
	}
	if req.Website != nil {
		addSet("website", *req.Website)
	}
	if req.CompanyDescription != nil {
		addSet("company_description", *req.CompanyDescription)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin profile update: %w", err)
	}
	defer tx.Rollback(ctx)

	sets = append(sets, "updated_at = NOW()")
	args = append(args, req.UserID)
	query := fmt.Sprintf(`UPDATE users SET %s WHERE id = $%d RETURNING `+userColumns,
		strings.Join(sets, ", "), len(args))

	user, err := scanUser(tx.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating profile for user %s: %v\n", req.UserID, err)
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	if req.Skills != nil {
		if err := replaceStringList(ctx, tx, userSkillsDelete, userSkillsInsert, req.UserID, *req.Skills); err != nil {
			log.Printf("Error replacing skills for user %s: %v\n", req.UserID, err)
			return nil, fmt.Errorf("failed to update skills: %w", err)
		}
	}

	if user.Skills, err = loadStringList(ctx, tx, userSkillsSelect, user.ID); err != nil {
		return nil, fmt.Errorf("failed to load skills for user %s: %w", user.ID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit profile update: %w", err)
	}
	return user, nil
}
