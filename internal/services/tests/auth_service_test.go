package services_test

import (
	"context"
	"testing"
	"time"

	"hireflow/internal/models"
	"hireflow/internal/services"
	"hireflow/internal/storage"
	"hireflow/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func newAuthService(repo *MockUserRepository) services.AuthService {
	return services.NewAuthService(repo, testSecret, time.Hour, 24*time.Hour)
}

func TestAuthService_Register(t *testing.T) {
	t.Run("Success - Job Seeker", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := newAuthService(mockRepo)

		userID := uuid.New()
		mockRepo.On("Create", mock.Anything, "Alice", "alice@example.com", mock.AnythingOfType("string"), models.RoleJobSeeker, (*string)(nil)).
			Return(&models.User{ID: userID, Name: "Alice", Email: "alice@example.com", Role: models.RoleJobSeeker}, nil).Once()

		resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
			Name: "Alice", Email: "alice@example.com", Password: "secret1", Role: models.RoleJobSeeker,
		})

		assert.NoError(t, err)
		assert.Equal(t, userID, resp.ID)
		assert.Equal(t, "Bearer", resp.Type)
		assert.NotEmpty(t, resp.Token)
		assert.NotEmpty(t, resp.RefreshToken)
		assert.Equal(t, time.Hour.Milliseconds(), resp.ExpiresIn)

		// The stored hash must verify against the plaintext password.
		storedHash := mockRepo.Calls[0].Arguments.String(3)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedHash), []byte("secret1")))
		mockRepo.AssertExpectations(t)
	})

	t.Run("Success - Company defaults companyName to name", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := newAuthService(mockRepo)

		mockRepo.On("Create", mock.Anything, "Acme", "hr@acme.com", mock.AnythingOfType("string"), models.RoleCompany,
			mock.MatchedBy(func(cn *string) bool { return cn != nil && *cn == "Acme" })).
			Return(&models.User{ID: uuid.New(), Name: "Acme", Email: "hr@acme.com", Role: models.RoleCompany}, nil).Once()

		_, err := svc.Register(context.Background(), &dto.RegisterRequest{
			Name: "Acme", Email: "hr@acme.com", Password: "secret1", Role: models.RoleCompany,
		})

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Duplicate email yields Conflict", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := newAuthService(mockRepo)

		mockRepo.On("Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, storage.ErrDuplicateEmail).Once()

		_, err := svc.Register(context.Background(), &dto.RegisterRequest{
			Name: "Alice", Email: "taken@example.com", Password: "secret1", Role: models.RoleJobSeeker,
		})

		assert.ErrorIs(t, err, services.ErrConflict)
		mockRepo.AssertExpectations(t)
	})
}

func TestAuthService_Login(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	user := &models.User{
		ID:           uuid.New(),
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: string(hash),
		Role:         models.RoleJobSeeker,
	}

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := newAuthService(mockRepo)
		mockRepo.On("GetByEmail", mock.Anything, &dto.GetUserByEmailRequest{Email: "alice@example.com"}).Return(user, nil).Once()

		resp, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "alice@example.com", Password: "correct-horse"})

		assert.NoError(t, err)
		assert.Equal(t, user.ID, resp.ID)
		assert.Equal(t, models.RoleJobSeeker, resp.Role)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Wrong password", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := newAuthService(mockRepo)
		mockRepo.On("GetByEmail", mock.Anything, mock.Anything).Return(user, nil).Once()

		_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "alice@example.com", Password: "wrong"})

		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	})

	t.Run("Unknown email maps to invalid credentials, not NotFound", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := newAuthService(mockRepo)
		mockRepo.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, storage.ErrNotFound).Once()

		_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "ghost@example.com", Password: "whatever"})

		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
		assert.NotErrorIs(t, err, services.ErrNotFound)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
	user := &models.User{ID: uuid.New(), Name: "Alice", Email: "alice@example.com", PasswordHash: string(hash), Role: models.RoleJobSeeker}

	t.Run("Success - round trip", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := newAuthService(mockRepo)
		mockRepo.On("GetByEmail", mock.Anything, mock.Anything).Return(user, nil)

		first, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "alice@example.com", Password: "pw"})
		assert.NoError(t, err)

		second, err := svc.Refresh(context.Background(), &dto.RefreshRequest{RefreshToken: first.RefreshToken})
		assert.NoError(t, err)
		assert.Equal(t, user.ID, second.ID)
		assert.Equal(t, user.Email, second.Email)
		assert.NotEmpty(t, second.Token)
	})

	t.Run("Garbage token", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := newAuthService(mockRepo)

		_, err := svc.Refresh(context.Background(), &dto.RefreshRequest{RefreshToken: "not-a-jwt"})

		assert.ErrorIs(t, err, services.ErrInvalidToken)
		mockRepo.AssertNotCalled(t, "GetByEmail")
	})

	t.Run("Token for vanished user", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := newAuthService(mockRepo)
		mockRepo.On("GetByEmail", mock.Anything, mock.Anything).Return(user, nil).Once()

		first, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "alice@example.com", Password: "pw"})
		assert.NoError(t, err)

		mockRepo.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, storage.ErrNotFound).Once()
		_, err = svc.Refresh(context.Background(), &dto.RefreshRequest{RefreshToken: first.RefreshToken})

		assert.ErrorIs(t, err, services.ErrInvalidToken)
	})
}
