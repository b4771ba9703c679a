package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hireflow/internal/api/middleware"
	"hireflow/internal/models"
	"hireflow/internal/storage"
	"hireflow/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testSecret = "middleware-test-secret"

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, name, email, passwordHash string, role models.Role, companyName *string) (*models.User, error) {
	args := m.Called(ctx, name, email, passwordHash, role, companyName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, req *dto.GetUserByIdRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, req *dto.GetUserByEmailRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepo) UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

var _ storage.UserRepository = (*mockUserRepo)(nil)

func signedToken(t *testing.T, subject string, expiresIn time.Duration) string {
	t.Helper()
	claims := &jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	assert.NoError(t, err)
	return token
}

func setupProtectedRouter(repo storage.UserRepository, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	chain := append([]gin.HandlerFunc{middleware.JWTAuthMiddleware(testSecret, repo)}, extra...)
	chain = append(chain, func(c *gin.Context) {
		user, err := middleware.GetCurrentUser(c)
		if err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"email": user.Email})
	})
	router.GET("/protected", chain...)
	return router
}

func TestJWTAuthMiddleware(t *testing.T) {
	user := &models.User{ID: uuid.New(), Name: "Alice", Email: "alice@example.com", Role: models.RoleJobSeeker}

	t.Run("Valid token resolves the user", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("GetByEmail", mock.Anything, &dto.GetUserByEmailRequest{Email: "alice@example.com"}).Return(user, nil).Once()
		router := setupProtectedRouter(repo)

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		request.Header.Set("Authorization", "Bearer "+signedToken(t, "alice@example.com", time.Hour))
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "alice@example.com")
		repo.AssertExpectations(t)
	})

	t.Run("Missing header", func(t *testing.T) {
		router := setupProtectedRouter(new(mockUserRepo))

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Authorization header required")
	})

	t.Run("Malformed header", func(t *testing.T) {
		router := setupProtectedRouter(new(mockUserRepo))

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		request.Header.Set("Authorization", "Token abc")
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("Expired token", func(t *testing.T) {
		router := setupProtectedRouter(new(mockUserRepo))

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		request.Header.Set("Authorization", "Bearer "+signedToken(t, "alice@example.com", -time.Minute))
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Token has expired")
	})

	t.Run("Token subject without a user record", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, storage.ErrNotFound).Once()
		router := setupProtectedRouter(repo)

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		request.Header.Set("Authorization", "Bearer "+signedToken(t, "ghost@example.com", time.Hour))
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

func TestRequireRole(t *testing.T) {
	company := &models.User{ID: uuid.New(), Name: "Acme", Email: "hr@acme.com", Role: models.RoleCompany}

	t.Run("Matching role passes", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("GetByEmail", mock.Anything, mock.Anything).Return(company, nil).Once()
		router := setupProtectedRouter(repo, middleware.RequireRole(models.RoleCompany))

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		request.Header.Set("Authorization", "Bearer "+signedToken(t, company.Email, time.Hour))
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("Wrong role is forbidden", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("GetByEmail", mock.Anything, mock.Anything).Return(company, nil).Once()
		router := setupProtectedRouter(repo, middleware.RequireRole(models.RoleJobSeeker))

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		request.Header.Set("Authorization", "Bearer "+signedToken(t, company.Email, time.Hour))
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "permission")
	})
}
