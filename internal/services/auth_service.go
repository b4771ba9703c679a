package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"hireflow/internal/models"
	"hireflow/internal/storage"
	"hireflow/internal/transport/dto"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type authService struct {
	userRepo          storage.UserRepository
	jwtSecret         string
	accessExpiration  time.Duration
	refreshExpiration time.Duration
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(userRepo storage.UserRepository, jwtSecret string, accessExpiration, refreshExpiration time.Duration) AuthService {
	return &authService{
		userRepo:          userRepo,
		jwtSecret:         jwtSecret,
		accessExpiration:  accessExpiration,
		refreshExpiration: refreshExpiration,
	}
}

// Register creates an account and issues a fresh token pair. Duplicate
// emails surface as ErrConflict; the storage unique constraint decides
// the winner of concurrent attempts. Company accounts default their
// company name to the account name.
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing password for email %s: %v", req.Email, err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	var companyName *string
	if req.Role == models.RoleCompany {
		companyName = &req.Name
	}

	user, err := s.userRepo.Create(ctx, req.Name, req.Email, string(hashedPassword), req.Role, companyName)
	if err != nil {
		return nil, mapRepoError(err, "registering user")
	}

	log.Printf("New user registered: %s (%s)", user.Email, user.Role)
	return s.buildAuthResponse(user)
}

// Login verifies credentials against the stored bcrypt hash and issues a
// fresh token pair.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, &dto.GetUserByEmailRequest{Email: req.Email})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Printf("Login attempt failed for email %s: user not found", req.Email)
			return nil, ErrInvalidCredentials
		}
		log.Printf("Error fetching user by email %s during login: %v", req.Email, err)
		return nil, fmt.Errorf("internal error during login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		log.Printf("Login attempt failed for email %s: invalid password", req.Email)
		return nil, ErrInvalidCredentials
	}

	log.Printf("User logged in: %s", user.Email)
	return s.buildAuthResponse(user)
}

// Refresh validates the refresh token's signature and expiry, then issues
// a new pair bound to the same subject email.
func (s *authService) Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.AuthResponse, error) {
	email, err := s.ValidateToken(req.RefreshToken)
	if err != nil {
		log.Printf("Refresh attempt with invalid token: %v", err)
		return nil, ErrInvalidToken
	}

	user, err := s.userRepo.GetByEmail(ctx, &dto.GetUserByEmailRequest{Email: email})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("internal error during token refresh: %w", err)
	}

	return s.buildAuthResponse(user)
}

// ValidateToken parses and verifies a signed token, returning the subject
// email.
func (s *authService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

func (s *authService) generateToken(email string, expiration time.Duration) (string, error) {
	claims := &jwt.RegisteredClaims{
		Subject:   email,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiration)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *authService) buildAuthResponse(user *models.User) (*dto.AuthResponse, error) {
	accessToken, err := s.generateToken(user.Email, s.accessExpiration)
	if err != nil {
		log.Printf("Error generating access token for user %s: %v", user.Email, err)
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, err := s.generateToken(user.Email, s.refreshExpiration)
	if err != nil {
		log.Printf("Error generating refresh token for user %s: %v", user.Email, err)
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &dto.AuthResponse{
		Token:        accessToken,
		RefreshToken: refreshToken,
		Type:         "Bearer",
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		Role:         user.Role,
		ExpiresIn:    s.accessExpiration.Milliseconds(),
	}, nil
}
