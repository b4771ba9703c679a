package services

import (
	"context"
	"log"

	"hireflow/internal/models"
	"hireflow/internal/storage"
	"hireflow/internal/transport/dto"
)

type userService struct {
	userRepo storage.UserRepository
}

// NewUserService creates a new instance of UserService.
func NewUserService(userRepo storage.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// GetByID resolves an authenticated principal's ID to the full user
// record. A valid token whose user vanished yields ErrNotFound.
func (s *userService) GetByID(ctx context.Context, req *dto.GetUserByIdRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "fetching user by ID")
	}
	return user, nil
}

// UpdateProfile applies only the non-nil fields of the patch. The
// caller's role decides which field set is eligible; fields belonging to
// the other role are dropped before the patch reaches storage.
// Name/location/phone are common to both roles.
func (s *userService) UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*models.User, error) {
	current, err := s.userRepo.GetByID(ctx, &dto.GetUserByIdRequest{ID: req.UserID})
	if err != nil {
		return nil, mapRepoError(err, "fetching user for profile update")
	}

	patch := *req
	switch current.Role {
	case models.RoleJobSeeker:
		patch.CompanyName = nil
		patch.Industry = nil
		patch.CompanySize = nil
		patch.Website = nil
		patch.CompanyDescription = nil
	case models.RoleCompany:
		patch.Title = nil
		patch.Bio = nil
		patch.Skills = nil
	}

	// Blank names are ignored rather than rejected.
	if patch.Name != nil && *patch.Name == "" {
		patch.Name = nil
	}

	user, err := s.userRepo.UpdateProfile(ctx, &patch)
	if err != nil {
		return nil, mapRepoError(err, "updating profile")
	}

	log.Printf("Profile updated for user: %s", user.Email)
	return user, nil
}
