package services_test

import (
	"context"
	"testing"

	"hireflow/internal/models"
	"hireflow/internal/services"
	"hireflow/internal/storage"
	"hireflow/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func strPtr(s string) *string { return &s }

func TestUserService_UpdateProfile(t *testing.T) {
	seekerID := uuid.New()
	seeker := &models.User{ID: seekerID, Name: "Alice", Email: "alice@example.com", Role: models.RoleJobSeeker}

	companyID := uuid.New()
	company := &models.User{ID: companyID, Name: "Acme", Email: "hr@acme.com", Role: models.RoleCompany}

	t.Run("Job seeker patch drops company fields", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := services.NewUserService(mockRepo)

		mockRepo.On("GetByID", mock.Anything, &dto.GetUserByIdRequest{ID: seekerID}).Return(seeker, nil).Once()
		mockRepo.On("UpdateProfile", mock.Anything, mock.MatchedBy(func(p *dto.UpdateProfileRequest) bool {
			return p.Title != nil && *p.Title == "Engineer" &&
				p.CompanyName == nil && p.Industry == nil && p.Website == nil
		})).Return(seeker, nil).Once()

		_, err := svc.UpdateProfile(context.Background(), &dto.UpdateProfileRequest{
			UserID:      seekerID,
			Title:       strPtr("Engineer"),
			CompanyName: strPtr("Evil Corp"),
			Industry:    strPtr("Crime"),
			Website:     strPtr("https://evil.example.com"),
		})

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Company patch drops seeker fields", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := services.NewUserService(mockRepo)

		skills := []string{"Go"}
		mockRepo.On("GetByID", mock.Anything, &dto.GetUserByIdRequest{ID: companyID}).Return(company, nil).Once()
		mockRepo.On("UpdateProfile", mock.Anything, mock.MatchedBy(func(p *dto.UpdateProfileRequest) bool {
			return p.Industry != nil && *p.Industry == "Tech" &&
				p.Title == nil && p.Bio == nil && p.Skills == nil
		})).Return(company, nil).Once()

		_, err := svc.UpdateProfile(context.Background(), &dto.UpdateProfileRequest{
			UserID:   companyID,
			Industry: strPtr("Tech"),
			Title:    strPtr("CEO"),
			Bio:      strPtr("hello"),
			Skills:   &skills,
		})

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Empty patch leaves everything alone", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := services.NewUserService(mockRepo)

		mockRepo.On("GetByID", mock.Anything, mock.Anything).Return(seeker, nil).Once()
		mockRepo.On("UpdateProfile", mock.Anything, mock.MatchedBy(func(p *dto.UpdateProfileRequest) bool {
			return p.Name == nil && p.Location == nil && p.Phone == nil &&
				p.Title == nil && p.Bio == nil && p.Skills == nil
		})).Return(seeker, nil).Once()

		updated, err := svc.UpdateProfile(context.Background(), &dto.UpdateProfileRequest{UserID: seekerID})

		assert.NoError(t, err)
		assert.Equal(t, "Alice", updated.Name)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Blank name is ignored, not applied", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := services.NewUserService(mockRepo)

		mockRepo.On("GetByID", mock.Anything, mock.Anything).Return(seeker, nil).Once()
		mockRepo.On("UpdateProfile", mock.Anything, mock.MatchedBy(func(p *dto.UpdateProfileRequest) bool {
			return p.Name == nil
		})).Return(seeker, nil).Once()

		_, err := svc.UpdateProfile(context.Background(), &dto.UpdateProfileRequest{UserID: seekerID, Name: strPtr("")})

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Vanished user", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := services.NewUserService(mockRepo)

		mockRepo.On("GetByID", mock.Anything, mock.Anything).Return(nil, storage.ErrNotFound).Once()

		_, err := svc.UpdateProfile(context.Background(), &dto.UpdateProfileRequest{UserID: uuid.New()})

		assert.ErrorIs(t, err, services.ErrNotFound)
		mockRepo.AssertNotCalled(t, "UpdateProfile")
	})
}
