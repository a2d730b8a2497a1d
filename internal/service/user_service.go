package service

import (
	"context"

	"pulse/internal/models"
	"pulse/internal/repository"
)

const (
	maxBioLen    = 500
	maxAvatarLen = 500
)

// UserService handles profile reads and updates.
type UserService struct {
	users repository.UserRepository
}

// UpdateProfileInput carries the editable profile fields.
type UpdateProfileInput struct {
	UserID uint
	Bio    string
	Avatar string
}

// NewUserService creates a new user service.
func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// GetProfile returns a user with their post count.
func (s *UserService) GetProfile(ctx context.Context, id uint) (*models.User, error) {
	return s.users.GetProfile(ctx, id)
}

// UpdateProfile validates and applies bio/avatar changes.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	if len(in.Bio) > maxBioLen {
		return nil, models.NewValidationError("Bio too long (max 500 characters)")
	}
	if len(in.Avatar) > maxAvatarLen {
		return nil, models.NewValidationError("Avatar URL too long")
	}

	user, err := s.users.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	user.Bio = in.Bio
	user.Avatar = in.Avatar
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
