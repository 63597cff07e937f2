package service

import (
	"context"

	"gorm.io/gorm"

	"rentaldesk/internal/errors"
	"rentaldesk/internal/model"
	"rentaldesk/internal/repository"
)

// UserUpdate is an explicit partial update; only non-nil fields are applied.
type UserUpdate struct {
	Username *string
	Role     *string
}

// UserService exposes user administration operations.
type UserService interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, id uint, update UserUpdate) (*model.User, error)
	DeleteUser(ctx context.Context, id uint) error
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService builds a UserService.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

func (s *userService) UpdateUser(ctx context.Context, id uint, update UserUpdate) (*model.User, error) {
	if update.Username == nil && update.Role == nil {
		return nil, errors.ErrNoFieldsToUpdate
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, err
	}

	if update.Username != nil {
		user.Username = *update.Username
	}
	if update.Role != nil {
		user.Role = *update.Role
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrUserNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}
