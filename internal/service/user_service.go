package service

import (
	"context"
	"fmt"
	"strings"

	"shopkeeper/internal/domain"
	"shopkeeper/internal/repository"
)

// UserService defines the interface for user business logic
type UserService interface {
	Register(ctx context.Context, userID, username, image string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new instance of UserService
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// Register stores a user under the id issued by the identity provider
func (s *userService) Register(ctx context.Context, userID, username, image string) (*domain.User, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrMissingUserID
	}

	user := &domain.User{
		ID:       userID,
		Username: username,
		Image:    image,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// GetUserByID retrieves a user by ID
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	if userID == "" {
		return nil, ErrMissingUserID
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}
