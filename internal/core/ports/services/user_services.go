package services

import (
	"context"

	"github.com/kenzhang87-cpu/networth-tracker/internal/core/domain"
	"github.com/kenzhang87-cpu/networth-tracker/internal/dto"
)

// UserSvcFacade defines user registration and credential checks.
type UserSvcFacade interface {
	// CreateUser registers a new user with a hashed password.
	CreateUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)

	// AuthenticateUser verifies a username/password pair and returns the
	// matching user.
	AuthenticateUser(ctx context.Context, username string, password string) (*domain.User, error)

	// GetUserByID retrieves a user by their unique identifier.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}
