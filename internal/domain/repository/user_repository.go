// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"gatehouse/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// Create persists a new user entity to the storage. The store enforces
	// uniqueness of username and email; a violation surfaces as
	// domainerrors.ErrUserAlreadyExists.
	Create(ctx context.Context, user *entity.User) error

	// FindByUsername retrieves a single user by their login username.
	// Returns ErrUserNotFound when no account matches.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
}
