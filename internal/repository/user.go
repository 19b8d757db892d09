package repository

import (
	"context"

	"blog-server/internal/domain"
)

// UserRepository defines persistence operations for User entities.
type UserRepository interface {
	Init(ctx context.Context) error
	// Save persists the user, assigning its identity, and returns it with
	// the identity populated. A duplicate login yields
	// domain.ErrConstraintViolation.
	Save(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindAll returns every user in insertion order.
	FindAll(ctx context.Context) ([]domain.User, error)
	// FindByLogin looks a user up by its unique login.
	// Yields domain.ErrNotFound when no such user exists.
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
}
