package repository

import (
	"context"

	"blog-server/internal/domain"
)

// ArticleRepository exposes persistence operations for Article entities.
type ArticleRepository interface {
	Init(ctx context.Context) error
	// Save persists the article, assigning its identity, and returns it with
	// the identity populated. A duplicate slug or an author that was never
	// persisted yields domain.ErrConstraintViolation.
	Save(ctx context.Context, article *domain.Article) (*domain.Article, error)
	// FindAllByAddedAtDesc returns all articles, most recent first.
	// Articles sharing a timestamp keep their insertion order.
	FindAllByAddedAtDesc(ctx context.Context) ([]domain.Article, error)
	// FindBySlug looks an article up by its unique slug.
	// Yields domain.ErrNotFound when no such article exists.
	FindBySlug(ctx context.Context, slug string) (*domain.Article, error)
}
