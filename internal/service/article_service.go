package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"blog-server/internal/domain"
	"blog-server/internal/repository"
)

// ArticleService coordinates article publication and the two read paths.
type ArticleService interface {
	// Publish creates an article authored by the user with the given login.
	// The slug is derived from the title here and nowhere else.
	Publish(ctx context.Context, title, headline, content, authorLogin string) (*domain.Article, error)
	// List returns all articles, most recent first.
	List(ctx context.Context) ([]domain.Article, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Article, error)
}

type articleService struct {
	articles repository.ArticleRepository
	users    repository.UserRepository
}

func NewArticleService(articles repository.ArticleRepository, users repository.UserRepository) ArticleService {
	return &articleService{articles: articles, users: users}
}

func (s *articleService) Publish(ctx context.Context, title, headline, content, authorLogin string) (*domain.Article, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errors.New("title is required")
	}

	author, err := s.users.FindByLogin(ctx, authorLogin)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("author %q: %w", authorLogin, domain.ErrConstraintViolation)
		}
		return nil, err
	}

	return s.articles.Save(ctx, domain.NewArticle(title, headline, content, *author))
}

func (s *articleService) List(ctx context.Context) ([]domain.Article, error) {
	return s.articles.FindAllByAddedAtDesc(ctx)
}

func (s *articleService) GetBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	return s.articles.FindBySlug(ctx, slug)
}
