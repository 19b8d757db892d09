package service_test

import (
	"context"
	"errors"
	"testing"

	"blog-server/internal/domain"
	"blog-server/internal/repository/sqlite"
	"blog-server/internal/service"
)

func newServices(t *testing.T) (service.UserService, service.ArticleService) {
	t.Helper()

	db, err := sqlite.Open(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	userRepo := sqlite.NewUserRepository(db)
	articleRepo := sqlite.NewArticleRepository(db)
	if err := userRepo.Init(ctx); err != nil {
		t.Fatalf("init users: %v", err)
	}
	if err := articleRepo.Init(ctx); err != nil {
		t.Fatalf("init articles: %v", err)
	}
	return service.NewUserService(userRepo), service.NewArticleService(articleRepo, userRepo)
}

func TestPublish(t *testing.T) {
	t.Parallel()

	users, articles := newServices(t)
	ctx := context.Background()

	if _, err := users.Register(ctx, "springjuergen", "Juergen", "Hoeller", nil); err != nil {
		t.Fatalf("register: %v", err)
	}

	article, err := articles.Publish(ctx, "Spring Framework 5.0 goes GA", "Dear Spring community ...", "Lorem ipsum", "springjuergen")
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if article.Slug != "spring-framework-5-0-goes-ga" {
		t.Errorf("slug = %q", article.Slug)
	}
	if article.Author.Login != "springjuergen" {
		t.Errorf("author = %q", article.Author.Login)
	}
	if article.AddedAt.IsZero() {
		t.Error("addedAt not stamped")
	}
}

func TestPublishUnknownAuthor(t *testing.T) {
	t.Parallel()

	_, articles := newServices(t)

	_, err := articles.Publish(context.Background(), "Orphan Post", "h", "c", "nobody")
	if !errors.Is(err, domain.ErrConstraintViolation) {
		t.Errorf("got %v, want ErrConstraintViolation", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	t.Parallel()

	users, _ := newServices(t)

	if _, err := users.Register(context.Background(), "   ", "No", "Login", nil); err == nil {
		t.Error("blank login accepted")
	}
}
