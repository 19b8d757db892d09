package seed_test

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"blog-server/internal/repository/sqlite"
	"blog-server/internal/seed"
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

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestRun(t *testing.T) {
	t.Parallel()

	users, articles := newServices(t)
	ctx := context.Background()

	if err := seed.Run(ctx, quietLogger(), users, articles); err != nil {
		t.Fatalf("seed: %v", err)
	}

	user, err := users.GetByLogin(ctx, "smaldini")
	if err != nil {
		t.Fatalf("seed user missing: %v", err)
	}
	if user.Firstname != "Stéphane" || user.Lastname != "Maldini" {
		t.Errorf("unexpected seed user: %+v", user)
	}

	all, err := articles.List(ctx)
	if err != nil {
		t.Fatalf("list articles: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("got %d articles, want 2", len(all))
	}
	for _, a := range all {
		if a.Author.Login != "smaldini" {
			t.Errorf("article %q author = %q", a.Slug, a.Author.Login)
		}
	}
}

func TestRunIsIdempotent(t *testing.T) {
	t.Parallel()

	users, articles := newServices(t)
	ctx := context.Background()

	if err := seed.Run(ctx, quietLogger(), users, articles); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if err := seed.Run(ctx, quietLogger(), users, articles); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	all, err := articles.List(ctx)
	if err != nil {
		t.Fatalf("list articles: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("got %d articles after reseed, want 2", len(all))
	}
}
