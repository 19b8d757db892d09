// Package seed populates a fresh store with sample content at startup.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"blog-server/internal/domain"
	"blog-server/internal/service"
)

const seedLogin = "smaldini"

// Run inserts the sample user and articles. It is an explicit startup step:
// main calls it exactly once, before the HTTP listener starts. When the seed
// user already exists (the database persists across restarts) it is a no-op.
func Run(ctx context.Context, logger *logrus.Logger, users service.UserService, articles service.ArticleService) error {
	if _, err := users.GetByLogin(ctx, seedLogin); err == nil {
		logger.Infof("seed user %q already present, skipping", seedLogin)
		return nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("check seed user: %w", err)
	}

	if _, err := users.Register(ctx, seedLogin, "Stéphane", "Maldini", nil); err != nil {
		return fmt.Errorf("seed user: %w", err)
	}

	titles := []string{
		"Reactor Bismuth is out",
		"Reactor Aluminium has landed",
	}
	for _, title := range titles {
		if _, err := articles.Publish(ctx, title, "Lorem ipsum", "dolor sit amet", seedLogin); err != nil {
			return fmt.Errorf("seed article %q: %w", title, err)
		}
	}

	logger.Infof("seeded %d articles by %q", len(titles), seedLogin)
	return nil
}
