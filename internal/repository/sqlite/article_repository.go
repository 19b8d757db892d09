package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"blog-server/internal/domain"
	"blog-server/internal/repository"
)

const createArticlesTable = `
CREATE TABLE IF NOT EXISTS articles (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	slug TEXT NOT NULL UNIQUE,
	headline TEXT NOT NULL,
	content TEXT NOT NULL,
	author_id INTEGER NOT NULL REFERENCES users(id),
	added_at DATETIME NOT NULL
);
`

// selectArticle joins the author so every read path carries the nested user.
const selectArticle = `
SELECT a.id, a.title, a.slug, a.headline, a.content, a.added_at,
	u.id, u.login, u.firstname, u.lastname, u.description
FROM articles a
JOIN users u ON u.id = a.author_id
`

type ArticleRepository struct {
	db *sql.DB
}

var _ repository.ArticleRepository = (*ArticleRepository)(nil)

func NewArticleRepository(db *sql.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

func (r *ArticleRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createArticlesTable); err != nil {
		return fmt.Errorf("create articles table: %w", err)
	}
	return nil
}

func (r *ArticleRepository) Save(ctx context.Context, article *domain.Article) (*domain.Article, error) {
	if article.Author.ID == 0 {
		// a zero author id can never reference a persisted user
		return nil, fmt.Errorf("insert article %q: author not persisted: %w",
			article.Slug, domain.ErrConstraintViolation)
	}

	res, err := r.db.ExecContext(ctx, `
INSERT INTO articles (title, slug, headline, content, author_id, added_at)
VALUES (?, ?, ?, ?, ?, ?)`,
		article.Title,
		article.Slug,
		article.Headline,
		article.Content,
		article.Author.ID,
		article.AddedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert article %q: %w", article.Slug, constraintErr(err))
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("article last insert id: %w", err)
	}
	article.ID = id
	return article, nil
}

func (r *ArticleRepository) FindAllByAddedAtDesc(ctx context.Context) ([]domain.Article, error) {
	// id tie-break keeps same-timestamp articles in insertion order
	rows, err := r.db.QueryContext(ctx, selectArticle+`ORDER BY a.added_at DESC, a.id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query articles: %w", err)
	}
	defer rows.Close()

	var articles []domain.Article
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, *article)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate articles: %w", err)
	}
	return articles, nil
}

func (r *ArticleRepository) FindBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	row := r.db.QueryRowContext(ctx, selectArticle+`WHERE a.slug = ?`, slug)

	article, err := scanArticle(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("article %q: %w", slug, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("query article %q: %w", slug, err)
	}
	return article, nil
}

func scanArticle(row interface {
	Scan(dest ...any) error
}) (*domain.Article, error) {
	var article domain.Article
	if err := row.Scan(
		&article.ID,
		&article.Title,
		&article.Slug,
		&article.Headline,
		&article.Content,
		&article.AddedAt,
		&article.Author.ID,
		&article.Author.Login,
		&article.Author.Firstname,
		&article.Author.Lastname,
		&article.Author.Description,
	); err != nil {
		return nil, err
	}
	return &article, nil
}
