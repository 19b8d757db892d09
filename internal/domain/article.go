package domain

import (
	"time"

	"blog-server/internal/util/slug"
)

// Article is a blog post written by exactly one User.
//
// Slug is derived from Title once, at construction time, and identifies the
// article in URLs. AddedAt is stamped at construction and never changes.
type Article struct {
	ID       int64
	Title    string
	Slug     string
	Headline string
	Content  string
	Author   User
	AddedAt  time.Time
}

// NewArticle builds an Article from its parts, deriving the slug from the
// title and stamping AddedAt with the current time.
func NewArticle(title, headline, content string, author User) *Article {
	return NewArticleAt(title, headline, content, author, time.Now().UTC())
}

// NewArticleAt is NewArticle with an explicit timestamp.
func NewArticleAt(title, headline, content string, author User, addedAt time.Time) *Article {
	return &Article{
		Title:    title,
		Slug:     slug.Make(title),
		Headline: headline,
		Content:  content,
		Author:   author,
		AddedAt:  addedAt,
	}
}
