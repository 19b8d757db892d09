package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-server/internal/domain"
	"blog-server/internal/util/datefmt"
)

// RenderedArticle is the HTML view model of an Article: same fields as the
// entity, but AddedAt is already formatted for display.
type RenderedArticle struct {
	Slug     string
	Title    string
	Headline string
	Content  string
	Author   domain.User
	AddedAt  string
}

func renderArticle(article domain.Article) RenderedArticle {
	return RenderedArticle{
		Slug:     article.Slug,
		Title:    article.Title,
		Headline: article.Headline,
		Content:  article.Content,
		Author:   article.Author,
		AddedAt:  datefmt.English(article.AddedAt),
	}
}

func (h *Handler) blogPage(c *gin.Context) {
	articles, err := h.articles.List(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	rendered := make([]RenderedArticle, len(articles))
	for i := range articles {
		rendered[i] = renderArticle(articles[i])
	}

	c.HTML(http.StatusOK, "blog.tmpl", gin.H{
		"Title":         h.cfg.Blog.Title,
		"BannerTitle":   h.cfg.Blog.Banner.Title,
		"BannerContent": h.cfg.Blog.Banner.Content,
		"Articles":      rendered,
	})
}

func (h *Handler) articlePage(c *gin.Context) {
	article, err := h.articles.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.String(http.StatusNotFound, "This article does not exist")
			return
		}
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	view := renderArticle(*article)
	c.HTML(http.StatusOK, "article.tmpl", gin.H{
		"Title":   view.Title,
		"Article": view,
	})
}
