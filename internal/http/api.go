package http

import (
	"embed"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"blog-server/internal/config"
	"blog-server/internal/domain"
	"blog-server/internal/service"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Handler wires HTTP routes to domain services.
type Handler struct {
	articles service.ArticleService
	users    service.UserService
	cfg      config.Config
	logger   *logrus.Logger
}

func NewHandler(articles service.ArticleService, users service.UserService, cfg config.Config, logger *logrus.Logger) *Handler {
	return &Handler{
		articles: articles,
		users:    users,
		cfg:      cfg,
		logger:   logger,
	}
}

// NewRouter builds the gin engine with all middleware, templates and routes.
func NewRouter(h *Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestIDMiddleware())
	router.Use(accessLogMiddleware(h.logger))
	router.Use(corsMiddleware())
	router.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/*.tmpl")))
	h.RegisterRoutes(router)
	return router
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/", h.blogPage)
	router.GET("/article/:slug", h.articlePage)

	api := router.Group("/api")
	{
		api.GET("/article/", h.listArticles)
		api.GET("/article/:slug", h.getArticle)
		api.GET("/user/", h.listUsers)
		api.GET("/user/:login", h.getUser)
		api.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"ok": "ok"})
		})
	}
}

func (h *Handler) listArticles(c *gin.Context) {
	articles, err := h.articles.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]ArticleResponse, len(articles))
	for i := range articles {
		resp[i] = articleToResponse(articles[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) getArticle(c *gin.Context) {
	article, err := h.articles.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "This article does not exist"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, articleToResponse(*article))
}

func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]UserResponse, len(users))
	for i := range users {
		resp[i] = userToResponse(users[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) getUser(c *gin.Context) {
	user, err := h.users.GetByLogin(c.Request.Context(), c.Param("login"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "This user does not exist"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, userToResponse(*user))
}

// UserResponse is the JSON shape of a User. Description is emitted as an
// explicit null when absent.
type UserResponse struct {
	ID          int64   `json:"id"`
	Login       string  `json:"login"`
	Firstname   string  `json:"firstname"`
	Lastname    string  `json:"lastname"`
	Description *string `json:"description"`
}

// ArticleResponse is the JSON shape of an Article with its nested author.
// AddedAt carries the raw timestamp; formatting is an HTML-only concern.
type ArticleResponse struct {
	ID       int64        `json:"id"`
	Title    string       `json:"title"`
	Slug     string       `json:"slug"`
	Headline string       `json:"headline"`
	Content  string       `json:"content"`
	Author   UserResponse `json:"author"`
	AddedAt  time.Time    `json:"addedAt"`
}

func userToResponse(user domain.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		Login:       user.Login,
		Firstname:   user.Firstname,
		Lastname:    user.Lastname,
		Description: user.Description,
	}
}

func articleToResponse(article domain.Article) ArticleResponse {
	return ArticleResponse{
		ID:       article.ID,
		Title:    article.Title,
		Slug:     article.Slug,
		Headline: article.Headline,
		Content:  article.Content,
		Author:   userToResponse(article.Author),
		AddedAt:  article.AddedAt,
	}
}
