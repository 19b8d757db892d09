package service

import (
	"context"
	"errors"
	"strings"

	"blog-server/internal/domain"
	"blog-server/internal/repository"
)

// UserService describes user lifecycle and lookup operations.
type UserService interface {
	Register(ctx context.Context, login, firstname, lastname string, description *string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	GetByLogin(ctx context.Context, login string) (*domain.User, error)
}

type userService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) Register(ctx context.Context, login, firstname, lastname string, description *string) (*domain.User, error) {
	login = strings.TrimSpace(login)
	if login == "" {
		return nil, errors.New("login is required")
	}

	user := &domain.User{
		Login:       login,
		Firstname:   firstname,
		Lastname:    lastname,
		Description: description,
	}
	return s.users.Save(ctx, user)
}

func (s *userService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.FindAll(ctx)
}

func (s *userService) GetByLogin(ctx context.Context, login string) (*domain.User, error) {
	return s.users.FindByLogin(ctx, login)
}
