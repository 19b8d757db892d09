package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"blog-server/internal/domain"
	"blog-server/internal/repository"
)

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	login TEXT NOT NULL UNIQUE,
	firstname TEXT NOT NULL,
	lastname TEXT NOT NULL,
	description TEXT NULL
);
`

type UserRepository struct {
	db *sql.DB
}

var _ repository.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createUsersTable); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}
	return nil
}

func (r *UserRepository) Save(ctx context.Context, user *domain.User) (*domain.User, error) {
	res, err := r.db.ExecContext(ctx, `
INSERT INTO users (login, firstname, lastname, description)
VALUES (?, ?, ?, ?)`,
		user.Login,
		user.Firstname,
		user.Lastname,
		user.Description,
	)
	if err != nil {
		return nil, fmt.Errorf("insert user %q: %w", user.Login, constraintErr(err))
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("user last insert id: %w", err)
	}
	user.ID = id
	return user, nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, login, firstname, lastname, description
FROM users
ORDER BY id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.ID,
			&user.Login,
			&user.Firstname,
			&user.Lastname,
			&user.Description,
		); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	var user domain.User
	err := r.db.QueryRowContext(ctx, `
SELECT id, login, firstname, lastname, description
FROM users
WHERE login = ?`,
		login,
	).Scan(
		&user.ID,
		&user.Login,
		&user.Firstname,
		&user.Lastname,
		&user.Description,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user %q: %w", login, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("query user %q: %w", login, err)
	}
	return &user, nil
}
