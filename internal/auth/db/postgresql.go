package db

import (
	"context"
	"errors"

	"github.com/dxbsouq/souq-backend/internal/auth"
	"github.com/dxbsouq/souq-backend/internal/logging"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const uniqueViolationCode = "23505"

type repository struct {
	client *pgxpool.Pool
	logger *zap.Logger
}

func New(client *pgxpool.Pool, logger *zap.Logger) *repository {
	return &repository{
		client: client,
		logger: logger,
	}
}

func (r *repository) Create(ctx context.Context, email string, passwordHash []byte) (int, error) {
	query := `
		INSERT INTO users (email, password_hash)
		VALUES ($1, $2)
		RETURNING id
	`

	logging.LogSQLQuery(r.logger, query)

	var id int

	if err := r.client.QueryRow(ctx, query, email, passwordHash).Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return 0, ErrEmailTaken
		}

		return 0, err
	}

	return id, nil
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*auth.User, error) {
	query := `
		SELECT id, email, password_hash
		FROM users
		WHERE email=$1
	`

	logging.LogSQLQuery(r.logger, query)

	var user auth.User

	if err := r.client.QueryRow(ctx, query, email).Scan(&user.ID, &user.Email, &user.PasswordHash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	return &user, nil
}
