package db

import (
	"context"
	"errors"

	"github.com/dxbsouq/souq-backend/internal/draft"
	"github.com/dxbsouq/souq-backend/internal/logging"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

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

func (r *repository) Create(ctx context.Context, d *draft.Draft) error {
	query := `
		INSERT INTO drafts (id, user_id, location, category, fields, status)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	logging.LogSQLQuery(r.logger, query)

	_, err := r.client.Exec(
		ctx,
		query,
		d.ID,
		d.UserID,
		d.Location,
		d.Category,
		d.Fields,
		d.Status,
	)

	return err
}

func (r *repository) GetByID(ctx context.Context, id string, userID int) (*draft.Draft, error) {
	query := `
		SELECT id, user_id, location, category, fields, summary, status, created_at, updated_at
		FROM drafts
		WHERE id=$1 AND user_id=$2
	`

	logging.LogSQLQuery(r.logger, query)

	var d draft.Draft

	if err := r.client.QueryRow(ctx, query, id, userID).Scan(
		&d.ID,
		&d.UserID,
		&d.Location,
		&d.Category,
		&d.Fields,
		&d.Summary,
		&d.Status,
		&d.CreatedAt,
		&d.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDraftNotFound
		}

		return nil, err
	}

	return &d, nil
}
