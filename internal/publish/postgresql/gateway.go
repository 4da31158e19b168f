package postgresql

import (
	"context"
	"errors"

	"github.com/dxbsouq/souq-backend/internal/apperror"
	"github.com/dxbsouq/souq-backend/internal/draft"
	"github.com/dxbsouq/souq-backend/internal/logging"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type gateway struct {
	client *pgxpool.Pool
	logger *zap.Logger
}

func New(client *pgxpool.Pool, logger *zap.Logger) *gateway {
	return &gateway{
		client: client,
		logger: logger,
	}
}

func (g *gateway) Publish(ctx context.Context, userID int, d *draft.Draft) (string, error) {
	if userID == 0 {
		return "", apperror.ErrUnauthenticated
	}
	if g.client == nil {
		return "", apperror.ErrNotConfigured
	}

	query := `
		UPDATE drafts
		SET summary=$1, status=$2, updated_at=now()
		WHERE id=$3 AND user_id=$4
		RETURNING id
	`

	logging.LogSQLQuery(g.logger, query)

	var listingID string

	if err := g.client.QueryRow(
		ctx,
		query,
		d.Summary,
		draft.StatusPublished,
		d.ID,
		userID,
	).Scan(&listingID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperror.ErrNotFound
		}

		g.logger.Error("backend rejected publish", zap.String("draft_id", d.ID), zap.Error(err))

		return "", apperror.NewRemoteError(err.Error())
	}

	return listingID, nil
}
