package db

import (
	"context"
	"errors"

	"github.com/dxbsouq/souq-backend/internal/catalog"
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

func (r *repository) GetCategories(ctx context.Context) ([]catalog.Category, error) {
	query := `
		SELECT name, icon, color, group_tag, property_type
		FROM categories
		ORDER BY position
	`

	logging.LogSQLQuery(r.logger, query)

	rows, err := r.client.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []catalog.Category

	for rows.Next() {
		var c catalog.Category
		if err := rows.Scan(&c.Name, &c.Icon, &c.Color, &c.Group, &c.PropertyType); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

func (r *repository) GetListings(ctx context.Context) ([]catalog.Listing, error) {
	query := `
		SELECT id, title, price, category_name, image, description, seller, location, featured, property_type
		FROM listings
		ORDER BY position
	`

	logging.LogSQLQuery(r.logger, query)

	rows, err := r.client.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []catalog.Listing

	for rows.Next() {
		var l catalog.Listing
		if err := rows.Scan(
			&l.ID,
			&l.Title,
			&l.Price,
			&l.CategoryName,
			&l.Image,
			&l.Description,
			&l.Seller,
			&l.Location,
			&l.Featured,
			&l.PropertyType,
		); err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}

	return listings, rows.Err()
}

func (r *repository) GetListingByID(ctx context.Context, id string) (*catalog.Listing, error) {
	query := `
		SELECT id, title, price, category_name, image, description, seller, location, featured, property_type
		FROM listings
		WHERE id=$1
	`

	logging.LogSQLQuery(r.logger, query)

	var l catalog.Listing

	if err := r.client.QueryRow(ctx, query, id).Scan(
		&l.ID,
		&l.Title,
		&l.Price,
		&l.CategoryName,
		&l.Image,
		&l.Description,
		&l.Seller,
		&l.Location,
		&l.Featured,
		&l.PropertyType,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrListingNotFound
		}

		return nil, err
	}

	return &l, nil
}
