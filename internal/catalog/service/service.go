package service

import (
	"context"
	"errors"

	"github.com/dxbsouq/souq-backend/internal/apperror"
	"github.com/dxbsouq/souq-backend/internal/catalog"
	"github.com/dxbsouq/souq-backend/internal/catalog/db"
	"github.com/dxbsouq/souq-backend/internal/catalog/filter"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mockcatalogservice

type Repository interface {
	GetCategories(ctx context.Context) ([]catalog.Category, error)
	GetListings(ctx context.Context) ([]catalog.Listing, error)
	GetListingByID(ctx context.Context, id string) (*catalog.Listing, error)
}

type Cache interface {
	GetListing(ctx context.Context, id string) (*catalog.Listing, error)
	SetListing(ctx context.Context, listing *catalog.Listing) error
}

type service struct {
	store      *catalog.Store
	repository Repository
	cache      Cache
	logger     *zap.Logger
}

func New(store *catalog.Store, repository Repository, cache Cache, logger *zap.Logger) *service {
	return &service{
		store:      store,
		repository: repository,
		cache:      cache,
		logger:     logger,
	}
}

// LoadStore reads the full catalog and freezes it into an immutable store.
// Called once on startup.
func LoadStore(ctx context.Context, repository Repository) (*catalog.Store, error) {
	categories, err := repository.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	listings, err := repository.GetListings(ctx)
	if err != nil {
		return nil, err
	}

	return catalog.NewStore(categories, listings)
}

func (s *service) Categories(sel filter.Selection) []catalog.Category {
	return filter.Categories(s.store.Categories(), sel)
}

func (s *service) Listings(sel filter.Selection) []catalog.Listing {
	return filter.Listings(s.store.Listings(), s.store, sel)
}

func (s *service) GetListing(ctx context.Context, id string) (*catalog.Listing, error) {
	cached, err := s.cache.GetListing(ctx, id)
	if err != nil {
		s.logger.Warn("unexpected error when reading listing cache", zap.Error(err))
	}
	if cached != nil {
		return cached, nil
	}

	listing, err := s.repository.GetListingByID(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrListingNotFound) {
			return nil, apperror.ErrNotFound
		}

		s.logger.Error("unexpected error when fetching listing by id", zap.Error(err))

		return nil, err
	}

	if err := s.cache.SetListing(ctx, listing); err != nil {
		s.logger.Warn("unexpected error when writing listing cache", zap.Error(err))
	}

	return listing, nil
}
