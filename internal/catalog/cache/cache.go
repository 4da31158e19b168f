package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/dxbsouq/souq-backend/internal/catalog"
	"github.com/redis/go-redis/v9"
)

const listingTTL = time.Hour

// ListingCache fronts listing detail reads. A miss is (nil, nil).
type ListingCache struct {
	client *redis.Client
}

func New(client *redis.Client) *ListingCache {
	return &ListingCache{client: client}
}

func (c *ListingCache) GetListing(ctx context.Context, id string) (*catalog.Listing, error) {
	data, err := c.client.Get(ctx, "listing:"+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var listing catalog.Listing
	if err := json.Unmarshal(data, &listing); err != nil {
		return nil, err
	}

	return &listing, nil
}

func (c *ListingCache) SetListing(ctx context.Context, listing *catalog.Listing) error {
	data, err := json.Marshal(listing)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, "listing:"+listing.ID, data, listingTTL).Err()
}
