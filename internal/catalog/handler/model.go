package handler

import "github.com/dxbsouq/souq-backend/internal/catalog"

type CategoriesResponse struct {
	Categories []catalog.Category `json:"categories"`
}

type ListingsResponse struct {
	Listings []catalog.Listing `json:"listings"`
}

type ListingResponse struct {
	Listing catalog.Listing `json:"listing"`
}
