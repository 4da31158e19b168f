package handler

import (
	"context"
	"net/http"

	"github.com/dxbsouq/souq-backend/internal/apperror"
	"github.com/dxbsouq/souq-backend/internal/catalog"
	"github.com/dxbsouq/souq-backend/internal/catalog/filter"
	"github.com/dxbsouq/souq-backend/internal/handlers"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"go.uber.org/zap"
)

type Service interface {
	Categories(sel filter.Selection) []catalog.Category
	Listings(sel filter.Selection) []catalog.Listing
	GetListing(ctx context.Context, id string) (*catalog.Listing, error)
}

type handler struct {
	service Service
	logger  *zap.Logger
}

func New(service Service, logger *zap.Logger) handlers.Handler {
	return &handler{
		service: service,
		logger:  logger,
	}
}

func (h *handler) Register(router chi.Router) {
	router.Get("/categories", apperror.Middleware(h.categoriesHandler))

	router.Route("/listings", func(listingRouter chi.Router) {
		listingRouter.Get("/", apperror.Middleware(h.listingsHandler))
		listingRouter.Get("/{id}", apperror.Middleware(h.listingHandler))
	})
}

func selectionFromQuery(r *http.Request) filter.Selection {
	sel := filter.Selection{
		Tab:             filter.TabAll,
		PropertySubType: filter.PropertySubType(r.URL.Query().Get("propertyType")),
		Query:           r.URL.Query().Get("query"),
	}

	if tab := r.URL.Query().Get("tab"); tab != "" {
		sel.Tab = filter.Tab(tab)
	}

	return sel
}

// @Tags		catalog
// @Param		tab				query		string	false	"all | furniture | property"
// @Param		propertyType	query		string	false	"buy | rent"
// @Param		query			query		string	false	"free-text title filter"
// @Success	200		{object}	CategoriesResponse
// @Failure	400,500	{object}	apperror.AppError
// @Router		/categories [get]
func (h *handler) categoriesHandler(w http.ResponseWriter, r *http.Request) error {
	categories := h.service.Categories(selectionFromQuery(r))

	render.JSON(w, r, CategoriesResponse{Categories: categories})

	return nil
}

// @Tags		catalog
// @Param		tab				query		string	false	"all | furniture | property"
// @Param		propertyType	query		string	false	"buy | rent"
// @Param		query			query		string	false	"free-text title filter"
// @Success	200		{object}	ListingsResponse
// @Failure	400,500	{object}	apperror.AppError
// @Router		/listings [get]
func (h *handler) listingsHandler(w http.ResponseWriter, r *http.Request) error {
	listings := h.service.Listings(selectionFromQuery(r))

	render.JSON(w, r, ListingsResponse{Listings: listings})

	return nil
}

// @Tags		catalog
// @Param		id		path		string	true	"listing id"
// @Success	200		{object}	ListingResponse
// @Failure	400,404,500	{object}	apperror.AppError
// @Router		/listings/{id} [get]
func (h *handler) listingHandler(w http.ResponseWriter, r *http.Request) error {
	listing, err := h.service.GetListing(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return err
	}

	render.JSON(w, r, ListingResponse{Listing: *listing})

	return nil
}
