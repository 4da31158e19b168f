package handler

import (
	"net/http"

	"github.com/dxbsouq/souq-backend/internal/apperror"
	jwtauth "github.com/dxbsouq/souq-backend/internal/auth/jwt"
	"github.com/dxbsouq/souq-backend/internal/handlers"
	"github.com/dxbsouq/souq-backend/internal/location"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var validate = validator.New()

type handler struct {
	store          *location.Store
	authMiddleware func(http.Handler) http.Handler
	logger         *zap.Logger
}

func New(store *location.Store, authMiddleware func(http.Handler) http.Handler, logger *zap.Logger) handlers.Handler {
	return &handler{
		store:          store,
		authMiddleware: authMiddleware,
		logger:         logger,
	}
}

func (h *handler) Register(router chi.Router) {
	router.Get("/locations", apperror.Middleware(h.locationsHandler))

	router.Group(func(privateRouter chi.Router) {
		privateRouter.Use(h.authMiddleware)

		privateRouter.Get("/me/location", apperror.Middleware(h.currentLocationHandler))
		privateRouter.Put("/me/location", apperror.Middleware(h.setLocationHandler))
	})
}

// @Tags		location
// @Success	200	{object}	LocationsResponse
// @Router		/locations [get]
func (h *handler) locationsHandler(w http.ResponseWriter, r *http.Request) error {
	render.JSON(w, r, LocationsResponse{Locations: location.Emirates})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		location
// @Success	200		{object}	CurrentLocationResponse
// @Failure	401		{object}	apperror.AppError
// @Router		/me/location [get]
func (h *handler) currentLocationHandler(w http.ResponseWriter, r *http.Request) error {
	userID := r.Context().Value(jwtauth.UserIDContextKey{}).(int)

	current, _ := h.store.Get(userID)

	render.JSON(w, r, CurrentLocationResponse{Location: current})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		location
// @Param		request	body		SetLocationRequest	true	"request body"
// @Success	200		{object}	CurrentLocationResponse
// @Failure	400,401	{object}	apperror.AppError
// @Router		/me/location [put]
func (h *handler) setLocationHandler(w http.ResponseWriter, r *http.Request) error {
	var dto SetLocationRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	if !location.IsKnown(dto.Location) {
		return apperror.NewFieldsValidationErr(nil, []string{"location"})
	}

	userID := r.Context().Value(jwtauth.UserIDContextKey{}).(int)

	h.store.Set(userID, dto.Location)

	render.JSON(w, r, CurrentLocationResponse{Location: dto.Location})

	return nil
}
