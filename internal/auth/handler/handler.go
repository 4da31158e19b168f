package handler

import (
	"context"
	"net/http"

	"github.com/dxbsouq/souq-backend/internal/apperror"
	"github.com/dxbsouq/souq-backend/internal/handlers"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var validate = validator.New()

type Service interface {
	Register(ctx context.Context, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
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
	router.Route("/auth", func(authRouter chi.Router) {
		authRouter.Post("/register", apperror.Middleware(h.registerHandler))
		authRouter.Post("/login", apperror.Middleware(h.loginHandler))
	})
}

// @Tags		auth
// @Param		request	body		RegisterRequest	true	"request body"
// @Success	200		{object}	TokenResponse
// @Failure	400,500	{object}	apperror.AppError
// @Router		/auth/register [post]
func (h *handler) registerHandler(w http.ResponseWriter, r *http.Request) error {
	var dto RegisterRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	token, err := h.service.Register(r.Context(), dto.Email, dto.Password)
	if err != nil {
		return err
	}

	render.JSON(w, r, TokenResponse{AccessToken: token})

	return nil
}

// @Tags		auth
// @Param		request	body		LoginRequest	true	"request body"
// @Success	200		{object}	TokenResponse
// @Failure	400,500	{object}	apperror.AppError
// @Router		/auth/login [post]
func (h *handler) loginHandler(w http.ResponseWriter, r *http.Request) error {
	var dto LoginRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	token, err := h.service.Login(r.Context(), dto.Email, dto.Password)
	if err != nil {
		return err
	}

	render.JSON(w, r, TokenResponse{AccessToken: token})

	return nil
}
