package handler

import (
	"context"
	"net/http"

	"github.com/dxbsouq/souq-backend/internal/apperror"
	jwtauth "github.com/dxbsouq/souq-backend/internal/auth/jwt"
	"github.com/dxbsouq/souq-backend/internal/draft"
	"github.com/dxbsouq/souq-backend/internal/draft/workflow"
	"github.com/dxbsouq/souq-backend/internal/handlers"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var validate = validator.New()

type Service interface {
	Start(userID int) *draft.Draft
	SelectLocation(draftID string, userID int, loc string) (workflow.State, error)
	SelectCategory(draftID string, userID int, category draft.CategoryID) (workflow.State, error)
	SubmitForm(ctx context.Context, draftID string, userID int, fields draft.Fields) (workflow.State, error)
	SubmitSummary(ctx context.Context, draftID string, userID int, summary draft.Fields) (string, workflow.State, error)
	Back(draftID string, userID int) (workflow.State, error)
	Get(ctx context.Context, draftID string, userID int) (*draft.Draft, workflow.State, error)
}

type handler struct {
	service        Service
	authMiddleware func(http.Handler) http.Handler
	logger         *zap.Logger
}

func New(service Service, authMiddleware func(http.Handler) http.Handler, logger *zap.Logger) handlers.Handler {
	return &handler{
		service:        service,
		authMiddleware: authMiddleware,
		logger:         logger,
	}
}

func (h *handler) Register(router chi.Router) {
	router.Route("/drafts", func(draftRouter chi.Router) {
		draftRouter.Use(h.authMiddleware)

		draftRouter.Post("/", apperror.Middleware(h.startHandler))
		draftRouter.Get("/{id}", apperror.Middleware(h.getHandler))
		draftRouter.Post("/{id}/location", apperror.Middleware(h.selectLocationHandler))
		draftRouter.Post("/{id}/category", apperror.Middleware(h.selectCategoryHandler))
		draftRouter.Post("/{id}/form", apperror.Middleware(h.submitFormHandler))
		draftRouter.Post("/{id}/summary", apperror.Middleware(h.submitSummaryHandler))
		draftRouter.Post("/{id}/back", apperror.Middleware(h.backHandler))
	})
}

func userID(r *http.Request) int {
	return r.Context().Value(jwtauth.UserIDContextKey{}).(int)
}

// @Security	ApiKeyAuth
// @Tags		drafts
// @Success	200		{object}	DraftResponse
// @Failure	401,500	{object}	apperror.AppError
// @Router		/drafts [post]
func (h *handler) startHandler(w http.ResponseWriter, r *http.Request) error {
	d := h.service.Start(userID(r))

	render.JSON(w, r, DraftResponse{Draft: d, State: workflow.StateSelectLocation})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		drafts
// @Param		id	path		string	true	"draft id"
// @Success	200			{object}	DraftResponse
// @Failure	401,404,500	{object}	apperror.AppError
// @Router		/drafts/{id} [get]
func (h *handler) getHandler(w http.ResponseWriter, r *http.Request) error {
	d, state, err := h.service.Get(r.Context(), chi.URLParam(r, "id"), userID(r))
	if err != nil {
		return err
	}

	render.JSON(w, r, DraftResponse{Draft: d, State: state})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		drafts
// @Param		id		path		string					true	"draft id"
// @Param		request	body		SelectLocationRequest	true	"request body"
// @Success	200			{object}	StateResponse
// @Failure	400,401,404	{object}	apperror.AppError
// @Router		/drafts/{id}/location [post]
func (h *handler) selectLocationHandler(w http.ResponseWriter, r *http.Request) error {
	var dto SelectLocationRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	state, err := h.service.SelectLocation(chi.URLParam(r, "id"), userID(r), dto.Location)
	if err != nil {
		return err
	}

	render.JSON(w, r, StateResponse{State: state})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		drafts
// @Param		id		path		string					true	"draft id"
// @Param		request	body		SelectCategoryRequest	true	"request body"
// @Success	200			{object}	StateResponse
// @Failure	400,401,404	{object}	apperror.AppError
// @Router		/drafts/{id}/category [post]
func (h *handler) selectCategoryHandler(w http.ResponseWriter, r *http.Request) error {
	var dto SelectCategoryRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	state, err := h.service.SelectCategory(chi.URLParam(r, "id"), userID(r), draft.CategoryID(dto.Category))
	if err != nil {
		return err
	}

	render.JSON(w, r, StateResponse{State: state})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		drafts
// @Param		id		path		string				true	"draft id"
// @Param		request	body		SubmitFormRequest	true	"request body"
// @Success	200			{object}	StateResponse
// @Failure	400,401,404	{object}	apperror.AppError
// @Router		/drafts/{id}/form [post]
func (h *handler) submitFormHandler(w http.ResponseWriter, r *http.Request) error {
	var dto SubmitFormRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	state, err := h.service.SubmitForm(r.Context(), chi.URLParam(r, "id"), userID(r), dto.Fields)
	if err != nil {
		return err
	}

	render.JSON(w, r, StateResponse{State: state})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		drafts
// @Param		id		path		string					true	"draft id"
// @Param		request	body		SubmitSummaryRequest	true	"request body"
// @Success	200				{object}	PublishedResponse
// @Failure	400,401,404,502	{object}	apperror.AppError
// @Router		/drafts/{id}/summary [post]
func (h *handler) submitSummaryHandler(w http.ResponseWriter, r *http.Request) error {
	var dto SubmitSummaryRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	listingID, state, err := h.service.SubmitSummary(r.Context(), chi.URLParam(r, "id"), userID(r), dto.Summary)
	if err != nil {
		return err
	}

	render.JSON(w, r, PublishedResponse{ListingID: listingID, State: state})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		drafts
// @Param		id	path		string	true	"draft id"
// @Success	200			{object}	StateResponse
// @Failure	401,404		{object}	apperror.AppError
// @Router		/drafts/{id}/back [post]
func (h *handler) backHandler(w http.ResponseWriter, r *http.Request) error {
	state, err := h.service.Back(chi.URLParam(r, "id"), userID(r))
	if err != nil {
		return err
	}

	render.JSON(w, r, StateResponse{State: state})

	return nil
}
