package handler

import (
	"github.com/dxbsouq/souq-backend/internal/draft"
	"github.com/dxbsouq/souq-backend/internal/draft/workflow"
)

type DraftResponse struct {
	Draft *draft.Draft   `json:"draft"`
	State workflow.State `json:"state"`
}

type StateResponse struct {
	State workflow.State `json:"state"`
}

type PublishedResponse struct {
	ListingID string         `json:"listingId"`
	State     workflow.State `json:"state"`
}

type SelectLocationRequest struct {
	Location string `json:"location" validate:"required"`
}

type SelectCategoryRequest struct {
	Category string `json:"category" validate:"required"`
}

type SubmitFormRequest struct {
	Fields draft.Fields `json:"fields" validate:"required"`
}

type SubmitSummaryRequest struct {
	Summary draft.Fields `json:"summary" validate:"required"`
}
