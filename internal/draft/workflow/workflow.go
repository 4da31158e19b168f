// Package workflow drives a draft through the submission steps: location,
// category, category form, review, published. The machine performs no I/O;
// persistence and the publish call belong to the service layer, which
// commits the terminal transition with Complete only after the gateway
// succeeded.
package workflow

import (
	"fmt"

	"github.com/dxbsouq/souq-backend/internal/apperror"
	"github.com/dxbsouq/souq-backend/internal/draft"
	"github.com/dxbsouq/souq-backend/internal/location"
)

type State string

const (
	StateSelectLocation State = "select_location"
	StateSelectCategory State = "select_category"
	StateFillForm       State = "fill_form"
	StateReview         State = "review"
	StatePublished      State = "published"
)

var ErrAlreadyPublished = apperror.NewAppError("draft is already published")

// Input is one user action. Exactly one input kind is accepted per state.
type Input interface {
	isInput()
}

type LocationInput struct {
	Location string
}

type CategoryInput struct {
	Category draft.CategoryID
}

type FormInput struct {
	Fields draft.Fields
}

type SummaryInput struct {
	Summary draft.Fields
}

func (LocationInput) isInput() {}
func (CategoryInput) isInput() {}
func (FormInput) isInput()     {}
func (SummaryInput) isInput()  {}

type Machine struct {
	state State
	draft *draft.Draft
}

func New(d *draft.Draft) *Machine {
	return &Machine{
		state: StateSelectLocation,
		draft: d,
	}
}

func (m *Machine) State() State {
	return m.state
}

func (m *Machine) Draft() *draft.Draft {
	return m.draft
}

// Advance applies one input to the current state. On a guard failure the
// machine stays where it is, the draft is untouched and the returned
// ValidationError names every offending field. A SummaryInput that passes
// its guard stages the summary but keeps the machine in review: the terminal
// transition is committed separately via Complete, after the draft has been
// durably published.
func (m *Machine) Advance(in Input) (State, error) {
	switch m.state {
	case StateSelectLocation:
		input, ok := in.(LocationInput)
		if !ok {
			return m.state, wrongInputErr(m.state, in)
		}
		if !location.IsKnown(input.Location) {
			return m.state, apperror.NewFieldsValidationErr(nil, []string{"location"})
		}

		m.draft.Location = input.Location
		m.state = StateSelectCategory

	case StateSelectCategory:
		input, ok := in.(CategoryInput)
		if !ok {
			return m.state, wrongInputErr(m.state, in)
		}
		if !input.Category.Valid() {
			return m.state, apperror.NewFieldsValidationErr(nil, []string{"category"})
		}

		m.draft.Category = input.Category
		// the form step defaults its emirate from the selected location
		m.state = StateFillForm

	case StateFillForm:
		input, ok := in.(FormInput)
		if !ok {
			return m.state, wrongInputErr(m.state, in)
		}

		fields := input.Fields
		if draft.HasFormField(m.draft.Category, "emirate") {
			fields = withDefaultEmirate(fields, m.draft.Location)
		}
		if err := draft.ValidateForm(m.draft.Category, fields); err != nil {
			return m.state, err
		}

		m.draft.Fields = fields
		m.state = StateReview

	case StateReview:
		input, ok := in.(SummaryInput)
		if !ok {
			return m.state, wrongInputErr(m.state, in)
		}
		summary := draft.NormalizeSummary(input.Summary)
		if err := draft.ValidateSummary(m.draft.Category, summary); err != nil {
			return m.state, err
		}

		m.draft.Summary = summary

	case StatePublished:
		return m.state, ErrAlreadyPublished
	}

	return m.state, nil
}

// Complete commits the terminal transition. Call only after the publish
// gateway reported success.
func (m *Machine) Complete() State {
	m.draft.Status = draft.StatusPublished
	m.state = StatePublished

	return m.state
}

// Back returns to the previous step. Accumulated fields are kept, matching
// the original flow where backing out never clears entered data, and nothing
// is persisted.
func (m *Machine) Back() State {
	switch m.state {
	case StateSelectCategory:
		m.state = StateSelectLocation
	case StateFillForm:
		m.state = StateSelectCategory
	case StateReview:
		m.state = StateFillForm
	}

	return m.state
}

func withDefaultEmirate(fields draft.Fields, location string) draft.Fields {
	if location == "" {
		return fields
	}
	if v, ok := fields["emirate"]; ok && v != "" {
		return fields
	}

	out := make(draft.Fields, len(fields)+1)
	for k, v := range fields {
		out[k] = v
	}
	out["emirate"] = location

	return out
}

func wrongInputErr(state State, in Input) error {
	return apperror.NewAppError(fmt.Sprintf("input %T is not valid in state %s", in, state))
}
