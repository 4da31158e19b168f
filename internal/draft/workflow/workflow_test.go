package workflow

import (
	"errors"
	"testing"

	"github.com/dxbsouq/souq-backend/internal/apperror"
	"github.com/dxbsouq/souq-backend/internal/draft"
	"github.com/stretchr/testify/require"
)

func newDraft() *draft.Draft {
	return &draft.Draft{
		ID:     "d-1",
		UserID: 1,
		Status: draft.StatusDraft,
	}
}

func motorsForm() draft.Fields {
	return draft.Fields{
		"motorType":   "Car",
		"emirate":     "Dubai",
		"makeModel":   "Toyota Camry",
		"price":       "45000",
		"phoneNumber": "+971501234567",
	}
}

func TestHappyPathToReview(t *testing.T) {
	d := newDraft()
	m := New(d)

	require.Equal(t, StateSelectLocation, m.State())

	state, err := m.Advance(LocationInput{Location: "Dubai"})
	require.NoError(t, err)
	require.Equal(t, StateSelectCategory, state)
	require.Equal(t, "Dubai", d.Location)

	state, err = m.Advance(CategoryInput{Category: draft.CategoryMotors})
	require.NoError(t, err)
	require.Equal(t, StateFillForm, state)

	state, err = m.Advance(FormInput{Fields: motorsForm()})
	require.NoError(t, err)
	require.Equal(t, StateReview, state)

	state, err = m.Advance(SummaryInput{Summary: draft.Fields{"postTitle": "2020 Camry"}})
	require.NoError(t, err)
	require.Equal(t, StateReview, state, "summary is staged, terminal transition waits for the gateway")
	require.Equal(t, draft.StatusDraft, d.Status)

	state = m.Complete()
	require.Equal(t, StatePublished, state)
	require.Equal(t, draft.StatusPublished, d.Status)
}

func TestUnknownLocationRejected(t *testing.T) {
	m := New(newDraft())

	state, err := m.Advance(LocationInput{Location: "London"})

	var valErr *apperror.ValidationError
	require.True(t, errors.As(err, &valErr))
	require.Equal(t, []string{"location"}, valErr.InvalidFields)
	require.Equal(t, StateSelectLocation, state)
}

func TestUnknownCategoryRejected(t *testing.T) {
	m := New(newDraft())

	_, err := m.Advance(LocationInput{Location: "Dubai"})
	require.NoError(t, err)

	state, err := m.Advance(CategoryInput{Category: "boats"})

	var valErr *apperror.ValidationError
	require.True(t, errors.As(err, &valErr))
	require.Equal(t, []string{"category"}, valErr.InvalidFields)
	require.Equal(t, StateSelectCategory, state)
}

func TestFormGuardFailureKeepsStateAndDraft(t *testing.T) {
	d := newDraft()
	m := New(d)

	_, err := m.Advance(LocationInput{Location: "Dubai"})
	require.NoError(t, err)
	_, err = m.Advance(CategoryInput{Category: draft.CategoryMotors})
	require.NoError(t, err)

	fields := motorsForm()
	fields["phoneNumber"] = "501234567"
	delete(fields, "makeModel")

	state, err := m.Advance(FormInput{Fields: fields})

	var valErr *apperror.ValidationError
	require.True(t, errors.As(err, &valErr))
	require.Equal(t, []string{"makeModel"}, valErr.MissingFields)
	require.Equal(t, []string{"phoneNumber"}, valErr.InvalidFields)
	require.Equal(t, StateFillForm, state)
	require.Nil(t, d.Fields)
}

func TestFormDefaultsEmirateFromLocation(t *testing.T) {
	d := newDraft()
	m := New(d)

	_, err := m.Advance(LocationInput{Location: "Sharjah"})
	require.NoError(t, err)
	_, err = m.Advance(CategoryInput{Category: draft.CategoryMotors})
	require.NoError(t, err)

	fields := motorsForm()
	delete(fields, "emirate")

	state, err := m.Advance(FormInput{Fields: fields})
	require.NoError(t, err)
	require.Equal(t, StateReview, state)
	require.Equal(t, "Sharjah", d.Fields["emirate"])
}

func TestSummaryGuardFailure(t *testing.T) {
	d := newDraft()
	m := New(d)

	_, err := m.Advance(LocationInput{Location: "Dubai"})
	require.NoError(t, err)
	_, err = m.Advance(CategoryInput{Category: draft.CategoryMotors})
	require.NoError(t, err)
	_, err = m.Advance(FormInput{Fields: motorsForm()})
	require.NoError(t, err)

	state, err := m.Advance(SummaryInput{Summary: draft.Fields{"description": "clean car"}})

	var valErr *apperror.ValidationError
	require.True(t, errors.As(err, &valErr))
	require.Equal(t, []string{"postTitle"}, valErr.MissingFields)
	require.Equal(t, StateReview, state)
	require.Nil(t, d.Summary)
}

func TestWrongInputForState(t *testing.T) {
	m := New(newDraft())

	state, err := m.Advance(FormInput{Fields: motorsForm()})
	require.Error(t, err)
	require.Equal(t, StateSelectLocation, state)
}

func TestBackWalksStepsWithoutClearingData(t *testing.T) {
	d := newDraft()
	m := New(d)

	_, err := m.Advance(LocationInput{Location: "Dubai"})
	require.NoError(t, err)
	_, err = m.Advance(CategoryInput{Category: draft.CategoryMotors})
	require.NoError(t, err)
	_, err = m.Advance(FormInput{Fields: motorsForm()})
	require.NoError(t, err)

	require.Equal(t, StateFillForm, m.Back())
	require.Equal(t, StateSelectCategory, m.Back())
	require.Equal(t, StateSelectLocation, m.Back())
	require.Equal(t, StateSelectLocation, m.Back())

	require.Equal(t, "Dubai", d.Location)
	require.NotNil(t, d.Fields)
}

func TestPublishedIsTerminal(t *testing.T) {
	d := newDraft()
	m := New(d)

	_, err := m.Advance(LocationInput{Location: "Dubai"})
	require.NoError(t, err)
	_, err = m.Advance(CategoryInput{Category: draft.CategoryMotors})
	require.NoError(t, err)
	_, err = m.Advance(FormInput{Fields: motorsForm()})
	require.NoError(t, err)
	_, err = m.Advance(SummaryInput{Summary: draft.Fields{"postTitle": "2020 Camry"}})
	require.NoError(t, err)
	m.Complete()

	_, err = m.Advance(SummaryInput{Summary: draft.Fields{"postTitle": "edited"}})
	require.ErrorIs(t, err, ErrAlreadyPublished)
}
