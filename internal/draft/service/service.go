package service

import (
	"context"
	"errors"
	"sync"

	"github.com/dxbsouq/souq-backend/internal/apperror"
	"github.com/dxbsouq/souq-backend/internal/draft"
	"github.com/dxbsouq/souq-backend/internal/draft/db"
	"github.com/dxbsouq/souq-backend/internal/draft/workflow"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrPublishInFlight = apperror.NewAppError("publish is already in progress for this draft")

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mockdraftservice

type Repository interface {
	Create(ctx context.Context, d *draft.Draft) error
	GetByID(ctx context.Context, id string, userID int) (*draft.Draft, error)
}

type Gateway interface {
	Publish(ctx context.Context, userID int, d *draft.Draft) (string, error)
}

// session is one live workflow instance. Drafts accumulate in memory and
// only reach storage at the form step; abandoning a session before that
// leaves no trace, matching the original flow.
type session struct {
	machine    *workflow.Machine
	publishing bool
}

type service struct {
	mu       sync.Mutex
	sessions map[string]*session

	repository Repository
	gateway    Gateway
	logger     *zap.Logger
}

func New(repository Repository, gateway Gateway, logger *zap.Logger) *service {
	return &service{
		sessions:   make(map[string]*session),
		repository: repository,
		gateway:    gateway,
		logger:     logger,
	}
}

// Start opens a new submission workflow for the user and returns the draft
// in its initial state.
func (s *service) Start(userID int) *draft.Draft {
	d := &draft.Draft{
		ID:     uuid.NewString(),
		UserID: userID,
		Fields: draft.Fields{},
		Status: draft.StatusDraft,
	}

	s.mu.Lock()
	s.sessions[d.ID] = &session{machine: workflow.New(d)}
	s.mu.Unlock()

	s.logger.Info("submission workflow started", zap.String("draft_id", d.ID))

	return d
}

func (s *service) session(draftID string, userID int) (*session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[draftID]
	if !ok || sess.machine.Draft().UserID != userID {
		return nil, apperror.ErrNotFound
	}

	return sess, nil
}

func (s *service) SelectLocation(draftID string, userID int, loc string) (workflow.State, error) {
	sess, err := s.session(draftID, userID)
	if err != nil {
		return "", err
	}

	return sess.machine.Advance(workflow.LocationInput{Location: loc})
}

func (s *service) SelectCategory(draftID string, userID int, category draft.CategoryID) (workflow.State, error) {
	sess, err := s.session(draftID, userID)
	if err != nil {
		return "", err
	}

	return sess.machine.Advance(workflow.CategoryInput{Category: category})
}

// SubmitForm validates the category form and, once it passes, persists the
// draft row. This mirrors the original flow, which created the backend row
// when the form screen was submitted.
func (s *service) SubmitForm(ctx context.Context, draftID string, userID int, fields draft.Fields) (workflow.State, error) {
	sess, err := s.session(draftID, userID)
	if err != nil {
		return "", err
	}

	state, err := sess.machine.Advance(workflow.FormInput{Fields: fields})
	if err != nil {
		return state, err
	}

	if err := s.repository.Create(ctx, sess.machine.Draft()); err != nil {
		s.logger.Error("unexpected error when persisting draft", zap.Error(err))
		sess.machine.Back()

		return sess.machine.State(), err
	}

	return state, nil
}

// SubmitSummary validates the review step and publishes the draft through
// the gateway. A second submit while one is in flight is rejected instead of
// producing a duplicate listing. On any gateway failure the workflow stays
// in review so the user can retry the whole publish action.
func (s *service) SubmitSummary(ctx context.Context, draftID string, userID int, summary draft.Fields) (string, workflow.State, error) {
	sess, err := s.session(draftID, userID)
	if err != nil {
		return "", "", err
	}

	s.mu.Lock()
	if sess.publishing {
		s.mu.Unlock()
		return "", sess.machine.State(), ErrPublishInFlight
	}
	sess.publishing = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		sess.publishing = false
		s.mu.Unlock()
	}()

	state, err := sess.machine.Advance(workflow.SummaryInput{Summary: summary})
	if err != nil {
		return "", state, err
	}

	listingID, err := s.gateway.Publish(ctx, userID, sess.machine.Draft())
	if err != nil {
		s.logger.Error("publish failed", zap.String("draft_id", draftID), zap.Error(err))

		return "", sess.machine.State(), err
	}

	state = sess.machine.Complete()

	s.mu.Lock()
	delete(s.sessions, draftID)
	s.mu.Unlock()

	s.logger.Info("draft published",
		zap.String("draft_id", draftID),
		zap.String("listing_id", listingID),
	)

	return listingID, state, nil
}

func (s *service) Back(draftID string, userID int) (workflow.State, error) {
	sess, err := s.session(draftID, userID)
	if err != nil {
		return "", err
	}

	return sess.machine.Back(), nil
}

// Get returns the draft with its workflow state. Live sessions are served
// from memory; drafts that already reached storage (published, or orphaned
// by a restart) are fetched from the repository.
func (s *service) Get(ctx context.Context, draftID string, userID int) (*draft.Draft, workflow.State, error) {
	s.mu.Lock()
	sess, ok := s.sessions[draftID]
	s.mu.Unlock()

	if ok {
		if sess.machine.Draft().UserID != userID {
			return nil, "", apperror.ErrNotFound
		}

		return sess.machine.Draft(), sess.machine.State(), nil
	}

	d, err := s.repository.GetByID(ctx, draftID, userID)
	if err != nil {
		if errors.Is(err, db.ErrDraftNotFound) {
			return nil, "", apperror.ErrNotFound
		}

		s.logger.Error("unexpected error when fetching draft", zap.Error(err))

		return nil, "", err
	}

	state := workflow.StateReview
	if d.Status == draft.StatusPublished {
		state = workflow.StatePublished
	}

	return d, state, nil
}
