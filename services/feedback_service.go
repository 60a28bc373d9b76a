package services

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/NomadCrew/feedback-api/config"
	apperrors "github.com/NomadCrew/feedback-api/errors"
	"github.com/NomadCrew/feedback-api/internal/store"
	"github.com/NomadCrew/feedback-api/logger"
	"github.com/NomadCrew/feedback-api/types"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultPage  = 1
	defaultLimit = 10

	feedbackEntity = "Feedback"
)

// FeedbackService coordinates feedback requests between the HTTP layer and
// the store.
type FeedbackService struct {
	store      store.FeedbackStore
	pagination config.PaginationConfig
	now        func() time.Time
	newID      func() string
	log        *zap.SugaredLogger
}

// NewFeedbackService creates a FeedbackService. Zero pagination values fall
// back to a default limit of 10 and no upper bound.
func NewFeedbackService(feedbackStore store.FeedbackStore, pagination config.PaginationConfig) *FeedbackService {
	if pagination.DefaultLimit <= 0 {
		pagination.DefaultLimit = defaultLimit
	}
	return &FeedbackService{
		store:      feedbackStore,
		pagination: pagination,
		now:        time.Now,
		newID:      uuid.NewString,
		log:        logger.GetLogger(),
	}
}

// Window returns the limit and offset for the given filter. Page is clamped to
// at least 1, limit to the configured maximum, and the offset never overflows.
func (s *FeedbackService) Window(opts types.FilterOptions) (limit, offset int) {
	page := defaultPage
	if opts.Page != nil && *opts.Page > 0 {
		page = *opts.Page
	}

	limit = s.pagination.DefaultLimit
	if opts.Limit != nil && *opts.Limit > 0 {
		limit = *opts.Limit
	}
	if s.pagination.MaxLimit > 0 && limit > s.pagination.MaxLimit {
		limit = s.pagination.MaxLimit
	}

	// Saturate instead of wrapping; a page past the end is just empty.
	if page-1 > math.MaxInt/limit {
		page = math.MaxInt/limit + 1
	}

	return limit, (page - 1) * limit
}

// ListFeedbacks returns one page of feedbacks ordered by id. An empty page is
// an empty, non-nil slice.
func (s *FeedbackService) ListFeedbacks(ctx context.Context, opts types.FilterOptions) ([]*types.Feedback, error) {
	limit, offset := s.Window(opts)

	feedbacks, err := s.store.ListFeedbacks(ctx, limit, offset)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	if feedbacks == nil {
		feedbacks = []*types.Feedback{}
	}

	s.log.Debugw("Listed feedbacks", "limit", limit, "offset", offset, "count", len(feedbacks))
	return feedbacks, nil
}

// CreateFeedback stores a new feedback under a freshly generated id.
func (s *FeedbackService) CreateFeedback(ctx context.Context, req *types.FeedbackCreate) (*types.Feedback, error) {
	if req == nil || req.Rating == nil {
		return nil, apperrors.ValidationFailed("Invalid request body", "rating is required")
	}

	fb := &types.Feedback{
		ID:       s.newID(),
		Name:     req.Name,
		Email:    req.Email,
		Feedback: req.Feedback,
		Rating:   *req.Rating,
	}

	created, err := s.store.CreateFeedback(ctx, fb)
	if err != nil {
		if store.IsUniqueViolation(err) {
			s.log.Infow("Rejected duplicate feedback", "email", logger.MaskEmail(req.Email))
			return nil, apperrors.NewConflictError("This feedback already exists", err.Error())
		}
		return nil, apperrors.NewDatabaseError(err)
	}

	return created, nil
}

// GetFeedback fetches a feedback by id.
func (s *FeedbackService) GetFeedback(ctx context.Context, id string) (*types.Feedback, error) {
	fb, err := s.store.GetFeedback(ctx, id)
	if err != nil {
		return nil, s.mapStoreError(err, id)
	}
	return fb, nil
}

// UpdateFeedback merges the present fields of req into the stored feedback
// and stamps updatedAt. The read, merge and write happen under one row lock.
func (s *FeedbackService) UpdateFeedback(ctx context.Context, id string, req *types.FeedbackUpdate) (*types.Feedback, error) {
	if req == nil {
		req = &types.FeedbackUpdate{}
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.ValidationFailed("Invalid request body", err.Error())
	}

	updated, err := s.store.UpdateFeedback(ctx, id, func(current *types.Feedback) *types.Feedback {
		next := req.Apply(current)
		stamp := s.nextUpdatedAt(current)
		next.UpdatedAt = &stamp
		return next
	})
	if err != nil {
		if store.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("This feedback already exists", err.Error())
		}
		return nil, s.mapStoreError(err, id)
	}

	return updated, nil
}

// DeleteFeedback removes a feedback by id.
func (s *FeedbackService) DeleteFeedback(ctx context.Context, id string) error {
	if err := s.store.DeleteFeedback(ctx, id); err != nil {
		return s.mapStoreError(err, id)
	}
	return nil
}

// nextUpdatedAt returns the current time at database precision, moved past
// the row's previous timestamps so updatedAt never repeats or goes backwards.
func (s *FeedbackService) nextUpdatedAt(current *types.Feedback) time.Time {
	stamp := s.now().UTC().Truncate(time.Microsecond)
	for _, prev := range []*time.Time{current.CreatedAt, current.UpdatedAt} {
		if prev != nil && !stamp.After(*prev) {
			stamp = prev.UTC().Truncate(time.Microsecond).Add(time.Microsecond)
		}
	}
	return stamp
}

func (s *FeedbackService) mapStoreError(err error, id string) error {
	if errors.Is(err, store.ErrNotFound) {
		return apperrors.NotFound(feedbackEntity, id)
	}
	return apperrors.NewDatabaseError(err)
}
