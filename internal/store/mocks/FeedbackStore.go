package mocks

import (
	"context"

	"github.com/NomadCrew/feedback-api/internal/store"
	"github.com/NomadCrew/feedback-api/types"
	"github.com/stretchr/testify/mock"
)

var _ store.FeedbackStore = (*FeedbackStore)(nil)

// FeedbackStore is a mock of the store.FeedbackStore interface.
type FeedbackStore struct {
	mock.Mock
}

// ListFeedbacks mocks the ListFeedbacks method
func (m *FeedbackStore) ListFeedbacks(ctx context.Context, limit, offset int) ([]*types.Feedback, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.Feedback), args.Error(1)
}

// CreateFeedback mocks the CreateFeedback method
func (m *FeedbackStore) CreateFeedback(ctx context.Context, fb *types.Feedback) (*types.Feedback, error) {
	args := m.Called(ctx, fb)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Feedback), args.Error(1)
}

// GetFeedback mocks the GetFeedback method
func (m *FeedbackStore) GetFeedback(ctx context.Context, id string) (*types.Feedback, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Feedback), args.Error(1)
}

// UpdateFeedback mocks the UpdateFeedback method. The first return value is
// the locked row handed to mutate; the mutated row is returned to the caller.
// Expectations are matched on ctx and id only.
func (m *FeedbackStore) UpdateFeedback(ctx context.Context, id string, mutate store.FeedbackMutator) (*types.Feedback, error) {
	args := m.Called(ctx, id)
	if err := args.Error(1); err != nil {
		return nil, err
	}
	current, ok := args.Get(0).(*types.Feedback)
	if !ok {
		return nil, store.ErrNotFound
	}
	return mutate(current), nil
}

// DeleteFeedback mocks the DeleteFeedback method
func (m *FeedbackStore) DeleteFeedback(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Ping mocks the Ping method
func (m *FeedbackStore) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
