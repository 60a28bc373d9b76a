package store

import (
	"context"

	"github.com/NomadCrew/feedback-api/types"
)

// FeedbackMutator receives the locked current row and returns the row to write.
type FeedbackMutator func(current *types.Feedback) *types.Feedback

// FeedbackStore handles feedback persistence.
type FeedbackStore interface {
	// ListFeedbacks returns up to limit rows ordered by id, skipping offset rows.
	ListFeedbacks(ctx context.Context, limit, offset int) ([]*types.Feedback, error)
	// CreateFeedback inserts fb using fb.ID and returns the stored row.
	CreateFeedback(ctx context.Context, fb *types.Feedback) (*types.Feedback, error)
	GetFeedback(ctx context.Context, id string) (*types.Feedback, error)
	// UpdateFeedback reads the row, applies mutate and writes the result in a
	// single transaction. The row is locked between the read and the write.
	UpdateFeedback(ctx context.Context, id string, mutate FeedbackMutator) (*types.Feedback, error)
	DeleteFeedback(ctx context.Context, id string) error
	// Ping checks connectivity for readiness probes.
	Ping(ctx context.Context) error
}
