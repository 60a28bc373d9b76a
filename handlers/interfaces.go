package handlers

import (
	"context"

	"github.com/NomadCrew/feedback-api/types"
)

// FeedbackServiceInterface defines the feedback service methods needed by handlers
type FeedbackServiceInterface interface {
	ListFeedbacks(ctx context.Context, opts types.FilterOptions) ([]*types.Feedback, error)
	CreateFeedback(ctx context.Context, req *types.FeedbackCreate) (*types.Feedback, error)
	GetFeedback(ctx context.Context, id string) (*types.Feedback, error)
	UpdateFeedback(ctx context.Context, id string, req *types.FeedbackUpdate) (*types.Feedback, error)
	DeleteFeedback(ctx context.Context, id string) error
}

// HealthServiceInterface defines the health service methods needed by handlers
type HealthServiceInterface interface {
	CheckHealth(ctx context.Context) types.HealthCheck
}
