package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/NomadCrew/feedback-api/internal/store"
	"github.com/NomadCrew/feedback-api/logger"
	"github.com/NomadCrew/feedback-api/types"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Ensure FeedbackStore implements store.FeedbackStore
var _ store.FeedbackStore = (*FeedbackStore)(nil)

// DBTX is the subset of *pgxpool.Pool used by the store. pgxmock pools
// satisfy it as well.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
	Ping(ctx context.Context) error
}

const feedbacksTable = "feedbacks"

const (
	listFeedbacksQuery = `SELECT id, name, email, feedback, rating, status, created_at, updated_at
		FROM feedbacks ORDER BY id LIMIT $1 OFFSET $2`

	createFeedbackQuery = `INSERT INTO feedbacks (id, name, email, feedback, rating)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, email, feedback, rating, status, created_at, updated_at`

	getFeedbackQuery = `SELECT id, name, email, feedback, rating, status, created_at, updated_at
		FROM feedbacks WHERE id = $1`

	lockFeedbackQuery = `SELECT id, name, email, feedback, rating, status, created_at, updated_at
		FROM feedbacks WHERE id = $1 FOR UPDATE`

	updateFeedbackQuery = `UPDATE feedbacks
		SET name = $1, email = $2, feedback = $3, rating = $4, status = $5, updated_at = $6
		WHERE id = $7
		RETURNING id, name, email, feedback, rating, status, created_at, updated_at`

	deleteFeedbackQuery = `DELETE FROM feedbacks WHERE id = $1`
)

// FeedbackStore implements store.FeedbackStore on PostgreSQL.
type FeedbackStore struct {
	db DBTX
}

// NewFeedbackStore creates a feedback store on top of a pgx pool.
func NewFeedbackStore(db DBTX) *FeedbackStore {
	return &FeedbackStore{db: db}
}

func scanFeedback(row pgx.Row) (*types.Feedback, error) {
	fb := &types.Feedback{}
	err := row.Scan(
		&fb.ID,
		&fb.Name,
		&fb.Email,
		&fb.Feedback,
		&fb.Rating,
		&fb.Status,
		&fb.CreatedAt,
		&fb.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return fb, nil
}

// ListFeedbacks returns one page of feedbacks ordered by id.
func (s *FeedbackStore) ListFeedbacks(ctx context.Context, limit, offset int) ([]*types.Feedback, error) {
	rows, err := s.db.Query(ctx, listFeedbacksQuery, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedbacks: %w", err)
	}

	feedbacks, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*types.Feedback, error) {
		return scanFeedback(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan feedbacks: %w", err)
	}

	return feedbacks, nil
}

// CreateFeedback inserts a new feedback and returns the stored row, including
// the created_at assigned by the database.
func (s *FeedbackStore) CreateFeedback(ctx context.Context, fb *types.Feedback) (*types.Feedback, error) {
	created, err := scanFeedback(s.db.QueryRow(ctx, createFeedbackQuery,
		fb.ID, fb.Name, fb.Email, fb.Feedback, fb.Rating,
	))
	if err != nil {
		if constraintErr := classifyPgError(err); constraintErr != nil {
			return nil, constraintErr
		}
		return nil, fmt.Errorf("failed to create feedback: %w", err)
	}

	logger.GetLogger().Infow("Successfully created feedback", "feedbackID", created.ID)
	return created, nil
}

// GetFeedback retrieves a feedback by id.
func (s *FeedbackStore) GetFeedback(ctx context.Context, id string) (*types.Feedback, error) {
	fb, err := scanFeedback(s.db.QueryRow(ctx, getFeedbackQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get feedback: %w", err)
	}
	return fb, nil
}

// UpdateFeedback locks the row, lets mutate compute the new values and writes
// them back. Zero affected rows on the write is reported as ErrNotFound.
func (s *FeedbackStore) UpdateFeedback(ctx context.Context, id string, mutate store.FeedbackMutator) (_ *types.Feedback, err error) {
	log := logger.GetLogger()

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err == nil {
			return
		}
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			log.Warnw("Failed to rollback feedback update", "feedbackID", id, "error", rbErr)
		}
	}()

	current, err := scanFeedback(tx.QueryRow(ctx, lockFeedbackQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load feedback for update: %w", err)
	}

	next := mutate(current)

	updated, err := scanFeedback(tx.QueryRow(ctx, updateFeedbackQuery,
		next.Name, next.Email, next.Feedback, next.Rating, next.Status, next.UpdatedAt, id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		if constraintErr := classifyPgError(err); constraintErr != nil {
			return nil, constraintErr
		}
		return nil, fmt.Errorf("failed to update feedback: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit feedback update: %w", err)
	}

	log.Infow("Feedback updated successfully", "feedbackID", id)
	return updated, nil
}

// DeleteFeedback removes a feedback permanently.
func (s *FeedbackStore) DeleteFeedback(ctx context.Context, id string) error {
	tag, err := s.db.Exec(ctx, deleteFeedbackQuery, id)
	if err != nil {
		return fmt.Errorf("failed to delete feedback: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}

	logger.GetLogger().Infow("Successfully deleted feedback", "feedbackID", id)
	return nil
}

// Ping checks that the database is reachable.
func (s *FeedbackStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}
