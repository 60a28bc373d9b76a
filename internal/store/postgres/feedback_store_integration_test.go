//go:build integration

package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/NomadCrew/feedback-api/db"
	"github.com/NomadCrew/feedback-api/internal/store"
	"github.com/NomadCrew/feedback-api/types"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	postgresContainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupPostgresContainer starts PostgreSQL, applies the embedded migrations
// and returns a pool on the fresh schema.
func setupPostgresContainer(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()

	pgContainer, err := postgresContainer.Run(ctx,
		"postgres:15",
		postgresContainer.WithDatabase("testdb"),
		postgresContainer.WithUsername("testuser"),
		postgresContainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pgContainer.Terminate(context.Background()); err != nil {
			t.Logf("Failed to terminate postgres container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	require.NoError(t, db.RunMigrations(connStr), "Failed to apply migrations")
	// A second run must be a no-op.
	require.NoError(t, db.RunMigrations(connStr))

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pool
}

func newTestFeedback(text string) *types.Feedback {
	return &types.Feedback{
		ID:       uuid.NewString(),
		Name:     "Alice",
		Email:    "alice@example.com",
		Feedback: text,
		Rating:   4.5,
	}
}

func TestFeedbackStore_Integration(t *testing.T) {
	ctx := context.Background()
	pool := setupPostgresContainer(ctx, t)
	s := NewFeedbackStore(pool)

	require.NoError(t, s.Ping(ctx))

	t.Run("create and get", func(t *testing.T) {
		fb := newTestFeedback("Clear explanations")

		created, err := s.CreateFeedback(ctx, fb)
		require.NoError(t, err)
		assert.Equal(t, fb.ID, created.ID)
		assert.Equal(t, float32(4.5), created.Rating)
		assert.Nil(t, created.Status)
		assert.Nil(t, created.UpdatedAt)
		require.NotNil(t, created.CreatedAt)

		got, err := s.GetFeedback(ctx, fb.ID)
		require.NoError(t, err)
		assert.Equal(t, created.Feedback, got.Feedback)
		assert.True(t, created.CreatedAt.Equal(*got.CreatedAt))
	})

	t.Run("duplicate feedback text is a unique violation", func(t *testing.T) {
		_, err := s.CreateFeedback(ctx, newTestFeedback("Duplicate me"))
		require.NoError(t, err)

		_, err = s.CreateFeedback(ctx, newTestFeedback("Duplicate me"))
		require.Error(t, err)
		assert.True(t, store.IsUniqueViolation(err))

		var constraintErr *store.ConstraintError
		require.True(t, errors.As(err, &constraintErr))
		assert.Equal(t, "feedbacks", constraintErr.Table)
	})

	t.Run("update merges and stamps", func(t *testing.T) {
		fb, err := s.CreateFeedback(ctx, newTestFeedback("Needs more examples"))
		require.NoError(t, err)

		stamp := fb.CreatedAt.Add(time.Second).UTC().Truncate(time.Microsecond)
		reviewed := "reviewed"
		updated, err := s.UpdateFeedback(ctx, fb.ID, func(current *types.Feedback) *types.Feedback {
			next := *current
			next.Rating = 3
			next.Status = &reviewed
			next.UpdatedAt = &stamp
			return &next
		})
		require.NoError(t, err)
		assert.Equal(t, float32(3), updated.Rating)
		require.NotNil(t, updated.Status)
		assert.Equal(t, "reviewed", *updated.Status)
		require.NotNil(t, updated.UpdatedAt)
		assert.True(t, stamp.Equal(*updated.UpdatedAt))
		assert.Equal(t, fb.Name, updated.Name)
	})

	t.Run("update into an existing feedback text conflicts", func(t *testing.T) {
		_, err := s.CreateFeedback(ctx, newTestFeedback("Taken text"))
		require.NoError(t, err)
		other, err := s.CreateFeedback(ctx, newTestFeedback("Free text"))
		require.NoError(t, err)

		_, err = s.UpdateFeedback(ctx, other.ID, func(current *types.Feedback) *types.Feedback {
			next := *current
			next.Feedback = "Taken text"
			return &next
		})
		require.Error(t, err)
		assert.True(t, store.IsUniqueViolation(err))

		got, err := s.GetFeedback(ctx, other.ID)
		require.NoError(t, err)
		assert.Equal(t, "Free text", got.Feedback)
	})

	t.Run("missing id", func(t *testing.T) {
		missing := uuid.NewString()

		_, err := s.GetFeedback(ctx, missing)
		assert.ErrorIs(t, err, store.ErrNotFound)

		_, err = s.UpdateFeedback(ctx, missing, func(current *types.Feedback) *types.Feedback {
			t.Fatal("mutator must not run for a missing row")
			return current
		})
		assert.ErrorIs(t, err, store.ErrNotFound)

		assert.ErrorIs(t, s.DeleteFeedback(ctx, missing), store.ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		fb, err := s.CreateFeedback(ctx, newTestFeedback("Short lived"))
		require.NoError(t, err)

		require.NoError(t, s.DeleteFeedback(ctx, fb.ID))
		_, err = s.GetFeedback(ctx, fb.ID)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("list pages in id order", func(t *testing.T) {
		_, err := pool.Exec(ctx, "TRUNCATE feedbacks")
		require.NoError(t, err)

		for _, text := range []string{"one", "two", "three", "four", "five"} {
			_, err := s.CreateFeedback(ctx, newTestFeedback(text))
			require.NoError(t, err)
		}

		all, err := s.ListFeedbacks(ctx, 10, 0)
		require.NoError(t, err)
		require.Len(t, all, 5)
		for i := 1; i < len(all); i++ {
			assert.Less(t, all[i-1].ID, all[i].ID)
		}

		page2, err := s.ListFeedbacks(ctx, 2, 2)
		require.NoError(t, err)
		require.Len(t, page2, 2)
		assert.Equal(t, all[2].ID, page2[0].ID)
		assert.Equal(t, all[3].ID, page2[1].ID)

		beyond, err := s.ListFeedbacks(ctx, 2, 10)
		require.NoError(t, err)
		assert.Empty(t, beyond)
	})
}
