package repository

import (
	"context"

	"phoenix/workout-api/internal/domain"
)

var (
	ErrNotFound = RepositoryError("not found")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// ExerciseRepository provides read access to the exercise library. The
// library is static seed data, so implementations never mutate entries and
// ListAll returns them in insertion order.
type ExerciseRepository interface {
	ListAll(ctx context.Context) ([]domain.ExerciseDefinition, error)
	GetByID(ctx context.Context, id string) (*domain.ExerciseDefinition, error)
}

// WorkoutLogRepository is the append-only store for completed workouts.
// Records are never updated in place; GetByUserID returns the most recent
// sessions first.
type WorkoutLogRepository interface {
	Append(ctx context.Context, log *domain.WorkoutCompletionLog) error
	GetByUserID(ctx context.Context, userID string, limit int) ([]domain.WorkoutCompletionLog, error)
}
