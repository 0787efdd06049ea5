package memory

import (
	"context"
	"sort"
	"sync"

	"phoenix/workout-api/internal/domain"
	"phoenix/workout-api/internal/repository"
)

// memoryWorkoutLogRepository keeps completion logs in process memory. It is
// the default store until a database is configured; logs survive only for
// the lifetime of the process.
type memoryWorkoutLogRepository struct {
	mu   sync.RWMutex
	logs []domain.WorkoutCompletionLog
}

// NewWorkoutLogRepository creates an empty in-process workout log store.
func NewWorkoutLogRepository() repository.WorkoutLogRepository {
	return &memoryWorkoutLogRepository{}
}

// Append stores a copy of the log. Records are immutable once appended.
func (r *memoryWorkoutLogRepository) Append(ctx context.Context, log *domain.WorkoutCompletionLog) error {
	if log == nil || log.UserID == "" {
		return repository.RepositoryError("workout log requires a user id")
	}

	stored := *log
	stored.Sets = make([]domain.CompletedSetLog, len(log.Sets))
	copy(stored.Sets, log.Sets)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.logs = append(r.logs, stored)
	return nil
}

// GetByUserID returns the user's logs, most recently completed first,
// capped at limit (0 or negative means no cap).
func (r *memoryWorkoutLogRepository) GetByUserID(ctx context.Context, userID string, limit int) ([]domain.WorkoutCompletionLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]domain.WorkoutCompletionLog, 0)
	for _, l := range r.logs {
		if l.UserID == userID {
			matched = append(matched, l)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CompletedAt.After(matched[j].CompletedAt)
	})
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}
