package service

import (
	"context"
	"errors"
	"fmt"

	"phoenix/workout-api/internal/domain"
	"phoenix/workout-api/internal/repository"

	log "github.com/sirupsen/logrus"
)

// --- Error Definitions ---
var (
	ErrInvalidTimeRange = errors.New("completed_at must not be before started_at")
	ErrValidationFailed = errors.New("workout log validation failed")
)

const defaultHistoryLimit = 10

// WorkoutService validates and records completed workouts and serves the
// history read path over the same append-only store.
type WorkoutService interface {
	Complete(ctx context.Context, workoutLog *domain.WorkoutCompletionLog) (*domain.CompletionSummary, error)
	History(ctx context.Context, userID string, limit int) ([]domain.WorkoutCompletionLog, error)
}

type workoutService struct {
	logRepo repository.WorkoutLogRepository
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(logRepo repository.WorkoutLogRepository) WorkoutService {
	return &workoutService{
		logRepo: logRepo,
	}
}

// Complete validates the submitted log, computes its summary and appends it
// to the log store. A negative session duration is rejected outright rather
// than silently truncated.
func (s *workoutService) Complete(ctx context.Context, workoutLog *domain.WorkoutCompletionLog) (*domain.CompletionSummary, error) {
	if workoutLog == nil || workoutLog.UserID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrValidationFailed)
	}
	if workoutLog.StartedAt.IsZero() || workoutLog.CompletedAt.IsZero() {
		return nil, fmt.Errorf("%w: started_at and completed_at are required", ErrValidationFailed)
	}
	if workoutLog.CompletedAt.Before(workoutLog.StartedAt) {
		return nil, ErrInvalidTimeRange
	}
	for _, set := range workoutLog.Sets {
		if set.ActualReps < 0 {
			return nil, fmt.Errorf("%w: set %d of %q has negative actual_reps", ErrValidationFailed, set.SetNumber, set.ExerciseID)
		}
		if set.ActualWeightKg < 0 {
			return nil, fmt.Errorf("%w: set %d of %q has negative actual_weight_kg", ErrValidationFailed, set.SetNumber, set.ExerciseID)
		}
	}

	durationMinutes := int(workoutLog.CompletedAt.Sub(workoutLog.StartedAt).Minutes())
	newPRs := 0
	for _, set := range workoutLog.Sets {
		if set.IsPR {
			newPRs++
		}
	}

	summary := &domain.CompletionSummary{
		Status:          "logged",
		UserID:          workoutLog.UserID,
		PlanID:          workoutLog.PlanID,
		SetsLogged:      len(workoutLog.Sets),
		DurationMinutes: durationMinutes,
		NewPRs:          newPRs,
		Message:         completionMessage(len(workoutLog.Sets), newPRs),
	}

	// The MVP contract is acknowledge-and-summarize: a store failure is
	// logged but does not fail the request.
	if err := s.logRepo.Append(ctx, workoutLog); err != nil {
		log.Warnf("failed to append workout log for user %s: %s", workoutLog.UserID, err)
	}

	return summary, nil
}

// History returns the user's most recent completion logs, newest first.
func (s *workoutService) History(ctx context.Context, userID string, limit int) ([]domain.WorkoutCompletionLog, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return s.logRepo.GetByUserID(ctx, userID, limit)
}

func completionMessage(setsLogged, newPRs int) string {
	if newPRs > 0 {
		return fmt.Sprintf("Great work. %d sets logged. 🔥 %d new PRs!", setsLogged, newPRs)
	}
	return fmt.Sprintf("Great work. %d sets logged. Keep pushing.", setsLogged)
}
