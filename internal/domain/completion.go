package domain

import "time"

// CompletedSetLog records what was actually performed for one set. IsPR is
// asserted by the client, not verified server-side.
type CompletedSetLog struct {
	ExerciseID     string  `bson:"exercise_id" json:"exercise_id"`
	SetNumber      int     `bson:"set_number" json:"set_number"`
	ActualReps     int     `bson:"actual_reps" json:"actual_reps"`
	ActualWeightKg float64 `bson:"actual_weight_kg" json:"actual_weight_kg"`
	LoggedRPE      *int    `bson:"logged_rpe,omitempty" json:"logged_rpe,omitempty"`
	IsPR           bool    `bson:"is_pr" json:"is_pr"`
}

// WorkoutCompletionLog is a client-submitted record of a finished session.
// PlanID is nil for a free workout done without a generated plan. Logs are
// immutable once recorded, only ever appended.
type WorkoutCompletionLog struct {
	PlanID      *string           `bson:"plan_id,omitempty" json:"plan_id,omitempty"`
	UserID      string            `bson:"user_id" json:"user_id"`
	StartedAt   time.Time         `bson:"started_at" json:"started_at"`
	CompletedAt time.Time         `bson:"completed_at" json:"completed_at"`
	Sets        []CompletedSetLog `bson:"sets" json:"sets"`
	Notes       string            `bson:"notes,omitempty" json:"notes,omitempty"`
}

// CompletionSummary is the acknowledgment returned for a recorded session.
type CompletionSummary struct {
	Status          string  `json:"status"`
	UserID          string  `json:"user_id"`
	PlanID          *string `json:"plan_id"`
	SetsLogged      int     `json:"sets_logged"`
	DurationMinutes int     `json:"duration_minutes"`
	NewPRs          int     `json:"new_prs"`
	Message         string  `json:"message"`
}
