package domain

import "time"

// SetType describes how a single prescribed set is performed.
type SetType string

const (
	SetTypeStandard SetType = "STANDARD"
	SetTypeWarmup   SetType = "WARMUP"
	SetTypeDropset  SetType = "DROPSET"
	SetTypeAmrap    SetType = "AMRAP" // as many reps as possible, no target
	SetTypeRest     SetType = "REST"
)

func (t SetType) IsValid() bool {
	switch t {
	case SetTypeStandard, SetTypeWarmup, SetTypeDropset, SetTypeAmrap, SetTypeRest:
		return true
	}
	return false
}

// PlannedSet is one prescribed set within a planned exercise. Target fields
// are pointers: an AMRAP set has no target rep count at all.
type PlannedSet struct {
	SetNumber      int      `json:"set_number"`
	SetType        SetType  `json:"set_type"`
	TargetReps     *int     `json:"target_reps,omitempty"`
	TargetWeightKg *float64 `json:"target_weight_kg,omitempty"`
	TargetRPE      *int     `json:"target_rpe,omitempty"`
	RestSeconds    int      `json:"rest_seconds"`
}

// PlannedExercise is one slot in a workout plan. Name, type and muscle group
// are denormalized from the exercise library at generation time so clients
// can render the plan without a second round trip.
type PlannedExercise struct {
	OrderIndex         int          `json:"order_index"`
	ExerciseID         string       `json:"exercise_id"`
	ExerciseName       string       `json:"exercise_name"`
	ExerciseType       ExerciseType `json:"exercise_type"`
	MuscleGroup        string       `json:"muscle_group"`
	Sets               []PlannedSet `json:"sets"`
	RestSeconds        int          `json:"rest_seconds"`
	CoachingNote       string       `json:"coaching_note,omitempty"`
	CableConfig        CableConfig  `json:"cable_config,omitempty"`
	IsTravelSubstitute bool         `json:"is_travel_substitute"`
}

// WorkoutPlan is the aggregate produced for one training session. It is
// created fresh on every request and never mutated after creation.
type WorkoutPlan struct {
	PlanID                   string            `json:"plan_id"`
	UserID                   string            `json:"user_id"`
	GeneratedAt              time.Time         `json:"generated_at"`
	WorkoutName              string            `json:"workout_name"`
	EstimatedDurationMinutes int               `json:"estimated_duration_minutes"`
	Exercises                []PlannedExercise `json:"exercises"`
	AINotes                  string            `json:"ai_notes,omitempty"`
}
