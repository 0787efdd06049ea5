package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"phoenix/workout-api/internal/domain"
	"phoenix/workout-api/internal/repository"

	"github.com/google/uuid"
)

// PlanService produces workout plans. The current policy is a fixed template;
// the interface is the seam where a history-driven progression policy will be
// swapped in later without touching callers.
type PlanService interface {
	// GenerateDaily builds today's plan for the given user. History is
	// accepted for forward compatibility and currently unused: the same
	// exercise sequence is produced on every call, only the plan id and
	// generation time differ.
	GenerateDaily(ctx context.Context, userID string, history []domain.CompletionSummary) (*domain.WorkoutPlan, error)
}

type planService struct {
	exerciseRepo repository.ExerciseRepository
}

// NewPlanService creates a new instance of planService.
func NewPlanService(exerciseRepo repository.ExerciseRepository) PlanService {
	return &planService{
		exerciseRepo: exerciseRepo,
	}
}

// templateSlot prescribes one slot of the fixed template. Name, type and
// muscle group are intentionally absent: they are resolved from the library
// at generation time so the denormalized plan fields cannot drift from it.
type templateSlot struct {
	exerciseID   string
	restSeconds  int
	coachingNote string
	cableConfig  domain.CableConfig
	sets         []domain.PlannedSet
}

const (
	templateWorkoutName     = "Upper Push — Day 1"
	templateDurationMinutes = 35
	templateCoachNotes      = "Progressive overload target: +2.5kg on Cable Chest Press if all 4 sets completed at RPE <8."
)

// upperPushTemplate is the MVP "upper push day": two Vitruvian cable
// movements separated by timed rests, closed with a bodyweight AMRAP
// finisher.
func upperPushTemplate() []templateSlot {
	return []templateSlot{
		{
			exerciseID:   "cable-chest-press",
			restSeconds:  60,
			coachingNote: "Set cable at chest height. Drive elbows together at lockout.",
			cableConfig:  domain.CableConfigDouble,
			sets: []domain.PlannedSet{
				{SetNumber: 1, SetType: domain.SetTypeWarmup, TargetReps: intTarget(15), TargetWeightKg: weightTarget(10), RestSeconds: 60},
				{SetNumber: 2, SetType: domain.SetTypeStandard, TargetReps: intTarget(10), TargetWeightKg: weightTarget(20), RestSeconds: 60},
				{SetNumber: 3, SetType: domain.SetTypeStandard, TargetReps: intTarget(10), TargetWeightKg: weightTarget(20), RestSeconds: 60},
				{SetNumber: 4, SetType: domain.SetTypeStandard, TargetReps: intTarget(8), TargetWeightKg: weightTarget(22.5), RestSeconds: 60},
			},
		},
		{
			exerciseID:  "rest-90",
			restSeconds: 90,
			sets: []domain.PlannedSet{
				{SetNumber: 1, SetType: domain.SetTypeRest, RestSeconds: 90},
			},
		},
		{
			exerciseID:   "cable-shoulder-press",
			restSeconds:  60,
			coachingNote: "Press vertical. Brace core to protect lumbar.",
			cableConfig:  domain.CableConfigDouble,
			sets: []domain.PlannedSet{
				{SetNumber: 1, SetType: domain.SetTypeStandard, TargetReps: intTarget(10), TargetWeightKg: weightTarget(15), RestSeconds: 60},
				{SetNumber: 2, SetType: domain.SetTypeStandard, TargetReps: intTarget(10), TargetWeightKg: weightTarget(15), RestSeconds: 60},
				{SetNumber: 3, SetType: domain.SetTypeStandard, TargetReps: intTarget(8), TargetWeightKg: weightTarget(17.5), RestSeconds: 60},
			},
		},
		{
			exerciseID:  "rest-60",
			restSeconds: 60,
			sets: []domain.PlannedSet{
				{SetNumber: 1, SetType: domain.SetTypeRest, RestSeconds: 60},
			},
		},
		{
			exerciseID:   "bw-pushup",
			restSeconds:  60,
			coachingNote: "Finisher: go to near failure. Control the negative.",
			sets: []domain.PlannedSet{
				{SetNumber: 1, SetType: domain.SetTypeAmrap, RestSeconds: 60},
				{SetNumber: 2, SetType: domain.SetTypeAmrap, RestSeconds: 60},
			},
		},
	}
}

// GenerateDaily resolves the template against the exercise library and wraps
// it in a fresh plan. Every template exercise id must resolve to a library
// entry; a miss means the template and the library are out of sync.
func (s *planService) GenerateDaily(ctx context.Context, userID string, history []domain.CompletionSummary) (*domain.WorkoutPlan, error) {
	_ = history // unused until the progression policy lands

	slots := upperPushTemplate()
	exercises := make([]domain.PlannedExercise, 0, len(slots))
	for i, slot := range slots {
		def, err := s.exerciseRepo.GetByID(ctx, slot.exerciseID)
		if err != nil {
			return nil, fmt.Errorf("plan template references unknown exercise %q: %w", slot.exerciseID, err)
		}
		exercises = append(exercises, domain.PlannedExercise{
			OrderIndex:   i,
			ExerciseID:   def.ID,
			ExerciseName: def.Name,
			ExerciseType: def.ExerciseType,
			MuscleGroup:  def.MuscleGroup,
			Sets:         slot.sets,
			RestSeconds:  slot.restSeconds,
			CoachingNote: slot.coachingNote,
			CableConfig:  slot.cableConfig,
		})
	}

	return &domain.WorkoutPlan{
		PlanID:                   newPlanID(),
		UserID:                   userID,
		GeneratedAt:              time.Now().UTC(),
		WorkoutName:              templateWorkoutName,
		EstimatedDurationMinutes: templateDurationMinutes,
		Exercises:                exercises,
		AINotes:                  templateCoachNotes,
	}, nil
}

// newPlanID returns a "plan_" token with 8 hex chars of a fresh UUID.
func newPlanID() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "plan_" + hex[:8]
}

func intTarget(reps int) *int {
	return &reps
}

func weightTarget(kg float64) *float64 {
	return &kg
}
