package memory

import (
	"context"

	"phoenix/workout-api/internal/domain"
	"phoenix/workout-api/internal/repository"
)

// memoryExerciseRepository serves the static exercise library. The library is
// built once in the constructor and read-only afterwards, so it is safe to
// share across request handlers without locking.
type memoryExerciseRepository struct {
	exercises []domain.ExerciseDefinition
	byID      map[string]int
}

// NewExerciseRepository seeds the library and returns a read-only repository
// over it.
func NewExerciseRepository() repository.ExerciseRepository {
	exercises := seedLibrary()
	byID := make(map[string]int, len(exercises))
	for i, ex := range exercises {
		byID[ex.ID] = i
	}
	return &memoryExerciseRepository{
		exercises: exercises,
		byID:      byID,
	}
}

// ListAll returns every library entry in insertion order.
func (r *memoryExerciseRepository) ListAll(ctx context.Context) ([]domain.ExerciseDefinition, error) {
	out := make([]domain.ExerciseDefinition, len(r.exercises))
	copy(out, r.exercises)
	return out, nil
}

// GetByID looks up a single entry by its stable identifier.
func (r *memoryExerciseRepository) GetByID(ctx context.Context, id string) (*domain.ExerciseDefinition, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	ex := r.exercises[i]
	return &ex, nil
}

// seedLibrary builds the full exercise library: Vitruvian cable exercises
// first, then the hybrid alternatives (dumbbell, bodyweight, TRX) and the
// rest-timer templates.
func seedLibrary() []domain.ExerciseDefinition {
	return []domain.ExerciseDefinition{
		// Vitruvian
		{
			ID: "cable-chest-press", Name: "Cable Chest Press",
			ExerciseType: domain.ExerciseTypeVitruvian, MuscleGroup: "CHEST", Equipment: "VITRUVIAN",
			CoachingNote:       "Set cable at chest height. Drive elbows together at lockout.",
			DefaultCableConfig: domain.CableConfigDouble,
		},
		{
			ID: "cable-shoulder-press", Name: "Cable Shoulder Press",
			ExerciseType: domain.ExerciseTypeVitruvian, MuscleGroup: "SHOULDERS", Equipment: "VITRUVIAN",
			CoachingNote:       "Press vertical. Brace core to protect lumbar.",
			DefaultCableConfig: domain.CableConfigDouble,
		},
		{
			ID: "cable-row", Name: "Cable Row",
			ExerciseType: domain.ExerciseTypeVitruvian, MuscleGroup: "BACK", Equipment: "VITRUVIAN",
			CoachingNote:       "Chest up, pull handles to lower ribs. No torso swing.",
			DefaultCableConfig: domain.CableConfigDouble,
		},
		{
			ID: "cable-squat", Name: "Cable Squat",
			ExerciseType: domain.ExerciseTypeVitruvian, MuscleGroup: "QUADS", Equipment: "VITRUVIAN",
			CoachingNote:       "Handles at shoulders. Sit between the heels, stand tall.",
			DefaultCableConfig: domain.CableConfigDouble,
		},

		// Dumbbell
		{
			ID: "db-chest-press", Name: "Dumbbell Chest Press",
			ExerciseType: domain.ExerciseTypeDumbbell, MuscleGroup: "CHEST", Equipment: "DUMBBELL",
			CoachingNote: "Neutral spine, scapulae retracted. Lower until elbows at 90°.",
		},
		{
			ID: "db-row", Name: "Dumbbell Row",
			ExerciseType: domain.ExerciseTypeDumbbell, MuscleGroup: "BACK", Equipment: "DUMBBELL",
			CoachingNote: "Brace core. Drive elbow to hip, not shoulder.",
		},
		{
			ID: "db-shoulder-press", Name: "Dumbbell Shoulder Press",
			ExerciseType: domain.ExerciseTypeDumbbell, MuscleGroup: "SHOULDERS", Equipment: "DUMBBELL",
			CoachingNote: "Do not hyperextend lumbar. Press vertical, not forward.",
		},
		{
			ID: "db-rdl", Name: "Romanian Deadlift (DB)",
			ExerciseType: domain.ExerciseTypeDumbbell, MuscleGroup: "HAMSTRINGS", Equipment: "DUMBBELL",
			CoachingNote: "Hip hinge, not squat. Maintain neutral spine throughout.",
		},
		{
			ID: "db-lateral-raise", Name: "Lateral Raise",
			ExerciseType: domain.ExerciseTypeDumbbell, MuscleGroup: "SHOULDERS", Equipment: "DUMBBELL",
			CoachingNote: "Lead with elbows, not wrists. Stop at shoulder height.",
		},
		{
			ID: "db-bicep-curl", Name: "Dumbbell Bicep Curl",
			ExerciseType: domain.ExerciseTypeDumbbell, MuscleGroup: "BICEPS", Equipment: "DUMBBELL",
			CoachingNote: "Supinate at the top. Control the eccentric.",
		},
		{
			ID: "db-tricep-kickback", Name: "Tricep Kickback",
			ExerciseType: domain.ExerciseTypeDumbbell, MuscleGroup: "TRICEPS", Equipment: "DUMBBELL",
			CoachingNote: "Upper arm parallel to floor. Full extension at top.",
		},
		{
			ID: "db-goblet-squat", Name: "Goblet Squat",
			ExerciseType: domain.ExerciseTypeDumbbell, MuscleGroup: "QUADS", Equipment: "DUMBBELL",
			CoachingNote: "Elbows inside knees at bottom. Drive through heels.",
		},

		// Bodyweight
		{
			ID: "bw-pushup", Name: "Push-Up",
			ExerciseType: domain.ExerciseTypeBodyweight, MuscleGroup: "CHEST", Equipment: "BODYWEIGHT",
			CoachingNote: "Rigid plank from head to heel. Elbows 45° from torso.",
		},
		{
			ID: "bw-pullup", Name: "Pull-Up",
			ExerciseType: domain.ExerciseTypeBodyweight, MuscleGroup: "BACK", Equipment: "BODYWEIGHT",
			CoachingNote: "Dead hang start. Drive elbows down to lats, not shoulders.",
		},
		{
			ID: "bw-dip", Name: "Dip",
			ExerciseType: domain.ExerciseTypeBodyweight, MuscleGroup: "TRICEPS", Equipment: "BODYWEIGHT",
			CoachingNote: "Slight forward lean for chest emphasis. Don't flare elbows.",
		},
		{
			ID: "bw-plank", Name: "Plank",
			ExerciseType: domain.ExerciseTypeBodyweight, MuscleGroup: "CORE", Equipment: "BODYWEIGHT",
			CoachingNote: "Neutral spine. Squeeze glutes and abs. Don't hold breath.",
		},
		{
			ID: "bw-squat", Name: "Bodyweight Squat",
			ExerciseType: domain.ExerciseTypeBodyweight, MuscleGroup: "QUADS", Equipment: "BODYWEIGHT",
			CoachingNote: "Feet shoulder-width. Knees track toes. Full depth if mobility allows.",
		},
		{
			ID: "bw-lunge", Name: "Reverse Lunge",
			ExerciseType: domain.ExerciseTypeBodyweight, MuscleGroup: "QUADS", Equipment: "BODYWEIGHT",
			CoachingNote: "Step back, not forward. Rear knee hovers 1\" above floor.",
		},
		{
			ID: "bw-glute-bridge", Name: "Glute Bridge",
			ExerciseType: domain.ExerciseTypeBodyweight, MuscleGroup: "GLUTES", Equipment: "BODYWEIGHT",
			CoachingNote: "Drive through heels. Full hip extension at top. Pause 1 second.",
		},

		// TRX
		{
			ID: "trx-row", Name: "TRX Row",
			ExerciseType: domain.ExerciseTypeTRX, MuscleGroup: "BACK", Equipment: "TRX",
			CoachingNote: "Body angle controls difficulty. Retract scapulae before pulling.",
		},
		{
			ID: "trx-chest-press", Name: "TRX Chest Press",
			ExerciseType: domain.ExerciseTypeTRX, MuscleGroup: "CHEST", Equipment: "TRX",
			CoachingNote: "Lean forward for more load. Keep rigid plank throughout.",
		},
		{
			ID: "trx-bicep-curl", Name: "TRX Bicep Curl",
			ExerciseType: domain.ExerciseTypeTRX, MuscleGroup: "BICEPS", Equipment: "TRX",
			CoachingNote: "Elbows fixed, walk feet forward for more load.",
		},
		{
			ID: "trx-squat", Name: "TRX Squat",
			ExerciseType: domain.ExerciseTypeTRX, MuscleGroup: "QUADS", Equipment: "TRX",
			CoachingNote: "Hold handles for counterbalance. Allows deeper squat.",
		},
		{
			ID: "trx-plank", Name: "TRX Plank",
			ExerciseType: domain.ExerciseTypeTRX, MuscleGroup: "CORE", Equipment: "TRX",
			CoachingNote: "Feet in straps. Harder than floor plank, high core demand.",
		},

		// Rest timers
		{
			ID: "rest-60", Name: "Rest (60 sec)",
			ExerciseType: domain.ExerciseTypeRestTimer, MuscleGroup: "RECOVERY", Equipment: "NONE",
			CoachingNote: "Active recovery. Breathe. Shake out the pump.",
		},
		{
			ID: "rest-90", Name: "Rest (90 sec)",
			ExerciseType: domain.ExerciseTypeRestTimer, MuscleGroup: "RECOVERY", Equipment: "NONE",
			CoachingNote: "Longer recovery for heavy compound sets.",
		},
		{
			ID: "rest-120", Name: "Rest (2 min)",
			ExerciseType: domain.ExerciseTypeRestTimer, MuscleGroup: "RECOVERY", Equipment: "NONE",
			CoachingNote: "Full recovery. Used after max-effort sets.",
		},
	}
}
