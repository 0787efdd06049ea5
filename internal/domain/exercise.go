package domain

import (
	"fmt"
	"strings"
)

// ExerciseType classifies an exercise by the equipment it is performed on.
type ExerciseType string

const (
	ExerciseTypeVitruvian  ExerciseType = "VITRUVIAN"
	ExerciseTypeDumbbell   ExerciseType = "DUMBBELL"
	ExerciseTypeBarbell    ExerciseType = "BARBELL"
	ExerciseTypeBodyweight ExerciseType = "BODYWEIGHT"
	ExerciseTypeTRX        ExerciseType = "TRX"
	ExerciseTypeMachine    ExerciseType = "MACHINE"
	ExerciseTypeRestTimer  ExerciseType = "REST_TIMER"
)

// ParseExerciseType normalizes a raw string (any casing) to its canonical
// ExerciseType value. Unrecognized values are an error.
func ParseExerciseType(raw string) (ExerciseType, error) {
	t := ExerciseType(strings.ToUpper(strings.TrimSpace(raw)))
	if !t.IsValid() {
		return "", fmt.Errorf("unknown exercise type %q", raw)
	}
	return t, nil
}

func (t ExerciseType) IsValid() bool {
	switch t {
	case ExerciseTypeVitruvian, ExerciseTypeDumbbell, ExerciseTypeBarbell,
		ExerciseTypeBodyweight, ExerciseTypeTRX, ExerciseTypeMachine,
		ExerciseTypeRestTimer:
		return true
	}
	return false
}

// IsHybrid reports whether the exercise can be performed without the
// Vitruvian cable machine.
func (t ExerciseType) IsHybrid() bool {
	return t != ExerciseTypeVitruvian
}

// CableConfig is the cable setting on the Vitruvian trainer.
type CableConfig string

const (
	CableConfigSingle CableConfig = "SINGLE"
	CableConfigDouble CableConfig = "DOUBLE"
)

// ExerciseDefinition is a single entry in the exercise library. Entries are
// seeded once at process start and never mutated afterwards.
type ExerciseDefinition struct {
	ID                 string       `bson:"id" json:"id"`
	Name               string       `bson:"name" json:"name"`
	ExerciseType       ExerciseType `bson:"exercise_type" json:"exercise_type"`
	MuscleGroup        string       `bson:"muscle_group" json:"muscle_group"`
	Equipment          string       `bson:"equipment" json:"equipment"`
	Description        string       `bson:"description,omitempty" json:"description,omitempty"`
	CoachingNote       string       `bson:"coaching_note,omitempty" json:"coaching_note,omitempty"`
	DefaultCableConfig CableConfig  `bson:"default_cable_config,omitempty" json:"default_cable_config,omitempty"`
}
