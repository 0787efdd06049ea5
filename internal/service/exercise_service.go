package service

import (
	"context"
	"errors"
	"fmt"

	"phoenix/workout-api/internal/domain"
	"phoenix/workout-api/internal/repository"
)

// --- Error Definitions ---
var (
	ErrUnknownExerciseType = errors.New("unknown exercise type")
)

// ExerciseService serves the static exercise library.
type ExerciseService interface {
	// ListAll returns every library entry in insertion order.
	ListAll(ctx context.Context) ([]domain.ExerciseDefinition, error)
	// ListHybrid returns entries that do not require the Vitruvian machine,
	// optionally restricted to one exercise type. The filter is matched
	// case-insensitively; an unrecognized value is a validation error.
	ListHybrid(ctx context.Context, typeFilter string) ([]domain.ExerciseDefinition, error)
}

type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(exerciseRepo repository.ExerciseRepository) ExerciseService {
	return &exerciseService{
		exerciseRepo: exerciseRepo,
	}
}

func (s *exerciseService) ListAll(ctx context.Context) ([]domain.ExerciseDefinition, error) {
	return s.exerciseRepo.ListAll(ctx)
}

func (s *exerciseService) ListHybrid(ctx context.Context, typeFilter string) ([]domain.ExerciseDefinition, error) {
	var filter domain.ExerciseType
	if typeFilter != "" {
		parsed, err := domain.ParseExerciseType(typeFilter)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownExerciseType, typeFilter)
		}
		filter = parsed
	}

	all, err := s.exerciseRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	hybrid := make([]domain.ExerciseDefinition, 0, len(all))
	for _, ex := range all {
		if !ex.ExerciseType.IsHybrid() {
			continue
		}
		if filter != "" && ex.ExerciseType != filter {
			continue
		}
		hybrid = append(hybrid, ex)
	}
	return hybrid, nil
}
