package api

import (
	"errors"
	"net/http"

	"phoenix/workout-api/internal/domain"
	"phoenix/workout-api/internal/service"

	"github.com/gin-gonic/gin"
)

// ExerciseHandler holds the exercise service dependency.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// ListExercises returns the full library, Vitruvian entries included.
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	exercises, err := h.exerciseService.ListAll(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve exercises.")
		return
	}
	if exercises == nil {
		exercises = []domain.ExerciseDefinition{}
	}
	c.JSON(http.StatusOK, exercises)
}

// ListHybridExercises returns non-Vitruvian entries, optionally restricted
// by the exercise_type query parameter. Used by the travel mode picker.
func (h *ExerciseHandler) ListHybridExercises(c *gin.Context) {
	typeFilter := c.Query("exercise_type")

	exercises, err := h.exerciseService.ListHybrid(c.Request.Context(), typeFilter)
	if err != nil {
		if errors.Is(err, service.ErrUnknownExerciseType) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve exercises.")
		return
	}
	if exercises == nil {
		exercises = []domain.ExerciseDefinition{}
	}
	c.JSON(http.StatusOK, exercises)
}
