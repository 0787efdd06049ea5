package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"phoenix/workout-api/internal/domain"
	"phoenix/workout-api/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkoutHandler holds the plan and workout service dependencies.
type WorkoutHandler struct {
	planService    service.PlanService
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(planService service.PlanService, workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{
		planService:    planService,
		workoutService: workoutService,
	}
}

// --- DTOs for API (Data Transfer Objects) ---

// apiTime accepts RFC 3339 timestamps as well as the bare
// "2006-01-02T15:04:05" layout older clients still send.
type apiTime struct {
	time.Time
}

func (t *apiTime) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("timestamp must be a JSON string: %w", err)
	}
	if parsed, err := time.Parse(time.RFC3339, s); err == nil {
		t.Time = parsed
		return nil
	}
	parsed, err := time.Parse("2006-01-02T15:04:05", s)
	if err != nil {
		return fmt.Errorf("unrecognized timestamp %q", s)
	}
	t.Time = parsed
	return nil
}

// CompletedSetRequest is one performed set within a completion submission.
type CompletedSetRequest struct {
	ExerciseID     string  `json:"exercise_id" binding:"required"`
	SetNumber      int     `json:"set_number"`
	ActualReps     int     `json:"actual_reps"`
	ActualWeightKg float64 `json:"actual_weight_kg"`
	LoggedRPE      *int    `json:"logged_rpe"`
	IsPR           bool    `json:"is_pr"`
}

// CompleteWorkoutRequest defines the expected JSON for logging a finished
// session. The user id comes from the caller identity, never from the body.
type CompleteWorkoutRequest struct {
	PlanID      *string               `json:"plan_id"`
	StartedAt   apiTime               `json:"started_at"`
	CompletedAt apiTime               `json:"completed_at"`
	Sets        []CompletedSetRequest `json:"sets"`
	Notes       string                `json:"notes"`
}

// HistoryEntryResponse is one recorded session in the history listing.
type HistoryEntryResponse struct {
	PlanID      *string   `json:"plan_id"`
	StartedAt   time.Time `json:"started_at"`
	CompletedAt time.Time `json:"completed_at"`
	SetsLogged  int       `json:"sets_logged"`
	NewPRs      int       `json:"new_prs"`
	Notes       string    `json:"notes,omitempty"`
}

// HistoryResponse is the envelope for the user history endpoint.
type HistoryResponse struct {
	UserID   string                 `json:"user_id"`
	Workouts []HistoryEntryResponse `json:"workouts"`
	Note     string                 `json:"note"`
}

const historyNote = "Durable history storage is still rolling out; only sessions recorded by this deployment are shown."

// --- Handler Methods ---

// TodaysWorkout returns the generated plan for the authenticated caller.
func (h *WorkoutHandler) TodaysWorkout(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify caller.")
		return
	}

	plan, err := h.planService.GenerateDaily(c.Request.Context(), userID, nil)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to generate workout plan.")
		return
	}

	c.JSON(http.StatusOK, plan)
}

// CompleteWorkout validates and records a submitted completion log and
// returns its summary.
func (h *WorkoutHandler) CompleteWorkout(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify caller.")
		return
	}

	var req CompleteWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	if req.StartedAt.IsZero() || req.CompletedAt.IsZero() {
		abortWithError(c, http.StatusBadRequest, "Validation error: started_at and completed_at are required")
		return
	}

	workoutLog := &domain.WorkoutCompletionLog{
		PlanID:      req.PlanID,
		UserID:      userID,
		StartedAt:   req.StartedAt.Time,
		CompletedAt: req.CompletedAt.Time,
		Sets:        make([]domain.CompletedSetLog, 0, len(req.Sets)),
		Notes:       req.Notes,
	}
	for _, set := range req.Sets {
		workoutLog.Sets = append(workoutLog.Sets, domain.CompletedSetLog{
			ExerciseID:     set.ExerciseID,
			SetNumber:      set.SetNumber,
			ActualReps:     set.ActualReps,
			ActualWeightKg: set.ActualWeightKg,
			LoggedRPE:      set.LoggedRPE,
			IsPR:           set.IsPR,
		})
	}

	summary, err := h.workoutService.Complete(c.Request.Context(), workoutLog)
	if err != nil {
		if errors.Is(err, service.ErrInvalidTimeRange) || errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to record workout.")
		return
	}

	c.JSON(http.StatusOK, summary)
}

// UserHistory lists the user's recent recorded sessions.
func (h *WorkoutHandler) UserHistory(c *gin.Context) {
	userID := c.Param("userId")

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 0 {
		abortWithError(c, http.StatusBadRequest, "Validation error: limit must be a non-negative integer")
		return
	}

	logs, err := h.workoutService.History(c.Request.Context(), userID, limit)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve workout history.")
		return
	}

	workouts := make([]HistoryEntryResponse, 0, len(logs))
	for _, l := range logs {
		newPRs := 0
		for _, set := range l.Sets {
			if set.IsPR {
				newPRs++
			}
		}
		workouts = append(workouts, HistoryEntryResponse{
			PlanID:      l.PlanID,
			StartedAt:   l.StartedAt,
			CompletedAt: l.CompletedAt,
			SetsLogged:  len(l.Sets),
			NewPRs:      newPRs,
			Notes:       l.Notes,
		})
	}

	c.JSON(http.StatusOK, HistoryResponse{
		UserID:   userID,
		Workouts: workouts,
		Note:     historyNote,
	})
}
