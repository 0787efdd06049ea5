package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phoenix/workout-api/internal/api"
	"phoenix/workout-api/internal/domain"
	"phoenix/workout-api/internal/repository/memory"
	"phoenix/workout-api/internal/service"
)

func newTestRouter(t *testing.T, identity api.IdentityExtractor) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	exerciseRepo := memory.NewExerciseRepository()
	router := gin.New()
	api.SetupRoutes(
		router,
		identity,
		service.NewExerciseService(exerciseRepo),
		service.NewPlanService(exerciseRepo),
		service.NewWorkoutService(memory.NewWorkoutLogRepository()),
	)
	return router
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t, api.HeaderIdentity{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "phoenix-workout-api", body["service"])
	assert.Equal(t, "0.1.0", body["version"])
}

func TestTodaysWorkout_RequiresIdentity(t *testing.T) {
	router := newTestRouter(t, api.HeaderIdentity{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/workout/today", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "X-User-Id")
}

func TestTodaysWorkout(t *testing.T) {
	router := newTestRouter(t, api.HeaderIdentity{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/workout/today", nil)
	req.Header.Set("X-User-Id", "user-42")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var plan domain.WorkoutPlan
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &plan))
	assert.Equal(t, "user-42", plan.UserID)
	assert.NotEmpty(t, plan.PlanID)
	assert.Len(t, plan.Exercises, 5)
	assert.Equal(t, "cable-chest-press", plan.Exercises[0].ExerciseID)
}

func TestCompleteWorkout(t *testing.T) {
	router := newTestRouter(t, api.HeaderIdentity{})

	payload := map[string]any{
		"plan_id":      "plan_ab12cd34",
		"started_at":   "2024-01-01T10:00:00",
		"completed_at": "2024-01-01T10:42:00",
		"sets": []map[string]any{
			{"exercise_id": "cable-chest-press", "set_number": 1, "actual_reps": 15, "actual_weight_kg": 10},
			{"exercise_id": "cable-chest-press", "set_number": 2, "actual_reps": 10, "actual_weight_kg": 20},
			{"exercise_id": "cable-chest-press", "set_number": 3, "actual_reps": 10, "actual_weight_kg": 20},
			{"exercise_id": "cable-chest-press", "set_number": 4, "actual_reps": 8, "actual_weight_kg": 22.5, "is_pr": true},
			{"exercise_id": "bw-pushup", "set_number": 1, "actual_reps": 21, "actual_weight_kg": 0},
			{"exercise_id": "bw-pushup", "set_number": 2, "actual_reps": 14, "actual_weight_kg": 0},
		},
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/workout/complete", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", "user-42")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var summary domain.CompletionSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, "logged", summary.Status)
	assert.Equal(t, "user-42", summary.UserID)
	require.NotNil(t, summary.PlanID)
	assert.Equal(t, "plan_ab12cd34", *summary.PlanID)
	assert.Equal(t, 6, summary.SetsLogged)
	assert.Equal(t, 42, summary.DurationMinutes)
	assert.Equal(t, 1, summary.NewPRs)
	assert.Contains(t, summary.Message, "6 sets")
}

func TestCompleteWorkout_AcceptsRFC3339Timestamps(t *testing.T) {
	router := newTestRouter(t, api.HeaderIdentity{})

	body := []byte(`{
		"started_at": "2024-01-01T10:00:00Z",
		"completed_at": "2024-01-01T10:30:00Z",
		"sets": []
	}`)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/workout/complete", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", "user-42")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var summary domain.CompletionSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, 30, summary.DurationMinutes)
	assert.Zero(t, summary.SetsLogged)
}

func TestCompleteWorkout_RejectsReversedTimeRange(t *testing.T) {
	router := newTestRouter(t, api.HeaderIdentity{})

	body := []byte(`{
		"started_at": "2024-01-01T10:42:00",
		"completed_at": "2024-01-01T10:00:00",
		"sets": []
	}`)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/workout/complete", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", "user-42")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var errBody map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errBody))
	assert.Contains(t, errBody["error"], "completed_at")
}

func TestCompleteWorkout_RequiresIdentity(t *testing.T) {
	router := newTestRouter(t, api.HeaderIdentity{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/workout/complete", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCompleteWorkout_MissingTimestamps(t *testing.T) {
	router := newTestRouter(t, api.HeaderIdentity{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/workout/complete", bytes.NewReader([]byte(`{"sets": []}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", "user-42")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListExercises(t *testing.T) {
	router := newTestRouter(t, api.HeaderIdentity{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/exercises", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var exercises []domain.ExerciseDefinition
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &exercises))
	require.NotEmpty(t, exercises)
	for _, ex := range exercises {
		assert.True(t, ex.ExerciseType.IsValid(), "entry %s has invalid type %q", ex.ID, ex.ExerciseType)
	}
}

func TestListHybridExercises(t *testing.T) {
	router := newTestRouter(t, api.HeaderIdentity{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/exercises/hybrid", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var exercises []domain.ExerciseDefinition
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &exercises))
	require.NotEmpty(t, exercises)
	for _, ex := range exercises {
		assert.NotEqual(t, domain.ExerciseTypeVitruvian, ex.ExerciseType)
	}
}

func TestListHybridExercises_TypeFilter(t *testing.T) {
	router := newTestRouter(t, api.HeaderIdentity{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/exercises/hybrid?exercise_type=trx", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var exercises []domain.ExerciseDefinition
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &exercises))
	require.NotEmpty(t, exercises)
	for _, ex := range exercises {
		assert.Equal(t, domain.ExerciseTypeTRX, ex.ExerciseType)
	}
}

func TestListHybridExercises_UnknownTypeRejected(t *testing.T) {
	router := newTestRouter(t, api.HeaderIdentity{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/exercises/hybrid?exercise_type=KETTLEBELL", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var errBody map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errBody))
	assert.Contains(t, errBody["error"], "KETTLEBELL")
}

func TestUserHistory(t *testing.T) {
	router := newTestRouter(t, api.HeaderIdentity{})

	// Record one session, then read it back through the history endpoint.
	completion := []byte(`{
		"started_at": "2024-01-01T10:00:00",
		"completed_at": "2024-01-01T10:42:00",
		"sets": [{"exercise_id": "bw-pushup", "set_number": 1, "actual_reps": 12, "actual_weight_kg": 0, "is_pr": true}]
	}`)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/workout/complete", bytes.NewReader(completion))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", "user-42")
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/user/user-42/history?limit=5", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var history api.HistoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &history))
	assert.Equal(t, "user-42", history.UserID)
	assert.NotEmpty(t, history.Note)
	require.Len(t, history.Workouts, 1)
	assert.Equal(t, 1, history.Workouts[0].SetsLogged)
	assert.Equal(t, 1, history.Workouts[0].NewPRs)
}

func TestUserHistory_EmptyForUnknownUser(t *testing.T) {
	router := newTestRouter(t, api.HeaderIdentity{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/user/nobody/history", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var history api.HistoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &history))
	assert.Equal(t, "nobody", history.UserID)
	assert.Empty(t, history.Workouts)
	assert.NotEmpty(t, history.Note)
}

func TestUserHistory_InvalidLimit(t *testing.T) {
	router := newTestRouter(t, api.HeaderIdentity{})

	for _, limit := range []string{"abc", "-3"} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/user/user-42/history?limit=%s", limit), nil)
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "limit %q", limit)
	}
}
