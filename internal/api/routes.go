package api

import (
	"net/http"

	"phoenix/workout-api/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	ServiceName    = "phoenix-workout-api"
	ServiceVersion = "0.1.0"
)

// SetupRoutes registers all endpoints on the router. The identity extractor
// guards only the workout endpoints; the library and health endpoints are
// open, matching the trusted-network deployment model.
func SetupRoutes(
	router *gin.Engine,
	identity IdentityExtractor,
	exerciseService service.ExerciseService,
	planService service.PlanService,
	workoutService service.WorkoutService,
) {
	exerciseHandler := NewExerciseHandler(exerciseService)
	workoutHandler := NewWorkoutHandler(planService, workoutService)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": ServiceName,
			"version": ServiceVersion,
		})
	})

	router.GET("/exercises", exerciseHandler.ListExercises)
	router.GET("/exercises/hybrid", exerciseHandler.ListHybridExercises)
	router.GET("/user/:userId/history", workoutHandler.UserHistory)

	workoutGroup := router.Group("/workout")
	workoutGroup.Use(IdentityMiddleware(identity))
	{
		workoutGroup.GET("/today", workoutHandler.TodaysWorkout)
		workoutGroup.POST("/complete", workoutHandler.CompleteWorkout)
	}
}
