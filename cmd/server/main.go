package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"phoenix/workout-api/internal/api"
	"phoenix/workout-api/internal/config"
	"phoenix/workout-api/internal/repository"
	"phoenix/workout-api/internal/repository/memory"
	mongorepo "phoenix/workout-api/internal/repository/mongo"
	"phoenix/workout-api/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func main() {
	log.Infof("starting %s %s", api.ServiceName, api.ServiceVersion)

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	// --- Workout log store ---
	// In-process by default; MongoDB when a database URI is configured.
	var logRepo repository.WorkoutLogRepository = memory.NewWorkoutLogRepository()
	if cfg.Database.Enabled() {
		dbClient, err := mongorepo.ConnectDB(cfg.Database.URI)
		if err != nil {
			log.Fatalf("could not connect to MongoDB: %v", err)
		}
		defer func() {
			if err := mongorepo.DisconnectDB(dbClient); err != nil {
				log.Errorf("failed to disconnect MongoDB: %v", err)
			}
		}()
		appDB := dbClient.Database(cfg.Database.Name)
		log.Info("database connection established")

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
			defer cancel()
			mongorepo.EnsureWorkoutLogIndexes(ctx, appDB.Collection("workout_logs"))
		}()

		logRepo = mongorepo.NewMongoWorkoutLogRepository(appDB)
	} else {
		log.Info("no database configured, workout logs are kept in process memory")
	}

	// --- Repositories & Services ---
	exerciseRepo := memory.NewExerciseRepository()
	exerciseService := service.NewExerciseService(exerciseRepo)
	planService := service.NewPlanService(exerciseRepo)
	workoutService := service.NewWorkoutService(logRepo)

	// --- Caller identity ---
	var identity api.IdentityExtractor = api.HeaderIdentity{}
	if cfg.Auth.JWTSecret != "" {
		identity = api.NewTokenIdentity(cfg.Auth.JWTSecret)
		log.Info("caller identity: validated bearer tokens")
	} else {
		log.Warnf("caller identity: %s header (spoofable, trusted networks only)", api.UserIDHeader)
	}

	// --- Gin Engine ---
	router := gin.Default() // Includes Logger and Recovery middleware
	router.Use(cors.New(cors.Config{
		// Tighten to specific app origins before a public deployment.
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization", api.UserIDHeader},
		MaxAge:          12 * time.Hour,
	}))

	api.SetupRoutes(router, identity, exerciseService, planService, workoutService)

	// --- HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Infof("server listening on %s", cfg.Server.Address())

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen and serve: %v", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Info("server exiting")
}
