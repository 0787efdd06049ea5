package mongo

import (
	"context"
	"errors"

	"phoenix/workout-api/internal/domain"
	"phoenix/workout-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const workoutLogCollectionName = "workout_logs"

// mongoWorkoutLogRepository implements repository.WorkoutLogRepository
type mongoWorkoutLogRepository struct {
	collection *mongo.Collection
}

// NewMongoWorkoutLogRepository creates a new workout log repository.
func NewMongoWorkoutLogRepository(db *mongo.Database) repository.WorkoutLogRepository {
	return &mongoWorkoutLogRepository{
		collection: db.Collection(workoutLogCollectionName),
	}
}

// Append inserts a completion log. Logs are append-only; there is no update
// path for this collection.
func (r *mongoWorkoutLogRepository) Append(ctx context.Context, log *domain.WorkoutCompletionLog) error {
	if log == nil || log.UserID == "" {
		return errors.New("workout log requires a user id")
	}
	if log.CompletedAt.Before(log.StartedAt) {
		return errors.New("workout log completed_at precedes started_at")
	}

	_, err := r.collection.InsertOne(ctx, log)
	return err
}

// GetByUserID retrieves the user's most recently completed logs.
func (r *mongoWorkoutLogRepository) GetByUserID(ctx context.Context, userID string, limit int) ([]domain.WorkoutCompletionLog, error) {
	if userID == "" {
		return nil, repository.ErrNotFound
	}

	filter := bson.M{"user_id": userID}
	findOptions := options.Find().SetSort(bson.D{{Key: "completed_at", Value: -1}})
	if limit > 0 {
		findOptions = findOptions.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	logs := make([]domain.WorkoutCompletionLog, 0)
	if err = cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return logs, nil
}

// EnsureWorkoutLogIndexes creates necessary indexes. Call during startup.
func EnsureWorkoutLogIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			// History reads: per-user, newest first.
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "completed_at", Value: -1}},
			Options: options.Index(),
		},
		{
			// Lookups by the plan a log was performed against.
			Keys:    bson.D{{Key: "plan_id", Value: 1}},
			Options: options.Index(),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
