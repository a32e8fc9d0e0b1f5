// FILE: database/repository/interview/indexes.go
package interviewRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the interview collections.
func (r *mongoInterviewRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "bookingId", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_booking"),
		},
		{
			Keys:    bson.D{{Key: "candidateId", Value: 1}, {Key: "scheduledAt", Value: -1}},
			Options: options.Index().SetName("candidate_scheduled_idx"),
		},
		{
			Keys:    bson.D{{Key: "interviewerId", Value: 1}, {Key: "scheduledAt", Value: -1}},
			Options: options.Index().SetName("interviewer_scheduled_idx"),
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create interview indexes: %w", err)
	}

	_, err := r.scores.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "interviewId", Value: 1}, {Key: "createdAt", Value: 1}},
		Options: options.Index().SetName("interview_created_idx"),
	})
	if err != nil {
		return fmt.Errorf("failed to create interview score indexes: %w", err)
	}
	return nil
}
