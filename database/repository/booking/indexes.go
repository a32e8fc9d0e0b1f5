// FILE: database/repository/booking/indexes.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the bookings collection.
func (r *mongoBookingRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Slot exclusivity: at most one non-cancelled booking per slot.
		{
			Keys: bson.D{{Key: "slotId", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetName("unique_active_slot").
				SetPartialFilterExpression(bson.M{
					"status": bson.M{"$in": bson.A{"CREATED", "CONFIRMED"}},
				}),
		},
		{
			Keys:    bson.D{{Key: "candidateId", Value: 1}, {Key: "slotStart", Value: 1}},
			Options: options.Index().SetName("candidate_start_idx"),
		},
		{
			Keys:    bson.D{{Key: "interviewerId", Value: 1}, {Key: "slotStart", Value: 1}},
			Options: options.Index().SetName("interviewer_start_idx"),
		},
		// Completion sweep pattern.
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "slotEnd", Value: 1}},
			Options: options.Index().SetName("status_slot_end_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}
