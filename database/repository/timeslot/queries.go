// File: database/repository/timeslot/queries.go
package timeslotRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"supermock/models"
)

func (r *mongoTimeSlotRepo) List(ctx context.Context, filter models.SlotFilter) ([]models.TimeSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := bson.M{}
	if filter.Specialization != "" {
		query["specialization"] = filter.Specialization
	}
	if filter.InterviewerID != "" {
		query["interviewerId"] = filter.InterviewerID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	timeRange := bson.M{}
	if !filter.StartDate.IsZero() {
		timeRange["$gte"] = filter.StartDate
	}
	if !filter.EndDate.IsZero() {
		timeRange["$lte"] = filter.EndDate
	}
	if len(timeRange) > 0 {
		query["startTime"] = timeRange
	}

	opts := options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var slots []models.TimeSlot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

// FindOverlapping returns the interviewer's non-cancelled slots intersecting
// the [start, end) window, excluding excludeID (used when editing a slot).
func (r *mongoTimeSlotRepo) FindOverlapping(ctx context.Context, interviewerID string, start, end time.Time, excludeID string) ([]models.TimeSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := bson.M{
		"interviewerId": interviewerID,
		"status":        bson.M{"$ne": models.SlotStatusCancelled},
		"startTime":     bson.M{"$lt": end},
		"endTime":       bson.M{"$gt": start},
	}
	if excludeID != "" {
		query["id"] = bson.M{"$ne": excludeID}
	}

	cursor, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var slots []models.TimeSlot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *mongoTimeSlotRepo) Reserve(ctx context.Context, slotID string) (*models.TimeSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": slotID, "status": models.SlotStatusAvailable}
	update := bson.M{"$set": bson.M{
		"status":    models.SlotStatusBooked,
		"updatedAt": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var slot models.TimeSlot
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&slot); err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *mongoTimeSlotRepo) Release(ctx context.Context, slotID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": slotID, "status": models.SlotStatusBooked}
	update := bson.M{"$set": bson.M{
		"status":    models.SlotStatusAvailable,
		"updatedAt": time.Now().UTC(),
	}}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoTimeSlotRepo) CancelAvailable(ctx context.Context, interviewerID, slotID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"id":            slotID,
		"interviewerId": interviewerID,
		"status":        models.SlotStatusAvailable,
	}
	update := bson.M{"$set": bson.M{
		"status":    models.SlotStatusCancelled,
		"updatedAt": time.Now().UTC(),
	}}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
