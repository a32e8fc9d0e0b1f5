// File: database/repository/timeslot/crud.go
package timeslotRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"supermock/models"
)

func (r *mongoTimeSlotRepo) Create(ctx context.Context, slot *models.TimeSlot) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if slot.ID == "" {
		slot.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	slot.Status = models.SlotStatusAvailable
	slot.CreatedAt = now
	slot.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, slot)
	return err
}

func (r *mongoTimeSlotRepo) GetByID(ctx context.Context, slotID string) (*models.TimeSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var slot models.TimeSlot
	if err := r.coll.FindOne(ctx, bson.M{"id": slotID}).Decode(&slot); err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *mongoTimeSlotRepo) UpdateFields(ctx context.Context, slotID string, fields map[string]interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"updatedAt": time.Now().UTC()}
	for k, v := range fields {
		set[k] = v
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": slotID}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoTimeSlotRepo) DeleteAvailable(ctx context.Context, interviewerID, slotID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"id":            slotID,
		"interviewerId": interviewerID,
		"status":        models.SlotStatusAvailable,
	}
	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
