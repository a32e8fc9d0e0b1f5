// File: database/repository/booking/queries.go
package bookingRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"supermock/models"
)

func (r *mongoBookingRepo) ListByCandidate(ctx context.Context, candidateID string) ([]models.Booking, error) {
	return r.list(ctx, bson.M{"candidateId": candidateID})
}

func (r *mongoBookingRepo) ListByInterviewer(ctx context.Context, interviewerID string) ([]models.Booking, error) {
	return r.list(ctx, bson.M{"interviewerId": interviewerID})
}

func (r *mongoBookingRepo) list(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "slotStart", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *mongoBookingRepo) ActiveBySlotIDs(ctx context.Context, slotIDs []string) (map[string]models.Booking, error) {
	if len(slotIDs) == 0 {
		return map[string]models.Booking{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"slotId": bson.M{"$in": slotIDs},
		"status": bson.M{"$in": []string{models.BookingStatusCreated, models.BookingStatusConfirmed}},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}

	bySlot := make(map[string]models.Booking, len(bookings))
	for _, b := range bookings {
		bySlot[b.SlotID] = b
	}
	return bySlot, nil
}

func (r *mongoBookingRepo) ListExpiredConfirmed(ctx context.Context, now time.Time) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"status":  models.BookingStatusConfirmed,
		"slotEnd": bson.M{"$lt": now},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}
