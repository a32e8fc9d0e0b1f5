// File: database/repository/points/points_mongo.go
package pointsRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"supermock/models"
)

func (r *mongoPointsRepo) GetAccount(ctx context.Context, userID string) (*models.PointsAccount, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"userId": userID}
	update := bson.M{
		"$setOnInsert": bson.M{
			"userId":    userID,
			"balance":   0,
			"updatedAt": time.Now().UTC(),
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var account models.PointsAccount
	if err := r.accounts.FindOneAndUpdate(ctx, filter, update, opts).Decode(&account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *mongoPointsRepo) Debit(ctx context.Context, userID string, amount int) (*models.PointsAccount, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// The balance guard in the filter makes the check-and-decrement a single
	// atomic document update.
	filter := bson.M{"userId": userID, "balance": bson.M{"$gte": amount}}
	update := bson.M{
		"$inc": bson.M{"balance": -amount},
		"$set": bson.M{"updatedAt": time.Now().UTC()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var account models.PointsAccount
	if err := r.accounts.FindOneAndUpdate(ctx, filter, update, opts).Decode(&account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *mongoPointsRepo) Credit(ctx context.Context, userID string, amount int) (*models.PointsAccount, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"userId": userID}
	update := bson.M{
		"$inc": bson.M{"balance": amount},
		"$set": bson.M{"updatedAt": time.Now().UTC()},
		"$setOnInsert": bson.M{
			"userId": userID,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var account models.PointsAccount
	if err := r.accounts.FindOneAndUpdate(ctx, filter, update, opts).Decode(&account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *mongoPointsRepo) SetBalance(ctx context.Context, userID string, balance int) (*models.PointsAccount, error) {
	if balance < 0 {
		return nil, fmt.Errorf("balance cannot be negative")
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"userId": userID}
	update := bson.M{
		"$set": bson.M{
			"balance":   balance,
			"updatedAt": time.Now().UTC(),
		},
		"$setOnInsert": bson.M{
			"userId": userID,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.Before)

	var previous models.PointsAccount
	err := r.accounts.FindOneAndUpdate(ctx, filter, update, opts).Decode(&previous)
	if err == mongo.ErrNoDocuments {
		// Upsert created the account; previous balance is zero.
		return &models.PointsAccount{UserID: userID, Balance: 0}, nil
	}
	if err != nil {
		return nil, err
	}
	return &previous, nil
}

func (r *mongoPointsRepo) AddTransaction(ctx context.Context, tx *models.PointsTransaction) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if tx.ID == "" {
		tx.ID = uuid.New().String()
	}
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = time.Now().UTC()
	}

	_, err := r.transactions.InsertOne(ctx, tx)
	return err
}

func (r *mongoPointsRepo) ListTransactions(ctx context.Context, userID string, page, limit int) ([]models.PointsTransaction, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"userId": userID}
	total, err := r.transactions.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := r.transactions.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var txs []models.PointsTransaction
	if err := cursor.All(ctx, &txs); err != nil {
		return nil, 0, err
	}
	return txs, total, nil
}
