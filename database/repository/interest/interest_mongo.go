// File: database/repository/interest/interest_mongo.go
package interestRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"supermock/database"
	"supermock/models"
	"supermock/utils"
)

type InterestRepository interface {
	List(ctx context.Context) ([]models.Interest, error)
	Create(ctx context.Context, interest *models.Interest) error
	Rename(ctx context.Context, interestID, name string) error
	Delete(ctx context.Context, interestID string) error
}

type mongoInterestRepo struct {
	coll *mongo.Collection
}

// NewMongoInterestRepo constructs a new MongoDB InterestRepository.
func NewMongoInterestRepo() InterestRepository {
	r := &mongoInterestRepo{
		coll: database.DB().Collection("interests"),
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("unique_name"),
	})
	if err != nil {
		utils.GetLogger().Sugar().Warnf("interest repo: index setup failed: %v", err)
	}
	return r
}

func (r *mongoInterestRepo) List(ctx context.Context) ([]models.Interest, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var interests []models.Interest
	if err := cursor.All(ctx, &interests); err != nil {
		return nil, err
	}
	return interests, nil
}

func (r *mongoInterestRepo) Create(ctx context.Context, interest *models.Interest) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if interest.ID == "" {
		interest.ID = uuid.New().String()
	}
	if interest.CreatedAt.IsZero() {
		interest.CreatedAt = time.Now().UTC()
	}

	_, err := r.coll.InsertOne(ctx, interest)
	return err
}

func (r *mongoInterestRepo) Rename(ctx context.Context, interestID, name string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": interestID}, bson.M{"$set": bson.M{"name": name}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoInterestRepo) Delete(ctx context.Context, interestID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": interestID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
