// File: database/repository/block/block_mongo.go
package blockRepo

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

type BlockRepository interface {
	Create(ctx context.Context, block *models.UserBlock) error
	GetByID(ctx context.Context, blockID string) (*models.UserBlock, error)
	Delete(ctx context.Context, blockID string) error
	ListByUser(ctx context.Context, userID string) ([]models.UserBlock, error)
}

type mongoBlockRepo struct {
	coll *mongo.Collection
}

// NewMongoBlockRepo constructs a new MongoDB BlockRepository.
func NewMongoBlockRepo() BlockRepository {
	r := &mongoBlockRepo{
		coll: database.DB().Collection("user_blocks"),
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().SetName("user_idx"),
	})
	if err != nil {
		utils.GetLogger().Sugar().Warnf("block repo: index setup failed: %v", err)
	}
	return r
}

func (r *mongoBlockRepo) Create(ctx context.Context, block *models.UserBlock) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if block.ID == "" {
		block.ID = uuid.New().String()
	}
	if block.CreatedAt.IsZero() {
		block.CreatedAt = time.Now().UTC()
	}

	_, err := r.coll.InsertOne(ctx, block)
	return err
}

func (r *mongoBlockRepo) GetByID(ctx context.Context, blockID string) (*models.UserBlock, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var block models.UserBlock
	if err := r.coll.FindOne(ctx, bson.M{"id": blockID}).Decode(&block); err != nil {
		return nil, err
	}
	return &block, nil
}

func (r *mongoBlockRepo) Delete(ctx context.Context, blockID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": blockID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoBlockRepo) ListByUser(ctx context.Context, userID string) ([]models.UserBlock, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var blocks []models.UserBlock
	if err := cursor.All(ctx, &blocks); err != nil {
		return nil, err
	}
	return blocks, nil
}
