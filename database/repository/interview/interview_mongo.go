// File: database/repository/interview/interview_mongo.go
package interviewRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"supermock/models"
)

func (r *mongoInterviewRepo) Create(ctx context.Context, interview *models.Interview) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if interview.ID == "" {
		interview.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	interview.CreatedAt = now
	interview.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, interview)
	return err
}

func (r *mongoInterviewRepo) GetByID(ctx context.Context, interviewID string) (*models.Interview, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var interview models.Interview
	if err := r.coll.FindOne(ctx, bson.M{"id": interviewID}).Decode(&interview); err != nil {
		return nil, err
	}
	return &interview, nil
}

func (r *mongoInterviewRepo) GetByIDs(ctx context.Context, interviewIDs []string) (map[string]models.Interview, error) {
	if len(interviewIDs) == 0 {
		return map[string]models.Interview{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"id": bson.M{"$in": interviewIDs}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var interviews []models.Interview
	if err := cursor.All(ctx, &interviews); err != nil {
		return nil, err
	}

	byID := make(map[string]models.Interview, len(interviews))
	for _, iv := range interviews {
		byID[iv.ID] = iv
	}
	return byID, nil
}

func (r *mongoInterviewRepo) ListByParticipant(ctx context.Context, userID string) ([]models.Interview, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"$or": bson.A{
		bson.M{"candidateId": userID},
		bson.M{"interviewerId": userID},
	}}
	opts := options.Find().SetSort(bson.D{{Key: "scheduledAt", Value: -1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var interviews []models.Interview
	if err := cursor.All(ctx, &interviews); err != nil {
		return nil, err
	}
	return interviews, nil
}

func (r *mongoInterviewRepo) UpdateFields(ctx context.Context, interviewID string, fields map[string]interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"updatedAt": time.Now().UTC()}
	for k, v := range fields {
		set[k] = v
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": interviewID}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoInterviewRepo) TransitionStatus(ctx context.Context, interviewID string, from []string, to string) (*models.Interview, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": interviewID, "status": bson.M{"$in": from}}
	update := bson.M{"$set": bson.M{
		"status":    to,
		"updatedAt": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var interview models.Interview
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&interview); err != nil {
		return nil, err
	}
	return &interview, nil
}

func (r *mongoInterviewRepo) Delete(ctx context.Context, interviewID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": interviewID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoInterviewRepo) AddScore(ctx context.Context, score *models.InterviewScore) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if score.ID == "" {
		score.ID = uuid.New().String()
	}
	if score.CreatedAt.IsZero() {
		score.CreatedAt = time.Now().UTC()
	}

	_, err := r.scores.InsertOne(ctx, score)
	return err
}

func (r *mongoInterviewRepo) ListScores(ctx context.Context, interviewID string) ([]models.InterviewScore, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.scores.Find(ctx, bson.M{"interviewId": interviewID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var scores []models.InterviewScore
	if err := cursor.All(ctx, &scores); err != nil {
		return nil, err
	}
	return scores, nil
}
