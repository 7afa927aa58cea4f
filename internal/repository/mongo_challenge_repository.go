package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lumenlearn/challenge-api/internal/models"
)

// MongoChallengeRepository is the Mongo implementation of ChallengeRepository.
type MongoChallengeRepository struct {
	coll *mongo.Collection
}

// NewMongoChallengeRepository creates a ChallengeRepository over db's
// challenges collection.
func NewMongoChallengeRepository(db *mongo.Database) ChallengeRepository {
	return &MongoChallengeRepository{coll: db.Collection("challenges")}
}

type challengeDoc struct {
	ID               primitive.ObjectID `bson:"_id"`
	models.Challenge `bson:",inline"`
}

func (d *challengeDoc) model() *models.Challenge {
	ch := d.Challenge
	ch.ID = d.ID.Hex()
	if ch.Steps == nil {
		ch.Steps = []string{}
	}
	return &ch
}

func (r *MongoChallengeRepository) Insert(ctx context.Context, challenge *models.Challenge) (string, error) {
	res, err := r.coll.InsertOne(ctx, challenge)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("repository: inserted challenge id is not an object id")
	}
	return oid.Hex(), nil
}

func (r *MongoChallengeRepository) FindByID(ctx context.Context, id string) (*models.Challenge, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var doc challengeDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc.model(), nil
}

func (r *MongoChallengeRepository) List(ctx context.Context) ([]models.Challenge, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	challenges := []models.Challenge{}
	for cursor.Next(ctx) {
		var doc challengeDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		challenges = append(challenges, *doc.model())
	}
	return challenges, cursor.Err()
}

func (r *MongoChallengeRepository) SetTitle(ctx context.Context, id, title string) error {
	return r.setField(ctx, id, bson.M{"title": title})
}

func (r *MongoChallengeRepository) SetSteps(ctx context.Context, id string, stepIDs []string) error {
	if stepIDs == nil {
		stepIDs = []string{}
	}
	return r.setField(ctx, id, bson.M{"steps": stepIDs})
}

func (r *MongoChallengeRepository) setField(ctx context.Context, id string, fields bson.M) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoChallengeRepository) PushStep(ctx context.Context, id, stepID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$push": bson.M{"steps": stepID}},
	)
	if err != nil {
		return err
	}
	if res.ModifiedCount == 0 {
		return ErrNoChange
	}
	return nil
}

func (r *MongoChallengeRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
