package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lumenlearn/challenge-api/internal/models"
)

// MongoStepRepository is the Mongo implementation of StepRepository.
type MongoStepRepository struct {
	coll *mongo.Collection
}

// NewMongoStepRepository creates a StepRepository over db's steps collection.
func NewMongoStepRepository(db *mongo.Database) StepRepository {
	return &MongoStepRepository{coll: db.Collection("steps")}
}

type stepDoc struct {
	ID          primitive.ObjectID `bson:"_id"`
	models.Step `bson:",inline"`
}

func (d *stepDoc) model() *models.Step {
	st := d.Step
	st.ID = d.ID.Hex()
	if st.HelpResources == nil {
		st.HelpResources = []models.StepResource{}
	}
	return &st
}

func (r *MongoStepRepository) Insert(ctx context.Context, step *models.Step) (string, error) {
	res, err := r.coll.InsertOne(ctx, step)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("repository: inserted step id is not an object id")
	}
	return oid.Hex(), nil
}

func (r *MongoStepRepository) FindByID(ctx context.Context, id string) (*models.Step, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var doc stepDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc.model(), nil
}

func (r *MongoStepRepository) SetVideoPath(ctx context.Context, id, path string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	return r.updateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"videoPath": path}},
	)
}

func (r *MongoStepRepository) PushResource(ctx context.Context, id string, res models.StepResource) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	return r.updateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$push": bson.M{"helpResources": res}},
	)
}

func (r *MongoStepRepository) SetResourcePrompt(ctx context.Context, stepID, resourceID, prompt string) error {
	return r.updateResource(ctx, stepID, resourceID, bson.M{"helpResources.$.prompt": prompt})
}

func (r *MongoStepRepository) SetResourcePath(ctx context.Context, stepID, resourceID, path string) error {
	return r.updateResource(ctx, stepID, resourceID, bson.M{"helpResources.$.resourcePath": path})
}

// updateResource applies a positional update to the embedded resource matched
// by resource id.
func (r *MongoStepRepository) updateResource(ctx context.Context, stepID, resourceID string, fields bson.M) error {
	oid, err := primitive.ObjectIDFromHex(stepID)
	if err != nil {
		return ErrNotFound
	}
	return r.updateOne(ctx,
		bson.M{"_id": oid, "helpResources.resourceId": resourceID},
		bson.M{"$set": fields},
	)
}

func (r *MongoStepRepository) PullResource(ctx context.Context, stepID, resourceID string) error {
	oid, err := primitive.ObjectIDFromHex(stepID)
	if err != nil {
		return ErrNotFound
	}
	return r.updateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$pull": bson.M{"helpResources": bson.M{"resourceId": resourceID}}},
	)
}

func (r *MongoStepRepository) updateOne(ctx context.Context, filter, update bson.M) error {
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoStepRepository) Delete(ctx context.Context, id string) error {
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
