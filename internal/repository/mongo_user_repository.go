package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lumenlearn/challenge-api/internal/models"
)

// MongoUserRepository is the Mongo implementation of UserRepository.
type MongoUserRepository struct {
	coll *mongo.Collection
}

// NewMongoUserRepository creates a UserRepository over db's users collection.
func NewMongoUserRepository(db *mongo.Database) UserRepository {
	return &MongoUserRepository{coll: db.Collection("users")}
}

type userDoc struct {
	ID          primitive.ObjectID `bson:"_id"`
	models.User `bson:",inline"`
}

func (d *userDoc) model() *models.User {
	u := d.User
	u.ID = d.ID.Hex()
	if u.Challenges == nil {
		u.Challenges = []models.ActiveChallenge{}
	}
	return &u
}

func (r *MongoUserRepository) Insert(ctx context.Context, user *models.User) (string, error) {
	res, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("repository: inserted user id is not an object id")
	}
	return oid.Hex(), nil
}

func (r *MongoUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoUserRepository) FindByKey(ctx context.Context, apiKey string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"apiKey": apiKey})
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var doc userDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc.model(), nil
}

func (r *MongoUserRepository) PushChallenge(ctx context.Context, userID string, ac models.ActiveChallenge) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return ErrNotFound
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$push": bson.M{"challenges": ac}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	if res.ModifiedCount == 0 {
		return ErrNoChange
	}
	return nil
}

func (r *MongoUserRepository) SetProgress(ctx context.Context, userID, challengeID string, progress models.ChallengeProgress) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return ErrNotFound
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid, "challenges.challengeId": challengeID},
		bson.M{"$set": bson.M{"challenges.$.challengeProgress": progress}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
