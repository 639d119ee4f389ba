package repository

import (
	"context"

	"github.com/hirewire/hirewire-backend/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepo reads display snapshots from the profile service's collection.
// This service never writes to it.
type UserRepo struct {
	Db         *mongo.Database
	Collection *mongo.Collection
}

func NewUserRepo(db *mongo.Database, collectionName string) domain.UserRepo {
	return &UserRepo{
		Db:         db,
		Collection: db.Collection(collectionName),
	}
}

func (ur UserRepo) GetById(ctx context.Context, userId string) (domain.User, error) {
	objectID, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return domain.User{}, domain.ErrNotFound
	}

	var doc struct {
		FirstName string `bson:"firstName"`
		LastName  string `bson:"lastName"`
		Photo     string `bson:"photo"`
	}
	err = ur.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return domain.User{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.User{}, err
	}

	return domain.User{
		Id:        userId,
		FirstName: doc.FirstName,
		LastName:  doc.LastName,
		Photo:     doc.Photo,
	}, nil
}
