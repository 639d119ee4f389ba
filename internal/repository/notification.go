package repository

import (
	"context"
	"time"

	"github.com/hirewire/hirewire-backend/internal/domain"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NotificationRepo struct {
	Db         *mongo.Database
	Collection *mongo.Collection
}

func NewNotificationRepo(db *mongo.Database, collectionName string) domain.NotificationRepo {
	collection := db.Collection(collectionName)
	repo := &NotificationRepo{
		Db:         db,
		Collection: collection,
	}
	err := repo.RegisterNotificationIndexes(context.TODO())
	if err != nil {
		logrus.Error("Unable to register notification indexes")
		logrus.Error(err)
		return nil
	}
	return repo
}

func (nr NotificationRepo) RegisterNotificationIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			// Unread count per user
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "read", Value: 1}},
			Options: options.Index().SetName("user_read_index"),
		},
		{
			// Notification feed, newest first
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("user_created_index"),
		},
	}

	_, err := nr.Collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return err
	}

	return nil
}

func (nr NotificationRepo) Create(ctx context.Context, notification domain.Notification) (domain.Notification, error) {
	doc, err := nr.Collection.InsertOne(ctx, notification)
	if err != nil {
		logrus.Debug("Error while inserting notification,Reason:", err)
		return domain.Notification{}, err
	}

	insertedID, ok := doc.InsertedID.(primitive.ObjectID)
	if !ok {
		return domain.Notification{}, ErrInvalidInsertedIDType
	}

	var inserted domain.Notification
	err = nr.Collection.FindOne(ctx, bson.M{"_id": insertedID}).Decode(&inserted)
	if err != nil {
		return domain.Notification{}, errors.Wrap(err, "unable to fetch inserted notification")
	}

	return inserted, nil
}

func (nr NotificationRepo) ListByUser(ctx context.Context, userId string, unreadOnly bool, page, pageSize int) ([]domain.Notification, error) {
	filter := bson.M{"userId": userId}
	if unreadOnly {
		filter["read"] = false
	}

	skip := (page - 1) * pageSize
	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(pageSize))

	cursor, err := nr.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var notifications []domain.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}

	return notifications, nil
}

// CountUnread recomputes the unread total from the store. The count is never
// cached; callers that display it ask again after every mutation.
func (nr NotificationRepo) CountUnread(ctx context.Context, userId string) (int64, error) {
	return nr.Collection.CountDocuments(ctx, bson.M{"userId": userId, "read": false})
}

func (nr NotificationRepo) MarkRead(ctx context.Context, notificationId primitive.ObjectID, userId string, readAt time.Time) error {
	// Filter on both id and owner so a user can only touch their own records.
	filter := bson.M{"_id": notificationId, "userId": userId}
	update := bson.M{
		"$set": bson.M{
			"read":   true,
			"readAt": readAt,
		},
	}

	res, err := nr.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount < 1 {
		return domain.ErrNotFound
	}

	return nil
}

func (nr NotificationRepo) MarkAllRead(ctx context.Context, userId string, readAt time.Time) (int64, error) {
	filter := bson.M{"userId": userId, "read": false}
	update := bson.M{
		"$set": bson.M{
			"read":   true,
			"readAt": readAt,
		},
	}

	res, err := nr.Collection.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, err
	}

	return res.ModifiedCount, nil
}

func (nr NotificationRepo) Delete(ctx context.Context, notificationId primitive.ObjectID, userId string) error {
	res, err := nr.Collection.DeleteOne(ctx, bson.M{"_id": notificationId, "userId": userId})
	if err != nil {
		return err
	}
	if res.DeletedCount < 1 {
		return domain.ErrNotFound
	}
	return nil
}

func (nr NotificationRepo) DeleteAll(ctx context.Context, userId string) (int64, error) {
	res, err := nr.Collection.DeleteMany(ctx, bson.M{"userId": userId})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
