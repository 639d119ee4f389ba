package repository

import (
	"context"
	"regexp"
	"time"

	"github.com/hirewire/hirewire-backend/internal/domain"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MessageRepo struct {
	Db         *mongo.Database
	Collection *mongo.Collection
}

func NewMessageRepo(db *mongo.Database, collectionName string) domain.MessageRepo {
	collection := db.Collection(collectionName)
	repo := &MessageRepo{
		Db:         db,
		Collection: collection,
	}
	err := repo.RegisterMessageIndexes(context.TODO())
	if err != nil {
		logrus.Error("Unable to register message indexes")
		logrus.Error(err)
		return nil
	}
	return repo
}

// RegisterMessageIndexes creates the indexes the conversation queries rely on.
func (mr MessageRepo) RegisterMessageIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			// Conversation history, newest first
			Keys:    bson.D{{Key: "conversationId", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("conversation_created_index"),
		},
		{
			// Unread scans per receiver
			Keys:    bson.D{{Key: "receiverId", Value: 1}, {Key: "read", Value: 1}},
			Options: options.Index().SetName("receiver_read_index"),
		},
	}

	_, err := mr.Collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return err
	}

	return nil
}

func (mr MessageRepo) Create(ctx context.Context, message domain.Message) (domain.Message, error) {
	doc, err := mr.Collection.InsertOne(ctx, message)
	if err != nil {
		logrus.Debug("Error while inserting message,Reason:", err)
		return domain.Message{}, err
	}

	insertedID, ok := doc.InsertedID.(primitive.ObjectID)
	if !ok {
		return domain.Message{}, ErrInvalidInsertedIDType
	}

	var inserted domain.Message
	err = mr.Collection.FindOne(ctx, bson.M{"_id": insertedID}).Decode(&inserted)
	if err != nil {
		return domain.Message{}, errors.Wrap(err, "unable to fetch inserted message")
	}

	return inserted, nil
}

func (mr MessageRepo) GetById(ctx context.Context, messageId primitive.ObjectID) (domain.Message, error) {
	var message domain.Message
	err := mr.Collection.FindOne(ctx, bson.M{"_id": messageId}).Decode(&message)
	if err == mongo.ErrNoDocuments {
		return message, domain.ErrNotFound
	}
	if err != nil {
		return message, err
	}
	return message, nil
}

func (mr MessageRepo) ListByConversation(ctx context.Context, conversationId string, before time.Time, limit int64) ([]domain.Message, error) {
	filter := bson.M{
		"conversationId": conversationId,
		"createdAt":      bson.M{"$lt": before},
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)

	cursor, err := mr.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var messages []domain.Message
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}

	// Query returned newest first; the client renders oldest first.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	return messages, nil
}

func (mr MessageRepo) ListConversations(ctx context.Context, userId string) ([]domain.ConversationSummary, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "$or", Value: bson.A{
				bson.D{{Key: "senderId", Value: userId}},
				bson.D{{Key: "receiverId", Value: userId}},
			}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: 1}}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$conversationId"},
			{Key: "partnerId", Value: bson.D{{Key: "$last", Value: bson.D{
				{Key: "$cond", Value: bson.A{
					bson.D{{Key: "$eq", Value: bson.A{"$senderId", userId}}},
					"$receiverId",
					"$senderId",
				}},
			}}}},
			{Key: "lastMessage", Value: bson.D{{Key: "$last", Value: "$content"}}},
			{Key: "lastMessageAt", Value: bson.D{{Key: "$last", Value: "$createdAt"}}},
			{Key: "unreadCount", Value: bson.D{{Key: "$sum", Value: bson.D{
				{Key: "$cond", Value: bson.A{
					bson.D{{Key: "$and", Value: bson.A{
						bson.D{{Key: "$eq", Value: bson.A{"$receiverId", userId}}},
						bson.D{{Key: "$eq", Value: bson.A{"$read", false}}},
					}}},
					1,
					0,
				}},
			}}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "lastMessageAt", Value: -1}}}},
	}

	cursor, err := mr.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var summaries []domain.ConversationSummary
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, err
	}

	return summaries, nil
}

// MarkConversationRead flips every unread message addressed to readerId in the
// conversation. Returns the number of messages updated; a second call with
// nothing left to update returns zero and no error.
func (mr MessageRepo) MarkConversationRead(ctx context.Context, conversationId, readerId string, readAt time.Time) (int64, error) {
	filter := bson.M{
		"conversationId": conversationId,
		"receiverId":     readerId,
		"read":           false,
	}
	update := bson.M{
		"$set": bson.M{
			"read":   true,
			"readAt": readAt,
		},
	}

	res, err := mr.Collection.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, err
	}

	return res.ModifiedCount, nil
}

func (mr MessageRepo) Search(ctx context.Context, conversationId, query string, limit int64) ([]domain.Message, error) {
	filter := bson.M{
		"conversationId": conversationId,
		"content": bson.M{"$regex": primitive.Regex{
			Pattern: regexp.QuoteMeta(query),
			Options: "i",
		}},
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)

	cursor, err := mr.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var messages []domain.Message
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}

	return messages, nil
}

func (mr MessageRepo) Delete(ctx context.Context, messageId primitive.ObjectID) error {
	res, err := mr.Collection.DeleteOne(ctx, bson.M{"_id": messageId})
	if err != nil {
		return err
	}
	if res.DeletedCount < 1 {
		return domain.ErrNotFound
	}
	return nil
}
