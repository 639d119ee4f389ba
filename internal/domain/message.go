package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionMessage = "messages"
)

type Message struct {
	Id             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ConversationId string             `bson:"conversationId" json:"conversationId"`
	SenderId       string             `bson:"senderId" json:"senderId"`
	ReceiverId     string             `bson:"receiverId" json:"receiverId"`
	Content        string             `bson:"content" json:"content"`
	Read           bool               `bson:"read" json:"read"`
	ReadAt         *time.Time         `bson:"readAt,omitempty" json:"readAt,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}

// ConversationSummary is one row of a user's conversation list: the partner,
// the most recent message and how many messages are still unread.
type ConversationSummary struct {
	ConversationId string    `bson:"_id" json:"conversationId"`
	PartnerId      string    `bson:"partnerId" json:"partnerId"`
	LastMessage    string    `bson:"lastMessage" json:"lastMessage"`
	LastMessageAt  time.Time `bson:"lastMessageAt" json:"lastMessageAt"`
	UnreadCount    int64     `bson:"unreadCount" json:"unreadCount"`
}

type MessageRepo interface {
	Create(ctx context.Context, message Message) (Message, error)
	GetById(ctx context.Context, messageId primitive.ObjectID) (Message, error)
	ListByConversation(ctx context.Context, conversationId string, before time.Time, limit int64) ([]Message, error)
	ListConversations(ctx context.Context, userId string) ([]ConversationSummary, error)
	MarkConversationRead(ctx context.Context, conversationId, readerId string, readAt time.Time) (int64, error)
	Search(ctx context.Context, conversationId, query string, limit int64) ([]Message, error)
	Delete(ctx context.Context, messageId primitive.ObjectID) error
}

type MessageUC interface {
	// Send persists the message and creates the new-message notification for
	// the receiver. The notification is nil when its creation failed; the
	// message is not rolled back in that case.
	Send(ctx context.Context, senderId, receiverId, content string) (Message, *Notification, error)
	GetById(ctx context.Context, messageId primitive.ObjectID) (Message, error)
	ListByConversation(ctx context.Context, conversationId string, before time.Time, limit int64) ([]Message, error)
	ListConversations(ctx context.Context, userId string) ([]ConversationSummary, error)
	MarkConversationRead(ctx context.Context, conversationId, readerId string) (int64, error)
	Search(ctx context.Context, conversationId, query string, limit int64) ([]Message, error)
	Delete(ctx context.Context, messageId primitive.ObjectID, senderId string) error
}
