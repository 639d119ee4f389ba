package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionNotification = "notifications"
)

// Notification action types. One constant per domain event that produces a
// notification; the feed/job/connection events are raised by the REST side of
// the platform, new_message by the messaging core itself.
const (
	NotificationConnectionRequest  = "connection_request"
	NotificationConnectionAccepted = "connection_accepted"
	NotificationConnectionRejected = "connection_rejected"
	NotificationNewMessage         = "new_message"
	NotificationJobApplication     = "job_application"
	NotificationJobStatus          = "job_application_status"
	NotificationPostLike           = "post_like"
	NotificationPostComment        = "post_comment"
	NotificationSystem             = "system"
)

type Notification struct {
	Id     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserId string             `bson:"userId" json:"userId"`
	Type   string             `bson:"type" json:"type"`
	Title  string             `bson:"title" json:"title"`
	Body   string             `bson:"body" json:"body"`
	// Sender fields are a display snapshot taken when the notification is
	// created; they are not kept in sync with later profile edits.
	SenderId    string     `bson:"senderId,omitempty" json:"senderId,omitempty"`
	SenderName  string     `bson:"senderName,omitempty" json:"senderName,omitempty"`
	SenderPhoto string     `bson:"senderPhoto,omitempty" json:"senderPhoto,omitempty"`
	TargetId    string     `bson:"targetId,omitempty" json:"targetId,omitempty"`
	TargetType  string     `bson:"targetType,omitempty" json:"targetType,omitempty"`
	Read        bool       `bson:"read" json:"read"`
	ReadAt      *time.Time `bson:"readAt,omitempty" json:"readAt,omitempty"`
	CreatedAt   time.Time  `bson:"createdAt" json:"createdAt"`
}

type NotificationRepo interface {
	Create(ctx context.Context, notification Notification) (Notification, error)
	ListByUser(ctx context.Context, userId string, unreadOnly bool, page, pageSize int) ([]Notification, error)
	CountUnread(ctx context.Context, userId string) (int64, error)
	MarkRead(ctx context.Context, notificationId primitive.ObjectID, userId string, readAt time.Time) error
	MarkAllRead(ctx context.Context, userId string, readAt time.Time) (int64, error)
	Delete(ctx context.Context, notificationId primitive.ObjectID, userId string) error
	DeleteAll(ctx context.Context, userId string) (int64, error)
}

type NotificationUC interface {
	Create(ctx context.Context, notification Notification) (Notification, error)
	ListByUser(ctx context.Context, userId string, unreadOnly bool, page, pageSize int) ([]Notification, error)
	CountUnread(ctx context.Context, userId string) (int64, error)
	MarkRead(ctx context.Context, notificationId primitive.ObjectID, userId string) error
	MarkAllRead(ctx context.Context, userId string) (int64, error)
	Delete(ctx context.Context, notificationId primitive.ObjectID, userId string) error
	DeleteAll(ctx context.Context, userId string) (int64, error)
}
