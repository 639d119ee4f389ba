package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/hirewire/hirewire-backend/internal/domain"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type messageUC struct {
	messageRepository      domain.MessageRepo
	notificationRepository domain.NotificationRepo
	userRepository         domain.UserRepo
	contextTimeout         time.Duration
}

func NewMessageUC(mr domain.MessageRepo, nr domain.NotificationRepo, ur domain.UserRepo, timeout time.Duration) domain.MessageUC {
	return messageUC{
		messageRepository:      mr,
		notificationRepository: nr,
		userRepository:         ur,
		contextTimeout:         timeout,
	}
}

// Send persists the message and creates the receiver's notification. Both the
// live gateway path and the REST path go through here so the two apply the
// same invariants. A notification failure does not roll the message back; the
// partial state is logged and the message stands (store-and-forward still
// works off the messages collection).
func (mu messageUC) Send(ctx context.Context, senderId, receiverId, content string) (domain.Message, *domain.Notification, error) {
	ctx, cancel := context.WithTimeout(ctx, mu.contextTimeout)
	defer cancel()

	message := domain.Message{
		ConversationId: domain.ConversationID(senderId, receiverId),
		SenderId:       senderId,
		ReceiverId:     receiverId,
		Content:        content,
		Read:           false,
		CreatedAt:      time.Now(),
	}

	inserted, err := mu.messageRepository.Create(ctx, message)
	if err != nil {
		return domain.Message{}, nil, err
	}

	// Snapshot the sender's display info at creation time. A missing or
	// failing lookup leaves the snapshot blank rather than failing the send.
	var sender domain.User
	sender, err = mu.userRepository.GetById(ctx, senderId)
	if err != nil {
		logrus.Warnf("sender snapshot lookup failed for %s: %v", senderId, err)
		sender = domain.User{Id: senderId}
	}

	notification := domain.Notification{
		UserId:      receiverId,
		Type:        domain.NotificationNewMessage,
		Title:       "New message",
		Body:        messagePreview(sender, inserted.Content),
		SenderId:    senderId,
		SenderName:  sender.DisplayName(),
		SenderPhoto: sender.Photo,
		TargetId:    inserted.ConversationId,
		TargetType:  "conversation",
		Read:        false,
		CreatedAt:   time.Now(),
	}

	insertedNotification, err := mu.notificationRepository.Create(ctx, notification)
	if err != nil {
		// Known gap: message persisted, notification missing. Accepted.
		logrus.Error("message stored but notification creation failed: ", err)
		return inserted, nil, nil
	}

	return inserted, &insertedNotification, nil
}

func messagePreview(sender domain.User, content string) string {
	const max = 80
	// Truncate on rune boundaries so a multi-byte character is never split.
	if runes := []rune(content); len(runes) > max {
		content = string(runes[:max]) + "…"
	}
	if name := sender.DisplayName(); name != "" {
		return fmt.Sprintf("%s: %s", name, content)
	}
	return content
}

func (mu messageUC) GetById(ctx context.Context, messageId primitive.ObjectID) (domain.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, mu.contextTimeout)
	defer cancel()
	return mu.messageRepository.GetById(ctx, messageId)
}

func (mu messageUC) ListByConversation(ctx context.Context, conversationId string, before time.Time, limit int64) ([]domain.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, mu.contextTimeout)
	defer cancel()
	return mu.messageRepository.ListByConversation(ctx, conversationId, before, limit)
}

func (mu messageUC) ListConversations(ctx context.Context, userId string) ([]domain.ConversationSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, mu.contextTimeout)
	defer cancel()
	return mu.messageRepository.ListConversations(ctx, userId)
}

func (mu messageUC) MarkConversationRead(ctx context.Context, conversationId, readerId string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, mu.contextTimeout)
	defer cancel()
	return mu.messageRepository.MarkConversationRead(ctx, conversationId, readerId, time.Now())
}

func (mu messageUC) Search(ctx context.Context, conversationId, query string, limit int64) ([]domain.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, mu.contextTimeout)
	defer cancel()
	return mu.messageRepository.Search(ctx, conversationId, query, limit)
}

// Delete removes a message; only the original sender may delete.
func (mu messageUC) Delete(ctx context.Context, messageId primitive.ObjectID, senderId string) error {
	ctx, cancel := context.WithTimeout(ctx, mu.contextTimeout)
	defer cancel()

	message, err := mu.messageRepository.GetById(ctx, messageId)
	if err != nil {
		return err
	}
	if message.SenderId != senderId {
		return domain.ErrForbidden
	}

	return mu.messageRepository.Delete(ctx, messageId)
}
