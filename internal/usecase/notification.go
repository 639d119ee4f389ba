package usecase

import (
	"context"
	"time"

	"github.com/hirewire/hirewire-backend/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type notificationUC struct {
	notificationRepository domain.NotificationRepo
	contextTimeout         time.Duration
}

func NewNotificationUC(nr domain.NotificationRepo, timeout time.Duration) domain.NotificationUC {
	return notificationUC{
		notificationRepository: nr,
		contextTimeout:         timeout,
	}
}

func (nu notificationUC) Create(ctx context.Context, notification domain.Notification) (domain.Notification, error) {
	ctx, cancel := context.WithTimeout(ctx, nu.contextTimeout)
	defer cancel()
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now()
	}
	return nu.notificationRepository.Create(ctx, notification)
}

func (nu notificationUC) ListByUser(ctx context.Context, userId string, unreadOnly bool, page, pageSize int) ([]domain.Notification, error) {
	ctx, cancel := context.WithTimeout(ctx, nu.contextTimeout)
	defer cancel()
	return nu.notificationRepository.ListByUser(ctx, userId, unreadOnly, page, pageSize)
}

func (nu notificationUC) CountUnread(ctx context.Context, userId string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, nu.contextTimeout)
	defer cancel()
	return nu.notificationRepository.CountUnread(ctx, userId)
}

func (nu notificationUC) MarkRead(ctx context.Context, notificationId primitive.ObjectID, userId string) error {
	ctx, cancel := context.WithTimeout(ctx, nu.contextTimeout)
	defer cancel()
	return nu.notificationRepository.MarkRead(ctx, notificationId, userId, time.Now())
}

func (nu notificationUC) MarkAllRead(ctx context.Context, userId string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, nu.contextTimeout)
	defer cancel()
	return nu.notificationRepository.MarkAllRead(ctx, userId, time.Now())
}

func (nu notificationUC) Delete(ctx context.Context, notificationId primitive.ObjectID, userId string) error {
	ctx, cancel := context.WithTimeout(ctx, nu.contextTimeout)
	defer cancel()
	return nu.notificationRepository.Delete(ctx, notificationId, userId)
}

func (nu notificationUC) DeleteAll(ctx context.Context, userId string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, nu.contextTimeout)
	defer cancel()
	return nu.notificationRepository.DeleteAll(ctx, userId)
}
