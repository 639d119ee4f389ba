package realtime

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/hirewire/hirewire-backend/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// recorder is a Subscriber that captures everything sent to it.
type recorder struct {
	id     string
	mu     sync.Mutex
	events []recordedEvent
}

type recordedEvent struct {
	Event string
	Data  interface{}
}

func newRecorder(id string) *recorder {
	return &recorder{id: id}
}

func (r *recorder) ID() string { return r.id }

func (r *recorder) Send(event string, data interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, recordedEvent{Event: event, Data: data})
	return nil
}

func (r *recorder) received(event string) []interface{} {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []interface{}
	for _, e := range r.events {
		if e.Event == event {
			out = append(out, e.Data)
		}
	}
	return out
}

// fakeNotificationStore implements domain.NotificationUC in memory.
type fakeNotificationStore struct {
	mu            sync.Mutex
	notifications []domain.Notification
	countErr      error
	createErr     error
}

func newFakeNotificationStore() *fakeNotificationStore {
	return &fakeNotificationStore{}
}

func (f *fakeNotificationStore) Create(ctx context.Context, n domain.Notification) (domain.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return domain.Notification{}, f.createErr
	}
	n.Id = primitive.NewObjectID()
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	f.notifications = append(f.notifications, n)
	return n, nil
}

func (f *fakeNotificationStore) ListByUser(ctx context.Context, userId string, unreadOnly bool, page, pageSize int) ([]domain.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Notification
	for _, n := range f.notifications {
		if n.UserId != userId {
			continue
		}
		if unreadOnly && n.Read {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}

func (f *fakeNotificationStore) CountUnread(ctx context.Context, userId string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.countErr != nil {
		return 0, f.countErr
	}
	var count int64
	for _, n := range f.notifications {
		if n.UserId == userId && !n.Read {
			count++
		}
	}
	return count, nil
}

func (f *fakeNotificationStore) MarkRead(ctx context.Context, notificationId primitive.ObjectID, userId string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, n := range f.notifications {
		if n.Id == notificationId && n.UserId == userId {
			now := time.Now()
			f.notifications[i].Read = true
			f.notifications[i].ReadAt = &now
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeNotificationStore) MarkAllRead(ctx context.Context, userId string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var updated int64
	now := time.Now()
	for i, n := range f.notifications {
		if n.UserId == userId && !n.Read {
			f.notifications[i].Read = true
			f.notifications[i].ReadAt = &now
			updated++
		}
	}
	return updated, nil
}

func (f *fakeNotificationStore) Delete(ctx context.Context, notificationId primitive.ObjectID, userId string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, n := range f.notifications {
		if n.Id == notificationId && n.UserId == userId {
			f.notifications = append(f.notifications[:i], f.notifications[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeNotificationStore) DeleteAll(ctx context.Context, userId string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var kept []domain.Notification
	var deleted int64
	for _, n := range f.notifications {
		if n.UserId == userId {
			deleted++
			continue
		}
		kept = append(kept, n)
	}
	f.notifications = kept
	return deleted, nil
}

// fakeMessageStore implements domain.MessageUC in memory, creating the
// receiver notification in the paired notification store the way the real
// usecase does.
type fakeMessageStore struct {
	mu            sync.Mutex
	messages      []domain.Message
	notifications *fakeNotificationStore
	sendErr       error
	notifFail     bool
}

func newFakeMessageStore(notifications *fakeNotificationStore) *fakeMessageStore {
	return &fakeMessageStore{notifications: notifications}
}

func (f *fakeMessageStore) Send(ctx context.Context, senderId, receiverId, content string) (domain.Message, *domain.Notification, error) {
	if f.sendErr != nil {
		return domain.Message{}, nil, f.sendErr
	}

	message := domain.Message{
		Id:             primitive.NewObjectID(),
		ConversationId: domain.ConversationID(senderId, receiverId),
		SenderId:       senderId,
		ReceiverId:     receiverId,
		Content:        content,
		Read:           false,
		CreatedAt:      time.Now(),
	}
	f.mu.Lock()
	f.messages = append(f.messages, message)
	f.mu.Unlock()

	if f.notifFail {
		return message, nil, nil
	}

	notification, err := f.notifications.Create(ctx, domain.Notification{
		UserId:    receiverId,
		Type:      domain.NotificationNewMessage,
		Title:     "New message",
		Body:      content,
		SenderId:  senderId,
		TargetId:  message.ConversationId,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return message, nil, nil
	}
	return message, &notification, nil
}

func (f *fakeMessageStore) GetById(ctx context.Context, messageId primitive.ObjectID) (domain.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.messages {
		if m.Id == messageId {
			return m, nil
		}
	}
	return domain.Message{}, domain.ErrNotFound
}

func (f *fakeMessageStore) ListByConversation(ctx context.Context, conversationId string, before time.Time, limit int64) ([]domain.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Message
	for _, m := range f.messages {
		if m.ConversationId == conversationId && m.CreatedAt.Before(before) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMessageStore) ListConversations(ctx context.Context, userId string) ([]domain.ConversationSummary, error) {
	return nil, nil
}

func (f *fakeMessageStore) MarkConversationRead(ctx context.Context, conversationId, readerId string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var updated int64
	now := time.Now()
	for i, m := range f.messages {
		if m.ConversationId == conversationId && m.ReceiverId == readerId && !m.Read {
			f.messages[i].Read = true
			f.messages[i].ReadAt = &now
			updated++
		}
	}
	return updated, nil
}

func (f *fakeMessageStore) Search(ctx context.Context, conversationId, query string, limit int64) ([]domain.Message, error) {
	return nil, nil
}

func (f *fakeMessageStore) Delete(ctx context.Context, messageId primitive.ObjectID, senderId string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, m := range f.messages {
		if m.Id == messageId {
			if m.SenderId != senderId {
				return domain.ErrForbidden
			}
			f.messages = append(f.messages[:i], f.messages[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

var errStoreDown = errors.New("store unavailable")
