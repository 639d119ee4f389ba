package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/hirewire/hirewire-backend/internal/domain"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubMessageRepo struct {
	created   []domain.Message
	createErr error
	byId      map[primitive.ObjectID]domain.Message
	deleted   []primitive.ObjectID
	marked    []string
}

func newStubMessageRepo() *stubMessageRepo {
	return &stubMessageRepo{byId: make(map[primitive.ObjectID]domain.Message)}
}

func (r *stubMessageRepo) Create(ctx context.Context, message domain.Message) (domain.Message, error) {
	if r.createErr != nil {
		return domain.Message{}, r.createErr
	}
	message.Id = primitive.NewObjectID()
	r.created = append(r.created, message)
	r.byId[message.Id] = message
	return message, nil
}

func (r *stubMessageRepo) GetById(ctx context.Context, messageId primitive.ObjectID) (domain.Message, error) {
	if m, ok := r.byId[messageId]; ok {
		return m, nil
	}
	return domain.Message{}, domain.ErrNotFound
}

func (r *stubMessageRepo) ListByConversation(ctx context.Context, conversationId string, before time.Time, limit int64) ([]domain.Message, error) {
	return nil, nil
}

func (r *stubMessageRepo) ListConversations(ctx context.Context, userId string) ([]domain.ConversationSummary, error) {
	return nil, nil
}

func (r *stubMessageRepo) MarkConversationRead(ctx context.Context, conversationId, readerId string, readAt time.Time) (int64, error) {
	r.marked = append(r.marked, conversationId)
	return 1, nil
}

func (r *stubMessageRepo) Search(ctx context.Context, conversationId, query string, limit int64) ([]domain.Message, error) {
	return nil, nil
}

func (r *stubMessageRepo) Delete(ctx context.Context, messageId primitive.ObjectID) error {
	if _, ok := r.byId[messageId]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byId, messageId)
	r.deleted = append(r.deleted, messageId)
	return nil
}

type stubNotificationRepo struct {
	created   []domain.Notification
	createErr error
}

func (r *stubNotificationRepo) Create(ctx context.Context, notification domain.Notification) (domain.Notification, error) {
	if r.createErr != nil {
		return domain.Notification{}, r.createErr
	}
	notification.Id = primitive.NewObjectID()
	r.created = append(r.created, notification)
	return notification, nil
}

func (r *stubNotificationRepo) ListByUser(ctx context.Context, userId string, unreadOnly bool, page, pageSize int) ([]domain.Notification, error) {
	return nil, nil
}

func (r *stubNotificationRepo) CountUnread(ctx context.Context, userId string) (int64, error) {
	return int64(len(r.created)), nil
}

func (r *stubNotificationRepo) MarkRead(ctx context.Context, notificationId primitive.ObjectID, userId string, readAt time.Time) error {
	return nil
}

func (r *stubNotificationRepo) MarkAllRead(ctx context.Context, userId string, readAt time.Time) (int64, error) {
	return 0, nil
}

func (r *stubNotificationRepo) Delete(ctx context.Context, notificationId primitive.ObjectID, userId string) error {
	return nil
}

func (r *stubNotificationRepo) DeleteAll(ctx context.Context, userId string) (int64, error) {
	return 0, nil
}

type stubUserRepo struct {
	users map[string]domain.User
	err   error
}

func (r *stubUserRepo) GetById(ctx context.Context, userId string) (domain.User, error) {
	if r.err != nil {
		return domain.User{}, r.err
	}
	if u, ok := r.users[userId]; ok {
		return u, nil
	}
	return domain.User{}, domain.ErrNotFound
}

func newMessageUCForTest(mr domain.MessageRepo, nr domain.NotificationRepo, ur domain.UserRepo) domain.MessageUC {
	return NewMessageUC(mr, nr, ur, 2*time.Second)
}

func Test_Send_Persists_Unread_Message_With_Canonical_Conversation(t *testing.T) {
	req := require.New(t)
	messages := newStubMessageRepo()
	notifications := &stubNotificationRepo{}
	users := &stubUserRepo{users: map[string]domain.User{
		"zeta": {Id: "zeta", FirstName: "Zed", LastName: "Carter"},
	}}
	uc := newMessageUCForTest(messages, notifications, users)

	message, notification, err := uc.Send(context.Background(), "zeta", "alpha", "hello")
	req.NoError(err)
	req.NotNil(notification)

	req.False(message.Read)
	req.Nil(message.ReadAt)
	req.Equal(domain.ConversationID("alpha", "zeta"), message.ConversationId)
	req.Equal("alpha_zeta", message.ConversationId)
	req.Equal("zeta", message.SenderId)
	req.Equal("alpha", message.ReceiverId)
	req.False(message.CreatedAt.IsZero())
}

func Test_Send_Notification_Carries_Sender_Snapshot(t *testing.T) {
	req := require.New(t)
	messages := newStubMessageRepo()
	notifications := &stubNotificationRepo{}
	users := &stubUserRepo{users: map[string]domain.User{
		"u1": {Id: "u1", FirstName: "Ada", LastName: "Lovelace", Photo: "https://cdn/ada.jpg"},
	}}
	uc := newMessageUCForTest(messages, notifications, users)

	_, notification, err := uc.Send(context.Background(), "u1", "u2", "hello")
	req.NoError(err)
	req.NotNil(notification)

	req.Equal("u2", notification.UserId)
	req.Equal(domain.NotificationNewMessage, notification.Type)
	req.Equal("u1", notification.SenderId)
	req.Equal("Ada Lovelace", notification.SenderName)
	req.Equal("https://cdn/ada.jpg", notification.SenderPhoto)
	req.Equal(domain.ConversationID("u1", "u2"), notification.TargetId)
	req.Equal("conversation", notification.TargetType)
	req.False(notification.Read)
	req.Equal("Ada Lovelace: hello", notification.Body)
}

func Test_Send_Truncates_Long_Preview(t *testing.T) {
	req := require.New(t)
	messages := newStubMessageRepo()
	notifications := &stubNotificationRepo{}
	users := &stubUserRepo{users: map[string]domain.User{}}
	uc := newMessageUCForTest(messages, notifications, users)

	long := strings.Repeat("x", 200)
	message, notification, err := uc.Send(context.Background(), "u1", "u2", long)
	req.NoError(err)
	req.NotNil(notification)

	// the stored message keeps the full content, only the preview truncates
	req.Len(message.Content, 200)
	req.True(len(notification.Body) < 200)
	req.True(strings.HasSuffix(notification.Body, "…"))
}

func Test_Send_Preview_Truncates_On_Rune_Boundary(t *testing.T) {
	req := require.New(t)
	messages := newStubMessageRepo()
	notifications := &stubNotificationRepo{}
	users := &stubUserRepo{users: map[string]domain.User{}}
	uc := newMessageUCForTest(messages, notifications, users)

	long := strings.Repeat("é", 120)
	_, notification, err := uc.Send(context.Background(), "u1", "u2", long)
	req.NoError(err)
	req.NotNil(notification)

	req.True(utf8.ValidString(notification.Body))
	req.True(strings.HasSuffix(notification.Body, "…"))
	req.Equal(81, utf8.RuneCountInString(notification.Body))
	req.Equal(strings.Repeat("é", 80)+"…", notification.Body)
}

func Test_Send_Sender_Lookup_Failure_Leaves_Snapshot_Blank(t *testing.T) {
	req := require.New(t)
	messages := newStubMessageRepo()
	notifications := &stubNotificationRepo{}
	users := &stubUserRepo{err: errors.New("users down")}
	uc := newMessageUCForTest(messages, notifications, users)

	_, notification, err := uc.Send(context.Background(), "u1", "u2", "hello")
	req.NoError(err)
	req.NotNil(notification)

	req.Empty(notification.SenderName)
	req.Empty(notification.SenderPhoto)
	req.Equal("hello", notification.Body)
}

func Test_Send_Notification_Failure_Keeps_Message(t *testing.T) {
	req := require.New(t)
	messages := newStubMessageRepo()
	notifications := &stubNotificationRepo{createErr: errors.New("notifications down")}
	users := &stubUserRepo{users: map[string]domain.User{}}
	uc := newMessageUCForTest(messages, notifications, users)

	message, notification, err := uc.Send(context.Background(), "u1", "u2", "hello")
	req.NoError(err)
	req.Nil(notification)

	// the message stands even though the notification never made it
	req.Len(messages.created, 1)
	req.Equal(message.Id, messages.created[0].Id)
}

func Test_Send_Message_Store_Failure_Creates_Nothing(t *testing.T) {
	req := require.New(t)
	messages := newStubMessageRepo()
	messages.createErr = errors.New("messages down")
	notifications := &stubNotificationRepo{}
	users := &stubUserRepo{users: map[string]domain.User{}}
	uc := newMessageUCForTest(messages, notifications, users)

	_, notification, err := uc.Send(context.Background(), "u1", "u2", "hello")
	req.Error(err)
	req.Nil(notification)
	req.Empty(notifications.created)
}

func Test_Delete_Rejects_Non_Sender(t *testing.T) {
	req := require.New(t)
	messages := newStubMessageRepo()
	notifications := &stubNotificationRepo{}
	users := &stubUserRepo{users: map[string]domain.User{}}
	uc := newMessageUCForTest(messages, notifications, users)

	message, _, err := uc.Send(context.Background(), "u1", "u2", "hello")
	req.NoError(err)

	err = uc.Delete(context.Background(), message.Id, "u2")
	req.ErrorIs(err, domain.ErrForbidden)
	req.Empty(messages.deleted)

	err = uc.Delete(context.Background(), message.Id, "u1")
	req.NoError(err)
	req.Len(messages.deleted, 1)
}

func Test_Delete_Missing_Message_Is_NotFound(t *testing.T) {
	req := require.New(t)
	messages := newStubMessageRepo()
	notifications := &stubNotificationRepo{}
	users := &stubUserRepo{users: map[string]domain.User{}}
	uc := newMessageUCForTest(messages, notifications, users)

	err := uc.Delete(context.Background(), primitive.NewObjectID(), "u1")
	req.ErrorIs(err, domain.ErrNotFound)
}
