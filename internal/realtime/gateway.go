package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/hirewire/hirewire-backend/internal/domain"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EmitScope says who an emission is addressed to.
type EmitScope int

const (
	// EmitToOrigin goes to the connection the inbound event arrived on.
	EmitToOrigin EmitScope = iota
	// EmitToUser goes to a user's current live handle via the presence
	// registry; a lookup miss drops the emission (store-and-forward only).
	EmitToUser
	// EmitToRoom goes to every connection in the room.
	EmitToRoom
	// EmitToRoomExceptOrigin goes to the room minus the originating connection.
	EmitToRoomExceptOrigin
	// EmitToAllExceptOrigin goes to every attached connection but the origin.
	EmitToAllExceptOrigin
)

// Emission is one outbound event produced by a handler. Handlers return
// emissions instead of writing to sockets so the whole gateway is testable
// without a network layer.
type Emission struct {
	Scope  EmitScope
	Room   string
	UserId string
	Event  string
	Data   interface{}
}

// HandlerFunc turns an inbound event payload into outbound emissions.
type HandlerFunc func(ctx context.Context, origin Subscriber, data json.RawMessage) ([]Emission, error)

// Gateway owns the event protocol of the persistent-connection server: it
// tracks attached connections, dispatches inbound events to handlers and
// delivers the resulting emissions through the presence and room registries.
type Gateway struct {
	messages      domain.MessageUC
	notifications domain.NotificationUC

	presence *Presence
	rooms    *Rooms

	mu       sync.RWMutex
	attached map[Subscriber]struct{}

	validate *validator.Validate
	handlers map[string]HandlerFunc
}

func NewGateway(messages domain.MessageUC, notifications domain.NotificationUC) *Gateway {
	g := &Gateway{
		messages:      messages,
		notifications: notifications,
		presence:      NewPresence(),
		rooms:         NewRooms(),
		attached:      make(map[Subscriber]struct{}),
		validate:      validator.New(),
	}
	g.handlers = map[string]HandlerFunc{
		EventUserOnline:               g.handleUserOnline,
		EventJoinConversation:         g.handleJoinConversation,
		EventLeaveConversation:        g.handleLeaveConversation,
		EventSendMessage:              g.handleSendMessage,
		EventTyping:                   g.handleTyping,
		EventMarkRead:                 g.handleMarkRead,
		EventMarkNotificationRead:     g.handleMarkNotificationRead,
		EventMarkAllNotificationsRead: g.handleMarkAllNotificationsRead,
	}
	return g
}

// Presence exposes the registry for lifecycle management (cleared at shutdown).
func (g *Gateway) Presence() *Presence { return g.presence }

// userRoom is the private notification room a user joins on announce.
func userRoom(userId string) string {
	return "user:" + userId
}

// Attach registers a freshly accepted connection. The connection stays
// anonymous until it announces with a user-online event.
func (g *Gateway) Attach(sub Subscriber) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.attached[sub] = struct{}{}
}

// Detach tears a connection down: room memberships are vacated and, when the
// connection is the currently-registered presence handle for its user, the
// offline broadcast fires. Detach is idempotent; presence removal is keyed
// off the exact handle so the broadcast happens at most once per connection
// no matter how many internal triggers fire.
func (g *Gateway) Detach(sub Subscriber) {
	g.mu.Lock()
	delete(g.attached, sub)
	g.mu.Unlock()

	g.rooms.LeaveAll(sub)

	if userId, removed := g.presence.Remove(sub); removed {
		g.broadcastExcept(sub, EventUserStatusChanged, UserStatusChangedPayload{
			UserId: userId,
			Status: StatusOffline,
		})
	}
}

func (g *Gateway) broadcastExcept(except Subscriber, event string, data interface{}) {
	g.mu.RLock()
	subs := make([]Subscriber, 0, len(g.attached))
	for sub := range g.attached {
		if sub != except {
			subs = append(subs, sub)
		}
	}
	g.mu.RUnlock()

	for _, sub := range subs {
		_ = sub.Send(event, data)
	}
}

// Dispatch routes one inbound frame to its handler and delivers the handler's
// emissions. A handler failure is isolated: it surfaces as an error event on
// the originating connection only and never takes the process down.
func (g *Gateway) Dispatch(ctx context.Context, origin Subscriber, raw []byte) {
	defer func() {
		if r := recover(); r != nil {
			logrus.Errorf("gateway handler panic: %v", r)
			_ = origin.Send(EventError, ErrorPayload{Error: "internal error"})
		}
	}()

	var envelope Envelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		_ = origin.Send(EventError, ErrorPayload{Error: "malformed event"})
		return
	}

	handler, ok := g.handlers[envelope.Event]
	if !ok {
		_ = origin.Send(EventError, ErrorPayload{Error: fmt.Sprintf("unknown event: %s", envelope.Event)})
		return
	}

	emissions, err := handler(ctx, origin, envelope.Data)
	if err != nil {
		logrus.Warnf("gateway %s failed: %v", envelope.Event, err)
		errEvent := EventError
		if envelope.Event == EventSendMessage {
			errEvent = EventMessageError
		}
		_ = origin.Send(errEvent, ErrorPayload{Error: err.Error()})
		return
	}

	g.deliver(origin, emissions)
}

func (g *Gateway) deliver(origin Subscriber, emissions []Emission) {
	for _, e := range emissions {
		switch e.Scope {
		case EmitToOrigin:
			if origin != nil {
				_ = origin.Send(e.Event, e.Data)
			}
		case EmitToUser:
			if sub, ok := g.presence.Lookup(e.UserId); ok {
				_ = sub.Send(e.Event, e.Data)
			}
		case EmitToRoom:
			g.rooms.Publish(e.Room, e.Event, e.Data, nil)
		case EmitToRoomExceptOrigin:
			g.rooms.Publish(e.Room, e.Event, e.Data, origin)
		case EmitToAllExceptOrigin:
			g.broadcastExcept(origin, e.Event, e.Data)
		}
	}
}

func (g *Gateway) parse(data json.RawMessage, payload interface{}) error {
	if err := json.Unmarshal(data, payload); err != nil {
		return fmt.Errorf("malformed payload: %w", err)
	}
	if err := g.validate.Struct(payload); err != nil {
		return fmt.Errorf("invalid payload: %w", err)
	}
	return nil
}

// handleUserOnline moves the connection from anonymous to announced: it
// registers presence, joins the user's private notification room and reports
// the current unread count back to the caller. The online broadcast always
// pairs with the offline one Detach emits, so it is not conditional on the
// notification store: a count lookup failure is reported to the origin only
// and the announce stands.
func (g *Gateway) handleUserOnline(ctx context.Context, origin Subscriber, data json.RawMessage) ([]Emission, error) {
	var p UserOnlinePayload
	if err := g.parse(data, &p); err != nil {
		return nil, err
	}

	g.presence.SetOnline(p.UserId, origin)
	g.rooms.Join(userRoom(p.UserId), origin)

	emissions := []Emission{
		{Scope: EmitToAllExceptOrigin, Event: EventUserStatusChanged, Data: UserStatusChangedPayload{
			UserId: p.UserId,
			Status: StatusOnline,
		}},
	}

	count, err := g.notifications.CountUnread(ctx, p.UserId)
	if err != nil {
		logrus.Warnf("unread count lookup failed for %s: %v", p.UserId, err)
		return append(emissions, Emission{
			Scope: EmitToOrigin,
			Event: EventError,
			Data:  ErrorPayload{Error: "unable to fetch notification count"},
		}), nil
	}

	return append(emissions, Emission{
		Scope: EmitToOrigin,
		Event: EventNotificationCount,
		Data:  count,
	}), nil
}

func (g *Gateway) handleJoinConversation(ctx context.Context, origin Subscriber, data json.RawMessage) ([]Emission, error) {
	var p ConversationPayload
	if err := g.parse(data, &p); err != nil {
		return nil, err
	}
	g.rooms.Join(p.ConversationId, origin)
	return nil, nil
}

func (g *Gateway) handleLeaveConversation(ctx context.Context, origin Subscriber, data json.RawMessage) ([]Emission, error) {
	var p ConversationPayload
	if err := g.parse(data, &p); err != nil {
		return nil, err
	}
	g.rooms.Leave(p.ConversationId, origin)
	return nil, nil
}

// handleSendMessage persists the message, creates the receiver's notification
// and fans out: notification to the receiver's live handle and private room,
// the message to the conversation room, and a distinct sent confirmation to
// the originating connection. There is no dedup key, so a client retry after
// a dropped confirmation can persist a duplicate; accepted tradeoff.
func (g *Gateway) handleSendMessage(ctx context.Context, origin Subscriber, data json.RawMessage) ([]Emission, error) {
	var p SendMessagePayload
	if err := g.parse(data, &p); err != nil {
		return nil, err
	}

	message, notification, err := g.messages.Send(ctx, p.SenderId, p.ReceiverId, p.Content)
	if err != nil {
		return nil, err
	}

	emissions := g.messageEmissions(ctx, message, notification)
	emissions = append(emissions, Emission{
		Scope: EmitToOrigin,
		Event: EventMessageSent,
		Data:  message,
	})
	return emissions, nil
}

// messageEmissions is the fan-out shared by the live path and the REST path:
// both must route a freshly persisted message identically.
func (g *Gateway) messageEmissions(ctx context.Context, message domain.Message, notification *domain.Notification) []Emission {
	var emissions []Emission

	if notification != nil {
		emissions = append(emissions,
			Emission{Scope: EmitToUser, UserId: message.ReceiverId, Event: EventNewNotification, Data: *notification},
			Emission{Scope: EmitToRoom, Room: userRoom(message.ReceiverId), Event: EventNewNotification, Data: *notification},
		)
		if count, err := g.notifications.CountUnread(ctx, message.ReceiverId); err != nil {
			logrus.Warnf("unread count recompute failed for %s: %v", message.ReceiverId, err)
		} else {
			emissions = append(emissions,
				Emission{Scope: EmitToUser, UserId: message.ReceiverId, Event: EventNotificationCount, Data: count},
				Emission{Scope: EmitToRoom, Room: userRoom(message.ReceiverId), Event: EventNotificationCount, Data: count},
			)
		}
	}

	emissions = append(emissions, Emission{
		Scope: EmitToRoomExceptOrigin,
		Room:  message.ConversationId,
		Event: EventReceiveMessage,
		Data:  message,
	})
	return emissions
}

// DeliverMessage fans out a message persisted by the REST layer. There is no
// originating connection, so the conversation room receives it in full and no
// sent confirmation is emitted.
func (g *Gateway) DeliverMessage(ctx context.Context, message domain.Message, notification *domain.Notification) {
	g.deliver(nil, g.messageEmissions(ctx, message, notification))
}

// handleTyping relays the indicator to the rest of the room. Nothing is
// persisted and the sender is not checked against the participant list.
func (g *Gateway) handleTyping(ctx context.Context, origin Subscriber, data json.RawMessage) ([]Emission, error) {
	var p TypingPayload
	if err := g.parse(data, &p); err != nil {
		return nil, err
	}
	return []Emission{
		{Scope: EmitToRoomExceptOrigin, Room: p.ConversationId, Event: EventUserTyping, Data: p},
	}, nil
}

func (g *Gateway) handleMarkRead(ctx context.Context, origin Subscriber, data json.RawMessage) ([]Emission, error) {
	var p MarkReadPayload
	if err := g.parse(data, &p); err != nil {
		return nil, err
	}

	if _, err := g.messages.MarkConversationRead(ctx, p.ConversationId, p.UserId); err != nil {
		return nil, err
	}

	return []Emission{
		{Scope: EmitToRoomExceptOrigin, Room: p.ConversationId, Event: EventMessagesRead, Data: MessagesReadPayload{UserId: p.UserId}},
	}, nil
}

func (g *Gateway) handleMarkNotificationRead(ctx context.Context, origin Subscriber, data json.RawMessage) ([]Emission, error) {
	var p MarkNotificationReadPayload
	if err := g.parse(data, &p); err != nil {
		return nil, err
	}

	notificationId, err := primitive.ObjectIDFromHex(p.NotificationId)
	if err != nil {
		return nil, fmt.Errorf("invalid notification id: %w", err)
	}

	if err := g.notifications.MarkRead(ctx, notificationId, p.UserId); err != nil {
		return nil, err
	}

	count, err := g.notifications.CountUnread(ctx, p.UserId)
	if err != nil {
		return nil, err
	}

	return []Emission{
		{Scope: EmitToRoom, Room: userRoom(p.UserId), Event: EventNotificationCount, Data: count},
	}, nil
}

func (g *Gateway) handleMarkAllNotificationsRead(ctx context.Context, origin Subscriber, data json.RawMessage) ([]Emission, error) {
	var p MarkAllNotificationsReadPayload
	if err := g.parse(data, &p); err != nil {
		return nil, err
	}

	if _, err := g.notifications.MarkAllRead(ctx, p.UserId); err != nil {
		return nil, err
	}

	return []Emission{
		{Scope: EmitToRoom, Room: userRoom(p.UserId), Event: EventNotificationCount, Data: int64(0)},
	}, nil
}
