package realtime

import "encoding/json"

// Inbound event names.
const (
	EventUserOnline               = "user-online"
	EventJoinConversation         = "join-conversation"
	EventLeaveConversation        = "leave-conversation"
	EventSendMessage              = "send-message"
	EventTyping                   = "typing"
	EventMarkRead                 = "mark-read"
	EventMarkNotificationRead     = "mark-notification-read"
	EventMarkAllNotificationsRead = "mark-all-notifications-read"
)

// Outbound event names.
const (
	EventUserStatusChanged = "user-status-changed"
	EventReceiveMessage    = "receive-message"
	EventMessageSent       = "message-sent"
	EventMessageError      = "message-error"
	EventError             = "error"
	EventNewNotification   = "new-notification"
	EventNotificationCount = "notification-count"
	EventUserTyping        = "user-typing"
	EventMessagesRead      = "messages-read"
)

const (
	StatusOnline  = "online"
	StatusOffline = "offline"
)

// Envelope is the wire frame for every gateway event, both directions.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

type UserOnlinePayload struct {
	UserId string `json:"userId" validate:"required"`
}

type ConversationPayload struct {
	ConversationId string `json:"conversationId" validate:"required"`
}

type SendMessagePayload struct {
	ConversationId string `json:"conversationId" validate:"required"`
	SenderId       string `json:"senderId" validate:"required"`
	ReceiverId     string `json:"receiverId" validate:"required"`
	Content        string `json:"content" validate:"required"`
}

type TypingPayload struct {
	ConversationId string `json:"conversationId" validate:"required"`
	UserId         string `json:"userId" validate:"required"`
	IsTyping       bool   `json:"isTyping"`
}

type MarkReadPayload struct {
	ConversationId string `json:"conversationId" validate:"required"`
	UserId         string `json:"userId" validate:"required"`
}

type MarkNotificationReadPayload struct {
	NotificationId string `json:"notificationId" validate:"required"`
	UserId         string `json:"userId" validate:"required"`
}

type MarkAllNotificationsReadPayload struct {
	UserId string `json:"userId" validate:"required"`
}

type UserStatusChangedPayload struct {
	UserId string `json:"userId"`
	Status string `json:"status"`
}

type MessagesReadPayload struct {
	UserId string `json:"userId"`
}

type ErrorPayload struct {
	Error string `json:"error"`
}
