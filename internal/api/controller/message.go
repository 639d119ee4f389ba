package controller

import (
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/hirewire/hirewire-backend/internal/api/response"
	"github.com/hirewire/hirewire-backend/internal/domain"
	"github.com/hirewire/hirewire-backend/internal/realtime"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type messageController struct {
	MessageUseCase domain.MessageUC
	Gateway        *realtime.Gateway
	Validate       *validator.Validate
}

func NewMessageController(mu domain.MessageUC, gateway *realtime.Gateway) *messageController {
	return &messageController{
		MessageUseCase: mu,
		Gateway:        gateway,
		Validate:       validator.New(),
	}
}

func statusForErr(err error) int {
	switch err {
	case domain.ErrNotFound:
		return fiber.StatusNotFound
	case domain.ErrForbidden:
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}

type ListConversationsRes struct {
	Conversations []domain.ConversationSummary `json:"conversations"`
}

// List conversations godoc
//
// @Summary     List the acting user's conversations
// @Description Returns one entry per conversation partner with the last message and unread count.
// @Tags        conversation
// @Produce     json
// @Success     200 {object} ListConversationsRes
// @Router      /conversation/list [get]
func (mc messageController) ListConversations(c *fiber.Ctx) error {
	ctx := c.Context()

	user, err := GetUserFromReq(c)
	if err != nil {
		return response.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	conversations, err := mc.MessageUseCase.ListConversations(ctx, user.UserId)
	if err != nil {
		return response.SendError(c, fiber.StatusInternalServerError, "unable to list conversations")
	}

	return response.SendSuccess(c, ListConversationsRes{Conversations: conversations}, "")
}

type GetMessagesRes struct {
	Messages []domain.Message `json:"messages"`
}

// Get conversation messages godoc
//
// @Summary     Get messages of a conversation
// @Description Returns messages created before the given timestamp, oldest first. Acting user must be a participant.
// @Tags        conversation
// @Produce     json
// @Param       conversationId path  string true  "Conversation ID"
// @Param       before         query string false "RFC3339 timestamp, only older messages are returned"
// @Param       limit          query int    false "Page size, default 50"
// @Success     200 {object} GetMessagesRes
// @Router      /conversation/{conversationId}/messages [get]
func (mc messageController) GetConversationMessages(c *fiber.Ctx) error {
	ctx := c.Context()

	user, err := GetUserFromReq(c)
	if err != nil {
		return response.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	conversationId := c.Params("conversationId")
	if !domain.IsConversationParticipant(conversationId, user.UserId) {
		return response.SendError(c, fiber.StatusForbidden, "not a participant of this conversation")
	}

	before := time.Now()
	if v := c.Query("before"); v != "" {
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return response.SendError(c, fiber.StatusBadRequest, "unable to parse before timestamp")
		}
		before = parsed
	}

	limit, err := strconv.ParseInt(c.Query("limit", "50"), 10, 64)
	if err != nil || limit < 1 {
		return response.SendError(c, fiber.StatusBadRequest, "unable to parse limit")
	}

	messages, err := mc.MessageUseCase.ListByConversation(ctx, conversationId, before, limit)
	if err != nil {
		return response.SendError(c, fiber.StatusInternalServerError, "unable to get messages")
	}

	return response.SendSuccess(c, GetMessagesRes{Messages: messages}, "")
}

type SendMessageReq struct {
	ReceiverId string `json:"receiverId" validate:"required"`
	Content    string `json:"content" validate:"required"`
}

type SendMessageRes struct {
	Message domain.Message `json:"message"`
}

// Send message godoc
//
// @Summary     Send a message outside the live channel
// @Description Stores the message and fans it out to any live subscribers exactly like a gateway send would.
// @Tags        message
// @Accept      json
// @Produce     json
// @Param       requestBody body SendMessageReq true "Receiver and content"
// @Success     200 {object} SendMessageRes
// @Router      /message/send [post]
func (mc messageController) SendMessage(c *fiber.Ctx) error {
	ctx := c.Context()

	user, err := GetUserFromReq(c)
	if err != nil {
		return response.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	body := new(SendMessageReq)
	if err := c.BodyParser(body); err != nil {
		return response.SendError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := mc.Validate.Struct(body); err != nil {
		return response.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	message, notification, err := mc.MessageUseCase.Send(ctx, user.UserId, body.ReceiverId, body.Content)
	if err != nil {
		return response.SendError(c, fiber.StatusInternalServerError, err.Error())
	}

	mc.Gateway.DeliverMessage(ctx, message, notification)

	return response.SendSuccess(c, SendMessageRes{Message: message}, "")
}

type SearchMessagesRes struct {
	Messages []domain.Message `json:"messages"`
}

// Search messages godoc
//
// @Summary     Search message text within a conversation
// @Tags        conversation
// @Produce     json
// @Param       conversationId path  string true  "Conversation ID"
// @Param       q              query string true  "Search query"
// @Param       limit          query int    false "Page size, default 50"
// @Success     200 {object} SearchMessagesRes
// @Router      /conversation/{conversationId}/search [get]
func (mc messageController) SearchMessages(c *fiber.Ctx) error {
	ctx := c.Context()

	user, err := GetUserFromReq(c)
	if err != nil {
		return response.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	conversationId := c.Params("conversationId")
	if !domain.IsConversationParticipant(conversationId, user.UserId) {
		return response.SendError(c, fiber.StatusForbidden, "not a participant of this conversation")
	}

	query := c.Query("q")
	if query == "" {
		return response.SendError(c, fiber.StatusBadRequest, "query parameter q is required")
	}

	limit, err := strconv.ParseInt(c.Query("limit", "50"), 10, 64)
	if err != nil || limit < 1 {
		return response.SendError(c, fiber.StatusBadRequest, "unable to parse limit")
	}

	messages, err := mc.MessageUseCase.Search(ctx, conversationId, query, limit)
	if err != nil {
		return response.SendError(c, fiber.StatusInternalServerError, "unable to search messages")
	}

	return response.SendSuccess(c, SearchMessagesRes{Messages: messages}, "")
}

type MarkConversationReadRes struct {
	Updated int64 `json:"updated"`
}

// Mark conversation read godoc
//
// @Summary     Mark every unread message in a conversation as read
// @Description Flips every unread message addressed to the acting user. Calling it again updates zero documents and still succeeds.
// @Tags        conversation
// @Produce     json
// @Param       conversationId path string true "Conversation ID"
// @Success     200 {object} MarkConversationReadRes
// @Router      /conversation/{conversationId}/read [patch]
func (mc messageController) MarkConversationRead(c *fiber.Ctx) error {
	ctx := c.Context()

	user, err := GetUserFromReq(c)
	if err != nil {
		return response.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	conversationId := c.Params("conversationId")
	if !domain.IsConversationParticipant(conversationId, user.UserId) {
		return response.SendError(c, fiber.StatusForbidden, "not a participant of this conversation")
	}

	updated, err := mc.MessageUseCase.MarkConversationRead(ctx, conversationId, user.UserId)
	if err != nil {
		return response.SendError(c, fiber.StatusInternalServerError, "unable to mark conversation read")
	}

	return response.SendSuccess(c, MarkConversationReadRes{Updated: updated}, "")
}

// Delete message godoc
//
// @Summary     Delete a message the acting user sent
// @Description Only the original sender may delete a message.
// @Tags        message
// @Produce     json
// @Param       messageId path string true "Message ID"
// @Success     200 {object} response.CommonResponse
// @Router      /message/{messageId} [delete]
func (mc messageController) DeleteMessage(c *fiber.Ctx) error {
	ctx := c.Context()

	user, err := GetUserFromReq(c)
	if err != nil {
		return response.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	messageId, err := primitive.ObjectIDFromHex(c.Params("messageId"))
	if err != nil {
		return response.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := mc.MessageUseCase.Delete(ctx, messageId, user.UserId); err != nil {
		return response.SendError(c, statusForErr(err), err.Error())
	}

	return response.SendSuccess(c, nil, "message deleted successfully")
}
