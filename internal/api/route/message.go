package route

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hirewire/hirewire-backend/internal/api/controller"
	"github.com/hirewire/hirewire-backend/internal/domain"
	"github.com/hirewire/hirewire-backend/internal/realtime"
)

func RegisterMessageRoutes(app *fiber.App, mUc domain.MessageUC, gateway *realtime.Gateway, authMiddleware fiber.Handler) error {

	messageC := controller.NewMessageController(mUc, gateway)

	conversations := app.Group("/conversation")
	conversations.Get("/list", authMiddleware, messageC.ListConversations)
	conversations.Get("/:conversationId/messages", authMiddleware, messageC.GetConversationMessages)
	conversations.Get("/:conversationId/search", authMiddleware, messageC.SearchMessages)
	conversations.Patch("/:conversationId/read", authMiddleware, messageC.MarkConversationRead)

	messages := app.Group("/message")
	messages.Post("/send", authMiddleware, messageC.SendMessage)
	messages.Delete("/:messageId", authMiddleware, messageC.DeleteMessage)
	return nil
}
