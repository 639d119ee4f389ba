package route

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hirewire/hirewire-backend/internal/api/controller"
	"github.com/hirewire/hirewire-backend/internal/domain"
)

func RegisterNotificationRoutes(app *fiber.App, nUc domain.NotificationUC, authMiddleware fiber.Handler) error {

	notificationC := controller.NewNotificationController(nUc)

	api := app.Group("/notification")
	api.Get("/list", authMiddleware, notificationC.ListNotifications)
	api.Get("/count", authMiddleware, notificationC.GetUnreadCount)
	api.Patch("/read-all", authMiddleware, notificationC.MarkAllNotificationsRead)
	api.Patch("/read/:notificationId", authMiddleware, notificationC.MarkNotificationRead)
	api.Delete("/clear", authMiddleware, notificationC.ClearNotifications)
	api.Delete("/:notificationId", authMiddleware, notificationC.DeleteNotification)
	return nil
}
