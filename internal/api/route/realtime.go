package route

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/hirewire/hirewire-backend/internal/realtime"
)

// RegisterRealtimeRoutes mounts the websocket gateway. The connection starts
// anonymous; identity arrives over the wire with the user-online event.
func RegisterRealtimeRoutes(app *fiber.App, gateway *realtime.Gateway) error {

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			c.Locals("allowed", true)
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		gateway.Serve(c)
	}))
	return nil
}
