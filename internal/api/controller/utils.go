package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/hirewire/hirewire-backend/internal/domain"
)

// GetUserFromReq reads the acting user placed in locals by the auth middleware.
func GetUserFromReq(c *fiber.Ctx) (domain.AuthUser, error) {
	user, ok := c.Locals("userInfo").(domain.AuthUser)
	if !ok || user.UserId == "" {
		return domain.AuthUser{}, errors.New("unable to fetch user from request")
	}
	return user, nil
}
