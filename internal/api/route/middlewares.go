package route

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/hirewire/hirewire-backend/internal/api/response"
	"github.com/hirewire/hirewire-backend/internal/domain"
	"github.com/sirupsen/logrus"
)

const HeaderAuthToken = "hw-auth-token"

// AuthenticateUser validates the session token issued by the auth service and
// places the acting user into locals for the controllers.
func AuthenticateUser(jwtSecret, cookieName string) fiber.Handler {
	// This function returns the middleware handler
	return func(c *fiber.Ctx) error {
		token := c.Get(HeaderAuthToken)
		if token == "" {
			cookieToken := c.Cookies(cookieName)
			if cookieToken == "" {
				return response.SendError(c, fiber.StatusUnauthorized, "token invalid")
			}
			token = cookieToken
		}

		userId, err := parseUserId(token, jwtSecret)
		if err != nil {
			logrus.Error(err)
			return response.SendError(c, fiber.StatusUnauthorized, "invalid token")
		}

		c.Locals("userInfo", domain.AuthUser{UserId: userId})
		return c.Next()
	}
}

func parseUserId(tokenString, jwtSecret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(jwtSecret), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid token claims")
	}

	userId, _ := claims["userId"].(string)
	if userId == "" {
		return "", fmt.Errorf("token missing userId claim")
	}
	return userId, nil
}
