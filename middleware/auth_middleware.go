package middleware

import (
	config "github.com/bsmlab/bsm_quiz/configs"
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// AuthUser is the verified identity extracted from the bearer token. It is
// built once per request and read by handlers instead of digging through
// raw claims.
type AuthUser struct {
	UserID  uuid.UUID
	IsAdmin bool
}

const identityKey = "identity"

func Protected() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(config.Config("JWT_SECRET")),
		ErrorHandler: jwtError,
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	if err.Error() == "Missing or malformed JWT" {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"status": "error", "message": "Missing or malformed JWT", "data": nil})
	}
	return c.Status(fiber.StatusUnauthorized).
		JSON(fiber.Map{"status": "error", "message": "Invalid or expired JWT", "data": nil})
}

// LoadIdentity converts the verified token into an AuthUser. It must run
// after Protected().
func LoadIdentity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := c.Locals("user").(*jwt.Token)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing authentication token"})
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token claims"})
		}

		rawID, _ := claims["user_id"].(string)
		userID, err := uuid.Parse(rawID)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user identity in token"})
		}
		isAdmin, _ := claims["is_admin"].(bool)

		c.Locals(identityKey, AuthUser{UserID: userID, IsAdmin: isAdmin})
		return c.Next()
	}
}

// Identity returns the AuthUser stored by LoadIdentity.
func Identity(c *fiber.Ctx) AuthUser {
	user, _ := c.Locals(identityKey).(AuthUser)
	return user
}

func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !Identity(c).IsAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden: Admin access required",
			})
		}
		return c.Next()
	}
}
