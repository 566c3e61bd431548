package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	// UserIDLocalKey is the key under which the verified requester id is
	// stored in Fiber's context locals.
	UserIDLocalKey = "user_id"
)

// authClaims are the JWT claims this service understands.
type authClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// RequireAuth returns a middleware that authenticates the requester before
// any core operation runs. It validates the Bearer token from the
// Authorization header and stores the verified user id in context locals;
// downstream handlers pass that plain id into the service layer, which
// trusts it as given.
func RequireAuth(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := c.Get(fiber.HeaderAuthorization)

		const prefix = "Bearer "
		if len(auth) <= len(prefix) || auth[:len(prefix)] != prefix {
			return fiber.NewError(fiber.StatusUnauthorized, "missing or invalid authorization")
		}
		tokenStr := auth[len(prefix):]

		claims := &authClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return []byte(jwtSecret), nil
		})
		if err != nil || !token.Valid || claims.UserID == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid or expired token")
		}

		c.Locals(UserIDLocalKey, claims.UserID)
		return c.Next()
	}
}

// UserIDFromCtx extracts the verified requester id stored by RequireAuth.
func UserIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(UserIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
