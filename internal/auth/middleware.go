package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"rest-core/internal/core"
	"rest-core/internal/rest"
)

// Middleware authenticates the bearer token and stores the request's
// *core.Ctx in locals under rest.CtxLocalsKey.
func Middleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		scheme, raw, found := strings.Cut(c.Get(fiber.HeaderAuthorization), " ")
		switch {
		case scheme == "":
			return rest.UnauthorizedError("Missing auth token")
		case !found || !strings.EqualFold(scheme, "Bearer"):
			return rest.UnauthorizedError("Invalid auth header format")
		}

		claims, err := ParseAccessToken(strings.TrimSpace(raw), secret)
		if err != nil {
			return rest.UnauthorizedError("Invalid or expired token")
		}
		userID, err := claims.UserID()
		if err != nil {
			return rest.UnauthorizedError("Invalid token subject")
		}
		rc, err := core.NewCtx(userID, claims.Roles)
		if err != nil {
			return rest.UnauthorizedError("Invalid token subject")
		}

		c.Locals(rest.CtxLocalsKey, rc)
		return c.Next()
	}
}
