package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/vinculo-social/vinculo/pkg/internal/services"
)

// LoadAccount resolves the bearer token, if any, into the request's
// account. Requests without a usable token stay anonymous; guarded
// handlers reject them via EnsureAuthenticated.
func LoadAccount(c *fiber.Ctx) error {
	token := c.Get(fiber.HeaderAuthorization)
	if after, found := strings.CutPrefix(token, "Bearer "); found {
		token = after
	} else {
		token = c.Cookies("auth_token")
	}

	if len(token) > 0 {
		if user, err := services.Authorize(token); err == nil {
			c.Locals("user", user)
		}
	}

	return c.Next()
}

