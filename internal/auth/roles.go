package auth

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/markethub/marketplace-service/pkg/util"
)

// RequireSelf guards routes parameterized by :email. The verified token email
// must equal the path email; a valid token for someone else is a 403.
func RequireSelf() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := ClaimsFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("forbidden access")
		}
		if EmailParam(c) != claims.Email {
			return apperrors.NewForbidden("forbidden access")
		}
		return c.Next()
	}
}

// EmailParam returns the :email path parameter with URL escaping undone.
func EmailParam(c *fiber.Ctx) string {
	raw := c.Params("email")
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}
