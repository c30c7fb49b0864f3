package httpapi

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/siagaid/siaga-api/internal/auth"
)

// requireUser guards per-user routes with the bearer session token. The
// verified claims are stashed in the request locals for the handler.
func (s *Server) requireUser(c *fiber.Ctx) error {
	header := c.Get("Authorization")

	var token string
	if strings.HasPrefix(header, "Bearer ") {
		token = strings.TrimPrefix(header, "Bearer ")
	}

	claims, err := s.Auth.VerifyToken(token)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, tokenRejectionReason(err))
	}

	c.Locals("userID", claims.UserID)
	return c.Next()
}

// requireAdmin guards operator-tier routes with the static shared secret
// header, independent of the per-user token scheme.
func (s *Server) requireAdmin(c *fiber.Ctx) error {
	if c.Get("X-Admin-Secret") != s.AdminSecret {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}
	return c.Next()
}

func tokenRejectionReason(err error) string {
	switch {
	case errors.Is(err, auth.ErrTokenMissing):
		return "token is missing"
	case errors.Is(err, auth.ErrTokenExpired):
		return "token is expired"
	default:
		return "token is invalid"
	}
}
