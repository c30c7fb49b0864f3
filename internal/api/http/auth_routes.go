package httpapi

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/siagaid/siaga-api/internal/auth"
	"github.com/siagaid/siaga-api/internal/store"
)

type googleLoginRequest struct {
	Credential string `json:"credential" validate:"required"`
}

func (s *Server) handleGoogleLogin(c *fiber.Ctx) error {
	var req googleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "google credential is required")
	}

	token, user, err := s.Auth.LoginWithGoogle(c.Context(), req.Credential)
	switch {
	case errors.Is(err, auth.ErrUnverifiedEmail):
		return fiber.NewError(fiber.StatusUnauthorized, "email not verified with google")
	case errors.Is(err, auth.ErrInvalidCredential):
		return fiber.NewError(fiber.StatusUnauthorized, "invalid google credential")
	case err != nil:
		return fiber.NewError(fiber.StatusInternalServerError, "login failed")
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

func (s *Server) handleCurrentUser(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(string)

	user, err := s.Auth.UserByID(c.Context(), userID)
	if errors.Is(err, store.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "user not found")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load user")
	}

	return c.JSON(fiber.Map{"user": user})
}

func (s *Server) handleLogout(c *fiber.Ctx) error {
	// Sessions are stateless; the client discards the token.
	return c.JSON(fiber.Map{"message": "logged out successfully"})
}

type verifyTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

func (s *Server) handleVerifyToken(c *fiber.Ctx) error {
	var req verifyTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "token is required")
	}

	claims, err := s.Auth.VerifyToken(req.Token)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"valid": false,
			"error": tokenRejectionReason(err),
		})
	}

	user, err := s.Auth.UserByID(c.Context(), claims.UserID)
	if errors.Is(err, store.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"valid": false,
			"error": "user not found",
		})
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load user")
	}

	return c.JSON(fiber.Map{
		"valid": true,
		"user":  user,
	})
}

type operatorLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (s *Server) handleOperatorLogin(c *fiber.Ctx) error {
	var req operatorLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "username and password are required")
	}

	op, ok := s.Operators.Authenticate(req.Username, req.Password)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"error":   "invalid credentials",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user": fiber.Map{
			"username": op.Username,
			"role":     op.Role,
		},
		// The dashboard sends this back in X-Admin-Secret.
		"secret": s.AdminSecret,
	})
}
