package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/markethub/marketplace-service/internal/api/dto"
	"github.com/markethub/marketplace-service/internal/auth"
)

// TokenHandler issues bearer tokens for signed-in users.
type TokenHandler struct {
	tokens *auth.TokenManager
}

// NewTokenHandler constructs handler.
func NewTokenHandler(tokens *auth.TokenManager) *TokenHandler {
	return &TokenHandler{tokens: tokens}
}

// Issue handles POST /jwt.
func (h *TokenHandler) Issue(c *fiber.Ctx) error {
	var req dto.TokenRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" {
		return fiber.NewError(http.StatusBadRequest, "email required")
	}

	token, _, err := h.tokens.GenerateToken(req.Email, req.Role)
	if err != nil {
		return err
	}
	return c.JSON(dto.TokenResponse{Token: token})
}
