package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/markethub/marketplace-service/internal/auth"
	"github.com/markethub/marketplace-service/internal/domain"
	"github.com/markethub/marketplace-service/internal/service"
)

// UsersHandler exposes the user directory.
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(users *service.UserService) *UsersHandler {
	return &UsersHandler{users: users}
}

// List handles GET /users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.users.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(users)
}

// CheckAdmin handles GET /users/admin/:email.
func (h *UsersHandler) CheckAdmin(c *fiber.Ctx) error {
	admin, err := h.users.IsAdmin(c.Context(), auth.EmailParam(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"admin": admin})
}

// CheckModerator handles GET /users/moderator/:email.
func (h *UsersHandler) CheckModerator(c *fiber.Ctx) error {
	moderator, err := h.users.IsModerator(c.Context(), auth.EmailParam(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"moderator": moderator})
}

// Create handles POST /users. Creating an already-registered email is a
// no-op with a distinguishable response body.
func (h *UsersHandler) Create(c *fiber.Ctx) error {
	var user domain.User
	if err := c.BodyParser(&user); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if user.Email == "" {
		return fiber.NewError(http.StatusBadRequest, "email required")
	}

	res, exists, err := h.users.Register(c.Context(), &user)
	if err != nil {
		return err
	}
	if exists {
		return c.JSON(fiber.Map{"message": "User already exists", "insertedId": nil})
	}
	return c.JSON(res)
}

// MakeModerator handles PATCH /users/moderator/:id.
func (h *UsersHandler) MakeModerator(c *fiber.Ctx) error {
	return h.setRole(c, domain.RoleModerator)
}

// MakeAdmin handles PATCH /users/admin/:id.
func (h *UsersHandler) MakeAdmin(c *fiber.Ctx) error {
	return h.setRole(c, domain.RoleAdmin)
}

func (h *UsersHandler) setRole(c *fiber.Ctx, role domain.Role) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return err
	}
	res, err := h.users.SetRole(c.Context(), id, role)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

// Delete handles DELETE /users/:id.
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return err
	}
	res, err := h.users.Delete(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(res)
}
