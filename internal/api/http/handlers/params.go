package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "github.com/markethub/marketplace-service/pkg/util"
)

// objectIDParam parses an id path parameter. Malformed hex literals are a
// client error, never a store round trip.
func objectIDParam(c *fiber.Ctx, name string) (primitive.ObjectID, error) {
	raw := c.Params(name)
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, apperrors.NewValidationError("invalid id", map[string]any{name: raw})
	}
	return id, nil
}
