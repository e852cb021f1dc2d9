package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/markethub/marketplace-service/internal/domain"
	"github.com/markethub/marketplace-service/internal/service"
)

// ReviewsHandler exposes the append-only review endpoints.
type ReviewsHandler struct {
	reviews *service.ReviewService
}

// NewReviewsHandler constructs handler.
func NewReviewsHandler(reviews *service.ReviewService) *ReviewsHandler {
	return &ReviewsHandler{reviews: reviews}
}

// Create handles POST /api/reviews.
func (h *ReviewsHandler) Create(c *fiber.Ctx) error {
	var review domain.Review
	if err := c.BodyParser(&review); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	res, err := h.reviews.Add(c.Context(), &review)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

// ListByProduct handles GET /api/reviews/:id. The id is the product id the
// reviews were filed under, matched exactly.
func (h *ReviewsHandler) ListByProduct(c *fiber.Ctx) error {
	reviews, err := h.reviews.ListByProduct(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(reviews)
}
