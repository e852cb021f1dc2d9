package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/markethub/marketplace-service/internal/api/dto"
	"github.com/markethub/marketplace-service/internal/service"
)

// CouponsHandler exposes coupon validation and administration.
type CouponsHandler struct {
	coupons *service.CouponService
}

// NewCouponsHandler constructs handler.
func NewCouponsHandler(coupons *service.CouponService) *CouponsHandler {
	return &CouponsHandler{coupons: coupons}
}

// Validate handles POST /api/validate-coupon.
func (h *CouponsHandler) Validate(c *fiber.Ctx) error {
	var req dto.ValidateCouponRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	result, err := h.coupons.Validate(c.Context(), req.CouponCode)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// List handles GET /coupons.
func (h *CouponsHandler) List(c *fiber.Ctx) error {
	coupons, err := h.coupons.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(coupons)
}

// Delete handles DELETE /coupons/:id.
func (h *CouponsHandler) Delete(c *fiber.Ctx) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return err
	}
	res, err := h.coupons.Delete(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(res)
}
