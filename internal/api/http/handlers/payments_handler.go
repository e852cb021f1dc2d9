package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/markethub/marketplace-service/internal/api/dto"
	"github.com/markethub/marketplace-service/internal/auth"
	"github.com/markethub/marketplace-service/internal/domain"
	"github.com/markethub/marketplace-service/internal/service"
)

// PaymentsHandler exposes subscription payments and intent brokering.
type PaymentsHandler struct {
	payments *service.PaymentService
}

// NewPaymentsHandler constructs handler.
func NewPaymentsHandler(payments *service.PaymentService) *PaymentsHandler {
	return &PaymentsHandler{payments: payments}
}

// CreateIntent handles POST /create-payment-intent.
func (h *PaymentsHandler) CreateIntent(c *fiber.Ctx) error {
	var req dto.PaymentIntentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	clientSecret, err := h.payments.CreateIntent(c.Context(), req.Price)
	if err != nil {
		return err
	}
	return c.JSON(dto.PaymentIntentResponse{ClientSecret: clientSecret})
}

// CheckSubscription handles GET /payments/:email.
func (h *PaymentsHandler) CheckSubscription(c *fiber.Ctx) error {
	subscribed, err := h.payments.IsSubscribed(c.Context(), auth.EmailParam(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.SubscriptionResponse{Subscribed: subscribed})
}

// Record handles POST /payments.
func (h *PaymentsHandler) Record(c *fiber.Ctx) error {
	var payment domain.Payment
	if err := c.BodyParser(&payment); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	res, err := h.payments.Record(c.Context(), &payment)
	if err != nil {
		return err
	}
	return c.JSON(res)
}
