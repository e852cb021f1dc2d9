package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/markethub/marketplace-service/internal/service"
)

// StatsHandler exposes the admin dashboard summary.
type StatsHandler struct {
	stats *service.StatsService
}

// NewStatsHandler constructs handler.
func NewStatsHandler(stats *service.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// Statistics handles GET /adminStatistic.
func (h *StatsHandler) Statistics(c *fiber.Ctx) error {
	stats, err := h.stats.Statistics(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(stats)
}
