package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/solartech/internal/ports"
)

type DashboardHandler struct {
	service ports.DashboardService
	log     *zap.Logger
}

func NewDashboardHandler(service ports.DashboardService, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		log:     log,
	}
}

func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(stats)
}
