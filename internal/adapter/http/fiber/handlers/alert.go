package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/solartech/internal/adapter/websocket"
	"github.com/seu-repo/solartech/internal/domain"
	"github.com/seu-repo/solartech/internal/ports"
)

type AlertHandler struct {
	service ports.AlertService
	hub     *websocket.Hub
	log     *zap.Logger
}

func NewAlertHandler(service ports.AlertService, hub *websocket.Hub, log *zap.Logger) *AlertHandler {
	return &AlertHandler{
		service: service,
		hub:     hub,
		log:     log,
	}
}

// List returns alerts filtered by ?filter=active|all|resolved. Active
// is the default view.
func (h *AlertHandler) List(c *fiber.Ctx) error {
	mode := domain.AlertFilter(c.Query("filter", string(domain.AlertFilterActive)))
	switch mode {
	case domain.AlertFilterActive, domain.AlertFilterAll, domain.AlertFilterResolved:
	default:
		return fiber.NewError(fiber.StatusBadRequest, "filter must be one of: active, all, resolved")
	}

	alerts, err := h.service.Filter(c.UserContext(), mode)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"alerts": alerts,
		"count":  len(alerts),
	})
}

func (h *AlertHandler) Resolve(c *fiber.Ctx) error {
	alert, err := h.service.Resolve(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}

	if h.hub != nil {
		h.hub.BroadcastEvent(websocket.Event{Type: "alert.resolved", Payload: alert})
	}

	return c.JSON(alert)
}

func (h *AlertHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.service.Summary(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(summary)
}
