package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/solartech/internal/domain"
	"github.com/seu-repo/solartech/internal/ports"
)

const defaultAnalyticsWindow = 30

type ProductionHandler struct {
	service   ports.ProductionService
	analytics ports.AnalyticsService
	log       *zap.Logger
}

func NewProductionHandler(service ports.ProductionService, analytics ports.AnalyticsService, log *zap.Logger) *ProductionHandler {
	return &ProductionHandler{
		service:   service,
		analytics: analytics,
		log:       log,
	}
}

type productionRequest struct {
	Date           time.Time `json:"date"`
	GenerationKwh  float64   `json:"generation_kwh"`
	ConsumptionKwh float64   `json:"consumption_kwh"`
	SavingsBRL     float64   `json:"savings_brl"`
	SystemStatus   string    `json:"system_status"`
}

func (h *ProductionHandler) Record(c *fiber.Ctx) error {
	var req productionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	record, err := h.service.Record(c.UserContext(), &domain.ProductionRecord{
		ProjectID:      c.Params("id"),
		Date:           req.Date,
		GenerationKwh:  req.GenerationKwh,
		ConsumptionKwh: req.ConsumptionKwh,
		SavingsBRL:     req.SavingsBRL,
		SystemStatus:   domain.SystemStatus(req.SystemStatus),
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(record)
}

func (h *ProductionHandler) History(c *fiber.Ctx) error {
	records, err := h.service.History(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"records": records,
		"count":   len(records),
	})
}

// Summary aggregates production over a trailing window. The window
// defaults to 30 days; project scope comes from the optional :id param.
func (h *ProductionHandler) Summary(c *fiber.Ctx) error {
	window := defaultAnalyticsWindow
	if raw := c.Query("window"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "window must be an integer number of days")
		}
		window = parsed
	}

	summary, err := h.analytics.Summarize(c.UserContext(), c.Params("id"), window)
	if err != nil {
		return err
	}

	return c.JSON(summary)
}
