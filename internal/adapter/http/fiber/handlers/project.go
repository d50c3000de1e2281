package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/solartech/internal/adapter/websocket"
	"github.com/seu-repo/solartech/internal/domain"
	"github.com/seu-repo/solartech/internal/ports"
)

type ProjectHandler struct {
	service   ports.ProjectService
	pipeline  ports.PipelineService
	dashboard ports.DashboardService
	hub       *websocket.Hub
	log       *zap.Logger
}

func NewProjectHandler(
	service ports.ProjectService,
	pipeline ports.PipelineService,
	dashboard ports.DashboardService,
	hub *websocket.Hub,
	log *zap.Logger,
) *ProjectHandler {
	return &ProjectHandler{
		service:   service,
		pipeline:  pipeline,
		dashboard: dashboard,
		hub:       hub,
		log:       log,
	}
}

type projectRequest struct {
	ClientID      string     `json:"client_id"`
	Title         string     `json:"title"`
	Status        string     `json:"status"`
	PowerKwp      float64    `json:"power_kwp"`
	ProjectValue  float64    `json:"project_value"`
	PanelCount    int        `json:"panel_count"`
	InverterModel string     `json:"inverter_model"`
	Address       string     `json:"address"`
	StartDate     *time.Time `json:"start_date"`
	Notes         string     `json:"notes"`
}

func (r projectRequest) toDomain() *domain.Project {
	return &domain.Project{
		ClientID:      r.ClientID,
		Title:         r.Title,
		Status:        domain.PipelineStatus(r.Status),
		PowerKwp:      r.PowerKwp,
		ProjectValue:  r.ProjectValue,
		PanelCount:    r.PanelCount,
		InverterModel: r.InverterModel,
		Address:       r.Address,
		StartDate:     r.StartDate,
		Notes:         r.Notes,
	}
}

type transitionRequest struct {
	Status string `json:"status"`
}

func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var req projectRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	project, err := h.service.Create(c.UserContext(), req.toDomain())
	if err != nil {
		return err
	}

	h.refreshDashboard(c)

	return c.Status(fiber.StatusCreated).JSON(project)
}

func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	var req projectRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	project, err := h.service.Update(c.UserContext(), c.Params("id"), req.toDomain())
	if err != nil {
		return err
	}

	h.refreshDashboard(c)

	return c.JSON(project)
}

func (h *ProjectHandler) Get(c *fiber.Ctx) error {
	project, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}

	return c.JSON(project)
}

func (h *ProjectHandler) List(c *fiber.Ctx) error {
	projects, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"projects": projects,
		"count":    len(projects),
	})
}

// Transition moves a project to a new pipeline stage. Dashboard totals
// are stage-derived, so the cache is dropped after a successful move.
func (h *ProjectHandler) Transition(c *fiber.Ctx) error {
	var req transitionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	project, err := h.pipeline.RequestTransition(c.UserContext(), c.Params("id"), domain.PipelineStatus(req.Status))
	if err != nil {
		return err
	}

	h.refreshDashboard(c)

	return c.JSON(project)
}

func (h *ProjectHandler) Board(c *fiber.Ctx) error {
	board, err := h.pipeline.Board(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"columns": board,
	})
}

func (h *ProjectHandler) refreshDashboard(c *fiber.Ctx) {
	if err := h.dashboard.Invalidate(c.UserContext()); err != nil {
		h.log.Warn("dashboard cache invalidation failed", zap.Error(err))
	}
	if h.hub != nil {
		h.hub.BroadcastEvent(websocket.Event{Type: "dashboard.updated"})
	}
}
