package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/solartech/internal/domain"
	"github.com/seu-repo/solartech/internal/ports"
)

type ClientHandler struct {
	service ports.ClientService
	log     *zap.Logger
}

func NewClientHandler(service ports.ClientService, log *zap.Logger) *ClientHandler {
	return &ClientHandler{
		service: service,
		log:     log,
	}
}

type clientRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Document string `json:"document"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zip_code"`
}

func (r clientRequest) toDomain() *domain.Client {
	return &domain.Client{
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Document: r.Document,
		Address:  r.Address,
		City:     r.City,
		State:    r.State,
		ZipCode:  r.ZipCode,
	}
}

func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var req clientRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	client, err := h.service.Create(c.UserContext(), req.toDomain())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(client)
}

func (h *ClientHandler) Update(c *fiber.Ctx) error {
	var req clientRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	client, err := h.service.Update(c.UserContext(), c.Params("id"), req.toDomain())
	if err != nil {
		return err
	}

	return c.JSON(client)
}

func (h *ClientHandler) Get(c *fiber.Ctx) error {
	client, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}

	return c.JSON(client)
}

func (h *ClientHandler) List(c *fiber.Ctx) error {
	clients, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"clients": clients,
		"count":   len(clients),
	})
}
