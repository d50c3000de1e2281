package client

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/seu-repo/solartech/internal/domain"
	"github.com/seu-repo/solartech/internal/ports"
)

type Service struct {
	clients ports.ClientRepository
	clock   ports.Clock
	log     *zap.Logger
}

func NewService(clients ports.ClientRepository, clock ports.Clock, log *zap.Logger) ports.ClientService {
	return &Service{
		clients: clients,
		clock:   clock,
		log:     log,
	}
}

func (s *Service) Create(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	if strings.TrimSpace(client.Name) == "" || strings.TrimSpace(client.Email) == "" {
		return nil, domain.ErrInvalidInput
	}

	now := s.clock.Now()
	client.ID = uuid.NewString()
	client.CreatedAt = now
	client.UpdatedAt = now

	if err := s.clients.Save(ctx, client); err != nil {
		return nil, err
	}

	s.log.Info("Client created", zap.String("client_id", client.ID))
	return client, nil
}

// Update replaces the editable fields wholesale, matching the edit form.
func (s *Service) Update(ctx context.Context, id string, client *domain.Client) (*domain.Client, error) {
	if strings.TrimSpace(client.Name) == "" || strings.TrimSpace(client.Email) == "" {
		return nil, domain.ErrInvalidInput
	}

	existing, err := s.clients.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrClientNotFound
	}

	existing.Name = client.Name
	existing.Email = client.Email
	existing.Phone = client.Phone
	existing.Document = client.Document
	existing.Address = client.Address
	existing.City = client.City
	existing.State = client.State
	existing.ZipCode = client.ZipCode
	existing.UpdatedAt = s.clock.Now()

	if err := s.clients.Save(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Client, error) {
	client, err := s.clients.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}
	return client, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Client, error) {
	return s.clients.FindAll(ctx)
}
