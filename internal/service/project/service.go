package project

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/seu-repo/solartech/internal/domain"
	"github.com/seu-repo/solartech/internal/ports"
)

type Service struct {
	projects ports.ProjectRepository
	clients  ports.ClientRepository
	clock    ports.Clock
	log      *zap.Logger
}

func NewService(projects ports.ProjectRepository, clients ports.ClientRepository, clock ports.Clock, log *zap.Logger) ports.ProjectService {
	return &Service{
		projects: projects,
		clients:  clients,
		clock:    clock,
		log:      log,
	}
}

// Create registers a project. Every new project enters the pipeline as a
// lead regardless of the requested status; the client name is snapshotted
// from the referenced client.
func (s *Service) Create(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	if err := validate(project); err != nil {
		return nil, err
	}

	client, err := s.clients.FindByID(ctx, project.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}

	now := s.clock.Now()
	project.ID = uuid.NewString()
	project.Status = domain.StatusLead
	project.ClientName = client.Name
	project.CreatedAt = now
	project.UpdatedAt = now

	if err := s.projects.Save(ctx, project); err != nil {
		return nil, err
	}

	s.log.Info("Project created",
		zap.String("project_id", project.ID),
		zap.String("client_id", project.ClientID),
	)
	return project, nil
}

// Update replaces the editable fields. The client name is re-snapshotted;
// a valid status on the incoming record is applied, but pipeline moves
// normally go through the pipeline service. CompletionDate is owned by the
// pipeline and never touched here.
func (s *Service) Update(ctx context.Context, id string, project *domain.Project) (*domain.Project, error) {
	if err := validate(project); err != nil {
		return nil, err
	}

	existing, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrProjectNotFound
	}

	client, err := s.clients.FindByID(ctx, project.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}

	existing.ClientID = project.ClientID
	existing.ClientName = client.Name
	existing.Title = project.Title
	existing.PowerKwp = project.PowerKwp
	existing.ProjectValue = project.ProjectValue
	existing.PanelCount = project.PanelCount
	existing.InverterModel = project.InverterModel
	existing.Address = project.Address
	existing.StartDate = project.StartDate
	existing.Notes = project.Notes
	if project.Status.Valid() {
		existing.Status = project.Status
	}
	existing.UpdatedAt = s.clock.Now()

	if err := s.projects.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Project, error) {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrProjectNotFound
	}
	return project, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Project, error) {
	return s.projects.FindAll(ctx)
}

func validate(project *domain.Project) error {
	if strings.TrimSpace(project.Title) == "" || project.ClientID == "" {
		return domain.ErrInvalidInput
	}
	if project.PowerKwp < 0 || project.ProjectValue < 0 || project.PanelCount < 0 {
		return domain.ErrInvalidInput
	}
	if project.InverterModel != "" && !domain.ValidInverterModel(project.InverterModel) {
		return domain.ErrInvalidInput
	}
	return nil
}
