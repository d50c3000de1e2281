package ports

import (
	"context"

	"github.com/seu-repo/solartech/internal/domain"
)

type ClientRepository interface {
	Save(ctx context.Context, client *domain.Client) error
	FindByID(ctx context.Context, id string) (*domain.Client, error)
	FindAll(ctx context.Context) ([]domain.Client, error)
	Count(ctx context.Context) (int64, error)
}

type ProjectRepository interface {
	Save(ctx context.Context, project *domain.Project) error
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	FindAll(ctx context.Context) ([]domain.Project, error)
	FindByClientID(ctx context.Context, clientID string) ([]domain.Project, error)
	Update(ctx context.Context, project *domain.Project) error
}

// ProductionRepository is append-only: records have no update or delete path.
type ProductionRepository interface {
	Save(ctx context.Context, record *domain.ProductionRecord) error
	FindAll(ctx context.Context) ([]domain.ProductionRecord, error)
	FindByProjectID(ctx context.Context, projectID string) ([]domain.ProductionRecord, error)
}

type AlertRepository interface {
	Save(ctx context.Context, alert *domain.Alert) error
	FindByID(ctx context.Context, id string) (*domain.Alert, error)
	FindAll(ctx context.Context) ([]domain.Alert, error)
	FindUnresolvedByProject(ctx context.Context, projectID string, alertType domain.AlertType) (*domain.Alert, error)
	Update(ctx context.Context, alert *domain.Alert) error
}

type UserRepository interface {
	Save(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
