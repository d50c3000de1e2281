package mocks

import (
	"context"

	"github.com/seu-repo/solartech/internal/domain"
)

// MockClientRepository implements ports.ClientRepository for tests.
type MockClientRepository struct {
	SaveFunc     func(ctx context.Context, client *domain.Client) error
	FindByIDFunc func(ctx context.Context, id string) (*domain.Client, error)
	FindAllFunc  func(ctx context.Context) ([]domain.Client, error)
	CountFunc    func(ctx context.Context) (int64, error)
}

func (m *MockClientRepository) Save(ctx context.Context, client *domain.Client) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, client)
	}
	return nil
}

func (m *MockClientRepository) FindByID(ctx context.Context, id string) (*domain.Client, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockClientRepository) FindAll(ctx context.Context) ([]domain.Client, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockClientRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockProjectRepository implements ports.ProjectRepository for tests.
type MockProjectRepository struct {
	SaveFunc           func(ctx context.Context, project *domain.Project) error
	FindByIDFunc       func(ctx context.Context, id string) (*domain.Project, error)
	FindAllFunc        func(ctx context.Context) ([]domain.Project, error)
	FindByClientIDFunc func(ctx context.Context, clientID string) ([]domain.Project, error)
	UpdateFunc         func(ctx context.Context, project *domain.Project) error
}

func (m *MockProjectRepository) Save(ctx context.Context, project *domain.Project) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, project)
	}
	return nil
}

func (m *MockProjectRepository) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockProjectRepository) FindAll(ctx context.Context) ([]domain.Project, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockProjectRepository) FindByClientID(ctx context.Context, clientID string) ([]domain.Project, error) {
	if m.FindByClientIDFunc != nil {
		return m.FindByClientIDFunc(ctx, clientID)
	}
	return nil, nil
}

func (m *MockProjectRepository) Update(ctx context.Context, project *domain.Project) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, project)
	}
	return nil
}

// MockProductionRepository implements ports.ProductionRepository for tests.
type MockProductionRepository struct {
	SaveFunc            func(ctx context.Context, record *domain.ProductionRecord) error
	FindAllFunc         func(ctx context.Context) ([]domain.ProductionRecord, error)
	FindByProjectIDFunc func(ctx context.Context, projectID string) ([]domain.ProductionRecord, error)
}

func (m *MockProductionRepository) Save(ctx context.Context, record *domain.ProductionRecord) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, record)
	}
	return nil
}

func (m *MockProductionRepository) FindAll(ctx context.Context) ([]domain.ProductionRecord, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockProductionRepository) FindByProjectID(ctx context.Context, projectID string) ([]domain.ProductionRecord, error) {
	if m.FindByProjectIDFunc != nil {
		return m.FindByProjectIDFunc(ctx, projectID)
	}
	return nil, nil
}

// MockAlertRepository implements ports.AlertRepository for tests.
type MockAlertRepository struct {
	SaveFunc                    func(ctx context.Context, alert *domain.Alert) error
	FindByIDFunc                func(ctx context.Context, id string) (*domain.Alert, error)
	FindAllFunc                 func(ctx context.Context) ([]domain.Alert, error)
	FindUnresolvedByProjectFunc func(ctx context.Context, projectID string, alertType domain.AlertType) (*domain.Alert, error)
	UpdateFunc                  func(ctx context.Context, alert *domain.Alert) error
}

func (m *MockAlertRepository) Save(ctx context.Context, alert *domain.Alert) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, alert)
	}
	return nil
}

func (m *MockAlertRepository) FindByID(ctx context.Context, id string) (*domain.Alert, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockAlertRepository) FindAll(ctx context.Context) ([]domain.Alert, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockAlertRepository) FindUnresolvedByProject(ctx context.Context, projectID string, alertType domain.AlertType) (*domain.Alert, error) {
	if m.FindUnresolvedByProjectFunc != nil {
		return m.FindUnresolvedByProjectFunc(ctx, projectID, alertType)
	}
	return nil, nil
}

func (m *MockAlertRepository) Update(ctx context.Context, alert *domain.Alert) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, alert)
	}
	return nil
}

// MockUserRepository implements ports.UserRepository for tests.
type MockUserRepository struct {
	SaveFunc        func(ctx context.Context, user *domain.User) error
	FindByIDFunc    func(ctx context.Context, id string) (*domain.User, error)
	FindByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
}

func (m *MockUserRepository) Save(ctx context.Context, user *domain.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}
