package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/seu-repo/solartech/internal/domain"
	"github.com/seu-repo/solartech/internal/mocks"
)

type fakePipelineService struct {
	RequestTransitionFunc func(ctx context.Context, projectID string, newStatus domain.PipelineStatus) (*domain.Project, error)
	BoardFunc             func(ctx context.Context) ([]domain.BoardColumn, error)
}

func (f *fakePipelineService) RequestTransition(ctx context.Context, projectID string, newStatus domain.PipelineStatus) (*domain.Project, error) {
	if f.RequestTransitionFunc != nil {
		return f.RequestTransitionFunc(ctx, projectID, newStatus)
	}
	return nil, nil
}

func (f *fakePipelineService) Board(ctx context.Context) ([]domain.BoardColumn, error) {
	if f.BoardFunc != nil {
		return f.BoardFunc(ctx)
	}
	return nil, nil
}

type fakeProjectService struct {
	CreateFunc func(ctx context.Context, project *domain.Project) (*domain.Project, error)
	GetFunc    func(ctx context.Context, id string) (*domain.Project, error)
}

func (f *fakeProjectService) Create(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, project)
	}
	return project, nil
}

func (f *fakeProjectService) Update(ctx context.Context, id string, project *domain.Project) (*domain.Project, error) {
	return project, nil
}

func (f *fakeProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	if f.GetFunc != nil {
		return f.GetFunc(ctx, id)
	}
	return nil, domain.ErrProjectNotFound
}

func (f *fakeProjectService) List(ctx context.Context) ([]domain.Project, error) {
	return nil, nil
}

func TestProjectHandler_Transition_InvalidatesDashboard(t *testing.T) {
	// Arrange
	invalidated := 0
	pipeline := &fakePipelineService{
		RequestTransitionFunc: func(ctx context.Context, projectID string, newStatus domain.PipelineStatus) (*domain.Project, error) {
			return &domain.Project{ID: projectID, Status: newStatus}, nil
		},
	}
	dashboard := &mocks.MockDashboardService{
		InvalidateFunc: func(ctx context.Context) error {
			invalidated++
			return nil
		},
	}
	app := newTestApp()
	handler := NewProjectHandler(&fakeProjectService{}, pipeline, dashboard, nil, zap.NewNop())
	app.Post("/projects/:id/transition", handler.Transition)

	body := bytes.NewReader([]byte(`{"status":"approved"}`))
	req := httptest.NewRequest(http.MethodPost, "/projects/proj-1/transition", body)
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp, err := app.Test(req)

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
	if invalidated != 1 {
		t.Errorf("expected dashboard invalidation, got %d calls", invalidated)
	}

	var project domain.Project
	if err := json.NewDecoder(resp.Body).Decode(&project); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if project.Status != domain.StatusApproved {
		t.Errorf("expected status approved, got %q", project.Status)
	}
}

func TestProjectHandler_Transition_InvalidStatusReturns400(t *testing.T) {
	// Arrange
	invalidated := 0
	pipeline := &fakePipelineService{
		RequestTransitionFunc: func(ctx context.Context, projectID string, newStatus domain.PipelineStatus) (*domain.Project, error) {
			return nil, domain.ErrInvalidStatus
		},
	}
	dashboard := &mocks.MockDashboardService{
		InvalidateFunc: func(ctx context.Context) error {
			invalidated++
			return nil
		},
	}
	app := newTestApp()
	handler := NewProjectHandler(&fakeProjectService{}, pipeline, dashboard, nil, zap.NewNop())
	app.Post("/projects/:id/transition", handler.Transition)

	body := bytes.NewReader([]byte(`{"status":"archived"}`))
	req := httptest.NewRequest(http.MethodPost, "/projects/proj-1/transition", body)
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp, err := app.Test(req)

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", resp.StatusCode)
	}
	if invalidated != 0 {
		t.Errorf("dashboard must not be invalidated on a failed transition, got %d calls", invalidated)
	}
}

func TestProjectHandler_Get_UnknownProjectReturns404(t *testing.T) {
	// Arrange
	app := newTestApp()
	handler := NewProjectHandler(&fakeProjectService{}, &fakePipelineService{}, &mocks.MockDashboardService{}, nil, zap.NewNop())
	app.Get("/projects/:id", handler.Get)

	// Act
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/projects/missing", nil))

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", resp.StatusCode)
	}
}

func TestProjectHandler_Board(t *testing.T) {
	// Arrange
	pipeline := &fakePipelineService{
		BoardFunc: func(ctx context.Context) ([]domain.BoardColumn, error) {
			return []domain.BoardColumn{
				{Status: domain.StatusLead, Projects: []domain.Project{{ID: "proj-1"}}},
				{Status: domain.StatusProposal},
			}, nil
		},
	}
	app := newTestApp()
	handler := NewProjectHandler(&fakeProjectService{}, pipeline, &mocks.MockDashboardService{}, nil, zap.NewNop())
	app.Get("/pipeline/board", handler.Board)

	// Act
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/pipeline/board", nil))

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	var body struct {
		Columns []domain.BoardColumn `json:"columns"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(body.Columns) != 2 || body.Columns[0].Status != domain.StatusLead {
		t.Errorf("unexpected board: %+v", body.Columns)
	}
}
