package dashboard

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/seu-repo/solartech/internal/domain"
	"github.com/seu-repo/solartech/internal/mocks"
)

func newTestLogger() *zap.Logger {
	logger, _ := zap.NewDevelopment()
	return logger
}

func testProjects() []domain.Project {
	return []domain.Project{
		{ID: "p1", Status: domain.StatusLead, ProjectValue: 10000},
		{ID: "p2", Status: domain.StatusApproved, ProjectValue: 25000},
		{ID: "p3", Status: domain.StatusCompleted, ProjectValue: 40000},
		{ID: "p4", Status: domain.StatusCancelled, ProjectValue: 99999},
	}
}

func TestStats_ComputesCounters(t *testing.T) {
	// Arrange
	ctx := context.Background()
	projects := &mocks.MockProjectRepository{
		FindAllFunc: func(ctx context.Context) ([]domain.Project, error) {
			return testProjects(), nil
		},
	}
	clients := &mocks.MockClientRepository{
		CountFunc: func(ctx context.Context) (int64, error) { return 3, nil },
	}
	cache := mocks.NewMockCache()
	service := NewService(projects, clients, cache, time.Minute, newTestLogger())

	// Act
	stats, err := service.Stats(ctx)

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if stats.TotalProjects != 4 {
		t.Errorf("expected 4 total projects, got %d", stats.TotalProjects)
	}
	if stats.ActiveProjects != 2 {
		t.Errorf("expected 2 active projects, got %d", stats.ActiveProjects)
	}
	if stats.ActiveClients != 3 {
		t.Errorf("expected 3 clients, got %d", stats.ActiveClients)
	}
	// Cancelled value excluded: 10000 + 25000 + 40000
	if stats.TotalValueBRL != 75000 {
		t.Errorf("expected total value 75000, got %v", stats.TotalValueBRL)
	}
	if stats.StageCounts[domain.StatusLead] != 1 || stats.StageCounts[domain.StatusApproved] != 1 {
		t.Error("expected per-stage counts")
	}
	if _, ok := stats.StageCounts[domain.StatusCancelled]; ok {
		t.Error("cancelled is not a board stage")
	}
	if cache.Data[statsCacheKey] == "" {
		t.Error("expected stats to be cached")
	}
	if cache.TTLs[statsCacheKey] != time.Minute {
		t.Errorf("expected TTL 1m, got %v", cache.TTLs[statsCacheKey])
	}
}

func TestStats_ServedFromCache(t *testing.T) {
	ctx := context.Background()
	projects := &mocks.MockProjectRepository{
		FindAllFunc: func(ctx context.Context) ([]domain.Project, error) {
			t.Fatal("repository must not be consulted on a cache hit")
			return nil, nil
		},
	}
	cache := mocks.NewMockCache()
	cached, _ := json.Marshal(domain.DashboardStats{TotalProjects: 42})
	cache.Data[statsCacheKey] = string(cached)

	service := NewService(projects, &mocks.MockClientRepository{}, cache, time.Minute, newTestLogger())

	stats, err := service.Stats(ctx)

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if stats.TotalProjects != 42 {
		t.Errorf("expected cached value 42, got %d", stats.TotalProjects)
	}
}

func TestInvalidate_ForcesRecompute(t *testing.T) {
	ctx := context.Background()
	calls := 0
	projects := &mocks.MockProjectRepository{
		FindAllFunc: func(ctx context.Context) ([]domain.Project, error) {
			calls++
			return testProjects(), nil
		},
	}
	clients := &mocks.MockClientRepository{}
	cache := mocks.NewMockCache()
	service := NewService(projects, clients, cache, time.Minute, newTestLogger())

	if _, err := service.Stats(ctx); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := service.Invalidate(ctx); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, err := service.Stats(ctx); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if calls != 2 {
		t.Errorf("expected recompute after invalidation, got %d computes", calls)
	}
}
