package mocks

import (
	"context"

	"github.com/seu-repo/solartech/internal/domain"
)

// MockAlertService implements ports.AlertService for tests.
type MockAlertService struct {
	ResolveFunc            func(ctx context.Context, id string) (*domain.Alert, error)
	FilterFunc             func(ctx context.Context, mode domain.AlertFilter) ([]domain.AlertView, error)
	SummaryFunc            func(ctx context.Context) (*domain.AlertSummary, error)
	EvaluateProductionFunc func(ctx context.Context, record *domain.ProductionRecord) (*domain.Alert, error)
}

func (m *MockAlertService) Resolve(ctx context.Context, id string) (*domain.Alert, error) {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockAlertService) Filter(ctx context.Context, mode domain.AlertFilter) ([]domain.AlertView, error) {
	if m.FilterFunc != nil {
		return m.FilterFunc(ctx, mode)
	}
	return nil, nil
}

func (m *MockAlertService) Summary(ctx context.Context) (*domain.AlertSummary, error) {
	if m.SummaryFunc != nil {
		return m.SummaryFunc(ctx)
	}
	return &domain.AlertSummary{}, nil
}

func (m *MockAlertService) EvaluateProduction(ctx context.Context, record *domain.ProductionRecord) (*domain.Alert, error) {
	if m.EvaluateProductionFunc != nil {
		return m.EvaluateProductionFunc(ctx, record)
	}
	return nil, nil
}

// MockDashboardService implements ports.DashboardService for tests.
type MockDashboardService struct {
	StatsFunc      func(ctx context.Context) (*domain.DashboardStats, error)
	InvalidateFunc func(ctx context.Context) error
}

func (m *MockDashboardService) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	if m.StatsFunc != nil {
		return m.StatsFunc(ctx)
	}
	return &domain.DashboardStats{}, nil
}

func (m *MockDashboardService) Invalidate(ctx context.Context) error {
	if m.InvalidateFunc != nil {
		return m.InvalidateFunc(ctx)
	}
	return nil
}
