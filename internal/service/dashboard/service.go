package dashboard

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/seu-repo/solartech/internal/domain"
	"github.com/seu-repo/solartech/internal/observability/telemetry"
	"github.com/seu-repo/solartech/internal/ports"
)

const statsCacheKey = "dashboard:stats"

// Service computes the company-dashboard counters. Results are cached
// with a short TTL; pipeline transitions invalidate the cache so the next
// read recomputes.
type Service struct {
	projects ports.ProjectRepository
	clients  ports.ClientRepository
	cache    ports.Cache
	ttl      time.Duration
	log      *zap.Logger
}

func NewService(projects ports.ProjectRepository, clients ports.ClientRepository, cache ports.Cache, ttl time.Duration, log *zap.Logger) ports.DashboardService {
	return &Service{
		projects: projects,
		clients:  clients,
		cache:    cache,
		ttl:      ttl,
		log:      log,
	}
}

func (s *Service) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	if cached, err := s.cache.Get(ctx, statsCacheKey); err == nil && cached != "" {
		var stats domain.DashboardStats
		if err := json.Unmarshal([]byte(cached), &stats); err == nil {
			return &stats, nil
		}
		// Unreadable cache entries are recomputed, not surfaced.
		s.log.Warn("Discarding corrupt dashboard cache entry")
	}

	stats, err := s.compute(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(stats); err == nil {
		if err := s.cache.Set(ctx, statsCacheKey, string(data), s.ttl); err != nil {
			s.log.Warn("Failed to cache dashboard stats", zap.Error(err))
		}
	}

	return stats, nil
}

func (s *Service) compute(ctx context.Context) (*domain.DashboardStats, error) {
	projects, err := s.projects.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	clientCount, err := s.clients.Count(ctx)
	if err != nil {
		return nil, err
	}

	stats := &domain.DashboardStats{
		ActiveClients: int(clientCount),
		StageCounts:   make(map[domain.PipelineStatus]int, len(domain.PipelineOrder)),
	}
	for _, status := range domain.PipelineOrder {
		stats.StageCounts[status] = 0
	}

	for _, p := range projects {
		stats.TotalProjects++
		if p.Status != domain.StatusCancelled {
			stats.TotalValueBRL += p.ProjectValue
			stats.StageCounts[p.Status]++
		}
		if !p.Status.Terminal() {
			stats.ActiveProjects++
		}
	}

	for status, count := range stats.StageCounts {
		telemetry.PipelineStageProjects.WithLabelValues(string(status)).Set(float64(count))
	}

	return stats, nil
}

func (s *Service) Invalidate(ctx context.Context) error {
	return s.cache.Delete(ctx, statsCacheKey)
}
