package analytics

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/seu-repo/solartech/internal/domain"
	"github.com/seu-repo/solartech/internal/ports"
	"github.com/seu-repo/solartech/pkg/config"
)

// Service computes production summaries over trailing windows. Every call
// recomputes from the stored records; there is no incremental state.
type Service struct {
	records ports.ProductionRepository
	windows []int
	perKWh  float64
	clock   ports.Clock
	log     *zap.Logger
}

func NewService(records ports.ProductionRepository, analytics config.AnalyticsConfig, pricing config.PricingConfig, clock ports.Clock, log *zap.Logger) ports.AnalyticsService {
	return &Service{
		records: records,
		windows: analytics.WindowsDays,
		perKWh:  pricing.PerKWh,
		clock:   clock,
		log:     log,
	}
}

// Summarize aggregates the records whose date falls inside the trailing
// window. An empty projectID aggregates over the whole record set.
// Duplicate dates are summed, future-dated records included.
func (s *Service) Summarize(ctx context.Context, projectID string, windowDays int) (*domain.ProductionSummary, error) {
	if !s.validWindow(windowDays) {
		return nil, domain.ErrInvalidWindow
	}

	var (
		all []domain.ProductionRecord
		err error
	)
	if projectID == "" {
		all, err = s.records.FindAll(ctx)
	} else {
		all, err = s.records.FindByProjectID(ctx, projectID)
	}
	if err != nil {
		return nil, err
	}

	cutoff := s.clock.Now().AddDate(0, 0, -windowDays)

	summary := &domain.ProductionSummary{
		WindowDays: windowDays,
		Records:    []domain.ProductionRecord{},
	}
	for _, r := range all {
		if r.Date.Before(cutoff) {
			continue
		}
		summary.Records = append(summary.Records, r)
		summary.TotalGenerationKwh += r.GenerationKwh
		summary.TotalConsumptionKwh += r.ConsumptionKwh
		summary.TotalSavingsBRL += r.SavingsBRL
	}
	summary.RecordCount = len(summary.Records)

	if summary.RecordCount > 0 {
		summary.AvgDailyGeneration = summary.TotalGenerationKwh / float64(summary.RecordCount)
	}
	summary.EstimatedMonthlyBRL = summary.AvgDailyGeneration * 30 * s.perKWh

	// Consumption is floored to 1 kWh so sites with no consumption data
	// still get a finite number.
	consumption := summary.TotalConsumptionKwh
	if consumption == 0 {
		consumption = 1
	}
	summary.EfficiencyPercent = summary.TotalGenerationKwh / consumption * 100

	sort.SliceStable(summary.Records, func(i, j int) bool {
		return summary.Records[i].Date.After(summary.Records[j].Date)
	})

	return summary, nil
}

func (s *Service) validWindow(days int) bool {
	for _, w := range s.windows {
		if w == days {
			return true
		}
	}
	return false
}
