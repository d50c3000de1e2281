package production

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/seu-repo/solartech/internal/adapter/queue"
	"github.com/seu-repo/solartech/internal/domain"
	"github.com/seu-repo/solartech/internal/ports"
	"github.com/seu-repo/solartech/pkg/config"
)

// Service ingests daily production readings. Records are append-only;
// duplicate (project, date) pairs are accepted and logged, aggregation
// sums them downstream.
type Service struct {
	records  ports.ProductionRepository
	projects ports.ProjectRepository
	alerts   ports.AlertService
	mq       queue.MessageQueue
	clock    ports.Clock
	perKWh   float64
	log      *zap.Logger
}

func NewService(
	records ports.ProductionRepository,
	projects ports.ProjectRepository,
	alerts ports.AlertService,
	mq queue.MessageQueue,
	clock ports.Clock,
	pricing config.PricingConfig,
	log *zap.Logger,
) ports.ProductionService {
	return &Service{
		records:  records,
		projects: projects,
		alerts:   alerts,
		mq:       mq,
		clock:    clock,
		perKWh:   pricing.PerKWh,
		log:      log,
	}
}

func (s *Service) Record(ctx context.Context, record *domain.ProductionRecord) (*domain.ProductionRecord, error) {
	if record.GenerationKwh < 0 || record.ConsumptionKwh < 0 || record.SavingsBRL < 0 {
		return nil, domain.ErrInvalidInput
	}
	if record.Date.IsZero() {
		return nil, domain.ErrInvalidInput
	}

	project, err := s.projects.FindByID(ctx, record.ProjectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrProjectNotFound
	}

	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.SystemStatus == "" {
		record.SystemStatus = domain.SystemStatusNormal
	}
	// Gateways usually omit savings; derive it from the tariff.
	if record.SavingsBRL == 0 {
		record.SavingsBRL = record.GenerationKwh * s.perKWh
	}
	record.CreatedAt = s.clock.Now()

	s.warnOnDuplicateDate(ctx, record)

	if err := s.records.Save(ctx, record); err != nil {
		return nil, err
	}

	s.publishRecorded(record)

	if _, err := s.alerts.EvaluateProduction(ctx, record); err != nil {
		// Intake already succeeded; a broken evaluator must not undo it.
		s.log.Error("Alert evaluation failed", zap.String("record_id", record.ID), zap.Error(err))
	}

	return record, nil
}

func (s *Service) History(ctx context.Context, projectID string) ([]domain.ProductionRecord, error) {
	return s.records.FindByProjectID(ctx, projectID)
}

func (s *Service) warnOnDuplicateDate(ctx context.Context, record *domain.ProductionRecord) {
	existing, err := s.records.FindByProjectID(ctx, record.ProjectID)
	if err != nil {
		s.log.Warn("Duplicate check failed", zap.Error(err))
		return
	}
	y, m, d := record.Date.Date()
	for _, r := range existing {
		ey, em, ed := r.Date.Date()
		if ey == y && em == m && ed == d {
			s.log.Warn("Duplicate reading for date, recording anyway",
				zap.String("project_id", record.ProjectID),
				zap.Time("date", record.Date),
			)
			return
		}
	}
}

func (s *Service) publishRecorded(record *domain.ProductionRecord) {
	event := domain.ProductionRecordedEvent{
		RecordID:      record.ID,
		ProjectID:     record.ProjectID,
		Date:          record.Date,
		GenerationKwh: record.GenerationKwh,
	}
	data, err := json.Marshal(event)
	if err != nil {
		s.log.Error("Failed to marshal production event", zap.Error(err))
		return
	}
	if err := s.mq.Publish(domain.SubjectProductionRecorded, data); err != nil {
		s.log.Error("Failed to publish production event", zap.Error(err))
	}
}
