package alert

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/seu-repo/solartech/internal/adapter/queue"
	"github.com/seu-repo/solartech/internal/domain"
	"github.com/seu-repo/solartech/internal/ports"
)

// UnknownProjectTitle fills alert views whose project no longer resolves.
const UnknownProjectTitle = "Unknown project"

type Service struct {
	alerts   ports.AlertRepository
	projects ports.ProjectRepository
	email    ports.EmailService
	mq       queue.MessageQueue
	clock    ports.Clock
	opsEmail string
	log      *zap.Logger
}

func NewService(
	alerts ports.AlertRepository,
	projects ports.ProjectRepository,
	email ports.EmailService,
	mq queue.MessageQueue,
	clock ports.Clock,
	opsEmail string,
	log *zap.Logger,
) ports.AlertService {
	return &Service{
		alerts:   alerts,
		projects: projects,
		email:    email,
		mq:       mq,
		clock:    clock,
		opsEmail: opsEmail,
		log:      log,
	}
}

// Resolve flips an alert to resolved. ResolvedAt is written exactly once;
// resolving twice is an error, not a no-op.
func (s *Service) Resolve(ctx context.Context, id string) (*domain.Alert, error) {
	alert, err := s.alerts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if alert == nil {
		return nil, domain.ErrAlertNotFound
	}
	if alert.Resolved {
		return nil, domain.ErrAlreadyResolved
	}

	now := s.clock.Now()
	alert.Resolved = true
	alert.ResolvedAt = &now

	if err := s.alerts.Update(ctx, alert); err != nil {
		return nil, err
	}

	s.publish(domain.SubjectAlertResolved, alert)

	s.log.Info("Alert resolved",
		zap.String("alert_id", alert.ID),
		zap.String("type", string(alert.Type)),
	)
	return alert, nil
}

// Filter returns enriched alert views, newest first. A dangling project
// reference degrades to a placeholder title, never an error.
func (s *Service) Filter(ctx context.Context, mode domain.AlertFilter) ([]domain.AlertView, error) {
	alerts, err := s.alerts.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]domain.AlertView, 0, len(alerts))
	for _, a := range alerts {
		switch mode {
		case domain.AlertFilterActive:
			if a.Resolved {
				continue
			}
		case domain.AlertFilterResolved:
			if !a.Resolved {
				continue
			}
		}
		view, err := s.enrich(ctx, a)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	sort.SliceStable(views, func(i, j int) bool {
		return views[i].CreatedAt.After(views[j].CreatedAt)
	})
	return views, nil
}

func (s *Service) enrich(ctx context.Context, a domain.Alert) (domain.AlertView, error) {
	view := domain.AlertView{Alert: a, ProjectTitle: UnknownProjectTitle}
	project, err := s.projects.FindByID(ctx, a.ProjectID)
	if err != nil {
		return view, err
	}
	if project != nil {
		view.ProjectTitle = project.Title
		view.ClientName = project.ClientName
	}
	return view, nil
}

// Summary counts over the full alert set regardless of any list filter.
func (s *Service) Summary(ctx context.Context) (*domain.AlertSummary, error) {
	alerts, err := s.alerts.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	summary := &domain.AlertSummary{}
	for _, a := range alerts {
		if a.Resolved {
			summary.Resolved++
			continue
		}
		switch a.Severity {
		case domain.AlertSeverityHigh:
			summary.HighActive++
		case domain.AlertSeverityMedium:
			summary.MediumActive++
		}
	}
	return summary, nil
}

// EvaluateProduction derives an alert from a reading's system status. It is
// idempotent per open condition: when an unresolved alert of the same type
// already exists for the project, no new alert is raised.
func (s *Service) EvaluateProduction(ctx context.Context, record *domain.ProductionRecord) (*domain.Alert, error) {
	alertType, severity, message := classify(record)
	if alertType == "" {
		return nil, nil
	}

	existing, err := s.alerts.FindUnresolvedByProject(ctx, record.ProjectID, alertType)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		s.log.Debug("Skipping duplicate alert",
			zap.String("project_id", record.ProjectID),
			zap.String("type", string(alertType)),
		)
		return nil, nil
	}

	alert := &domain.Alert{
		ID:        uuid.NewString(),
		ProjectID: record.ProjectID,
		Type:      alertType,
		Severity:  severity,
		Message:   message,
		CreatedAt: s.clock.Now(),
	}

	if err := s.alerts.Save(ctx, alert); err != nil {
		return nil, err
	}

	s.publish(domain.SubjectAlertCreated, alert)

	if severity == domain.AlertSeverityHigh {
		s.notify(ctx, alert)
	}

	s.log.Info("Alert created",
		zap.String("alert_id", alert.ID),
		zap.String("project_id", alert.ProjectID),
		zap.String("type", string(alertType)),
		zap.String("severity", string(severity)),
	)
	return alert, nil
}

func classify(record *domain.ProductionRecord) (domain.AlertType, domain.AlertSeverity, string) {
	switch record.SystemStatus {
	case domain.SystemStatusCritical:
		return domain.AlertTypeSystemFailure, domain.AlertSeverityHigh,
			"System failure reported by the site gateway"
	case domain.SystemStatusAlert:
		if record.ConsumptionKwh > record.GenerationKwh {
			return domain.AlertTypeHighConsumption, domain.AlertSeverityMedium,
				fmt.Sprintf("Consumption of %.1f kWh exceeds generation of %.1f kWh", record.ConsumptionKwh, record.GenerationKwh)
		}
		return domain.AlertTypeLowGeneration, domain.AlertSeverityMedium,
			fmt.Sprintf("Generation of %.1f kWh is below the expected level", record.GenerationKwh)
	}
	return "", "", ""
}

func (s *Service) notify(ctx context.Context, alert *domain.Alert) {
	view, err := s.enrich(ctx, *alert)
	if err != nil {
		s.log.Warn("Failed to enrich alert for notification", zap.Error(err))
		view = domain.AlertView{Alert: *alert, ProjectTitle: UnknownProjectTitle}
	}
	if err := s.email.SendAlertNotification(ctx, s.opsEmail, &view); err != nil {
		s.log.Error("Failed to send alert notification", zap.Error(err))
	}
}

func (s *Service) publish(subject string, alert *domain.Alert) {
	event := domain.AlertEvent{
		AlertID:   alert.ID,
		ProjectID: alert.ProjectID,
		Type:      alert.Type,
		Severity:  alert.Severity,
		At:        s.clock.Now(),
	}
	data, err := json.Marshal(event)
	if err != nil {
		s.log.Error("Failed to marshal alert event", zap.Error(err))
		return
	}
	if err := s.mq.Publish(subject, data); err != nil {
		s.log.Error("Failed to publish alert event", zap.String("subject", subject), zap.Error(err))
	}
}
