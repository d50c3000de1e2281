package pipeline

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/seu-repo/solartech/internal/adapter/queue"
	"github.com/seu-repo/solartech/internal/domain"
	"github.com/seu-repo/solartech/internal/ports"
)

// Service moves projects through the sales pipeline. The status field is a
// plain label: any status may move to any other, including out of
// completed and cancelled. Board ordering comes from domain.PipelineOrder.
type Service struct {
	projects ports.ProjectRepository
	mq       queue.MessageQueue
	clock    ports.Clock
	log      *zap.Logger
}

func NewService(projects ports.ProjectRepository, mq queue.MessageQueue, clock ports.Clock, log *zap.Logger) ports.PipelineService {
	return &Service{
		projects: projects,
		mq:       mq,
		clock:    clock,
		log:      log,
	}
}

func (s *Service) RequestTransition(ctx context.Context, projectID string, newStatus domain.PipelineStatus) (*domain.Project, error) {
	if !newStatus.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	project, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrProjectNotFound
	}

	// Dropping a card on its own column is a no-op, nothing is written.
	if project.Status == newStatus {
		return project, nil
	}

	from := project.Status
	now := s.clock.Now()
	project.Status = newStatus
	project.UpdatedAt = now
	if newStatus == domain.StatusCompleted && project.CompletionDate == nil {
		project.CompletionDate = &now
	}

	if err := s.projects.Update(ctx, project); err != nil {
		return nil, err
	}

	s.publishTransitioned(project, from, newStatus)

	s.log.Info("Project transitioned",
		zap.String("project_id", project.ID),
		zap.String("from", string(from)),
		zap.String("to", string(newStatus)),
	)
	return project, nil
}

func (s *Service) publishTransitioned(project *domain.Project, from, to domain.PipelineStatus) {
	event := domain.ProjectTransitionedEvent{
		ProjectID:    project.ID,
		ProjectValue: project.ProjectValue,
		From:         from,
		To:           to,
		At:           project.UpdatedAt,
	}
	data, err := json.Marshal(event)
	if err != nil {
		s.log.Error("Failed to marshal transition event", zap.Error(err))
		return
	}
	if err := s.mq.Publish(domain.SubjectProjectTransitioned, data); err != nil {
		s.log.Error("Failed to publish transition event", zap.Error(err))
	}
}

// Board groups projects into ordered pipeline columns. Cancelled projects
// are excluded; within a column, repository order is preserved.
func (s *Service) Board(ctx context.Context) ([]domain.BoardColumn, error) {
	projects, err := s.projects.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	byStatus := make(map[domain.PipelineStatus][]domain.Project, len(domain.PipelineOrder))
	for _, p := range projects {
		if p.Status == domain.StatusCancelled {
			continue
		}
		byStatus[p.Status] = append(byStatus[p.Status], p)
	}

	columns := make([]domain.BoardColumn, 0, len(domain.PipelineOrder))
	for _, status := range domain.PipelineOrder {
		columns = append(columns, domain.BoardColumn{
			Status:   status,
			Projects: byStatus[status],
		})
	}
	return columns, nil
}
