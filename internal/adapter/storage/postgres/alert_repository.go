package postgres

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/seu-repo/solartech/internal/domain"
	"github.com/seu-repo/solartech/internal/ports"
)

type AlertRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewAlertRepository(db *gorm.DB, log *zap.Logger) ports.AlertRepository {
	return &AlertRepository{
		db:  db,
		log: log,
	}
}

func (r *AlertRepository) Save(ctx context.Context, alert *domain.Alert) error {
	return r.db.WithContext(ctx).Save(alert).Error
}

func (r *AlertRepository) FindByID(ctx context.Context, id string) (*domain.Alert, error) {
	var alert domain.Alert
	err := r.db.WithContext(ctx).First(&alert, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &alert, nil
}

func (r *AlertRepository) FindAll(ctx context.Context) ([]domain.Alert, error) {
	var alerts []domain.Alert
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&alerts).Error
	return alerts, err
}

// FindUnresolvedByProject returns the most recent open alert of the given
// type for a project, or nil when none exists.
func (r *AlertRepository) FindUnresolvedByProject(ctx context.Context, projectID string, alertType domain.AlertType) (*domain.Alert, error) {
	var alert domain.Alert
	err := r.db.WithContext(ctx).
		Where("project_id = ? AND type = ? AND resolved = ?", projectID, alertType, false).
		Order("created_at desc").
		First(&alert).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &alert, nil
}

func (r *AlertRepository) Update(ctx context.Context, alert *domain.Alert) error {
	return r.db.WithContext(ctx).Save(alert).Error
}
