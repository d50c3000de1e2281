package postgres

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/seu-repo/solartech/internal/domain"
	"github.com/seu-repo/solartech/internal/ports"
)

// ProductionRepository persists daily readings. There is no update or
// delete path, the table is append-only.
type ProductionRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewProductionRepository(db *gorm.DB, log *zap.Logger) ports.ProductionRepository {
	return &ProductionRepository{
		db:  db,
		log: log,
	}
}

func (r *ProductionRepository) Save(ctx context.Context, record *domain.ProductionRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *ProductionRepository) FindAll(ctx context.Context) ([]domain.ProductionRecord, error) {
	var records []domain.ProductionRecord
	err := r.db.WithContext(ctx).Order("date asc").Find(&records).Error
	return records, err
}

func (r *ProductionRepository) FindByProjectID(ctx context.Context, projectID string) ([]domain.ProductionRecord, error) {
	var records []domain.ProductionRecord
	err := r.db.WithContext(ctx).Where("project_id = ?", projectID).Order("date asc").Find(&records).Error
	return records, err
}
