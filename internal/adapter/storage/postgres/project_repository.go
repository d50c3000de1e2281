package postgres

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/seu-repo/solartech/internal/domain"
	"github.com/seu-repo/solartech/internal/ports"
)

type ProjectRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewProjectRepository(db *gorm.DB, log *zap.Logger) ports.ProjectRepository {
	return &ProjectRepository{
		db:  db,
		log: log,
	}
}

func (r *ProjectRepository) Save(ctx context.Context, project *domain.Project) error {
	return r.db.WithContext(ctx).Save(project).Error
}

func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	var project domain.Project
	err := r.db.WithContext(ctx).First(&project, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &project, nil
}

// FindAll returns projects in insertion order so board columns keep a
// stable ordering across reads.
func (r *ProjectRepository) FindAll(ctx context.Context) ([]domain.Project, error) {
	var projects []domain.Project
	err := r.db.WithContext(ctx).Order("created_at asc").Find(&projects).Error
	return projects, err
}

func (r *ProjectRepository) FindByClientID(ctx context.Context, clientID string) ([]domain.Project, error) {
	var projects []domain.Project
	err := r.db.WithContext(ctx).Where("client_id = ?", clientID).Order("created_at asc").Find(&projects).Error
	return projects, err
}

func (r *ProjectRepository) Update(ctx context.Context, project *domain.Project) error {
	return r.db.WithContext(ctx).Save(project).Error
}
