// internal/repository/project.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/emateapp/emate/internal/domain"
	"github.com/emateapp/emate/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProjectRepositoryIface interface {
	Create(ctx context.Context, project *model.Project) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Project, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*model.Project, error)
	FindRecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*model.Project, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	Update(ctx context.Context, project *model.Project) error
	ReplaceMilestones(ctx context.Context, projectID uuid.UUID, milestones []model.ProjectMilestone) error
	ReplaceOutcomes(ctx context.Context, projectID uuid.UUID, outcomes []model.ProjectOutcome) error
	UpsertOutcome(ctx context.Context, outcome *model.ProjectOutcome) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, project *model.Project) error {
	result := r.db.WithContext(ctx).Create(project)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domain.ErrDuplicateOutcome
		}
		return fmt.Errorf("failed to create project: %w", result.Error)
	}
	return nil
}

func (r *ProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	var project model.Project
	result := r.db.WithContext(ctx).
		Preload("Milestones", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Outcomes").
		First(&project, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", result.Error)
	}
	return &project, nil
}

func (r *ProjectRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*model.Project, error) {
	var projects []*model.Project
	result := r.db.WithContext(ctx).
		Preload("Outcomes").
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&projects)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find projects: %w", result.Error)
	}
	return projects, nil
}

// FindRecentByUser returns the most recently updated projects with their
// outcome rows preloaded.
func (r *ProjectRepository) FindRecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*model.Project, error) {
	var projects []*model.Project
	result := r.db.WithContext(ctx).
		Preload("Outcomes").
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Limit(limit).
		Find(&projects)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find recent projects: %w", result.Error)
	}
	return projects, nil
}

func (r *ProjectRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.Project{}).
		Where("user_id = ?", userID).
		Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to count projects: %w", result.Error)
	}
	return count, nil
}

func (r *ProjectRepository) Update(ctx context.Context, project *model.Project) error {
	result := r.db.WithContext(ctx).Omit("Milestones", "Outcomes").Save(project)
	if result.Error != nil {
		return fmt.Errorf("failed to update project: %w", result.Error)
	}
	return nil
}

// ReplaceMilestones swaps a project's milestone rows wholesale inside a
// single transaction. Concurrent updates to the same project race under this
// pattern; last writer wins.
func (r *ProjectRepository) ReplaceMilestones(ctx context.Context, projectID uuid.UUID, milestones []model.ProjectMilestone) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", projectID).Delete(&model.ProjectMilestone{}).Error; err != nil {
			return fmt.Errorf("deleting milestones: %w", err)
		}

		for i := range milestones {
			milestones[i].ID = uuid.Nil
			milestones[i].ProjectID = projectID
		}

		if len(milestones) > 0 {
			if err := tx.Create(&milestones).Error; err != nil {
				return fmt.Errorf("creating milestones: %w", err)
			}
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// ReplaceOutcomes swaps a project's outcome rows wholesale, same pattern as
// ReplaceMilestones.
func (r *ProjectRepository) ReplaceOutcomes(ctx context.Context, projectID uuid.UUID, outcomes []model.ProjectOutcome) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", projectID).Delete(&model.ProjectOutcome{}).Error; err != nil {
			return fmt.Errorf("deleting outcomes: %w", err)
		}

		for i := range outcomes {
			outcomes[i].ID = uuid.Nil
			outcomes[i].ProjectID = projectID
		}

		if len(outcomes) > 0 {
			if err := tx.Create(&outcomes).Error; err != nil {
				return fmt.Errorf("creating outcomes: %w", err)
			}
		}

		return nil
	})

	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateOutcome
		}
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// UpsertOutcome writes a single outcome row, overwriting the response if the
// (project, outcome number) pair already exists. Duplicates never accumulate.
func (r *ProjectRepository) UpsertOutcome(ctx context.Context, outcome *model.ProjectOutcome) error {
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "project_id"}, {Name: "outcome_number"}},
		DoUpdates: clause.AssignmentColumns([]string{"response", "updated_at"}),
	}).Create(outcome)
	if result.Error != nil {
		return fmt.Errorf("failed to upsert outcome: %w", result.Error)
	}
	return nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Delete children first
		if err := tx.Where("project_id = ?", id).Delete(&model.ProjectOutcome{}).Error; err != nil {
			return fmt.Errorf("deleting outcomes: %w", err)
		}

		if err := tx.Where("project_id = ?", id).Delete(&model.ProjectMilestone{}).Error; err != nil {
			return fmt.Errorf("deleting milestones: %w", err)
		}

		if err := tx.Where("project_id = ?", id).Delete(&model.RefereeProject{}).Error; err != nil {
			return fmt.Errorf("deleting referee associations: %w", err)
		}

		if err := tx.Delete(&model.Project{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("deleting project: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}
