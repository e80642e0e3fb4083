// internal/repository/referee.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/emateapp/emate/internal/domain"
	"github.com/emateapp/emate/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RefereeRepositoryIface interface {
	Create(ctx context.Context, referee *model.Referee) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Referee, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*model.Referee, error)
	FindRecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*model.Referee, error)
	Update(ctx context.Context, referee *model.Referee) error
	Delete(ctx context.Context, id uuid.UUID) error
	ReplaceProjects(ctx context.Context, refereeID uuid.UUID, projectIDs []uuid.UUID) error
}

type RefereeRepository struct {
	db *gorm.DB
}

func NewRefereeRepository(db *gorm.DB) *RefereeRepository {
	return &RefereeRepository{db: db}
}

func (r *RefereeRepository) Create(ctx context.Context, referee *model.Referee) error {
	result := r.db.WithContext(ctx).Create(referee)
	if result.Error != nil {
		return fmt.Errorf("failed to create referee: %w", result.Error)
	}
	return nil
}

func (r *RefereeRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Referee, error) {
	var referee model.Referee
	result := r.db.WithContext(ctx).Preload("Projects").First(&referee, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRefereeNotFound
		}
		return nil, fmt.Errorf("failed to find referee: %w", result.Error)
	}
	return &referee, nil
}

func (r *RefereeRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*model.Referee, error) {
	var referees []*model.Referee
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&referees)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find referees: %w", result.Error)
	}
	return referees, nil
}

func (r *RefereeRepository) FindRecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*model.Referee, error) {
	var referees []*model.Referee
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Limit(limit).
		Find(&referees)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find recent referees: %w", result.Error)
	}
	return referees, nil
}

func (r *RefereeRepository) Update(ctx context.Context, referee *model.Referee) error {
	result := r.db.WithContext(ctx).Omit("Projects").Save(referee)
	if result.Error != nil {
		return fmt.Errorf("failed to update referee: %w", result.Error)
	}
	return nil
}

func (r *RefereeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Drop project associations first
		if err := tx.Where("referee_id = ?", id).Delete(&model.RefereeProject{}).Error; err != nil {
			return fmt.Errorf("deleting referee associations: %w", err)
		}

		if err := tx.Delete(&model.Referee{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("deleting referee: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// ReplaceProjects replaces the full set of project associations for a
// referee in one transaction. The call is not incremental.
func (r *RefereeRepository) ReplaceProjects(ctx context.Context, refereeID uuid.UUID, projectIDs []uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("referee_id = ?", refereeID).Delete(&model.RefereeProject{}).Error; err != nil {
			return fmt.Errorf("deleting associations: %w", err)
		}

		if len(projectIDs) == 0 {
			return nil
		}

		joins := make([]model.RefereeProject, 0, len(projectIDs))
		for _, projectID := range projectIDs {
			joins = append(joins, model.RefereeProject{
				RefereeID: refereeID,
				ProjectID: projectID,
			})
		}

		if err := tx.Create(&joins).Error; err != nil {
			return fmt.Errorf("creating associations: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}
