// internal/repository/prompt.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/emateapp/emate/internal/domain"
	"github.com/emateapp/emate/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PromptRepositoryIface interface {
	FindByName(ctx context.Context, name string) (*model.AIPromptTemplate, error)
	FindAll(ctx context.Context) ([]*model.AIPromptTemplate, error)
	Upsert(ctx context.Context, tmpl *model.AIPromptTemplate) error
}

type PromptRepository struct {
	db *gorm.DB
}

func NewPromptRepository(db *gorm.DB) *PromptRepository {
	return &PromptRepository{db: db}
}

func (r *PromptRepository) FindByName(ctx context.Context, name string) (*model.AIPromptTemplate, error) {
	var tmpl model.AIPromptTemplate
	result := r.db.WithContext(ctx).Where("name = ?", name).First(&tmpl)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTemplateNotFound
		}
		return nil, fmt.Errorf("failed to find prompt template: %w", result.Error)
	}
	return &tmpl, nil
}

func (r *PromptRepository) FindAll(ctx context.Context) ([]*model.AIPromptTemplate, error) {
	var tmpls []*model.AIPromptTemplate
	result := r.db.WithContext(ctx).Order("name ASC").Find(&tmpls)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find prompt templates: %w", result.Error)
	}
	return tmpls, nil
}

// Upsert writes a template keyed by name. Used by the seed command.
func (r *PromptRepository) Upsert(ctx context.Context, tmpl *model.AIPromptTemplate) error {
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"template", "purpose", "updated_at"}),
	}).Create(tmpl)
	if result.Error != nil {
		return fmt.Errorf("failed to upsert prompt template: %w", result.Error)
	}
	return nil
}
