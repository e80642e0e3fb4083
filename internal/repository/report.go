// internal/repository/report.go
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

type ReportRepositoryIface interface {
	Create(ctx context.Context, report *model.Report, projectIDs []uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Report, error)
	FindByAuthor(ctx context.Context, authorID uuid.UUID) ([]*model.Report, error)
	Update(ctx context.Context, report *model.Report) error
	Delete(ctx context.Context, id uuid.UUID) error
	AppendHistory(ctx context.Context, entry *model.ReportHistory) error
	AddFeedback(ctx context.Context, entry *model.ReportFeedback) error
	LinkTag(ctx context.Context, reportID uuid.UUID, name string) (*model.Tag, error)
}

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) Create(ctx context.Context, report *model.Report, projectIDs []uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(report).Error; err != nil {
			return fmt.Errorf("creating report: %w", err)
		}

		if len(projectIDs) > 0 {
			var projects []model.Project
			if err := tx.Where("id IN ?", projectIDs).Find(&projects).Error; err != nil {
				return fmt.Errorf("loading projects: %w", err)
			}
			if len(projects) != len(projectIDs) {
				return domain.ErrProjectNotFound
			}
			if err := tx.Model(report).Association("Projects").Append(&projects); err != nil {
				return fmt.Errorf("linking projects: %w", err)
			}
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			return err
		}
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

func (r *ReportRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Report, error) {
	var report model.Report
	result := r.db.WithContext(ctx).
		Preload("Projects").
		Preload("Tags").
		Preload("History", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Feedback", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		First(&report, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to find report: %w", result.Error)
	}
	return &report, nil
}

func (r *ReportRepository) FindByAuthor(ctx context.Context, authorID uuid.UUID) ([]*model.Report, error) {
	var reports []*model.Report
	result := r.db.WithContext(ctx).
		Preload("Tags").
		Where("author_id = ?", authorID).
		Order("updated_at DESC").
		Find(&reports)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find reports: %w", result.Error)
	}
	return reports, nil
}

func (r *ReportRepository) Update(ctx context.Context, report *model.Report) error {
	result := r.db.WithContext(ctx).Omit("Projects", "Tags", "History", "Feedback").Save(report)
	if result.Error != nil {
		return fmt.Errorf("failed to update report: %w", result.Error)
	}
	return nil
}

func (r *ReportRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		report := model.Report{ID: id}

		if err := tx.Model(&report).Association("Projects").Clear(); err != nil {
			return fmt.Errorf("clearing project links: %w", err)
		}
		if err := tx.Model(&report).Association("Tags").Clear(); err != nil {
			return fmt.Errorf("clearing tag links: %w", err)
		}

		if err := tx.Where("report_id = ?", id).Delete(&model.ReportHistory{}).Error; err != nil {
			return fmt.Errorf("deleting history: %w", err)
		}
		if err := tx.Where("report_id = ?", id).Delete(&model.ReportFeedback{}).Error; err != nil {
			return fmt.Errorf("deleting feedback: %w", err)
		}

		if err := tx.Delete(&model.Report{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("deleting report: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// AppendHistory inserts a prior-draft snapshot. History rows are append-only
// and never updated.
func (r *ReportRepository) AppendHistory(ctx context.Context, entry *model.ReportHistory) error {
	result := r.db.WithContext(ctx).Create(entry)
	if result.Error != nil {
		return fmt.Errorf("failed to append history: %w", result.Error)
	}
	return nil
}

func (r *ReportRepository) AddFeedback(ctx context.Context, entry *model.ReportFeedback) error {
	result := r.db.WithContext(ctx).Create(entry)
	if result.Error != nil {
		return fmt.Errorf("failed to add feedback: %w", result.Error)
	}
	return nil
}

// LinkTag associates a tag (created on first use) with a report. Linking an
// already-linked tag is a no-op.
func (r *ReportRepository) LinkTag(ctx context.Context, reportID uuid.UUID, name string) (*model.Tag, error) {
	var tag model.Tag
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("name = ?", name).FirstOrCreate(&tag, model.Tag{Name: name}).Error; err != nil {
			return fmt.Errorf("finding or creating tag: %w", err)
		}

		var count int64
		if err := tx.Table("report_tags").
			Where("report_id = ? AND tag_id = ?", reportID, tag.ID).
			Count(&count).Error; err != nil {
			return fmt.Errorf("checking tag link: %w", err)
		}
		if count > 0 {
			return nil
		}

		report := model.Report{ID: reportID}
		if err := tx.Model(&report).Association("Tags").Append(&tag); err != nil {
			return fmt.Errorf("linking tag: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("transaction failed: %w", err)
	}

	return &tag, nil
}
