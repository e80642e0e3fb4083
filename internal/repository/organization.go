// internal/repository/organization.go
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

type OrganizationRepositoryIface interface {
	Create(ctx context.Context, org *model.Organization) error
	CreateOrganizationUser(ctx context.Context, orgUser *model.OrganizationUser) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Organization, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]model.Organization, error)
}

type OrganizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

func (r *OrganizationRepository) Create(ctx context.Context, org *model.Organization) error {
	if err := r.db.WithContext(ctx).Create(org).Error; err != nil {
		return fmt.Errorf("creating organization: %w", err)
	}
	return nil
}

func (r *OrganizationRepository) CreateOrganizationUser(ctx context.Context, orgUser *model.OrganizationUser) error {
	if err := r.db.WithContext(ctx).Create(orgUser).Error; err != nil {
		return fmt.Errorf("creating organization user: %w", err)
	}
	return nil
}

func (r *OrganizationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Organization, error) {
	var org model.Organization
	if err := r.db.WithContext(ctx).First(&org, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("finding organization: %w", err)
	}
	return &org, nil
}

func (r *OrganizationRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]model.Organization, error) {
	var orgs []model.Organization
	if err := r.db.WithContext(ctx).
		Joins("JOIN organization_users ON organizations.id = organization_users.organization_id").
		Where("organization_users.user_id = ?", userID).
		Find(&orgs).Error; err != nil {
		return nil, fmt.Errorf("finding user organizations: %w", err)
	}
	return orgs, nil
}
