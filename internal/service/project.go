// internal/service/project.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/emateapp/emate/internal/domain"
	"github.com/emateapp/emate/internal/model"
	"github.com/emateapp/emate/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const defaultOrganizationName = "Personal"

type ProjectService struct {
	repo       repository.ProjectRepositoryIface
	orgRepo    repository.OrganizationRepositoryIface
	dashboards *DashboardService
	validate   *validator.Validate
}

func NewProjectService(
	repo repository.ProjectRepositoryIface,
	orgRepo repository.OrganizationRepositoryIface,
	dashboards *DashboardService,
) *ProjectService {
	return &ProjectService{
		repo:       repo,
		orgRepo:    orgRepo,
		dashboards: dashboards,
		validate:   validator.New(),
	}
}

type MilestoneInput struct {
	Title       string    `json:"title" validate:"required"`
	Date        time.Time `json:"date" validate:"required"`
	Description string    `json:"description"`
}

type OutcomeInput struct {
	Number   int     `json:"number" validate:"required,min=1,max=11"`
	Response *string `json:"response"`
}

type ProjectInput struct {
	Name             string              `json:"name" validate:"required"`
	Description      string              `json:"description"`
	StartDate        time.Time           `json:"start_date" validate:"required"`
	EndDate          *time.Time          `json:"end_date"`
	Status           model.ProjectStatus `json:"status"`
	Discipline       string              `json:"discipline"`
	RoleTitle        string              `json:"role_title"`
	Company          string              `json:"company"`
	Image            *string             `json:"image"`
	Responsibilities string              `json:"responsibilities"`
	RefereeName      *string             `json:"referee_name"`
	Milestones       []MilestoneInput    `json:"milestones"`
	Outcomes         []OutcomeInput      `json:"outcomes"`
}

// ProjectPatch updates a project. Every field is either set (non-nil) or
// explicitly absent; nothing is inferred from zero values. Milestones and
// Outcomes, when present, replace the existing rows wholesale.
type ProjectPatch struct {
	Name             *string              `json:"name"`
	Description      *string              `json:"description"`
	StartDate        *time.Time           `json:"start_date"`
	EndDate          *time.Time           `json:"end_date"`
	Status           *model.ProjectStatus `json:"status"`
	Discipline       *string              `json:"discipline"`
	RoleTitle        *string              `json:"role_title"`
	Company          *string              `json:"company"`
	Image            *string              `json:"image"`
	Responsibilities *string              `json:"responsibilities"`
	RefereeName      *string              `json:"referee_name"`
	Milestones       *[]MilestoneInput    `json:"milestones"`
	Outcomes         *[]OutcomeInput      `json:"outcomes"`
}

// Create stores a new project for the user. Projects must attach to an
// organization; users without one get a default personal organization
// created on the spot.
func (s *ProjectService) Create(ctx context.Context, userID uuid.UUID, input ProjectInput) (*model.Project, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	outcomes, err := buildOutcomes(input.Outcomes)
	if err != nil {
		return nil, err
	}

	org, err := s.resolveOrganization(ctx, userID)
	if err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = model.ProjectPlanning
	}

	milestones := make([]model.ProjectMilestone, 0, len(input.Milestones))
	for _, m := range input.Milestones {
		milestones = append(milestones, model.ProjectMilestone{
			Title:       m.Title,
			Date:        m.Date,
			Description: m.Description,
		})
	}

	project := &model.Project{
		Name:             input.Name,
		Description:      input.Description,
		StartDate:        input.StartDate,
		EndDate:          input.EndDate,
		Status:           status,
		Discipline:       input.Discipline,
		RoleTitle:        input.RoleTitle,
		Company:          input.Company,
		Image:            input.Image,
		Responsibilities: input.Responsibilities,
		RefereeName:      input.RefereeName,
		UserID:           userID,
		OrganizationID:   org.ID,
		Milestones:       milestones,
		Outcomes:         outcomes,
	}

	if err := s.repo.Create(ctx, project); err != nil {
		return nil, err
	}

	s.dashboards.InvalidateDashboard(ctx, userID)

	return project, nil
}

// Get returns a project owned by the user. Another user's project reads as
// not found rather than forbidden, so existence is not leaked.
func (s *ProjectService) Get(ctx context.Context, projectID, userID uuid.UUID) (*model.Project, error) {
	project, err := s.repo.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.UserID != userID {
		return nil, domain.ErrProjectNotFound
	}
	return project, nil
}

func (s *ProjectService) List(ctx context.Context, userID uuid.UUID) ([]*model.Project, error) {
	return s.repo.FindByUser(ctx, userID)
}

func (s *ProjectService) Update(ctx context.Context, projectID, userID uuid.UUID, patch ProjectPatch) (*model.Project, error) {
	project, err := s.repo.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.UserID != userID {
		return nil, domain.ErrForbidden
	}

	applyProjectPatch(project, patch)

	if err := s.repo.Update(ctx, project); err != nil {
		return nil, err
	}

	if patch.Milestones != nil {
		milestones := make([]model.ProjectMilestone, 0, len(*patch.Milestones))
		for _, m := range *patch.Milestones {
			milestones = append(milestones, model.ProjectMilestone{
				Title:       m.Title,
				Date:        m.Date,
				Description: m.Description,
			})
		}
		if err := s.repo.ReplaceMilestones(ctx, projectID, milestones); err != nil {
			return nil, err
		}
	}

	if patch.Outcomes != nil {
		outcomes, err := buildOutcomes(*patch.Outcomes)
		if err != nil {
			return nil, err
		}
		if err := s.repo.ReplaceOutcomes(ctx, projectID, outcomes); err != nil {
			return nil, err
		}
	}

	s.dashboards.InvalidateDashboard(ctx, userID)

	return s.repo.FindByID(ctx, projectID)
}

// SetOutcome records or overwrites a single outcome response for a project.
func (s *ProjectService) SetOutcome(ctx context.Context, projectID, userID uuid.UUID, input OutcomeInput) error {
	if input.Number < 1 || input.Number > model.OutcomeCount {
		return domain.ErrInvalidOutcome
	}

	project, err := s.repo.FindByID(ctx, projectID)
	if err != nil {
		return err
	}
	if project.UserID != userID {
		return domain.ErrForbidden
	}

	outcome := &model.ProjectOutcome{
		ProjectID:     projectID,
		OutcomeNumber: input.Number,
		Response:      input.Response,
	}

	if err := s.repo.UpsertOutcome(ctx, outcome); err != nil {
		return err
	}

	s.dashboards.InvalidateDashboard(ctx, userID)

	return nil
}

func (s *ProjectService) Delete(ctx context.Context, projectID, userID uuid.UUID) error {
	project, err := s.repo.FindByID(ctx, projectID)
	if err != nil {
		return err
	}
	if project.UserID != userID {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, projectID); err != nil {
		return err
	}

	s.dashboards.InvalidateDashboard(ctx, userID)

	return nil
}

// resolveOrganization returns the user's first organization, creating the
// default personal one when the user belongs to none.
func (s *ProjectService) resolveOrganization(ctx context.Context, userID uuid.UUID) (*model.Organization, error) {
	orgs, err := s.orgRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("finding organizations: %w", err)
	}
	if len(orgs) > 0 {
		return &orgs[0], nil
	}

	org := &model.Organization{
		Name:        defaultOrganizationName,
		CreatedByID: userID,
	}

	if err := s.orgRepo.Create(ctx, org); err != nil {
		return nil, fmt.Errorf("creating default organization: %w", err)
	}

	orgUser := &model.OrganizationUser{
		OrganizationID: org.ID,
		UserID:         userID,
		Role:           "owner",
	}

	if err := s.orgRepo.CreateOrganizationUser(ctx, orgUser); err != nil {
		return nil, fmt.Errorf("creating organization membership: %w", err)
	}

	return org, nil
}

func applyProjectPatch(project *model.Project, patch ProjectPatch) {
	if patch.Name != nil {
		project.Name = *patch.Name
	}
	if patch.Description != nil {
		project.Description = *patch.Description
	}
	if patch.StartDate != nil {
		project.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		project.EndDate = patch.EndDate
	}
	if patch.Status != nil {
		project.Status = *patch.Status
	}
	if patch.Discipline != nil {
		project.Discipline = *patch.Discipline
	}
	if patch.RoleTitle != nil {
		project.RoleTitle = *patch.RoleTitle
	}
	if patch.Company != nil {
		project.Company = *patch.Company
	}
	if patch.Image != nil {
		project.Image = patch.Image
	}
	if patch.Responsibilities != nil {
		project.Responsibilities = *patch.Responsibilities
	}
	if patch.RefereeName != nil {
		project.RefereeName = patch.RefereeName
	}
}

// buildOutcomes validates outcome numbers and rejects duplicates before
// anything reaches the database.
func buildOutcomes(inputs []OutcomeInput) ([]model.ProjectOutcome, error) {
	seen := make(map[int]struct{}, len(inputs))
	outcomes := make([]model.ProjectOutcome, 0, len(inputs))

	for _, input := range inputs {
		if input.Number < 1 || input.Number > model.OutcomeCount {
			return nil, domain.ErrInvalidOutcome
		}
		if _, dup := seen[input.Number]; dup {
			return nil, domain.ErrDuplicateOutcome
		}
		seen[input.Number] = struct{}{}

		outcomes = append(outcomes, model.ProjectOutcome{
			OutcomeNumber: input.Number,
			Response:      input.Response,
		})
	}

	return outcomes, nil
}
