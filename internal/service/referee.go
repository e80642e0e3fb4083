// internal/service/referee.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/emateapp/emate/internal/domain"
	"github.com/emateapp/emate/internal/email"
	"github.com/emateapp/emate/internal/email/mailer"
	"github.com/emateapp/emate/internal/model"
	"github.com/emateapp/emate/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type RefereeService struct {
	repo        repository.RefereeRepositoryIface
	projectRepo repository.ProjectRepositoryIface
	emails      *email.Service
	dashboards  *DashboardService
	validate    *validator.Validate
}

func NewRefereeService(
	repo repository.RefereeRepositoryIface,
	projectRepo repository.ProjectRepositoryIface,
	emails *email.Service,
	dashboards *DashboardService,
) *RefereeService {
	return &RefereeService{
		repo:        repo,
		projectRepo: projectRepo,
		emails:      emails,
		dashboards:  dashboards,
		validate:    validator.New(),
	}
}

// CreateRefereeInput accepts either a combined Name or separate first/last
// parts; the service normalizes to one stored string.
type CreateRefereeInput struct {
	Name      string  `json:"name"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Title     string  `json:"title"`
	Company   string  `json:"company"`
	Email     string  `json:"email" validate:"required,email"`
	Phone     *string `json:"phone"`
}

type RefereePatch struct {
	Name    *string `json:"name"`
	Title   *string `json:"title"`
	Company *string `json:"company"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
}

func (s *RefereeService) Create(ctx context.Context, userID uuid.UUID, input CreateRefereeInput) (*model.Referee, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	name := NormalizeName(input.Name, input.FirstName, input.LastName)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}

	referee := &model.Referee{
		Name:    name,
		Title:   input.Title,
		Company: input.Company,
		Email:   input.Email,
		Phone:   input.Phone,
		UserID:  userID,
	}

	if err := s.repo.Create(ctx, referee); err != nil {
		return nil, err
	}

	s.dashboards.InvalidateDashboard(ctx, userID)

	return referee, nil
}

func (s *RefereeService) List(ctx context.Context, userID uuid.UUID) ([]*model.Referee, error) {
	return s.repo.FindByUser(ctx, userID)
}

func (s *RefereeService) Get(ctx context.Context, refereeID, userID uuid.UUID) (*model.Referee, error) {
	referee, err := s.repo.FindByID(ctx, refereeID)
	if err != nil {
		return nil, err
	}
	if referee.UserID != userID {
		return nil, domain.ErrRefereeNotFound
	}
	return referee, nil
}

func (s *RefereeService) Update(ctx context.Context, refereeID, userID uuid.UUID, patch RefereePatch) (*model.Referee, error) {
	referee, err := s.repo.FindByID(ctx, refereeID)
	if err != nil {
		return nil, err
	}
	if referee.UserID != userID {
		return nil, domain.ErrForbidden
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", domain.ErrInvalidInput)
		}
		referee.Name = name
	}
	if patch.Title != nil {
		referee.Title = *patch.Title
	}
	if patch.Company != nil {
		referee.Company = *patch.Company
	}
	if patch.Email != nil {
		referee.Email = *patch.Email
	}
	if patch.Phone != nil {
		referee.Phone = patch.Phone
	}

	if err := s.repo.Update(ctx, referee); err != nil {
		return nil, err
	}

	s.dashboards.InvalidateDashboard(ctx, userID)

	return referee, nil
}

func (s *RefereeService) Delete(ctx context.Context, refereeID, userID uuid.UUID) error {
	referee, err := s.repo.FindByID(ctx, refereeID)
	if err != nil {
		return err
	}
	if referee.UserID != userID {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, refereeID); err != nil {
		return err
	}

	s.dashboards.InvalidateDashboard(ctx, userID)

	return nil
}

// ReplaceProjects replaces the full set of projects a referee vouches for.
// Every project in the new set must belong to the same user as the referee.
// A notification email to the referee is best-effort.
func (s *RefereeService) ReplaceProjects(ctx context.Context, refereeID, userID uuid.UUID, projectIDs []uuid.UUID) error {
	referee, err := s.repo.FindByID(ctx, refereeID)
	if err != nil {
		return err
	}
	if referee.UserID != userID {
		return domain.ErrForbidden
	}

	names := make([]string, 0, len(projectIDs))
	for _, projectID := range projectIDs {
		project, err := s.projectRepo.FindByID(ctx, projectID)
		if err != nil {
			return err
		}
		if project.UserID != userID {
			return domain.ErrForbidden
		}
		names = append(names, project.Name)
	}

	if err := s.repo.ReplaceProjects(ctx, refereeID, projectIDs); err != nil {
		return err
	}

	if s.emails != nil && len(names) > 0 {
		firstName, _ := SplitName(referee.Name)
		if err := mailer.SendRefereeRequestEmail(s.emails, referee.Email, firstName, names); err != nil {
			slog.WarnContext(ctx, "referee request email failed", "error", err, "referee_id", refereeID)
		}
	}

	return nil
}

// NormalizeName folds either a combined name or first/last parts into the
// single stored representation.
func NormalizeName(name, firstName, lastName string) string {
	if combined := strings.TrimSpace(name); combined != "" {
		return strings.Join(strings.Fields(combined), " ")
	}
	return strings.TrimSpace(strings.TrimSpace(firstName) + " " + strings.TrimSpace(lastName))
}

// SplitName decomposes a stored name for display: first non-empty token is
// the first name, the remainder the last.
func SplitName(name string) (firstName, lastName string) {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "", ""
	}
	return fields[0], strings.Join(fields[1:], " ")
}
