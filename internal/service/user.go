// internal/service/user.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/emateapp/emate/internal/config"
	"github.com/emateapp/emate/internal/domain"
	"github.com/emateapp/emate/internal/email"
	"github.com/emateapp/emate/internal/email/mailer"
	"github.com/emateapp/emate/internal/model"
	"github.com/emateapp/emate/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type UserService struct {
	repo         repository.UserRepositoryIface
	orgRepo      repository.OrganizationRepositoryIface
	projectRepo  repository.ProjectRepositoryIface
	refereeRepo  repository.RefereeRepositoryIface
	dashboards   *DashboardService
	emailService *email.Service
	config       *config.Config
	validate     *validator.Validate
}

func NewUserService(
	repo repository.UserRepositoryIface,
	orgRepo repository.OrganizationRepositoryIface,
	projectRepo repository.ProjectRepositoryIface,
	refereeRepo repository.RefereeRepositoryIface,
	dashboards *DashboardService,
	emailService *email.Service,
	config *config.Config,
) *UserService {
	return &UserService{
		repo:         repo,
		orgRepo:      orgRepo,
		projectRepo:  projectRepo,
		refereeRepo:  refereeRepo,
		dashboards:   dashboards,
		emailService: emailService,
		config:       config,
		validate:     validator.New(),
	}
}

type InitializeOutput struct {
	User  *model.User `json:"user"`
	IsNew bool        `json:"isNew"`
}

// Initialize provisions first-signup state for a user: the default personal
// organization plus a sample project and referee to land on. Calling it again
// is a no-op reported with IsNew=false.
func (s *UserService) Initialize(ctx context.Context, userID uuid.UUID) (*InitializeOutput, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	orgs, err := s.orgRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("finding organizations: %w", err)
	}
	if len(orgs) > 0 {
		return &InitializeOutput{User: user, IsNew: false}, nil
	}

	org := &model.Organization{
		Name:        defaultOrganizationName,
		CreatedByID: user.ID,
	}
	if err := s.orgRepo.Create(ctx, org); err != nil {
		return nil, fmt.Errorf("creating organization: %w", err)
	}

	orgUser := &model.OrganizationUser{
		OrganizationID: org.ID,
		UserID:         user.ID,
		Role:           "owner",
	}
	if err := s.orgRepo.CreateOrganizationUser(ctx, orgUser); err != nil {
		return nil, fmt.Errorf("creating organization membership: %w", err)
	}

	if err := s.createSampleData(ctx, user, org); err != nil {
		return nil, err
	}

	// The client may have fetched an empty dashboard before onboarding.
	s.dashboards.InvalidateDashboard(ctx, user.ID)

	if s.emailService != nil {
		if err := mailer.SendWelcomeEmail(s.emailService, user.Email, user.Name); err != nil {
			// Onboarding must not fail on a mail hiccup.
			slog.WarnContext(ctx, "welcome email failed", "error", err, "user_id", user.ID)
		}
	}

	return &InitializeOutput{User: user, IsNew: true}, nil
}

// createSampleData seeds one example project and referee so the dashboard
// is not empty on first visit.
func (s *UserService) createSampleData(ctx context.Context, user *model.User, org *model.Organization) error {
	start := time.Now().AddDate(0, -6, 0)
	response := "Example response describing how the outcome was demonstrated."

	project := &model.Project{
		Name:             "Example Project",
		Description:      "A sample project showing how to track your engineering experience.",
		StartDate:        start,
		Status:           model.ProjectInProgress,
		Discipline:       "Civil",
		RoleTitle:        "Engineer in Training",
		Company:          "Example Engineering",
		Responsibilities: "Design reviews, site inspections, technical reporting.",
		UserID:           user.ID,
		OrganizationID:   org.ID,
		Milestones: []model.ProjectMilestone{
			{Title: "Project kickoff", Date: start, Description: "Initial scoping and team setup."},
		},
		Outcomes: []model.ProjectOutcome{
			{OutcomeNumber: 1, Response: &response},
		},
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return fmt.Errorf("creating sample project: %w", err)
	}

	referee := &model.Referee{
		Name:    "Jordan Smith",
		Title:   "Principal Engineer",
		Company: "Example Engineering",
		Email:   "referee@example.com",
		UserID:  user.ID,
	}

	if err := s.refereeRepo.Create(ctx, referee); err != nil {
		return fmt.Errorf("creating sample referee: %w", err)
	}

	return nil
}

// ProfilePatch updates engineering-profile metadata. Nil fields are left
// untouched.
type ProfilePatch struct {
	Name               *string `json:"name"`
	Discipline         *string `json:"discipline"`
	ExperienceBracket  *string `json:"experience_bracket"`
	HasMentor          *bool   `json:"has_mentor"`
	HoursPerWeek       *int    `json:"hours_per_week"`
	CompletionTimeline *string `json:"completion_timeline"`
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, patch ProfilePatch) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Discipline != nil {
		user.Discipline = patch.Discipline
	}
	if patch.ExperienceBracket != nil {
		user.ExperienceBracket = patch.ExperienceBracket
	}
	if patch.HasMentor != nil {
		user.HasMentor = *patch.HasMentor
	}
	if patch.HoursPerWeek != nil {
		user.HoursPerWeek = patch.HoursPerWeek
	}
	if patch.CompletionTimeline != nil {
		user.CompletionTimeline = patch.CompletionTimeline
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserService) UpdateProfileImage(ctx context.Context, userID uuid.UUID, image string) (*model.User, error) {
	if image == "" {
		return nil, fmt.Errorf("%w: profileImage is required", domain.ErrInvalidInput)
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.ProfileImage = &image
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// ApplySubscription mirrors a payment-gateway event onto the user row. The
// gateway identifies customers by email.
func (s *UserService) ApplySubscription(ctx context.Context, customerEmail string, status model.SubscriptionStatus, expires *time.Time) error {
	user, err := s.repo.FindByEmail(ctx, customerEmail)
	if err != nil {
		return err
	}

	user.SubscriptionStatus = status
	user.SubscriptionExpires = expires

	if err := s.repo.Update(ctx, user); err != nil {
		return fmt.Errorf("updating subscription: %w", err)
	}

	return nil
}

func (s *UserService) Get(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	return s.repo.FindByID(ctx, userID)
}
