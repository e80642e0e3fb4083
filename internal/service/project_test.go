package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/emateapp/emate/internal/domain"
	"github.com/emateapp/emate/internal/mocks"
	"github.com/emateapp/emate/internal/model"
	"github.com/emateapp/emate/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// dashboards with no cache attached; invalidation becomes a no-op.
func noCacheDashboards() *service.DashboardService {
	return service.NewDashboardService(nil, nil, nil, nil)
}

func strPtr(s string) *string { return &s }

func TestProjectCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	orgID := uuid.New()
	start := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	t.Run("attaches to existing organization", func(t *testing.T) {
		projectRepo := mocks.NewMockProjectRepositoryIface(ctrl)
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)

		orgRepo.EXPECT().FindByUser(gomock.Any(), userID).
			Return([]model.Organization{{ID: orgID, Name: "Acme Consulting"}}, nil)
		projectRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p *model.Project) error {
				assert.Equal(t, orgID, p.OrganizationID)
				assert.Equal(t, userID, p.UserID)
				assert.Equal(t, model.ProjectPlanning, p.Status, "status defaults to planning")
				return nil
			})

		svc := service.NewProjectService(projectRepo, orgRepo, noCacheDashboards())

		project, err := svc.Create(context.Background(), userID, service.ProjectInput{
			Name:      "Water treatment works",
			StartDate: start,
		})
		assert.NoError(t, err)
		assert.Equal(t, "Water treatment works", project.Name)
	})

	t.Run("creates default organization on first project", func(t *testing.T) {
		projectRepo := mocks.NewMockProjectRepositoryIface(ctrl)
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)

		gomock.InOrder(
			orgRepo.EXPECT().FindByUser(gomock.Any(), userID).Return(nil, nil),
			orgRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, org *model.Organization) error {
					assert.Equal(t, "Personal", org.Name)
					org.ID = orgID
					return nil
				}),
			orgRepo.EXPECT().CreateOrganizationUser(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, ou *model.OrganizationUser) error {
					assert.Equal(t, orgID, ou.OrganizationID)
					assert.Equal(t, "owner", ou.Role)
					return nil
				}),
			projectRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil),
		)

		svc := service.NewProjectService(projectRepo, orgRepo, noCacheDashboards())

		_, err := svc.Create(context.Background(), userID, service.ProjectInput{
			Name:      "First project",
			StartDate: start,
		})
		assert.NoError(t, err)
	})

	t.Run("missing name is invalid", func(t *testing.T) {
		projectRepo := mocks.NewMockProjectRepositoryIface(ctrl)
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)

		svc := service.NewProjectService(projectRepo, orgRepo, noCacheDashboards())

		_, err := svc.Create(context.Background(), userID, service.ProjectInput{StartDate: start})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("out-of-range outcome is rejected", func(t *testing.T) {
		projectRepo := mocks.NewMockProjectRepositoryIface(ctrl)
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)

		svc := service.NewProjectService(projectRepo, orgRepo, noCacheDashboards())

		_, err := svc.Create(context.Background(), userID, service.ProjectInput{
			Name:      "Bad outcomes",
			StartDate: start,
			Outcomes:  []service.OutcomeInput{{Number: 12}},
		})
		assert.ErrorIs(t, err, domain.ErrInvalidOutcome)
	})

	t.Run("duplicate outcome numbers are rejected", func(t *testing.T) {
		projectRepo := mocks.NewMockProjectRepositoryIface(ctrl)
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)

		svc := service.NewProjectService(projectRepo, orgRepo, noCacheDashboards())

		_, err := svc.Create(context.Background(), userID, service.ProjectInput{
			Name:      "Duplicate outcomes",
			StartDate: start,
			Outcomes: []service.OutcomeInput{
				{Number: 4, Response: strPtr("first")},
				{Number: 4, Response: strPtr("second")},
			},
		})
		assert.ErrorIs(t, err, domain.ErrDuplicateOutcome)
	})
}

func TestProjectOwnership(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	strangerID := uuid.New()
	projectID := uuid.New()
	project := &model.Project{ID: projectID, UserID: ownerID, Name: "Owned"}

	t.Run("cross-user read is not found", func(t *testing.T) {
		projectRepo := mocks.NewMockProjectRepositoryIface(ctrl)
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)

		projectRepo.EXPECT().FindByID(gomock.Any(), projectID).Return(project, nil)

		svc := service.NewProjectService(projectRepo, orgRepo, noCacheDashboards())

		_, err := svc.Get(context.Background(), projectID, strangerID)
		assert.ErrorIs(t, err, domain.ErrProjectNotFound, "existence is not leaked")
	})

	t.Run("cross-user update is forbidden", func(t *testing.T) {
		projectRepo := mocks.NewMockProjectRepositoryIface(ctrl)
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)

		projectRepo.EXPECT().FindByID(gomock.Any(), projectID).Return(project, nil)

		svc := service.NewProjectService(projectRepo, orgRepo, noCacheDashboards())

		_, err := svc.Update(context.Background(), projectID, strangerID, service.ProjectPatch{Name: strPtr("Taken over")})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestSetOutcome(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	projectID := uuid.New()
	project := &model.Project{ID: projectID, UserID: userID}

	t.Run("upserts a response", func(t *testing.T) {
		projectRepo := mocks.NewMockProjectRepositoryIface(ctrl)
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)

		projectRepo.EXPECT().FindByID(gomock.Any(), projectID).Return(project, nil)
		projectRepo.EXPECT().UpsertOutcome(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o *model.ProjectOutcome) error {
				assert.Equal(t, projectID, o.ProjectID)
				assert.Equal(t, 7, o.OutcomeNumber)
				return nil
			})

		svc := service.NewProjectService(projectRepo, orgRepo, noCacheDashboards())

		err := svc.SetOutcome(context.Background(), projectID, userID, service.OutcomeInput{
			Number:   7,
			Response: strPtr("Managed the commissioning phase."),
		})
		assert.NoError(t, err)
	})

	t.Run("rejects numbers outside the taxonomy", func(t *testing.T) {
		projectRepo := mocks.NewMockProjectRepositoryIface(ctrl)
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)

		svc := service.NewProjectService(projectRepo, orgRepo, noCacheDashboards())

		assert.ErrorIs(t, svc.SetOutcome(context.Background(), projectID, userID, service.OutcomeInput{Number: 0}), domain.ErrInvalidOutcome)
		assert.ErrorIs(t, svc.SetOutcome(context.Background(), projectID, userID, service.OutcomeInput{Number: 12}), domain.ErrInvalidOutcome)
	})
}
