package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/emateapp/emate/internal/config"
	"github.com/emateapp/emate/internal/mocks"
	"github.com/emateapp/emate/internal/model"
	"github.com/emateapp/emate/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestUserInitialize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	user := &model.User{ID: userID, Email: "engineer@example.com", Name: "engineer"}
	cfg := &config.Config{}

	t.Run("first call provisions org and sample data", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		projectRepo := mocks.NewMockProjectRepositoryIface(ctrl)
		refereeRepo := mocks.NewMockRefereeRepositoryIface(ctrl)

		orgID := uuid.New()

		gomock.InOrder(
			userRepo.EXPECT().FindByID(gomock.Any(), userID).Return(user, nil),
			orgRepo.EXPECT().FindByUser(gomock.Any(), userID).Return(nil, nil),
			orgRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, org *model.Organization) error {
					assert.Equal(t, "Personal", org.Name)
					assert.Equal(t, userID, org.CreatedByID)
					org.ID = orgID
					return nil
				}),
			orgRepo.EXPECT().CreateOrganizationUser(gomock.Any(), gomock.Any()).Return(nil),
			projectRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, p *model.Project) error {
					assert.Equal(t, orgID, p.OrganizationID)
					assert.NotEmpty(t, p.Milestones)
					assert.NotEmpty(t, p.Outcomes)
					return nil
				}),
			refereeRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil),
		)

		svc := service.NewUserService(userRepo, orgRepo, projectRepo, refereeRepo, noCacheDashboards(), nil, cfg)

		output, err := svc.Initialize(context.Background(), userID)
		assert.NoError(t, err)
		assert.True(t, output.IsNew)
		assert.Equal(t, user, output.User)
	})

	t.Run("second call is a reported no-op", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		projectRepo := mocks.NewMockProjectRepositoryIface(ctrl)
		refereeRepo := mocks.NewMockRefereeRepositoryIface(ctrl)

		userRepo.EXPECT().FindByID(gomock.Any(), userID).Return(user, nil)
		orgRepo.EXPECT().FindByUser(gomock.Any(), userID).
			Return([]model.Organization{{ID: uuid.New(), Name: "Personal"}}, nil)

		svc := service.NewUserService(userRepo, orgRepo, projectRepo, refereeRepo, noCacheDashboards(), nil, cfg)

		output, err := svc.Initialize(context.Background(), userID)
		assert.NoError(t, err)
		assert.False(t, output.IsNew)
	})
}

func TestUserInitializeRefreshesDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	user := &model.User{ID: userID, Email: "engineer@example.com", Name: "engineer"}

	userRepo := mocks.NewMockUserRepositoryIface(ctrl)
	orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
	projectRepo := mocks.NewMockProjectRepositoryIface(ctrl)
	refereeRepo := mocks.NewMockRefereeRepositoryIface(ctrl)

	cache := service.NewCacheService(service.CacheConfig{
		TTL:         time.Minute,
		CleanupFreq: time.Minute,
	})
	defer cache.Close()
	dashboards := service.NewDashboardService(projectRepo, refereeRepo, userRepo, cache)

	// One dashboard fetch before onboarding, one after. Both must reach the
	// repositories: seeding drops the cached payload.
	projectRepo.EXPECT().FindRecentByUser(gomock.Any(), userID, gomock.Any()).Return(nil, nil).Times(2)
	first := projectRepo.EXPECT().CountByUser(gomock.Any(), userID).Return(int64(0), nil)
	projectRepo.EXPECT().CountByUser(gomock.Any(), userID).Return(int64(1), nil).After(first)
	refereeRepo.EXPECT().FindRecentByUser(gomock.Any(), userID, gomock.Any()).Return(nil, nil).Times(2)
	userRepo.EXPECT().FindByID(gomock.Any(), userID).Return(user, nil).AnyTimes()

	orgRepo.EXPECT().FindByUser(gomock.Any(), userID).Return(nil, nil)
	orgRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	orgRepo.EXPECT().CreateOrganizationUser(gomock.Any(), gomock.Any()).Return(nil)
	projectRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	refereeRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	svc := service.NewUserService(userRepo, orgRepo, projectRepo, refereeRepo, dashboards, nil, &config.Config{})

	ctx := context.Background()
	before, err := dashboards.ComputeDashboard(ctx, userID)
	assert.NoError(t, err)
	assert.EqualValues(t, 0, before.Projects.Count)

	_, err = svc.Initialize(ctx, userID)
	assert.NoError(t, err)

	after, err := dashboards.ComputeDashboard(ctx, userID)
	assert.NoError(t, err)
	assert.EqualValues(t, 1, after.Projects.Count)
}

func TestApplySubscription(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &model.User{ID: uuid.New(), Email: "engineer@example.com", SubscriptionStatus: model.SubscriptionInactive}
	expires := time.Now().AddDate(0, 1, 0)

	userRepo := mocks.NewMockUserRepositoryIface(ctrl)
	userRepo.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)
	userRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u *model.User) error {
			assert.Equal(t, model.SubscriptionActive, u.SubscriptionStatus)
			assert.NotNil(t, u.SubscriptionExpires)
			return nil
		})

	svc := service.NewUserService(userRepo, nil, nil, nil, noCacheDashboards(), nil, &config.Config{})

	err := svc.ApplySubscription(context.Background(), user.Email, model.SubscriptionActive, &expires)
	assert.NoError(t, err)
}

func TestUpdateProfileImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &model.User{ID: uuid.New(), Email: "engineer@example.com"}

	t.Run("stores the image reference", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		userRepo.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)
		userRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		svc := service.NewUserService(userRepo, nil, nil, nil, noCacheDashboards(), nil, &config.Config{})

		updated, err := svc.UpdateProfileImage(context.Background(), user.ID, "https://cdn.example.com/avatar.png")
		assert.NoError(t, err)
		assert.NotNil(t, updated.ProfileImage)
		assert.Equal(t, "https://cdn.example.com/avatar.png", *updated.ProfileImage)
	})

	t.Run("rejects an empty reference", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		svc := service.NewUserService(userRepo, nil, nil, nil, noCacheDashboards(), nil, &config.Config{})

		_, err := svc.UpdateProfileImage(context.Background(), user.ID, "")
		assert.Error(t, err)
	})
}
