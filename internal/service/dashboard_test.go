package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/emateapp/emate/internal/mocks"
	"github.com/emateapp/emate/internal/model"
	"github.com/emateapp/emate/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestProjectDurationInMonths(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{
			name:  "full year",
			start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			want:  12,
		},
		{
			name:  "days ignored",
			start: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2024, 9, 30, 0, 0, 0, 0, time.UTC),
			want:  8,
		},
		{
			name:  "same month",
			start: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2024, 3, 28, 0, 0, 0, 0, time.UTC),
			want:  0,
		},
		{
			name:  "end before start clamps to zero",
			start: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.ProjectDurationInMonths(tt.start, tt.end))
		})
	}
}

func TestOutcomePercentage(t *testing.T) {
	assert.Equal(t, 0, service.OutcomePercentage(0))
	assert.Equal(t, 27, service.OutcomePercentage(3))
	assert.Equal(t, 45, service.OutcomePercentage(5))
	assert.Equal(t, 100, service.OutcomePercentage(11))
}

func TestExperiencePercentage(t *testing.T) {
	assert.Equal(t, 0, service.ExperiencePercentage(0))
	assert.Equal(t, 33, service.ExperiencePercentage(12))
	assert.Equal(t, 100, service.ExperiencePercentage(36))
	assert.Equal(t, 100, service.ExperiencePercentage(48), "capped at 100")
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0 months", service.FormatDuration(0))
	assert.Equal(t, "1 month", service.FormatDuration(1))
	assert.Equal(t, "7 months", service.FormatDuration(7))
	assert.Equal(t, "1 year", service.FormatDuration(12))
	assert.Equal(t, "2 years", service.FormatDuration(24))
	assert.Equal(t, "1 year 5 months", service.FormatDuration(17))
}

func TestComputeDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	start1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end1 := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
	start2 := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
	end2 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	projects := []*model.Project{
		{
			ID:         uuid.New(),
			Name:       "Bridge rehabilitation",
			StartDate:  start1,
			EndDate:    &end1,
			Discipline: "Civil",
			UserID:     userID,
			Outcomes: []model.ProjectOutcome{
				{OutcomeNumber: 1},
				{OutcomeNumber: 3},
			},
		},
		{
			ID:         uuid.New(),
			Name:       "Pump station upgrade",
			StartDate:  start2,
			EndDate:    &end2,
			Discipline: "Mechanical",
			UserID:     userID,
			Outcomes: []model.ProjectOutcome{
				{OutcomeNumber: 3},
				{OutcomeNumber: 5},
			},
		},
	}

	referees := []*model.Referee{
		{ID: uuid.New(), Name: "Jordan Smith", UserID: userID},
	}

	user := &model.User{
		ID:        userID,
		Email:     "engineer@example.com",
		CreatedAt: time.Now().Add(-48 * time.Hour),
	}

	t.Run("aggregates recent projects", func(t *testing.T) {
		projectRepo := mocks.NewMockProjectRepositoryIface(ctrl)
		refereeRepo := mocks.NewMockRefereeRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)

		projectRepo.EXPECT().FindRecentByUser(gomock.Any(), userID, 3).Return(projects, nil)
		projectRepo.EXPECT().CountByUser(gomock.Any(), userID).Return(int64(2), nil)
		refereeRepo.EXPECT().FindRecentByUser(gomock.Any(), userID, 3).Return(referees, nil)
		userRepo.EXPECT().FindByID(gomock.Any(), userID).Return(user, nil)

		svc := service.NewDashboardService(projectRepo, refereeRepo, userRepo, nil)

		summary, err := svc.ComputeDashboard(context.Background(), userID)
		assert.NoError(t, err)
		assert.NotNil(t, summary)

		// Outcomes {1,3,5} across both projects; 3 counts once.
		assert.Equal(t, 3, summary.Ecsa.Completed)
		assert.Equal(t, 11, summary.Ecsa.Total)
		assert.Equal(t, 27, summary.Ecsa.Percentage)

		// 8 + 4 months of experience.
		assert.Equal(t, int64(2), summary.Projects.Count)
		assert.Equal(t, "1 year", summary.Projects.Duration)
		assert.Equal(t, 33, summary.Projects.Percentage)

		assert.Len(t, summary.RecentProjects, 2)
		assert.Equal(t, "Jan 2024 - Sep 2024", summary.RecentProjects[0].DateRange)
		assert.ElementsMatch(t, []int{1, 3}, summary.RecentProjects[0].Outcomes)

		assert.Len(t, summary.Referees, 1)
		assert.False(t, summary.IsFirstVisit)
	})

	t.Run("first visit within an hour of signup", func(t *testing.T) {
		projectRepo := mocks.NewMockProjectRepositoryIface(ctrl)
		refereeRepo := mocks.NewMockRefereeRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)

		fresh := &model.User{ID: userID, CreatedAt: time.Now().Add(-10 * time.Minute)}

		projectRepo.EXPECT().FindRecentByUser(gomock.Any(), userID, 3).Return(nil, nil)
		projectRepo.EXPECT().CountByUser(gomock.Any(), userID).Return(int64(0), nil)
		refereeRepo.EXPECT().FindRecentByUser(gomock.Any(), userID, 3).Return(nil, nil)
		userRepo.EXPECT().FindByID(gomock.Any(), userID).Return(fresh, nil)

		svc := service.NewDashboardService(projectRepo, refereeRepo, userRepo, nil)

		summary, err := svc.ComputeDashboard(context.Background(), userID)
		assert.NoError(t, err)
		assert.True(t, summary.IsFirstVisit)
		assert.Equal(t, "0 months", summary.Projects.Duration)
	})

	t.Run("degrades when a sub-fetch fails", func(t *testing.T) {
		projectRepo := mocks.NewMockProjectRepositoryIface(ctrl)
		refereeRepo := mocks.NewMockRefereeRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)

		boom := errors.New("connection refused")

		projectRepo.EXPECT().FindRecentByUser(gomock.Any(), userID, 3).Return(nil, boom)
		projectRepo.EXPECT().CountByUser(gomock.Any(), userID).Return(int64(0), boom)
		refereeRepo.EXPECT().FindRecentByUser(gomock.Any(), userID, 3).Return(nil, boom)
		userRepo.EXPECT().FindByID(gomock.Any(), userID).Return(user, nil)

		svc := service.NewDashboardService(projectRepo, refereeRepo, userRepo, nil)

		summary, err := svc.ComputeDashboard(context.Background(), userID)
		assert.NoError(t, err, "partial failures degrade, they do not fail the response")
		assert.Equal(t, 0, summary.Ecsa.Completed)
		assert.Equal(t, int64(0), summary.Projects.Count)
		assert.Empty(t, summary.RecentProjects)
		assert.NotNil(t, summary.Referees)
		assert.Empty(t, summary.Referees)
	})
}
