// internal/service/dashboard.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/emateapp/emate/internal/domain"
	"github.com/emateapp/emate/internal/model"
	"github.com/emateapp/emate/internal/repository"
	"github.com/google/uuid"
)

const (
	recentProjectLimit = 3
	recentRefereeLimit = 3

	// experienceBaselineMonths is the experience total treated as 100%.
	experienceBaselineMonths = 36

	firstVisitWindow = time.Hour

	dashboardCacheTTL = 30 * time.Second
)

type DashboardService struct {
	projects repository.ProjectRepositoryIface
	referees repository.RefereeRepositoryIface
	users    repository.UserRepositoryIface
	cache    *CacheService
}

func NewDashboardService(
	projects repository.ProjectRepositoryIface,
	referees repository.RefereeRepositoryIface,
	users repository.UserRepositoryIface,
	cache *CacheService,
) *DashboardService {
	return &DashboardService{
		projects: projects,
		referees: referees,
		users:    users,
		cache:    cache,
	}
}

type OutcomeSummary struct {
	Completed  int `json:"completed"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

type ProjectStats struct {
	Count      int64  `json:"count"`
	Duration   string `json:"duration"`
	Percentage int    `json:"percentage"`
}

type RecentProject struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	DateRange  string    `json:"date_range"`
	Discipline string    `json:"discipline"`
	Outcomes   []int     `json:"outcomes"`
}

type DashboardSummary struct {
	Ecsa           OutcomeSummary   `json:"ecsa"`
	Projects       ProjectStats     `json:"projects"`
	RecentProjects []RecentProject  `json:"recent_projects"`
	Referees       []*model.Referee `json:"referees"`
	IsFirstVisit   bool             `json:"is_first_visit"`
}

// ComputeDashboard assembles the landing-page payload for a user. Each
// sub-fetch is individually fault-isolated: a failed lookup degrades to an
// empty or zero default instead of failing the whole response.
//
// Outcome coverage is computed over the recent projects shown, not the
// user's full history.
func (s *DashboardService) ComputeDashboard(ctx context.Context, userID uuid.UUID) (*DashboardSummary, error) {
	cacheKey := dashboardCacheKey(userID)

	if s.cache != nil {
		var cached DashboardSummary
		if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	now := time.Now()

	recent, err := s.projects.FindRecentByUser(ctx, userID, recentProjectLimit)
	if err != nil {
		slog.WarnContext(ctx, "dashboard: recent projects lookup failed", "error", err, "user_id", userID)
		recent = nil
	}

	count, err := s.projects.CountByUser(ctx, userID)
	if err != nil {
		slog.WarnContext(ctx, "dashboard: project count failed", "error", err, "user_id", userID)
		count = 0
	}

	referees, err := s.referees.FindRecentByUser(ctx, userID, recentRefereeLimit)
	if err != nil {
		slog.WarnContext(ctx, "dashboard: referees lookup failed", "error", err, "user_id", userID)
		referees = nil
	}

	isFirstVisit := false
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			slog.WarnContext(ctx, "dashboard: user lookup failed", "error", err, "user_id", userID)
		}
	} else {
		isFirstVisit = now.Sub(user.CreatedAt) < firstVisitWindow
	}

	summary, err := buildSummary(recent, count, referees, isFirstVisit, now)
	if err != nil {
		return nil, fmt.Errorf("building dashboard summary: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, summary); err != nil {
			slog.WarnContext(ctx, "dashboard: cache write failed", "error", err)
		}
	}

	return summary, nil
}

// InvalidateDashboard drops the cached payload for a user. Write paths call
// this so the dashboard never serves data older than its TTL after an edit.
func (s *DashboardService) InvalidateDashboard(ctx context.Context, userID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, dashboardCacheKey(userID)); err != nil {
		slog.WarnContext(ctx, "dashboard: cache invalidation failed", "error", err)
	}
}

func dashboardCacheKey(userID uuid.UUID) string {
	return fmt.Sprintf("dashboard:%s", userID)
}

func buildSummary(recent []*model.Project, count int64, referees []*model.Referee, isFirstVisit bool, now time.Time) (*DashboardSummary, error) {
	unique := make(map[int]struct{})
	totalMonths := 0
	recentProjects := make([]RecentProject, 0, len(recent))

	for _, project := range recent {
		if project == nil {
			return nil, fmt.Errorf("nil project in recent set")
		}

		outcomes := make([]int, 0, len(project.Outcomes))
		for _, outcome := range project.Outcomes {
			unique[outcome.OutcomeNumber] = struct{}{}
			outcomes = append(outcomes, outcome.OutcomeNumber)
		}

		end := now
		if project.EndDate != nil {
			end = *project.EndDate
		}
		totalMonths += ProjectDurationInMonths(project.StartDate, end)

		recentProjects = append(recentProjects, RecentProject{
			ID:         project.ID,
			Title:      project.Name,
			DateRange:  formatDateRange(project.StartDate, project.EndDate),
			Discipline: project.Discipline,
			Outcomes:   outcomes,
		})
	}

	if referees == nil {
		referees = []*model.Referee{}
	}

	return &DashboardSummary{
		Ecsa: OutcomeSummary{
			Completed:  len(unique),
			Total:      model.OutcomeCount,
			Percentage: OutcomePercentage(len(unique)),
		},
		Projects: ProjectStats{
			Count:      count,
			Duration:   FormatDuration(totalMonths),
			Percentage: ExperiencePercentage(totalMonths),
		},
		RecentProjects: recentProjects,
		Referees:       referees,
		IsFirstVisit:   isFirstVisit,
	}, nil
}

// ProjectDurationInMonths returns the whole-month span between two dates,
// clamped at zero. Days are ignored: Jan 15 to Sep 30 is 8 months.
func ProjectDurationInMonths(start, end time.Time) int {
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if months < 0 {
		return 0
	}
	return months
}

// OutcomePercentage converts an outcome count into a rounded percentage of
// the full outcome taxonomy.
func OutcomePercentage(completed int) int {
	return int(math.Round(float64(completed) / float64(model.OutcomeCount) * 100))
}

// ExperiencePercentage converts total experience months into a percentage of
// the baseline, capped at 100.
func ExperiencePercentage(months int) int {
	pct := int(math.Round(float64(months) / float64(experienceBaselineMonths) * 100))
	if pct > 100 {
		return 100
	}
	return pct
}

// FormatDuration renders a month total as "N years M months", dropping empty
// parts. Zero months renders as "0 months".
func FormatDuration(totalMonths int) string {
	years := totalMonths / 12
	months := totalMonths % 12

	switch {
	case years == 0:
		return fmt.Sprintf("%d %s", months, plural("month", months))
	case months == 0:
		return fmt.Sprintf("%d %s", years, plural("year", years))
	default:
		return fmt.Sprintf("%d %s %d %s", years, plural("year", years), months, plural("month", months))
	}
}

func plural(unit string, n int) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}

func formatDateRange(start time.Time, end *time.Time) string {
	const layout = "Jan 2006"
	if end == nil {
		return fmt.Sprintf("%s - Present", start.Format(layout))
	}
	return fmt.Sprintf("%s - %s", start.Format(layout), end.Format(layout))
}
