// internal/service/report.go
package service

import (
	"context"
	"fmt"

	"github.com/emateapp/emate/internal/domain"
	"github.com/emateapp/emate/internal/model"
	"github.com/emateapp/emate/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ReportAction is a named transition in the report workflow.
type ReportAction string

const (
	ActionSubmit  ReportAction = "submit"
	ActionApprove ReportAction = "approve"
	ActionReject  ReportAction = "reject"
	ActionPublish ReportAction = "publish"
)

// reportTransitions is the full workflow. Anything not listed here is an
// invalid transition; published and rejected are terminal.
var reportTransitions = map[model.ReportStatus]map[ReportAction]model.ReportStatus{
	model.ReportDraft: {
		ActionSubmit: model.ReportSubmitted,
	},
	model.ReportSubmitted: {
		ActionApprove: model.ReportApproved,
		ActionReject:  model.ReportRejected,
	},
	model.ReportApproved: {
		ActionPublish: model.ReportPublished,
	},
}

// NextStatus resolves a workflow action against the current status.
func NextStatus(current model.ReportStatus, action ReportAction) (model.ReportStatus, error) {
	next, ok := reportTransitions[current][action]
	if !ok {
		return "", fmt.Errorf("%w: %s from %s", domain.ErrInvalidStateTransition, action, current)
	}
	return next, nil
}

type ReportService struct {
	repo     repository.ReportRepositoryIface
	validate *validator.Validate
}

func NewReportService(repo repository.ReportRepositoryIface) *ReportService {
	return &ReportService{
		repo:     repo,
		validate: validator.New(),
	}
}

type CreateReportInput struct {
	Title       string      `json:"title" validate:"required"`
	Content     string      `json:"content"`
	ProjectIDs  []uuid.UUID `json:"project_ids"`
	AIGenerated bool        `json:"ai_generated"`
	Tags        []string    `json:"tags"`
}

// ReportPatch updates title and content. Fields are set or explicitly
// absent, never inferred from zero values.
type ReportPatch struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

func (s *ReportService) Create(ctx context.Context, authorID uuid.UUID, input CreateReportInput) (*model.Report, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	report := &model.Report{
		Title:       input.Title,
		Content:     input.Content,
		Status:      model.ReportDraft,
		AIGenerated: input.AIGenerated,
		AuthorID:    authorID,
	}

	if err := s.repo.Create(ctx, report, input.ProjectIDs); err != nil {
		return nil, err
	}

	for _, name := range input.Tags {
		if _, err := s.repo.LinkTag(ctx, report.ID, name); err != nil {
			return nil, err
		}
	}

	return s.repo.FindByID(ctx, report.ID)
}

// Get returns a report owned by the user; another author's report reads as
// not found.
func (s *ReportService) Get(ctx context.Context, reportID, userID uuid.UUID) (*model.Report, error) {
	report, err := s.repo.FindByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if report.AuthorID != userID {
		return nil, domain.ErrReportNotFound
	}
	return report, nil
}

func (s *ReportService) List(ctx context.Context, userID uuid.UUID) ([]*model.Report, error) {
	return s.repo.FindByAuthor(ctx, userID)
}

// Update patches a report owned by the user. When the content changes, the
// prior draft is snapshotted into history first.
func (s *ReportService) Update(ctx context.Context, reportID, userID uuid.UUID, patch ReportPatch) (*model.Report, error) {
	report, err := s.repo.FindByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if report.AuthorID != userID {
		return nil, domain.ErrForbidden
	}

	if patch.Content != nil && *patch.Content != report.Content {
		entry := &model.ReportHistory{
			ReportID: report.ID,
			Content:  report.Content,
		}
		if err := s.repo.AppendHistory(ctx, entry); err != nil {
			return nil, err
		}
		report.Content = *patch.Content
	}

	if patch.Title != nil {
		report.Title = *patch.Title
	}

	if err := s.repo.Update(ctx, report); err != nil {
		return nil, err
	}

	return s.repo.FindByID(ctx, reportID)
}

// Transition applies a workflow action to a report owned by the user.
func (s *ReportService) Transition(ctx context.Context, reportID, userID uuid.UUID, action ReportAction) (*model.Report, error) {
	report, err := s.repo.FindByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if report.AuthorID != userID {
		return nil, domain.ErrForbidden
	}

	next, err := NextStatus(report.Status, action)
	if err != nil {
		return nil, err
	}

	report.Status = next
	if err := s.repo.Update(ctx, report); err != nil {
		return nil, err
	}

	return report, nil
}

// AppendHistory records a prior-draft snapshot for a report owned by the
// user. Entries are append-only.
func (s *ReportService) AppendHistory(ctx context.Context, reportID, userID uuid.UUID, content string) (*model.ReportHistory, error) {
	report, err := s.repo.FindByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if report.AuthorID != userID {
		return nil, domain.ErrForbidden
	}

	entry := &model.ReportHistory{
		ReportID: report.ID,
		Content:  content,
	}

	if err := s.repo.AppendHistory(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// AddFeedback records a reviewer comment. Any authenticated user may
// comment; the entry is tied to the commenting user, not the author.
func (s *ReportService) AddFeedback(ctx context.Context, reportID, userID uuid.UUID, content string) (*model.ReportFeedback, error) {
	if content == "" {
		return nil, domain.ErrInvalidInput
	}

	if _, err := s.repo.FindByID(ctx, reportID); err != nil {
		return nil, err
	}

	entry := &model.ReportFeedback{
		ReportID: reportID,
		UserID:   userID,
		Content:  content,
	}

	if err := s.repo.AddFeedback(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// LinkTags associates tag names with a report owned by the user. Linking an
// already-linked tag is a no-op, not an error.
func (s *ReportService) LinkTags(ctx context.Context, reportID, userID uuid.UUID, names []string) ([]*model.Tag, error) {
	report, err := s.repo.FindByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if report.AuthorID != userID {
		return nil, domain.ErrForbidden
	}

	tags := make([]*model.Tag, 0, len(names))
	for _, name := range names {
		tag, err := s.repo.LinkTag(ctx, reportID, name)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}

	return tags, nil
}

func (s *ReportService) Delete(ctx context.Context, reportID, userID uuid.UUID) error {
	report, err := s.repo.FindByID(ctx, reportID)
	if err != nil {
		return err
	}
	if report.AuthorID != userID {
		return domain.ErrForbidden
	}

	return s.repo.Delete(ctx, reportID)
}
