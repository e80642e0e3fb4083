package service_test

import (
	"context"
	"testing"

	"github.com/emateapp/emate/internal/domain"
	"github.com/emateapp/emate/internal/mocks"
	"github.com/emateapp/emate/internal/model"
	"github.com/emateapp/emate/internal/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRenderPrompt(t *testing.T) {
	t.Run("substitutes all placeholders", func(t *testing.T) {
		out, err := service.RenderPrompt(
			"Project {{name}} ran from {{range}}.",
			map[string]string{"name": "Bridge rehab", "range": "Jan 2024 - Sep 2024"},
		)
		assert.NoError(t, err)
		assert.Equal(t, "Project Bridge rehab ran from Jan 2024 - Sep 2024.", out)
	})

	t.Run("repeated placeholder is replaced everywhere", func(t *testing.T) {
		out, err := service.RenderPrompt("{{x}} and {{x}}", map[string]string{"x": "once"})
		assert.NoError(t, err)
		assert.Equal(t, "once and once", out)
	})

	t.Run("unused variables are ignored", func(t *testing.T) {
		out, err := service.RenderPrompt("plain text", map[string]string{"extra": "unused"})
		assert.NoError(t, err)
		assert.Equal(t, "plain text", out)
	})

	t.Run("unresolved placeholder is an error", func(t *testing.T) {
		_, err := service.RenderPrompt("Hello {{name}}", nil)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "{{name}}")
	})

	t.Run("unterminated placeholder is an error", func(t *testing.T) {
		_, err := service.RenderPrompt("Hello {{name", map[string]string{"name": "x"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unterminated")
	})

	t.Run("braces in values are not re-interpreted", func(t *testing.T) {
		out, err := service.RenderPrompt(
			"Render {{snippet}} verbatim",
			map[string]string{"snippet": "{{not a placeholder}}"},
		)
		assert.NoError(t, err)
		assert.Equal(t, "Render {{not a placeholder}} verbatim", out)
	})
}

func TestPromptRender(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("renders a stored template", func(t *testing.T) {
		repo := mocks.NewMockPromptRepositoryIface(ctrl)
		repo.EXPECT().FindByName(gomock.Any(), "report_summary").Return(&model.AIPromptTemplate{
			Name:     "report_summary",
			Template: "Summarise: {{report_content}}",
		}, nil)

		svc := service.NewPromptService(repo)

		out, err := svc.Render(context.Background(), "report_summary", map[string]string{"report_content": "body"})
		assert.NoError(t, err)
		assert.Equal(t, "Summarise: body", out)
	})

	t.Run("unknown template", func(t *testing.T) {
		repo := mocks.NewMockPromptRepositoryIface(ctrl)
		repo.EXPECT().FindByName(gomock.Any(), "missing").Return(nil, domain.ErrTemplateNotFound)

		svc := service.NewPromptService(repo)

		_, err := svc.Render(context.Background(), "missing", nil)
		assert.ErrorIs(t, err, domain.ErrTemplateNotFound)
	})
}
