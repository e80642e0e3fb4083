// internal/service/prompt.go
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/emateapp/emate/internal/model"
	"github.com/emateapp/emate/internal/repository"
)

// PromptService serves the static AI prompt templates consumed by the
// external drafting workflow. Rendering is plain {{token}} substitution; no
// model calls happen here.
type PromptService struct {
	repo repository.PromptRepositoryIface
}

func NewPromptService(repo repository.PromptRepositoryIface) *PromptService {
	return &PromptService{repo: repo}
}

func (s *PromptService) List(ctx context.Context) ([]*model.AIPromptTemplate, error) {
	return s.repo.FindAll(ctx)
}

// Render loads a template by name and substitutes the given variables. A
// placeholder with no matching variable is an error; unused variables are
// ignored.
func (s *PromptService) Render(ctx context.Context, name string, vars map[string]string) (string, error) {
	tmpl, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return "", err
	}
	return RenderPrompt(tmpl.Template, vars)
}

// RenderPrompt substitutes {{token}} placeholders in a template string.
func RenderPrompt(template string, vars map[string]string) (string, error) {
	var out strings.Builder
	rest := template

	// Single left-to-right scan over the template. Substituted values are
	// written straight through, so a value containing "{{" is never
	// re-interpreted as a placeholder.
	for {
		start := strings.Index(rest, "{{")
		if start == -1 {
			out.WriteString(rest)
			return out.String(), nil
		}
		out.WriteString(rest[:start])
		rest = rest[start:]

		end := strings.Index(rest, "}}")
		if end == -1 {
			return "", fmt.Errorf("unterminated placeholder %q", rest)
		}

		name := rest[2:end]
		value, ok := vars[name]
		if !ok {
			return "", fmt.Errorf("unresolved placeholder {{%s}}", name)
		}
		out.WriteString(value)
		rest = rest[end+2:]
	}
}
