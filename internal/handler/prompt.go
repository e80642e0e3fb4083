// internal/handler/prompt.go
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/emateapp/emate/internal/domain"
	"github.com/emateapp/emate/internal/service"
	"github.com/go-chi/chi/v5"
)

type PromptHandler struct {
	service *service.PromptService
}

func NewPromptHandler(service *service.PromptService) *PromptHandler {
	return &PromptHandler{service: service}
}

// ListPrompts returns every stored prompt template
func (h *PromptHandler) ListPrompts(w http.ResponseWriter, r *http.Request) {
	templates, err := h.service.List(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondWithJSON(w, http.StatusOK, templates)
}

type RenderRequest struct {
	Variables map[string]string `json:"variables"`
}

type RenderResponse struct {
	Prompt string `json:"prompt"`
}

// RenderPrompt substitutes the supplied variables into a named template
func (h *PromptHandler) RenderPrompt(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var req RenderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	prompt, err := h.service.Render(r.Context(), name, req.Variables)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTemplateNotFound):
			respondWithError(w, http.StatusNotFound, "Template not found")
		default:
			respondWithError(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	respondWithJSON(w, http.StatusOK, RenderResponse{Prompt: prompt})
}
