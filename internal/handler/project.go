// internal/handler/project.go
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/emateapp/emate/internal/domain"
	"github.com/emateapp/emate/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ProjectHandler struct {
	service *service.ProjectService
}

func NewProjectHandler(service *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// ListProjects returns all projects owned by the authenticated user
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	projects, err := h.service.List(r.Context(), userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, projects)
}

// CreateProject creates a new project for the authenticated user
func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	var input service.ProjectInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	project, err := h.service.Create(r.Context(), userID, input)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, project)
}

// GetProject returns one project owned by the authenticated user
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	projectID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid project ID")
		return
	}

	project, err := h.service.Get(r.Context(), projectID, userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, project)
}

// UpdateProject patches a project; milestones and outcomes in the patch
// replace the stored rows wholesale
func (h *ProjectHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	projectID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid project ID")
		return
	}

	var patch service.ProjectPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	project, err := h.service.Update(r.Context(), projectID, userID, patch)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, project)
}

// SetOutcome records or overwrites one outcome response on a project
func (h *ProjectHandler) SetOutcome(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	projectID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid project ID")
		return
	}

	var input service.OutcomeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if err := h.service.SetOutcome(r.Context(), projectID, userID, input); err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Outcome recorded"})
}

// DeleteProject removes a project and its milestones and outcomes
func (h *ProjectHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	projectID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid project ID")
		return
	}

	if err := h.service.Delete(r.Context(), projectID, userID); err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Project deleted"})
}

// handleError handles common error cases
func (h *ProjectHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrProjectNotFound):
		respondWithError(w, http.StatusNotFound, "Project not found")
	case errors.Is(err, domain.ErrForbidden):
		respondWithError(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, domain.ErrInvalidOutcome):
		respondWithError(w, http.StatusBadRequest, "Outcome number must be between 1 and 11")
	case errors.Is(err, domain.ErrDuplicateOutcome):
		respondWithError(w, http.StatusConflict, "Duplicate outcome for project")
	case errors.Is(err, domain.ErrInvalidInput):
		respondWithError(w, http.StatusBadRequest, err.Error())
	default:
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
