// internal/handler/referee.go
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

type RefereeHandler struct {
	service *service.RefereeService
}

func NewRefereeHandler(service *service.RefereeService) *RefereeHandler {
	return &RefereeHandler{service: service}
}

// ListReferees returns all referees owned by the authenticated user
func (h *RefereeHandler) ListReferees(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	referees, err := h.service.List(r.Context(), userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, referees)
}

// CreateReferee creates a new referee for the authenticated user
func (h *RefereeHandler) CreateReferee(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	var input service.CreateRefereeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	referee, err := h.service.Create(r.Context(), userID, input)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, referee)
}

// GetReferee returns one referee owned by the authenticated user
func (h *RefereeHandler) GetReferee(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	refereeID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid referee ID")
		return
	}

	referee, err := h.service.Get(r.Context(), refereeID, userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, referee)
}

// UpdateReferee patches a referee owned by the authenticated user
func (h *RefereeHandler) UpdateReferee(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	refereeID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid referee ID")
		return
	}

	var patch service.RefereePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	referee, err := h.service.Update(r.Context(), refereeID, userID, patch)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, referee)
}

// AssociateProjectsRequest carries the full replacement set of project IDs
type AssociateProjectsRequest struct {
	ProjectIDs []uuid.UUID `json:"project_ids"`
}

// AssociateProjects replaces the set of projects a referee vouches for
func (h *RefereeHandler) AssociateProjects(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	refereeID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid referee ID")
		return
	}

	var req AssociateProjectsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if err := h.service.ReplaceProjects(r.Context(), refereeID, userID, req.ProjectIDs); err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Referee projects updated"})
}

// DeleteReferee removes a referee and its project associations
func (h *RefereeHandler) DeleteReferee(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	refereeID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid referee ID")
		return
	}

	if err := h.service.Delete(r.Context(), refereeID, userID); err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Referee deleted"})
}

// handleError handles common error cases
func (h *RefereeHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrRefereeNotFound):
		respondWithError(w, http.StatusNotFound, "Referee not found")
	case errors.Is(err, domain.ErrProjectNotFound):
		respondWithError(w, http.StatusNotFound, "Project not found")
	case errors.Is(err, domain.ErrForbidden):
		respondWithError(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, domain.ErrInvalidInput):
		respondWithError(w, http.StatusBadRequest, err.Error())
	default:
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
