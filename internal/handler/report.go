// internal/handler/report.go
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

type ReportHandler struct {
	service *service.ReportService
}

func NewReportHandler(service *service.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// ListReports returns all reports authored by the authenticated user
func (h *ReportHandler) ListReports(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	reports, err := h.service.List(r.Context(), userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, reports)
}

// CreateReport creates a new draft report
func (h *ReportHandler) CreateReport(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	var input service.CreateReportInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	report, err := h.service.Create(r.Context(), userID, input)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, report)
}

// GetReport returns one report authored by the authenticated user
func (h *ReportHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	reportID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid report ID")
		return
	}

	report, err := h.service.Get(r.Context(), reportID, userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, report)
}

// UpdateReport patches title/content; content changes snapshot the prior
// draft into history
func (h *ReportHandler) UpdateReport(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	reportID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid report ID")
		return
	}

	var patch service.ReportPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	report, err := h.service.Update(r.Context(), reportID, userID, patch)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, report)
}

// TransitionRequest carries a workflow action name
type TransitionRequest struct {
	Action service.ReportAction `json:"action"`
}

// TransitionReport applies a workflow action (submit, approve, reject,
// publish) to a report
func (h *ReportHandler) TransitionReport(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	reportID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid report ID")
		return
	}

	var req TransitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	report, err := h.service.Transition(r.Context(), reportID, userID, req.Action)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, report)
}

// HistoryRequest carries a prior-draft snapshot
type HistoryRequest struct {
	Content string `json:"content"`
}

// AppendHistory records a prior-draft snapshot
func (h *ReportHandler) AppendHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	reportID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid report ID")
		return
	}

	var req HistoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	entry, err := h.service.AppendHistory(r.Context(), reportID, userID, req.Content)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, entry)
}

// FeedbackRequest carries a reviewer comment
type FeedbackRequest struct {
	Content string `json:"content"`
}

// AddFeedback records a reviewer comment tied to the commenting user
func (h *ReportHandler) AddFeedback(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	reportID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid report ID")
		return
	}

	var req FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	entry, err := h.service.AddFeedback(r.Context(), reportID, userID, req.Content)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, entry)
}

// TagsRequest carries tag names to associate
type TagsRequest struct {
	Tags []string `json:"tags"`
}

// LinkTags associates tag names with a report; re-linking is a no-op
func (h *ReportHandler) LinkTags(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	reportID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid report ID")
		return
	}

	var req TagsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	tags, err := h.service.LinkTags(r.Context(), reportID, userID, req.Tags)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, tags)
}

// DeleteReport removes a report and its history and feedback
func (h *ReportHandler) DeleteReport(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	reportID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid report ID")
		return
	}

	if err := h.service.Delete(r.Context(), reportID, userID); err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Report deleted"})
}

// handleError handles common error cases
func (h *ReportHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrReportNotFound):
		respondWithError(w, http.StatusNotFound, "Report not found")
	case errors.Is(err, domain.ErrProjectNotFound):
		respondWithError(w, http.StatusNotFound, "Project not found")
	case errors.Is(err, domain.ErrForbidden):
		respondWithError(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, domain.ErrInvalidStateTransition):
		respondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		respondWithError(w, http.StatusBadRequest, err.Error())
	default:
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
