// internal/handler/user.go
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/emateapp/emate/internal/config"
	"github.com/emateapp/emate/internal/domain"
	"github.com/emateapp/emate/internal/service"
	chmw "github.com/go-chi/chi/v5/middleware"
)

type UserHandler struct {
	service *service.UserService
	config  *config.Config
}

func NewUserHandler(service *service.UserService, config *config.Config) *UserHandler {
	return &UserHandler{
		service: service,
		config:  config,
	}
}

type InitializeResponse struct {
	BaseResponse
	User  interface{} `json:"user"`
	IsNew bool        `json:"isNew"`
}

// Initialize provisions first-signup state. Calling it twice for the same
// user reports isNew:false and creates nothing.
func (h *UserHandler) Initialize(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	output, err := h.service.Initialize(r.Context(), userID)
	if err != nil {
		slog.ErrorContext(r.Context(), "User initialization error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, InitializeResponse{
		BaseResponse: BaseResponse{Ok: true},
		User:         output.User,
		IsNew:        output.IsNew,
	})
}

type UpdateProfileImageRequest struct {
	ProfileImage string `json:"profileImage"`
}

type ProfileImageResponse struct {
	Success bool   `json:"success"`
	Warning string `json:"warning,omitempty"`
}

// UpdateProfileImage stores a profile image reference. Outside production,
// failures degrade to a 200 warning body so a misconfigured environment
// cannot block the signup flow; production gets real error codes.
func (h *UserHandler) UpdateProfileImage(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	var req UpdateProfileImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if _, err := h.service.UpdateProfileImage(r.Context(), userID, req.ProfileImage); err != nil {
		slog.ErrorContext(r.Context(), "Profile image update error", "error", err, "requestID", chmw.GetReqID(r.Context()))

		if !h.config.IsProduction() {
			respondWithJSON(w, http.StatusOK, ProfileImageResponse{
				Success: false,
				Warning: err.Error(),
			})
			return
		}

		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		case errors.Is(err, domain.ErrInvalidInput):
			respondWithError(w, http.StatusBadRequest, "profileImage is required")
		case errors.Is(err, domain.ErrServiceUnavailable):
			respondWithError(w, http.StatusServiceUnavailable, "Service unavailable")
		default:
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, ProfileImageResponse{Success: true})
}

// UpdateProfile patches the engineering-profile metadata
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	var patch service.ProfilePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	user, err := h.service.UpdateProfile(r.Context(), userID, patch)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, user)
}

// GetMe returns the authenticated user's record
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	user, err := h.service.Get(r.Context(), userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, user)
}

// handleError handles common error cases
func (h *UserHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		respondWithError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, domain.ErrInvalidInput):
		respondWithError(w, http.StatusBadRequest, err.Error())
	default:
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
