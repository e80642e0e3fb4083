package handler

import (
	"encoding/json"
	"net/http"

	"github.com/emateapp/emate/internal/middleware"
	"github.com/google/uuid"
)

type ErrorResponse struct { // TypeGen: ErrorResponse
	BaseResponse
	Error   string    `json:"error"`
	Details *[]string `json:"details,omitempty"`
	Code    *string   `json:"error_code,omitempty"`
	Link    *string   `json:"error_link,omitempty"`
}

type BaseResponse struct { // TypeGen: DefaultResponse
	Ok bool `json:"ok"`
}

// requestUserID pulls the user ID resolved by the auth middleware. A missing
// ID means the route was wired without the middleware.
func requestUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := middleware.UserIDFrom(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return uuid.Nil, false
	}
	return userID, true
}

// respondWithError sends an error response with a message
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	// Sets content type header
	w.Header().Set("Content-Type", "application/json")

	// Sets the HTTP status code
	w.WriteHeader(code)

	// Encodes the response
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// If encoding fails, logs the error and sends a plain text response
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}
