// internal/handler/payment.go
package handler

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/emateapp/emate/internal/model"
	"github.com/emateapp/emate/internal/service"
	chmw "github.com/go-chi/chi/v5/middleware"
)

const signatureHeader = "x-paystack-signature"

const maxWebhookBody = 1 << 20

type PaymentHandler struct {
	users  *service.UserService
	secret string
}

func NewPaymentHandler(users *service.UserService, secret string) *PaymentHandler {
	return &PaymentHandler{
		users:  users,
		secret: secret,
	}
}

type webhookEvent struct {
	Event string `json:"event"`
	Data  struct {
		Customer struct {
			Email string `json:"email"`
		} `json:"customer"`
		PaidAt           string `json:"paid_at"`
		NextPaymentDate  string `json:"next_payment_date"`
		SubscriptionCode string `json:"subscription_code"`
	} `json:"data"`
}

// Webhook mirrors gateway subscription events onto the local user record.
// The gateway retries on non-2xx, so unknown events still return 200.
func (h *PaymentHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Unable to read request body")
		return
	}
	defer r.Body.Close()

	if !h.verifySignature(body, r.Header.Get(signatureHeader)) {
		slog.WarnContext(r.Context(), "Webhook signature verification failed", "requestID", chmw.GetReqID(r.Context()))
		respondWithError(w, http.StatusUnauthorized, "Invalid signature")
		return
	}

	var event webhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if event.Data.Customer.Email == "" {
		respondWithError(w, http.StatusBadRequest, "Missing customer email")
		return
	}

	switch event.Event {
	case "charge.success":
		expires := parseExpiry(event.Data.NextPaymentDate)
		err = h.users.ApplySubscription(r.Context(), event.Data.Customer.Email, model.SubscriptionActive, expires)
	case "subscription.disable":
		err = h.users.ApplySubscription(r.Context(), event.Data.Customer.Email, model.SubscriptionCancelled, nil)
	default:
		// Acknowledge events we do not track so the gateway stops retrying.
		respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
		return
	}

	if err != nil {
		slog.ErrorContext(r.Context(), "Webhook processing error", "error", err, "event", event.Event, "requestID", chmw.GetReqID(r.Context()))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

func (h *PaymentHandler) verifySignature(body []byte, signature string) bool {
	if h.secret == "" || signature == "" {
		return false
	}

	mac := hmac.New(sha512.New, []byte(h.secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// parseExpiry falls back to one month out when the gateway omits the next
// payment date on a successful charge.
func parseExpiry(next string) *time.Time {
	if next != "" {
		if t, err := time.Parse(time.RFC3339, next); err == nil {
			return &t
		}
	}
	t := time.Now().UTC().AddDate(0, 1, 0)
	return &t
}
