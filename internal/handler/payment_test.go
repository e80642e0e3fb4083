package handler_test

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/emateapp/emate/internal/config"
	"github.com/emateapp/emate/internal/handler"
	"github.com/emateapp/emate/internal/mocks"
	"github.com/emateapp/emate/internal/model"
	"github.com/emateapp/emate/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const webhookSecret = "test_paystack_secret"

func sign(body []byte) string {
	mac := hmac.New(sha512.New, []byte(webhookSecret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func newPaymentHandler(userRepo *mocks.MockUserRepositoryIface) *handler.PaymentHandler {
	dashboards := service.NewDashboardService(nil, nil, nil, nil)
	users := service.NewUserService(userRepo, nil, nil, nil, dashboards, nil, &config.Config{})
	return handler.NewPaymentHandler(users, webhookSecret)
}

func TestWebhookSignature(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	body := []byte(`{"event":"charge.success","data":{"customer":{"email":"engineer@example.com"}}}`)

	t.Run("missing signature is rejected", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		h := newPaymentHandler(userRepo)

		req := httptest.NewRequest(http.MethodPost, "/api/payments/webhook", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		h.Webhook(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong signature is rejected", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		h := newPaymentHandler(userRepo)

		req := httptest.NewRequest(http.MethodPost, "/api/payments/webhook", bytes.NewReader(body))
		req.Header.Set("x-paystack-signature", "deadbeef")
		rec := httptest.NewRecorder()

		h.Webhook(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("tampered body fails verification", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		h := newPaymentHandler(userRepo)

		tampered := bytes.Replace(body, []byte("engineer@"), []byte("attacker@"), 1)
		req := httptest.NewRequest(http.MethodPost, "/api/payments/webhook", bytes.NewReader(tampered))
		req.Header.Set("x-paystack-signature", sign(body))
		rec := httptest.NewRecorder()

		h.Webhook(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestWebhookEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &model.User{ID: uuid.New(), Email: "engineer@example.com", SubscriptionStatus: model.SubscriptionInactive}

	t.Run("charge success activates the subscription", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		userRepo.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)
		userRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u *model.User) error {
				assert.Equal(t, model.SubscriptionActive, u.SubscriptionStatus)
				assert.NotNil(t, u.SubscriptionExpires)
				return nil
			})

		h := newPaymentHandler(userRepo)

		body := []byte(`{"event":"charge.success","data":{"customer":{"email":"engineer@example.com"},"next_payment_date":"2026-10-01T00:00:00Z"}}`)
		req := httptest.NewRequest(http.MethodPost, "/api/payments/webhook", bytes.NewReader(body))
		req.Header.Set("x-paystack-signature", sign(body))
		rec := httptest.NewRecorder()

		h.Webhook(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("subscription disable cancels", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		userRepo.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)
		userRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u *model.User) error {
				assert.Equal(t, model.SubscriptionCancelled, u.SubscriptionStatus)
				assert.Nil(t, u.SubscriptionExpires)
				return nil
			})

		h := newPaymentHandler(userRepo)

		body := []byte(`{"event":"subscription.disable","data":{"customer":{"email":"engineer@example.com"}}}`)
		req := httptest.NewRequest(http.MethodPost, "/api/payments/webhook", bytes.NewReader(body))
		req.Header.Set("x-paystack-signature", sign(body))
		rec := httptest.NewRecorder()

		h.Webhook(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown events are acknowledged without side effects", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		h := newPaymentHandler(userRepo)

		body := []byte(`{"event":"invoice.create","data":{"customer":{"email":"engineer@example.com"}}}`)
		req := httptest.NewRequest(http.MethodPost, "/api/payments/webhook", bytes.NewReader(body))
		req.Header.Set("x-paystack-signature", sign(body))
		rec := httptest.NewRecorder()

		h.Webhook(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
