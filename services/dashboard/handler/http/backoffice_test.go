package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/piresc/rideflex-admin/internal/pkg/apperrors"
	"github.com/piresc/rideflex-admin/internal/pkg/models"
	backendmocks "github.com/piresc/rideflex-admin/services/backend/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBackofficeHandler(t *testing.T) (*BackofficeHandler, *backendmocks.MockAPIUC) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	api := backendmocks.NewMockAPIUC(ctrl)
	return NewBackofficeHandler(api), api
}

func TestListChatBookings_Pagination(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		wantPage     int
		wantPageSize int
	}{
		{name: "Defaults", query: "", wantPage: 1, wantPageSize: 0},
		{name: "Explicit", query: "?page=3&pageSize=50", wantPage: 3, wantPageSize: 50},
		{name: "Garbage falls back", query: "?page=abc&pageSize=x", wantPage: 1, wantPageSize: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, api := newBackofficeHandler(t)
			api.EXPECT().ListChatBookings(gomock.Any(), tt.wantPage, tt.wantPageSize).
				Return(&models.ChatBookingsPage{}, nil)

			c, rec := newContext(http.MethodGet, "/console/chat-bookings"+tt.query, "")
			require.NoError(t, handler.ListChatBookings(c))
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestCallNumbers(t *testing.T) {
	t.Run("Initiated", func(t *testing.T) {
		handler, api := newBackofficeHandler(t)
		api.EXPECT().CallCustomer(gomock.Any(), "", models.CallCustomerRequest{CustomerPhone: "+15551234", MyPhone: "+15550001"}).
			Return(&models.CallCustomerResponse{Success: true, Message: "Calling"}, nil)

		c, rec := newContext(http.MethodPost, "/console/calls", `{"customerPhone":"+15551234","myPhone":"+15550001"}`)
		require.NoError(t, handler.CallNumbers(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "✅ Calling", decode(t, rec).Message)
	})

	t.Run("Declined", func(t *testing.T) {
		handler, api := newBackofficeHandler(t)
		api.EXPECT().CallCustomer(gomock.Any(), "", gomock.Any()).
			Return(&models.CallCustomerResponse{Success: false, Message: "Invalid number"}, nil)

		c, rec := newContext(http.MethodPost, "/console/calls", `{"customerPhone":"1","myPhone":"2"}`)
		require.NoError(t, handler.CallNumbers(c))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "❌ Invalid number", decode(t, rec).Error)
	})

	t.Run("Missing phone", func(t *testing.T) {
		handler, api := newBackofficeHandler(t)
		api.EXPECT().CallCustomer(gomock.Any(), "", gomock.Any()).
			Return(nil, apperrors.NewValidationError("myPhone", "Please enter your phone number"))

		c, rec := newContext(http.MethodPost, "/console/calls", `{"customerPhone":"1"}`)
		require.NoError(t, handler.CallNumbers(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Please enter your phone number", decode(t, rec).Error)
	})
}

func TestSendSMS(t *testing.T) {
	handler, api := newBackofficeHandler(t)

	gomock.InOrder(
		api.EXPECT().SendSMS(gomock.Any(), models.SendSMSRequest{Phone: "+15551234", Message: "Your driver is here"}).Return(nil),
		api.EXPECT().SendSMS(gomock.Any(), gomock.Any()).
			Return(&apperrors.HTTPError{Op: "Failed to send SMS", StatusCode: 400, Status: "Bad Request", Body: "Twilio rejected the number"}),
	)

	c, rec := newContext(http.MethodPost, "/console/sms", `{"phone":"+15551234","message":"Your driver is here"}`)
	require.NoError(t, handler.SendSMS(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "✅ SMS sent successfully!", decode(t, rec).Message)

	c, rec = newContext(http.MethodPost, "/console/sms", `{"phone":"0","message":"x"}`)
	require.NoError(t, handler.SendSMS(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "❌ Twilio rejected the number", decode(t, rec).Error)
}

func TestSecrets(t *testing.T) {
	handler, api := newBackofficeHandler(t)

	api.EXPECT().ListSecrets(gomock.Any()).Return([]models.KeyVaultSecret{
		{Name: "StripeKey", CurrentValue: models.StringValue("sk_test")},
		{Name: "MaxDistance", CurrentValue: models.NumberValue(42)},
	}, nil)
	api.EXPECT().UpdateSecret(gomock.Any(), models.UpdateSecretRequest{Name: "FeatureFlag", Value: models.BoolValue(true)}).
		Return(&models.ActionResult{Success: true}, nil)

	c, rec := newContext(http.MethodGet, "/console/settings/secrets", "")
	require.NoError(t, handler.ListSecrets(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var secrets []map[string]interface{}
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &secrets))
	require.Len(t, secrets, 2)
	assert.Equal(t, 42.0, secrets[1]["currentValue"])

	c, rec = newContext(http.MethodPost, "/console/settings/secrets", `{"name":"FeatureFlag","value":true}`)
	require.NoError(t, handler.UpdateSecret(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "✅ Secret updated successfully!", decode(t, rec).Message)
}

func TestListPaymentsAndWebhooks(t *testing.T) {
	handler, api := newBackofficeHandler(t)

	api.EXPECT().ListPayments(gomock.Any()).Return([]models.Payment{{ID: "p1", BookingID: "b1", AmountCents: 1500}}, nil)
	api.EXPECT().ListWebhooks(gomock.Any()).Return(nil, apperrors.ErrAuthExpired)

	c, rec := newContext(http.MethodGet, "/console/payments", "")
	require.NoError(t, handler.ListPayments(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newContext(http.MethodGet, "/console/webhooks", "")
	require.NoError(t, handler.ListWebhooks(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
