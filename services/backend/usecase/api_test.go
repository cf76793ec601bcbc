package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/piresc/rideflex-admin/internal/pkg/apperrors"
	appctx "github.com/piresc/rideflex-admin/internal/pkg/context"
	"github.com/piresc/rideflex-admin/internal/pkg/models"
	"github.com/piresc/rideflex-admin/services/backend/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tokenAuth hands out a fixed token, or refuses when empty
type tokenAuth struct {
	token string
}

func (a tokenAuth) AuthenticatedRequest(ctx context.Context, fn func(ctx context.Context, token string) error) error {
	if a.token == "" {
		return apperrors.ErrUnauthenticated
	}
	return fn(ctx, a.token)
}

type captureRecorder struct {
	events []models.ActionEvent
	err    error
}

func (r *captureRecorder) Record(_ context.Context, event models.ActionEvent) error {
	r.events = append(r.events, event)
	return r.err
}

func newTestAPI(t *testing.T) (*APIUC, *mocks.MockBackendGW, *captureRecorder) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	gw := mocks.NewMockBackendGW(ctrl)
	rec := &captureRecorder{}
	return NewAPIUC(gw, tokenAuth{token: "tok"}, rec), gw, rec
}

func TestFetchSummary_PassesToken(t *testing.T) {
	uc, gw, _ := newTestAPI(t)
	summary := &models.DashboardSummary{TotalBookings: 4}
	gw.EXPECT().GetDashboardSummary(gomock.Any(), "tok").Return(summary, nil)

	got, err := uc.FetchSummary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, summary, got)
}

func TestFetchSummary_Unauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewAPIUC(mocks.NewMockBackendGW(ctrl), tokenAuth{}, nil)

	_, err := uc.FetchSummary(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}

func TestProcessRefund_RecordsOutcome(t *testing.T) {
	uc, gw, rec := newTestAPI(t)
	ctx := appctx.WithAdminID(context.Background(), "admin-1")
	req := models.RefundRequest{BookingID: "b1", Reason: "customer request"}

	gw.EXPECT().ProcessRefund(gomock.Any(), "tok", req).
		Return(&models.RefundResponse{Success: true, RefundAmount: 100, Status: "Refunded", Message: "Refund issued"}, nil)

	resp, err := uc.ProcessRefund(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, "Refunded", resp.Status)
	require.Len(t, rec.events, 1)
	event := rec.events[0]
	assert.Equal(t, models.ActionRefund, event.Action)
	assert.Equal(t, "b1", event.BookingID)
	assert.Equal(t, "admin-1", event.AdminID)
	assert.True(t, event.Success)
	assert.Equal(t, "Refund issued", event.Message)
	assert.NotEmpty(t, event.ID)
}

func TestProcessRefund_SuccessFalseIsRejected(t *testing.T) {
	uc, gw, rec := newTestAPI(t)
	gw.EXPECT().ProcessRefund(gomock.Any(), "tok", gomock.Any()).
		Return(&models.RefundResponse{Success: false, Message: "Payment not captured"}, nil)

	_, err := uc.ProcessRefund(context.Background(), models.RefundRequest{BookingID: "b1", Reason: "x"})

	var rejected *apperrors.RejectedError
	require.True(t, errors.As(err, &rejected))
	assert.Equal(t, "Payment not captured", apperrors.Text(err))
	assert.Equal(t, http.StatusUnprocessableEntity, apperrors.StatusCode(err))
	require.Len(t, rec.events, 1)
	assert.False(t, rec.events[0].Success)
}

func TestCancelBooking_BackendErrorRecorded(t *testing.T) {
	uc, gw, rec := newTestAPI(t)
	gw.EXPECT().CancelBooking(gomock.Any(), "tok", gomock.Any()).
		Return(nil, &apperrors.HTTPError{Op: "Cancellation failed", StatusCode: http.StatusConflict, Body: "Booking already completed"})

	_, err := uc.CancelBooking(context.Background(), models.CancellationRequest{BookingID: "b1", Reason: "x", IssueRefund: true})

	assert.Equal(t, "Booking already completed", apperrors.Text(err))
	require.Len(t, rec.events, 1)
	assert.Equal(t, models.ActionCancel, rec.events[0].Action)
	assert.Equal(t, "Booking already completed", rec.events[0].Message)
}

func TestValidationNeverReachesBackend(t *testing.T) {
	uc, _, rec := newTestAPI(t)
	ctx := context.Background()

	_, err := uc.ProcessRefund(ctx, models.RefundRequest{})
	assert.True(t, apperrors.IsValidation(err))

	_, err = uc.CompleteBooking(ctx, " ")
	assert.True(t, apperrors.IsValidation(err))

	_, err = uc.AssignDriver(ctx, "b1", "")
	assert.True(t, apperrors.IsValidation(err))

	_, err = uc.CallCustomer(ctx, "b1", models.CallCustomerRequest{CustomerPhone: "+15550001"})
	assert.True(t, apperrors.IsValidation(err))

	_, err = uc.CallCustomer(ctx, "b1", models.CallCustomerRequest{MyPhone: "+15550002"})
	assert.True(t, apperrors.IsValidation(err))

	assert.True(t, apperrors.IsValidation(uc.SendSMS(ctx, models.SendSMSRequest{Phone: "+1"})))
	assert.True(t, apperrors.IsValidation(uc.SendSMS(ctx, models.SendSMSRequest{Message: "hello"})))
	assert.True(t, apperrors.IsValidation(uc.SendSMS(ctx, models.SendSMSRequest{Phone: "call me", Message: "hello"})))

	_, err = uc.UpdateSecret(ctx, models.UpdateSecretRequest{Value: models.StringValue("x")})
	assert.True(t, apperrors.IsValidation(err))
	_, err = uc.UpdateSecret(ctx, models.UpdateSecretRequest{Name: "StripeKey"})
	assert.True(t, apperrors.IsValidation(err))

	assert.Empty(t, rec.events)
}

func TestCallCustomer_FailureBodyIsNotAnError(t *testing.T) {
	uc, gw, rec := newTestAPI(t)
	gw.EXPECT().CallCustomer(gomock.Any(), "tok", models.CallCustomerRequest{CustomerPhone: "+15550001", MyPhone: "+15550002"}).
		Return(&models.CallCustomerResponse{Success: false, Message: "Number unreachable"}, nil)

	resp, err := uc.CallCustomer(context.Background(), "b1", models.CallCustomerRequest{CustomerPhone: " +15550001 ", MyPhone: "+15550002"})

	require.NoError(t, err)
	assert.False(t, resp.Success)
	require.Len(t, rec.events, 1)
	assert.False(t, rec.events[0].Success)
	assert.Equal(t, "Number unreachable", rec.events[0].Message)
}

func TestSendSMS_AuditMasksPhone(t *testing.T) {
	uc, gw, rec := newTestAPI(t)
	req := models.SendSMSRequest{Phone: "+1 (555) 123-4567", Message: "Your driver is waiting outside the north entrance of the terminal"}
	gw.EXPECT().SendSMS(gomock.Any(), "tok", req).Return(nil)

	require.NoError(t, uc.SendSMS(context.Background(), req))

	require.Len(t, rec.events, 1)
	assert.Equal(t, models.ActionSendSMS, rec.events[0].Action)
	assert.True(t, rec.events[0].Success)
	assert.Equal(t, "SMS to *******4567: Your driver is waiting outside the no...", rec.events[0].Message)
}

func TestListChatBookings_ClampsPaging(t *testing.T) {
	tests := []struct {
		name             string
		page, pageSize   int
		wantPage, wantPS int
	}{
		{"defaults", 0, 0, 1, DefaultPageSize},
		{"negative page", -3, 10, 1, 10},
		{"oversized page", 2, 500, 2, MaxPageSize},
		{"as given", 3, 50, 3, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, gw, _ := newTestAPI(t)
			gw.EXPECT().ListChatBookings(gomock.Any(), "tok", tt.wantPage, tt.wantPS).
				Return(&models.ChatBookingsPage{Page: tt.wantPage, PageSize: tt.wantPS}, nil)

			page, err := uc.ListChatBookings(context.Background(), tt.page, tt.pageSize)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, page.Page)
		})
	}
}

func TestUpdateSecret_AuditOmitsValue(t *testing.T) {
	uc, gw, rec := newTestAPI(t)
	gw.EXPECT().UpdateSecret(gomock.Any(), "tok", models.UpdateSecretRequest{Name: "StripeKey", Value: models.StringValue("sk_live_123")}).
		Return(&models.ActionResult{Success: true, Message: "Secret updated"}, nil)

	_, err := uc.UpdateSecret(context.Background(), models.UpdateSecretRequest{Name: " StripeKey ", Value: models.StringValue("sk_live_123")})

	require.NoError(t, err)
	require.Len(t, rec.events, 1)
	assert.Equal(t, "StripeKey", rec.events[0].Message)
	assert.NotContains(t, rec.events[0].Message, "sk_live")
}

func TestListings(t *testing.T) {
	uc, gw, rec := newTestAPI(t)
	ctx := context.Background()

	gw.EXPECT().ListCallLogs(gomock.Any(), "tok").Return(&models.CallLogList{Calls: []models.CallLog{{Sid: "CA1"}}}, nil)
	gw.EXPECT().GetKeyVaultInfo(gomock.Any(), "tok").Return(&models.KeyVaultInfo{Secrets: []models.KeyVaultSecret{{Name: "StripeKey"}}}, nil)
	gw.EXPECT().ListPayments(gomock.Any(), "tok").Return([]models.Payment{{ID: "p1"}}, nil)
	gw.EXPECT().ListWebhooks(gomock.Any(), "tok").Return(nil, &apperrors.NetworkError{Op: "Failed to fetch webhooks", Err: errors.New("timeout")})

	calls, err := uc.ListCallLogs(ctx)
	require.NoError(t, err)
	assert.Equal(t, "CA1", calls[0].Sid)

	secrets, err := uc.ListSecrets(ctx)
	require.NoError(t, err)
	assert.Equal(t, "StripeKey", secrets[0].Name)

	payments, err := uc.ListPayments(ctx)
	require.NoError(t, err)
	assert.Len(t, payments, 1)

	_, err = uc.ListWebhooks(ctx)
	assert.True(t, apperrors.IsNetwork(err))

	assert.Empty(t, rec.events)
}

func TestRecorderFailureDoesNotFailAction(t *testing.T) {
	uc, gw, rec := newTestAPI(t)
	rec.err = errors.New("nsq unavailable")
	gw.EXPECT().UnassignDriver(gomock.Any(), "tok", models.UnassignDriverRequest{BookingID: "b1"}).
		Return(&models.ActionResult{Success: true, Message: "Driver unassigned"}, nil)

	result, err := uc.UnassignDriver(context.Background(), "b1")

	require.NoError(t, err)
	assert.Equal(t, "Driver unassigned", result.Message)
}

func TestMultiRecorder(t *testing.T) {
	first := &captureRecorder{err: errors.New("audit file closed")}
	second := &captureRecorder{}
	m := NewMultiRecorder(first, nil, second)

	err := m.Record(context.Background(), models.ActionEvent{Action: models.ActionComplete})

	assert.EqualError(t, err, "audit file closed")
	assert.Len(t, first.events, 1)
	assert.Len(t, second.events, 1)
	assert.NoError(t, NewMultiRecorder().Record(context.Background(), models.ActionEvent{}))
}
