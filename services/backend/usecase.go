package backend

import (
	"context"

	"github.com/piresc/rideflex-admin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/rideflex-admin/services/backend APIUC

// APIUC is the authenticated RemoteApiClient used by the console. Every call
// goes through the admin session; mutating calls are recorded.
type APIUC interface {
	FetchSummary(ctx context.Context) (*models.DashboardSummary, error)
	CompleteBooking(ctx context.Context, bookingID string) (*models.ActionResult, error)

	ProcessRefund(ctx context.Context, req models.RefundRequest) (*models.RefundResponse, error)
	CancelBooking(ctx context.Context, req models.CancellationRequest) (*models.RefundResponse, error)

	ListAvailableDrivers(ctx context.Context) ([]models.AvailableDriver, error)
	AssignDriver(ctx context.Context, bookingID, driverID string) (*models.ActionResult, error)
	UnassignDriver(ctx context.Context, bookingID string) (*models.ActionResult, error)

	CallCustomer(ctx context.Context, bookingID string, req models.CallCustomerRequest) (*models.CallCustomerResponse, error)
	ListCallLogs(ctx context.Context) ([]models.CallLog, error)
	SendSMS(ctx context.Context, req models.SendSMSRequest) error

	ListChatBookings(ctx context.Context, page, pageSize int) (*models.ChatBookingsPage, error)
	ListPayments(ctx context.Context) ([]models.Payment, error)
	ListWebhooks(ctx context.Context) ([]models.Webhook, error)

	GetSettings(ctx context.Context) (models.Settings, error)
	ListSecrets(ctx context.Context) ([]models.KeyVaultSecret, error)
	UpdateSecret(ctx context.Context, req models.UpdateSecretRequest) (*models.ActionResult, error)
}

// Authenticator runs a backend call with the session token
type Authenticator interface {
	AuthenticatedRequest(ctx context.Context, fn func(ctx context.Context, token string) error) error
}

// ActionRecorder receives the outcome of every mutating admin action
type ActionRecorder interface {
	Record(ctx context.Context, event models.ActionEvent) error
}
