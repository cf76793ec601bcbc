package backend

import (
	"context"

	"github.com/piresc/rideflex-admin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/rideflex-admin/services/backend BackendGW

// BackendGW is the typed RideFlex REST surface. Every call takes the bearer
// token explicitly; an empty token sends no Authorization header.
type BackendGW interface {
	// dashboard
	GetDashboardSummary(ctx context.Context, token string) (*models.DashboardSummary, error)
	CompleteBooking(ctx context.Context, token string, req models.CompleteBookingRequest) (*models.ActionResult, error)

	// refunds and cancellations
	ProcessRefund(ctx context.Context, token string, req models.RefundRequest) (*models.RefundResponse, error)
	CancelBooking(ctx context.Context, token string, req models.CancellationRequest) (*models.RefundResponse, error)

	// drivers
	ListAvailableDrivers(ctx context.Context, token string) ([]models.AvailableDriver, error)
	AssignDriver(ctx context.Context, token string, req models.AssignDriverRequest) (*models.ActionResult, error)
	UnassignDriver(ctx context.Context, token string, req models.UnassignDriverRequest) (*models.ActionResult, error)

	// communication
	CallCustomer(ctx context.Context, token string, req models.CallCustomerRequest) (*models.CallCustomerResponse, error)
	ListCallLogs(ctx context.Context, token string) (*models.CallLogList, error)
	SendSMS(ctx context.Context, token string, req models.SendSMSRequest) error

	// listings
	ListChatBookings(ctx context.Context, token string, page, pageSize int) (*models.ChatBookingsPage, error)
	ListPayments(ctx context.Context, token string) ([]models.Payment, error)
	ListWebhooks(ctx context.Context, token string) ([]models.Webhook, error)

	// settings
	GetSettings(ctx context.Context, token string) (models.Settings, error)
	GetKeyVaultInfo(ctx context.Context, token string) (*models.KeyVaultInfo, error)
	UpdateSecret(ctx context.Context, token string, req models.UpdateSecretRequest) (*models.ActionResult, error)
}
