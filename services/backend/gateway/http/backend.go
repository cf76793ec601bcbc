package gateway_http

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	httpclient "github.com/piresc/rideflex-admin/internal/pkg/http"
	"github.com/piresc/rideflex-admin/internal/pkg/models"
)

// Backend REST paths
const (
	pathDashboardSummary = "/api/dashboard/summary"
	pathCompleteBooking  = "/api/dashboard/bookings/%s/complete"
	pathAssignDriver     = "/api/dashboard/bookings/%s/assign-driver"
	pathUnassignDriver   = "/api/dashboard/bookings/%s/unassign-driver"
	pathAvailableDrivers = "/api/drivers/available"
	pathProcessRefund    = "/api/admin/refunds/process"
	pathCancelBooking    = "/api/admin/refunds/cancel-booking"
	pathCallCustomer     = "/api/call/call-customer"
	pathCallLogs         = "/api/calllogs/twilio-logs"
	pathSendSMS          = "/api/communication/send-sms"
	pathChatBookings     = "/api/chat-bookings"
	pathPayments         = "/api/payments/list"
	pathWebhooks         = "/api/payments/webhooks/list"
	pathSettings         = "/api/settings"
	pathKeyVaultInfo     = "/api/settings/azure-keyvault-info"
	pathUpdateSecret     = "/api/settings/update-azure-secret"
)

// BackendGateway implements backend.BackendGW over the shared JSON client
type BackendGateway struct {
	client *httpclient.Client
}

// NewBackendGateway creates a new backend gateway
func NewBackendGateway(client *httpclient.Client) *BackendGateway {
	return &BackendGateway{client: client}
}

func (g *BackendGateway) GetDashboardSummary(ctx context.Context, token string) (*models.DashboardSummary, error) {
	var summary models.DashboardSummary
	if err := g.client.GetJSON(ctx, "Failed to fetch dashboard summary", pathDashboardSummary, nil, token, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (g *BackendGateway) CompleteBooking(ctx context.Context, token string, req models.CompleteBookingRequest) (*models.ActionResult, error) {
	var result models.ActionResult
	path := fmt.Sprintf(pathCompleteBooking, url.PathEscape(req.BookingID))
	if err := g.client.PostJSON(ctx, "Failed to complete ride", path, req, token, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (g *BackendGateway) ProcessRefund(ctx context.Context, token string, req models.RefundRequest) (*models.RefundResponse, error) {
	var resp models.RefundResponse
	if err := g.client.PostJSON(ctx, "Refund failed", pathProcessRefund, req, token, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (g *BackendGateway) CancelBooking(ctx context.Context, token string, req models.CancellationRequest) (*models.RefundResponse, error) {
	var resp models.RefundResponse
	if err := g.client.PostJSON(ctx, "Cancellation failed", pathCancelBooking, req, token, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (g *BackendGateway) ListAvailableDrivers(ctx context.Context, token string) ([]models.AvailableDriver, error) {
	var drivers []models.AvailableDriver
	if err := g.client.GetJSON(ctx, "Failed to fetch available drivers", pathAvailableDrivers, nil, token, &drivers); err != nil {
		return nil, err
	}
	return drivers, nil
}

func (g *BackendGateway) AssignDriver(ctx context.Context, token string, req models.AssignDriverRequest) (*models.ActionResult, error) {
	var result models.ActionResult
	path := fmt.Sprintf(pathAssignDriver, url.PathEscape(req.BookingID))
	if err := g.client.PostJSON(ctx, "Failed to assign driver", path, req, token, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (g *BackendGateway) UnassignDriver(ctx context.Context, token string, req models.UnassignDriverRequest) (*models.ActionResult, error) {
	var result models.ActionResult
	path := fmt.Sprintf(pathUnassignDriver, url.PathEscape(req.BookingID))
	if err := g.client.PostJSON(ctx, "Failed to unassign driver", path, req, token, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (g *BackendGateway) CallCustomer(ctx context.Context, token string, req models.CallCustomerRequest) (*models.CallCustomerResponse, error) {
	var resp models.CallCustomerResponse
	if err := g.client.PostJSON(ctx, "Call failed", pathCallCustomer, req, token, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (g *BackendGateway) ListCallLogs(ctx context.Context, token string) (*models.CallLogList, error) {
	var logs models.CallLogList
	if err := g.client.GetJSON(ctx, "Failed to fetch call logs", pathCallLogs, nil, token, &logs); err != nil {
		return nil, err
	}
	return &logs, nil
}

// SendSMS ignores the response body; only the status matters
func (g *BackendGateway) SendSMS(ctx context.Context, token string, req models.SendSMSRequest) error {
	return g.client.PostJSON(ctx, "Failed to send SMS", pathSendSMS, req, token, nil)
}

func (g *BackendGateway) ListChatBookings(ctx context.Context, token string, page, pageSize int) (*models.ChatBookingsPage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("pageSize", strconv.Itoa(pageSize))

	var result models.ChatBookingsPage
	if err := g.client.GetJSON(ctx, "Failed to fetch chat bookings", pathChatBookings, query, token, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (g *BackendGateway) ListPayments(ctx context.Context, token string) ([]models.Payment, error) {
	var payments []models.Payment
	if err := g.client.GetJSON(ctx, "Failed to fetch payments", pathPayments, nil, token, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (g *BackendGateway) ListWebhooks(ctx context.Context, token string) ([]models.Webhook, error) {
	var webhooks []models.Webhook
	if err := g.client.GetJSON(ctx, "Failed to fetch webhooks", pathWebhooks, nil, token, &webhooks); err != nil {
		return nil, err
	}
	return webhooks, nil
}

func (g *BackendGateway) GetSettings(ctx context.Context, token string) (models.Settings, error) {
	settings := models.Settings{}
	if err := g.client.GetJSON(ctx, "Failed to fetch settings", pathSettings, nil, token, &settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func (g *BackendGateway) GetKeyVaultInfo(ctx context.Context, token string) (*models.KeyVaultInfo, error) {
	var info models.KeyVaultInfo
	if err := g.client.GetJSON(ctx, "Failed to fetch secrets", pathKeyVaultInfo, nil, token, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (g *BackendGateway) UpdateSecret(ctx context.Context, token string, req models.UpdateSecretRequest) (*models.ActionResult, error) {
	var result models.ActionResult
	if err := g.client.PostJSON(ctx, "Failed to update secret", pathUpdateSecret, req, token, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
