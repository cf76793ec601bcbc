package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/rideflex-admin/internal/pkg/apperrors"
	appctx "github.com/piresc/rideflex-admin/internal/pkg/context"
	"github.com/piresc/rideflex-admin/internal/pkg/logger"
	"github.com/piresc/rideflex-admin/internal/pkg/models"
	nrpkg "github.com/piresc/rideflex-admin/internal/pkg/newrelic"
	"github.com/piresc/rideflex-admin/internal/utils"
	"github.com/piresc/rideflex-admin/services/backend"
)

// Chat booking paging limits
const (
	DefaultPageSize = 25
	MaxPageSize     = 100
)

// smsAuditLength caps the message text kept in the audit trail
const smsAuditLength = 40

// APIUC attaches the session token to every backend call and records the
// outcome of mutating ones
type APIUC struct {
	backendGW backend.BackendGW
	auth      backend.Authenticator
	recorder  backend.ActionRecorder
	now       func() time.Time
}

// NewAPIUC creates a new backend usecase. recorder may be nil.
func NewAPIUC(backendGW backend.BackendGW, auth backend.Authenticator, recorder backend.ActionRecorder) *APIUC {
	if recorder == nil {
		recorder = NewMultiRecorder()
	}
	return &APIUC{
		backendGW: backendGW,
		auth:      auth,
		recorder:  recorder,
		now:       time.Now,
	}
}

// authenticated runs fn inside the session and a New Relic segment
func authenticated[T any](ctx context.Context, uc *APIUC, name string, fn func(ctx context.Context, token string) (T, error)) (T, error) {
	return nrpkg.TraceUseCaseWithReturn(ctx, "Backend/"+name, func(ctx context.Context) (T, error) {
		var out T
		err := uc.auth.AuthenticatedRequest(ctx, func(ctx context.Context, token string) error {
			var err error
			out, err = fn(ctx, token)
			return err
		})
		return out, err
	})
}

func (uc *APIUC) FetchSummary(ctx context.Context) (*models.DashboardSummary, error) {
	return authenticated(ctx, uc, "FetchSummary", func(ctx context.Context, token string) (*models.DashboardSummary, error) {
		return uc.backendGW.GetDashboardSummary(ctx, token)
	})
}

func (uc *APIUC) CompleteBooking(ctx context.Context, bookingID string) (*models.ActionResult, error) {
	if strings.TrimSpace(bookingID) == "" {
		return nil, apperrors.NewValidationError("bookingId", "Booking is required")
	}

	result, err := authenticated(ctx, uc, "CompleteBooking", func(ctx context.Context, token string) (*models.ActionResult, error) {
		return uc.backendGW.CompleteBooking(ctx, token, models.CompleteBookingRequest{BookingID: bookingID})
	})
	err = rejectedAction("Failed to complete ride", result, err)
	uc.record(ctx, models.ActionComplete, bookingID, actionMessage(result), err)
	return result, err
}

func (uc *APIUC) ProcessRefund(ctx context.Context, req models.RefundRequest) (*models.RefundResponse, error) {
	if strings.TrimSpace(req.BookingID) == "" {
		return nil, apperrors.NewValidationError("bookingId", "Booking is required")
	}

	resp, err := authenticated(ctx, uc, "ProcessRefund", func(ctx context.Context, token string) (*models.RefundResponse, error) {
		return uc.backendGW.ProcessRefund(ctx, token, req)
	})
	err = rejectedRefund("Refund failed", resp, err)
	uc.record(ctx, models.ActionRefund, req.BookingID, refundMessage(resp), err)
	return resp, err
}

func (uc *APIUC) CancelBooking(ctx context.Context, req models.CancellationRequest) (*models.RefundResponse, error) {
	if strings.TrimSpace(req.BookingID) == "" {
		return nil, apperrors.NewValidationError("bookingId", "Booking is required")
	}

	resp, err := authenticated(ctx, uc, "CancelBooking", func(ctx context.Context, token string) (*models.RefundResponse, error) {
		return uc.backendGW.CancelBooking(ctx, token, req)
	})
	err = rejectedRefund("Cancellation failed", resp, err)
	uc.record(ctx, models.ActionCancel, req.BookingID, refundMessage(resp), err)
	return resp, err
}

func (uc *APIUC) ListAvailableDrivers(ctx context.Context) ([]models.AvailableDriver, error) {
	return authenticated(ctx, uc, "ListAvailableDrivers", func(ctx context.Context, token string) ([]models.AvailableDriver, error) {
		return uc.backendGW.ListAvailableDrivers(ctx, token)
	})
}

func (uc *APIUC) AssignDriver(ctx context.Context, bookingID, driverID string) (*models.ActionResult, error) {
	if strings.TrimSpace(driverID) == "" {
		return nil, apperrors.NewValidationError("driverId", "Please select a driver")
	}

	result, err := authenticated(ctx, uc, "AssignDriver", func(ctx context.Context, token string) (*models.ActionResult, error) {
		return uc.backendGW.AssignDriver(ctx, token, models.AssignDriverRequest{BookingID: bookingID, DriverID: driverID})
	})
	err = rejectedAction("Failed to assign driver", result, err)
	uc.record(ctx, models.ActionAssign, bookingID, actionMessage(result), err)
	return result, err
}

func (uc *APIUC) UnassignDriver(ctx context.Context, bookingID string) (*models.ActionResult, error) {
	result, err := authenticated(ctx, uc, "UnassignDriver", func(ctx context.Context, token string) (*models.ActionResult, error) {
		return uc.backendGW.UnassignDriver(ctx, token, models.UnassignDriverRequest{BookingID: bookingID})
	})
	err = rejectedAction("Failed to unassign driver", result, err)
	uc.record(ctx, models.ActionUnassign, bookingID, actionMessage(result), err)
	return result, err
}

// CallCustomer bridges two numbers. bookingID is only used for the audit
// trail and may be empty. A success=false body is returned, not an error.
func (uc *APIUC) CallCustomer(ctx context.Context, bookingID string, req models.CallCustomerRequest) (*models.CallCustomerResponse, error) {
	req.CustomerPhone = strings.TrimSpace(req.CustomerPhone)
	req.MyPhone = strings.TrimSpace(req.MyPhone)
	if req.CustomerPhone == "" {
		return nil, apperrors.NewValidationError("customerPhone", "Customer phone number not available")
	}
	if req.MyPhone == "" {
		return nil, apperrors.NewValidationError("myPhone", "Please enter your phone number")
	}

	resp, err := authenticated(ctx, uc, "CallCustomer", func(ctx context.Context, token string) (*models.CallCustomerResponse, error) {
		return uc.backendGW.CallCustomer(ctx, token, req)
	})

	if err == nil && !resp.Success {
		uc.record(ctx, models.ActionCallCustomer, bookingID, "", &apperrors.RejectedError{Op: "Call failed", Message: resp.Message})
	} else {
		message := ""
		if resp != nil {
			message = resp.Message
		}
		uc.record(ctx, models.ActionCallCustomer, bookingID, message, err)
	}
	return resp, err
}

func (uc *APIUC) ListCallLogs(ctx context.Context) ([]models.CallLog, error) {
	list, err := authenticated(ctx, uc, "ListCallLogs", func(ctx context.Context, token string) (*models.CallLogList, error) {
		return uc.backendGW.ListCallLogs(ctx, token)
	})
	if err != nil {
		return nil, err
	}
	return list.Calls, nil
}

func (uc *APIUC) SendSMS(ctx context.Context, req models.SendSMSRequest) error {
	req.Phone = strings.TrimSpace(req.Phone)
	if req.Phone == "" {
		return apperrors.NewValidationError("phone", "Phone number is required")
	}
	if !utils.IsDialable(req.Phone) {
		return apperrors.NewValidationError("phone", "Please enter a valid phone number")
	}
	if strings.TrimSpace(req.Message) == "" {
		return apperrors.NewValidationError("message", "Message is required")
	}

	_, err := authenticated(ctx, uc, "SendSMS", func(ctx context.Context, token string) (struct{}, error) {
		return struct{}{}, uc.backendGW.SendSMS(ctx, token, req)
	})
	uc.record(ctx, models.ActionSendSMS, "", fmt.Sprintf("SMS to %s: %s", utils.MaskPhoneNumber(req.Phone), utils.Truncate(req.Message, smsAuditLength)), err)
	return err
}

// ListChatBookings clamps page to >= 1 and pageSize to 1..MaxPageSize,
// using DefaultPageSize when pageSize is not set
func (uc *APIUC) ListChatBookings(ctx context.Context, page, pageSize int) (*models.ChatBookingsPage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	return authenticated(ctx, uc, "ListChatBookings", func(ctx context.Context, token string) (*models.ChatBookingsPage, error) {
		return uc.backendGW.ListChatBookings(ctx, token, page, pageSize)
	})
}

func (uc *APIUC) ListPayments(ctx context.Context) ([]models.Payment, error) {
	return authenticated(ctx, uc, "ListPayments", func(ctx context.Context, token string) ([]models.Payment, error) {
		return uc.backendGW.ListPayments(ctx, token)
	})
}

func (uc *APIUC) ListWebhooks(ctx context.Context) ([]models.Webhook, error) {
	return authenticated(ctx, uc, "ListWebhooks", func(ctx context.Context, token string) ([]models.Webhook, error) {
		return uc.backendGW.ListWebhooks(ctx, token)
	})
}

func (uc *APIUC) GetSettings(ctx context.Context) (models.Settings, error) {
	return authenticated(ctx, uc, "GetSettings", func(ctx context.Context, token string) (models.Settings, error) {
		return uc.backendGW.GetSettings(ctx, token)
	})
}

func (uc *APIUC) ListSecrets(ctx context.Context) ([]models.KeyVaultSecret, error) {
	info, err := authenticated(ctx, uc, "ListSecrets", func(ctx context.Context, token string) (*models.KeyVaultInfo, error) {
		return uc.backendGW.GetKeyVaultInfo(ctx, token)
	})
	if err != nil {
		return nil, err
	}
	return info.Secrets, nil
}

func (uc *APIUC) UpdateSecret(ctx context.Context, req models.UpdateSecretRequest) (*models.ActionResult, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, apperrors.NewValidationError("name", "Secret name is required")
	}
	if req.Value.Kind == "" || req.Value.Kind == models.ValueNull {
		return nil, apperrors.NewValidationError("value", "Secret value is required")
	}

	result, err := authenticated(ctx, uc, "UpdateSecret", func(ctx context.Context, token string) (*models.ActionResult, error) {
		return uc.backendGW.UpdateSecret(ctx, token, req)
	})
	err = rejectedAction("Failed to update secret", result, err)
	// the value itself never goes to the audit trail
	uc.record(ctx, models.ActionUpdateSecret, "", req.Name, err)
	return result, err
}

func (uc *APIUC) record(ctx context.Context, action models.ActionKind, bookingID, message string, err error) {
	if err != nil {
		if apperrors.IsValidation(err) {
			return
		}
		message = apperrors.Text(err)
	}

	event := models.ActionEvent{
		ID:         uuid.New().String(),
		Action:     action,
		BookingID:  bookingID,
		AdminID:    appctx.GetAdminID(ctx),
		Success:    err == nil,
		Message:    message,
		OccurredAt: uc.now().UTC(),
	}

	if recErr := uc.recorder.Record(ctx, event); recErr != nil {
		logger.Warn("Failed to record admin action",
			logger.String("action", string(action)),
			logger.String("booking_id", bookingID),
			logger.Err(recErr))
	}
}

// rejectedAction turns a 2xx {success:false} body into a RejectedError
func rejectedAction(op string, result *models.ActionResult, err error) error {
	if err != nil || result == nil || result.Success {
		return err
	}
	return &apperrors.RejectedError{Op: op, Message: result.Message}
}

func rejectedRefund(op string, resp *models.RefundResponse, err error) error {
	if err != nil || resp == nil || resp.Success {
		return err
	}
	return &apperrors.RejectedError{Op: op, Message: resp.Message}
}

func actionMessage(result *models.ActionResult) string {
	if result == nil {
		return ""
	}
	return result.Message
}

func refundMessage(resp *models.RefundResponse) string {
	if resp == nil {
		return ""
	}
	return resp.Message
}
