package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	appctx "github.com/piresc/rideflex-admin/internal/pkg/context"
	"github.com/piresc/rideflex-admin/internal/pkg/models"
	"github.com/piresc/rideflex-admin/internal/utils"
	"github.com/piresc/rideflex-admin/services/backend"
)

// BackofficeHandler serves the console pages outside the dashboard: chat
// bookings, calls, SMS, payments, webhooks and settings.
type BackofficeHandler struct {
	apiUC backend.APIUC
}

// NewBackofficeHandler creates a new back-office handler
func NewBackofficeHandler(apiUC backend.APIUC) *BackofficeHandler {
	return &BackofficeHandler{apiUC: apiUC}
}

// ListChatBookings returns one page of chatbot bookings
func (h *BackofficeHandler) ListChatBookings(c echo.Context) error {
	page := queryInt(c, "page", 1)
	pageSize := queryInt(c, "pageSize", 0)

	result, err := h.apiUC.ListChatBookings(appctx.FromEchoContext(c), page, pageSize)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListCallLogs returns the Twilio call history
func (h *BackofficeHandler) ListCallLogs(c echo.Context) error {
	calls, err := h.apiUC.ListCallLogs(appctx.FromEchoContext(c))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", calls)
}

// CallNumbers bridges any two numbers, the admin's phone rings first
func (h *BackofficeHandler) CallNumbers(c echo.Context) error {
	var req models.CallCustomerRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.apiUC.CallCustomer(appctx.FromEchoContext(c), "", req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	if !resp.Success {
		return utils.ErrorResponseHandler(c, http.StatusUnprocessableEntity, failureMessage(resp.Message))
	}
	return utils.SuccessResponse(c, http.StatusOK, successMessage(resp.Message, "Call initiated"), resp)
}

// SendSMS sends a text message
func (h *BackofficeHandler) SendSMS(c echo.Context) error {
	var req models.SendSMSRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.apiUC.SendSMS(appctx.FromEchoContext(c), req); err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, successMessage("", "SMS sent successfully!"), nil)
}

// ListPayments returns the payment audit list
func (h *BackofficeHandler) ListPayments(c echo.Context) error {
	payments, err := h.apiUC.ListPayments(appctx.FromEchoContext(c))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", payments)
}

// ListWebhooks returns the received payment webhooks
func (h *BackofficeHandler) ListWebhooks(c echo.Context) error {
	webhooks, err := h.apiUC.ListWebhooks(appctx.FromEchoContext(c))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", webhooks)
}

// GetSettings returns the operational settings
func (h *BackofficeHandler) GetSettings(c echo.Context) error {
	settings, err := h.apiUC.GetSettings(appctx.FromEchoContext(c))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", settings)
}

// ListSecrets returns the key vault secrets
func (h *BackofficeHandler) ListSecrets(c echo.Context) error {
	secrets, err := h.apiUC.ListSecrets(appctx.FromEchoContext(c))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", secrets)
}

// UpdateSecret writes one key vault secret
func (h *BackofficeHandler) UpdateSecret(c echo.Context) error {
	var req models.UpdateSecretRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	result, err := h.apiUC.UpdateSecret(appctx.FromEchoContext(c), req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, successMessage(result.Message, "Secret updated successfully!"), result)
}

func queryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
