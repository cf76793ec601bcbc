package http

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/rideflex-admin/internal/pkg/apperrors"
	appctx "github.com/piresc/rideflex-admin/internal/pkg/context"
	"github.com/piresc/rideflex-admin/internal/pkg/logger"
	"github.com/piresc/rideflex-admin/internal/pkg/middleware"
	"github.com/piresc/rideflex-admin/internal/pkg/models"
	nrpkg "github.com/piresc/rideflex-admin/internal/pkg/newrelic"
	"github.com/piresc/rideflex-admin/internal/utils"
	"github.com/piresc/rideflex-admin/services/dashboard"
)

// DashboardHandler serves the polled summary and the booking dialogs
type DashboardHandler struct {
	pollerUC     dashboard.PollerUC
	controllerUC dashboard.ControllerUC
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(pollerUC dashboard.PollerUC, controllerUC dashboard.ControllerUC) *DashboardHandler {
	return &DashboardHandler{
		pollerUC:     pollerUC,
		controllerUC: controllerUC,
	}
}

type dashboardView struct {
	Summary       *models.DashboardSummary `json:"summary"`
	Loading       bool                     `json:"loading"`
	Error         string                   `json:"error,omitempty"`
	PublishedAt   *time.Time               `json:"publishedAt,omitempty"`
	Polling       bool                     `json:"polling"`
	StatusClasses map[string]string        `json:"statusClasses,omitempty"`
}

func (h *DashboardHandler) view() dashboardView {
	state := h.pollerUC.State()
	summary := h.controllerUC.WithOverlay(state.Summary)

	v := dashboardView{
		Summary:     summary,
		Loading:     state.Loading,
		Error:       state.Error,
		PublishedAt: state.PublishedAt,
		Polling:     state.Polling,
	}
	if summary != nil && len(summary.RecentBookings) > 0 {
		v.StatusClasses = make(map[string]string, len(summary.RecentBookings))
		for _, b := range summary.RecentBookings {
			v.StatusClasses[b.ID] = models.StatusClass(b.StatusText())
		}
	}
	return v
}

// GetDashboard returns the current snapshot with pending optimistic statuses
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "", h.view())
}

// RefreshDashboard fetches a fresh summary and waits for it
func (h *DashboardHandler) RefreshDashboard(c echo.Context) error {
	ctx := appctx.FromEchoContext(c)
	if err := h.pollerUC.Refresh(ctx); err != nil {
		nrpkg.NoticeError(ctx, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", h.view())
}

// GetDialog returns the open dialog, if any
func (h *DashboardHandler) GetDialog(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "", h.controllerUC.Dialog())
}

type openDialogRequest struct {
	BookingID string `json:"bookingId"`
}

// OpenDialog opens a dialog for a booking of the current snapshot
func (h *DashboardHandler) OpenDialog(c echo.Context) error {
	kind := models.DialogKind(c.Param("kind"))
	if !kind.Valid() {
		return utils.NotFoundResponse(c, "Unknown dialog")
	}

	var req openDialogRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.BookingID == "" {
		return utils.BadRequestResponse(c, "Booking ID is required")
	}
	middleware.SetBookingID(c, req.BookingID)

	view, err := h.controllerUC.Open(appctx.FromEchoContext(c), kind, req.BookingID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", view)
}

// CloseDialog discards the open dialog
func (h *DashboardHandler) CloseDialog(c echo.Context) error {
	if err := h.controllerUC.Close(); err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", nil)
}

// UpdateForm applies a partial form update
func (h *DashboardHandler) UpdateForm(c echo.Context) error {
	var update models.FormUpdate
	if err := c.Bind(&update); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	view, err := h.controllerUC.UpdateForm(update)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", view)
}

// Submit sends the refund, cancel or assign request of the open dialog
func (h *DashboardHandler) Submit(c echo.Context) error {
	return h.outcome(c, "Submit", h.controllerUC.Submit)
}

// Unassign removes the driver of the booking in the assign dialog
func (h *DashboardHandler) Unassign(c echo.Context) error {
	return h.outcome(c, "Unassign", h.controllerUC.Unassign)
}

// CallCustomer bridges the admin and the customer of the open booking
func (h *DashboardHandler) CallCustomer(c echo.Context) error {
	return h.outcome(c, "CallCustomer", h.controllerUC.CallCustomer)
}

// RequestComplete asks for confirmation before completing a ride
func (h *DashboardHandler) RequestComplete(c echo.Context) error {
	view, err := h.controllerUC.RequestComplete()
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", view)
}

// ConfirmComplete marks the ride completed
func (h *DashboardHandler) ConfirmComplete(c echo.Context) error {
	return h.outcome(c, "ConfirmComplete", h.controllerUC.ConfirmComplete)
}

func (h *DashboardHandler) outcome(c echo.Context, name string, action func(ctx context.Context) (*models.ActionOutcome, error)) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Console."+name)

	ctx := appctx.FromEchoContext(c)
	outcome, err := action(ctx)
	if err != nil {
		if !apperrors.IsValidation(err) {
			nrpkg.NoticeError(ctx, err)
		}
		logger.Debug("Dialog action failed",
			logger.String("action", name),
			logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, outcome.Message, outcome)
}
