package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/piresc/rideflex-admin/internal/pkg/apperrors"
	appctx "github.com/piresc/rideflex-admin/internal/pkg/context"
	"github.com/piresc/rideflex-admin/internal/pkg/logger"
	"github.com/piresc/rideflex-admin/internal/pkg/models"
	"github.com/piresc/rideflex-admin/services/backend"
	"github.com/piresc/rideflex-admin/services/dashboard"
)

// defaultAdminUserID is sent when the request carries no admin id
const defaultAdminUserID = "admin"

// SnapshotReader gives the controller read access to the current summary
type SnapshotReader interface {
	State() models.PollerState
}

type dialog struct {
	seq     uint64
	kind    models.DialogKind
	phase   models.DialogPhase
	booking models.RecentBooking

	refund   models.RefundForm
	cancel   models.CancelForm
	customer models.CustomerForm
	assign   models.AssignForm

	drivers        []models.AvailableDriver
	driversLoading bool
	driversError   string

	confirmingComplete bool
	status             string
}

// Controller runs the booking dialogs against the polled snapshot. It holds
// at most one dialog, and a submitting dialog can be neither replaced nor
// closed until its request returns.
type Controller struct {
	api       backend.APIUC
	snapshots SnapshotReader
	refresher dashboard.Refresher

	mu      sync.Mutex
	seq     uint64
	current *dialog
	overlay map[string]string
}

// NewController creates a new booking action controller
func NewController(api backend.APIUC, snapshots SnapshotReader, refresher dashboard.Refresher) *Controller {
	return &Controller{
		api:       api,
		snapshots: snapshots,
		refresher: refresher,
		overlay:   make(map[string]string),
	}
}

// Open selects a booking from the current snapshot and opens kind for it with
// default form values. The assign dialog loads the driver list before returning.
func (c *Controller) Open(ctx context.Context, kind models.DialogKind, bookingID string) (*models.DialogView, error) {
	if !kind.Valid() {
		return nil, apperrors.NewValidationError("kind", fmt.Sprintf("Unknown dialog %q", kind))
	}

	booking, ok := c.snapshots.State().Summary.FindBooking(bookingID)
	if !ok {
		return nil, apperrors.ErrBookingNotFound
	}
	switch {
	case kind == models.DialogRefund && !booking.CanRefund:
		return nil, apperrors.NewValidationError("bookingId", "This booking cannot be refunded")
	case kind == models.DialogCancel && !booking.CanCancel:
		return nil, apperrors.NewValidationError("bookingId", "This booking cannot be cancelled")
	}

	c.mu.Lock()
	if c.current != nil && c.current.phase == models.PhaseSubmitting {
		c.mu.Unlock()
		return nil, apperrors.ErrSubmitInProgress
	}
	c.seq++
	d := &dialog{
		seq:     c.seq,
		kind:    kind,
		phase:   models.PhaseOpen,
		booking: c.applyOverlay(booking),
		refund:  models.RefundForm{Type: models.RefundFull},
		cancel:  models.CancelForm{IssueRefund: true},
	}
	if kind == models.DialogAssign {
		d.driversLoading = true
	}
	c.current = d
	seq := d.seq
	c.mu.Unlock()

	if kind == models.DialogAssign {
		c.loadDrivers(ctx, seq)
	}

	return c.Dialog(), nil
}

func (c *Controller) loadDrivers(ctx context.Context, seq uint64) {
	drivers, err := c.api.ListAvailableDrivers(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	d := c.current
	if d == nil || d.seq != seq {
		return
	}
	d.driversLoading = false
	if err != nil {
		d.driversError = apperrors.FailureMessage(err)
		return
	}
	d.drivers = drivers
}

// Close discards the dialog and its form
func (c *Controller) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current != nil && c.current.phase == models.PhaseSubmitting {
		return apperrors.ErrSubmitInProgress
	}
	c.current = nil
	return nil
}

// Reset drops the dialog and overlay unconditionally, used when the session ends
func (c *Controller) Reset() {
	c.mu.Lock()
	c.current = nil
	c.overlay = make(map[string]string)
	c.mu.Unlock()
}

// Dialog returns the open dialog, nil when closed
func (c *Controller) Dialog() *models.DialogView {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view()
}

// UpdateForm applies the fields of update that belong to the open dialog
func (c *Controller) UpdateForm(update models.FormUpdate) (*models.DialogView, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	d := c.current
	if d == nil {
		return nil, apperrors.ErrNoDialog
	}
	if d.phase == models.PhaseSubmitting {
		return nil, apperrors.ErrSubmitInProgress
	}

	switch d.kind {
	case models.DialogRefund:
		if update.RefundType != nil {
			if *update.RefundType != models.RefundFull && *update.RefundType != models.RefundPartial {
				return nil, apperrors.NewValidationError("refundType", "Refund type must be full or partial")
			}
			d.refund.Type = *update.RefundType
		}
		if update.Amount != nil {
			d.refund.Amount = models.Float64Ptr(*update.Amount)
		}
		if update.Reason != nil {
			d.refund.Reason = *update.Reason
		}
	case models.DialogCancel:
		if update.Reason != nil {
			d.cancel.Reason = *update.Reason
		}
		if update.IssueRefund != nil {
			d.cancel.IssueRefund = *update.IssueRefund
		}
		if update.RefundAmount != nil {
			d.cancel.RefundAmount = models.Float64Ptr(*update.RefundAmount)
		}
	case models.DialogCustomer:
		if update.MyPhone != nil {
			d.customer.MyPhone = *update.MyPhone
		}
	case models.DialogAssign:
		if update.DriverID != nil {
			d.assign.DriverID = *update.DriverID
		}
	}
	d.status = ""

	return c.view(), nil
}

// Submit sends the refund, cancel or assign request of the open dialog.
// Success closes the dialog and asks the poller for a refresh; failure keeps
// the dialog and its form open with the error inline.
func (c *Controller) Submit(ctx context.Context) (*models.ActionOutcome, error) {
	c.mu.Lock()
	d := c.current
	if d == nil {
		c.mu.Unlock()
		return nil, apperrors.ErrNoDialog
	}
	kind := d.kind
	c.mu.Unlock()

	switch kind {
	case models.DialogRefund:
		return c.submit(ctx, kind, c.refundAction(ctx), true)
	case models.DialogCancel:
		return c.submit(ctx, kind, c.cancelAction(ctx), true)
	case models.DialogAssign:
		return c.submit(ctx, kind, c.assignAction(ctx), true)
	default:
		return nil, apperrors.ErrWrongDialog
	}
}

// Unassign removes the driver of the booking held by the assign dialog.
// It is only offered while the booking is DriverAssigned.
func (c *Controller) Unassign(ctx context.Context) (*models.ActionOutcome, error) {
	return c.submit(ctx, models.DialogAssign, func(d *dialog) (func() (string, error), error) {
		if !canUnassign(d) {
			return nil, apperrors.NewValidationError("bookingId", "Booking has no assigned driver")
		}
		bookingID := d.booking.ID
		return func() (string, error) {
			result, err := c.api.UnassignDriver(ctx, bookingID)
			if err != nil {
				return "", err
			}
			return messageOr(result.Message, "Driver unassigned successfully!"), nil
		}, nil
	}, true)
}

// CallCustomer rings the admin's phone and bridges to the customer. The
// booking is not changed, so no refresh follows and the dialog stays open.
func (c *Controller) CallCustomer(ctx context.Context) (*models.ActionOutcome, error) {
	c.mu.Lock()
	d := c.current
	if d == nil {
		c.mu.Unlock()
		return nil, apperrors.ErrNoDialog
	}
	if d.kind != models.DialogCustomer {
		c.mu.Unlock()
		return nil, apperrors.ErrWrongDialog
	}
	if d.phase == models.PhaseSubmitting {
		c.mu.Unlock()
		return nil, apperrors.ErrSubmitInProgress
	}
	if err := validateCall(d); err != nil {
		d.status = apperrors.FailureMessage(err)
		c.mu.Unlock()
		return nil, err
	}
	req := models.CallCustomerRequest{CustomerPhone: d.booking.Phone(), MyPhone: strings.TrimSpace(d.customer.MyPhone)}
	bookingID := d.booking.ID
	seq := d.seq
	d.phase = models.PhaseSubmitting
	d.status = ""
	c.mu.Unlock()

	resp, err := c.api.CallCustomer(ctx, bookingID, req)

	c.mu.Lock()
	defer c.mu.Unlock()

	var message string
	switch {
	case err != nil:
		message = apperrors.FailureMessage(err)
	case resp.Success:
		message = apperrors.UserMessage(true, resp.Message)
	default:
		message = apperrors.UserMessage(false, resp.Message)
	}

	if d := c.current; d != nil && d.seq == seq {
		d.phase = models.PhaseOpen
		d.status = message
	}
	if err != nil {
		return nil, err
	}
	return &models.ActionOutcome{Message: message, Dialog: c.view()}, nil
}

// RequestComplete asks for confirmation before a ride is marked completed
func (c *Controller) RequestComplete() (*models.DialogView, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	d := c.current
	if d == nil {
		return nil, apperrors.ErrNoDialog
	}
	if d.kind != models.DialogCustomer {
		return nil, apperrors.ErrWrongDialog
	}
	if d.phase == models.PhaseSubmitting {
		return nil, apperrors.ErrSubmitInProgress
	}
	if d.booking.HasStatus(models.BookingStatusCompleted) {
		return nil, apperrors.NewValidationError("status", "Ride is already completed")
	}
	d.confirmingComplete = true
	d.status = ""
	return c.view(), nil
}

// ConfirmComplete marks the held booking completed. On success the new
// status is shown at once through an overlay that the next snapshot replaces,
// and the customer dialog stays open.
func (c *Controller) ConfirmComplete(ctx context.Context) (*models.ActionOutcome, error) {
	return c.submit(ctx, models.DialogCustomer, func(d *dialog) (func() (string, error), error) {
		if !d.confirmingComplete {
			return nil, apperrors.ErrConfirmationRequired
		}
		bookingID := d.booking.ID
		return func() (string, error) {
			result, err := c.api.CompleteBooking(ctx, bookingID)
			if err != nil {
				return "", err
			}
			return messageOr(result.Message, "Ride marked as completed"), nil
		}, nil
	}, false)
}

// WithOverlay returns summary with pending optimistic statuses applied. The
// input is never modified.
func (c *Controller) WithOverlay(summary *models.DashboardSummary) *models.DashboardSummary {
	if summary == nil {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.overlay) == 0 {
		return summary
	}
	out := *summary
	out.RecentBookings = make([]models.RecentBooking, len(summary.RecentBookings))
	for i, b := range summary.RecentBookings {
		out.RecentBookings[i] = c.applyOverlay(b.Clone())
	}
	return &out
}

// Reconcile is called with every published snapshot. It drops the overlay
// and refreshes the booking held by an idle dialog.
func (c *Controller) Reconcile(summary *models.DashboardSummary) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.overlay = make(map[string]string)

	d := c.current
	if d == nil || d.phase == models.PhaseSubmitting {
		return
	}
	if fresh, ok := summary.FindBooking(d.booking.ID); ok {
		d.booking = fresh
	}
}

// submit runs the generic dialog state machine. prepare validates the form
// under the lock and returns the network call; closeOnSuccess selects
// between closing the dialog and keeping it open with a status line.
func (c *Controller) submit(
	ctx context.Context,
	kind models.DialogKind,
	prepare func(d *dialog) (func() (string, error), error),
	closeOnSuccess bool,
) (*models.ActionOutcome, error) {
	c.mu.Lock()
	d := c.current
	switch {
	case d == nil:
		c.mu.Unlock()
		return nil, apperrors.ErrNoDialog
	case d.kind != kind:
		c.mu.Unlock()
		return nil, apperrors.ErrWrongDialog
	case d.phase == models.PhaseSubmitting:
		c.mu.Unlock()
		return nil, apperrors.ErrSubmitInProgress
	}

	call, err := prepare(d)
	if err != nil {
		c.mu.Unlock()
		return nil, err
	}
	seq := d.seq
	bookingID := d.booking.ID
	bookingRef := d.booking.DisplayRef()
	d.phase = models.PhaseSubmitting
	d.status = ""
	c.mu.Unlock()

	message, err := call()

	c.mu.Lock()
	d = c.current
	if d == nil || d.seq != seq {
		// the session ended while the request was in flight
		c.mu.Unlock()
		if err != nil {
			return nil, err
		}
		return &models.ActionOutcome{Message: apperrors.UserMessage(true, message)}, nil
	}

	if err != nil {
		d.phase = models.PhaseOpen
		d.status = apperrors.FailureMessage(err)
		c.mu.Unlock()

		logger.Warn("Booking action failed",
			logger.String("dialog", string(kind)),
			logger.String("booking_id", bookingID),
			logger.Err(err))
		return nil, err
	}

	status := apperrors.UserMessage(true, message)
	outcome := &models.ActionOutcome{Message: status, Refreshed: true}
	if closeOnSuccess {
		c.current = nil
	} else {
		d.phase = models.PhaseOpen
		d.confirmingComplete = false
		d.status = status
		c.overlay[bookingID] = models.BookingStatusCompleted
		d.booking = c.applyOverlay(d.booking)
		outcome.Dialog = c.view()
	}
	c.mu.Unlock()

	logger.Info("Booking action succeeded",
		logger.String("dialog", string(kind)),
		logger.String("booking_id", bookingID),
		logger.String("booking_ref", bookingRef))

	c.refresher.RequestRefresh()
	return outcome, nil
}

func (c *Controller) refundAction(ctx context.Context) func(d *dialog) (func() (string, error), error) {
	return func(d *dialog) (func() (string, error), error) {
		if err := validateRefund(d); err != nil {
			return nil, err
		}
		req := models.RefundRequest{
			BookingID:    d.booking.ID,
			Reason:       strings.TrimSpace(d.refund.Reason),
			AdminUserID:  adminUserID(ctx),
			AdminComment: fmt.Sprintf("%s refund processed via dashboard", d.refund.Type),
		}
		if d.refund.Type == models.RefundPartial {
			req.Amount = models.Float64Ptr(*d.refund.Amount)
		}
		return func() (string, error) {
			resp, err := c.api.ProcessRefund(ctx, req)
			if err != nil {
				return "", err
			}
			return messageOr(resp.Message, "Refund processed successfully!"), nil
		}, nil
	}
}

func (c *Controller) cancelAction(ctx context.Context) func(d *dialog) (func() (string, error), error) {
	return func(d *dialog) (func() (string, error), error) {
		if err := validateCancel(d); err != nil {
			return nil, err
		}
		req := models.CancellationRequest{
			BookingID:   d.booking.ID,
			Reason:      strings.TrimSpace(d.cancel.Reason),
			IssueRefund: d.cancel.IssueRefund,
			AdminUserID: adminUserID(ctx),
		}
		if d.cancel.IssueRefund && d.cancel.RefundAmount != nil {
			req.RefundAmount = models.Float64Ptr(*d.cancel.RefundAmount)
		}
		return func() (string, error) {
			resp, err := c.api.CancelBooking(ctx, req)
			if err != nil {
				return "", err
			}
			return messageOr(resp.Message, "Booking cancelled successfully!"), nil
		}, nil
	}
}

func (c *Controller) assignAction(ctx context.Context) func(d *dialog) (func() (string, error), error) {
	return func(d *dialog) (func() (string, error), error) {
		if err := validateAssign(d); err != nil {
			return nil, err
		}
		bookingID, driverID := d.booking.ID, strings.TrimSpace(d.assign.DriverID)
		return func() (string, error) {
			result, err := c.api.AssignDriver(ctx, bookingID, driverID)
			if err != nil {
				return "", err
			}
			return messageOr(result.Message, "Driver assigned successfully!"), nil
		}, nil
	}
}

// view copies the open dialog. Caller holds the lock.
func (c *Controller) view() *models.DialogView {
	d := c.current
	if d == nil {
		return nil
	}

	v := &models.DialogView{
		Kind:               d.kind,
		Phase:              d.phase,
		Booking:            d.booking.Clone(),
		DriversLoading:     d.driversLoading,
		DriversError:       d.driversError,
		ConfirmingComplete: d.confirmingComplete,
		Status:             d.status,
	}

	var problem error
	switch d.kind {
	case models.DialogRefund:
		form := d.refund
		form.Amount = cloneAmount(d.refund.Amount)
		v.Refund = &form
		problem = validateRefund(d)
	case models.DialogCancel:
		form := d.cancel
		form.RefundAmount = cloneAmount(d.cancel.RefundAmount)
		v.Cancel = &form
		problem = validateCancel(d)
	case models.DialogCustomer:
		form := d.customer
		v.Customer = &form
		problem = validateCall(d)
	case models.DialogAssign:
		form := d.assign
		v.Assign = &form
		v.Drivers = append([]models.AvailableDriver(nil), d.drivers...)
		v.CanUnassign = canUnassign(d)
		problem = validateAssign(d)
	}

	if problem != nil {
		v.Problem = apperrors.Text(problem)
	}
	v.CanSubmit = problem == nil && d.phase == models.PhaseOpen
	return v
}

// applyOverlay sets the optimistic status of b, if any. Caller holds the lock.
func (c *Controller) applyOverlay(b models.RecentBooking) models.RecentBooking {
	if status, ok := c.overlay[b.ID]; ok {
		b.Status = models.StringPtr(status)
	}
	return b
}

func adminUserID(ctx context.Context) string {
	if id := appctx.GetAdminID(ctx); id != "" {
		return id
	}
	return defaultAdminUserID
}

func messageOr(message, fallback string) string {
	if strings.TrimSpace(message) == "" {
		return fallback
	}
	return message
}

func cloneAmount(f *float64) *float64 {
	if f == nil {
		return nil
	}
	return models.Float64Ptr(*f)
}
