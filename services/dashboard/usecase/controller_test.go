package usecase

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/piresc/rideflex-admin/internal/pkg/apperrors"
	appctx "github.com/piresc/rideflex-admin/internal/pkg/context"
	"github.com/piresc/rideflex-admin/internal/pkg/models"
	"github.com/piresc/rideflex-admin/services/backend/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSnapshots struct {
	summary *models.DashboardSummary
}

func (f *fakeSnapshots) State() models.PollerState {
	return models.PollerState{Summary: f.summary, Polling: true}
}

type fakeRefresher struct {
	requests atomic.Int32
}

func (f *fakeRefresher) RequestRefresh() { f.requests.Add(1) }

func testSummary() *models.DashboardSummary {
	return &models.DashboardSummary{
		TotalBookings: 3,
		RecentBookings: []models.RecentBooking{
			{
				ID:          "b1",
				ClientName:  models.StringPtr("Ana Lima"),
				ClientPhone: models.StringPtr("+15551234"),
				Status:      models.StringPtr(models.BookingStatusConfirmed),
				TotalAmount: models.Float64Ptr(100),
				CanRefund:   true,
				CanCancel:   true,
			},
			{
				ID:                 "b2",
				Status:             models.StringPtr("driverassigned"),
				TotalAmount:        models.Float64Ptr(80),
				AssignedDriverID:   models.StringPtr("d1"),
				AssignedDriverName: models.StringPtr("Rui"),
			},
			{
				ID:          "b3",
				Status:      models.StringPtr(models.BookingStatusCompleted),
				TotalAmount: models.Float64Ptr(40),
			},
		},
	}
}

func newTestController(t *testing.T) (*Controller, *mocks.MockAPIUC, *fakeRefresher, *fakeSnapshots) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	api := mocks.NewMockAPIUC(ctrl)
	snapshots := &fakeSnapshots{summary: testSummary()}
	refresher := &fakeRefresher{}
	return NewController(api, snapshots, refresher), api, refresher, snapshots
}

func strPtr(s string) *string { return &s }

func TestOpen_UnknownBooking(t *testing.T) {
	c, _, _, _ := newTestController(t)

	_, err := c.Open(context.Background(), models.DialogRefund, "missing")

	assert.ErrorIs(t, err, apperrors.ErrBookingNotFound)
	assert.Nil(t, c.Dialog())
}

func TestOpen_RespectsBackendFlags(t *testing.T) {
	c, _, _, _ := newTestController(t)

	_, err := c.Open(context.Background(), models.DialogRefund, "b3")
	assert.True(t, apperrors.IsValidation(err))

	_, err = c.Open(context.Background(), models.DialogCancel, "b2")
	assert.True(t, apperrors.IsValidation(err))

	_, err = c.Open(context.Background(), models.DialogKind("bogus"), "b1")
	assert.True(t, apperrors.IsValidation(err))
}

func TestOpen_DefaultForms(t *testing.T) {
	c, _, _, _ := newTestController(t)

	view, err := c.Open(context.Background(), models.DialogRefund, "b1")
	require.NoError(t, err)
	assert.Equal(t, models.PhaseOpen, view.Phase)
	assert.Equal(t, models.RefundFull, view.Refund.Type)
	assert.False(t, view.CanSubmit)
	assert.NotEmpty(t, view.Problem)

	view, err = c.Open(context.Background(), models.DialogCancel, "b1")
	require.NoError(t, err)
	assert.True(t, view.Cancel.IssueRefund)
	assert.Nil(t, view.Refund)
}

func TestSubmitRefund_HappyPath(t *testing.T) {
	c, api, refresher, _ := newTestController(t)
	ctx := context.Background()

	api.EXPECT().ProcessRefund(gomock.Any(), models.RefundRequest{
		BookingID:    "b1",
		Reason:       "customer request",
		AdminUserID:  "admin",
		AdminComment: "full refund processed via dashboard",
	}).Return(&models.RefundResponse{Success: true, RefundAmount: 100, Message: "Refund issued"}, nil)

	_, err := c.Open(ctx, models.DialogRefund, "b1")
	require.NoError(t, err)
	view, err := c.UpdateForm(models.FormUpdate{Reason: strPtr("customer request")})
	require.NoError(t, err)
	assert.True(t, view.CanSubmit)

	outcome, err := c.Submit(ctx)

	require.NoError(t, err)
	assert.Equal(t, "✅ Refund issued", outcome.Message)
	assert.True(t, outcome.Refreshed)
	assert.Nil(t, c.Dialog())
	assert.Equal(t, int32(1), refresher.requests.Load())
}

func TestSubmitRefund_PartialUsesAdminFromContext(t *testing.T) {
	c, api, _, _ := newTestController(t)
	ctx := appctx.WithAdminID(context.Background(), "admin-7")
	partial := models.RefundPartial
	amount := 25.5

	api.EXPECT().ProcessRefund(gomock.Any(), models.RefundRequest{
		BookingID:    "b1",
		Amount:       models.Float64Ptr(25.5),
		Reason:       "late pickup",
		AdminUserID:  "admin-7",
		AdminComment: "partial refund processed via dashboard",
	}).Return(&models.RefundResponse{Success: true}, nil)

	_, err := c.Open(ctx, models.DialogRefund, "b1")
	require.NoError(t, err)
	_, err = c.UpdateForm(models.FormUpdate{RefundType: &partial, Amount: &amount, Reason: strPtr("late pickup")})
	require.NoError(t, err)

	outcome, err := c.Submit(ctx)

	require.NoError(t, err)
	assert.Equal(t, "✅ Refund processed successfully!", outcome.Message)
}

func TestSubmit_ValidationBlocksNetwork(t *testing.T) {
	c, _, refresher, _ := newTestController(t)
	ctx := context.Background()
	partial := models.RefundPartial

	_, err := c.Open(ctx, models.DialogRefund, "b1")
	require.NoError(t, err)

	_, err = c.Submit(ctx)
	assert.True(t, apperrors.IsValidation(err))

	tooMuch := 150.0
	_, err = c.UpdateForm(models.FormUpdate{RefundType: &partial, Amount: &tooMuch, Reason: strPtr("x")})
	require.NoError(t, err)
	_, err = c.Submit(ctx)
	assert.True(t, apperrors.IsValidation(err))

	zero := 0.0
	view, err := c.UpdateForm(models.FormUpdate{Amount: &zero})
	require.NoError(t, err)
	assert.False(t, view.CanSubmit)
	_, err = c.Submit(ctx)
	assert.True(t, apperrors.IsValidation(err))

	view = c.Dialog()
	require.NotNil(t, view)
	assert.Equal(t, models.PhaseOpen, view.Phase)
	assert.Equal(t, int32(0), refresher.requests.Load())
}

func TestSubmit_SingleInFlight(t *testing.T) {
	c, api, refresher, _ := newTestController(t)
	ctx := context.Background()

	entered := make(chan struct{})
	release := make(chan struct{})
	api.EXPECT().ProcessRefund(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, models.RefundRequest) (*models.RefundResponse, error) {
			close(entered)
			<-release
			return &models.RefundResponse{Success: true, Message: "done"}, nil
		}).Times(1)

	_, err := c.Open(ctx, models.DialogRefund, "b1")
	require.NoError(t, err)
	_, err = c.UpdateForm(models.FormUpdate{Reason: strPtr("duplicate charge")})
	require.NoError(t, err)

	type result struct {
		outcome *models.ActionOutcome
		err     error
	}
	first := make(chan result, 1)
	go func() {
		outcome, err := c.Submit(ctx)
		first <- result{outcome, err}
	}()
	<-entered

	assert.Equal(t, models.PhaseSubmitting, c.Dialog().Phase)
	assert.False(t, c.Dialog().CanSubmit)

	_, err = c.Submit(ctx)
	assert.ErrorIs(t, err, apperrors.ErrSubmitInProgress)
	assert.ErrorIs(t, c.Close(), apperrors.ErrSubmitInProgress)
	_, err = c.Open(ctx, models.DialogCancel, "b1")
	assert.ErrorIs(t, err, apperrors.ErrSubmitInProgress)
	_, err = c.UpdateForm(models.FormUpdate{Reason: strPtr("changed")})
	assert.ErrorIs(t, err, apperrors.ErrSubmitInProgress)

	close(release)
	res := <-first

	require.NoError(t, res.err)
	assert.Equal(t, "✅ done", res.outcome.Message)
	assert.Nil(t, c.Dialog())
	assert.Equal(t, int32(1), refresher.requests.Load())
}

func TestSubmitCancel_FailureKeepsForm(t *testing.T) {
	c, api, refresher, _ := newTestController(t)
	ctx := context.Background()
	refund := 30.0

	api.EXPECT().CancelBooking(gomock.Any(), models.CancellationRequest{
		BookingID:    "b1",
		Reason:       "driver unavailable",
		IssueRefund:  true,
		RefundAmount: models.Float64Ptr(30),
		AdminUserID:  "admin",
	}).Return(nil, &apperrors.RejectedError{Op: "Cancellation failed", Message: "Booking already started"})

	_, err := c.Open(ctx, models.DialogCancel, "b1")
	require.NoError(t, err)
	_, err = c.UpdateForm(models.FormUpdate{Reason: strPtr("driver unavailable"), RefundAmount: &refund})
	require.NoError(t, err)

	_, err = c.Submit(ctx)
	require.Error(t, err)

	view := c.Dialog()
	require.NotNil(t, view)
	assert.Equal(t, models.PhaseOpen, view.Phase)
	assert.Equal(t, "❌ Booking already started", view.Status)
	assert.Equal(t, "driver unavailable", view.Cancel.Reason)
	assert.Equal(t, 30.0, *view.Cancel.RefundAmount)
	assert.True(t, view.CanSubmit)
	assert.Equal(t, int32(0), refresher.requests.Load())
}

func TestSubmitCancel_WithoutRefundDropsAmount(t *testing.T) {
	c, api, _, _ := newTestController(t)
	ctx := context.Background()
	refund := 30.0
	noRefund := false

	api.EXPECT().CancelBooking(gomock.Any(), models.CancellationRequest{
		BookingID:   "b1",
		Reason:      "duplicate",
		IssueRefund: false,
		AdminUserID: "admin",
	}).Return(&models.RefundResponse{Success: true}, nil)

	_, err := c.Open(ctx, models.DialogCancel, "b1")
	require.NoError(t, err)
	_, err = c.UpdateForm(models.FormUpdate{Reason: strPtr("duplicate"), RefundAmount: &refund, IssueRefund: &noRefund})
	require.NoError(t, err)

	outcome, err := c.Submit(ctx)

	require.NoError(t, err)
	assert.Equal(t, "✅ Booking cancelled successfully!", outcome.Message)
}

func TestAssign_ReassignAndUnassign(t *testing.T) {
	c, api, refresher, _ := newTestController(t)
	ctx := context.Background()

	api.EXPECT().ListAvailableDrivers(gomock.Any()).Return([]models.AvailableDriver{
		{DriverID: "d1", FullName: "Rui"},
		{DriverID: "d2", FullName: "Marta"},
	}, nil).Times(2)

	view, err := c.Open(ctx, models.DialogAssign, "b2")
	require.NoError(t, err)
	assert.Len(t, view.Drivers, 2)
	assert.False(t, view.DriversLoading)
	assert.True(t, view.CanUnassign)

	view, err = c.UpdateForm(models.FormUpdate{DriverID: strPtr("d1")})
	require.NoError(t, err)
	assert.False(t, view.CanSubmit)

	view, err = c.UpdateForm(models.FormUpdate{DriverID: strPtr("d9")})
	require.NoError(t, err)
	assert.False(t, view.CanSubmit)

	view, err = c.UpdateForm(models.FormUpdate{DriverID: strPtr("d2")})
	require.NoError(t, err)
	assert.True(t, view.CanSubmit)

	api.EXPECT().AssignDriver(gomock.Any(), "b2", "d2").Return(&models.ActionResult{Success: true}, nil)
	outcome, err := c.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, "✅ Driver assigned successfully!", outcome.Message)
	assert.Nil(t, c.Dialog())

	_, err = c.Open(ctx, models.DialogAssign, "b2")
	require.NoError(t, err)
	api.EXPECT().UnassignDriver(gomock.Any(), "b2").Return(&models.ActionResult{Success: true, Message: "Driver removed"}, nil)
	outcome, err = c.Unassign(ctx)
	require.NoError(t, err)
	assert.Equal(t, "✅ Driver removed", outcome.Message)
	assert.Equal(t, int32(2), refresher.requests.Load())
}

func TestAssign_UnassignOnlyWhenDriverAssigned(t *testing.T) {
	c, api, _, _ := newTestController(t)
	ctx := context.Background()

	api.EXPECT().ListAvailableDrivers(gomock.Any()).Return(nil, &apperrors.NetworkError{Op: "Failed to fetch available drivers"})

	view, err := c.Open(ctx, models.DialogAssign, "b1")
	require.NoError(t, err)
	assert.False(t, view.CanUnassign)
	assert.Contains(t, view.DriversError, "❌")
	assert.Empty(t, view.Drivers)

	_, err = c.Unassign(ctx)
	assert.True(t, apperrors.IsValidation(err))
}

func TestCallCustomer_NoRefresh(t *testing.T) {
	c, api, refresher, _ := newTestController(t)
	ctx := context.Background()

	_, err := c.Open(ctx, models.DialogCustomer, "b1")
	require.NoError(t, err)

	_, err = c.CallCustomer(ctx)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "❌ Please enter your phone number", c.Dialog().Status)

	_, err = c.Submit(ctx)
	assert.ErrorIs(t, err, apperrors.ErrWrongDialog)

	api.EXPECT().CallCustomer(gomock.Any(), "b1", models.CallCustomerRequest{
		CustomerPhone: "+15551234",
		MyPhone:       "+15550001",
	}).Return(&models.CallCustomerResponse{Success: true, Message: "Calling your phone now"}, nil)

	_, err = c.UpdateForm(models.FormUpdate{MyPhone: strPtr(" +15550001 ")})
	require.NoError(t, err)
	outcome, err := c.CallCustomer(ctx)

	require.NoError(t, err)
	assert.Equal(t, "✅ Calling your phone now", outcome.Message)
	assert.Equal(t, "✅ Calling your phone now", c.Dialog().Status)
	assert.Equal(t, int32(0), refresher.requests.Load())
}

func TestCallCustomer_BackendDeclines(t *testing.T) {
	c, api, _, _ := newTestController(t)
	ctx := context.Background()

	api.EXPECT().CallCustomer(gomock.Any(), "b1", gomock.Any()).
		Return(&models.CallCustomerResponse{Success: false, Message: "Line busy"}, nil)

	_, err := c.Open(ctx, models.DialogCustomer, "b1")
	require.NoError(t, err)
	_, err = c.UpdateForm(models.FormUpdate{MyPhone: strPtr("+15550001")})
	require.NoError(t, err)

	outcome, err := c.CallCustomer(ctx)

	require.NoError(t, err)
	assert.Equal(t, "❌ Line busy", outcome.Message)
	assert.Equal(t, models.PhaseOpen, c.Dialog().Phase)
}

func TestCompleteRide_OverlayUntilNextSnapshot(t *testing.T) {
	c, api, refresher, snapshots := newTestController(t)
	ctx := context.Background()

	_, err := c.Open(ctx, models.DialogCustomer, "b1")
	require.NoError(t, err)

	_, err = c.ConfirmComplete(ctx)
	assert.ErrorIs(t, err, apperrors.ErrConfirmationRequired)

	view, err := c.RequestComplete()
	require.NoError(t, err)
	assert.True(t, view.ConfirmingComplete)

	api.EXPECT().CompleteBooking(gomock.Any(), "b1").Return(&models.ActionResult{Success: true}, nil)
	outcome, err := c.ConfirmComplete(ctx)

	require.NoError(t, err)
	assert.Equal(t, "✅ Ride marked as completed", outcome.Message)
	require.NotNil(t, outcome.Dialog)
	assert.True(t, outcome.Dialog.Booking.HasStatus(models.BookingStatusCompleted))
	assert.False(t, outcome.Dialog.ConfirmingComplete)
	assert.Equal(t, int32(1), refresher.requests.Load())

	overlaid := c.WithOverlay(snapshots.summary)
	b1, _ := overlaid.FindBooking("b1")
	assert.True(t, b1.HasStatus(models.BookingStatusCompleted))
	orig, _ := snapshots.summary.FindBooking("b1")
	assert.True(t, orig.HasStatus(models.BookingStatusConfirmed))

	_, err = c.RequestComplete()
	assert.True(t, apperrors.IsValidation(err))

	fresh := testSummary()
	fresh.RecentBookings[0].Status = models.StringPtr(models.BookingStatusCompleted)
	fresh.RecentBookings[0].PaidAmount = models.Float64Ptr(100)
	c.Reconcile(fresh)

	assert.Same(t, snapshots.summary, c.WithOverlay(snapshots.summary))
	view = c.Dialog()
	require.NotNil(t, view)
	assert.Equal(t, 100.0, *view.Booking.PaidAmount)
}

func TestReset_ClearsDialogAndOverlay(t *testing.T) {
	c, api, _, snapshots := newTestController(t)
	ctx := context.Background()

	api.EXPECT().CompleteBooking(gomock.Any(), "b1").Return(&models.ActionResult{Success: true}, nil)

	_, err := c.Open(ctx, models.DialogCustomer, "b1")
	require.NoError(t, err)
	_, err = c.RequestComplete()
	require.NoError(t, err)
	_, err = c.ConfirmComplete(ctx)
	require.NoError(t, err)

	c.Reset()

	assert.Nil(t, c.Dialog())
	assert.Same(t, snapshots.summary, c.WithOverlay(snapshots.summary))
	_, err = c.Submit(ctx)
	assert.ErrorIs(t, err, apperrors.ErrNoDialog)
}

func TestClose_DiscardsForm(t *testing.T) {
	c, _, _, _ := newTestController(t)
	ctx := context.Background()

	_, err := c.Open(ctx, models.DialogRefund, "b1")
	require.NoError(t, err)
	_, err = c.UpdateForm(models.FormUpdate{Reason: strPtr("typo")})
	require.NoError(t, err)
	require.NoError(t, c.Close())

	view, err := c.Open(ctx, models.DialogRefund, "b1")
	require.NoError(t, err)
	assert.Empty(t, view.Refund.Reason)
}
