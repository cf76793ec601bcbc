package dashboard

import (
	"context"

	"github.com/piresc/rideflex-admin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/rideflex-admin/services/dashboard ControllerUC,PollerUC

// SummarySource fetches a fresh dashboard summary
type SummarySource interface {
	FetchSummary(ctx context.Context) (*models.DashboardSummary, error)
}

// Refresher schedules a summary fetch without waiting for it
type Refresher interface {
	RequestRefresh()
}

// PollerUC owns the dashboard summary snapshot
type PollerUC interface {
	Refresher
	Start()
	Stop()
	Refresh(ctx context.Context) error
	State() models.PollerState
	Subscribe(fn func(summary *models.DashboardSummary))
}

// ControllerUC mediates the booking dialogs. At most one dialog is open.
type ControllerUC interface {
	Open(ctx context.Context, kind models.DialogKind, bookingID string) (*models.DialogView, error)
	Close() error
	Dialog() *models.DialogView
	UpdateForm(update models.FormUpdate) (*models.DialogView, error)

	Submit(ctx context.Context) (*models.ActionOutcome, error)
	Unassign(ctx context.Context) (*models.ActionOutcome, error)
	CallCustomer(ctx context.Context) (*models.ActionOutcome, error)
	RequestComplete() (*models.DialogView, error)
	ConfirmComplete(ctx context.Context) (*models.ActionOutcome, error)

	WithOverlay(summary *models.DashboardSummary) *models.DashboardSummary
	Reconcile(summary *models.DashboardSummary)
	Reset()
}
