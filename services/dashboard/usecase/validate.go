package usecase

import (
	"fmt"
	"strings"

	"github.com/piresc/rideflex-admin/internal/pkg/apperrors"
	"github.com/piresc/rideflex-admin/internal/pkg/models"
)

// The validators run under the controller lock before any request is sent.
// A dialog whose validator fails cannot be submitted.

func validateRefund(d *dialog) error {
	if strings.TrimSpace(d.refund.Reason) == "" {
		return apperrors.NewValidationError("reason", "Please enter a reason for the refund")
	}
	if d.refund.Type != models.RefundPartial {
		return nil
	}
	if d.refund.Amount == nil || *d.refund.Amount <= 0 {
		return apperrors.NewValidationError("amount", "Please enter a refund amount greater than zero")
	}
	if total := d.booking.Total(); *d.refund.Amount > total {
		return apperrors.NewValidationError("amount", fmt.Sprintf("Refund amount cannot exceed %.2f", total))
	}
	return nil
}

func validateCancel(d *dialog) error {
	if strings.TrimSpace(d.cancel.Reason) == "" {
		return apperrors.NewValidationError("reason", "Please enter a reason for the cancellation")
	}
	if !d.cancel.IssueRefund || d.cancel.RefundAmount == nil {
		return nil
	}
	amount := *d.cancel.RefundAmount
	if amount < 0 {
		return apperrors.NewValidationError("refundAmount", "Refund amount cannot be negative")
	}
	if total := d.booking.Total(); amount > total {
		return apperrors.NewValidationError("refundAmount", fmt.Sprintf("Refund amount cannot exceed %.2f", total))
	}
	return nil
}

func validateCall(d *dialog) error {
	if d.booking.Phone() == "" {
		return apperrors.NewValidationError("customerPhone", "Customer phone number not available")
	}
	if strings.TrimSpace(d.customer.MyPhone) == "" {
		return apperrors.NewValidationError("myPhone", "Please enter your phone number")
	}
	return nil
}

func validateAssign(d *dialog) error {
	driverID := strings.TrimSpace(d.assign.DriverID)
	if driverID == "" {
		return apperrors.NewValidationError("driverId", "Please select a driver")
	}
	if d.booking.AssignedDriverID != nil && *d.booking.AssignedDriverID == driverID {
		return apperrors.NewValidationError("driverId", "Driver is already assigned to this booking")
	}
	for _, driver := range d.drivers {
		if driver.DriverID == driverID {
			return nil
		}
	}
	return apperrors.NewValidationError("driverId", "Selected driver is no longer available")
}

// canUnassign reports whether the held booking has a driver to remove
func canUnassign(d *dialog) bool {
	return d.kind == models.DialogAssign && d.booking.HasStatus(models.BookingStatusDriverAssigned)
}
