package models

import "time"

// PollerState is what the dashboard view renders
type PollerState struct {
	Summary     *DashboardSummary `json:"summary"`
	Loading     bool              `json:"loading"`
	Error       string            `json:"error,omitempty"`
	PublishedAt *time.Time        `json:"publishedAt,omitempty"`
	Polling     bool              `json:"polling"`
}

// DialogKind names one of the booking dialogs
type DialogKind string

const (
	DialogRefund   DialogKind = "refund"
	DialogCancel   DialogKind = "cancel"
	DialogCustomer DialogKind = "customer"
	DialogAssign   DialogKind = "assign"
)

// Valid reports whether k is a known dialog
func (k DialogKind) Valid() bool {
	switch k {
	case DialogRefund, DialogCancel, DialogCustomer, DialogAssign:
		return true
	}
	return false
}

// DialogPhase is the state of an open dialog. A closed dialog has no phase.
type DialogPhase string

const (
	PhaseOpen       DialogPhase = "open"
	PhaseSubmitting DialogPhase = "submitting"
)

// RefundForm backs the refund dialog
type RefundForm struct {
	Type   RefundType `json:"type"`
	Amount *float64   `json:"amount,omitempty"`
	Reason string     `json:"reason"`
}

// CancelForm backs the cancel dialog
type CancelForm struct {
	Reason       string   `json:"reason"`
	IssueRefund  bool     `json:"issueRefund"`
	RefundAmount *float64 `json:"refundAmount,omitempty"`
}

// CustomerForm backs the customer info dialog
type CustomerForm struct {
	MyPhone string `json:"myPhone"`
}

// AssignForm backs the driver assignment dialog
type AssignForm struct {
	DriverID string `json:"driverId"`
}

// FormUpdate changes only the fields that are set
type FormUpdate struct {
	RefundType   *RefundType `json:"refundType,omitempty"`
	Amount       *float64    `json:"amount,omitempty"`
	Reason       *string     `json:"reason,omitempty"`
	IssueRefund  *bool       `json:"issueRefund,omitempty"`
	RefundAmount *float64    `json:"refundAmount,omitempty"`
	MyPhone      *string     `json:"myPhone,omitempty"`
	DriverID     *string     `json:"driverId,omitempty"`
}

// DialogView is a copy of the open dialog for rendering
type DialogView struct {
	Kind    DialogKind    `json:"kind"`
	Phase   DialogPhase   `json:"phase"`
	Booking RecentBooking `json:"booking"`

	Refund   *RefundForm   `json:"refund,omitempty"`
	Cancel   *CancelForm   `json:"cancel,omitempty"`
	Customer *CustomerForm `json:"customer,omitempty"`
	Assign   *AssignForm   `json:"assign,omitempty"`

	Drivers        []AvailableDriver `json:"drivers,omitempty"`
	DriversLoading bool              `json:"driversLoading,omitempty"`
	DriversError   string            `json:"driversError,omitempty"`
	CanUnassign    bool              `json:"canUnassign,omitempty"`

	ConfirmingComplete bool   `json:"confirmingComplete,omitempty"`
	CanSubmit          bool   `json:"canSubmit"`
	Problem            string `json:"problem,omitempty"`
	Status             string `json:"status,omitempty"`
}

// ActionOutcome is the result of a dialog submission
type ActionOutcome struct {
	Message   string      `json:"message"`
	Dialog    *DialogView `json:"dialog,omitempty"`
	Refreshed bool        `json:"refreshRequested"`
}
