package models

import "time"

// RefundType selects a full or partial refund
type RefundType string

const (
	RefundFull    RefundType = "full"
	RefundPartial RefundType = "partial"
)

// RefundRequest is the body of POST /api/admin/refunds/process.
// A nil Amount means a full refund.
type RefundRequest struct {
	BookingID    string   `json:"bookingId"`
	Amount       *float64 `json:"amount"`
	Reason       string   `json:"reason"`
	AdminUserID  string   `json:"adminUserId"`
	AdminComment string   `json:"adminComment"`
}

// CancellationRequest is the body of POST /api/admin/refunds/cancel-booking
type CancellationRequest struct {
	BookingID    string   `json:"bookingId"`
	Reason       string   `json:"reason"`
	IssueRefund  bool     `json:"issueRefund"`
	RefundAmount *float64 `json:"refundAmount,omitempty"`
	AdminUserID  string   `json:"adminUserId"`
}

// RefundResponse is returned by both refund and cancellation endpoints
type RefundResponse struct {
	Success      bool    `json:"success"`
	RefundID     string  `json:"refundId"`
	RefundAmount float64 `json:"refundAmount"`
	Status       string  `json:"status"`
	Message      string  `json:"message"`
	ProcessedAt  string  `json:"processedAt"`
}

// CompleteBookingRequest marks a booking completed
type CompleteBookingRequest struct {
	BookingID string `json:"-"`
}

// AssignDriverRequest binds a driver to a booking
type AssignDriverRequest struct {
	BookingID string `json:"-"`
	DriverID  string `json:"driverId"`
}

// UnassignDriverRequest removes the driver from a booking
type UnassignDriverRequest struct {
	BookingID string `json:"-"`
}

// CallCustomerRequest bridges a call: Twilio rings MyPhone first, then CustomerPhone
type CallCustomerRequest struct {
	CustomerPhone string `json:"customerPhone"`
	MyPhone       string `json:"myPhone"`
}

// CallCustomerResponse is returned by POST /api/call/call-customer
type CallCustomerResponse struct {
	Success bool    `json:"success"`
	CallSid *string `json:"callSid,omitempty"`
	Status  *string `json:"status,omitempty"`
	Message string  `json:"message"`
	Error   *string `json:"error,omitempty"`
}

// ActionResult is the generic {success, message} response
type ActionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ActionKind names an admin action for audit and event purposes
type ActionKind string

const (
	ActionRefund       ActionKind = "refund"
	ActionCancel       ActionKind = "cancel"
	ActionComplete     ActionKind = "complete"
	ActionAssign       ActionKind = "assign_driver"
	ActionUnassign     ActionKind = "unassign_driver"
	ActionCallCustomer ActionKind = "call_customer"
	ActionSendSMS      ActionKind = "send_sms"
	ActionUpdateSecret ActionKind = "update_secret"
)

// ActionEvent records the outcome of an admin action
type ActionEvent struct {
	ID         string     `json:"id"`
	Action     ActionKind `json:"action"`
	BookingID  string     `json:"booking_id,omitempty"`
	AdminID    string     `json:"admin_id,omitempty"`
	Success    bool       `json:"success"`
	Message    string     `json:"message"`
	OccurredAt time.Time  `json:"occurred_at"`
}
