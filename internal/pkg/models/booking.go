package models

import "strings"

// Booking statuses reported by the backend. Values are free-form strings and
// are compared case-insensitively.
const (
	BookingStatusConfirmed      = "Confirmed"
	BookingStatusPendingPayment = "PendingPayment"
	BookingStatusDriverAssigned = "DriverAssigned"
	BookingStatusCompleted      = "Completed"
	BookingStatusCancelled      = "Cancelled"
	BookingStatusRefunded       = "Refunded"
)

// RecentBooking is a single row of the dashboard booking table.
// CanRefund and CanCancel are computed by the backend and never derived locally.
type RecentBooking struct {
	ID                 string   `json:"id"`
	BookingRef         *string  `json:"bookingRef,omitempty"`
	ClientName         *string  `json:"clientName,omitempty"`
	ClientPhone        *string  `json:"clientPhone,omitempty"`
	ClientEmail        *string  `json:"clientEmail,omitempty"`
	DigitalSignature   *string  `json:"digitalSignature,omitempty"`
	Status             *string  `json:"status,omitempty"`
	TotalAmount        *float64 `json:"totalAmount,omitempty"`
	PaidAmount         *float64 `json:"paidAmount,omitempty"`
	CreatedAt          *string  `json:"createdAt,omitempty"`
	ScheduledStart     *string  `json:"scheduledStart,omitempty"`
	PickupLocation     *string  `json:"pickupLocation,omitempty"`
	DropoffLocation    *string  `json:"dropoffLocation,omitempty"`
	Distance           *float64 `json:"distance,omitempty"`
	CanRefund          bool     `json:"canRefund"`
	CanCancel          bool     `json:"canCancel"`
	PaymentIntentID    *string  `json:"paymentIntentId,omitempty"`
	AssignedDriverID   *string  `json:"assignedDriverId,omitempty"`
	AssignedDriverName *string  `json:"assignedDriverName,omitempty"`
}

// StatusText returns the status or an empty string
func (b RecentBooking) StatusText() string {
	if b.Status == nil {
		return ""
	}
	return *b.Status
}

// HasStatus compares the booking status case-insensitively
func (b RecentBooking) HasStatus(status string) bool {
	return strings.EqualFold(strings.TrimSpace(b.StatusText()), status)
}

// Total returns the total amount, zero when absent
func (b RecentBooking) Total() float64 {
	if b.TotalAmount == nil {
		return 0
	}
	return *b.TotalAmount
}

// Phone returns the client phone, empty when absent
func (b RecentBooking) Phone() string {
	if b.ClientPhone == nil {
		return ""
	}
	return strings.TrimSpace(*b.ClientPhone)
}

// DisplayRef returns the booking reference, falling back to the id
func (b RecentBooking) DisplayRef() string {
	if b.BookingRef != nil && *b.BookingRef != "" {
		return *b.BookingRef
	}
	return b.ID
}

// Clone returns a deep copy so that a dialog can hold a booking by value
func (b RecentBooking) Clone() RecentBooking {
	out := b
	out.BookingRef = cloneString(b.BookingRef)
	out.ClientName = cloneString(b.ClientName)
	out.ClientPhone = cloneString(b.ClientPhone)
	out.ClientEmail = cloneString(b.ClientEmail)
	out.DigitalSignature = cloneString(b.DigitalSignature)
	out.Status = cloneString(b.Status)
	out.TotalAmount = cloneFloat(b.TotalAmount)
	out.PaidAmount = cloneFloat(b.PaidAmount)
	out.CreatedAt = cloneString(b.CreatedAt)
	out.ScheduledStart = cloneString(b.ScheduledStart)
	out.PickupLocation = cloneString(b.PickupLocation)
	out.DropoffLocation = cloneString(b.DropoffLocation)
	out.Distance = cloneFloat(b.Distance)
	out.PaymentIntentID = cloneString(b.PaymentIntentID)
	out.AssignedDriverID = cloneString(b.AssignedDriverID)
	out.AssignedDriverName = cloneString(b.AssignedDriverName)
	return out
}

// DashboardSummary is an immutable snapshot of GET /api/dashboard/summary
type DashboardSummary struct {
	TotalBookings     int             `json:"totalBookings"`
	PendingPayments   int             `json:"pendingPayments"`
	ConfirmedBookings int             `json:"confirmedBookings"`
	CancelledBookings int             `json:"cancelledBookings"`
	CompletedBookings int             `json:"completedBookings"`
	TotalRevenue      float64         `json:"totalRevenue"`
	TotalPaid         float64         `json:"totalPaid"`
	TotalRefunds      float64         `json:"totalRefunds"`
	NetRevenue        float64         `json:"netRevenue"`
	RefundsToday      int             `json:"refundsToday"`
	RefundAmountToday float64         `json:"refundAmountToday"`
	RecentBookings    []RecentBooking `json:"recentBookings"`
}

// FindBooking returns a copy of the booking with the given id
func (s *DashboardSummary) FindBooking(id string) (RecentBooking, bool) {
	if s == nil {
		return RecentBooking{}, false
	}
	for _, b := range s.RecentBookings {
		if b.ID == id {
			return b.Clone(), true
		}
	}
	return RecentBooking{}, false
}

// ChatBooking is a booking captured by the chatbot
type ChatBooking struct {
	ID              string  `json:"id"`
	CreatedAt       string  `json:"createdAt"`
	Name            *string `json:"name,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	PickupLocation  *string `json:"pickupLocation,omitempty"`
	DropoffLocation *string `json:"dropoffLocation,omitempty"`
	ServiceType     *string `json:"serviceType,omitempty"`
	ScheduledAtUtc  *string `json:"scheduledAtUtc,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	Source          *string `json:"source,omitempty"`
	Status          *string `json:"status,omitempty"`
}

// ChatBookingsPage is a page of chatbot bookings
type ChatBookingsPage struct {
	Data       []ChatBooking `json:"data"`
	TotalCount int           `json:"totalCount"`
	Page       int           `json:"page"`
	PageSize   int           `json:"pageSize"`
	TotalPages int           `json:"totalPages"`
}

// StatusClass maps a booking status to a display class
func StatusClass(status string) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "confirmed", "driverassigned", "paid":
		return "success"
	case "pendingpayment", "pending", "draft", "new":
		return "warning"
	case "inprogress":
		return "active"
	case "cancelled", "canceled", "refunded":
		return "danger"
	case "completed":
		return "info"
	default:
		return "neutral"
	}
}

// StringPtr returns a pointer to s
func StringPtr(s string) *string {
	return &s
}

// Float64Ptr returns a pointer to f
func Float64Ptr(f float64) *float64 {
	return &f
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}
