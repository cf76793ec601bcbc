package models

// Payment is an entry of GET /api/payments/list
type Payment struct {
	ID          string `json:"id"`
	BookingID   string `json:"bookingId"`
	AmountCents int64  `json:"amountCents"`
	Currency    string `json:"currency"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
}

// Webhook is an entry of GET /api/payments/webhooks/list
type Webhook struct {
	ID         string `json:"id"`
	EventID    string `json:"eventId"`
	Type       string `json:"type"`
	Processed  bool   `json:"processed"`
	ReceivedAt string `json:"receivedAt"`
}

// CallLog is a Twilio call record
type CallLog struct {
	Sid       string  `json:"sid"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	Direction string  `json:"direction"`
	Status    string  `json:"status"`
	StartTime *string `json:"start_time,omitempty"`
	Duration  *string `json:"duration,omitempty"`
}

// CallLogList wraps GET /api/calllogs/twilio-logs
type CallLogList struct {
	Calls []CallLog `json:"calls"`
}

// SendSMSRequest is the body of POST /api/communication/send-sms
type SendSMSRequest struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}
