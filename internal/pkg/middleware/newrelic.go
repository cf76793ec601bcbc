package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// AddAttribute adds a custom attribute to the current transaction
func AddAttribute(c echo.Context, key string, value interface{}) {
	if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
		txn.AddAttribute(key, value)
	}
}

// NoticeError reports an error to New Relic
func NoticeError(c echo.Context, err error) {
	if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
		txn.NoticeError(err)
	}
}

// SetAdminID tags the transaction with the signed-in admin
func SetAdminID(c echo.Context, adminID string) {
	AddAttribute(c, "admin.id", adminID)
}

// SetBookingID tags the transaction with the booking being acted on
func SetBookingID(c echo.Context, bookingID string) {
	AddAttribute(c, "booking.id", bookingID)
}
