package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/piresc/rideflex-admin/internal/pkg/models"
	"github.com/sirupsen/logrus"
)

// AuditLogger writes one JSON line per admin action outcome
type AuditLogger struct {
	*logrus.Logger
	filePath string
	file     *os.File
}

// NewAuditLogger creates an audit logger. An empty path writes to stdout only.
func NewAuditLogger(filePath string) (*AuditLogger, error) {
	l := logrus.New()
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})

	al := &AuditLogger{Logger: l}

	if filePath != "" {
		if err := al.setupFileOutput(filePath); err != nil {
			return nil, fmt.Errorf("failed to setup audit file output: %w", err)
		}
	}

	return al, nil
}

// NewAuditLoggerWithWriter creates an audit logger writing to w
func NewAuditLoggerWithWriter(w io.Writer) *AuditLogger {
	al, _ := NewAuditLogger("")
	al.Logger.SetOutput(w)
	return al
}

func (al *AuditLogger) setupFileOutput(filePath string) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create audit directory: %w", err)
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open audit file: %w", err)
	}

	al.filePath = filePath
	al.file = file
	al.Logger.SetOutput(io.MultiWriter(os.Stdout, file))
	return nil
}

// Record writes the action event. Failed actions are logged at warn level.
func (al *AuditLogger) Record(_ context.Context, event models.ActionEvent) error {
	entry := al.Logger.WithFields(logrus.Fields{
		"service":    serviceName,
		"event_id":   event.ID,
		"action":     string(event.Action),
		"booking_id": event.BookingID,
		"admin_id":   event.AdminID,
		"success":    event.Success,
		"detail":     event.Message,
	})

	if event.Success {
		entry.Info("Admin action succeeded")
	} else {
		entry.Warn("Admin action failed")
	}
	return nil
}

// Close closes the audit file
func (al *AuditLogger) Close() error {
	if al.file != nil {
		return al.file.Close()
	}
	return nil
}
