package usecase

import (
	"context"
	"errors"

	"github.com/piresc/rideflex-admin/internal/pkg/models"
	"github.com/piresc/rideflex-admin/services/backend"
)

// MultiRecorder fans an action event out to every configured sink
type MultiRecorder struct {
	recorders []backend.ActionRecorder
}

// NewMultiRecorder creates a recorder over the non-nil recorders given
func NewMultiRecorder(recorders ...backend.ActionRecorder) *MultiRecorder {
	m := &MultiRecorder{}
	for _, r := range recorders {
		if r != nil {
			m.recorders = append(m.recorders, r)
		}
	}
	return m
}

// Record delivers event to every sink; one failing sink does not stop the others
func (m *MultiRecorder) Record(ctx context.Context, event models.ActionEvent) error {
	var errs []error
	for _, r := range m.recorders {
		if err := r.Record(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
