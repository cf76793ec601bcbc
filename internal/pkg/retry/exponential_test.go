package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fastConfig() Config {
	return Config{
		MaxRetries: 2,
		BaseDelay:  time.Millisecond,
		MaxDelay:   5 * time.Millisecond,
		Multiplier: 2,
	}
}

func TestExecute_SucceedsAfterRetries(t *testing.T) {
	r := New(fastConfig(), nil)
	calls := 0

	err := r.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("connection reset")
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestExecute_ExhaustsAttempts(t *testing.T) {
	r := New(fastConfig(), nil)
	sentinel := errors.New("boom")
	calls := 0

	err := r.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return sentinel
	})

	assert.ErrorIs(t, err, sentinel)
	assert.Contains(t, err.Error(), "retry limit exceeded after 3 attempts")
	assert.Equal(t, 3, calls)
}

func TestExecute_NonRetryableStopsImmediately(t *testing.T) {
	cfg := fastConfig()
	permanent := errors.New("bad request")
	cfg.IsRetryable = func(err error) bool { return !errors.Is(err, permanent) }
	r := New(cfg, nil)
	calls := 0

	err := r.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return permanent
	})

	assert.Equal(t, permanent, err)
	assert.Equal(t, 1, calls)
}

func TestExecute_ContextCancelled(t *testing.T) {
	r := New(fastConfig(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := r.Execute(ctx, func(ctx context.Context) error {
		t.Fatal("function must not run with a cancelled context")
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestCalculateDelay_CappedAtMax(t *testing.T) {
	r := New(Config{BaseDelay: time.Second, MaxDelay: 3 * time.Second, Multiplier: 2}, nil)

	assert.Equal(t, time.Second, r.calculateDelay(0))
	assert.Equal(t, 2*time.Second, r.calculateDelay(1))
	assert.Equal(t, 3*time.Second, r.calculateDelay(5))
}
