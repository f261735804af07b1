package cron

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRunnable struct {
	calls int
}

func (r *countingRunnable) Run() error {
	r.calls++
	return nil
}

func TestNewCronTrigger(t *testing.T) {
	trigger, err := NewCronTrigger("*/5 * * * *", &countingRunnable{}, slog.Default())
	require.NoError(t, err)
	require.NotNil(t, trigger)
}

func TestNewCronTrigger_InvalidSpec(t *testing.T) {
	tests := []string{
		"",
		"not a cron spec",
		"* * * *",        // too few fields
		"60 * * * *",     // minute out of range
		"* * * * * * *",  // too many fields
	}

	for _, spec := range tests {
		t.Run(spec, func(t *testing.T) {
			_, err := NewCronTrigger(spec, &countingRunnable{}, slog.Default())
			assert.ErrorIs(t, err, ErrInvalidCronSpec)
		})
	}
}

func TestCronTrigger_NextRun(t *testing.T) {
	trigger, err := NewCronTrigger("0 2 * * *", &countingRunnable{}, slog.Default())
	require.NoError(t, err)

	next := trigger.NextRun()
	assert.True(t, next.After(time.Now()))
	assert.Equal(t, 2, next.Hour())
	assert.Equal(t, 0, next.Minute())
}
