package backoff

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExponential(t *testing.T) {
	b := NewExponential(time.Millisecond, 3*time.Millisecond)
	assert.Equal(t, time.Millisecond, b.Next())

	assert.NoError(t, b.Wait(context.Background()))
	assert.Equal(t, 2*time.Millisecond, b.Next())
	assert.NoError(t, b.Wait(context.Background()))
	assert.Equal(t, 3*time.Millisecond, b.Next())

	b.Reset()
	assert.Equal(t, time.Millisecond, b.Next())
}

func TestWaitCanceled(t *testing.T) {
	b := NewExponential(time.Hour, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, b.Wait(ctx), context.Canceled)
	assert.Equal(t, time.Hour, b.Next())
}
