package apiclient_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/storefront/pkg/apiclient"
)

func TestExponentialBackoff(t *testing.T) {
	b := apiclient.ExponentialBackoff{
		InitialInterval: 100 * time.Millisecond,
		MaxInterval:     time.Second,
		Multiplier:      2,
	}

	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{0, 0},
		{1, 100 * time.Millisecond},
		{2, 200 * time.Millisecond},
		{3, 400 * time.Millisecond},
		{5, time.Second},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, b.NextInterval(tt.attempt), "attempt %d", tt.attempt)
	}
}

func TestExponentialBackoff_ZeroValueDefaults(t *testing.T) {
	var b apiclient.ExponentialBackoff
	assert.Equal(t, 200*time.Millisecond, b.NextInterval(1))
	assert.Equal(t, 400*time.Millisecond, b.NextInterval(2))
	assert.Equal(t, 5*time.Second, b.NextInterval(10))
}

func TestExponentialBackoff_Jitter(t *testing.T) {
	b := apiclient.ExponentialBackoff{InitialInterval: 100 * time.Millisecond, JitterFactor: 0.1}
	for range 20 {
		d := b.NextInterval(1)
		assert.GreaterOrEqual(t, d, 90*time.Millisecond)
		assert.LessOrEqual(t, d, 110*time.Millisecond)
	}
}

func TestFixedBackoff(t *testing.T) {
	b := apiclient.FixedBackoff{Interval: 3 * time.Millisecond}
	assert.Zero(t, b.NextInterval(0))
	assert.Equal(t, 3*time.Millisecond, b.NextInterval(7))
}
