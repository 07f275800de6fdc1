package http_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	rechargehttp "github.com/fivetwenty-io/recharge-client/internal/http"
)

func TestFixedBackoff(t *testing.T) {
	t.Parallel()

	backoff := rechargehttp.FixedBackoff{Delay: 10 * time.Second}

	for retry := 1; retry <= 3; retry++ {
		assert.Equal(t, 10*time.Second, backoff.Next(10*time.Second, retry))
	}
}

func TestExponentialBackoff(t *testing.T) {
	t.Parallel()

	t.Run("doubles with jitter", func(t *testing.T) {
		t.Parallel()

		var limits []time.Duration

		backoff := rechargehttp.ExponentialBackoff{
			Base: 100 * time.Millisecond,
			Jitter: func(limit time.Duration) time.Duration {
				limits = append(limits, limit)

				return 5 * time.Millisecond
			},
		}

		first := backoff.Next(0, 1)
		second := backoff.Next(first, 2)
		third := backoff.Next(second, 3)

		assert.Equal(t, 205*time.Millisecond, first)
		assert.Equal(t, 415*time.Millisecond, second)
		assert.Equal(t, 835*time.Millisecond, third)
		assert.Equal(t, []time.Duration{100 * time.Millisecond, 100 * time.Millisecond, 100 * time.Millisecond}, limits)
	})

	t.Run("jitter is bounded by one second", func(t *testing.T) {
		t.Parallel()

		backoff := rechargehttp.ExponentialBackoff{
			Base: 5 * time.Second,
			Jitter: func(limit time.Duration) time.Duration {
				assert.Equal(t, time.Second, limit)

				return 0
			},
		}

		assert.Equal(t, 10*time.Second, backoff.Next(0, 1))
	})

	t.Run("strictly increasing with random jitter", func(t *testing.T) {
		t.Parallel()

		backoff := rechargehttp.ExponentialBackoff{Base: 50 * time.Millisecond}
		previous := time.Duration(0)

		for retry := 1; retry <= 6; retry++ {
			next := backoff.Next(previous, retry)
			assert.Greater(t, next, previous)
			assert.GreaterOrEqual(t, next, previous*2)

			previous = next
		}
	})

	t.Run("max caps a single delay", func(t *testing.T) {
		t.Parallel()

		backoff := rechargehttp.ExponentialBackoff{Base: time.Second, Max: 3 * time.Second}

		assert.Equal(t, 3*time.Second, backoff.Next(2*time.Second, 2))
	})
}

func TestIsRetryableStatus(t *testing.T) {
	t.Parallel()

	assert.True(t, rechargehttp.IsRetryableStatus(http.StatusTooManyRequests))
	assert.True(t, rechargehttp.IsRetryableStatus(http.StatusInternalServerError))
	assert.True(t, rechargehttp.IsRetryableStatus(http.StatusGatewayTimeout))
	assert.False(t, rechargehttp.IsRetryableStatus(http.StatusBadRequest))
	assert.False(t, rechargehttp.IsRetryableStatus(http.StatusNotFound))
	assert.False(t, rechargehttp.IsRetryableStatus(http.StatusOK))
}
