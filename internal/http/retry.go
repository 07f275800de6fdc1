package http

import (
	"context"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// BackoffStrategy computes the delay before the next retry of one call.
// previous is the delay used before the last retry, zero before the first.
type BackoffStrategy interface {
	Next(previous time.Duration, retry int) time.Duration
}

// FixedBackoff waits the same delay before every retry.
type FixedBackoff struct {
	Delay time.Duration
}

// Next implements BackoffStrategy.
func (b FixedBackoff) Next(previous time.Duration, retry int) time.Duration {
	return b.Delay
}

// ExponentialBackoff doubles the delay on every retry and adds a jitter in
// [0, min(1s, Base)). The first retry waits 2*Base plus jitter. Max, when
// positive, caps a single delay.
type ExponentialBackoff struct {
	Base time.Duration
	Max  time.Duration

	// Jitter returns a value in [0, limit). Defaults to a uniform random draw.
	Jitter func(limit time.Duration) time.Duration
}

// Next implements BackoffStrategy.
func (b ExponentialBackoff) Next(previous time.Duration, retry int) time.Duration {
	delay := previous
	if delay <= 0 {
		delay = b.Base
	}

	delay = delay*2 + b.jitter()

	if b.Max > 0 && delay > b.Max {
		delay = b.Max
	}

	return delay
}

func (b ExponentialBackoff) jitter() time.Duration {
	limit := b.Base
	if limit > time.Second || limit <= 0 {
		limit = time.Second
	}

	if b.Base <= 0 {
		return 0
	}

	if b.Jitter != nil {
		return b.Jitter(limit)
	}

	return time.Duration(rand.Int64N(int64(limit)))
}

// retryState is the retry bookkeeping of a single logical call. A fresh
// state is built for every call so concurrent calls never share counters.
type retryState struct {
	retries    int
	delay      time.Duration
	lastStatus int
	strategy   BackoffStrategy
	onRetry    func(retry int, delay time.Duration, resp *http.Response)
}

func newRetryState(strategy BackoffStrategy) *retryState {
	return &retryState{strategy: strategy}
}

// backoff satisfies retryablehttp.Backoff. The min/max arguments of the
// library are ignored in favor of the call's strategy.
func (s *retryState) backoff(_, _ time.Duration, attempt int, resp *http.Response) time.Duration {
	s.retries++
	s.delay = s.strategy.Next(s.delay, s.retries)

	if s.onRetry != nil {
		s.onRetry(s.retries, s.delay, resp)
	}

	return s.delay
}

// checkRetry retries 429 and 5xx responses only. Transport failures are
// surfaced immediately as TransportError.
func (s *retryState) checkRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	if err != nil || resp == nil {
		return false, nil
	}

	s.lastStatus = resp.StatusCode

	return IsRetryableStatus(resp.StatusCode), nil
}

// IsRetryableStatus reports whether status is retried with backoff.
func IsRetryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}

func (c *Client) newRetryClient(state *retryState, errorHandler retryablehttp.ErrorHandler) *retryablehttp.Client {
	return &retryablehttp.Client{
		HTTPClient:   c.httpClient,
		RetryWaitMin: c.retryDelay,
		RetryWaitMax: c.retryWaitMax,
		RetryMax:     c.retryMax,
		CheckRetry:   state.checkRetry,
		Backoff:      state.backoff,
		ErrorHandler: errorHandler,
	}
}
