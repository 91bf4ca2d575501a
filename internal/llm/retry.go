package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// retryDecision says what to do with a failed grading attempt.
type retryDecision int

const (
	giveUp retryDecision = iota
	// tryAgain covers transient backend failures.
	tryAgain
	// reaskOnce covers a malformed reply: one fresh sample is worth
	// asking for, a second malformed one is not.
	reaskOnce
)

// retrier is a decorator that retries transient failures with
// exponential backoff and jitter. The grading engine runs it with
// MaxAttempts 1, which makes it a pass-through.
type retrier struct {
	inner Provider
	cfg   RetryConfig
}

// WithRetry wraps a Provider with bounded retries.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &retrier{inner: p, cfg: cfg}
}

func (r *retrier) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error
	reasked := false

	for attempt := 0; attempt < r.cfg.MaxAttempts; attempt++ {
		if attempt > 0 {
			if err := r.wait(ctx, attempt-1, lastErr); err != nil {
				return nil, err
			}
		}

		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		switch decide(err) {
		case tryAgain:
		case reaskOnce:
			if reasked {
				return nil, err
			}
			reasked = true
		default:
			return nil, err
		}
	}

	return nil, lastErr
}

func (r *retrier) ModelID() string {
	return r.inner.ModelID()
}

// decide classifies a failure for the retry loop.
func decide(err error) retryDecision {
	// A cancelled or expired context means the caller is gone.
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return giveUp
	}

	// Truncation repeats until MaxTokens changes.
	var maxTok *ErrMaxTokensExceeded
	if errors.As(err, &maxTok) {
		return giveUp
	}

	var malformed *ErrInvalidResponse
	if errors.As(err, &malformed) {
		return reaskOnce
	}

	if IsTransient(err) {
		return tryAgain
	}

	// Unclassified errors (transport, DNS) are treated as transient.
	return tryAgain
}

// wait sleeps out the backoff for the given attempt, honoring
// cancellation.
func (r *retrier) wait(ctx context.Context, attempt int, cause error) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(r.backoff(attempt, cause)):
		return nil
	}
}

// backoff computes the wait before the next attempt. Rate-limit replies
// carrying a retry-after hint win over the exponential schedule.
func (r *retrier) backoff(attempt int, cause error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(cause, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	wait := float64(r.cfg.InitialWait) * math.Pow(r.cfg.Multiplier, float64(attempt))
	wait = min(wait, float64(r.cfg.MaxWait))

	// ±20% jitter.
	wait *= 0.8 + 0.4*rand.Float64()

	return time.Duration(wait)
}
