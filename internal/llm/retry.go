package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/yongxin12/Macrohard/internal/port"
)

// RetryPolicy describes how completion calls are retried. Rate-limit errors
// wait RateLimitBase on the first retry and (attempt+1)*RateLimitBase after
// that; any other error backs off exponentially at (2^attempt)*BackoffBase.
type RetryPolicy struct {
	MaxAttempts   int
	RateLimitBase time.Duration
	BackoffBase   time.Duration
}

// DefaultRetryPolicy matches the provider's token-bucket refill window: a
// rate-limited call is not worth retrying for a full minute.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:   5,
		RateLimitBase: 65 * time.Second,
		BackoffBase:   10 * time.Second,
	}
}

// wait returns how long to sleep after a failed attempt (0-based).
func (p RetryPolicy) wait(attempt int, err error) time.Duration {
	var rle *RateLimitError
	if errors.As(err, &rle) {
		d := p.RateLimitBase
		if attempt > 0 {
			d = time.Duration(attempt+1) * p.RateLimitBase
		}
		if rle.RetryAfter > d {
			d = rle.RetryAfter
		}
		return d
	}
	return time.Duration(1<<uint(attempt)) * p.BackoffBase
}

// RetryingCompleter wraps a ChatCompleter with a RetryPolicy. It implements
// port.ChatCompleter itself, so callers never see individual failures unless
// every attempt is exhausted.
type RetryingCompleter struct {
	inner  port.ChatCompleter
	policy RetryPolicy
}

// NewRetryingCompleter wraps inner with the given policy.
func NewRetryingCompleter(inner port.ChatCompleter, policy RetryPolicy) *RetryingCompleter {
	if policy.MaxAttempts <= 0 {
		policy.MaxAttempts = 1
	}
	return &RetryingCompleter{inner: inner, policy: policy}
}

// Complete calls the wrapped completer, retrying per the policy. The sleep
// between attempts is cancellable through ctx.
func (r *RetryingCompleter) Complete(ctx context.Context, messages []port.ChatMessage) (string, error) {
	var lastErr error
	for attempt := 0; attempt < r.policy.MaxAttempts; attempt++ {
		reply, err := r.inner.Complete(ctx, messages)
		if err == nil {
			return reply, nil
		}
		lastErr = err

		if attempt == r.policy.MaxAttempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(r.policy.wait(attempt, err)):
		}
	}
	return "", fmt.Errorf("completion failed after %d attempts: %w", r.policy.MaxAttempts, lastErr)
}
