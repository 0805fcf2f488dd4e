package llm_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yongxin12/Macrohard/internal/llm"
	"github.com/yongxin12/Macrohard/internal/port"
)

// scriptedCompleter returns the queued results in order.
type scriptedCompleter struct {
	calls   int
	replies []string
	errs    []error
}

func (s *scriptedCompleter) Complete(ctx context.Context, _ []port.ChatMessage) (string, error) {
	i := s.calls
	s.calls++
	if i < len(s.errs) && s.errs[i] != nil {
		return "", s.errs[i]
	}
	if i < len(s.replies) {
		return s.replies[i], nil
	}
	return "", errors.New("script exhausted")
}

func fastPolicy() llm.RetryPolicy {
	return llm.RetryPolicy{
		MaxAttempts:   5,
		RateLimitBase: time.Millisecond,
		BackoffBase:   time.Millisecond,
	}
}

func TestRetryingCompleter_SucceedsFirstTry(t *testing.T) {
	inner := &scriptedCompleter{replies: []string{"hello"}}
	c := llm.NewRetryingCompleter(inner, fastPolicy())

	reply, err := c.Complete(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "hello", reply)
	assert.Equal(t, 1, inner.calls)
}

func TestRetryingCompleter_RecoversAfterRateLimit(t *testing.T) {
	rateLimited := &llm.RateLimitError{
		Err:        errors.New("429"),
		RetryAfter: time.Millisecond,
		Provider:   "openai",
	}
	inner := &scriptedCompleter{
		errs:    []error{rateLimited, nil},
		replies: []string{"", "recovered"},
	}
	c := llm.NewRetryingCompleter(inner, fastPolicy())

	reply, err := c.Complete(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "recovered", reply)
	assert.Equal(t, 2, inner.calls)
}

func TestRetryingCompleter_ExhaustsAllAttempts(t *testing.T) {
	boom := errors.New("upstream unavailable")
	inner := &scriptedCompleter{
		errs: []error{boom, boom, boom, boom, boom},
	}
	c := llm.NewRetryingCompleter(inner, fastPolicy())

	_, err := c.Complete(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, 5, inner.calls)
	assert.Contains(t, err.Error(), "after 5 attempts")
	assert.ErrorIs(t, err, boom)
}

func TestRetryingCompleter_ContextCancelStopsWaiting(t *testing.T) {
	inner := &scriptedCompleter{
		errs: []error{llm.NewRateLimitError("openai", errors.New("429"), 0)},
	}
	policy := llm.RetryPolicy{
		MaxAttempts:   5,
		RateLimitBase: time.Hour,
		BackoffBase:   time.Hour,
	}
	c := llm.NewRetryingCompleter(inner, policy)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := c.Complete(ctx, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, inner.calls)
}
