package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// Sheet write retry configuration
const (
	SheetWriteMaxAttempts       = 3
	SheetWriteInitialWait       = 1 * time.Second
	SheetWriteMaxWait           = 10 * time.Second
	SheetWriteBackoffMultiplier = 2.0
	SheetWriteTimeout           = 30 * time.Second
)

// ErrInvalidRetryConfig is returned for retry settings that cannot run
var ErrInvalidRetryConfig = errors.New("invalid retry config")

// RetryConfig defines retry behavior for report publishing calls
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
	Timeout     time.Duration // per attempt; zero means no deadline
}

// DefaultSheetWrite is the retry policy for spreadsheet writes
var DefaultSheetWrite = RetryConfig{
	MaxAttempts: SheetWriteMaxAttempts,
	InitialWait: SheetWriteInitialWait,
	MaxWait:     SheetWriteMaxWait,
	Multiplier:  SheetWriteBackoffMultiplier,
	Timeout:     SheetWriteTimeout,
}

// Validate checks that the policy allows at least one attempt with sane waits
func (c RetryConfig) Validate() error {
	switch {
	case c.MaxAttempts <= 0:
		return fmt.Errorf("%w: max attempts must be positive, got %d", ErrInvalidRetryConfig, c.MaxAttempts)
	case c.InitialWait < 0:
		return fmt.Errorf("%w: initial wait must not be negative, got %v", ErrInvalidRetryConfig, c.InitialWait)
	case c.MaxWait < c.InitialWait:
		return fmt.Errorf("%w: max wait %v is below initial wait %v", ErrInvalidRetryConfig, c.MaxWait, c.InitialWait)
	case c.Multiplier < 1:
		return fmt.Errorf("%w: multiplier must be at least 1, got %v", ErrInvalidRetryConfig, c.Multiplier)
	case c.Timeout < 0:
		return fmt.Errorf("%w: timeout must not be negative, got %v", ErrInvalidRetryConfig, c.Timeout)
	}
	return nil
}

// Backoff returns the wait after the given failed attempt (1-based), capped at MaxWait
func (c RetryConfig) Backoff(attempt int) time.Duration {
	wait := float64(c.InitialWait)
	for i := 1; i < attempt; i++ {
		wait *= c.Multiplier
		if wait >= float64(c.MaxWait) {
			return c.MaxWait
		}
	}
	return time.Duration(wait)
}

// Retry runs op until it succeeds, the attempts are used up or ctx is done.
// The last error is returned wrapped with the operation name.
func Retry(ctx context.Context, c RetryConfig, operation string, op func(ctx context.Context) error) error {
	if err := c.Validate(); err != nil {
		return err
	}

	var lastErr error
	for attempt := 1; attempt <= c.MaxAttempts; attempt++ {
		lastErr = runAttempt(ctx, c.Timeout, op)
		if lastErr == nil {
			return nil
		}
		if attempt == c.MaxAttempts {
			break
		}

		wait := c.Backoff(attempt)
		log.Warn().
			Err(lastErr).
			Str("operation", operation).
			Int("attempt", attempt).
			Int("max_attempts", c.MaxAttempts).
			Dur("wait", wait).
			Msg("Retrying after failure")

		select {
		case <-ctx.Done():
			return fmt.Errorf("%s: %w (last error: %v)", operation, ctx.Err(), lastErr)
		case <-time.After(wait):
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operation, c.MaxAttempts, lastErr)
}

func runAttempt(ctx context.Context, timeout time.Duration, op func(ctx context.Context) error) error {
	if timeout <= 0 {
		return op(ctx)
	}
	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return op(attemptCtx)
}
