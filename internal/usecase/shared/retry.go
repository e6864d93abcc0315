package shared

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"log/slog"
	"time"

	"parkpass/internal/pkg/errs"
)

const (
	DefaultMaxRetries = 3
	DefaultRetryBase  = 50 * time.Millisecond
)

type RetryPolicy struct {
	MaxRetries int
	Base       time.Duration
	// Retryable defaults to errs.IsRetryable.
	Retryable func(error) bool
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxRetries: DefaultMaxRetries, Base: DefaultRetryBase}
}

// Retry runs fn until it succeeds, returns a non-retryable error, or the attempts run out.
// The last error is marked with errs.ErrMaxRetriesExceeded on exhaustion.
func Retry(ctx context.Context, p RetryPolicy, op string, fn func(ctx context.Context) error) error {
	if p.MaxRetries < 0 {
		p.MaxRetries = 0
	}
	if p.Base <= 0 {
		p.Base = DefaultRetryBase
	}
	retryable := p.Retryable
	if retryable == nil {
		retryable = errs.IsRetryable
	}

	var err error
	for attempt := 0; attempt <= p.MaxRetries; attempt++ {
		err = fn(ctx)
		if err == nil {
			return nil
		}
		if !retryable(err) {
			return err
		}
		if attempt == p.MaxRetries {
			break
		}

		waitTime := Backoff(attempt, p.Base)
		slog.Warn("retrying operation due to retryable error",
			"op", op,
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return errs.Mark(ctx.Err(), errs.ErrStoreTimeout)
		case <-time.After(waitTime):
		}
	}

	slog.Error("operation failed after max retries",
		"op", op,
		"attempts", p.MaxRetries+1,
		"error", err.Error())
	return errs.Mark(err, errs.ErrMaxRetriesExceeded)
}

// Backoff doubles base per attempt and adds up to 20% jitter.
func Backoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- masked to a positive value above
	return int64(uval) % n
}
