package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ReplayGuard remembers accepted token digests for the length of their freshness window.
type ReplayGuard interface {
	// Claim returns false when key was already claimed and has not expired.
	Claim(ctx context.Context, key string, ttl time.Duration) (bool, error)
	// Release forgets a claim whose scan was not applied, so the code can be scanned again.
	Release(ctx context.Context, key string) error
}

type AvailabilityCache interface {
	Get(ctx context.Context, lotID uuid.UUID) (int, bool)
	Set(ctx context.Context, lotID uuid.UUID, available int)
	Invalidate(ctx context.Context, lotID uuid.UUID)
}

type NoopAvailabilityCache struct{}

func (NoopAvailabilityCache) Get(context.Context, uuid.UUID) (int, bool) { return 0, false }
func (NoopAvailabilityCache) Set(context.Context, uuid.UUID, int)        {}
func (NoopAvailabilityCache) Invalidate(context.Context, uuid.UUID)      {}

// Metrics is implemented by the prometheus recorder; NoopMetrics is used in tests.
type Metrics interface {
	ScanProcessed(direction, outcome string)
	CapacityAdjusted(outcome string)
	CASRetried()
	InvoiceFolded(outcome string)
	StoreOp(op string, d time.Duration, err error)
}

type NoopMetrics struct{}

func (NoopMetrics) ScanProcessed(string, string)         {}
func (NoopMetrics) CapacityAdjusted(string)              {}
func (NoopMetrics) CASRetried()                          {}
func (NoopMetrics) InvoiceFolded(string)                 {}
func (NoopMetrics) StoreOp(string, time.Duration, error) {}
