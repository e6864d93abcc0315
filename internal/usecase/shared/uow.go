package shared

import (
	"context"
	"time"

	"parkpass/internal/domain/driver"
	"parkpass/internal/domain/invoice"
	"parkpass/internal/domain/lot"
	"parkpass/internal/domain/pricing"
	"parkpass/internal/domain/session"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes repositories bound to one transaction.
type Tx interface {
	Lots() LotRepository
	Sessions() SessionRepository
	Invoices() InvoiceRepository
	Tiers() TierRepository
	Drivers() DriverRepository
}

// LotMutator edits a private copy of the lot. Returning an error aborts the swap.
type LotMutator func(l *lot.Lot) error

type LotRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*lot.Lot, error)
	List(ctx context.Context) ([]*lot.Lot, error)
	Create(ctx context.Context, l *lot.Lot) error
	// CompareAndSwap reads the lot, applies mutate and writes it back only if the
	// stored version is unchanged. A lost race returns errs.ErrConcurrentUpdate.
	CompareAndSwap(ctx context.Context, id uuid.UUID, mutate LotMutator) (*lot.Lot, error)
	// SwapIfVersion is CompareAndSwap against a version the caller read earlier,
	// so anything decided between that read and the swap is checked too.
	SwapIfVersion(ctx context.Context, id uuid.UUID, expected int64, mutate LotMutator) (*lot.Lot, error)
}

type SessionRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*session.Session, error)
	FindActiveByDriver(ctx context.Context, driverID uuid.UUID) (*session.Session, error)
	Create(ctx context.Context, s *session.Session) error
	// Update persists a transition out of the active state.
	Update(ctx context.Context, s *session.Session) error
	ListByLot(ctx context.Context, lotID uuid.UUID, from, to time.Time) ([]*session.Session, error)
	ListByDriver(ctx context.Context, driverID uuid.UUID, from, to time.Time) ([]*session.Session, error)
	ListCompleted(ctx context.Context, from, to time.Time) ([]*session.Session, error)
	CountActiveByLot(ctx context.Context, lotID uuid.UUID) (int, error)
}

type InvoiceRepository interface {
	Find(ctx context.Context, driverID uuid.UUID, period invoice.Period) (*invoice.Invoice, error)
	// Upsert inserts version 0 invoices and updates others only if the stored version matches.
	Upsert(ctx context.Context, inv *invoice.Invoice) error
	ListByPeriod(ctx context.Context, period invoice.Period) ([]*invoice.Invoice, error)
}

type TierRepository interface {
	FindByMembership(ctx context.Context, membership pricing.MembershipType) (pricing.Tier, error)
}

type DriverRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*driver.Driver, error)
}
