// Package memstore is an in-process UnitOfWork used by tests and single-node deployments.
// Transactions stage their writes and validate record versions at commit while holding
// per-key mutexes, so two commits only serialize when they touch the same record.
package memstore

import (
	"context"
	"slices"
	"sync"
	"time"

	"parkpass/internal/domain/driver"
	"parkpass/internal/domain/invoice"
	"parkpass/internal/domain/lot"
	"parkpass/internal/domain/pricing"
	"parkpass/internal/domain/session"
	"parkpass/internal/infra"
	"parkpass/internal/usecase/shared"

	"github.com/google/uuid"
)

const DefaultOpTimeout = 3 * time.Second

type invoiceKey struct {
	driverID uuid.UUID
	period   invoice.Period
}

type Store struct {
	mu       sync.RWMutex
	lots     map[uuid.UUID]*lot.Lot
	sessions map[uuid.UUID]*session.Session
	invoices map[invoiceKey]*invoice.Invoice
	tiers    map[pricing.MembershipType]pricing.Tier
	drivers  map[uuid.UUID]*driver.Driver

	keys      keyedMutex
	opTimeout time.Duration
}

func New(opTimeout time.Duration) *Store {
	if opTimeout <= 0 {
		opTimeout = DefaultOpTimeout
	}
	return &Store{
		lots:      make(map[uuid.UUID]*lot.Lot),
		sessions:  make(map[uuid.UUID]*session.Session),
		invoices:  make(map[invoiceKey]*invoice.Invoice),
		tiers:     make(map[pricing.MembershipType]pricing.Tier),
		drivers:   make(map[uuid.UUID]*driver.Driver),
		opTimeout: opTimeout,
	}
}

func NewUoW(s *Store) shared.UnitOfWork {
	return s
}

func (s *Store) PutTier(t pricing.Tier) {
	s.mu.Lock()
	s.tiers[t.MembershipType()] = t
	s.mu.Unlock()
}

func (s *Store) PutDriver(d *driver.Driver) {
	s.mu.Lock()
	s.drivers[d.ID()] = d
	s.mu.Unlock()
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return s.run(ctx, false, fn)
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return s.run(ctx, true, fn)
}

func (s *Store) run(ctx context.Context, readOnly bool, fn func(ctx context.Context, tx shared.Tx) error) error {
	ctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	tx := newMemTx(s, readOnly)
	if err := fn(ctx, tx); err != nil {
		return err
	}
	if readOnly {
		return nil
	}
	if err := checkCtx(ctx); err != nil {
		return err
	}
	return tx.commit()
}

func checkCtx(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return infra.WrapRepoErr(infra.KindTimeout, "memstore operation", err)
	}
	return nil
}

type keyedMutex struct {
	locks sync.Map
}

// lockAll acquires the mutexes in sorted order and returns the unlock function.
func (k *keyedMutex) lockAll(keys []string) func() {
	slices.Sort(keys)
	keys = slices.Compact(keys)
	held := make([]*sync.Mutex, 0, len(keys))
	for _, key := range keys {
		m, _ := k.locks.LoadOrStore(key, &sync.Mutex{})
		mu := m.(*sync.Mutex)
		mu.Lock()
		held = append(held, mu)
	}
	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}
