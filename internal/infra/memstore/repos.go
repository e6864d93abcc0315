package memstore

import (
	"context"
	"slices"
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

type lotRepo struct{ tx *memTx }

func (r *lotRepo) FindByID(ctx context.Context, id uuid.UUID) (*lot.Lot, error) {
	if err := checkCtx(ctx); err != nil {
		return nil, err
	}
	if st, ok := r.tx.lots[id]; ok {
		return st.lot.Clone(), nil
	}
	r.tx.store.mu.RLock()
	defer r.tx.store.mu.RUnlock()
	l, ok := r.tx.store.lots[id]
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "lot not found", nil)
	}
	return l.Clone(), nil
}

func (r *lotRepo) List(ctx context.Context) ([]*lot.Lot, error) {
	if err := checkCtx(ctx); err != nil {
		return nil, err
	}
	r.tx.store.mu.RLock()
	out := make([]*lot.Lot, 0, len(r.tx.store.lots))
	for id, l := range r.tx.store.lots {
		if st, ok := r.tx.lots[id]; ok {
			l = st.lot
		}
		out = append(out, l.Clone())
	}
	r.tx.store.mu.RUnlock()
	for id, st := range r.tx.lots {
		if st.expected == 0 {
			out = append(out, r.tx.lots[id].lot.Clone())
		}
	}
	slices.SortFunc(out, func(a, b *lot.Lot) int { return a.CreatedAt().Compare(b.CreatedAt()) })
	return out, nil
}

func (r *lotRepo) Create(ctx context.Context, l *lot.Lot) error {
	if err := checkCtx(ctx); err != nil {
		return err
	}
	if err := r.tx.writable(); err != nil {
		return err
	}
	if _, ok := r.tx.lots[l.ID()]; ok {
		return infra.WrapRepoErr(infra.KindDuplicateKey, "lot already exists", nil)
	}
	r.tx.lots[l.ID()] = &stagedLot{lot: l.Clone()}
	return nil
}

func (r *lotRepo) CompareAndSwap(ctx context.Context, id uuid.UUID, mutate shared.LotMutator) (*lot.Lot, error) {
	return r.swap(ctx, id, nil, mutate)
}

func (r *lotRepo) SwapIfVersion(ctx context.Context, id uuid.UUID, expected int64, mutate shared.LotMutator) (*lot.Lot, error) {
	return r.swap(ctx, id, &expected, mutate)
}

// swap stages the mutated lot. The commit re-checks the version the swap was based on.
func (r *lotRepo) swap(ctx context.Context, id uuid.UUID, want *int64, mutate shared.LotMutator) (*lot.Lot, error) {
	if err := r.tx.writable(); err != nil {
		return nil, err
	}
	cur, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if want != nil && cur.Version() != *want {
		return nil, infra.WrapRepoErr(infra.KindConflict, "lot version changed", nil)
	}

	expected := cur.Version()
	if st, ok := r.tx.lots[id]; ok {
		expected = st.expected
	}

	if err := mutate(cur); err != nil {
		return nil, err
	}
	cur.BumpVersion()
	r.tx.lots[id] = &stagedLot{lot: cur.Clone(), expected: expected}
	return cur, nil
}

type sessionRepo struct{ tx *memTx }

// view returns the transaction's picture of a session: staged first, then committed.
func (r *sessionRepo) view(id uuid.UUID) (*session.Session, bool) {
	if st, ok := r.tx.sessions[id]; ok {
		return st.session, true
	}
	r.tx.store.mu.RLock()
	defer r.tx.store.mu.RUnlock()
	s, ok := r.tx.store.sessions[id]
	return s, ok
}

func (r *sessionRepo) all() []*session.Session {
	r.tx.store.mu.RLock()
	out := make([]*session.Session, 0, len(r.tx.store.sessions)+len(r.tx.sessions))
	for id, s := range r.tx.store.sessions {
		if _, staged := r.tx.sessions[id]; staged {
			continue
		}
		out = append(out, s)
	}
	r.tx.store.mu.RUnlock()
	for _, st := range r.tx.sessions {
		out = append(out, st.session)
	}
	return out
}

func (r *sessionRepo) FindByID(ctx context.Context, id uuid.UUID) (*session.Session, error) {
	if err := checkCtx(ctx); err != nil {
		return nil, err
	}
	s, ok := r.view(id)
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "session not found", nil)
	}
	return s.Clone(), nil
}

func (r *sessionRepo) FindActiveByDriver(ctx context.Context, driverID uuid.UUID) (*session.Session, error) {
	if err := checkCtx(ctx); err != nil {
		return nil, err
	}
	for _, s := range r.all() {
		if s.DriverID() == driverID && s.IsActive() {
			return s.Clone(), nil
		}
	}
	return nil, infra.WrapRepoErr(infra.KindNotFound, "no active session", nil)
}

func (r *sessionRepo) Create(ctx context.Context, s *session.Session) error {
	if err := checkCtx(ctx); err != nil {
		return err
	}
	if err := r.tx.writable(); err != nil {
		return err
	}
	if _, ok := r.view(s.ID()); ok {
		return infra.WrapRepoErr(infra.KindDuplicateKey, "session already exists", nil)
	}
	r.tx.sessions[s.ID()] = &stagedSession{session: s.Clone()}
	return nil
}

func (r *sessionRepo) Update(ctx context.Context, s *session.Session) error {
	if err := checkCtx(ctx); err != nil {
		return err
	}
	if err := r.tx.writable(); err != nil {
		return err
	}
	if st, ok := r.tx.sessions[s.ID()]; ok {
		if st.expected == "" || st.session.IsActive() {
			st.session = s.Clone()
			return nil
		}
		return infra.WrapRepoErr(infra.KindConflict, "session already updated", nil)
	}

	r.tx.store.mu.RLock()
	cur, ok := r.tx.store.sessions[s.ID()]
	r.tx.store.mu.RUnlock()
	if !ok {
		return infra.WrapRepoErr(infra.KindNotFound, "session not found", nil)
	}
	if !cur.IsActive() {
		return infra.WrapRepoErr(infra.KindConflict, "session is no longer active", nil)
	}
	r.tx.sessions[s.ID()] = &stagedSession{session: s.Clone(), expected: cur.Status()}
	return nil
}

func (r *sessionRepo) list(ctx context.Context, keep func(s *session.Session) bool) ([]*session.Session, error) {
	if err := checkCtx(ctx); err != nil {
		return nil, err
	}
	var out []*session.Session
	for _, s := range r.all() {
		if keep(s) {
			out = append(out, s.Clone())
		}
	}
	slices.SortFunc(out, func(a, b *session.Session) int {
		if c := a.EntryTime().Compare(b.EntryTime()); c != 0 {
			return c
		}
		return a.CreatedAt().Compare(b.CreatedAt())
	})
	return out, nil
}

func inRange(t, from, to time.Time) bool {
	return !t.Before(from) && t.Before(to)
}

func (r *sessionRepo) ListByLot(ctx context.Context, lotID uuid.UUID, from, to time.Time) ([]*session.Session, error) {
	return r.list(ctx, func(s *session.Session) bool {
		return s.LotID() == lotID && inRange(s.EntryTime(), from, to)
	})
}

func (r *sessionRepo) ListByDriver(ctx context.Context, driverID uuid.UUID, from, to time.Time) ([]*session.Session, error) {
	return r.list(ctx, func(s *session.Session) bool {
		return s.DriverID() == driverID && inRange(s.EntryTime(), from, to)
	})
}

func (r *sessionRepo) ListCompleted(ctx context.Context, from, to time.Time) ([]*session.Session, error) {
	return r.list(ctx, func(s *session.Session) bool {
		return s.IsCompleted() && inRange(s.EntryTime(), from, to)
	})
}

func (r *sessionRepo) CountActiveByLot(ctx context.Context, lotID uuid.UUID) (int, error) {
	rows, err := r.list(ctx, func(s *session.Session) bool {
		return s.LotID() == lotID && s.IsActive()
	})
	return len(rows), err
}

type invoiceRepo struct{ tx *memTx }

func (r *invoiceRepo) Find(ctx context.Context, driverID uuid.UUID, period invoice.Period) (*invoice.Invoice, error) {
	if err := checkCtx(ctx); err != nil {
		return nil, err
	}
	key := invoiceKey{driverID: driverID, period: period}
	if st, ok := r.tx.invoices[key]; ok {
		return st.invoice.Clone(), nil
	}
	r.tx.store.mu.RLock()
	defer r.tx.store.mu.RUnlock()
	inv, ok := r.tx.store.invoices[key]
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "invoice not found", nil)
	}
	return inv.Clone(), nil
}

func (r *invoiceRepo) Upsert(ctx context.Context, inv *invoice.Invoice) error {
	if err := checkCtx(ctx); err != nil {
		return err
	}
	if err := r.tx.writable(); err != nil {
		return err
	}
	key := invoiceKey{driverID: inv.DriverID(), period: inv.Period()}
	expected := inv.Version()
	if st, ok := r.tx.invoices[key]; ok {
		if st.invoice.Version() != inv.Version() {
			return infra.WrapRepoErr(infra.KindConflict, "invoice version changed", nil)
		}
		expected = st.expected
	}

	inv.BumpVersion()
	r.tx.invoices[key] = &stagedInvoice{invoice: inv.Clone(), expected: expected}
	return nil
}

func (r *invoiceRepo) ListByPeriod(ctx context.Context, period invoice.Period) ([]*invoice.Invoice, error) {
	if err := checkCtx(ctx); err != nil {
		return nil, err
	}
	r.tx.store.mu.RLock()
	defer r.tx.store.mu.RUnlock()
	var out []*invoice.Invoice
	for k, inv := range r.tx.store.invoices {
		if k.period == period {
			out = append(out, inv.Clone())
		}
	}
	slices.SortFunc(out, func(a, b *invoice.Invoice) int {
		return a.CreatedAt().Compare(b.CreatedAt())
	})
	return out, nil
}

type tierRepo struct{ tx *memTx }

func (r *tierRepo) FindByMembership(ctx context.Context, membership pricing.MembershipType) (pricing.Tier, error) {
	if err := checkCtx(ctx); err != nil {
		return pricing.Tier{}, err
	}
	r.tx.store.mu.RLock()
	defer r.tx.store.mu.RUnlock()
	t, ok := r.tx.store.tiers[membership]
	if !ok {
		return pricing.Tier{}, infra.WrapRepoErr(infra.KindNotFound, "tier not found", nil)
	}
	return t, nil
}

type driverRepo struct{ tx *memTx }

func (r *driverRepo) FindByID(ctx context.Context, id uuid.UUID) (*driver.Driver, error) {
	if err := checkCtx(ctx); err != nil {
		return nil, err
	}
	r.tx.store.mu.RLock()
	defer r.tx.store.mu.RUnlock()
	d, ok := r.tx.store.drivers[id]
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "driver not found", nil)
	}
	return d, nil
}
