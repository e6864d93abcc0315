package memstore

import (
	"errors"

	"parkpass/internal/domain/invoice"
	"parkpass/internal/domain/lot"
	"parkpass/internal/domain/session"
	"parkpass/internal/infra"
	"parkpass/internal/usecase/shared"

	"github.com/google/uuid"
)

var errReadOnly = errors.New("write in read-only transaction")

type stagedLot struct {
	lot      *lot.Lot
	expected int64 // 0 when the lot is created by this transaction
}

type stagedSession struct {
	session  *session.Session
	expected session.Status // empty when the session is created by this transaction
}

type stagedInvoice struct {
	invoice  *invoice.Invoice
	expected int64
}

type memTx struct {
	store    *Store
	readOnly bool

	lots     map[uuid.UUID]*stagedLot
	sessions map[uuid.UUID]*stagedSession
	invoices map[invoiceKey]*stagedInvoice
}

func newMemTx(s *Store, readOnly bool) *memTx {
	return &memTx{
		store:    s,
		readOnly: readOnly,
		lots:     make(map[uuid.UUID]*stagedLot),
		sessions: make(map[uuid.UUID]*stagedSession),
		invoices: make(map[invoiceKey]*stagedInvoice),
	}
}

func (t *memTx) Lots() shared.LotRepository         { return &lotRepo{tx: t} }
func (t *memTx) Sessions() shared.SessionRepository { return &sessionRepo{tx: t} }
func (t *memTx) Invoices() shared.InvoiceRepository { return &invoiceRepo{tx: t} }
func (t *memTx) Tiers() shared.TierRepository       { return &tierRepo{tx: t} }
func (t *memTx) Drivers() shared.DriverRepository   { return &driverRepo{tx: t} }

func (t *memTx) writable() error {
	if t.readOnly {
		return infra.WrapRepoErr(infra.KindDBFailure, "memstore write", errReadOnly)
	}
	return nil
}

func (t *memTx) lockKeys() []string {
	keys := make([]string, 0, len(t.lots)+2*len(t.sessions)+len(t.invoices))
	for id := range t.lots {
		keys = append(keys, "lot:"+id.String())
	}
	for id, st := range t.sessions {
		keys = append(keys, "session:"+id.String(), "driver:"+st.session.DriverID().String())
	}
	for k := range t.invoices {
		keys = append(keys, "invoice:"+k.driverID.String()+":"+k.period.String())
	}
	return keys
}

func (t *memTx) commit() error {
	if len(t.lots)+len(t.sessions)+len(t.invoices) == 0 {
		return nil
	}

	unlock := t.store.keys.lockAll(t.lockKeys())
	defer unlock()

	if err := t.validate(); err != nil {
		return err
	}

	s := t.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, st := range t.lots {
		s.lots[id] = st.lot.Clone()
	}
	for id, st := range t.sessions {
		s.sessions[id] = st.session.Clone()
	}
	for k, st := range t.invoices {
		s.invoices[k] = st.invoice.Clone()
	}
	return nil
}

func (t *memTx) validate() error {
	s := t.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for id, st := range t.lots {
		cur, ok := s.lots[id]
		switch {
		case st.expected == 0 && ok:
			return infra.WrapRepoErr(infra.KindDuplicateKey, "lot already exists", nil)
		case st.expected != 0 && !ok:
			return infra.WrapRepoErr(infra.KindNotFound, "lot not found", nil)
		case st.expected != 0 && cur.Version() != st.expected:
			return infra.WrapRepoErr(infra.KindConflict, "lot version changed", nil)
		}
	}

	for id, st := range t.sessions {
		cur, ok := s.sessions[id]
		if st.expected == "" {
			if ok {
				return infra.WrapRepoErr(infra.KindDuplicateKey, "session already exists", nil)
			}
			if st.session.IsActive() && t.committedActive(st.session.DriverID()) {
				return infra.WrapRepoErr(infra.KindDuplicateKey, "driver already has an active session", nil)
			}
			continue
		}
		if !ok {
			return infra.WrapRepoErr(infra.KindNotFound, "session not found", nil)
		}
		if cur.Status() != st.expected {
			return infra.WrapRepoErr(infra.KindConflict, "session status changed", nil)
		}
	}

	for k, st := range t.invoices {
		cur, ok := s.invoices[k]
		switch {
		case st.expected == 0 && ok:
			return infra.WrapRepoErr(infra.KindConflict, "invoice created concurrently", nil)
		case st.expected != 0 && (!ok || cur.Version() != st.expected):
			return infra.WrapRepoErr(infra.KindConflict, "invoice version changed", nil)
		}
	}
	return nil
}

// committedActive reports an active session for the driver that this transaction does not close.
func (t *memTx) committedActive(driverID uuid.UUID) bool {
	for id, cur := range t.store.sessions {
		if cur.DriverID() != driverID || !cur.IsActive() {
			continue
		}
		if st, ok := t.sessions[id]; ok && !st.session.IsActive() {
			continue
		}
		return true
	}
	return false
}
