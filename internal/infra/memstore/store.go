// Package memstore keeps the ledger in process memory. It implements the same
// ports as the PostgreSQL adapter and serializes write transactions behind one
// lock. Writes go through a per-transaction undo journal, so a unit of work
// either commits whole or not at all and rollback only touches the keys it wrote.
package memstore

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"voucher-ledger/internal/domain/tier"
	"voucher-ledger/internal/domain/voucher"
	"voucher-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

// Seeded establishments share their ids with migrations/002_seed_establishments.sql.
var (
	PostoID        = uuid.MustParse("0b8f3c4e-6f0e-4c1b-9d7a-1a2b3c4d5e01")
	ConvenienciaID = uuid.MustParse("0b8f3c4e-6f0e-4c1b-9d7a-1a2b3c4d5e02")
	ChurrascariaID = uuid.MustParse("0b8f3c4e-6f0e-4c1b-9d7a-1a2b3c4d5e03")
)

type establishmentRow struct {
	id        uuid.UUID
	name      string
	createdAt time.Time
}

type voucherRow struct {
	v         voucher.Voucher
	deletedAt *time.Time
}

type userRow struct {
	id              uuid.UUID
	email           string
	passwordHash    string
	name            string
	role            string
	establishmentID *uuid.UUID
	isActive        bool
	lastLogin       *time.Time
	createdAt       time.Time
	updatedAt       time.Time
}

type tables struct {
	establishments map[uuid.UUID]establishmentRow
	tiers          map[uuid.UUID]tier.Tier
	vouchers       map[uuid.UUID]voucherRow
	voucherCodes   map[string]uuid.UUID
	users          map[uuid.UUID]userRow
	userEmails     map[string]uuid.UUID
}

type Store struct {
	mu     sync.RWMutex
	data   tables
	logger *slog.Logger
}

// New returns a store holding the three seeded establishments.
func New(logger *slog.Logger) *Store {
	s := &Store{
		data: tables{
			establishments: map[uuid.UUID]establishmentRow{},
			tiers:          map[uuid.UUID]tier.Tier{},
			vouchers:       map[uuid.UUID]voucherRow{},
			voucherCodes:   map[string]uuid.UUID{},
			users:          map[uuid.UUID]userRow{},
			userEmails:     map[string]uuid.UUID{},
		},
		logger: logger,
	}
	seededAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, e := range []establishmentRow{
		{id: PostoID, name: "Posto", createdAt: seededAt},
		{id: ConvenienciaID, name: "Conveniência", createdAt: seededAt},
		{id: ChurrascariaID, name: "Churrascaria", createdAt: seededAt},
	} {
		s.data.establishments[e.id] = e
	}
	return s
}

// AddEstablishment registers an extra establishment. Tests use it to get
// isolated tenants.
func (s *Store) AddEstablishment(id uuid.UUID, name string, createdAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.establishments[id] = establishmentRow{id: id, name: name, createdAt: createdAt}
}

// Within runs fn with exclusive access. On error every write made through tx
// is discarded.
func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memTx{data: &s.data, logger: s.logger}
	if err := fn(ctx, tx); err != nil {
		tx.rollback()
		return err
	}
	return nil
}

// memTx is only valid while Within holds the lock.
type memTx struct {
	data   *tables
	undo   []func()
	logger *slog.Logger
}

func (t *memTx) rollback() {
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
	t.undo = nil
}

// put writes m[k] = v and journals the previous entry.
func put[K comparable, V any](t *memTx, m map[K]V, k K, v V) {
	old, existed := m[k]
	t.undo = append(t.undo, func() {
		if existed {
			m[k] = old
		} else {
			delete(m, k)
		}
	})
	m[k] = v
}

func (t *memTx) Tiers() shared.TierRepository                   { return &tierRepo{t} }
func (t *memTx) Vouchers() shared.VoucherRepository             { return &voucherRepo{t} }
func (t *memTx) Establishments() shared.EstablishmentRepository { return &establishmentRepo{t} }
func (t *memTx) Users() shared.UserRepository                   { return &userRepo{t} }
