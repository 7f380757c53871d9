//go:build unit

package queries_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"voucher-ledger/internal/domain/user"
	"voucher-ledger/internal/domain/voucher"
	"voucher-ledger/internal/infra/memstore"
	"voucher-ledger/internal/pkg/clock"
	"voucher-ledger/internal/pkg/config"
	"voucher-ledger/internal/usecase/commands"
	"voucher-ledger/internal/usecase/queries"
	"voucher-ledger/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store    *memstore.Store
	clock    *clock.MockClock
	vouchers commands.VoucherCommands
	tiers    commands.TierCommands
	reads    queries.VoucherQueries

	admin   shared.Actor
	cashier shared.Actor
	posto   shared.Actor
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memstore.New(logger)
	clk := clock.NewMockClock(time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC))
	cfg := config.NewTestConfig().Ledger
	postoID := memstore.PostoID

	f := &fixture{
		store:    store,
		clock:    clk,
		vouchers: commands.NewVoucherCommands(store, clk, voucher.NewRandomCodeGenerator(), cfg, logger),
		tiers:    commands.NewTierCommands(store, clk, logger),
		reads:    queries.NewVoucherQueries(store.VoucherReadStore(), 2),
		admin:    shared.Actor{UserID: uuid.New(), Role: user.RoleAdmin},
		cashier:  shared.Actor{UserID: uuid.New(), Name: "Maria", Role: user.RoleCashier},
		posto:    shared.Actor{UserID: uuid.New(), Role: user.RoleEstablishment, EstablishmentID: &postoID},
	}
	_, err := f.tiers.Add(context.Background(), f.admin, commands.AddTierInput{
		EstablishmentID: memstore.PostoID,
		Name:            "Base",
		MinVolume:       decimal.Zero,
		Value:           decimal.NewFromInt(10),
	})
	require.NoError(t, err)
	return f
}

func (f *fixture) issue(t *testing.T, n int) []uuid.UUID {
	t.Helper()
	postoID := memstore.PostoID
	ids := make([]uuid.UUID, n)
	for i := range n {
		f.clock.Add(time.Minute)
		res, err := f.vouchers.Issue(context.Background(), f.cashier, commands.IssueVoucherInput{
			Volume:          decimal.NewFromInt(10),
			VehiclePlate:    "ABC1D23",
			DriverName:      "Pedro",
			EstablishmentID: &postoID,
		})
		require.NoError(t, err)
		ids[i] = res.VoucherID
	}
	return ids
}

func TestVoucherQueries_ListByIssuerPages(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	ids := f.issue(t, 5)

	var seen []uuid.UUID
	var cursor *queries.Cursor
	pages := 0
	for {
		page, err := f.reads.ListByIssuer(ctx, f.cashier, f.cashier.UserID, cursor, 0)
		require.NoError(t, err)
		pages++
		for _, v := range page.Items {
			seen = append(seen, v.ID)
		}
		if page.Next == nil {
			break
		}
		cursor = page.Next
	}

	assert.Equal(t, 3, pages)
	require.Len(t, seen, 5)
	// newest first
	for i := range ids {
		assert.Equal(t, ids[len(ids)-1-i], seen[i])
	}
}

func TestVoucherQueries_Access(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.issue(t, 1)

	otherCashier := shared.Actor{UserID: uuid.New(), Role: user.RoleCashier}
	_, err := f.reads.ListByIssuer(ctx, otherCashier, f.cashier.UserID, nil, 10)
	require.ErrorIs(t, err, queries.ErrVoucherAccess)

	_, err = f.reads.ListByIssuer(ctx, f.posto, f.cashier.UserID, nil, 10)
	require.ErrorIs(t, err, queries.ErrVoucherAccess)

	page, err := f.reads.ListByIssuer(ctx, f.admin, f.cashier.UserID, nil, 10)
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)

	page, err = f.reads.ListByEstablishment(ctx, f.posto, memstore.PostoID, nil, 10)
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)

	_, err = f.reads.ListByEstablishment(ctx, f.posto, memstore.ChurrascariaID, nil, 10)
	require.ErrorIs(t, err, queries.ErrVoucherAccess)

	_, err = f.reads.ListByEstablishment(ctx, f.cashier, memstore.PostoID, nil, 10)
	require.ErrorIs(t, err, queries.ErrVoucherAccess)

	_, err = f.reads.ListByIssuer(ctx, f.cashier, f.cashier.UserID, &queries.Cursor{After: "garbage"}, 10)
	require.Error(t, err)
}

func TestVoucherQueries_Stats(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	ids := f.issue(t, 3)
	require.NoError(t, f.vouchers.Cancel(ctx, f.admin, ids[0]))

	code, err := f.reads.GetByID(ctx, ids[1])
	require.NoError(t, err)
	_, err = f.vouchers.Redeem(ctx, f.posto, code.Code)
	require.NoError(t, err)

	stats, err := f.reads.Stats(ctx, f.admin, queries.StatsFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Issued.Count)
	assert.Equal(t, int64(1), stats.Redeemed.Count)
	assert.Equal(t, int64(1), stats.Cancelled.Count)
	assert.True(t, decimal.NewFromInt(10).Equal(stats.Redeemed.Value))

	// a cashier asking for everything only gets their own vouchers
	stranger := shared.Actor{UserID: uuid.New(), Role: user.RoleCashier}
	stats, err = f.reads.Stats(ctx, stranger, queries.StatsFilter{})
	require.NoError(t, err)
	assert.Zero(t, stats.Issued.Count+stats.Redeemed.Count+stats.Cancelled.Count)

	// establishments cannot widen their scope
	churrascaria := memstore.ChurrascariaID
	stats, err = f.reads.Stats(ctx, f.posto, queries.StatsFilter{EstablishmentID: &churrascaria})
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Issued.Count)
}

func TestVoucherQueries_GetByCode(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.reads.GetByCode(ctx, "VF-NOTEXIST")
	require.ErrorIs(t, err, voucher.ErrVoucherNotFound)
}
