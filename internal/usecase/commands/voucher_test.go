//go:build unit

package commands_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"voucher-ledger/internal/domain/tier"
	"voucher-ledger/internal/domain/user"
	"voucher-ledger/internal/domain/voucher"
	"voucher-ledger/internal/infra/memstore"
	"voucher-ledger/internal/pkg/clock"
	"voucher-ledger/internal/pkg/config"
	"voucher-ledger/internal/pkg/errs"
	"voucher-ledger/internal/usecase/commands"
	"voucher-ledger/internal/usecase/queries"
	"voucher-ledger/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

// sequenceCodes hands out codes in order and repeats the last one forever.
type sequenceCodes struct {
	mu    sync.Mutex
	codes []voucher.Code
	calls int
}

func (s *sequenceCodes) Next() (voucher.Code, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := min(s.calls, len(s.codes)-1)
	s.calls++
	return s.codes[i], nil
}

type ledgerFixture struct {
	store    *memstore.Store
	clock    *clock.MockClock
	logs     *bytes.Buffer
	vouchers commands.VoucherCommands
	tiers    commands.TierCommands
	reads    queries.VoucherQueries

	admin   shared.Actor
	cashier shared.Actor
	posto   shared.Actor
}

func newLedger(t *testing.T, codes voucher.CodeGenerator) *ledgerFixture {
	t.Helper()
	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	store := memstore.New(logger)
	clk := clock.NewMockClock(testNow)
	if codes == nil {
		codes = voucher.NewRandomCodeGenerator()
	}
	cfg := config.NewTestConfig().Ledger
	cfg.CodeMaxAttempts = 3

	postoID := memstore.PostoID
	return &ledgerFixture{
		store:    store,
		clock:    clk,
		logs:     logs,
		vouchers: commands.NewVoucherCommands(store, clk, codes, cfg, logger),
		tiers:    commands.NewTierCommands(store, clk, logger),
		reads:    queries.NewVoucherQueries(store.VoucherReadStore(), cfg.DefaultPageSize),
		admin:    shared.Actor{UserID: uuid.New(), Name: "Admin", Role: user.RoleAdmin},
		cashier:  shared.Actor{UserID: uuid.New(), Name: "Maria Caixa", Role: user.RoleCashier},
		posto:    shared.Actor{UserID: uuid.New(), Name: "Posto", Role: user.RoleEstablishment, EstablishmentID: &postoID},
	}
}

func (f *ledgerFixture) addTier(t *testing.T, estID uuid.UUID, minVolume, value string) uuid.UUID {
	t.Helper()
	id, err := f.tiers.Add(context.Background(), f.admin, commands.AddTierInput{
		EstablishmentID: estID,
		Name:            "Faixa " + minVolume,
		MinVolume:       decimal.RequireFromString(minVolume),
		Value:           decimal.RequireFromString(value),
	})
	require.NoError(t, err)
	return id
}

func (f *ledgerFixture) standardTiers(t *testing.T) {
	f.addTier(t, memstore.PostoID, "0", "10")
	f.addTier(t, memstore.PostoID, "20", "25")
	f.addTier(t, memstore.PostoID, "40", "50")
}

func issueInput(volume string) commands.IssueVoucherInput {
	postoID := memstore.PostoID
	return commands.IssueVoucherInput{
		Volume:          decimal.RequireFromString(volume),
		VehiclePlate:    "abc 1234",
		DriverName:      "João Silva",
		EstablishmentID: &postoID,
	}
}

func TestVoucherCommands_IssueThenRedeemTwice(t *testing.T) {
	ctx := context.Background()
	f := newLedger(t, nil)
	f.standardTiers(t)

	issued, err := f.vouchers.Issue(ctx, f.cashier, issueInput("45"))
	require.NoError(t, err)
	assert.True(t, issued.Code.IsWellFormed())

	view, err := f.reads.GetByID(ctx, issued.VoucherID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(50).Equal(view.Value))
	assert.Equal(t, "ABC-1234", view.VehiclePlate)
	assert.Equal(t, "issued", view.Status)
	assert.Equal(t, f.cashier.UserID, view.IssuerID)
	require.NotNil(t, view.TierName)
	assert.Equal(t, "Faixa 40", *view.TierName)

	// lower-case input with stray spaces is accepted at redemption
	redeemed, err := f.vouchers.Redeem(ctx, f.posto, " "+strings.ToLower(issued.Code.String())+" ")
	require.NoError(t, err)
	assert.Equal(t, issued.VoucherID, redeemed.VoucherID)

	_, err = f.vouchers.Redeem(ctx, f.posto, issued.Code.String())
	require.ErrorIs(t, err, voucher.ErrAlreadyRedeemed)
	assert.True(t, errs.Is(err, errs.ErrAlreadyRedeemed))

	view, err = f.reads.GetByCode(ctx, issued.Code.String())
	require.NoError(t, err)
	assert.Equal(t, "redeemed", view.Status)
	require.NotNil(t, view.RedeemedBy)
	assert.Equal(t, f.posto.UserID, *view.RedeemedBy)
	require.NotNil(t, view.RedeemedAt)
	assert.True(t, testNow.Equal(*view.RedeemedAt))
}

func TestVoucherCommands_Issue(t *testing.T) {
	ctx := context.Background()

	t.Run("volume below every tier is ineligible", func(t *testing.T) {
		f := newLedger(t, nil)
		f.addTier(t, memstore.PostoID, "20", "25")

		_, err := f.vouchers.Issue(ctx, f.cashier, issueInput("10"))
		require.ErrorIs(t, err, tier.ErrNoEligibleTier)
		assert.True(t, errs.Is(err, errs.ErrIneligible))
	})

	t.Run("tiers of other establishments are not considered", func(t *testing.T) {
		f := newLedger(t, nil)
		f.addTier(t, memstore.ChurrascariaID, "0", "99")

		_, err := f.vouchers.Issue(ctx, f.cashier, issueInput("30"))
		require.ErrorIs(t, err, tier.ErrNoEligibleTier)
	})

	t.Run("zero volume is rejected", func(t *testing.T) {
		f := newLedger(t, nil)
		f.standardTiers(t)

		_, err := f.vouchers.Issue(ctx, f.cashier, issueInput("0"))
		require.ErrorIs(t, err, voucher.ErrNonPositiveVolume)
	})

	t.Run("invalid plate is rejected", func(t *testing.T) {
		f := newLedger(t, nil)
		f.standardTiers(t)

		in := issueInput("30")
		in.VehiclePlate = "AB12345"
		_, err := f.vouchers.Issue(ctx, f.cashier, in)
		require.ErrorIs(t, err, voucher.ErrInvalidPlate)
	})

	t.Run("establishment role cannot issue", func(t *testing.T) {
		f := newLedger(t, nil)
		_, err := f.vouchers.Issue(ctx, f.posto, issueInput("30"))
		require.ErrorIs(t, err, commands.ErrIssueForbidden)
	})

	t.Run("missing establishment", func(t *testing.T) {
		f := newLedger(t, nil)
		in := issueInput("30")
		in.EstablishmentID = nil
		_, err := f.vouchers.Issue(ctx, f.cashier, in)
		require.ErrorIs(t, err, commands.ErrEstablishmentMissing)
	})

	t.Run("pinned tier must belong to the requested establishment", func(t *testing.T) {
		f := newLedger(t, nil)
		tierID := f.addTier(t, memstore.ChurrascariaID, "10", "30")

		in := issueInput("30")
		in.TierID = &tierID
		_, err := f.vouchers.Issue(ctx, f.cashier, in)
		require.ErrorIs(t, err, tier.ErrEstablishmentMismatch)
	})

	t.Run("pinned tier below its minimum", func(t *testing.T) {
		f := newLedger(t, nil)
		tierID := f.addTier(t, memstore.PostoID, "40", "50")

		in := issueInput("39.999")
		in.TierID = &tierID
		_, err := f.vouchers.Issue(ctx, f.cashier, in)
		require.ErrorIs(t, err, tier.ErrVolumeBelowTier)
	})

	t.Run("pinned inactive tier", func(t *testing.T) {
		f := newLedger(t, nil)
		tierID := f.addTier(t, memstore.PostoID, "0", "10")
		require.NoError(t, f.tiers.Update(ctx, f.admin, tierID, tier.Patch{Active: ptr(false)}))

		in := issueInput("5")
		in.TierID = &tierID
		_, err := f.vouchers.Issue(ctx, f.cashier, in)
		require.ErrorIs(t, err, tier.ErrTierInactive)
	})

	t.Run("pinned tier without establishment takes the tier's", func(t *testing.T) {
		f := newLedger(t, nil)
		tierID := f.addTier(t, memstore.ChurrascariaID, "10", "30")

		in := issueInput("12")
		in.EstablishmentID = nil
		in.TierID = &tierID
		res, err := f.vouchers.Issue(ctx, f.cashier, in)
		require.NoError(t, err)

		view, err := f.reads.GetByID(ctx, res.VoucherID)
		require.NoError(t, err)
		assert.Equal(t, memstore.ChurrascariaID, view.EstablishmentID)
	})

	t.Run("unknown pinned tier", func(t *testing.T) {
		f := newLedger(t, nil)
		in := issueInput("12")
		in.TierID = ptr(uuid.New())
		_, err := f.vouchers.Issue(ctx, f.cashier, in)
		require.ErrorIs(t, err, commands.ErrUnknownTier)
	})

	t.Run("custom value skips tiers", func(t *testing.T) {
		f := newLedger(t, nil)
		in := issueInput("3")
		in.CustomValue = ptr(decimal.RequireFromString("17.35"))
		res, err := f.vouchers.Issue(ctx, f.admin, in)
		require.NoError(t, err)

		view, err := f.reads.GetByID(ctx, res.VoucherID)
		require.NoError(t, err)
		assert.Equal(t, "17.35", view.Value.String())
		assert.Nil(t, view.TierID)
	})

	t.Run("custom value must be positive", func(t *testing.T) {
		f := newLedger(t, nil)
		in := issueInput("3")
		in.CustomValue = ptr(decimal.Zero)
		_, err := f.vouchers.Issue(ctx, f.admin, in)
		require.ErrorIs(t, err, commands.ErrCustomValueRequired)
	})
}

func TestVoucherCommands_IssueValueIsFrozen(t *testing.T) {
	ctx := context.Background()
	f := newLedger(t, nil)
	tierID := f.addTier(t, memstore.PostoID, "20", "25")

	issued, err := f.vouchers.Issue(ctx, f.cashier, issueInput("30"))
	require.NoError(t, err)

	newValue := decimal.NewFromInt(99)
	require.NoError(t, f.tiers.Update(ctx, f.admin, tierID, tier.Patch{Value: &newValue}))

	view, err := f.reads.GetByID(ctx, issued.VoucherID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(25).Equal(view.Value))

	again, err := f.vouchers.Issue(ctx, f.cashier, issueInput("30"))
	require.NoError(t, err)
	view, err = f.reads.GetByID(ctx, again.VoucherID)
	require.NoError(t, err)
	assert.True(t, newValue.Equal(view.Value))
}

func TestVoucherCommands_IssueCodeCollisions(t *testing.T) {
	ctx := context.Background()

	t.Run("collision is retried with a fresh code", func(t *testing.T) {
		codes := &sequenceCodes{codes: []voucher.Code{"VF-AAAAAAAA", "VF-AAAAAAAA", "VF-BBBBBBBB"}}
		f := newLedger(t, codes)
		f.standardTiers(t)

		first, err := f.vouchers.Issue(ctx, f.cashier, issueInput("45"))
		require.NoError(t, err)
		assert.Equal(t, voucher.Code("VF-AAAAAAAA"), first.Code)

		second, err := f.vouchers.Issue(ctx, f.cashier, issueInput("45"))
		require.NoError(t, err)
		assert.Equal(t, voucher.Code("VF-BBBBBBBB"), second.Code)
		assert.Contains(t, f.logs.String(), "voucher code collision")
	})

	t.Run("exhausted attempts fail with code generation error", func(t *testing.T) {
		codes := &sequenceCodes{codes: []voucher.Code{"VF-CCCCCCCC"}}
		f := newLedger(t, codes)
		f.standardTiers(t)

		_, err := f.vouchers.Issue(ctx, f.cashier, issueInput("45"))
		require.NoError(t, err)

		_, err = f.vouchers.Issue(ctx, f.cashier, issueInput("45"))
		require.Error(t, err)
		assert.True(t, errs.Is(err, voucher.ErrCodeSpaceExhausted))
		assert.True(t, errs.Is(err, errs.ErrCodeGeneration))
		assert.Equal(t, 4, codes.calls, "one code for the first voucher, three attempts for the second")
		assert.Contains(t, f.logs.String(), `"level":"ERROR","msg":"voucher code generation exhausted"`)
	})
}

func TestVoucherCommands_Redeem(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown code is not found", func(t *testing.T) {
		f := newLedger(t, nil)
		_, err := f.vouchers.Redeem(ctx, f.posto, "VF-NOTEXIST")
		require.ErrorIs(t, err, voucher.ErrVoucherNotFound)
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})

	t.Run("malformed code is not found", func(t *testing.T) {
		f := newLedger(t, nil)
		_, err := f.vouchers.Redeem(ctx, f.posto, "hello")
		require.ErrorIs(t, err, voucher.ErrVoucherNotFound)
	})

	t.Run("cashier cannot redeem", func(t *testing.T) {
		f := newLedger(t, nil)
		_, err := f.vouchers.Redeem(ctx, f.cashier, "VF-AAAAAAAA")
		require.ErrorIs(t, err, commands.ErrRedeemForbidden)
	})

	t.Run("another establishment cannot redeem", func(t *testing.T) {
		f := newLedger(t, nil)
		f.standardTiers(t)
		issued, err := f.vouchers.Issue(ctx, f.cashier, issueInput("45"))
		require.NoError(t, err)

		churrascaria := memstore.ChurrascariaID
		other := shared.Actor{UserID: uuid.New(), Role: user.RoleEstablishment, EstablishmentID: &churrascaria}
		_, err = f.vouchers.Redeem(ctx, other, issued.Code.String())
		require.ErrorIs(t, err, voucher.ErrWrongEstablishment)

		view, err := f.reads.GetByID(ctx, issued.VoucherID)
		require.NoError(t, err)
		assert.Equal(t, "issued", view.Status)
	})

	t.Run("cancelled voucher cannot be redeemed", func(t *testing.T) {
		f := newLedger(t, nil)
		f.standardTiers(t)
		issued, err := f.vouchers.Issue(ctx, f.cashier, issueInput("45"))
		require.NoError(t, err)
		require.NoError(t, f.vouchers.Cancel(ctx, f.admin, issued.VoucherID))

		_, err = f.vouchers.Redeem(ctx, f.posto, issued.Code.String())
		require.ErrorIs(t, err, voucher.ErrVoucherCancelled)
	})

	t.Run("concurrent redemptions succeed exactly once", func(t *testing.T) {
		f := newLedger(t, nil)
		f.standardTiers(t)
		issued, err := f.vouchers.Issue(ctx, f.cashier, issueInput("45"))
		require.NoError(t, err)

		const attempts = 20
		results := make(chan error, attempts)
		var wg sync.WaitGroup
		for range attempts {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := f.vouchers.Redeem(ctx, f.posto, issued.Code.String())
				results <- err
			}()
		}
		wg.Wait()
		close(results)

		var ok, already int
		for err := range results {
			switch {
			case err == nil:
				ok++
			case errs.Is(err, errs.ErrAlreadyRedeemed):
				already++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}
		assert.Equal(t, 1, ok)
		assert.Equal(t, attempts-1, already)
	})
}

func TestVoucherCommands_CancelAndDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("issued voucher cannot be deleted, redeemed one can", func(t *testing.T) {
		f := newLedger(t, nil)
		f.standardTiers(t)
		issued, err := f.vouchers.Issue(ctx, f.cashier, issueInput("45"))
		require.NoError(t, err)

		err = f.vouchers.Delete(ctx, f.admin, issued.VoucherID)
		require.ErrorIs(t, err, voucher.ErrDeleteIssued)
		assert.True(t, errs.Is(err, errs.ErrInvalidState))

		_, err = f.vouchers.Redeem(ctx, f.posto, issued.Code.String())
		require.NoError(t, err)
		require.NoError(t, f.vouchers.Delete(ctx, f.admin, issued.VoucherID))

		_, err = f.reads.GetByID(ctx, issued.VoucherID)
		require.ErrorIs(t, err, voucher.ErrVoucherNotFound)

		err = f.vouchers.Delete(ctx, f.admin, issued.VoucherID)
		require.ErrorIs(t, err, voucher.ErrVoucherNotFound)
	})

	t.Run("only admins cancel and delete", func(t *testing.T) {
		f := newLedger(t, nil)
		require.ErrorIs(t, f.vouchers.Cancel(ctx, f.cashier, uuid.New()), commands.ErrAdminOnly)
		require.ErrorIs(t, f.vouchers.Delete(ctx, f.posto, uuid.New()), commands.ErrAdminOnly)
	})

	t.Run("cancel twice is an invalid state", func(t *testing.T) {
		f := newLedger(t, nil)
		f.standardTiers(t)
		issued, err := f.vouchers.Issue(ctx, f.cashier, issueInput("45"))
		require.NoError(t, err)

		require.NoError(t, f.vouchers.Cancel(ctx, f.admin, issued.VoucherID))
		err = f.vouchers.Cancel(ctx, f.admin, issued.VoucherID)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrInvalidState))

		view, err := f.reads.GetByID(ctx, issued.VoucherID)
		require.NoError(t, err)
		assert.Equal(t, "cancelled", view.Status)
		assert.NotNil(t, view.CancelledAt)
	})

	t.Run("unknown id", func(t *testing.T) {
		f := newLedger(t, nil)
		require.ErrorIs(t, f.vouchers.Cancel(ctx, f.admin, uuid.New()), voucher.ErrVoucherNotFound)
	})
}

func ptr[T any](v T) *T { return &v }
