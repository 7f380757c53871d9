//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	sqlc "voucher-ledger/internal/infra/sqlc/generated"
	"voucher-ledger/internal/pkg/pgconv"
	"voucher-ledger/internal/usecase/queries"
	"voucher-ledger/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockVoucherViewQueries struct {
	mock.Mock
}

func (m *MockVoucherViewQueries) GetVoucherViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.VoucherViews, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.VoucherViews), args.Error(1)
}

func (m *MockVoucherViewQueries) GetVoucherViewByCode(ctx context.Context, db sqlc.DBTX, code string) (sqlc.VoucherViews, error) {
	args := m.Called(ctx, db, code)
	return args.Get(0).(sqlc.VoucherViews), args.Error(1)
}

func (m *MockVoucherViewQueries) ListVouchersByIssuer(ctx context.Context, db sqlc.DBTX, arg sqlc.ListVouchersByIssuerParams) ([]sqlc.VoucherViews, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.VoucherViews), args.Error(1)
}

func (m *MockVoucherViewQueries) ListVouchersByEstablishment(ctx context.Context, db sqlc.DBTX, arg sqlc.ListVouchersByEstablishmentParams) ([]sqlc.VoucherViews, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.VoucherViews), args.Error(1)
}

func (m *MockVoucherViewQueries) VoucherStats(ctx context.Context, db sqlc.DBTX, arg sqlc.VoucherStatsParams) ([]sqlc.VoucherStatsRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.VoucherStatsRow), args.Error(1)
}

func viewRow(b *builder.VoucherBuilder) sqlc.VoucherViews {
	r := b.BuildInfra()
	return sqlc.VoucherViews{
		ID:                r.ID,
		Code:              r.Code,
		Value:             r.Value,
		TierID:            r.TierID,
		TierName:          pgtype.Text{String: "Faixa 40L", Valid: r.TierID.Valid},
		Volume:            r.Volume,
		VehiclePlate:      r.VehiclePlate,
		DriverName:        r.DriverName,
		ReceiptNumber:     r.ReceiptNumber,
		EstablishmentID:   r.EstablishmentID,
		EstablishmentName: "Posto",
		IssuerID:          r.IssuerID,
		IssuerName:        r.IssuerName,
		Status:            r.Status,
		CreatedAt:         r.CreatedAt,
		RedeemedAt:        r.RedeemedAt,
		RedeemedBy:        r.RedeemedBy,
		CancelledAt:       r.CancelledAt,
	}
}

func TestVoucherReadStore_FindByCode(t *testing.T) {
	row := viewRow(builder.NewVoucherBuilder().WithoutTier().WithValue("120.00"))

	mockQueries := new(MockVoucherViewQueries)
	mockQueries.On("GetVoucherViewByCode", mock.Anything, mock.Anything, row.Code).Return(row, nil)

	store := NewVoucherReadStore(mockQueries, nil, discardLogger)
	view, err := store.FindByCode(context.Background(), row.Code)
	require.NoError(t, err)

	assert.Equal(t, row.ID, view.ID)
	assert.Nil(t, view.TierID)
	assert.Nil(t, view.TierName)
	assert.True(t, decimal.NewFromInt(120).Equal(view.Value))
	assert.Equal(t, "Posto", view.EstablishmentName)
	assert.Equal(t, "issued", view.Status)
	mockQueries.AssertExpectations(t)
}

func TestVoucherReadStore_ListByIssuer(t *testing.T) {
	issuer := uuid.New()

	t.Run("first page sends null keyset", func(t *testing.T) {
		mockQueries := new(MockVoucherViewQueries)
		expected := sqlc.ListVouchersByIssuerParams{IssuerID: issuer, Limit: 21}
		rows := []sqlc.VoucherViews{viewRow(builder.NewVoucherBuilder().WithIssuer(issuer, "Maria"))}
		mockQueries.On("ListVouchersByIssuer", mock.Anything, mock.Anything, expected).Return(rows, nil)

		store := NewVoucherReadStore(mockQueries, nil, discardLogger)
		views, err := store.ListByIssuer(context.Background(), issuer, nil, 21)
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, "Faixa 40L", *views[0].TierName)
		mockQueries.AssertExpectations(t)
	})

	t.Run("later page sends keyset", func(t *testing.T) {
		after := &queries.Keyset{CreatedAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), ID: uuid.New()}
		mockQueries := new(MockVoucherViewQueries)
		expected := sqlc.ListVouchersByIssuerParams{
			IssuerID:       issuer,
			AfterCreatedAt: pgconv.TimeToPgtype(after.CreatedAt),
			AfterID:        pgtype.UUID{Bytes: after.ID, Valid: true},
			Limit:          11,
		}
		mockQueries.On("ListVouchersByIssuer", mock.Anything, mock.Anything, expected).Return([]sqlc.VoucherViews{}, nil)

		store := NewVoucherReadStore(mockQueries, nil, discardLogger)
		views, err := store.ListByIssuer(context.Background(), issuer, after, 11)
		require.NoError(t, err)
		assert.Empty(t, views)
		mockQueries.AssertExpectations(t)
	})
}

func TestVoucherReadStore_Stats(t *testing.T) {
	estID := uuid.New()
	mockQueries := new(MockVoucherViewQueries)
	expected := sqlc.VoucherStatsParams{EstablishmentID: pgtype.UUID{Bytes: estID, Valid: true}}
	rows := []sqlc.VoucherStatsRow{
		{Status: "issued", VoucherCount: 3, TotalValue: pgconv.DecimalToNumeric(decimal.RequireFromString("150.00"))},
		{Status: "redeemed", VoucherCount: 1, TotalValue: pgconv.DecimalToNumeric(decimal.RequireFromString("62.50"))},
	}
	mockQueries.On("VoucherStats", mock.Anything, mock.Anything, expected).Return(rows, nil)

	store := NewVoucherReadStore(mockQueries, nil, discardLogger)
	stats, err := store.Stats(context.Background(), queries.StatsFilter{EstablishmentID: &estID})
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.Issued.Count)
	assert.True(t, stats.Issued.Value.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, int64(1), stats.Redeemed.Count)
	assert.True(t, stats.Redeemed.Value.Equal(decimal.RequireFromString("62.5")))
	assert.Equal(t, int64(0), stats.Cancelled.Count)
	assert.True(t, stats.Cancelled.Value.IsZero())
	mockQueries.AssertExpectations(t)
}
