package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createVoucher = `-- name: CreateVoucher :exec
INSERT INTO vouchers (
    id, code, value, tier_id, volume, vehicle_plate, driver_name, receipt_number,
    establishment_id, issuer_id, issuer_name, status, created_at
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
)
`

type CreateVoucherParams struct {
	ID              uuid.UUID          `json:"id"`
	Code            string             `json:"code"`
	Value           pgtype.Numeric     `json:"value"`
	TierID          pgtype.UUID        `json:"tier_id"`
	Volume          pgtype.Numeric     `json:"volume"`
	VehiclePlate    string             `json:"vehicle_plate"`
	DriverName      string             `json:"driver_name"`
	ReceiptNumber   pgtype.Text        `json:"receipt_number"`
	EstablishmentID uuid.UUID          `json:"establishment_id"`
	IssuerID        uuid.UUID          `json:"issuer_id"`
	IssuerName      string             `json:"issuer_name"`
	Status          string             `json:"status"`
	CreatedAt       pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateVoucher(ctx context.Context, db DBTX, arg CreateVoucherParams) error {
	_, err := db.Exec(ctx, createVoucher,
		arg.ID,
		arg.Code,
		arg.Value,
		arg.TierID,
		arg.Volume,
		arg.VehiclePlate,
		arg.DriverName,
		arg.ReceiptNumber,
		arg.EstablishmentID,
		arg.IssuerID,
		arg.IssuerName,
		arg.Status,
		arg.CreatedAt,
	)
	return err
}

const findVoucherByCode = `-- name: FindVoucherByCode :one
SELECT id, code, value, tier_id, volume, vehicle_plate, driver_name, receipt_number, establishment_id, issuer_id, issuer_name, status, created_at, redeemed_at, redeemed_by, cancelled_at, deleted_at FROM vouchers
WHERE code = $1 AND deleted_at IS NULL
`

func (q *Queries) FindVoucherByCode(ctx context.Context, db DBTX, code string) (Vouchers, error) {
	row := db.QueryRow(ctx, findVoucherByCode, code)
	var i Vouchers
	err := scanVoucher(row, &i)
	return i, err
}

const findVoucherByID = `-- name: FindVoucherByID :one
SELECT id, code, value, tier_id, volume, vehicle_plate, driver_name, receipt_number, establishment_id, issuer_id, issuer_name, status, created_at, redeemed_at, redeemed_by, cancelled_at, deleted_at FROM vouchers
WHERE id = $1 AND deleted_at IS NULL
`

func (q *Queries) FindVoucherByID(ctx context.Context, db DBTX, id uuid.UUID) (Vouchers, error) {
	row := db.QueryRow(ctx, findVoucherByID, id)
	var i Vouchers
	err := scanVoucher(row, &i)
	return i, err
}

func scanVoucher(row interface{ Scan(...interface{}) error }, i *Vouchers) error {
	return row.Scan(
		&i.ID,
		&i.Code,
		&i.Value,
		&i.TierID,
		&i.Volume,
		&i.VehiclePlate,
		&i.DriverName,
		&i.ReceiptNumber,
		&i.EstablishmentID,
		&i.IssuerID,
		&i.IssuerName,
		&i.Status,
		&i.CreatedAt,
		&i.RedeemedAt,
		&i.RedeemedBy,
		&i.CancelledAt,
		&i.DeletedAt,
	)
}

const getVoucherViewByCode = `-- name: GetVoucherViewByCode :one
SELECT id, code, value, tier_id, tier_name, volume, vehicle_plate, driver_name, receipt_number, establishment_id, establishment_name, issuer_id, issuer_name, status, created_at, redeemed_at, redeemed_by, cancelled_at FROM voucher_views
WHERE code = $1
`

func (q *Queries) GetVoucherViewByCode(ctx context.Context, db DBTX, code string) (VoucherViews, error) {
	row := db.QueryRow(ctx, getVoucherViewByCode, code)
	var i VoucherViews
	err := scanVoucherView(row, &i)
	return i, err
}

const getVoucherViewByID = `-- name: GetVoucherViewByID :one
SELECT id, code, value, tier_id, tier_name, volume, vehicle_plate, driver_name, receipt_number, establishment_id, establishment_name, issuer_id, issuer_name, status, created_at, redeemed_at, redeemed_by, cancelled_at FROM voucher_views
WHERE id = $1
`

func (q *Queries) GetVoucherViewByID(ctx context.Context, db DBTX, id uuid.UUID) (VoucherViews, error) {
	row := db.QueryRow(ctx, getVoucherViewByID, id)
	var i VoucherViews
	err := scanVoucherView(row, &i)
	return i, err
}

const listVouchersByEstablishment = `-- name: ListVouchersByEstablishment :many
SELECT id, code, value, tier_id, tier_name, volume, vehicle_plate, driver_name, receipt_number, establishment_id, establishment_name, issuer_id, issuer_name, status, created_at, redeemed_at, redeemed_by, cancelled_at FROM voucher_views
WHERE establishment_id = $1
  AND ($2::timestamptz IS NULL
       OR (created_at, id) < ($2::timestamptz, $3::uuid))
ORDER BY created_at DESC, id DESC
LIMIT $4
`

type ListVouchersByEstablishmentParams struct {
	EstablishmentID uuid.UUID          `json:"establishment_id"`
	AfterCreatedAt  pgtype.Timestamptz `json:"after_created_at"`
	AfterID         pgtype.UUID        `json:"after_id"`
	Limit           int32              `json:"limit"`
}

func (q *Queries) ListVouchersByEstablishment(ctx context.Context, db DBTX, arg ListVouchersByEstablishmentParams) ([]VoucherViews, error) {
	rows, err := db.Query(ctx, listVouchersByEstablishment,
		arg.EstablishmentID,
		arg.AfterCreatedAt,
		arg.AfterID,
		arg.Limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []VoucherViews
	for rows.Next() {
		var i VoucherViews
		if err := scanVoucherView(rows, &i); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listVouchersByIssuer = `-- name: ListVouchersByIssuer :many
SELECT id, code, value, tier_id, tier_name, volume, vehicle_plate, driver_name, receipt_number, establishment_id, establishment_name, issuer_id, issuer_name, status, created_at, redeemed_at, redeemed_by, cancelled_at FROM voucher_views
WHERE issuer_id = $1
  AND ($2::timestamptz IS NULL
       OR (created_at, id) < ($2::timestamptz, $3::uuid))
ORDER BY created_at DESC, id DESC
LIMIT $4
`

type ListVouchersByIssuerParams struct {
	IssuerID       uuid.UUID          `json:"issuer_id"`
	AfterCreatedAt pgtype.Timestamptz `json:"after_created_at"`
	AfterID        pgtype.UUID        `json:"after_id"`
	Limit          int32              `json:"limit"`
}

func (q *Queries) ListVouchersByIssuer(ctx context.Context, db DBTX, arg ListVouchersByIssuerParams) ([]VoucherViews, error) {
	rows, err := db.Query(ctx, listVouchersByIssuer,
		arg.IssuerID,
		arg.AfterCreatedAt,
		arg.AfterID,
		arg.Limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []VoucherViews
	for rows.Next() {
		var i VoucherViews
		if err := scanVoucherView(rows, &i); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func scanVoucherView(row interface{ Scan(...interface{}) error }, i *VoucherViews) error {
	return row.Scan(
		&i.ID,
		&i.Code,
		&i.Value,
		&i.TierID,
		&i.TierName,
		&i.Volume,
		&i.VehiclePlate,
		&i.DriverName,
		&i.ReceiptNumber,
		&i.EstablishmentID,
		&i.EstablishmentName,
		&i.IssuerID,
		&i.IssuerName,
		&i.Status,
		&i.CreatedAt,
		&i.RedeemedAt,
		&i.RedeemedBy,
		&i.CancelledAt,
	)
}

const softDeleteVoucher = `-- name: SoftDeleteVoucher :execrows
UPDATE vouchers
SET deleted_at = $2
WHERE id = $1
  AND status <> 'issued'
  AND deleted_at IS NULL
`

type SoftDeleteVoucherParams struct {
	ID        uuid.UUID          `json:"id"`
	DeletedAt pgtype.Timestamptz `json:"deleted_at"`
}

func (q *Queries) SoftDeleteVoucher(ctx context.Context, db DBTX, arg SoftDeleteVoucherParams) (int64, error) {
	result, err := db.Exec(ctx, softDeleteVoucher, arg.ID, arg.DeletedAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const transitionVoucherStatus = `-- name: TransitionVoucherStatus :execrows
UPDATE vouchers
SET status = $1,
    redeemed_at = $2,
    redeemed_by = $3,
    cancelled_at = $4
WHERE id = $5
  AND status = $6
  AND deleted_at IS NULL
`

type TransitionVoucherStatusParams struct {
	Status         string             `json:"status"`
	RedeemedAt     pgtype.Timestamptz `json:"redeemed_at"`
	RedeemedBy     pgtype.UUID        `json:"redeemed_by"`
	CancelledAt    pgtype.Timestamptz `json:"cancelled_at"`
	ID             uuid.UUID          `json:"id"`
	ExpectedStatus string             `json:"expected_status"`
}

// TransitionVoucherStatus is the compare-and-set on status. Zero affected
// rows means another transaction moved the voucher first.
func (q *Queries) TransitionVoucherStatus(ctx context.Context, db DBTX, arg TransitionVoucherStatusParams) (int64, error) {
	result, err := db.Exec(ctx, transitionVoucherStatus,
		arg.Status,
		arg.RedeemedAt,
		arg.RedeemedBy,
		arg.CancelledAt,
		arg.ID,
		arg.ExpectedStatus,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const voucherStats = `-- name: VoucherStats :many
SELECT status,
       COUNT(*)::bigint AS voucher_count,
       COALESCE(SUM(value), 0)::numeric AS total_value
FROM vouchers
WHERE deleted_at IS NULL
  AND ($1::uuid IS NULL OR establishment_id = $1::uuid)
  AND ($2::uuid IS NULL OR issuer_id = $2::uuid)
GROUP BY status
`

type VoucherStatsParams struct {
	EstablishmentID pgtype.UUID `json:"establishment_id"`
	IssuerID        pgtype.UUID `json:"issuer_id"`
}

type VoucherStatsRow struct {
	Status       string         `json:"status"`
	VoucherCount int64          `json:"voucher_count"`
	TotalValue   pgtype.Numeric `json:"total_value"`
}

func (q *Queries) VoucherStats(ctx context.Context, db DBTX, arg VoucherStatsParams) ([]VoucherStatsRow, error) {
	rows, err := db.Query(ctx, voucherStats, arg.EstablishmentID, arg.IssuerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []VoucherStatsRow
	for rows.Next() {
		var i VoucherStatsRow
		if err := rows.Scan(&i.Status, &i.VoucherCount, &i.TotalValue); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
