package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createTier = `-- name: CreateTier :exec
INSERT INTO voucher_tiers (id, establishment_id, name, min_volume, value, active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

type CreateTierParams struct {
	ID              uuid.UUID          `json:"id"`
	EstablishmentID uuid.UUID          `json:"establishment_id"`
	Name            string             `json:"name"`
	MinVolume       pgtype.Numeric     `json:"min_volume"`
	Value           pgtype.Numeric     `json:"value"`
	Active          bool               `json:"active"`
	CreatedAt       pgtype.Timestamptz `json:"created_at"`
	UpdatedAt       pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) CreateTier(ctx context.Context, db DBTX, arg CreateTierParams) error {
	_, err := db.Exec(ctx, createTier,
		arg.ID,
		arg.EstablishmentID,
		arg.Name,
		arg.MinVolume,
		arg.Value,
		arg.Active,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const findTierByIDForUpdate = `-- name: FindTierByIDForUpdate :one
SELECT id, establishment_id, name, min_volume, value, active, created_at, updated_at FROM voucher_tiers
WHERE id = $1
FOR UPDATE
`

func (q *Queries) FindTierByIDForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (VoucherTiers, error) {
	row := db.QueryRow(ctx, findTierByIDForUpdate, id)
	var i VoucherTiers
	err := row.Scan(
		&i.ID,
		&i.EstablishmentID,
		&i.Name,
		&i.MinVolume,
		&i.Value,
		&i.Active,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listActiveTiers = `-- name: ListActiveTiers :many
SELECT id, establishment_id, name, min_volume, value, active, created_at, updated_at FROM voucher_tiers
WHERE active
  AND ($1::uuid IS NULL OR establishment_id = $1::uuid)
ORDER BY min_volume, created_at, id
`

func (q *Queries) ListActiveTiers(ctx context.Context, db DBTX, establishmentID pgtype.UUID) ([]VoucherTiers, error) {
	rows, err := db.Query(ctx, listActiveTiers, establishmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []VoucherTiers
	for rows.Next() {
		var i VoucherTiers
		if err := rows.Scan(
			&i.ID,
			&i.EstablishmentID,
			&i.Name,
			&i.MinVolume,
			&i.Value,
			&i.Active,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateTier = `-- name: UpdateTier :execrows
UPDATE voucher_tiers
SET name = $2,
    min_volume = $3,
    value = $4,
    active = $5,
    updated_at = $6
WHERE id = $1
`

type UpdateTierParams struct {
	ID        uuid.UUID          `json:"id"`
	Name      string             `json:"name"`
	MinVolume pgtype.Numeric     `json:"min_volume"`
	Value     pgtype.Numeric     `json:"value"`
	Active    bool               `json:"active"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdateTier(ctx context.Context, db DBTX, arg UpdateTierParams) (int64, error) {
	result, err := db.Exec(ctx, updateTier,
		arg.ID,
		arg.Name,
		arg.MinVolume,
		arg.Value,
		arg.Active,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
