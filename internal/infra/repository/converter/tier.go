package converter

import (
	"voucher-ledger/internal/domain/tier"
	sqlc "voucher-ledger/internal/infra/sqlc/generated"
	"voucher-ledger/internal/pkg/errs"
	"voucher-ledger/internal/pkg/pgconv"
)

func TierToCreateParams(t *tier.Tier) sqlc.CreateTierParams {
	return sqlc.CreateTierParams{
		ID:              t.ID(),
		EstablishmentID: t.EstablishmentID(),
		Name:            t.Name(),
		MinVolume:       pgconv.DecimalToNumeric(t.MinVolume()),
		Value:           pgconv.DecimalToNumeric(t.Value()),
		Active:          t.IsActive(),
		CreatedAt:       pgconv.TimeToPgtype(t.CreatedAt()),
		UpdatedAt:       pgconv.TimeToPgtype(t.UpdatedAt()),
	}
}

func TierToUpdateParams(t *tier.Tier) sqlc.UpdateTierParams {
	return sqlc.UpdateTierParams{
		ID:        t.ID(),
		Name:      t.Name(),
		MinVolume: pgconv.DecimalToNumeric(t.MinVolume()),
		Value:     pgconv.DecimalToNumeric(t.Value()),
		Active:    t.IsActive(),
		UpdatedAt: pgconv.TimeToPgtype(t.UpdatedAt()),
	}
}

func TierFromRow(row sqlc.VoucherTiers) (*tier.Tier, error) {
	minVolume, err := pgconv.DecimalFromNumeric(row.MinVolume)
	if err != nil {
		return nil, errs.Wrap(err, "tier min volume")
	}
	value, err := pgconv.DecimalFromNumeric(row.Value)
	if err != nil {
		return nil, errs.Wrap(err, "tier value")
	}
	return tier.Reconstruct(
		row.ID,
		row.EstablishmentID,
		row.Name,
		minVolume,
		value,
		row.Active,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
