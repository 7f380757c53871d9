package queries

import (
	"context"

	"voucher-ledger/internal/domain/tier"
	"voucher-ledger/internal/domain/voucher"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TierReadStore interface {
	// ListActive returns active tiers, all establishments when establishmentID is nil.
	ListActive(ctx context.Context, establishmentID *uuid.UUID) ([]*TierView, error)
}

type TierQueries interface {
	ListActive(ctx context.Context, establishmentID *uuid.UUID) ([]*TierView, error)
	// Resolve previews which tier a volume would get at an establishment.
	Resolve(ctx context.Context, establishmentID uuid.UUID, volume decimal.Decimal) (*TierView, error)
}

type tierQueriesImpl struct {
	store TierReadStore
}

func NewTierQueries(store TierReadStore) TierQueries {
	return &tierQueriesImpl{store: store}
}

func (q *tierQueriesImpl) ListActive(ctx context.Context, establishmentID *uuid.UUID) ([]*TierView, error) {
	views, err := q.store.ListActive(ctx, establishmentID)
	if err != nil {
		return nil, err
	}

	// storage order is not trusted; the catalog order is defined by the domain
	tiers := make([]*tier.Tier, len(views))
	byID := make(map[uuid.UUID]*TierView, len(views))
	for i, v := range views {
		tiers[i] = v.toDomain()
		byID[v.ID] = v
	}
	tier.SortForCatalog(tiers)

	out := make([]*TierView, len(tiers))
	for i, t := range tiers {
		out[i] = byID[t.ID()]
	}
	return out, nil
}

func (q *tierQueriesImpl) Resolve(ctx context.Context, establishmentID uuid.UUID, volume decimal.Decimal) (*TierView, error) {
	if !volume.IsPositive() {
		return nil, voucher.ErrNonPositiveVolume
	}

	views, err := q.store.ListActive(ctx, &establishmentID)
	if err != nil {
		return nil, err
	}

	tiers := make([]*tier.Tier, len(views))
	byID := make(map[uuid.UUID]*TierView, len(views))
	for i, v := range views {
		tiers[i] = v.toDomain()
		byID[v.ID] = v
	}

	t, ok := tier.Resolve(volume, tiers)
	if !ok {
		return nil, tier.ErrNoEligibleTier
	}
	return byID[t.ID()], nil
}

func (v *TierView) toDomain() *tier.Tier {
	return tier.Reconstruct(v.ID, v.EstablishmentID, v.Name, v.MinVolume, v.Value, v.Active, v.CreatedAt, v.UpdatedAt)
}
