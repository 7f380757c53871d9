package tier

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Resolve picks the tier that applies to volume: among active tiers whose
// minimum is at or below volume, the one with the largest minimum.
//
// Equal minimums go to the most recently created tier, then to the
// lexically greatest id, so the outcome never depends on input order.
func Resolve(volume decimal.Decimal, tiers []*Tier) (*Tier, bool) {
	var best *Tier
	for _, t := range tiers {
		if t == nil || !t.Admits(volume) {
			continue
		}
		if best == nil || outranks(t, best) {
			best = t
		}
	}
	return best, best != nil
}

func outranks(a, b *Tier) bool {
	if c := a.minVolume.Cmp(b.minVolume); c != 0 {
		return c > 0
	}
	if !a.createdAt.Equal(b.createdAt) {
		return a.createdAt.After(b.createdAt)
	}
	return strings.Compare(a.id.String(), b.id.String()) > 0
}

// SortForCatalog orders tiers the way the catalog lists them: ascending
// minimum volume, older tiers first on ties.
func SortForCatalog(tiers []*Tier) {
	slices.SortStableFunc(tiers, func(a, b *Tier) int {
		if c := a.minVolume.Cmp(b.minVolume); c != 0 {
			return c
		}
		if c := a.createdAt.Compare(b.createdAt); c != 0 {
			return c
		}
		return strings.Compare(a.id.String(), b.id.String())
	})
}
