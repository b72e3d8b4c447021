package dish

import (
	"encoding/binary"
	"slices"

	"github.com/osse101/DishForge_Go/internal/domain"
)

// canonicalKey identifies a set of ingredient instances: the ids sorted ascending,
// each encoded as 8 big-endian bytes so no id can collide with a separator.
type canonicalKey string

// makeKey returns the canonical key of a candidate and how many distinct ids it holds
func makeKey(candidate []domain.DishIngredient) (canonicalKey, int) {
	ids := make([]int, len(candidate))
	for i, ingredient := range candidate {
		ids[i] = ingredient.IngredientID
	}
	slices.Sort(ids)

	buf := make([]byte, 0, len(ids)*8)
	distinct := 0
	for i, id := range ids {
		if i == 0 || id != ids[i-1] {
			distinct++
		}
		buf = binary.BigEndian.AppendUint64(buf, uint64(id))
	}
	return canonicalKey(buf), distinct
}

// deduplicator keeps the first candidate seen for each set of ingredient instances
type deduplicator struct {
	positions int
	seen      map[canonicalKey]struct{}
}

func newDeduplicator(positions int) *deduplicator {
	return &deduplicator{
		positions: positions,
		seen:      make(map[canonicalKey]struct{}),
	}
}

// accept turns a candidate into a Dish unless it reuses an ingredient instance
// or its ingredient set was already accepted
func (d *deduplicator) accept(candidate []domain.DishIngredient) (domain.Dish, bool) {
	key, distinct := makeKey(candidate)
	if distinct < d.positions {
		return domain.Dish{}, false
	}
	if _, ok := d.seen[key]; ok {
		return domain.Dish{}, false
	}
	d.seen[key] = struct{}{}

	return domain.Dish{
		Ingredients: candidate,
		TotalPrice:  totalPrice(candidate),
	}, true
}
