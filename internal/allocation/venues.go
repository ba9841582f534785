package allocation

import (
	"fmt"
	"sort"

	"github.com/ahrav/go-rostrum/internal/domain"
	"github.com/ahrav/go-rostrum/internal/numeric"
)

// VenueMode selects how available venues are ordered before
// assignment.
type VenueMode string

// Supported venue-ordering modes.
const (
	// VenueModePriority assigns venues in descending per-round
	// priority, ties broken by ID.
	VenueModePriority VenueMode = "priority"

	// VenueModeShuffle assigns venues in seeded-shuffled order.
	VenueModeShuffle VenueMode = "shuffle"
)

// AllocateVenues assigns available venues to the draw's squares in
// list order, mutating the squares in place. Squares beyond the
// available venue count keep an empty venue: shortage is a caller
// precondition checked by Precheck, and a direct call degrades
// gracefully to partial assignment rather than failing.
func AllocateVenues(
	draw *domain.Draw,
	venues []domain.Venue,
	round int,
	mode VenueMode,
	seed string,
) error {
	avail, err := domain.FilterAvailable(venues, round)
	if err != nil {
		return err
	}

	ids := entityIDs(avail)
	switch mode {
	case VenueModeShuffle:
		ids = numeric.Shuffle(ids, fmt.Sprintf("%s|%d|venues", seed, round))
	default:
		priority := make(map[string]float64, len(avail))
		for _, v := range avail {
			d, err := domain.DetailFor(v, round)
			if err != nil {
				return err
			}
			priority[v.ID] = d.Priority
		}
		sort.SliceStable(ids, func(i, j int) bool {
			if priority[ids[i]] != priority[ids[j]] {
				return priority[ids[i]] > priority[ids[j]]
			}
			return ids[i] < ids[j]
		})
	}

	for i := range draw.Allocation {
		if i < len(ids) {
			draw.Allocation[i].Venue = ids[i]
		}
	}
	return nil
}
