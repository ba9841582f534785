package allocation

import (
	"fmt"
	"sort"

	"github.com/ahrav/go-rostrum/internal/domain"
	"github.com/ahrav/go-rostrum/internal/matching"
)

// SquareKey is the candidate identifier a square exposes to the ranker
// chain and matching engine during adjudicator allocation.
func SquareKey(id int) string { return fmt.Sprintf("square-%d", id) }

// AllocateAdjudicators assigns available adjudicators to the draw's
// squares through the capacitated bipartite matching engine, mutating
// the squares in place. Each square is a receiver with
// chairs+panels+trainees aggregate capacity; adjudicators propose in
// rank order built by the chain. Within a square the matched
// adjudicators fill roles strongest first: chairs, then panels, then
// trainees.
//
// When more adjudicators are available than the squares can seat, the
// strongest (by running evaluation average, then fewest rounds judged,
// then ID) are taken and the rest sit out the round.
func AllocateAdjudicators(
	draw *domain.Draw,
	adjudicators []domain.Adjudicator,
	round int,
	numbers Numbers,
	chain CandidateRanker,
	rc domain.RankContext,
) error {
	if err := validate.Struct(numbers); err != nil {
		return err
	}
	capacity := numbers.Total()
	if capacity == 0 || len(draw.Allocation) == 0 {
		return nil
	}

	avail, err := domain.FilterAvailable(adjudicators, round)
	if err != nil {
		return err
	}
	needed := len(draw.Allocation) * capacity
	if len(avail) < needed {
		return domain.NewNeedMoreError(domain.ResourceAdjudicators, needed-len(avail))
	}

	pool := adjStrengthOrder(entityIDs(avail), rc)[:needed]

	squareKeys := make([]string, len(draw.Allocation))
	squareTeams := make(map[string][]string, len(draw.Allocation))
	for i, sq := range draw.Allocation {
		key := SquareKey(sq.ID)
		squareKeys[i] = key
		squareTeams[key] = sq.Teams
	}
	rc.SquareTeams = squareTeams

	proposerRanks := chain.RankMap(pool, squareKeys, rc)
	receiverRanks := chain.RankMap(squareKeys, pool, rc)

	matches, err := matching.Bipartite(pool, squareKeys, proposerRanks, receiverRanks, capacity)
	if err != nil {
		return err
	}
	bySquare := matching.Invert(matches, pool)

	for i := range draw.Allocation {
		sq := &draw.Allocation[i]
		assigned := adjStrengthOrder(bySquare[SquareKey(sq.ID)], rc)

		take := func(n int) []string {
			if n > len(assigned) {
				n = len(assigned)
			}
			out := assigned[:n]
			assigned = assigned[n:]
			if len(out) == 0 {
				return nil
			}
			return out
		}
		sq.Chairs = take(numbers.Chairs)
		sq.Panels = take(numbers.Panels)
		sq.Trainees = take(numbers.Trainees)
	}
	return nil
}

// adjStrengthOrder sorts adjudicator IDs strongest first: running
// evaluation average descending, fewest rounds judged, then ID.
func adjStrengthOrder(ids []string, rc domain.RankContext) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := rc.ResultOf(out[i]), rc.ResultOf(out[j])
		if a.Average != b.Average {
			return a.Average > b.Average
		}
		if a.ActiveNum != b.ActiveNum {
			return a.ActiveNum < b.ActiveNum
		}
		return out[i] < out[j]
	})
	return out
}
