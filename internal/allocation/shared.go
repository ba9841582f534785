// Package allocation builds a round's draw: it prechecks resource
// sufficiency, pairs available teams into squares, resolves side
// assignments, and assigns adjudicators and venues to the formed
// squares. Every stage is a pure function over its inputs; the only
// mutation is in-place post-processing of squares the stage owns.
package allocation

import (
	"sort"

	"github.com/go-playground/validator/v10"

	"github.com/ahrav/go-rostrum/internal/domain"
)

// Package-level validator instance for configuration validation.
// Uses go-playground/validator v10 for struct tag-based validation.
var validate = validator.New()

// CandidateRanker orders candidates for a subject. *rankers.Chain is
// the production implementation; the allocation stages depend only on
// this interface.
type CandidateRanker interface {
	// Order returns the candidates sorted best-first for the subject.
	Order(subject string, candidates []string, rc domain.RankContext) []string

	// RankMap maps each subject to every candidate except itself,
	// ordered best-first, for consumption by the matching engine.
	RankMap(subjects, candidates []string, rc domain.RankContext) map[string][]string
}

// strengthOrder returns the IDs sorted by running strength, strongest
// first: win count, then score sum, then ID ascending so equal records
// order reproducibly.
func strengthOrder(ids []string, rc domain.RankContext) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := rc.ResultOf(out[i]), rc.ResultOf(out[j])
		if a.Win != b.Win {
			return a.Win > b.Win
		}
		sa, sb := sumOrZero(a.Sum), sumOrZero(b.Sum)
		if sa != sb {
			return sa > sb
		}
		return out[i] < out[j]
	})
	return out
}

func sumOrZero(x *float64) float64 {
	if x == nil {
		return 0
	}
	return *x
}

// entityIDs extracts the IDs of the entities in input order.
func entityIDs[E domain.Detailed](entities []E) []string {
	ids := make([]string, len(entities))
	for i, e := range entities {
		ids[i] = e.EntityID()
	}
	return ids
}
