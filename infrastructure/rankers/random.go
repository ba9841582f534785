package rankers

import (
	"strings"

	"github.com/ahrav/go-rostrum/internal/domain"
	"github.com/ahrav/go-rostrum/internal/ports"
)

var _ ports.Ranker = (*RandomRanker)(nil)

// RandomRanker orders candidates by a deterministic pseudo-random value
// derived from the per-subject, per-round seed. It is never backed by a
// true-random source: given the same seed and round the order is
// reproducible, while differing round to round.
//
// RandomRanker produces a total order (ID comparison breaks hash
// collisions), so it is the conventional final ranker in a chain.
type RandomRanker struct{}

// NewRandomRanker creates a RandomRanker.
func NewRandomRanker() *RandomRanker { return &RandomRanker{} }

// Name returns the ranker identifier.
func (r *RandomRanker) Name() string { return "random" }

// Rank prefers the candidate with the smaller seeded hash value.
func (r *RandomRanker) Rank(subject, a, b string, rc domain.RankContext) int {
	ha := subjectHash(rc.Seed, rc.Round, subject, a)
	hb := subjectHash(rc.Seed, rc.Round, subject, b)
	switch {
	case ha < hb:
		return -1
	case ha > hb:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

// Validate implements ports.Ranker; RandomRanker has no configuration.
func (r *RandomRanker) Validate() error { return nil }
