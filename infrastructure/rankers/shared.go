// Package rankers provides the comparator units the pairing engine
// chains to rank candidate pairings. Each ranker implements
// ports.Ranker and returns a three-way preference signal; a Chain
// composes them in configured priority order with first-nonzero-wins
// semantics.
package rankers

import (
	"errors"
	"hash/fnv"
	"strconv"
)

// Common errors returned by ranker construction and chaining.
var (
	// ErrEmptyChain is returned when a chain is built with no rankers.
	ErrEmptyChain = errors.New("ranker chain cannot be empty")

	// ErrUnknownRanker is returned when a chain references a ranker
	// name with no registered constructor.
	ErrUnknownRanker = errors.New("unknown ranker name")
)

// subjectHash derives a deterministic pseudo-random value from the
// seed, round, subject, and candidate. Identical inputs always hash
// identically, so random ordering is reproducible per round while
// differing round to round.
func subjectHash(seed string, round int, subject, candidate string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(seed))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(strconv.Itoa(round)))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(subject))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(candidate))
	return h.Sum64()
}

// threeWay collapses an integer comparison into the ranker signal:
// negative prefers a, positive prefers b, zero defers to the next
// ranker in the chain.
func threeWay(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
