package rankers

import (
	"fmt"
	"sort"

	"github.com/ahrav/go-rostrum/internal/domain"
	"github.com/ahrav/go-rostrum/internal/ports"
)

// Chain applies rankers in configured priority order: the first
// nonzero signal wins, and full ties rank equal. Chains conventionally
// end with the random ranker so the induced order is total.
type Chain struct {
	// rankers holds the chained rankers in priority order.
	// Immutable after construction to keep chains safe for
	// concurrent use.
	rankers []ports.Ranker
}

// NewChain creates a Chain from the rankers in priority order. Every
// ranker is validated; an empty chain is rejected with ErrEmptyChain.
func NewChain(rs ...ports.Ranker) (*Chain, error) {
	if len(rs) == 0 {
		return nil, ErrEmptyChain
	}
	for _, r := range rs {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("ranker %s: %w", r.Name(), err)
		}
	}
	return &Chain{rankers: rs}, nil
}

// NewChainByName creates a Chain from ranker names, resolving each
// through the registry of built-in rankers. Unknown names fail with
// ErrUnknownRanker.
func NewChainByName(names ...string) (*Chain, error) {
	rs := make([]ports.Ranker, 0, len(names))
	for _, name := range names {
		ctor, ok := registry[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownRanker, name)
		}
		rs = append(rs, ctor())
	}
	return NewChain(rs...)
}

// registry maps ranker names to constructors for NewChainByName.
var registry = map[string]func() ports.Ranker{
	"random":        func() ports.Ranker { return NewRandomRanker() },
	"side_balance":  func() ports.Ranker { return NewSideBalanceRanker() },
	"institution":   func() ports.Ranker { return NewInstitutionRanker() },
	"strength":      func() ports.Ranker { return NewStrengthRanker() },
	"past_opponent": func() ports.Ranker { return NewPastOpponentRanker() },
	"attendance":    func() ports.Ranker { return NewAttendanceRanker() },
	"conflict":      func() ports.Ranker { return NewConflictRanker() },
	"bubble":        func() ports.Ranker { return NewBubbleRanker() },
}

// Names returns the registered ranker names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Rank applies the chain for the subject: the first ranker returning a
// nonzero signal decides, and a full fall-through ranks the candidates
// equal.
func (c *Chain) Rank(subject, a, b string, rc domain.RankContext) int {
	for _, r := range c.rankers {
		if sig := r.Rank(subject, a, b, rc); sig != 0 {
			return sig
		}
	}
	return 0
}

// Order returns the candidates sorted best-first for the subject under
// the chain. The sort is stable, so candidates the whole chain ties
// keep their input order.
func (c *Chain) Order(subject string, candidates []string, rc domain.RankContext) []string {
	out := make([]string, len(candidates))
	copy(out, candidates)
	sort.SliceStable(out, func(i, j int) bool {
		return c.Rank(subject, out[i], out[j], rc) < 0
	})
	return out
}

// RankMap builds the rank map consumed by the matching engine: each
// subject mapped to every candidate except itself, ordered best-first.
// The map is built once per matching run and discarded.
func (c *Chain) RankMap(subjects, candidates []string, rc domain.RankContext) map[string][]string {
	ranks := make(map[string][]string, len(subjects))
	for _, s := range subjects {
		eligible := make([]string, 0, len(candidates))
		for _, cand := range candidates {
			if cand != s {
				eligible = append(eligible, cand)
			}
		}
		ranks[s] = c.Order(s, eligible, rc)
	}
	return ranks
}
