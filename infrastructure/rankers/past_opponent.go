package rankers

import (
	"github.com/ahrav/go-rostrum/internal/domain"
	"github.com/ahrav/go-rostrum/internal/ports"
)

var _ ports.Ranker = (*PastOpponentRanker)(nil)

// PastOpponentRanker prefers the candidate the subject has faced fewer
// times historically, spreading opponents across rounds.
type PastOpponentRanker struct{}

// NewPastOpponentRanker creates a PastOpponentRanker.
func NewPastOpponentRanker() *PastOpponentRanker { return &PastOpponentRanker{} }

// Name returns the ranker identifier.
func (r *PastOpponentRanker) Name() string { return "past_opponent" }

// Rank prefers the candidate with the lower meeting count against the
// subject.
func (r *PastOpponentRanker) Rank(subject, a, b string, rc domain.RankContext) int {
	s := rc.ResultOf(subject)
	return threeWay(float64(s.TimesFaced(a)), float64(s.TimesFaced(b)))
}

// Validate implements ports.Ranker; PastOpponentRanker has no
// configuration.
func (r *PastOpponentRanker) Validate() error { return nil }
