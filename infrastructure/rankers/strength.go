package rankers

import (
	"math"

	"github.com/ahrav/go-rostrum/internal/domain"
	"github.com/ahrav/go-rostrum/internal/ports"
)

var _ ports.Ranker = (*StrengthRanker)(nil)

// StrengthRanker prefers the candidate whose running strength is
// numerically closest to the subject's: win count first, then score
// sum. Equal distances defer to the next ranker in the chain.
type StrengthRanker struct{}

// NewStrengthRanker creates a StrengthRanker.
func NewStrengthRanker() *StrengthRanker { return &StrengthRanker{} }

// Name returns the ranker identifier.
func (r *StrengthRanker) Name() string { return "strength" }

// Rank prefers the candidate with the smaller absolute win-count
// difference from the subject, breaking ties by score-sum distance.
func (r *StrengthRanker) Rank(subject, a, b string, rc domain.RankContext) int {
	s := rc.ResultOf(subject)
	ra, rb := rc.ResultOf(a), rc.ResultOf(b)

	da := math.Abs(float64(ra.Win - s.Win))
	db := math.Abs(float64(rb.Win - s.Win))
	if sig := threeWay(da, db); sig != 0 {
		return sig
	}
	return threeWay(sumDistance(ra.Sum, s.Sum), sumDistance(rb.Sum, s.Sum))
}

// Validate implements ports.Ranker; StrengthRanker has no configuration.
func (r *StrengthRanker) Validate() error { return nil }

// sumDistance is the absolute score-sum distance; a nil sum on either
// side contributes no distance, so unscored formats fall through to
// later rankers.
func sumDistance(a, b *float64) float64 {
	if a == nil || b == nil {
		return 0
	}
	return math.Abs(*a - *b)
}
