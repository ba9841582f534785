package rankers

import (
	"github.com/ahrav/go-rostrum/internal/domain"
	"github.com/ahrav/go-rostrum/internal/ports"
)

var _ ports.Ranker = (*SideBalanceRanker)(nil)

// SideBalanceRanker prefers the candidate whose historical side tally
// leans opposite to the subject's. The signal is the sign of the
// product of the two net side leans: a negative product (opposing
// lean) is preferred, so pairing them lets both histories rebalance.
type SideBalanceRanker struct{}

// NewSideBalanceRanker creates a SideBalanceRanker.
func NewSideBalanceRanker() *SideBalanceRanker { return &SideBalanceRanker{} }

// Name returns the ranker identifier.
func (r *SideBalanceRanker) Name() string { return "side_balance" }

// Rank prefers the candidate with the smaller lean product against the
// subject. Equal products defer to the next ranker.
func (r *SideBalanceRanker) Rank(subject, a, b string, rc domain.RankContext) int {
	lean := rc.ResultOf(subject).SideLean()
	pa := rc.ResultOf(a).SideLean() * lean
	pb := rc.ResultOf(b).SideLean() * lean
	return threeWay(float64(pa), float64(pb))
}

// Validate implements ports.Ranker; SideBalanceRanker has no
// configuration.
func (r *SideBalanceRanker) Validate() error { return nil }
