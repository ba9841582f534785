package rankers

import (
	"github.com/ahrav/go-rostrum/internal/domain"
	"github.com/ahrav/go-rostrum/internal/ports"
)

var (
	_ ports.Ranker = (*AttendanceRanker)(nil)
	_ ports.Ranker = (*ConflictRanker)(nil)
	_ ports.Ranker = (*BubbleRanker)(nil)
)

// AttendanceRanker prefers the adjudicator who has judged fewer rounds
// so far, spreading judging load and limiting fatigue.
type AttendanceRanker struct{}

// NewAttendanceRanker creates an AttendanceRanker.
func NewAttendanceRanker() *AttendanceRanker { return &AttendanceRanker{} }

// Name returns the ranker identifier.
func (r *AttendanceRanker) Name() string { return "attendance" }

// Rank prefers the candidate adjudicator with the lower active round
// count.
func (r *AttendanceRanker) Rank(subject, a, b string, rc domain.RankContext) int {
	return threeWay(
		float64(rc.ResultOf(a).ActiveNum),
		float64(rc.ResultOf(b).ActiveNum),
	)
}

// Validate implements ports.Ranker; AttendanceRanker has no
// configuration.
func (r *AttendanceRanker) Validate() error { return nil }

// ConflictRanker prefers the pairing with the lighter declared and
// institutional conflict load between an adjudicator and a square's
// teams. It works in both directions of adjudicator allocation: when
// the subject is a square the candidates are adjudicators, and when
// the subject is an adjudicator the candidates are squares, resolved
// through the context's SquareTeams map.
type ConflictRanker struct{}

// NewConflictRanker creates a ConflictRanker.
func NewConflictRanker() *ConflictRanker { return &ConflictRanker{} }

// Name returns the ranker identifier.
func (r *ConflictRanker) Name() string { return "conflict" }

// Rank prefers the candidate producing the lighter conflict score.
func (r *ConflictRanker) Rank(subject, a, b string, rc domain.RankContext) int {
	if teams, ok := rc.SquareTeams[subject]; ok {
		// Subject is a square; candidates are adjudicators.
		return threeWay(conflictScore(a, teams, rc), conflictScore(b, teams, rc))
	}
	// Subject is an adjudicator; candidates are squares.
	return threeWay(
		conflictScore(subject, rc.SquareTeams[a], rc),
		conflictScore(subject, rc.SquareTeams[b], rc),
	)
}

// Validate implements ports.Ranker; ConflictRanker has no configuration.
func (r *ConflictRanker) Validate() error { return nil }

// conflictScore totals an adjudicator's declared conflicts against the
// square's teams plus the weighted institutional overlap with each team.
func conflictScore(adj string, teams []string, rc domain.RankContext) float64 {
	detail := rc.Details[adj]
	declared := make(map[string]struct{}, len(detail.Conflicts))
	for _, c := range detail.Conflicts {
		declared[c] = struct{}{}
	}

	score := 0.0
	for _, team := range teams {
		if _, ok := declared[team]; ok {
			score++
		}
		score += overlapWeight(detail.Institutions, rc.Details[team].Institutions, rc.InstitutionWeights)
	}
	return score
}

// BubbleRanker prefers the square whose teams sit closest together in
// running wins. Tight squares decide promotion and relegation at the
// bracket boundary, so they deserve the stronger adjudication first.
type BubbleRanker struct{}

// NewBubbleRanker creates a BubbleRanker.
func NewBubbleRanker() *BubbleRanker { return &BubbleRanker{} }

// Name returns the ranker identifier.
func (r *BubbleRanker) Name() string { return "bubble" }

// Rank prefers the candidate square with the smaller win spread among
// its teams. Candidates without square entries defer to the next
// ranker.
func (r *BubbleRanker) Rank(subject, a, b string, rc domain.RankContext) int {
	ta, okA := rc.SquareTeams[a]
	tb, okB := rc.SquareTeams[b]
	if !okA || !okB {
		return 0
	}
	return threeWay(winSpread(ta, rc), winSpread(tb, rc))
}

// Validate implements ports.Ranker; BubbleRanker has no configuration.
func (r *BubbleRanker) Validate() error { return nil }

// winSpread is the difference between the highest and lowest running
// win counts among the square's teams.
func winSpread(teams []string, rc domain.RankContext) float64 {
	if len(teams) == 0 {
		return 0
	}
	lo, hi := rc.ResultOf(teams[0]).Win, rc.ResultOf(teams[0]).Win
	for _, t := range teams[1:] {
		w := rc.ResultOf(t).Win
		if w < lo {
			lo = w
		}
		if w > hi {
			hi = w
		}
	}
	return float64(hi - lo)
}
