package allocation

import (
	"fmt"

	"github.com/ahrav/go-rostrum/internal/domain"
	"github.com/ahrav/go-rostrum/internal/numeric"
)

// SideMode selects how slot order is resolved within each square.
type SideMode string

// Supported side-resolution modes.
const (
	// SideModeBalance minimizes cumulative side imbalance across
	// rounds.
	SideModeBalance SideMode = "balance"

	// SideModeRandom assigns slots by seeded shuffle, bypassing
	// balance computation. Used when the organizer opts out of
	// balancing.
	SideModeRandom SideMode = "random"
)

// ResolveSides decides which slot each paired team occupies, mutating
// the squares in place. Two-team squares swap when swapping reduces
// the combined magnitude of side imbalance (ties keep the original
// order). Four-team squares evaluate every permutation of the four
// teams across the four fixed slots and keep the first permutation
// minimizing the combined one-sidedness index.
func ResolveSides(
	draw *domain.Draw,
	results map[string]domain.CompiledResult,
	style domain.Style,
	mode SideMode,
	seed string,
) error {
	rc := domain.RankContext{Results: results}
	for i := range draw.Allocation {
		sq := &draw.Allocation[i]
		if len(sq.Teams) != style.TeamNum {
			return fmt.Errorf("square %d has %d teams, style needs %d", sq.ID, len(sq.Teams), style.TeamNum)
		}

		if mode == SideModeRandom {
			sq.Teams = numeric.Shuffle(sq.Teams, fmt.Sprintf("%s|%d|sides|%d", seed, draw.Round, sq.ID))
			continue
		}

		switch style.TeamNum {
		case 2:
			resolveTwoTeam(sq, rc)
		case 4:
			resolveFourTeam(sq, rc, style)
		}
	}
	return nil
}

// resolveTwoTeam swaps the pair order when the swapped assignment
// leaves a strictly smaller combined absolute imbalance.
func resolveTwoTeam(sq *domain.AllocationSquare, rc domain.RankContext) {
	leanA := rc.ResultOf(sq.Teams[0]).SideLean()
	leanB := rc.ResultOf(sq.Teams[1]).SideLean()

	keep := abs(leanA+1) + abs(leanB-1)
	swap := abs(leanB+1) + abs(leanA-1)
	if swap < keep {
		sq.Teams[0], sq.Teams[1] = sq.Teams[1], sq.Teams[0]
	}
}

// resolveFourTeam selects the permutation of the four teams across the
// style's four slots minimizing the combined one-sidedness index. Ties
// resolve by permutation enumeration order: the first minimal
// permutation wins.
func resolveFourTeam(sq *domain.AllocationSquare, rc domain.RankContext, style domain.Style) {
	best := sq.Teams
	bestIndex := -1
	for _, perm := range numeric.Permutations(sq.Teams) {
		index := 0
		for slot, team := range perm {
			index += onesidedness(rc.ResultOf(team).PastSides, style.Positions[slot])
		}
		if bestIndex < 0 || index < bestIndex {
			best, bestIndex = perm, index
		}
	}
	sq.Teams = best
}

// onesidedness is a team's position imbalance including this round's
// hypothetical slot: the magnitude of its government/opposition lean
// plus the magnitude of its opening/closing lean.
func onesidedness(past []domain.Side, hypothetical domain.Side) int {
	lean := hypothetical.Lean()
	halves := halfLean(hypothetical)
	for _, s := range past {
		lean += s.Lean()
		halves += halfLean(s)
	}
	return abs(lean) + abs(halves)
}

// halfLean is +1 for opening positions and -1 for closing positions;
// two-team tokens contribute nothing.
func halfLean(s domain.Side) int {
	switch {
	case s.Opening():
		return 1
	case s.Closing():
		return -1
	default:
		return 0
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
