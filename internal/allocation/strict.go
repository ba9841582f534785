package allocation

import (
	"fmt"

	"github.com/ahrav/go-rostrum/internal/domain"
)

// StrictConfig parameterizes the deterministic bracket-pairing
// strategy used when finer operator control is required than the
// standard chain-ranked draw.
type StrictConfig struct {
	// PairingMethod selects how teams pair within a strength bracket
	// after the strength sort:
	//   - "adjacent": consecutive teams meet (1v2, 3v4, ...)
	//   - "fold": opposite ends meet (1vN, 2vN-1, ...)
	//   - "slide": the bracket's halves meet in order (1 v N/2+1, ...)
	PairingMethod string `yaml:"pairing_method" json:"pairing_method" validate:"required,oneof=adjacent fold slide"`

	// PullupMethod selects which team an odd bracket promotes from the
	// adjacent lower bracket: "fromtop" takes its strongest team,
	// "frombottom" its weakest.
	PullupMethod string `yaml:"pullup_method" json:"pullup_method" validate:"required,oneof=fromtop frombottom"`

	// PositionMethod selects slot assignment: "sidebalance" applies
	// the balance rules, "random" shuffles with the run's seed.
	PositionMethod string `yaml:"position_method" json:"position_method" validate:"required,oneof=sidebalance random"`

	// AvoidConflict deprioritizes pairings sharing an institution: a
	// conflicting pair is only kept when no conflict-free swap with a
	// later pair exists.
	AvoidConflict bool `yaml:"avoid_conflict" json:"avoid_conflict"`
}

// DefaultStrictConfig returns the strict-matching defaults: adjacent
// pairing, bottom pull-ups, side-balanced positions, conflicts
// allowed.
func DefaultStrictConfig() StrictConfig {
	return StrictConfig{
		PairingMethod:  "adjacent",
		PullupMethod:   "frombottom",
		PositionMethod: "sidebalance",
		AvoidConflict:  false,
	}
}

// StrictPairing builds a round's squares by sort-based bracket
// pairing: teams sort by running strength, group into win brackets,
// odd brackets promote a team from the bracket below per the pull-up
// policy, and each bracket pairs by the configured method. With zero
// eligible teams it returns an empty allocation.
func StrictPairing(
	teams []domain.Team,
	round int,
	style domain.Style,
	cfg StrictConfig,
	rc domain.RankContext,
	seed string,
) (domain.Draw, error) {
	if err := validate.Struct(cfg); err != nil {
		return domain.Draw{}, fmt.Errorf("strict config validation failed: %w", err)
	}

	avail, err := domain.FilterAvailable(teams, round)
	if err != nil {
		return domain.Draw{}, err
	}
	draw := domain.Draw{Round: round, Allocation: []domain.AllocationSquare{}}
	if len(avail) == 0 {
		return draw, nil
	}
	if rem := len(avail) % style.TeamNum; rem != 0 {
		return domain.Draw{}, domain.NewNeedMoreError(domain.ResourceTeams, style.TeamNum-rem)
	}

	ids := strengthOrder(entityIDs(avail), rc)
	brackets := winBrackets(ids, rc)
	brackets = applyPullups(brackets, style.TeamNum, cfg.PullupMethod)

	var groups [][]string
	for _, bracket := range brackets {
		groups = append(groups, pairBracket(bracket, style.TeamNum, cfg.PairingMethod)...)
	}
	if cfg.AvoidConflict {
		groups = resolveConflicts(groups, rc)
	}

	for i, g := range groups {
		draw.Allocation = append(draw.Allocation, domain.AllocationSquare{ID: i + 1, Teams: g})
	}

	mode := SideModeBalance
	if cfg.PositionMethod == "random" {
		mode = SideModeRandom
	}
	if err := ResolveSides(&draw, rc.Results, style, mode, seed); err != nil {
		return domain.Draw{}, err
	}
	return draw, nil
}

// winBrackets splits strength-sorted IDs into consecutive runs of
// equal running win count, strongest bracket first.
func winBrackets(ids []string, rc domain.RankContext) [][]string {
	var brackets [][]string
	for _, id := range ids {
		wins := rc.ResultOf(id).Win
		if len(brackets) == 0 || rc.ResultOf(brackets[len(brackets)-1][0]).Win != wins {
			brackets = append(brackets, []string{id})
			continue
		}
		brackets[len(brackets)-1] = append(brackets[len(brackets)-1], id)
	}
	return brackets
}

// applyPullups promotes teams across brackets, top bracket first,
// until every bracket's size divides the square size. "fromtop" pulls
// the lower bracket's strongest team, "frombottom" its weakest; within
// equal strength the earlier team in sorted order is taken, keeping
// runs reproducible. The total team count divides evenly, so the last
// bracket always balances out.
func applyPullups(brackets [][]string, size int, method string) [][]string {
	for i := 0; i < len(brackets)-1; i++ {
		for j := i + 1; len(brackets[i])%size != 0 && j < len(brackets); {
			if len(brackets[j]) == 0 {
				j++
				continue
			}
			lower := brackets[j]
			var pulled string
			if method == "fromtop" {
				pulled, brackets[j] = lower[0], lower[1:]
			} else {
				pulled, brackets[j] = lower[len(lower)-1], lower[:len(lower)-1]
			}
			brackets[i] = append(brackets[i], pulled)
		}
	}

	// Drop brackets emptied by pull-ups.
	out := brackets[:0]
	for _, b := range brackets {
		if len(b) > 0 {
			out = append(out, b)
		}
	}
	return out
}

// pairBracket forms squares of the given size within one bracket. The
// bracket splits into size segments of equal length; group k takes the
// k-th element of each segment, with odd segments reversed under
// "fold" so opposite ends meet, and "adjacent" grouping consecutive
// teams instead.
func pairBracket(bracket []string, size int, method string) [][]string {
	n := len(bracket) / size
	if n == 0 {
		return nil
	}
	groups := make([][]string, n)

	switch method {
	case "adjacent":
		for k := 0; k < n; k++ {
			groups[k] = append([]string(nil), bracket[k*size:(k+1)*size]...)
		}
	case "fold":
		for k := 0; k < n; k++ {
			group := make([]string, 0, size)
			for seg := 0; seg < size; seg++ {
				if seg%2 == 0 {
					group = append(group, bracket[seg*n+k])
				} else {
					group = append(group, bracket[seg*n+(n-1-k)])
				}
			}
			groups[k] = group
		}
	default: // slide
		for k := 0; k < n; k++ {
			group := make([]string, 0, size)
			for seg := 0; seg < size; seg++ {
				group = append(group, bracket[seg*n+k])
			}
			groups[k] = group
		}
	}
	return groups
}

// resolveConflicts deprioritizes institutional conflicts: a group
// whose members share an institution swaps its tail member with a
// later group's when the swap leaves both groups conflict-free.
// Conflicting groups with no such counterpart remain as formed.
func resolveConflicts(groups [][]string, rc domain.RankContext) [][]string {
	for i := range groups {
		if !hasConflict(groups[i], rc) {
			continue
		}
		last := len(groups[i]) - 1
		for j := i + 1; j < len(groups); j++ {
			for k := range groups[j] {
				groups[i][last], groups[j][k] = groups[j][k], groups[i][last]
				if !hasConflict(groups[i], rc) && !hasConflict(groups[j], rc) {
					break
				}
				groups[i][last], groups[j][k] = groups[j][k], groups[i][last]
			}
			if !hasConflict(groups[i], rc) {
				break
			}
		}
	}
	return groups
}

// hasConflict reports whether any two members of the group share an
// institution.
func hasConflict(group []string, rc domain.RankContext) bool {
	for i := 0; i < len(group); i++ {
		for j := i + 1; j < len(group); j++ {
			if overlap(rc.Details[group[i]].Institutions, rc.Details[group[j]].Institutions) {
				return true
			}
		}
	}
	return false
}

// overlap reports whether the two institution lists share an element.
func overlap(xs, ys []string) bool {
	in := make(map[string]struct{}, len(xs))
	for _, x := range xs {
		in[x] = struct{}{}
	}
	for _, y := range ys {
		if _, ok := in[y]; ok {
			return true
		}
	}
	return false
}
