package allocation

import (
	"github.com/ahrav/go-rostrum/internal/domain"
	"github.com/ahrav/go-rostrum/internal/matching"
)

// StandardPairing builds a round's squares from the available teams
// using the configured ranker chain. Two-team styles pair through the
// symmetric deferred-acceptance engine over chain-built rank maps;
// four-team styles group greedily, each subject consuming its
// best-ranked remaining candidates. Subjects are processed strongest
// first so the greedy order is reproducible.
//
// The produced squares carry teams in provisional slot order; side
// resolution decides the final order and venue/adjudicator allocation
// fill in the rest.
func StandardPairing(
	teams []domain.Team,
	round int,
	style domain.Style,
	chain CandidateRanker,
	rc domain.RankContext,
) (domain.Draw, error) {
	avail, err := domain.FilterAvailable(teams, round)
	if err != nil {
		return domain.Draw{}, err
	}
	if rem := len(avail) % style.TeamNum; rem != 0 {
		return domain.Draw{}, domain.NewNeedMoreError(domain.ResourceTeams, style.TeamNum-rem)
	}

	ids := strengthOrder(entityIDs(avail), rc)

	var groups [][]string
	if style.TeamNum == 2 {
		groups, err = pairSymmetric(ids, chain, rc)
		if err != nil {
			return domain.Draw{}, err
		}
	} else {
		groups = groupGreedy(ids, style.TeamNum, chain, rc)
	}

	draw := domain.Draw{Round: round, Allocation: make([]domain.AllocationSquare, 0, len(groups))}
	for i, g := range groups {
		draw.Allocation = append(draw.Allocation, domain.AllocationSquare{ID: i + 1, Teams: g})
	}
	return draw, nil
}

// pairSymmetric pairs teams through symmetric deferred acceptance with
// mutual capacity one. Teams the matching leaves unmatched (exhausted
// preference lists) are paired off in strength order so every team is
// always placed.
func pairSymmetric(ids []string, chain CandidateRanker, rc domain.RankContext) ([][]string, error) {
	ranks := chain.RankMap(ids, ids, rc)
	matches, err := matching.Symmetric(ids, ranks, 1)
	if err != nil {
		return nil, err
	}

	placed := make(map[string]bool, len(ids))
	var groups [][]string
	var leftovers []string
	for _, id := range ids {
		if placed[id] {
			continue
		}
		partners := matches[id]
		if len(partners) == 0 || placed[partners[0]] {
			leftovers = append(leftovers, id)
			continue
		}
		placed[id], placed[partners[0]] = true, true
		groups = append(groups, []string{id, partners[0]})
	}
	for i := 0; i+1 < len(leftovers); i += 2 {
		groups = append(groups, []string{leftovers[i], leftovers[i+1]})
	}
	return groups, nil
}

// groupGreedy forms squares of the given size by letting each
// strongest unplaced team consume its best-ranked remaining
// candidates.
func groupGreedy(ids []string, size int, chain CandidateRanker, rc domain.RankContext) [][]string {
	placed := make(map[string]bool, len(ids))
	var groups [][]string
	for _, id := range ids {
		if placed[id] {
			continue
		}
		remaining := make([]string, 0, len(ids))
		for _, other := range ids {
			if other != id && !placed[other] {
				remaining = append(remaining, other)
			}
		}
		ordered := chain.Order(id, remaining, rc)
		group := append([]string{id}, ordered[:size-1]...)
		for _, member := range group {
			placed[member] = true
		}
		groups = append(groups, group)
	}
	return groups
}
