package allocation

import (
	"github.com/ahrav/go-rostrum/internal/domain"
)

func availTeam(id string, round int) domain.Team {
	return domain.Team{ID: id, Details: []domain.Detail{{Round: round, Available: true}}}
}

func availTeams(round int, ids ...string) []domain.Team {
	out := make([]domain.Team, len(ids))
	for i, id := range ids {
		out[i] = availTeam(id, round)
	}
	return out
}

func availAdj(id string, round int) domain.Adjudicator {
	return domain.Adjudicator{ID: id, Details: []domain.Detail{{Round: round, Available: true}}}
}

func availAdjs(round int, ids ...string) []domain.Adjudicator {
	out := make([]domain.Adjudicator, len(ids))
	for i, id := range ids {
		out[i] = availAdj(id, round)
	}
	return out
}

func availVenue(id string, round int, priority float64) domain.Venue {
	return domain.Venue{ID: id, Details: []domain.Detail{
		{Round: round, Available: true, Priority: priority},
	}}
}

func winResults(wins map[string]int) map[string]domain.CompiledResult {
	out := make(map[string]domain.CompiledResult, len(wins))
	for id, w := range wins {
		out[id] = domain.CompiledResult{ID: id, Win: w}
	}
	return out
}

func squareTeams(draw domain.Draw) [][]string {
	out := make([][]string, len(draw.Allocation))
	for i, sq := range draw.Allocation {
		out[i] = sq.Teams
	}
	return out
}
