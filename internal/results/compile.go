package results

import (
	"sort"

	"github.com/ahrav/go-rostrum/internal/domain"
)

// CompileTeams folds team summaries across the supplied rounds into
// one running CompiledResult per team, in team input order. Rounds
// fold in ascending order regardless of summary order, so past sides
// and opponents stay parallel and round-ordered. Score sums accumulate
// only when the style aggregates scores; otherwise they remain nil
// throughout.
func CompileTeams(
	teams []domain.Team,
	summaries []domain.TeamSummary,
	style domain.Style,
) []domain.CompiledResult {
	compiled := make([]domain.CompiledResult, len(teams))
	for i, t := range teams {
		compiled[i] = domain.CompiledResult{ID: t.ID, Role: domain.RoleTeam}
	}
	for _, round := range roundsOf(summaries, func(s domain.TeamSummary) int { return s.Round }) {
		compiled = FoldTeams(compiled, filterRound(summaries, round, func(s domain.TeamSummary) int { return s.Round }), style)
	}
	return compiled
}

// FoldTeams folds one round of team summaries into the prior compiled
// results, returning new results and leaving the prior untouched.
// Compiling rounds 1..n from scratch equals compiling 1..n-1 and then
// folding round n.
func FoldTeams(
	prior []domain.CompiledResult,
	summaries []domain.TeamSummary,
	style domain.Style,
) []domain.CompiledResult {
	byID := make(map[string]domain.TeamSummary, len(summaries))
	for _, s := range summaries {
		byID[s.ID] = s
	}

	out := make([]domain.CompiledResult, len(prior))
	for i, prev := range prior {
		cur := cloneResult(prev)
		if s, ok := byID[prev.ID]; ok {
			cur.Win += s.Win
			if style.ScoresSummed {
				cur.Sum = addNullable(cur.Sum, s.Sum)
				cur.Margin = addNullable(cur.Margin, s.Margin)
			}
			cur.PastSides = append(cur.PastSides, s.Side)
			cur.PastOpponents = append(cur.PastOpponents, s.Opponents...)
		}
		out[i] = cur
	}
	return out
}

// CompileSpeakers folds speaker summaries across the supplied rounds
// into one running CompiledResult per speaker, keyed in first-seen
// summary order. ActiveNum counts the rounds spoken; Average is the
// mean of the per-round weighted averages.
func CompileSpeakers(summaries []domain.SpeakerSummary, style domain.Style) []domain.CompiledResult {
	order, byID := speakerIndex(summaries)

	compiled := make([]domain.CompiledResult, 0, len(order))
	for _, id := range order {
		cur := domain.CompiledResult{ID: id, Role: domain.RoleSpeaker}
		perRound := byID[id]
		sort.SliceStable(perRound, func(i, j int) bool { return perRound[i].Round < perRound[j].Round })

		total := 0.0
		for _, s := range perRound {
			if style.ScoresSummed {
				cur.Sum = addNullable(cur.Sum, &s.Sum)
			}
			total += s.Average
			cur.ActiveNum++
		}
		if cur.ActiveNum > 0 {
			cur.Average = total / float64(cur.ActiveNum)
		}
		compiled = append(compiled, cur)
	}
	return compiled
}

// CompileAdjudicators folds adjudicator summaries across the supplied
// rounds into one running CompiledResult per adjudicator: rounds
// actively judged, the teams judged in round order, and the running
// evaluation average.
func CompileAdjudicators(
	adjudicators []domain.Adjudicator,
	summaries []domain.AdjudicatorSummary,
) []domain.CompiledResult {
	byID := make(map[string][]domain.AdjudicatorSummary)
	for _, s := range summaries {
		byID[s.ID] = append(byID[s.ID], s)
	}

	compiled := make([]domain.CompiledResult, len(adjudicators))
	for i, a := range adjudicators {
		cur := domain.CompiledResult{ID: a.ID, Role: domain.RoleAdjudicator}
		perRound := byID[a.ID]
		sort.SliceStable(perRound, func(i, j int) bool { return perRound[i].Round < perRound[j].Round })

		total := 0.0
		for _, s := range perRound {
			cur.ActiveNum++
			total += s.Score
			cur.JudgedTeams = append(cur.JudgedTeams, s.JudgedTeams...)
		}
		if cur.ActiveNum > 0 {
			cur.Average = total / float64(cur.ActiveNum)
		}
		compiled[i] = cur
	}
	return compiled
}

// ResultMap indexes compiled results by participant ID for the rank
// context.
func ResultMap(compiled []domain.CompiledResult) map[string]domain.CompiledResult {
	out := make(map[string]domain.CompiledResult, len(compiled))
	for _, c := range compiled {
		out[c.ID] = c
	}
	return out
}

// cloneResult deep-copies the slice-valued fields so folds never alias
// prior results.
func cloneResult(c domain.CompiledResult) domain.CompiledResult {
	out := c
	out.PastSides = append([]domain.Side(nil), c.PastSides...)
	out.PastOpponents = append([]string(nil), c.PastOpponents...)
	out.JudgedTeams = append([]string(nil), c.JudgedTeams...)
	if c.Sum != nil {
		v := *c.Sum
		out.Sum = &v
	}
	if c.Margin != nil {
		v := *c.Margin
		out.Margin = &v
	}
	return out
}

// addNullable accumulates b into a, treating nil as "aggregation not
// applicable": a nil b leaves a unchanged, and a nil a adopts b's
// value.
func addNullable(a, b *float64) *float64 {
	if b == nil {
		return a
	}
	v := *b
	if a != nil {
		v += *a
	}
	return &v
}

// roundsOf returns the distinct rounds present in the summaries, in
// ascending order.
func roundsOf[S any](summaries []S, round func(S) int) []int {
	seen := make(map[int]bool)
	var rounds []int
	for _, s := range summaries {
		if r := round(s); !seen[r] {
			seen[r] = true
			rounds = append(rounds, r)
		}
	}
	sort.Ints(rounds)
	return rounds
}

// filterRound returns the summaries belonging to the round, preserving
// input order.
func filterRound[S any](summaries []S, r int, round func(S) int) []S {
	var out []S
	for _, s := range summaries {
		if round(s) == r {
			out = append(out, s)
		}
	}
	return out
}

// speakerIndex groups speaker summaries by ID, preserving first-seen
// order.
func speakerIndex(summaries []domain.SpeakerSummary) ([]string, map[string][]domain.SpeakerSummary) {
	byID := make(map[string][]domain.SpeakerSummary)
	var order []string
	for _, s := range summaries {
		if _, ok := byID[s.ID]; !ok {
			order = append(order, s.ID)
		}
		byID[s.ID] = append(byID[s.ID], s)
	}
	return order, byID
}
