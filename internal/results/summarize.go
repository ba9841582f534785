// Package results turns raw per-round submissions into per-round
// summaries and folds summaries across rounds into the running
// compiled statistics the next round's pairing depends on. Compiled
// results are always recomputed from raw submissions, never
// incrementally mutated, so compiling a fixed round set is idempotent.
package results

import (
	"github.com/ahrav/go-rostrum/internal/domain"
	"github.com/ahrav/go-rostrum/internal/numeric"
)

// CheckTeamSubmissions verifies every team available in the round has
// at least one submitted raw result. It fails with a
// ResultNotSentError naming the first missing team.
func CheckTeamSubmissions(teams []domain.Team, raw []domain.RawTeamResult, round int) error {
	submitted := make(map[string]bool, len(raw))
	for _, r := range raw {
		if r.Round == round {
			submitted[r.ID] = true
		}
	}
	avail, err := domain.FilterAvailable(teams, round)
	if err != nil {
		return err
	}
	for _, t := range avail {
		if !submitted[t.ID] {
			return domain.NewResultNotSentError(t.ID, domain.RoleTeam, round)
		}
	}
	return nil
}

// CheckSpeakerSubmissions verifies every speaker registered on an
// available team for the round has at least one submitted raw result.
func CheckSpeakerSubmissions(teams []domain.Team, raw []domain.RawSpeakerResult, round int) error {
	submitted := make(map[string]bool, len(raw))
	for _, r := range raw {
		if r.Round == round {
			submitted[r.ID] = true
		}
	}
	avail, err := domain.FilterAvailable(teams, round)
	if err != nil {
		return err
	}
	for _, t := range avail {
		d, err := domain.DetailFor(t, round)
		if err != nil {
			return err
		}
		for _, speaker := range d.Speakers {
			if !submitted[speaker] {
				return domain.NewResultNotSentError(speaker, domain.RoleSpeaker, round)
			}
		}
	}
	return nil
}

// CheckAdjudicatorSubmissions verifies every adjudicator available in
// the round has at least one submitted raw result.
func CheckAdjudicatorSubmissions(adjudicators []domain.Adjudicator, raw []domain.RawAdjudicatorResult, round int) error {
	submitted := make(map[string]bool, len(raw))
	for _, r := range raw {
		if r.Round == round {
			submitted[r.ID] = true
		}
	}
	avail, err := domain.FilterAvailable(adjudicators, round)
	if err != nil {
		return err
	}
	for _, a := range avail {
		if !submitted[a.ID] {
			return domain.NewResultNotSentError(a.ID, domain.RoleAdjudicator, round)
		}
	}
	return nil
}

// SummarizeTeams reconciles the round's team ballots into one summary
// per reporting team, in team input order.
//
// For two-sided styles the team's win is only valid when the ballots
// are not evenly split; an even split fails with a
// WinPointsDifferentError, since a two-sided contest cannot
// legitimately tie at the team level. For four-team styles every
// submitted win marker for a team must agree.
func SummarizeTeams(
	teams []domain.Team,
	raw []domain.RawTeamResult,
	round int,
	style domain.Style,
) ([]domain.TeamSummary, error) {
	registered := make(map[string]bool, len(teams))
	for _, t := range teams {
		registered[t.ID] = true
	}

	byTeam := make(map[string][]domain.RawTeamResult, len(teams))
	for _, r := range raw {
		if r.Round != round {
			continue
		}
		if !registered[r.ID] {
			return nil, domain.NewEntityNotRegisteredError(r.ID, domain.RoleTeam, round)
		}
		byTeam[r.ID] = append(byTeam[r.ID], r)
	}

	if err := CheckTeamSubmissions(teams, raw, round); err != nil {
		return nil, err
	}

	summaries := make([]domain.TeamSummary, 0, len(byTeam))
	for _, t := range teams {
		ballots := byTeam[t.ID]
		if len(ballots) == 0 {
			continue
		}

		votes := 0
		wins := make([]int, len(ballots))
		for i, b := range ballots {
			wins[i] = b.Win
			votes += b.Win
		}

		var win int
		switch {
		case style.TeamNum == 2 && votes*2 == len(ballots):
			return nil, domain.NewWinPointsDifferentError(t.ID, wins)
		case style.TeamNum == 4 && votes != 0 && votes != len(ballots):
			return nil, domain.NewWinPointsDifferentError(t.ID, wins)
		case votes*2 > len(ballots):
			win = 1
		}

		summary := domain.TeamSummary{
			ID:        t.ID,
			Round:     round,
			Win:       win,
			Votes:     votes,
			VoteRate:  float64(votes) / float64(len(ballots)),
			Side:      ballots[0].Side,
			Opponents: ballots[0].Opponents,
		}
		if style.ScoresSummed {
			scores := make([]*float64, len(ballots))
			margins := make([]*float64, len(ballots))
			for i, b := range ballots {
				scores[i], margins[i] = b.Score, b.Margin
			}
			summary.Sum = numeric.AverageNullable(scores)
			summary.Margin = numeric.AverageNullable(margins)
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// SummarizeSpeakers reconciles the round's speaker ballots into one
// weighted-scoring summary per reporting speaker. The style's score
// weights apply positionally across a speaker's scored roles; roles
// beyond the weight list weigh 1.
func SummarizeSpeakers(
	teams []domain.Team,
	raw []domain.RawSpeakerResult,
	round int,
	style domain.Style,
) ([]domain.SpeakerSummary, error) {
	registered, order, err := registeredSpeakers(teams, round)
	if err != nil {
		return nil, err
	}

	bySpeaker := make(map[string][]domain.RawSpeakerResult)
	for _, r := range raw {
		if r.Round != round {
			continue
		}
		if !registered[r.ID] {
			return nil, domain.NewEntityNotRegisteredError(r.ID, domain.RoleSpeaker, round)
		}
		bySpeaker[r.ID] = append(bySpeaker[r.ID], r)
	}

	summaries := make([]domain.SpeakerSummary, 0, len(bySpeaker))
	for _, id := range order {
		ballots := bySpeaker[id]
		if len(ballots) == 0 {
			continue
		}

		sums := make([]float64, len(ballots))
		weightTotal := 0.0
		for i, b := range ballots {
			var wt float64
			sums[i], wt = weightedScore(b.Scores, style.ScoreWeights)
			if wt > weightTotal {
				weightTotal = wt
			}
		}
		sum := numeric.Average(sums)

		summary := domain.SpeakerSummary{ID: id, Round: round, Sum: sum}
		if weightTotal > 0 {
			summary.Average = sum / weightTotal
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// SummarizeAdjudicators reconciles the round's adjudicator
// evaluations: weighted score, teams judged, and the submitted
// comments with empty ones discarded.
func SummarizeAdjudicators(
	adjudicators []domain.Adjudicator,
	raw []domain.RawAdjudicatorResult,
	round int,
	style domain.Style,
) ([]domain.AdjudicatorSummary, error) {
	registered := make(map[string]bool, len(adjudicators))
	for _, a := range adjudicators {
		registered[a.ID] = true
	}

	byAdj := make(map[string][]domain.RawAdjudicatorResult)
	for _, r := range raw {
		if r.Round != round {
			continue
		}
		if !registered[r.ID] {
			return nil, domain.NewEntityNotRegisteredError(r.ID, domain.RoleAdjudicator, round)
		}
		byAdj[r.ID] = append(byAdj[r.ID], r)
	}

	summaries := make([]domain.AdjudicatorSummary, 0, len(byAdj))
	for _, a := range adjudicators {
		ballots := byAdj[a.ID]
		if len(ballots) == 0 {
			continue
		}

		scores := make([]float64, 0, len(ballots))
		var comments []string
		var judged []string
		seen := make(map[string]bool)
		for _, b := range ballots {
			sum, wt := weightedScore(b.Scores, style.ScoreWeights)
			if wt > 0 {
				scores = append(scores, sum/wt)
			}
			if b.Comment != "" {
				comments = append(comments, b.Comment)
			}
			for _, team := range b.JudgedTeams {
				if !seen[team] {
					seen[team] = true
					judged = append(judged, team)
				}
			}
		}

		summaries = append(summaries, domain.AdjudicatorSummary{
			ID:          a.ID,
			Round:       round,
			Score:       numeric.Average(scores),
			JudgedTeams: judged,
			Comments:    comments,
		})
	}
	return summaries, nil
}

// weightedScore totals the positional scores under the weights and
// returns the total alongside the applied weight sum. A role without a
// weight defaults to 1.
func weightedScore(scores, weights []float64) (sum, weightTotal float64) {
	for i, s := range scores {
		w := 1.0
		if i < len(weights) {
			w = weights[i]
		}
		sum += s * w
		weightTotal += w
	}
	return sum, weightTotal
}

// registeredSpeakers collects the speakers registered on any team for
// the round, preserving first-seen order across teams.
func registeredSpeakers(teams []domain.Team, round int) (map[string]bool, []string, error) {
	registered := make(map[string]bool)
	var order []string
	for _, t := range teams {
		d, err := domain.DetailFor(t, round)
		if err != nil {
			return nil, nil, err
		}
		for _, s := range d.Speakers {
			if !registered[s] {
				registered[s] = true
				order = append(order, s)
			}
		}
	}
	return registered, order, nil
}
