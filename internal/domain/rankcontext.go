package domain

// RankContext carries the cross-round statistics and per-round details
// a ranker reads when ordering candidates. It is assembled once per
// allocation run and treated as read-only by every ranker.
type RankContext struct {
	// Round is the round being allocated.
	Round int

	// Seed is the deterministic random seed, typically the format
	// name. Combined with round and subject it derives all
	// pseudo-random ordering; no ranker may read ambient randomness.
	Seed string

	// Results maps participant IDs to their compiled running
	// statistics from previous rounds. Participants with no history
	// are simply absent.
	Results map[string]CompiledResult

	// Details maps entity IDs to their Detail for Round.
	Details map[string]Detail

	// InstitutionWeights optionally weighs institutional overlap per
	// institution; a missing institution counts with weight 1.
	InstitutionWeights map[string]float64

	// SquareTeams maps square keys to their team IDs during
	// adjudicator allocation, where the ranked candidates are squares.
	SquareTeams map[string][]string
}

// ResultOf returns the compiled result for the ID, or a zero-valued
// result when the participant has no history yet.
func (rc RankContext) ResultOf(id string) CompiledResult {
	if r, ok := rc.Results[id]; ok {
		return r
	}
	return CompiledResult{ID: id}
}
