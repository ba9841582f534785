package domain

// RawTeamResult is one submitted ballot's view of a team's round.
// Several raw results may exist per team per round, one per voting
// adjudicator; the results compiler reconciles them.
type RawTeamResult struct {
	ID        string   `yaml:"id" json:"id"`
	Round     int      `yaml:"round" json:"round"`
	Win       int      `yaml:"win" json:"win" validate:"oneof=0 1"`
	Score     *float64 `yaml:"score,omitempty" json:"score,omitempty"`
	Margin    *float64 `yaml:"margin,omitempty" json:"margin,omitempty"`
	Side      Side     `yaml:"side" json:"side"`
	Opponents []string `yaml:"opponents" json:"opponents"`
}

// RawSpeakerResult is one submitted ballot's scores for a speaker's
// round. Scores are positional across the speaker's scored roles and
// are weighted by the style's ScoreWeights.
type RawSpeakerResult struct {
	ID     string    `yaml:"id" json:"id"`
	Round  int       `yaml:"round" json:"round"`
	Scores []float64 `yaml:"scores" json:"scores"`
	Side   Side      `yaml:"side,omitempty" json:"side,omitempty"`
}

// RawAdjudicatorResult is one submitted evaluation of an adjudicator's
// round, including the teams judged and an optional free-form comment.
type RawAdjudicatorResult struct {
	ID          string    `yaml:"id" json:"id"`
	Round       int       `yaml:"round" json:"round"`
	Scores      []float64 `yaml:"scores" json:"scores"`
	JudgedTeams []string  `yaml:"judged_teams" json:"judged_teams"`
	Comment     string    `yaml:"comment,omitempty" json:"comment,omitempty"`
}

// TeamSummary is a team's reconciled single-round outcome.
type TeamSummary struct {
	ID    string `yaml:"id" json:"id"`
	Round int    `yaml:"round" json:"round"`

	// Win is 1 when the ballots award the round to the team, else 0.
	Win int `yaml:"win" json:"win"`

	// Votes is the number of ballots awarding the round to the team;
	// VoteRate is Votes over the total ballot count.
	Votes    int     `yaml:"votes" json:"votes"`
	VoteRate float64 `yaml:"vote_rate" json:"vote_rate"`

	// Sum and Margin are nil when the format does not aggregate scores.
	Sum    *float64 `yaml:"sum,omitempty" json:"sum,omitempty"`
	Margin *float64 `yaml:"margin,omitempty" json:"margin,omitempty"`

	Side      Side     `yaml:"side" json:"side"`
	Opponents []string `yaml:"opponents" json:"opponents"`
}

// SpeakerSummary is a speaker's single-round weighted scoring outcome.
type SpeakerSummary struct {
	ID    string `yaml:"id" json:"id"`
	Round int    `yaml:"round" json:"round"`

	// Sum is the weighted score total across the speaker's roles;
	// Average divides it by the weight total.
	Sum     float64 `yaml:"sum" json:"sum"`
	Average float64 `yaml:"average" json:"average"`
}

// AdjudicatorSummary is an adjudicator's single-round outcome: weighted
// evaluation score, the teams judged, and retained feedback comments.
type AdjudicatorSummary struct {
	ID    string `yaml:"id" json:"id"`
	Round int    `yaml:"round" json:"round"`

	Score       float64  `yaml:"score" json:"score"`
	JudgedTeams []string `yaml:"judged_teams" json:"judged_teams"`

	// Comments keeps only non-empty submitted comments, in submission
	// order.
	Comments []string `yaml:"comments,omitempty" json:"comments,omitempty"`
}

// CompiledResult is a participant's cross-round running statistics.
// It is recomputed from raw submissions each time, never incrementally
// mutated in place, so a compile over the same rounds always yields
// the same value.
//
// PastSides and PastOpponents are parallel, ordered by round, and both
// have length equal to the number of rounds the participant has
// competed in so far.
type CompiledResult struct {
	ID   string `yaml:"id" json:"id"`
	Role Role   `yaml:"role" json:"role"`

	// Win is the running win count.
	Win int `yaml:"win" json:"win"`

	// Sum and Margin accumulate scores across rounds; they stay nil
	// for formats that do not aggregate scores.
	Sum    *float64 `yaml:"sum,omitempty" json:"sum,omitempty"`
	Margin *float64 `yaml:"margin,omitempty" json:"margin,omitempty"`

	// PastSides records the side occupied in each competed round.
	PastSides []Side `yaml:"past_sides,omitempty" json:"past_sides,omitempty"`

	// PastOpponents records the opponents faced in each competed round.
	PastOpponents []string `yaml:"past_opponents,omitempty" json:"past_opponents,omitempty"`

	// Adjudicator statistics: rounds actively judged, teams judged,
	// and the running evaluation average.
	ActiveNum   int      `yaml:"active_num,omitempty" json:"active_num,omitempty"`
	JudgedTeams []string `yaml:"judged_teams,omitempty" json:"judged_teams,omitempty"`
	Average     float64  `yaml:"average,omitempty" json:"average,omitempty"`
}

// SideLean returns the participant's net side lean: the count of
// government-bench rounds minus opposition-bench rounds. Zero means a
// balanced history.
func (c CompiledResult) SideLean() int {
	lean := 0
	for _, s := range c.PastSides {
		lean += s.Lean()
	}
	return lean
}

// TimesFaced returns how many times the participant has faced the given
// opponent across compiled rounds.
func (c CompiledResult) TimesFaced(opponent string) int {
	n := 0
	for _, o := range c.PastOpponents {
		if o == opponent {
			n++
		}
	}
	return n
}
