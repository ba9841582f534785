package domain

// Side is a competitive position token within a square. Two-team styles
// use gov/opp; four-team (British Parliamentary) styles use the four
// bench tokens og/oo/cg/co.
type Side string

// Side tokens in slot order for the supported styles.
const (
	SideGov Side = "gov"
	SideOpp Side = "opp"

	SideOG Side = "og"
	SideOO Side = "oo"
	SideCG Side = "cg"
	SideCO Side = "co"
)

// Lean returns the side's contribution to a participant's net side
// lean: +1 for government-bench positions, -1 for opposition-bench
// positions. Side-balance arithmetic sums Lean over past sides.
func (s Side) Lean() int {
	switch s {
	case SideGov, SideOG, SideCG:
		return 1
	case SideOpp, SideOO, SideCO:
		return -1
	}
	return 0
}

// Opening reports whether the side is an opening-half position in a
// four-team style. Two-team tokens are never opening.
func (s Side) Opening() bool { return s == SideOG || s == SideOO }

// Closing reports whether the side is a closing-half position in a
// four-team style.
func (s Side) Closing() bool { return s == SideCG || s == SideCO }

// Style describes the competition format: how many teams meet in a
// square, which position tokens exist, how speaker scores are weighted,
// and whether team scores aggregate across rounds.
type Style struct {
	// Name identifies the format (for example "NA" or "BP").
	Name string `yaml:"name" json:"name" validate:"required"`

	// TeamNum is the number of teams per square.
	TeamNum int `yaml:"team_num" json:"team_num" validate:"required,oneof=2 4"`

	// Positions lists the side tokens in slot order. Its length always
	// equals TeamNum.
	Positions []Side `yaml:"positions" json:"positions" validate:"required"`

	// ScoreWeights applies positionally across a speaker's scored
	// roles. A role without a weight defaults to 1.0.
	ScoreWeights []float64 `yaml:"score_weights" json:"score_weights"`

	// ScoresSummed reports whether team score sums and margins
	// aggregate across rounds. Formats that do not score leave
	// CompiledResult sums null throughout.
	ScoresSummed bool `yaml:"scores_summed" json:"scores_summed"`
}

// TwoTeamStyle returns the default two-team (gov/opp) style with
// score aggregation enabled.
func TwoTeamStyle() Style {
	return Style{
		Name:         "NA",
		TeamNum:      2,
		Positions:    []Side{SideGov, SideOpp},
		ScoreWeights: []float64{1, 1, 0.5},
		ScoresSummed: true,
	}
}

// BritishParliamentaryStyle returns the four-team style with the four
// bench positions.
func BritishParliamentaryStyle() Style {
	return Style{
		Name:         "BP",
		TeamNum:      4,
		Positions:    []Side{SideOG, SideOO, SideCG, SideCO},
		ScoreWeights: []float64{1, 1},
		ScoresSummed: true,
	}
}
