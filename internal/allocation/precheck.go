package allocation

import (
	"github.com/ahrav/go-rostrum/internal/domain"
)

// Numbers specifies the per-square adjudicator capacity by role.
// The roles consume capacity in decreasing order of authority.
type Numbers struct {
	Chairs   int `yaml:"chairs" json:"chairs" validate:"min=0"`
	Panels   int `yaml:"panels" json:"panels" validate:"min=0"`
	Trainees int `yaml:"trainees" json:"trainees" validate:"min=0"`
}

// Total returns the aggregate adjudicator capacity per square.
func (n Numbers) Total() int { return n.Chairs + n.Panels + n.Trainees }

// Precheck validates that the round can be allocated at all: every
// entity has a Detail for the round, the available team count divides
// evenly into squares, and enough adjudicators and venues are
// available for the resulting square count. Failures carry the exact
// shortfall so the caller can report precisely what is missing.
//
// Allocation succeeds with no error at exactly the resource threshold;
// the shortfall error fires only below it.
func Precheck(
	teams []domain.Team,
	adjudicators []domain.Adjudicator,
	venues []domain.Venue,
	round int,
	style domain.Style,
	numbers Numbers,
) error {
	if err := validate.Struct(numbers); err != nil {
		return err
	}
	if err := domain.CheckDetails(teams, round); err != nil {
		return err
	}
	if err := domain.CheckDetails(adjudicators, round); err != nil {
		return err
	}
	if err := domain.CheckDetails(venues, round); err != nil {
		return err
	}

	availTeams, err := domain.FilterAvailable(teams, round)
	if err != nil {
		return err
	}
	if rem := len(availTeams) % style.TeamNum; rem != 0 {
		return domain.NewNeedMoreError(domain.ResourceTeams, style.TeamNum-rem)
	}
	squares := len(availTeams) / style.TeamNum

	availAdjs, err := domain.FilterAvailable(adjudicators, round)
	if err != nil {
		return err
	}
	if need := squares * numbers.Total(); len(availAdjs) < need {
		return domain.NewNeedMoreError(domain.ResourceAdjudicators, need-len(availAdjs))
	}

	availVenues, err := domain.FilterAvailable(venues, round)
	if err != nil {
		return err
	}
	if len(availVenues) < squares {
		return domain.NewNeedMoreError(domain.ResourceVenues, squares-len(availVenues))
	}

	return nil
}
