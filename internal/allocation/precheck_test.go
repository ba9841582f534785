package allocation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahrav/go-rostrum/internal/domain"
)

func TestPrecheck(t *testing.T) {
	const round = 1
	style := domain.TwoTeamStyle()
	numbers := Numbers{Chairs: 1}

	teams := availTeams(round, "t1", "t2", "t3", "t4")
	adjs := availAdjs(round, "a1", "a2")
	venues := []domain.Venue{
		availVenue("v1", round, 0),
		availVenue("v2", round, 0),
	}

	t.Run("succeeds exactly at the resource threshold", func(t *testing.T) {
		assert.NoError(t, Precheck(teams, adjs, venues, round, style, numbers))
	})

	t.Run("team count must divide into squares", func(t *testing.T) {
		err := Precheck(teams[:3], adjs, venues, round, style, numbers)
		var nm *domain.NeedMoreError
		require.ErrorAs(t, err, &nm)
		assert.Equal(t, domain.ResourceTeams, nm.Resource)
		assert.Equal(t, 1, nm.AtLeast)
	})

	t.Run("adjudicator shortfall is exact", func(t *testing.T) {
		err := Precheck(teams, adjs[:1], venues, round, style, numbers)
		var nm *domain.NeedMoreError
		require.ErrorAs(t, err, &nm)
		assert.Equal(t, domain.ResourceAdjudicators, nm.Resource)
		assert.Equal(t, 1, nm.AtLeast)
	})

	t.Run("venue shortfall is exact", func(t *testing.T) {
		err := Precheck(teams, adjs, venues[:1], round, style, numbers)
		var nm *domain.NeedMoreError
		require.ErrorAs(t, err, &nm)
		assert.Equal(t, domain.ResourceVenues, nm.Resource)
		assert.Equal(t, 1, nm.AtLeast)
	})

	t.Run("unavailable entities do not count", func(t *testing.T) {
		withBench := append(availTeams(round, "t1", "t2", "t3", "t4"),
			domain.Team{ID: "t5", Details: []domain.Detail{{Round: round, Available: false}}})
		assert.NoError(t, Precheck(withBench, adjs, venues, round, style, numbers))
	})

	t.Run("missing detail record is fatal", func(t *testing.T) {
		err := Precheck(teams, adjs, venues, 2, style, numbers)
		assert.ErrorIs(t, err, domain.ErrDetailNotDefined)
	})

	t.Run("negative role counts are rejected", func(t *testing.T) {
		err := Precheck(teams, adjs, venues, round, style, Numbers{Chairs: -1})
		assert.Error(t, err)
	})
}
