package allocation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahrav/go-rostrum/internal/domain"
)

func TestAllocateAdjudicators(t *testing.T) {
	const round = 2

	t.Run("roles fill strongest first within a square", func(t *testing.T) {
		draw := drawOf(round, []string{"t1", "t2"})
		adjs := availAdjs(round, "a1", "a2", "a3")
		rc := domain.RankContext{
			Round: round, Seed: "format",
			Results: map[string]domain.CompiledResult{
				"a1": {ID: "a1", Average: 80},
				"a2": {ID: "a2", Average: 70},
				"a3": {ID: "a3", Average: 60},
			},
			Details: map[string]domain.Detail{"a1": {}, "a2": {}, "a3": {}, "t1": {}, "t2": {}},
		}

		err := AllocateAdjudicators(&draw, adjs, round, Numbers{Chairs: 1, Panels: 1}, newChain(t, "random"), rc)
		require.NoError(t, err)
		sq := draw.Allocation[0]
		assert.Equal(t, []string{"a1"}, sq.Chairs)
		assert.Equal(t, []string{"a2"}, sq.Panels)
		assert.Empty(t, sq.Trainees)
	})

	t.Run("surplus adjudicators sit out, weakest first", func(t *testing.T) {
		draw := drawOf(round, []string{"t1", "t2"}, []string{"t3", "t4"})
		adjs := availAdjs(round, "a1", "a2", "a3")
		rc := domain.RankContext{
			Round: round, Seed: "format",
			Results: map[string]domain.CompiledResult{
				"a1": {ID: "a1", Average: 80},
				"a2": {ID: "a2", Average: 70},
				"a3": {ID: "a3", Average: 60},
			},
			Details: map[string]domain.Detail{},
		}

		err := AllocateAdjudicators(&draw, adjs, round, Numbers{Chairs: 1}, newChain(t, "random"), rc)
		require.NoError(t, err)

		var seated []string
		for _, sq := range draw.Allocation {
			seated = append(seated, sq.Chairs...)
			seated = append(seated, sq.Panels...)
			seated = append(seated, sq.Trainees...)
		}
		assert.ElementsMatch(t, []string{"a1", "a2"}, seated)
		assert.NotContains(t, seated, "a3")
	})

	t.Run("shortage carries the exact shortfall", func(t *testing.T) {
		draw := drawOf(round, []string{"t1", "t2"})
		adjs := availAdjs(round, "a1")
		rc := domain.RankContext{Round: round, Seed: "format"}

		err := AllocateAdjudicators(&draw, adjs, round, Numbers{Chairs: 1, Panels: 1}, newChain(t, "random"), rc)
		var nm *domain.NeedMoreError
		require.ErrorAs(t, err, &nm)
		assert.Equal(t, domain.ResourceAdjudicators, nm.Resource)
		assert.Equal(t, 1, nm.AtLeast)
	})

	t.Run("zero capacity is a no-op", func(t *testing.T) {
		draw := drawOf(round, []string{"t1", "t2"})
		err := AllocateAdjudicators(&draw, nil, round, Numbers{}, newChain(t, "random"), domain.RankContext{})
		require.NoError(t, err)
		assert.Empty(t, draw.Allocation[0].Chairs)
	})

	t.Run("conflicted adjudicators land on the opposite squares", func(t *testing.T) {
		draw := drawOf(round, []string{"t1", "t2"}, []string{"t3", "t4"})
		adjs := availAdjs(round, "a1", "a2")
		rc := domain.RankContext{
			Round: round, Seed: "format",
			Results: map[string]domain.CompiledResult{},
			Details: map[string]domain.Detail{
				"a1": {Conflicts: []string{"t1"}},
				"a2": {Conflicts: []string{"t3"}},
				"t1": {}, "t2": {}, "t3": {}, "t4": {},
			},
		}

		err := AllocateAdjudicators(&draw, adjs, round, Numbers{Chairs: 1}, newChain(t, "conflict", "random"), rc)
		require.NoError(t, err)
		assert.Equal(t, []string{"a2"}, draw.Allocation[0].Chairs)
		assert.Equal(t, []string{"a1"}, draw.Allocation[1].Chairs)
	})

	t.Run("same inputs, same assignment", func(t *testing.T) {
		rc := domain.RankContext{
			Round: round, Seed: "format",
			Results: map[string]domain.CompiledResult{},
			Details: map[string]domain.Detail{},
		}
		adjs := availAdjs(round, "a1", "a2", "a3", "a4")
		chain := newChain(t, "random")

		build := func() domain.Draw {
			draw := drawOf(round, []string{"t1", "t2"}, []string{"t3", "t4"})
			require.NoError(t, AllocateAdjudicators(&draw, adjs, round, Numbers{Chairs: 1, Panels: 1}, chain, rc))
			return draw
		}
		first := build()
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, build())
		}
	})
}
