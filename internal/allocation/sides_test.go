package allocation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahrav/go-rostrum/internal/domain"
)

func pastSides(sides map[string][]domain.Side) map[string]domain.CompiledResult {
	out := make(map[string]domain.CompiledResult, len(sides))
	for id, s := range sides {
		out[id] = domain.CompiledResult{ID: id, PastSides: s}
	}
	return out
}

func drawOf(round int, teams ...[]string) domain.Draw {
	d := domain.Draw{Round: round}
	for i, ts := range teams {
		d.Allocation = append(d.Allocation, domain.AllocationSquare{ID: i + 1, Teams: ts})
	}
	return d
}

func TestResolveSidesTwoTeam(t *testing.T) {
	style := domain.TwoTeamStyle()

	t.Run("opposed histories swap to rebalance", func(t *testing.T) {
		draw := drawOf(3, []string{"govgov", "oppopp"})
		results := pastSides(map[string][]domain.Side{
			"govgov": {domain.SideGov, domain.SideGov},
			"oppopp": {domain.SideOpp, domain.SideOpp},
		})
		require.NoError(t, ResolveSides(&draw, results, style, SideModeBalance, "seed"))
		assert.Equal(t, []string{"oppopp", "govgov"}, draw.Allocation[0].Teams)
	})

	t.Run("ties keep the paired order", func(t *testing.T) {
		draw := drawOf(1, []string{"t1", "t2"})
		require.NoError(t, ResolveSides(&draw, nil, style, SideModeBalance, "seed"))
		assert.Equal(t, []string{"t1", "t2"}, draw.Allocation[0].Teams)
	})

	t.Run("chosen order never leaves more imbalance than the alternative", func(t *testing.T) {
		histories := [][]domain.Side{
			{},
			{domain.SideGov},
			{domain.SideOpp},
			{domain.SideGov, domain.SideGov},
			{domain.SideOpp, domain.SideOpp, domain.SideOpp},
		}
		imbalance := func(a, b []domain.Side) int {
			ra := domain.CompiledResult{PastSides: a}
			rb := domain.CompiledResult{PastSides: b}
			return abs(ra.SideLean()+1) + abs(rb.SideLean()-1)
		}
		for i, ha := range histories {
			for j, hb := range histories {
				draw := drawOf(1, []string{"a", "b"})
				results := pastSides(map[string][]domain.Side{"a": ha, "b": hb})
				require.NoError(t, ResolveSides(&draw, results, style, SideModeBalance, "seed"))

				got := draw.Allocation[0].Teams
				chosen := results[got[0]].PastSides
				other := results[got[1]].PastSides
				assert.LessOrEqual(t, imbalance(chosen, other), imbalance(other, chosen),
					"histories %d vs %d", i, j)
			}
		}
	})

	t.Run("wrong team count is an error", func(t *testing.T) {
		draw := drawOf(1, []string{"lonely"})
		assert.Error(t, ResolveSides(&draw, nil, style, SideModeBalance, "seed"))
	})
}

func TestResolveSidesFourTeam(t *testing.T) {
	style := domain.BritishParliamentaryStyle()

	t.Run("complementary histories land in opposite slots", func(t *testing.T) {
		draw := drawOf(2, []string{"was-og", "was-oo", "was-cg", "was-co"})
		results := pastSides(map[string][]domain.Side{
			"was-og": {domain.SideOG},
			"was-oo": {domain.SideOO},
			"was-cg": {domain.SideCG},
			"was-co": {domain.SideCO},
		})
		require.NoError(t, ResolveSides(&draw, results, style, SideModeBalance, "seed"))
		// og<->co and oo<->cg are the only zero-imbalance complements.
		assert.Equal(t, []string{"was-co", "was-cg", "was-oo", "was-og"}, draw.Allocation[0].Teams)
	})

	t.Run("no history keeps the first permutation", func(t *testing.T) {
		draw := drawOf(1, []string{"t1", "t2", "t3", "t4"})
		require.NoError(t, ResolveSides(&draw, nil, style, SideModeBalance, "seed"))
		assert.Equal(t, []string{"t1", "t2", "t3", "t4"}, draw.Allocation[0].Teams)
	})
}

func TestResolveSidesRandom(t *testing.T) {
	style := domain.TwoTeamStyle()

	t.Run("seeded shuffle is reproducible", func(t *testing.T) {
		a := drawOf(3, []string{"t1", "t2"}, []string{"t3", "t4"})
		b := drawOf(3, []string{"t1", "t2"}, []string{"t3", "t4"})
		require.NoError(t, ResolveSides(&a, nil, style, SideModeRandom, "seed"))
		require.NoError(t, ResolveSides(&b, nil, style, SideModeRandom, "seed"))
		assert.Equal(t, a, b)
	})

	t.Run("squares keep their members", func(t *testing.T) {
		draw := drawOf(3, []string{"t1", "t2"}, []string{"t3", "t4"})
		require.NoError(t, ResolveSides(&draw, nil, style, SideModeRandom, "seed"))
		assert.ElementsMatch(t, []string{"t1", "t2"}, draw.Allocation[0].Teams)
		assert.ElementsMatch(t, []string{"t3", "t4"}, draw.Allocation[1].Teams)
	})
}
