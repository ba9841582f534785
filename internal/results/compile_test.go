package results

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahrav/go-rostrum/internal/domain"
)

func round1Teams() []domain.TeamSummary {
	return []domain.TeamSummary{
		{ID: "t1", Round: 1, Win: 1, Sum: ptr(150), Margin: ptr(5), Side: domain.SideGov, Opponents: []string{"t2"}},
		{ID: "t2", Round: 1, Win: 0, Sum: ptr(145), Margin: ptr(-5), Side: domain.SideOpp, Opponents: []string{"t1"}},
	}
}

func round2Teams() []domain.TeamSummary {
	return []domain.TeamSummary{
		{ID: "t1", Round: 2, Win: 1, Sum: ptr(152), Side: domain.SideOpp, Opponents: []string{"t2"}},
		{ID: "t2", Round: 2, Win: 0, Sum: ptr(148), Side: domain.SideGov, Opponents: []string{"t1"}},
	}
}

func TestCompileTeams(t *testing.T) {
	style := domain.TwoTeamStyle()
	teams := []domain.Team{{ID: "t1"}, {ID: "t2"}}

	t.Run("accumulates wins, sums, and histories round by round", func(t *testing.T) {
		summaries := append(round1Teams(), round2Teams()...)
		compiled := CompileTeams(teams, summaries, style)
		require.Len(t, compiled, 2)

		c := compiled[0]
		assert.Equal(t, "t1", c.ID)
		assert.Equal(t, domain.RoleTeam, c.Role)
		assert.Equal(t, 2, c.Win)
		require.NotNil(t, c.Sum)
		assert.Equal(t, 302.0, *c.Sum)
		require.NotNil(t, c.Margin)
		assert.Equal(t, 5.0, *c.Margin, "round without a margin leaves the total unchanged")
		assert.Equal(t, []domain.Side{domain.SideGov, domain.SideOpp}, c.PastSides)
		assert.Equal(t, []string{"t2", "t2"}, c.PastOpponents)
		assert.Len(t, c.PastSides, len(c.PastOpponents))
	})

	t.Run("summary order does not change the fold", func(t *testing.T) {
		forward := append(round1Teams(), round2Teams()...)
		reversed := append(round2Teams(), round1Teams()...)
		assert.Equal(t,
			CompileTeams(teams, forward, style),
			CompileTeams(teams, reversed, style),
		)
	})

	t.Run("full compile equals incremental folding", func(t *testing.T) {
		all := CompileTeams(teams, append(round1Teams(), round2Teams()...), style)
		incremental := FoldTeams(CompileTeams(teams, round1Teams(), style), round2Teams(), style)
		assert.Equal(t, all, incremental)
	})

	t.Run("folding never mutates the prior results", func(t *testing.T) {
		prior := CompileTeams(teams, round1Teams(), style)
		snapshot := CompileTeams(teams, round1Teams(), style)
		_ = FoldTeams(prior, round2Teams(), style)
		assert.Equal(t, snapshot, prior)
	})

	t.Run("unscored formats keep sums nil through folds", func(t *testing.T) {
		unscored := style
		unscored.ScoresSummed = false
		compiled := CompileTeams(teams, append(round1Teams(), round2Teams()...), unscored)
		assert.Nil(t, compiled[0].Sum)
		assert.Nil(t, compiled[0].Margin)
		assert.Equal(t, 2, compiled[0].Win)
	})
}

func TestCompileSpeakers(t *testing.T) {
	style := domain.TwoTeamStyle()
	summaries := []domain.SpeakerSummary{
		{ID: "s1", Round: 2, Sum: 200, Average: 80},
		{ID: "s1", Round: 1, Sum: 190, Average: 76},
		{ID: "s2", Round: 1, Sum: 180, Average: 72},
	}

	compiled := CompileSpeakers(summaries, style)
	require.Len(t, compiled, 2)

	s1 := compiled[0]
	assert.Equal(t, "s1", s1.ID)
	assert.Equal(t, domain.RoleSpeaker, s1.Role)
	assert.Equal(t, 2, s1.ActiveNum)
	require.NotNil(t, s1.Sum)
	assert.Equal(t, 390.0, *s1.Sum)
	assert.InDelta(t, 78.0, s1.Average, 1e-9)

	s2 := compiled[1]
	assert.Equal(t, 1, s2.ActiveNum)
	assert.InDelta(t, 72.0, s2.Average, 1e-9)
}

func TestCompileAdjudicators(t *testing.T) {
	adjs := []domain.Adjudicator{{ID: "a1"}, {ID: "a2"}}
	summaries := []domain.AdjudicatorSummary{
		{ID: "a1", Round: 2, Score: 90, JudgedTeams: []string{"t3", "t4"}},
		{ID: "a1", Round: 1, Score: 80, JudgedTeams: []string{"t1", "t2"}},
	}

	compiled := CompileAdjudicators(adjs, summaries)
	require.Len(t, compiled, 2)

	a1 := compiled[0]
	assert.Equal(t, domain.RoleAdjudicator, a1.Role)
	assert.Equal(t, 2, a1.ActiveNum)
	assert.InDelta(t, 85.0, a1.Average, 1e-9)
	assert.Equal(t, []string{"t1", "t2", "t3", "t4"}, a1.JudgedTeams, "judged teams in round order")

	a2 := compiled[1]
	assert.Equal(t, 0, a2.ActiveNum)
	assert.Zero(t, a2.Average)
}

func TestResultMap(t *testing.T) {
	compiled := []domain.CompiledResult{
		{ID: "t1", Win: 2},
		{ID: "t2", Win: 1},
	}
	m := ResultMap(compiled)
	require.Len(t, m, 2)
	assert.Equal(t, 2, m["t1"].Win)
	assert.Equal(t, 1, m["t2"].Win)
}
