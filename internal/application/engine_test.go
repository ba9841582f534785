package application

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahrav/go-rostrum/infrastructure/rankers"
	"github.com/ahrav/go-rostrum/internal/domain"
	"github.com/ahrav/go-rostrum/internal/ports"
)

// fakeMetrics records collector calls for assertion.
type fakeMetrics struct {
	mu        sync.Mutex
	latencies []string
	counters  []string
	gauges    []string
}

var _ ports.MetricsCollector = (*fakeMetrics)(nil)

func (f *fakeMetrics) RecordLatency(operation string, _ time.Duration, _ map[string]string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.latencies = append(f.latencies, operation)
}

func (f *fakeMetrics) RecordCounter(metric string, _ float64, _ map[string]string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counters = append(f.counters, metric)
}

func (f *fakeMetrics) RecordGauge(metric string, _ float64, _ map[string]string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gauges = append(f.gauges, metric)
}

func (f *fakeMetrics) RecordHistogram(string, float64, map[string]string) {}

func detailed(rounds ...int) []domain.Detail {
	out := make([]domain.Detail, len(rounds))
	for i, r := range rounds {
		out[i] = domain.Detail{Round: r, Available: true}
	}
	return out
}

func roundOneInput() RoundInput {
	return RoundInput{
		Teams: []domain.Team{
			{ID: "t1", Details: detailed(1)},
			{ID: "t2", Details: detailed(1)},
			{ID: "t3", Details: detailed(1)},
			{ID: "t4", Details: detailed(1)},
		},
		Adjudicators: []domain.Adjudicator{
			{ID: "a1", Details: detailed(1)},
			{ID: "a2", Details: detailed(1)},
		},
		Venues: []domain.Venue{
			{ID: "v1", Details: []domain.Detail{{Round: 1, Available: true, Priority: 2}}},
			{ID: "v2", Details: []domain.Detail{{Round: 1, Available: true, Priority: 1}}},
		},
	}
}

func TestNewEngine(t *testing.T) {
	t.Run("default configuration builds", func(t *testing.T) {
		_, err := NewEngine(DefaultConfig())
		assert.NoError(t, err)
	})

	t.Run("invalid configuration is rejected", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Pairing = "swiss"
		_, err := NewEngine(cfg)
		assert.Error(t, err)
	})

	t.Run("unknown ranker name is rejected", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.TeamRankers = []string{"nonexistent"}
		_, err := NewEngine(cfg)
		assert.ErrorIs(t, err, rankers.ErrUnknownRanker)
	})
}

func TestConfigValidate(t *testing.T) {
	t.Run("empty ranker chain is rejected", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.TeamRankers = nil
		assert.Error(t, cfg.Validate())
	})

	t.Run("positions must match the team count", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Style.Positions = []domain.Side{domain.SideGov}
		assert.Error(t, cfg.Validate())
	})
}

func TestAllocateRound(t *testing.T) {
	ctx := context.Background()

	t.Run("builds a complete draw", func(t *testing.T) {
		engine, err := NewEngine(DefaultConfig())
		require.NoError(t, err)

		draw, err := engine.AllocateRound(ctx, roundOneInput())
		require.NoError(t, err)
		require.Len(t, draw.Allocation, 2)
		assert.Equal(t, 1, draw.Round)

		var teams, chairs, venues []string
		for _, sq := range draw.Allocation {
			require.Len(t, sq.Teams, 2)
			require.Len(t, sq.Chairs, 1)
			teams = append(teams, sq.Teams...)
			chairs = append(chairs, sq.Chairs...)
			venues = append(venues, sq.Venue)
		}
		assert.ElementsMatch(t, []string{"t1", "t2", "t3", "t4"}, teams)
		assert.ElementsMatch(t, []string{"a1", "a2"}, chairs)
		assert.Equal(t, []string{"v1", "v2"}, venues, "higher priority venue goes to the first square")
	})

	t.Run("identical inputs yield the identical draw", func(t *testing.T) {
		engine, err := NewEngine(DefaultConfig())
		require.NoError(t, err)

		first, err := engine.AllocateRound(ctx, roundOneInput())
		require.NoError(t, err)
		for i := 0; i < 5; i++ {
			again, err := engine.AllocateRound(ctx, roundOneInput())
			require.NoError(t, err)
			assert.Equal(t, first, again)
		}
	})

	t.Run("strict pairing drives the bracket strategy", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Round = 2
		cfg.Pairing = PairingStrict

		engine, err := NewEngine(cfg)
		require.NoError(t, err)

		in := RoundInput{
			Teams: []domain.Team{
				{ID: "t1", Details: detailed(2)},
				{ID: "t2", Details: detailed(2)},
				{ID: "t3", Details: detailed(2)},
				{ID: "t4", Details: detailed(2)},
			},
			Adjudicators: []domain.Adjudicator{
				{ID: "a1", Details: detailed(2)},
				{ID: "a2", Details: detailed(2)},
			},
			Venues: []domain.Venue{
				{ID: "v1", Details: []domain.Detail{{Round: 2, Available: true}}},
				{ID: "v2", Details: []domain.Detail{{Round: 2, Available: true}}},
			},
			Results: map[string]domain.CompiledResult{
				"t1": {ID: "t1", Win: 1},
				"t2": {ID: "t2", Win: 1},
				"t3": {ID: "t3", Win: 0},
				"t4": {ID: "t4", Win: 0},
			},
		}
		draw, err := engine.AllocateRound(ctx, in)
		require.NoError(t, err)
		require.Len(t, draw.Allocation, 2)
		assert.ElementsMatch(t, []string{"t1", "t2"}, draw.Allocation[0].Teams)
		assert.ElementsMatch(t, []string{"t3", "t4"}, draw.Allocation[1].Teams)
	})

	t.Run("resource shortfall aborts with no partial draw", func(t *testing.T) {
		engine, err := NewEngine(DefaultConfig())
		require.NoError(t, err)

		in := roundOneInput()
		in.Adjudicators = in.Adjudicators[:1]
		draw, err := engine.AllocateRound(ctx, in)
		assert.ErrorIs(t, err, domain.ErrNeedMore)
		assert.Empty(t, draw.Allocation)
	})

	t.Run("metrics record latency and outcome", func(t *testing.T) {
		metrics := &fakeMetrics{}
		engine, err := NewEngine(DefaultConfig(), WithMetrics(metrics))
		require.NoError(t, err)

		_, err = engine.AllocateRound(ctx, roundOneInput())
		require.NoError(t, err)
		assert.Contains(t, metrics.latencies, "allocate_round")
		assert.Contains(t, metrics.counters, "allocate_round_total")
		assert.Contains(t, metrics.gauges, "allocation_squares")
	})
}

func TestCompileRounds(t *testing.T) {
	ctx := context.Background()

	teams := []domain.Team{
		{ID: "t1", Details: []domain.Detail{{Round: 1, Available: true, Speakers: []string{"s1"}}}},
		{ID: "t2", Details: []domain.Detail{{Round: 1, Available: true, Speakers: []string{"s2"}}}},
	}
	adjs := []domain.Adjudicator{
		{ID: "a1", Details: detailed(1)},
	}
	score := func(v float64) *float64 { return &v }

	in := CompileInput{
		Teams:        teams,
		Adjudicators: adjs,
		TeamResults: []domain.RawTeamResult{
			{ID: "t1", Round: 1, Win: 1, Score: score(150), Side: domain.SideGov, Opponents: []string{"t2"}},
			{ID: "t2", Round: 1, Win: 0, Score: score(145), Side: domain.SideOpp, Opponents: []string{"t1"}},
		},
		SpeakerResults: []domain.RawSpeakerResult{
			{ID: "s1", Round: 1, Scores: []float64{75}},
			{ID: "s2", Round: 1, Scores: []float64{72}},
		},
		AdjudicatorResults: []domain.RawAdjudicatorResult{
			{ID: "a1", Round: 1, Scores: []float64{80}, JudgedTeams: []string{"t1", "t2"}},
		},
		Rounds: []int{1},
	}

	engine, err := NewEngine(DefaultConfig())
	require.NoError(t, err)

	t.Run("compiles all three participant kinds", func(t *testing.T) {
		compilation, err := engine.CompileRounds(ctx, in)
		require.NoError(t, err)

		require.Len(t, compilation.Teams, 2)
		assert.Equal(t, 1, compilation.Teams[0].Win)
		assert.Equal(t, []domain.Side{domain.SideGov}, compilation.Teams[0].PastSides)

		require.Len(t, compilation.Speakers, 2)
		assert.Equal(t, 1, compilation.Speakers[0].ActiveNum)

		require.Len(t, compilation.Adjudicators, 1)
		assert.InDelta(t, 80.0, compilation.Adjudicators[0].Average, 1e-9)

		m := compilation.ResultMap()
		assert.Equal(t, 1, m["t1"].Win)
		assert.Equal(t, domain.RoleAdjudicator, m["a1"].Role)
	})

	t.Run("missing ballots surface as compile errors", func(t *testing.T) {
		short := in
		short.TeamResults = in.TeamResults[:1]
		_, err := engine.CompileRounds(ctx, short)
		assert.ErrorIs(t, err, domain.ErrResultNotSent)
	})
}

func TestCheckSubmissions(t *testing.T) {
	ctx := context.Background()
	engine, err := NewEngine(DefaultConfig())
	require.NoError(t, err)

	teams := []domain.Team{
		{ID: "t1", Details: []domain.Detail{{Round: 1, Available: true, Speakers: []string{"s1"}}}},
	}
	in := CompileInput{
		Teams: teams,
		TeamResults: []domain.RawTeamResult{
			{ID: "t1", Round: 1, Win: 1},
		},
	}

	t.Run("reports the first missing speaker", func(t *testing.T) {
		err := engine.CheckSubmissions(ctx, in, 1)
		var rns *domain.ResultNotSentError
		require.ErrorAs(t, err, &rns)
		assert.Equal(t, "s1", rns.ID)
	})

	t.Run("passes when everything is in", func(t *testing.T) {
		full := in
		full.SpeakerResults = []domain.RawSpeakerResult{{ID: "s1", Round: 1, Scores: []float64{70}}}
		assert.NoError(t, engine.CheckSubmissions(ctx, full, 1))
	})
}
