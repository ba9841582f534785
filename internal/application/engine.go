package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/ahrav/go-rostrum/infrastructure/rankers"
	"github.com/ahrav/go-rostrum/internal/allocation"
	"github.com/ahrav/go-rostrum/internal/domain"
	"github.com/ahrav/go-rostrum/internal/ports"
	"github.com/ahrav/go-rostrum/internal/results"
)

// tracerName identifies the engine's OpenTelemetry tracer.
const tracerName = "rostrum-engine"

// Engine is the allocation and results-compilation facade. It holds a
// validated configuration and the ranker chains built from it, and
// computes synchronously over the inputs of each call: no internal
// state survives between invocations, so independent rounds may run
// concurrently.
type Engine struct {
	cfg      Config
	teamRank allocation.CandidateRanker
	adjRank  allocation.CandidateRanker
	metrics  ports.MetricsCollector
	tracer   trace.Tracer
}

// Option configures an Engine beyond its Config.
type Option func(*Engine)

// WithMetrics attaches a metrics collector to the engine. Without it
// the engine records nothing.
func WithMetrics(m ports.MetricsCollector) Option {
	return func(e *Engine) { e.metrics = m }
}

// NewEngine creates an Engine from the configuration, building the
// team and adjudicator ranker chains by name.
func NewEngine(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	teamChain, err := rankers.NewChainByName(cfg.TeamRankers...)
	if err != nil {
		return nil, fmt.Errorf("team chain: %w", err)
	}
	adjChain, err := rankers.NewChainByName(cfg.AdjudicatorRankers...)
	if err != nil {
		return nil, fmt.Errorf("adjudicator chain: %w", err)
	}

	e := &Engine{
		cfg:      cfg,
		teamRank: teamChain,
		adjRank:  adjChain,
		tracer:   otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// RoundInput carries the entities and prior compiled results an
// allocation run reads. The engine never mutates the input
// collections.
type RoundInput struct {
	Teams        []domain.Team
	Adjudicators []domain.Adjudicator
	Venues       []domain.Venue

	// Results holds the compiled running statistics from previous
	// rounds, keyed by participant ID. Empty for the first round.
	Results map[string]domain.CompiledResult
}

// AllocateRound builds the configured round's draw: precheck, team
// pairing, side resolution, adjudicator allocation, then venue
// assignment. On any failure no partial draw is returned.
func (e *Engine) AllocateRound(ctx context.Context, in RoundInput) (domain.Draw, error) {
	runID := uuid.NewString()
	ctx, span := e.tracer.Start(ctx, "Engine.AllocateRound")
	defer span.End()
	span.SetAttributes(
		attribute.String("run_id", runID),
		attribute.String("format", e.cfg.Format),
		attribute.Int("round", e.cfg.Round),
		attribute.String("pairing", string(e.cfg.Pairing)),
	)
	start := time.Now()

	draw, err := e.allocate(ctx, in)
	e.record("allocate_round", start, err, map[string]string{
		"format": e.cfg.Format, "pairing": string(e.cfg.Pairing),
	})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return domain.Draw{}, err
	}
	span.SetAttributes(attribute.Int("squares", len(draw.Allocation)))
	if e.metrics != nil {
		e.metrics.RecordGauge("allocation_squares", float64(len(draw.Allocation)),
			map[string]string{"format": e.cfg.Format})
	}
	return draw, nil
}

func (e *Engine) allocate(_ context.Context, in RoundInput) (domain.Draw, error) {
	round := e.cfg.Round
	if err := allocation.Precheck(in.Teams, in.Adjudicators, in.Venues, round, e.cfg.Style, e.cfg.Numbers); err != nil {
		return domain.Draw{}, err
	}

	rc, err := e.rankContext(in)
	if err != nil {
		return domain.Draw{}, err
	}

	var draw domain.Draw
	switch e.cfg.Pairing {
	case PairingStrict:
		draw, err = allocation.StrictPairing(in.Teams, round, e.cfg.Style, e.cfg.Strict, rc, e.cfg.Format)
	default:
		draw, err = allocation.StandardPairing(in.Teams, round, e.cfg.Style, e.teamRank, rc)
		if err == nil {
			err = allocation.ResolveSides(&draw, rc.Results, e.cfg.Style, e.cfg.Sides, e.cfg.Format)
		}
	}
	if err != nil {
		return domain.Draw{}, err
	}

	if err := allocation.AllocateAdjudicators(&draw, in.Adjudicators, round, e.cfg.Numbers, e.adjRank, rc); err != nil {
		return domain.Draw{}, err
	}
	if err := allocation.AllocateVenues(&draw, in.Venues, round, e.cfg.Venues, e.cfg.Format); err != nil {
		return domain.Draw{}, err
	}
	return draw, nil
}

// rankContext assembles the read-only context the ranker chains
// consume: the round's details for every team and adjudicator, the
// prior compiled results, and the institution weight map.
func (e *Engine) rankContext(in RoundInput) (domain.RankContext, error) {
	details := make(map[string]domain.Detail, len(in.Teams)+len(in.Adjudicators))
	for _, t := range in.Teams {
		d, err := domain.DetailFor(t, e.cfg.Round)
		if err != nil {
			return domain.RankContext{}, err
		}
		details[t.ID] = d
	}
	for _, a := range in.Adjudicators {
		d, err := domain.DetailFor(a, e.cfg.Round)
		if err != nil {
			return domain.RankContext{}, err
		}
		details[a.ID] = d
	}

	rc := domain.RankContext{
		Round:              e.cfg.Round,
		Seed:               e.cfg.Format,
		Results:            in.Results,
		Details:            details,
		InstitutionWeights: e.cfg.InstitutionWeights,
	}
	if rc.Results == nil {
		rc.Results = map[string]domain.CompiledResult{}
	}
	return rc, nil
}

// CompileInput carries the entities and raw submissions a compilation
// run reads.
type CompileInput struct {
	Teams        []domain.Team
	Adjudicators []domain.Adjudicator

	TeamResults        []domain.RawTeamResult
	SpeakerResults     []domain.RawSpeakerResult
	AdjudicatorResults []domain.RawAdjudicatorResult

	// Rounds lists the rounds to fold, in any order; compilation
	// always folds ascending.
	Rounds []int
}

// Compilation is the cross-round running state per participant kind.
type Compilation struct {
	Teams        []domain.CompiledResult
	Speakers     []domain.CompiledResult
	Adjudicators []domain.CompiledResult
}

// ResultMap flattens the compilation into the ID-keyed map the next
// round's rank context consumes.
func (c Compilation) ResultMap() map[string]domain.CompiledResult {
	out := make(map[string]domain.CompiledResult)
	for _, group := range [][]domain.CompiledResult{c.Teams, c.Speakers, c.Adjudicators} {
		for _, r := range group {
			out[r.ID] = r
		}
	}
	return out
}

// CompileRounds summarizes each requested round and folds the
// summaries into running compiled results per participant kind. The
// three kinds compile independently, so they fan out across
// goroutines; each kind itself folds strictly in round order.
func (e *Engine) CompileRounds(ctx context.Context, in CompileInput) (Compilation, error) {
	ctx, span := e.tracer.Start(ctx, "Engine.CompileRounds")
	defer span.End()
	span.SetAttributes(
		attribute.String("format", e.cfg.Format),
		attribute.Int("rounds", len(in.Rounds)),
	)
	start := time.Now()

	var compilation Compilation
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var all []domain.TeamSummary
		for _, r := range in.Rounds {
			summaries, err := results.SummarizeTeams(in.Teams, in.TeamResults, r, e.cfg.Style)
			if err != nil {
				return err
			}
			all = append(all, summaries...)
		}
		compilation.Teams = results.CompileTeams(in.Teams, all, e.cfg.Style)
		return nil
	})
	g.Go(func() error {
		var all []domain.SpeakerSummary
		for _, r := range in.Rounds {
			summaries, err := results.SummarizeSpeakers(in.Teams, in.SpeakerResults, r, e.cfg.Style)
			if err != nil {
				return err
			}
			all = append(all, summaries...)
		}
		compilation.Speakers = results.CompileSpeakers(all, e.cfg.Style)
		return nil
	})
	g.Go(func() error {
		var all []domain.AdjudicatorSummary
		for _, r := range in.Rounds {
			summaries, err := results.SummarizeAdjudicators(in.Adjudicators, in.AdjudicatorResults, r, e.cfg.Style)
			if err != nil {
				return err
			}
			all = append(all, summaries...)
		}
		compilation.Adjudicators = results.CompileAdjudicators(in.Adjudicators, all)
		return nil
	})

	err := g.Wait()
	e.record("compile_rounds", start, err, map[string]string{"format": e.cfg.Format})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return Compilation{}, err
	}
	return compilation, nil
}

// CheckSubmissions gates result entry for the round: every available
// team, registered speaker, and available adjudicator must have at
// least one raw result submitted.
func (e *Engine) CheckSubmissions(ctx context.Context, in CompileInput, round int) error {
	_, span := e.tracer.Start(ctx, "Engine.CheckSubmissions")
	defer span.End()
	span.SetAttributes(attribute.Int("round", round))

	if err := results.CheckTeamSubmissions(in.Teams, in.TeamResults, round); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	if err := results.CheckSpeakerSubmissions(in.Teams, in.SpeakerResults, round); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	if err := results.CheckAdjudicatorSubmissions(in.Adjudicators, in.AdjudicatorResults, round); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// record emits the operation's latency and outcome counter when a
// collector is attached.
func (e *Engine) record(operation string, start time.Time, err error, labels map[string]string) {
	if e.metrics == nil {
		return
	}
	e.metrics.RecordLatency(operation, time.Since(start), labels)
	status := "success"
	if err != nil {
		status = "error"
	}
	counterLabels := map[string]string{"status": status}
	for k, v := range labels {
		counterLabels[k] = v
	}
	e.metrics.RecordCounter(operation+"_total", 1, counterLabels)
}
