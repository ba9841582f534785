// Command allocate reads a tournament file, compiles the results of
// the rounds already played, builds the next round's draw, and prints
// it as YAML.
package main

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ahrav/go-rostrum/infrastructure/middleware"
	"github.com/ahrav/go-rostrum/internal/application"
	"github.com/ahrav/go-rostrum/internal/config"
	"github.com/ahrav/go-rostrum/internal/domain"
)

// tournamentFile is the on-disk schema: the engine configuration, the
// registered entities, and the raw results submitted so far.
type tournamentFile struct {
	Config application.Config `yaml:"config"`

	Teams        []domain.Team        `yaml:"teams"`
	Adjudicators []domain.Adjudicator `yaml:"adjudicators"`
	Venues       []domain.Venue       `yaml:"venues"`

	TeamResults        []domain.RawTeamResult        `yaml:"team_results"`
	SpeakerResults     []domain.RawSpeakerResult     `yaml:"speaker_results"`
	AdjudicatorResults []domain.RawAdjudicatorResult `yaml:"adjudicator_results"`
}

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "allocate: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	data, err := os.ReadFile(cfg.Tournament)
	if err != nil {
		return fmt.Errorf("read tournament: %w", err)
	}
	var t tournamentFile
	if err := yaml.Unmarshal(data, &t); err != nil {
		return fmt.Errorf("parse tournament: %w", err)
	}

	var opts []application.Option
	if cfg.Metrics {
		opts = append(opts, application.WithMetrics(middleware.NewPrometheusMetrics()))
	}
	engine, err := application.NewEngine(t.Config, opts...)
	if err != nil {
		return err
	}

	// Fold every round before the one being allocated.
	var played []int
	for r := 1; r < t.Config.Round; r++ {
		played = append(played, r)
	}
	in := application.CompileInput{
		Teams:              t.Teams,
		Adjudicators:       t.Adjudicators,
		TeamResults:        t.TeamResults,
		SpeakerResults:     t.SpeakerResults,
		AdjudicatorResults: t.AdjudicatorResults,
		Rounds:             played,
	}
	compilation, err := engine.CompileRounds(ctx, in)
	if err != nil {
		return fmt.Errorf("compile rounds: %w", err)
	}

	draw, err := engine.AllocateRound(ctx, application.RoundInput{
		Teams:        t.Teams,
		Adjudicators: t.Adjudicators,
		Venues:       t.Venues,
		Results:      compilation.ResultMap(),
	})
	if err != nil {
		return fmt.Errorf("allocate round: %w", err)
	}

	out, err := yaml.Marshal(draw)
	if err != nil {
		return fmt.Errorf("marshal draw: %w", err)
	}
	_, err = os.Stdout.Write(out)
	return err
}
