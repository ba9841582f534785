// Package application wires the allocation and results packages into
// the engine facade callers drive: validated configuration in, draws
// and compiled results out.
package application

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/ahrav/go-rostrum/internal/allocation"
	"github.com/ahrav/go-rostrum/internal/domain"
)

// Package-level validator instance for configuration validation.
// Uses go-playground/validator v10 for struct tag-based validation.
var validate = validator.New()

// PairingMethod selects the draw-construction strategy.
type PairingMethod string

// Supported pairing strategies.
const (
	// PairingStandard ranks candidates with the ranker chain and
	// pairs by deferred acceptance or greedy grouping.
	PairingStandard PairingMethod = "standard"

	// PairingStrict is the deterministic bracket strategy with
	// explicit pull-up and position control.
	PairingStrict PairingMethod = "strict"
)

// Config carries everything an allocation or compilation run needs
// beyond the entities themselves. It is immutable once handed to an
// Engine.
type Config struct {
	// Format names the competition format. It doubles as the random
	// seed: identical format and round always reproduce the same
	// pseudo-random decisions.
	Format string `yaml:"format" json:"format" validate:"required"`

	// Round is the round being allocated or compiled.
	Round int `yaml:"round" json:"round" validate:"min=1"`

	// Style describes the format's shape and scoring.
	Style domain.Style `yaml:"style" json:"style"`

	// Pairing selects the draw-construction strategy.
	Pairing PairingMethod `yaml:"pairing" json:"pairing" validate:"oneof=standard strict"`

	// Strict parameterizes the strict strategy; ignored under
	// standard pairing.
	Strict allocation.StrictConfig `yaml:"strict" json:"strict"`

	// TeamRankers names the ranker chain for team pairing, in
	// priority order.
	TeamRankers []string `yaml:"team_rankers" json:"team_rankers" validate:"min=1"`

	// AdjudicatorRankers names the ranker chain for adjudicator
	// allocation, in priority order.
	AdjudicatorRankers []string `yaml:"adjudicator_rankers" json:"adjudicator_rankers" validate:"min=1"`

	// Sides selects side resolution; Venues selects venue ordering.
	Sides  allocation.SideMode  `yaml:"sides" json:"sides" validate:"oneof=balance random"`
	Venues allocation.VenueMode `yaml:"venues" json:"venues" validate:"oneof=priority shuffle"`

	// Numbers is the per-square adjudicator capacity by role.
	Numbers allocation.Numbers `yaml:"numbers" json:"numbers"`

	// InstitutionWeights optionally weighs institutional overlap per
	// institution in place of plain overlap counting.
	InstitutionWeights map[string]float64 `yaml:"institution_weights" json:"institution_weights"`
}

// DefaultConfig returns a Config with the conventional two-team setup:
// standard pairing ranked by strength, institution, side balance,
// past opponents, and the random tie-break.
func DefaultConfig() Config {
	return Config{
		Format:             "NA",
		Round:              1,
		Style:              domain.TwoTeamStyle(),
		Pairing:            PairingStandard,
		Strict:             allocation.DefaultStrictConfig(),
		TeamRankers:        []string{"strength", "institution", "past_opponent", "side_balance", "random"},
		AdjudicatorRankers: []string{"conflict", "bubble", "attendance", "random"},
		Sides:              allocation.SideModeBalance,
		Venues:             allocation.VenueModePriority,
		Numbers:            allocation.Numbers{Chairs: 1},
	}
}

// Validate checks the configuration, including the embedded style and
// strict options.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	if len(c.Style.Positions) != c.Style.TeamNum {
		return fmt.Errorf("style %s: %d positions for %d teams", c.Style.Name, len(c.Style.Positions), c.Style.TeamNum)
	}
	return nil
}
