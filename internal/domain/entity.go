// Package domain contains pure, dependency-free domain models and types
// for the allocation and pairing engine.
package domain

// Role identifies the kind of participant an identifier refers to.
// It is carried by errors and compiled results so callers can report
// failures precisely.
type Role string

// Participant roles recognized by the engine.
const (
	RoleTeam        Role = "team"
	RoleSpeaker     Role = "speaker"
	RoleAdjudicator Role = "adjudicator"
	RoleVenue       Role = "venue"
)

// Detail is the per-round attribute record of an entity. Exactly one
// Detail exists per round an entity is referenced in; absence is a hard
// error surfaced by DetailFor, never a silent default.
type Detail struct {
	// Round is the round number this record applies to.
	Round int `yaml:"round" json:"round"`

	// Available reports whether the entity participates in the round.
	Available bool `yaml:"available" json:"available"`

	// Institutions lists the institution IDs the entity belongs to.
	// Used by teams and adjudicators for conflict avoidance.
	Institutions []string `yaml:"institutions,omitempty" json:"institutions,omitempty"`

	// Conflicts lists entity IDs an adjudicator has declared conflicts
	// against, beyond institutional overlap.
	Conflicts []string `yaml:"conflicts,omitempty" json:"conflicts,omitempty"`

	// Speakers lists the speaker IDs registered for a team in the round.
	Speakers []string `yaml:"speakers,omitempty" json:"speakers,omitempty"`

	// Priority orders venues; higher-priority venues are assigned first.
	Priority float64 `yaml:"priority,omitempty" json:"priority,omitempty"`
}

// Detailed is implemented by every entity carrying per-round detail
// records. It is the shared capability the accessor operations work
// against, resolved at compile time rather than by runtime shape checks.
type Detailed interface {
	// EntityID returns the entity's unique identifier.
	EntityID() string

	// DetailRecords returns the entity's per-round records.
	DetailRecords() []Detail
}

// Team is a competing side consisting of one or more speakers.
type Team struct {
	ID      string   `yaml:"id" json:"id"`
	Details []Detail `yaml:"details" json:"details"`
}

// EntityID implements Detailed.
func (t Team) EntityID() string { return t.ID }

// DetailRecords implements Detailed.
func (t Team) DetailRecords() []Detail { return t.Details }

// Adjudicator is a judge assignable to a square as chair, panel, or
// trainee.
type Adjudicator struct {
	ID      string   `yaml:"id" json:"id"`
	Details []Detail `yaml:"details" json:"details"`
}

// EntityID implements Detailed.
func (a Adjudicator) EntityID() string { return a.ID }

// DetailRecords implements Detailed.
func (a Adjudicator) DetailRecords() []Detail { return a.Details }

// Venue is a room a square can be held in.
type Venue struct {
	ID      string   `yaml:"id" json:"id"`
	Details []Detail `yaml:"details" json:"details"`
}

// EntityID implements Detailed.
func (v Venue) EntityID() string { return v.ID }

// DetailRecords implements Detailed.
func (v Venue) DetailRecords() []Detail { return v.Details }

// DetailFor returns the Detail an entity carries for the given round.
// It fails with a DetailNotDefinedError when no record exists; the
// engine never substitutes defaults for missing round data.
func DetailFor(e Detailed, round int) (Detail, error) {
	for _, d := range e.DetailRecords() {
		if d.Round == round {
			return d, nil
		}
	}
	return Detail{}, NewDetailNotDefinedError(e.EntityID(), round)
}

// FilterAvailable returns the subsequence of entities whose Detail for
// the round reports them available. Entities without a record for the
// round cause a DetailNotDefinedError, matching the accessor contract.
func FilterAvailable[E Detailed](entities []E, round int) ([]E, error) {
	out := make([]E, 0, len(entities))
	for _, e := range entities {
		d, err := DetailFor(e, round)
		if err != nil {
			return nil, err
		}
		if d.Available {
			out = append(out, e)
		}
	}
	return out, nil
}

// CheckDetails verifies every entity has a Detail for the round. It is
// a precondition gate, not a filter: it fails on the first entity
// lacking a record and returns nothing on success.
func CheckDetails[E Detailed](entities []E, round int) error {
	for _, e := range entities {
		if _, err := DetailFor(e, round); err != nil {
			return err
		}
	}
	return nil
}
