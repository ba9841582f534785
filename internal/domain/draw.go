package domain

// AllocationSquare is one grouping of competing teams for a round,
// plus its assigned adjudicators and venue. Team order is semantically
// the side assignment: index i occupies the style's Positions[i] slot.
//
// A square is created and owned by draw construction for the duration
// of a round's allocation; side and venue resolution mutate it in place
// before it is handed to the caller.
type AllocationSquare struct {
	// ID numbers the square within its draw, starting at 1.
	ID int `yaml:"id" json:"id"`

	// Teams holds the paired team IDs in slot order.
	Teams []string `yaml:"teams" json:"teams"`

	// Chairs, Panels, and Trainees hold assigned adjudicator IDs by
	// role, in decreasing order of authority.
	Chairs   []string `yaml:"chairs,omitempty" json:"chairs,omitempty"`
	Panels   []string `yaml:"panels,omitempty" json:"panels,omitempty"`
	Trainees []string `yaml:"trainees,omitempty" json:"trainees,omitempty"`

	// Venue is the assigned venue ID, or empty when no venue is
	// assigned (venue shortage degrades to partial assignment).
	Venue string `yaml:"venue,omitempty" json:"venue,omitempty"`
}

// SideOf returns the position token team index i occupies under the
// given style.
func (sq AllocationSquare) SideOf(i int, style Style) Side {
	if i < 0 || i >= len(style.Positions) {
		return ""
	}
	return style.Positions[i]
}

// Draw is the unit of output for a round's pairing.
type Draw struct {
	// Round is the round the draw was built for.
	Round int `yaml:"round" json:"round"`

	// Allocation holds the squares in construction order.
	Allocation []AllocationSquare `yaml:"allocation" json:"allocation"`
}
