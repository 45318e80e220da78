package world

import "github.com/zyedidia/generic/mapset"

// Side represents one of the four sides of a lattice cell
type Side int

// Side constants
const (
	Up Side = iota
	Right
	Down
	Left
)

// SideSet is a set of sides, used for required openings and closings
type SideSet = mapset.Set[Side]

// AllSides returns all valid sides for iteration
func AllSides() []Side {
	return []Side{Up, Right, Down, Left}
}

// NewSideSet returns a set holding the given sides
func NewSideSet(sides ...Side) SideSet {
	s := mapset.New[Side]()
	for _, side := range sides {
		s.Put(side)
	}
	return s
}

// SortedSides returns the members of s in AllSides order
func SortedSides(s SideSet) []Side {
	var out []Side
	for _, side := range AllSides() {
		if s.Has(side) {
			out = append(out, side)
		}
	}
	return out
}

// String returns the string representation of a side
func (s Side) String() string {
	switch s {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// IsValid returns true if the side is one of the four sides
func (s Side) IsValid() bool {
	return s >= Up && s <= Left
}

// Opposite returns the opposite side
func (s Side) Opposite() Side {
	switch s {
	case Up:
		return Down
	case Down:
		return Up
	case Right:
		return Left
	case Left:
		return Right
	default:
		return s
	}
}

// Delta returns the x and y offsets for this side. The lattice is y-up.
func (s Side) Delta() (dx, dy int) {
	switch s {
	case Up:
		return 0, 1
	case Right:
		return 1, 0
	case Down:
		return 0, -1
	case Left:
		return -1, 0
	default:
		return 0, 0
	}
}

// ParseSide returns the side named by str
func ParseSide(str string) (Side, bool) {
	for _, s := range AllSides() {
		if s.String() == str {
			return s, true
		}
	}
	return 0, false
}

// MarshalText implements encoding.TextMarshaler
func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
