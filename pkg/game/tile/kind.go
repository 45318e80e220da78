// Package tile defines the closed catalog of corridor segment kinds: which
// sides each kind is open on, how it is drawn, and how the corridor leaves a
// segment of that kind.
package tile

import "tilt/pkg/engine/world"

// Kind is the shape of a corridor segment
type Kind int

// Kind constants. Corner kinds are named after their two open sides.
const (
	Start Kind = iota
	Finish
	BottomLeft
	BottomRight
	TopLeft
	TopRight
	TopBottom
	LeftRight
)

// Vertical and Horizontal are aliases for the straight kinds
const (
	Vertical   = TopBottom
	Horizontal = LeftRight
)

// Piece is the shape category a renderer draws for a kind
type Piece int

// Piece constants
const (
	PieceStart Piece = iota
	PieceFinish
	PieceCorner
	PieceStraight
)

// String returns the piece name
func (p Piece) String() string {
	switch p {
	case PieceStart:
		return "start"
	case PieceFinish:
		return "finish"
	case PieceCorner:
		return "corner"
	case PieceStraight:
		return "straight"
	default:
		return "unknown"
	}
}

// kindSpec is the static description of one catalog entry.
// open is indexed by world.Side.
type kindSpec struct {
	name       string
	identifier string
	open       [4]bool
	piece      Piece
	rotation   int
}

//                            up     right  down   left
var kinds = [...]kindSpec{
	Start:       {"Start", "_Start", [4]bool{true, false, false, false}, PieceStart, 0},
	Finish:      {"Finish", "_Finish", [4]bool{false, true, false, false}, PieceFinish, 0},
	BottomLeft:  {"BottomLeft", "_BL", [4]bool{false, false, true, true}, PieceCorner, 180},
	BottomRight: {"BottomRight", "_BR", [4]bool{false, true, true, false}, PieceCorner, 270},
	TopLeft:     {"TopLeft", "_TL", [4]bool{true, false, false, true}, PieceCorner, 90},
	TopRight:    {"TopRight", "_TR", [4]bool{true, true, false, false}, PieceCorner, 0},
	TopBottom:   {"TopBottom", "_TB", [4]bool{true, false, true, false}, PieceStraight, 0},
	LeftRight:   {"LeftRight", "_LR", [4]bool{false, true, false, true}, PieceStraight, 90},
}

// AllKinds returns every kind, terminal kinds first
func AllKinds() []Kind {
	return []Kind{Start, Finish, BottomLeft, BottomRight, TopLeft, TopRight, TopBottom, LeftRight}
}

// IsValid returns true if k is one of the catalog kinds
func (k Kind) IsValid() bool {
	return k >= Start && k <= LeftRight
}

// IsTerminal returns true for Start and Finish
func (k Kind) IsTerminal() bool {
	return k == Start || k == Finish
}

// String returns the kind name
func (k Kind) String() string {
	if !k.IsValid() {
		return "Unknown"
	}
	return kinds[k].name
}

// Identifier returns the short identifier renderers use to name nodes
func (k Kind) Identifier() string {
	if !k.IsValid() {
		return ""
	}
	return kinds[k].identifier
}

// Piece returns the shape category of the kind
func (k Kind) Piece() Piece {
	if !k.IsValid() {
		return PieceStraight
	}
	return kinds[k].piece
}

// Rotation returns the static rotation in degrees renderers apply to the
// kind's piece. Finish segments are rotated by entry side instead, see
// FinishRotation.
func (k Kind) Rotation() int {
	if !k.IsValid() {
		return 0
	}
	return kinds[k].rotation
}

// IsOpen reports whether the kind is statically open on side
func (k Kind) IsOpen(side world.Side) bool {
	if !k.IsValid() || !side.IsValid() {
		return false
	}
	return kinds[k].open[side]
}

// Openings returns the sides the kind is open on
func (k Kind) Openings() world.SideSet {
	out := world.NewSideSet()
	for _, side := range world.AllSides() {
		if k.IsOpen(side) {
			out.Put(side)
		}
	}
	return out
}

// MarshalText implements encoding.TextMarshaler
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ParseKind returns the kind with the given name
func ParseKind(name string) (Kind, bool) {
	for _, k := range AllKinds() {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}

// FinishRotation returns the rotation in degrees of a Finish cap whose open
// side faces entry
func FinishRotation(entry world.Side) int {
	switch entry {
	case world.Up:
		return 90
	case world.Down:
		return 270
	case world.Left:
		return 180
	default:
		return 0
	}
}
