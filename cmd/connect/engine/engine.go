// Package engine implements the Connect 4 rules and the automated player.
// The package works on a compact 42 cell value type and never touches a
// live board directly. Boards owned by a UI or game framework are converted
// with Encode and restored with Decode.
package engine

// Board dimensions.
const (
	Cols  = 7
	Rows  = 6
	Cells = Cols * Rows
)

// center is the column that earns the positional bonus.
const center = Cols / 2

// =============================================================================

// Cell represents the content of a single board position.
type Cell uint8

// Set of cell values. The numeric value doubles as the marker character
// offset from '0' in the exported state string.
const (
	Empty Cell = iota
	MarkerA
	MarkerB
)

// Byte returns the marker character used in the exported state string.
func (c Cell) Byte() byte {
	switch c {
	case MarkerA:
		return '1'
	case MarkerB:
		return '2'
	}
	return '0'
}

// String implements the fmt.Stringer interface.
func (c Cell) String() string {
	return string(c.Byte())
}

// Player returns the player owning the marker. The boolean is false for an
// empty cell.
func (c Cell) Player() (Player, bool) {
	switch c {
	case MarkerA:
		return PlayerA, true
	case MarkerB:
		return PlayerB, true
	}
	return PlayerA, false
}

func cellFromByte(b byte) Cell {
	switch b {
	case '1':
		return MarkerA
	case '2':
		return MarkerB
	}
	return Empty
}

// =============================================================================

// Player identifies one of the two sides. The search is defined relative to
// the player to move, so neither side is special.
type Player int

// Set of players.
const (
	PlayerA Player = 0
	PlayerB Player = 1
)

// Other returns the opponent.
func (p Player) Other() Player {
	return 1 - p
}

// Marker returns the cell value placed by this player.
func (p Player) Marker() Cell {
	if p == PlayerB {
		return MarkerB
	}
	return MarkerA
}

// String implements the fmt.Stringer interface.
func (p Player) String() string {
	if p == PlayerB {
		return "B"
	}
	return "A"
}
