package engine

import "strings"

// State is the compact board snapshot used by the search. Cells are stored
// row-major with row 0 at the top, so index = row*Cols + col. State is a
// value type; copying it copies the board.
type State [Cells]Cell

// ParseState imports the exported marker string. Characters other than '1'
// and '2' are read as empty and missing trailing cells stay empty.
func ParseState(s string) State {
	var st State
	for i := 0; i < Cells && i < len(s); i++ {
		st[i] = cellFromByte(s[i])
	}
	return st
}

// String exports the state as one marker character per cell.
func (s State) String() string {
	var b strings.Builder
	b.Grow(Cells)
	for _, c := range s {
		b.WriteByte(c.Byte())
	}
	return b.String()
}

// At returns the cell at the specified column and row.
func (s *State) At(col int, row int) Cell {
	return s[row*Cols+col]
}

// DropRow returns the row a piece dropped into the column would land in. It
// returns -1 when the column is full or out of range.
func (s *State) DropRow(col int) int {
	if col < 0 || col >= Cols {
		return -1
	}

	for row := Rows - 1; row >= 0; row-- {
		if s[row*Cols+col] == Empty {
			return row
		}
	}

	return -1
}

// MakeMove drops the player's marker into the column and returns the row
// that was filled, or -1 when there is no room.
func (s *State) MakeMove(col int, player Player) int {
	row := s.DropRow(col)
	if row < 0 {
		return -1
	}

	s[row*Cols+col] = player.Marker()

	return row
}

// UndoMove clears a cell filled by MakeMove. A negative row is ignored so
// the result of a failed MakeMove can be passed straight back.
func (s *State) UndoMove(col int, row int) {
	if row < 0 || col < 0 || col >= Cols || row >= Rows {
		return
	}

	s[row*Cols+col] = Empty
}

// IsFull reports whether no empty cell remains.
func (s *State) IsFull() bool {
	for _, c := range s {
		if c == Empty {
			return false
		}
	}
	return true
}

// Markers counts the markers placed by each player.
func (s *State) Markers() (a int, b int) {
	for _, c := range s {
		switch c {
		case MarkerA:
			a++
		case MarkerB:
			b++
		}
	}
	return a, b
}

// Swap returns the state with every marker handed to the other player.
func (s State) Swap() State {
	for i, c := range s {
		switch c {
		case MarkerA:
			s[i] = MarkerB
		case MarkerB:
			s[i] = MarkerA
		}
	}
	return s
}
