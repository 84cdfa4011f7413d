package engine

// LiveBoard is the read side of a board owned by a game framework. Cells are
// addressed by column and row with row 0 at the top.
type LiveBoard interface {
	HasPiece(col int, row int) bool
	Owner(col int, row int) Player
}

// Placer is the write side of a board owned by a game framework.
type Placer interface {
	Place(col int, row int, player Player)
	Clear(col int, row int)
}

// Op describes what the framework must do to a single cell.
type Op uint8

// Set of decode operations.
const (
	OpNoOp Op = iota
	OpPlaceA
	OpPlaceB
	OpClear
)

var opNames = [...]string{"noop", "place-a", "place-b", "clear"}

// String implements the fmt.Stringer interface.
func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return "unknown"
}

// Instruction is a decode operation for one cell.
type Instruction struct {
	Col int
	Row int
	Op  Op
}

// =============================================================================

// Encode reads every cell of the live board into a compact state.
func Encode(live LiveBoard) State {
	var s State
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			if !live.HasPiece(col, row) {
				continue
			}
			s[row*Cols+col] = live.Owner(col, row).Marker()
		}
	}
	return s
}

// Decode produces the instructions needed to turn the live board into the
// board described by the exported marker string. Cells whose index falls
// outside the data are cleared. A cell that already holds the wanted content
// yields OpNoOp. When live is nil every cell gets a place or clear.
func Decode(data string, live LiveBoard) []Instruction {
	instrs := make([]Instruction, 0, Cells)

	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			idx := row*Cols + col

			want := Empty
			if idx < len(data) {
				want = cellFromByte(data[idx])
			}

			instrs = append(instrs, Instruction{
				Col: col,
				Row: row,
				Op:  decodeOp(want, col, row, live),
			})
		}
	}

	return instrs
}

func decodeOp(want Cell, col int, row int, live LiveBoard) Op {
	if live != nil {
		var have Cell
		if live.HasPiece(col, row) {
			have = live.Owner(col, row).Marker()
		}

		if have == want {
			return OpNoOp
		}
	}

	switch want {
	case MarkerA:
		return OpPlaceA
	case MarkerB:
		return OpPlaceB
	}
	return OpClear
}

// Apply executes the instructions against the framework board.
func Apply(instrs []Instruction, p Placer) {
	for _, in := range instrs {
		switch in.Op {
		case OpPlaceA:
			p.Place(in.Col, in.Row, PlayerA)
		case OpPlaceB:
			p.Place(in.Col, in.Row, PlayerB)
		case OpClear:
			p.Clear(in.Col, in.Row)
		}
	}
}
