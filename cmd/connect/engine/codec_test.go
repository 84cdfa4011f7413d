package engine

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type fakeCell struct {
	has    bool
	player Player
}

// fakeBoard is a minimal framework board addressed by column and row.
type fakeBoard struct {
	cells [Cols][Rows]fakeCell
}

func (fb *fakeBoard) HasPiece(col int, row int) bool { return fb.cells[col][row].has }
func (fb *fakeBoard) Owner(col int, row int) Player  { return fb.cells[col][row].player }

func (fb *fakeBoard) Place(col int, row int, player Player) {
	fb.cells[col][row] = fakeCell{has: true, player: player}
}

func (fb *fakeBoard) Clear(col int, row int) {
	fb.cells[col][row] = fakeCell{}
}

// =============================================================================

func TestEncode(t *testing.T) {
	var fb fakeBoard
	fb.Place(0, 5, PlayerA)
	fb.Place(1, 5, PlayerB)
	fb.Place(1, 4, PlayerA)

	s := Encode(&fb)

	want := strings.Repeat("0", 29) + "1" + "00000" + "12" + "00000"
	if diff := cmp.Diff(want, s.String()); diff != "" {
		t.Fatalf("encode mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeOps(t *testing.T) {
	var fb fakeBoard
	fb.Place(0, 0, PlayerA) // kept
	fb.Place(1, 0, PlayerA) // replaced by B
	fb.Place(2, 0, PlayerB) // cleared

	data := "120" + "1"

	instrs := Decode(data, &fb)
	if len(instrs) != Cells {
		t.Fatalf("expected %d instructions, got %d", Cells, len(instrs))
	}

	want := []Instruction{
		{Col: 0, Row: 0, Op: OpNoOp},
		{Col: 1, Row: 0, Op: OpPlaceB},
		{Col: 2, Row: 0, Op: OpClear},
		{Col: 3, Row: 0, Op: OpPlaceA},
		{Col: 4, Row: 0, Op: OpNoOp},
	}
	if diff := cmp.Diff(want, instrs[:5]); diff != "" {
		t.Fatalf("instruction mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeShortDataClearsRemainder(t *testing.T) {
	var fb fakeBoard
	fb.Place(6, 5, PlayerB)

	instrs := Decode("1", &fb)

	last := instrs[Cells-1]
	if last.Col != 6 || last.Row != 5 || last.Op != OpClear {
		t.Fatalf("expected last cell to be cleared, got %+v", last)
	}

	Apply(instrs, &fb)
	got := Encode(&fb)
	if diff := cmp.Diff("1"+strings.Repeat("0", Cells-1), got.String()); diff != "" {
		t.Fatalf("board mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeNilLiveBoard(t *testing.T) {
	instrs := Decode("21", nil)

	if instrs[0].Op != OpPlaceB || instrs[1].Op != OpPlaceA {
		t.Fatalf("expected place ops, got %v %v", instrs[0].Op, instrs[1].Op)
	}
	for _, in := range instrs[2:] {
		if in.Op != OpClear {
			t.Fatalf("expected clear for (%d,%d), got %v", in.Col, in.Row, in.Op)
		}
	}
}

func TestDecodeApplyRoundTrip(t *testing.T) {
	states, _ := randomPositions(3, 20, 30)

	var fb fakeBoard
	for _, s := range states {
		Apply(Decode(s.String(), &fb), &fb)

		got := Encode(&fb)
		if diff := cmp.Diff(s.String(), got.String()); diff != "" {
			t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
		}

		for _, in := range Decode(s.String(), &fb) {
			if in.Op != OpNoOp {
				t.Fatalf("expected no-op after apply, got %v at (%d,%d)", in.Op, in.Col, in.Row)
			}
		}
	}
}
