package engine

// window is a run of 4 cell indexes along one axis.
type window [4]int

// windows holds every 4 cell run on the board: 24 horizontal, 21 vertical,
// 12 on each diagonal.
var windows = buildWindows()

func buildWindows() []window {
	ws := make([]window, 0, 69)

	add := func(col int, row int, dCol int, dRow int) {
		var w window
		for i := range w {
			w[i] = (row+i*dRow)*Cols + (col + i*dCol)
		}
		ws = append(ws, w)
	}

	// Horizontal.
	for row := 0; row < Rows; row++ {
		for col := 0; col <= Cols-4; col++ {
			add(col, row, 1, 0)
		}
	}

	// Vertical.
	for col := 0; col < Cols; col++ {
		for row := 0; row <= Rows-4; row++ {
			add(col, row, 0, 1)
		}
	}

	// Diagonal running down and to the right.
	for col := 0; col <= Cols-4; col++ {
		for row := 0; row <= Rows-4; row++ {
			add(col, row, 1, 1)
		}
	}

	// Diagonal running up and to the right.
	for col := 0; col <= Cols-4; col++ {
		for row := 3; row < Rows; row++ {
			add(col, row, 1, -1)
		}
	}

	return ws
}

// FindWinner returns the player owning four markers in a line. The boolean
// is false when no window is complete. When more than one line exists the
// first one found is reported.
func FindWinner(s *State) (Player, bool) {
	for _, w := range windows {
		c := s[w[0]]
		if c == Empty {
			continue
		}

		if c == s[w[1]] && c == s[w[2]] && c == s[w[3]] {
			return c.Player()
		}
	}

	return PlayerA, false
}

// IsDraw reports a full board without a winner.
func IsDraw(s *State) bool {
	if !s.IsFull() {
		return false
	}

	_, won := FindWinner(s)
	return !won
}

// WinningMoves returns the columns, in ascending order, where a drop by the
// player completes four in a row.
func WinningMoves(s State, player Player) []int {
	var cols []int

	for col := 0; col < Cols; col++ {
		row := s.MakeMove(col, player)
		if row < 0 {
			continue
		}

		if winner, won := FindWinner(&s); won && winner == player {
			cols = append(cols, col)
		}

		s.UndoMove(col, row)
	}

	return cols
}
