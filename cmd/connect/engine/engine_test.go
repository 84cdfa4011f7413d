package engine

import (
	"math/rand"
	"strings"
)

// board builds a state from six rows of seven marker characters, top row
// first. Spaces are ignored so rows can be aligned in tests.
func board(rows ...string) State {
	return ParseState(strings.ReplaceAll(strings.Join(rows, ""), " ", ""))
}

// randomPositions plays random legal moves from the empty board and
// returns positions without a winner, paired with the player to move.
func randomPositions(seed int64, n int, maxMoves int) ([]State, []Player) {
	rng := rand.New(rand.NewSource(seed))

	var states []State
	var players []Player

	for len(states) < n {
		var s State
		player := PlayerA

		moves := rng.Intn(maxMoves + 1)
		for i := 0; i < moves; i++ {
			col := rng.Intn(Cols)
			if s.MakeMove(col, player) < 0 {
				continue
			}
			player = player.Other()
		}

		if _, won := FindWinner(&s); won || s.IsFull() {
			continue
		}

		states = append(states, s)
		players = append(players, player)
	}

	return states, players
}

var drawnBoard = board(
	"1122112",
	"2211221",
	"1122112",
	"2211221",
	"1122112",
	"2211221",
)
