package game

import (
	"time"

	"github.com/ardanlabs/connect4/cmd/connect/engine"
)

// Cell represents a cell in the game board.
type Cell struct {
	HasPiece bool   `json:"hasPiece"`
	Player   Player `json:"player"`
}

// LastMove represents the last move in the game. Column and row are 1 based
// with row 1 at the top.
type LastMove struct {
	Column int    `json:"column"`
	Row    int    `json:"row"`
	Player Player `json:"player"`
}

// Decision represents the last choice made by the automated player. Column
// is 1 based and Scores holds the root score of every column, with
// engine.NoScore for a full column.
type Decision struct {
	Column  int           `json:"column"`
	Score   int           `json:"score"`
	Scores  [cols]int     `json:"scores"`
	Nodes   int           `json:"nodes"`
	Cutoffs int           `json:"cutoffs"`
	Elapsed time.Duration `json:"elapsed"`
}

func newDecision(d engine.Decision, elapsed time.Duration) Decision {
	return Decision{
		Column:  d.Column + 1,
		Score:   d.Score,
		Scores:  d.Scores,
		Nodes:   d.Stats.Nodes,
		Cutoffs: d.Stats.Cutoffs,
		Elapsed: elapsed,
	}
}

// IsZero reports whether no decision was made yet.
func (d Decision) IsZero() bool {
	return d.Column == 0
}

// BoardState represent the state of the board for any UI to display.
type BoardState struct {
	GameID       string           `json:"gameID"`
	Cells        [cols][rows]Cell `json:"cells"`
	LastMove     LastMove         `json:"lastMove"`
	Turn         Player           `json:"turn"`
	Automated    bool             `json:"automated"`
	Decision     Decision         `json:"decision"`
	AIMessage    string           `json:"aiMessage"`
	GameMessage  string           `json:"gameMessage"`
	DebugMessage string           `json:"debugMessage"`
	GameOver     bool             `json:"gameOver"`
	Winner       Player           `json:"winner"`
}

// ToBoardState represents what we will get from an API.
func (b *Board) ToBoardState() BoardState {
	var cells [cols][rows]Cell
	for c := range b.cells {
		for r := range b.cells[c] {
			cells[c][r].HasPiece = b.cells[c][r].hasPiece
			cells[c][r].Player = b.cells[c][r].player
		}
	}

	return BoardState{
		GameID: b.ID(),
		Cells:  cells,
		LastMove: LastMove{
			Column: b.lastMove.column,
			Row:    b.lastMove.row,
			Player: b.lastMove.player,
		},
		Turn:         b.turn,
		Automated:    b.automated[b.turn.engine],
		Decision:     b.decision,
		AIMessage:    b.aiMessage,
		GameMessage:  b.gameMessage,
		DebugMessage: b.debugMessage,
		GameOver:     b.gameOver,
		Winner:       b.winner,
	}
}
