package board

import "github.com/ardanlabs/connect4/cmd/connect/game"

const (
	markerBlue  = "🔵"
	markerRed   = "🔴"
	markerEmpty = "  "
)

// marker returns the piece drawn for the player.
func marker(p game.Player) string {
	switch {
	case p.Equal(game.Players.Blue):
		return markerBlue
	case p.Equal(game.Players.Red):
		return markerRed
	}
	return markerEmpty
}

// winnerText returns the text shown in the winner dialog box.
func winnerText(bs game.BoardState) string {
	if bs.Winner.IsZero() {
		return "Tie Game"
	}
	return bs.Winner.String() + " (" + marker(bs.Winner) + ")"
}
