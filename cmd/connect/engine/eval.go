package engine

// Heuristic weights. Opponent threats weigh more than the matching own
// threat so blocking is preferred over building.
const (
	centerWeight = 6

	ownFour  = 100000
	ownThree = 50
	ownTwo   = 10

	oppFour  = -100000
	oppThree = -80
	oppTwo   = -10
)

// Evaluate scores a position from the player's point of view. It is only
// meaningful for positions the search did not already score as terminal.
func Evaluate(s *State, player Player) int {
	me := player.Marker()
	opp := player.Other().Marker()

	var score int

	for row := 0; row < Rows; row++ {
		switch s[row*Cols+center] {
		case me:
			score += centerWeight
		case opp:
			score -= centerWeight
		}
	}

	for _, w := range windows {
		score += scoreWindow(s, w, me, opp)
	}

	return score
}

func scoreWindow(s *State, w window, me Cell, opp Cell) int {
	var m, o, e int
	for _, idx := range w {
		switch s[idx] {
		case me:
			m++
		case opp:
			o++
		default:
			e++
		}
	}

	switch {
	case m == 4:
		return ownFour
	case m == 3 && e == 1:
		return ownThree
	case m == 2 && e == 2:
		return ownTwo
	case o == 4:
		return oppFour
	case o == 3 && e == 1:
		return oppThree
	case o == 2 && e == 2:
		return oppTwo
	}

	return 0
}
