package engine

// Decision is the outcome of a root search.
type Decision struct {
	Column int
	Score  int
	Scores [Cols]int
	Stats  SearchStats
}

// Best searches every playable column for the player and returns the
// column with the strictly greatest score. Ties keep the column that comes
// first in the configured order. Column is -1 when no column has room. The
// caller's state is left untouched.
func (sr *Searcher) Best(s State, player Player) Decision {
	sr.stats = SearchStats{}

	d := Decision{
		Column: -1,
		Score:  NoScore,
	}
	for i := range d.Scores {
		d.Scores[i] = NoScore
	}

	for _, col := range sr.cfg.Order {
		row := s.MakeMove(col, player)
		if row < 0 {
			continue
		}

		score := -sr.Negamax(&s, player.Other(), sr.cfg.Depth-1, -Infinity, Infinity)

		s.UndoMove(col, row)

		d.Scores[col] = score
		if score > d.Score {
			d.Score = score
			d.Column = col
		}
	}

	d.Stats = sr.stats

	return d
}

// =============================================================================

// Framework is the game surface the selector drives. DropPiece must be the
// same entry point a human move goes through.
type Framework interface {
	LiveBoard
	CurrentPlayer() Player
	IsAutomated(player Player) bool
	DropPiece(col int) bool
}

// Selector plays the automated side of a game.
type Selector struct {
	searcher *Searcher
}

// NewSelector constructs a selector for the specified search config.
func NewSelector(cfg SearchConfig) (*Selector, error) {
	sr, err := NewSearcher(cfg)
	if err != nil {
		return nil, err
	}

	return &Selector{searcher: sr}, nil
}

// Update plays one automated turn when the current player is automated and
// the game is still open. The boolean reports whether a piece was dropped.
func (sel *Selector) Update(fw Framework) (Decision, bool) {
	s := Encode(fw)

	if _, won := FindWinner(&s); won || s.IsFull() {
		return Decision{Column: -1, Score: NoScore}, false
	}

	player := fw.CurrentPlayer()
	if !fw.IsAutomated(player) {
		return Decision{Column: -1, Score: NoScore}, false
	}

	d := sel.searcher.Best(s, player)
	if d.Column < 0 {
		return d, false
	}

	return d, fw.DropPiece(d.Column)
}
