package engine

import (
	"errors"
	"fmt"
)

// Score bounds. A decided position scores WinScore plus the remaining depth
// so faster wins and slower losses are preferred.
const (
	WinScore = 1_000_000
	Infinity = 1_000_000_000
)

// NoScore marks a root column that could not be played.
const NoScore = -Infinity - 1

// SearchConfig controls the depth and the column order used by the search.
type SearchConfig struct {
	Depth int
	Order [Cols]int
}

// DefaultSearchConfig returns the settings used by the game: four plies,
// center column first and then alternating outward.
func DefaultSearchConfig() SearchConfig {
	return SearchConfig{
		Depth: 4,
		Order: [Cols]int{3, 2, 4, 1, 5, 0, 6},
	}
}

// Validate checks the depth is positive and the order visits every column
// exactly once.
func (cfg SearchConfig) Validate() error {
	if cfg.Depth < 1 {
		return fmt.Errorf("search depth must be >= 1, got %d", cfg.Depth)
	}

	var seen [Cols]bool
	for _, col := range cfg.Order {
		if col < 0 || col >= Cols {
			return fmt.Errorf("column %d in search order is out of range", col)
		}
		if seen[col] {
			return fmt.Errorf("column %d appears twice in search order", col)
		}
		seen[col] = true
	}

	return nil
}

// ErrInvalidConfig is returned by NewSearcher for a config that fails
// validation.
var ErrInvalidConfig = errors.New("invalid search config")

// SearchStats counts the work done by a search.
type SearchStats struct {
	Nodes     int
	Terminals int
	Evals     int
	Cutoffs   int
}

// =============================================================================

// Searcher runs a depth limited negamax search with alpha-beta pruning. A
// Searcher is not safe for concurrent use; each decision owns its state
// buffer and the stats are reset per Best call.
type Searcher struct {
	cfg   SearchConfig
	stats SearchStats
}

// NewSearcher constructs a searcher for the specified config.
func NewSearcher(cfg SearchConfig) (*Searcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return &Searcher{cfg: cfg}, nil
}

// Config returns the config the searcher was built with.
func (sr *Searcher) Config() SearchConfig {
	return sr.cfg
}

// Stats returns the counters accumulated since the last Best call.
func (sr *Searcher) Stats() SearchStats {
	return sr.stats
}

// Negamax scores the position for the player to move. The state is mutated
// while searching and restored before returning. A position that already
// holds four in a row is scored as a win or loss regardless of depth.
func (sr *Searcher) Negamax(s *State, player Player, depth int, alpha int, beta int) int {
	sr.stats.Nodes++

	if winner, won := FindWinner(s); won {
		sr.stats.Terminals++
		if winner == player {
			return WinScore + depth
		}
		return -(WinScore + depth)
	}

	if depth == 0 || s.IsFull() {
		sr.stats.Evals++
		return Evaluate(s, player)
	}

	best := -Infinity
	var moved bool

	for _, col := range sr.cfg.Order {
		row := s.MakeMove(col, player)
		if row < 0 {
			continue
		}
		moved = true

		score := -sr.Negamax(s, player.Other(), depth-1, -beta, -alpha)

		s.UndoMove(col, row)

		if score > best {
			best = score
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			sr.stats.Cutoffs++
			break
		}
	}

	if !moved {
		return 0
	}

	return best
}
