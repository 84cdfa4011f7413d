package engine

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// plainNegamax is the same search without pruning.
func plainNegamax(s *State, player Player, depth int, order [Cols]int, nodes *int) int {
	*nodes++

	if winner, won := FindWinner(s); won {
		if winner == player {
			return WinScore + depth
		}
		return -(WinScore + depth)
	}

	if depth == 0 || s.IsFull() {
		return Evaluate(s, player)
	}

	best := -Infinity
	var moved bool
	for _, col := range order {
		row := s.MakeMove(col, player)
		if row < 0 {
			continue
		}
		moved = true

		if score := -plainNegamax(s, player.Other(), depth-1, order, nodes); score > best {
			best = score
		}

		s.UndoMove(col, row)
	}

	if !moved {
		return 0
	}

	return best
}

func newSearcher(t *testing.T, cfg SearchConfig) *Searcher {
	t.Helper()

	sr, err := NewSearcher(cfg)
	if err != nil {
		t.Fatalf("NewSearcher: %s", err)
	}

	return sr
}

// =============================================================================

func TestSearchConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  SearchConfig
		ok   bool
	}{
		{"default", DefaultSearchConfig(), true},
		{"depth one", SearchConfig{Depth: 1, Order: [Cols]int{0, 1, 2, 3, 4, 5, 6}}, true},
		{"zero depth", SearchConfig{Depth: 0, Order: DefaultSearchConfig().Order}, false},
		{"negative depth", SearchConfig{Depth: -2, Order: DefaultSearchConfig().Order}, false},
		{"duplicate column", SearchConfig{Depth: 4, Order: [Cols]int{3, 3, 4, 1, 5, 0, 6}}, false},
		{"out of range", SearchConfig{Depth: 4, Order: [Cols]int{3, 2, 4, 1, 5, 0, 7}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSearcher(tt.cfg)
			if tt.ok {
				if err != nil {
					t.Fatalf("expected no error, got %s", err)
				}
				return
			}

			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestNegamaxMatchesUnpruned(t *testing.T) {
	cfg := DefaultSearchConfig()
	sr := newSearcher(t, cfg)

	states, players := randomPositions(7, 30, 16)

	for i, s := range states {
		before := s

		var nodes int
		want := plainNegamax(&s, players[i], 3, cfg.Order, &nodes)
		got := sr.Negamax(&s, players[i], 3, -Infinity, Infinity)

		if got != want {
			t.Fatalf("position %d %s: expected score %d, got %d", i, before, want, got)
		}
		if s != before {
			t.Fatalf("position %d: state was not restored", i)
		}
	}
}

func TestNegamaxTerminal(t *testing.T) {
	sr := newSearcher(t, DefaultSearchConfig())

	won := board(
		"0000000",
		"0000000",
		"0000000",
		"0000000",
		"2220000",
		"1111000",
	)

	for _, depth := range []int{0, 2} {
		if got := sr.Negamax(&won, PlayerA, depth, -Infinity, Infinity); got != WinScore+depth {
			t.Errorf("depth %d winner to move: expected %d, got %d", depth, WinScore+depth, got)
		}
		if got := sr.Negamax(&won, PlayerB, depth, -Infinity, Infinity); got != -(WinScore + depth) {
			t.Errorf("depth %d loser to move: expected %d, got %d", depth, -(WinScore + depth), got)
		}
	}

	draw := drawnBoard
	if got := sr.Negamax(&draw, PlayerA, 3, -Infinity, Infinity); got != Evaluate(&draw, PlayerA) {
		t.Errorf("full board: expected the evaluation %d, got %d", Evaluate(&draw, PlayerA), got)
	}
}

func TestNegamaxSymmetry(t *testing.T) {
	sr := newSearcher(t, DefaultSearchConfig())

	states, players := randomPositions(13, 20, 20)

	for i, s := range states {
		swapped := s.Swap()

		a := sr.Negamax(&s, players[i], 3, -Infinity, Infinity)
		b := sr.Negamax(&swapped, players[i].Other(), 3, -Infinity, Infinity)
		if a != b {
			t.Fatalf("position %d: expected %d after swap, got %d", i, a, b)
		}
	}
}

func TestPruningSavesWork(t *testing.T) {
	cfg := DefaultSearchConfig()
	sr := newSearcher(t, cfg)

	var s State
	d := sr.Best(s, PlayerA)

	var unpruned int
	for _, col := range cfg.Order {
		row := s.MakeMove(col, PlayerA)
		plainNegamax(&s, PlayerB, cfg.Depth-1, cfg.Order, &unpruned)
		s.UndoMove(col, row)
	}

	if unpruned != 2800 {
		t.Fatalf("expected 2800 unpruned nodes, got %d", unpruned)
	}
	if d.Stats.Nodes >= unpruned {
		t.Fatalf("expected fewer than %d nodes, got %d", unpruned, d.Stats.Nodes)
	}
	if d.Stats.Cutoffs == 0 {
		t.Fatalf("expected at least one cutoff")
	}
	if diff := cmp.Diff(d.Stats, sr.Stats()); diff != "" {
		t.Fatalf("stats mismatch (-decision +searcher):\n%s", diff)
	}
}
