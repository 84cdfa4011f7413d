// Package game owns the live connect 4 board. Human and automated moves both
// end in DropPiece, which applies gravity, records the move, checks for the
// end of the game and passes the turn.
package game

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ardanlabs/connect4/cmd/connect/ai"
	"github.com/ardanlabs/connect4/cmd/connect/engine"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	rows = engine.Rows
	cols = engine.Cols
)

// Set of errors returned by Play.
var (
	ErrGameOver      = errors.New("game is over")
	ErrColumnFull    = errors.New("column is full")
	ErrInvalidColumn = errors.New("invalid column")
	ErrNotYourTurn   = errors.New("waiting on the automated player")
)

// Commentator produces the optional quips that follow automated moves and
// the end of a game. The player is the side the quip is spoken for.
type Commentator interface {
	Comment(ctx context.Context, feedback string, player string, blueMarkers int, redMarkers int, lastColumn int) (string, error)
	Speak(msg string)
}

// Settings provides the values needed to construct a game board.
type Settings struct {
	Search      engine.SearchConfig
	Automated   []Player
	First       Player
	Commentator Commentator
	Log         *zap.Logger
}

type cell struct {
	hasPiece bool
	player   Player
}

type lastMove struct {
	column int
	row    int
	player Player
}

// Board represents the game board and all its state. A Board is not safe
// for concurrent use.
type Board struct {
	id           uuid.UUID
	log          *zap.Logger
	selector     *engine.Selector
	commentator  Commentator
	automated    [2]bool
	randomFirst  bool
	first        Player
	turn         Player
	cells        [cols][rows]cell
	lastMove     lastMove
	decision     Decision
	aiMessage    string
	gameMessage  string
	debugMessage string
	gameOver     bool
	winner       Player
}

// New contructs a game board.
func New(settings Settings) (*Board, error) {
	selector, err := engine.NewSelector(settings.Search)
	if err != nil {
		return nil, fmt.Errorf("new selector: %w", err)
	}

	log := settings.Log
	if log == nil {
		log = zap.NewNop()
	}

	b := Board{
		log:         log,
		selector:    selector,
		commentator: settings.Commentator,
		first:       settings.First,
		randomFirst: settings.First.IsZero(),
	}

	for _, p := range settings.Automated {
		if p.IsZero() {
			return nil, errors.New("automated player is not set")
		}
		b.automated[p.engine] = true
	}

	if err := b.newGame(); err != nil {
		return nil, err
	}

	return &b, nil
}

// ID returns the identifier of the current game.
func (b *Board) ID() string {
	return b.id.String()
}

// Reset clears the board and starts a new game. The winner of the last game
// goes first unless the starting player was fixed in the settings.
func (b *Board) Reset() (BoardState, error) {
	if b.randomFirst && !b.winner.IsZero() {
		b.first = b.winner
	}

	if err := b.newGame(); err != nil {
		return BoardState{}, err
	}

	return b.ToBoardState(), nil
}

func (b *Board) newGame() error {
	if b.first.IsZero() {
		nBig, err := rand.Int(rand.Reader, big.NewInt(100))
		if err != nil {
			return fmt.Errorf("random number: %w", err)
		}

		b.first = Players.Blue
		if n := nBig.Int64(); n%2 == 0 {
			b.first = Players.Red
		}
	}

	b.id = uuid.New()
	b.cells = [cols][rows]cell{}
	b.turn = b.first
	b.lastMove = lastMove{column: 4, player: b.first.Other()}
	b.decision = Decision{}
	b.aiMessage = ""
	b.gameMessage = ""
	b.debugMessage = ""
	b.gameOver = false
	b.winner = Player{}

	b.log.Info("new game", zap.String("game", b.ID()), zap.Stringer("first", b.first))

	return nil
}

// =============================================================================

// AITurn plays for the automated player whose turn it is.
func (b *Board) AITurn(ctx context.Context) BoardState {
	b.clearMessages()

	if b.gameOver {
		b.gameMessage = ErrGameOver.Error()
		return b.ToBoardState()
	}

	if !b.automated[b.turn.engine] {
		b.gameMessage = fmt.Sprintf("the %s player is not automated", b.turn)
		return b.ToBoardState()
	}

	// -------------------------------------------------------------------------
	// Capture the threats on the board before the move is applied

	before := engine.Encode(b)
	player := b.turn
	threats := engine.WinningMoves(before, player.Other().engine)

	// -------------------------------------------------------------------------
	// Let the engine pick and play a column

	start := time.Now()
	d, dropped := b.selector.Update(b)
	elapsed := time.Since(start)

	if !dropped {
		b.gameMessage = "all cells are full"
		return b.ToBoardState()
	}

	b.decision = newDecision(d, elapsed)

	b.log.Info("ai decision",
		zap.String("game", b.ID()),
		zap.Stringer("player", player),
		zap.Int("column", d.Column+1),
		zap.Int("score", d.Score),
		zap.Int("nodes", d.Stats.Nodes),
		zap.Int("cutoffs", d.Stats.Cutoffs),
		zap.Duration("elapsed", elapsed))

	b.log.Debug("ai scores", zap.String("game", b.ID()), zap.Ints("scores", d.Scores[:]))

	// -------------------------------------------------------------------------
	// Generate the snarky response

	var feedback string
	switch {
	case b.gameOver && b.winner.IsZero():
		feedback = ai.FeedbackTie
	case b.gameOver:
		feedback = ai.FeedbackWon
	case contains(threats, d.Column):
		feedback = ai.FeedbackBlocked
	case len(engine.WinningMoves(engine.Encode(b), player.engine)) > 0:
		feedback = ai.FeedbackWillWin
	default:
		feedback = ai.FeedbackNormal
	}

	b.comment(ctx, feedback, player)

	return b.ToBoardState()
}

// UserTurn plays the user's choice. The column is 1 based to match the
// labels shown to the user. Any problem with the move is reported through
// the game message.
func (b *Board) UserTurn(column int) BoardState {
	b.clearMessages()

	if err := b.Play(column); err != nil {
		b.gameMessage = err.Error()
		return b.ToBoardState()
	}

	// -------------------------------------------------------------------------
	// Generate a lost or tie response if applicable

	if b.gameOver {
		feedback := ai.FeedbackLost
		if b.winner.IsZero() {
			feedback = ai.FeedbackTie
		}

		// The quip comes from the side that did not make the last move.
		b.comment(context.Background(), feedback, b.lastMove.player.Other())
	}

	return b.ToBoardState()
}

// Play drops a piece for the current human player into the 1 based column.
func (b *Board) Play(column int) error {
	if b.gameOver {
		return ErrGameOver
	}

	if column < 1 || column > cols {
		return fmt.Errorf("%w: %d", ErrInvalidColumn, column)
	}

	if b.automated[b.turn.engine] {
		return ErrNotYourTurn
	}

	if !b.DropPiece(column - 1) {
		return fmt.Errorf("%w: %d", ErrColumnFull, column)
	}

	return nil
}

// DropPiece places a piece for the current player into the 0 based column.
// It reports false when the game is over or the column has no room. After
// the drop the board is checked for a winner or a tie and the turn passes
// to the other player.
func (b *Board) DropPiece(col int) bool {
	if b.gameOver || col < 0 || col >= cols {
		return false
	}

	row := -1
	for i := rows - 1; i >= 0; i-- {
		if !b.cells[col][i].hasPiece {
			row = i
			break
		}
	}

	if row == -1 {
		return false
	}

	// Set this piece in the cells.
	b.cells[col][row] = cell{hasPiece: true, player: b.turn}

	// Mark this last move. The UI counts from 1.
	b.lastMove = lastMove{
		column: col + 1,
		row:    row + 1,
		player: b.turn,
	}

	b.log.Info("drop",
		zap.String("game", b.ID()),
		zap.Stringer("player", b.turn),
		zap.Int("column", col+1),
		zap.Int("row", row+1))

	b.checkForWinner()

	if !b.gameOver {
		b.turn = b.turn.Other()
	}

	return true
}

// =============================================================================

// StateString exports the board as one marker character per cell, row by
// row from the top.
func (b *Board) StateString() string {
	return engine.Encode(b).String()
}

// SetStateString replaces the board with the exported form. Cells beyond
// the data are cleared. The player with fewer markers moves next and a tie
// goes to the player who started.
func (b *Board) SetStateString(data string) BoardState {
	b.clearMessages()

	engine.Apply(engine.Decode(data, b), b)

	blue, red := b.Markers()
	switch {
	case blue < red:
		b.turn = Players.Blue
	case red < blue:
		b.turn = Players.Red
	default:
		b.turn = b.first
	}

	b.lastMove = lastMove{column: 4, player: b.turn.Other()}
	b.decision = Decision{}
	b.gameOver = false
	b.winner = Player{}

	b.checkForWinner()

	b.log.Info("load state",
		zap.String("game", b.ID()),
		zap.String("state", b.StateString()),
		zap.Stringer("turn", b.turn))

	return b.ToBoardState()
}

// Markers counts the pieces placed by each player.
func (b *Board) Markers() (blue int, red int) {
	for col := range b.cells {
		for _, c := range b.cells[col] {
			switch {
			case !c.hasPiece:
			case c.player == Players.Blue:
				blue++
			default:
				red++
			}
		}
	}

	return blue, red
}

// BoardData converts the game board into a text representation.
func (b *Board) BoardData() (boardData string, blue int, red int) {
	var data strings.Builder

	for row := range rows {
		data.WriteString("|")
		for col := range cols {
			cell := b.cells[col][row]
			switch {
			case !cell.hasPiece:
				data.WriteString("🟢|")
			case cell.player == Players.Blue:
				data.WriteString("🔵|")
				blue++
			default:
				data.WriteString("🔴|")
				red++
			}
		}
		data.WriteString("\n")
	}

	return data.String(), blue, red
}

// =============================================================================

// HasPiece implements the engine.LiveBoard interface.
func (b *Board) HasPiece(col int, row int) bool {
	return b.cells[col][row].hasPiece
}

// Owner implements the engine.LiveBoard interface.
func (b *Board) Owner(col int, row int) engine.Player {
	return b.cells[col][row].player.engine
}

// Place implements the engine.Placer interface.
func (b *Board) Place(col int, row int, player engine.Player) {
	b.cells[col][row] = cell{hasPiece: true, player: fromEngine(player)}
}

// Clear implements the engine.Placer interface.
func (b *Board) Clear(col int, row int) {
	b.cells[col][row] = cell{}
}

// CurrentPlayer implements the engine.Framework interface.
func (b *Board) CurrentPlayer() engine.Player {
	return b.turn.engine
}

// IsAutomated implements the engine.Framework interface.
func (b *Board) IsAutomated(player engine.Player) bool {
	return b.automated[player]
}

// =============================================================================

func (b *Board) clearMessages() {
	b.gameMessage = ""
	b.aiMessage = ""
	b.debugMessage = ""
}

// checkForWinner checks the current board to see if any player won and
// updates the game state.
func (b *Board) checkForWinner() {
	s := engine.Encode(b)

	if ep, won := engine.FindWinner(&s); won {
		b.winner = fromEngine(ep)
		b.gameOver = true
		b.gameMessage = fmt.Sprintf("The %s player has won", b.winner)
	}

	if !b.gameOver && s.IsFull() {
		b.gameOver = true
		b.gameMessage = "There was a Tie between the Blue and Red player"
	}

	if b.gameOver {
		b.log.Info("game over",
			zap.String("game", b.ID()),
			zap.Stringer("winner", b.winner),
			zap.String("state", s.String()))
	}
}

func (b *Board) comment(ctx context.Context, feedback string, player Player) {
	if b.commentator == nil {
		return
	}

	blue, red := b.Markers()

	response, err := b.commentator.Comment(ctx, feedback, player.String(), blue, red, b.lastMove.column)
	if err != nil {
		b.log.Warn("comment", zap.String("game", b.ID()), zap.String("feedback", feedback), zap.Error(err))
		b.debugMessage = err.Error()
		return
	}

	b.aiMessage = response
	b.commentator.Speak(response)
}

func contains(columns []int, col int) bool {
	for _, c := range columns {
		if c == col {
			return true
		}
	}
	return false
}
