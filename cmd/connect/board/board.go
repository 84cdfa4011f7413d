// Package board handles the game board and all interactions.
package board

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ardanlabs/connect4/cmd/connect/engine"
	"github.com/ardanlabs/connect4/cmd/connect/game"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	rows        = engine.Rows
	cols        = engine.Cols
	cellWidth   = 5
	cellHeight  = 2
	boardWidth  = cols*cellWidth + 1
	boardHeight = rows * cellHeight
	padTop      = 4
	padLeft     = 1
)

// Side panel layout.
const (
	panelLeft   = boardWidth + 3
	aiTop       = padTop + 3
	aiBottom    = aiTop + 10
	debugTop    = aiBottom + 1
	debugBottom = debugTop + 8
	messageTop  = boardHeight + padTop + 3
)

const (
	hozTopRune = '━'
	hozBotRune = '▅'
	verRune    = '┃'
	space      = 32
)

const (
	dirLeft  = "left"
	dirRight = "right"
)

const dropDelay = 150 * time.Millisecond

// Sound represents the ability to turn the spoken commentary on and off.
type Sound interface {
	TurnSoundOnOff() bool
}

// Board represents the game board and all its state.
type Board struct {
	game       *game.Board
	sound      Sound
	soundOn    bool
	screen     tcell.Screen
	style      tcell.Style
	printer    *message.Printer
	boardState game.BoardState
	inputCol   int
	lastWinner string
	modalUp    bool
	modalShut  bool
	dropDelay  time.Duration
}

// New contructs a game board and renders the board. When screen is nil the
// terminal is used. The sound value may be nil when there is no commentary.
func New(g *game.Board, sound Sound, screen tcell.Screen) (*Board, error) {
	if screen == nil {
		tcell.SetEncodingFallback(tcell.EncodingFallbackASCII)

		var err error
		screen, err = tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("new screen: %w", err)
		}
	}

	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("screen init: %w", err)
	}

	style := tcell.StyleDefault
	style = style.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)

	board := Board{
		game:       g,
		sound:      sound,
		screen:     screen,
		style:      style,
		printer:    message.NewPrinter(language.English),
		boardState: g.ToBoardState(),
		inputCol:   4,
		dropDelay:  dropDelay,
	}

	board.drawInit()

	return &board, nil
}

// SetSound records the starting state of the sound for display.
func (b *Board) SetSound(on bool) {
	b.soundOn = on
	b.printStatus()
}

// Shutdown tears down the game board.
func (b *Board) Shutdown() {
	b.screen.Fini()
}

// Run starts a goroutine to handle terminal events. The returned channel is
// closed when the user quits.
func (b *Board) Run() chan struct{} {
	return b.pollEvents()
}

// =============================================================================

func (b *Board) newGame() {
	bs, err := b.game.Reset()
	if err != nil {
		b.boardState.GameMessage = err.Error()
		b.printMessages()
		return
	}

	b.boardState = bs
	b.inputCol = 4
	b.modalUp = false
	b.modalShut = false

	b.drawInit()
}

func (b *Board) userTurn() {
	before := b.boardState.LastMove

	b.boardState = b.game.UserTurn(b.inputCol)

	b.applyBoardState(b.boardState.LastMove != before)
}

// aiTurn plays until a human player is to move or the game is over. When
// both players are automated the whole game is played out.
func (b *Board) aiTurn() {
	for !b.boardState.GameOver && b.boardState.Automated {
		b.printPanel(aiTop+1, aiBottom, "- RUNNING AI")

		before := b.boardState.LastMove
		b.boardState = b.game.AITurn(context.Background())

		moved := b.boardState.LastMove != before
		b.applyBoardState(moved)

		if !moved {
			return
		}
	}
}

// =============================================================================

func (b *Board) drawInit() {
	b.drawEmptyGameBoard()
	b.applyBoardState(false)
}

func (b *Board) drawEmptyGameBoard() {
	b.screen.Clear()

	width := boardWidth
	height := boardHeight

	style := b.style
	style = style.Background(tcell.ColorBlack).Foreground(tcell.ColorGrey)

	for h := 0; h <= height; h++ {
		for w := 0; w < width; w++ {

			// Clear the entire line.
			b.screen.SetContent(w+padLeft, h+padTop, space, nil, style)

			if h == 0 || h%cellHeight == 0 {

				// These are the '━' characters creating each row.
				b.screen.SetContent(w+padLeft, h+padTop, hozTopRune, nil, style)

				if h == height {

					// These are the '▅' characters creating the bottom row.
					b.screen.SetContent(w+padLeft, h+padTop, hozBotRune, nil, style)
				}
			}

			if w == 0 || w%cellWidth == 0 {

				// These are the '┃' characters creating each column.
				b.screen.SetContent(w+padLeft, h+padTop, verRune, nil, style)
			}
		}
	}

	b.print(10, 1, "Connect 4 AI Version")
	b.print(0, boardHeight+padTop+1, "   ①    ②    ③    ④    ⑤    ⑥    ⑦")

	b.print(panelLeft, padTop-1, "<n> new game  <s> sound  <q> quit")

	screenWidth, _ := b.screen.Size()

	b.drawBox(panelLeft, aiTop, boardWidth+(screenWidth-boardWidth-2), aiBottom)
	b.print(panelLeft+1, aiTop, " AI PLAYER ")

	b.drawBox(panelLeft, debugTop, boardWidth+(screenWidth-boardWidth-2), debugBottom)
	b.print(panelLeft+1, debugTop, " SEARCH ")
}

// applyBoardState draws the pieces and messages from the current board
// state. With animate set the last move is dropped into place.
func (b *Board) applyBoardState(animate bool) {
	bs := b.boardState
	lm := bs.LastMove

	for col := range bs.Cells {
		for row, cell := range bs.Cells[col] {
			if animate && col == lm.Column-1 && row == lm.Row-1 {
				continue
			}

			piece := markerEmpty
			if cell.HasPiece {
				piece = marker(cell.Player)
			}
			b.print(cellX(col), cellY(row), piece)
		}
	}

	if animate && lm.Row > 0 {
		b.dropPiece(lm)
	}

	b.drawInputMarker()
	b.printMessages()

	if bs.GameOver && !b.modalShut {
		b.showWinner()
	}

	b.screen.Show()
}

// dropPiece animates the piece from the top of the column into its row.
func (b *Board) dropPiece(lm game.LastMove) {
	column := cellX(lm.Column - 1)
	piece := marker(lm.Player)

	// Clear the marker.
	b.print(column, padTop-1, markerEmpty)

	for r := 0; r < lm.Row; r++ {
		b.print(column, cellY(r), piece)

		if r < lm.Row-1 {
			if b.dropDelay > 0 {
				time.Sleep(b.dropDelay)
			}
			b.print(column, cellY(r), markerEmpty)
		}
	}
}

func (b *Board) drawInputMarker() {
	b.print(padLeft, padTop-1, strings.Repeat(" ", boardWidth))

	bs := b.boardState
	if bs.GameOver || bs.Automated {
		return
	}

	b.print(cellX(b.inputCol-1), padTop-1, marker(bs.Turn))
}

func (b *Board) movePlayerPiece(direction string) {
	if b.boardState.GameOver || b.boardState.Automated {
		return
	}

	switch {
	case direction == dirLeft && b.inputCol > 1:
		b.inputCol--
	case direction == dirRight && b.inputCol < cols:
		b.inputCol++
	default:
		return
	}

	b.drawInputMarker()
}

func (b *Board) toggleSound() {
	if b.sound == nil {
		b.boardState.GameMessage = "commentary is not enabled"
		b.printMessages()
		return
	}

	b.soundOn = b.sound.TurnSoundOnOff()
	b.printStatus()
}

// =============================================================================

func (b *Board) printMessages() {
	bs := b.boardState

	b.printStatus()
	b.print(0, messageTop, strings.Repeat(" ", boardWidth+2))
	b.print(padLeft, messageTop, bs.GameMessage)

	b.printPanel(aiTop+1, aiBottom, bs.AIMessage)
	b.printPanel(debugTop+1, debugBottom, b.debugText())
}

func (b *Board) printStatus() {
	sound := "off"
	if b.soundOn {
		sound = "on"
	}

	turn := b.boardState.Turn.String()
	if b.boardState.GameOver {
		turn = "-"
	}

	b.print(panelLeft, padTop+1, fmt.Sprintf("Last Winner: %-12s Turn: %-5s Sound: %-3s", b.lastWinner, turn, sound))
}

// debugText formats the last decision made by the automated player.
func (b *Board) debugText() string {
	bs := b.boardState
	d := bs.Decision

	var text []string

	if !d.IsZero() {
		scores := make([]string, len(d.Scores))
		for i, s := range d.Scores {
			switch {
			case s == engine.NoScore:
				scores[i] = "-"
			default:
				scores[i] = b.printer.Sprintf("%d", s)
			}
		}

		text = append(text,
			b.printer.Sprintf("COLUMN: %d SCORE: %d", d.Column, d.Score),
			b.printer.Sprintf("NODES: %d CUTOFFS: %d TIME: %s", d.Nodes, d.Cutoffs, d.Elapsed.Round(time.Microsecond)),
			"SCORES: "+strings.Join(scores, " "),
		)
	}

	if bs.DebugMessage != "" {
		text = append(text, bs.DebugMessage)
	}

	return strings.Join(text, " CRLF ")
}

// showWinner displays a modal dialog box.
func (b *Board) showWinner() {
	msg := winnerText(b.boardState)
	b.lastWinner = msg
	b.modalUp = true

	b.printStatus()

	b.screen.HideCursor()
	b.drawBox(5, 8, 33, 13)

	l := runewidth.StringWidth(msg)
	b.print(19-(l/2), 10, msg)
}

// closeModal closes the modal dialog box.
func (b *Board) closeModal() {
	b.modalUp = false
	b.modalShut = true

	b.drawInit()
}

// drawBox draws an empty box on the screen.
func (b *Board) drawBox(x int, y int, width int, height int) {
	style := b.style
	style = style.Background(tcell.ColorBlack).Foreground(tcell.ColorGray)

	for h := y; h < height; h++ {
		for w := x; w < width; w++ {
			b.screen.SetContent(w, h, ' ', nil, b.style)
		}
	}

	for h := y; h < height; h++ {
		for w := x; w < width; w++ {
			if h == y {
				b.screen.SetContent(w, h, '▀', nil, style)
			}
			if h == height-1 {
				b.screen.SetContent(w, h, '▄', nil, style)
			}
			if w == x || w == width-1 {
				b.screen.SetContent(w, h, '█', nil, style)
			}
		}
	}

	b.screen.Show()
}

func (b *Board) print(x, y int, str string) {
	for _, c := range str {
		var comb []rune
		w := runewidth.RuneWidth(c)
		if w == 0 {
			comb = []rune{c}
			c = ' '
			w = 1
		}
		b.screen.SetContent(x, y, c, comb, b.style)
		x += w
	}
	b.screen.Show()
}

// printPanel clears the inside of a side panel and word wraps the text
// into it. The word CRLF starts a new line.
func (b *Board) printPanel(top int, bottom int, text string) {
	screenWidth, _ := b.screen.Size()
	actWidth := screenWidth - boardWidth - 9

	left := boardWidth + 5

	for line := top; line < bottom-1; line++ {
		b.print(left, line, strings.Repeat(" ", max(actWidth, 0)))
	}

	col := left
	line := top

	scanner := bufio.NewScanner(bytes.NewReader([]byte(text)))
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() && line < bottom-1 {
		word := scanner.Text()
		if word == "CRLF" {
			line++
			col = left
			continue
		}

		if col > left && col+runewidth.StringWidth(word) >= left+actWidth {
			line++
			col = left
			if line >= bottom-1 {
				break
			}
		}

		b.print(col, line, word)

		col += runewidth.StringWidth(word) + 1
	}
}

func cellX(col int) int {
	return padLeft + 2 + cellWidth*col
}

func cellY(row int) int {
	return padTop + 1 + cellHeight*row
}
