package board

import (
	"fmt"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
)

// pollEvents starts a goroutine to handle terminal events.
func (b *Board) pollEvents() chan struct{} {
	quit := make(chan struct{})

	go func() {
		defer func() {
			if r := recover(); r != nil {
				b.screen.Fini()
				fmt.Println(r)
				debug.PrintStack()
				close(quit)
			}
		}()

		// The automated player may be the one going first.
		b.aiTurn()

		for {
			event := b.screen.PollEvent()

			// The screen was shut down.
			if event == nil {
				close(quit)
				return
			}

			if _, isResize := event.(*tcell.EventResize); isResize {
				b.screen.Sync()
				b.drawInit()
				continue
			}

			// Check if we received a key event.
			ev, isEventKey := event.(*tcell.EventKey)
			if !isEventKey {
				continue
			}

			if b.handleKey(ev) {
				close(quit)
				return
			}
		}
	}()

	return quit
}

// handleKey processes a single key press. It reports true when the user
// asked to quit.
func (b *Board) handleKey(ev *tcell.EventKey) bool {
	keyType := ev.Key()

	// Allow the user to quit the game at any time.
	if keyType == tcell.KeyRune {
		switch ev.Rune() {
		case rune('q'):
			return true

		case rune('n'):
			b.newGame()
			b.aiTurn()
			return false

		case rune('s'):
			b.toggleSound()
			return false
		}
	}

	if b.modalUp {
		b.closeModal()
		return false
	}

	// Only a human player can control the piece.
	if b.boardState.GameOver || b.boardState.Automated {
		b.screen.Beep()
		return false
	}

	switch keyType {
	case tcell.KeyRune:
		if ev.Rune() == rune(' ') {
			b.userTurn()
			b.aiTurn()
		}

	case tcell.KeyLeft:
		b.movePlayerPiece(dirLeft)

	case tcell.KeyRight:
		b.movePlayerPiece(dirRight)

	case tcell.KeyEnter, tcell.KeyDown:
		b.userTurn()
		b.aiTurn()
	}

	return false
}
