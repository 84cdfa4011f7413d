// Package ai provides the commentary that accompanies the automated player.
// The moves are chosen by the engine; the LLM only produces a one line quip
// about the game which can be spoken out loud.
package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"
)

// Set of feedback values used to select the commentary prompt.
const (
	FeedbackNormal  = "Normal-GamePlay"
	FeedbackBlocked = "Blocked-Win"
	FeedbackWillWin = "Will-Win"
	FeedbackWon     = "Won-Game"
	FeedbackLost    = "Lost-Game"
	FeedbackTie     = "Tie-Game"
)

const commentTimeout = 60 * time.Second

// The prompts are written for the Red player. When Blue is commenting the
// colors are swapped along with the marker counts.
const playerBlue = "Blue"

var swapColors = strings.NewReplacer("Blue", "Red", "Red", "Blue")

// Chatter represents the LLM that produces the commentary.
type Chatter interface {
	Chat(ctx context.Context, prompt string, options ...llms.CallOption) (string, error)
}

// AI provides support for commenting on a connect 4 game.
type AI struct {
	chat    Chatter
	log     *zap.Logger
	speaker speaker

	mu    sync.Mutex
	sound bool
	wg    sync.WaitGroup

	// speakMu is held from creating the speech file until playback ends.
	// All messages share one file.
	speakMu sync.Mutex
}

// New constructs the AI api for use.
func New(chat Chatter, log *zap.Logger) (*AI, error) {
	if chat == nil {
		return nil, errors.New("chatter is required")
	}

	if log == nil {
		log = zap.NewNop()
	}

	ai := AI{
		chat:    chat,
		log:     log,
		speaker: newSpeech(),
	}

	return &ai, nil
}

// Close waits for any speech that is still playing.
func (ai *AI) Close() {
	ai.wg.Wait()
}

// Comment produces a game response for the specified feedback, spoken by the
// named player. The marker counts and the last column are placed into the
// prompt for context. An unknown feedback value uses the normal game play
// prompt.
func (ai *AI) Comment(ctx context.Context, feedback string, player string, blueMarkers int, redMarkers int, lastColumn int) (string, error) {
	prompt := selectPrompt(feedback)
	first, second := blueMarkers, redMarkers
	if player == playerBlue {
		prompt = swapColors.Replace(prompt)
		first, second = redMarkers, blueMarkers
	}

	prompt = fmt.Sprintf(prompt, first, second, lastColumn)

	ai.log.Debug("comment prompt", zap.String("feedback", feedback), zap.String("player", player), zap.String("prompt", prompt))

	ctx, cancel := context.WithTimeout(ctx, commentTimeout)
	defer cancel()

	response, err := ai.chat.Chat(ctx, prompt, llms.WithMaxTokens(5000), llms.WithTemperature(0.8))
	if err != nil {
		return "", fmt.Errorf("chat: %w", err)
	}

	// Models like to wrap the statement in quotes or code marks.
	response = strings.TrimSpace(response)
	response = strings.Trim(response, "`\"")
	response = strings.TrimSpace(response)

	ai.log.Debug("comment response", zap.String("feedback", feedback), zap.String("response", response))

	return response, nil
}

func selectPrompt(feedback string) string {
	switch feedback {
	case FeedbackBlocked:
		return promptBlockedWin
	case FeedbackWillWin:
		return promptWillWin
	case FeedbackWon:
		return promptWonGame
	case FeedbackLost:
		return promptLostGame
	case FeedbackTie:
		return promptTieGame
	}

	return promptNormalGamePlay
}
