package ai

import (
	"bytes"
	"context"
	"errors"
	"image/color"
	"image/png"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ardanlabs/connect4/cmd/connect/engine"
	"github.com/google/go-cmp/cmp"
	"github.com/tmc/langchaingo/llms"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeChatter struct {
	response string
	err      error
	prompts  []string
	options  llms.CallOptions
}

func (fc *fakeChatter) Chat(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	fc.prompts = append(fc.prompts, prompt)
	for _, opt := range options {
		opt(&fc.options)
	}
	return fc.response, fc.err
}

type fakeSpeaker struct {
	mu      sync.Mutex
	spoken  []string
	playing int
	overlap int
	delay   time.Duration
}

func (fs *fakeSpeaker) CreateSpeechFile(text string, fileName string) (string, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.playing++
	fs.overlap = max(fs.overlap, fs.playing)
	fs.spoken = append(fs.spoken, text)
	return fileName + ".mp3", nil
}

func (fs *fakeSpeaker) PlaySpeechFile(fileName string) error {
	time.Sleep(fs.delay)

	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.playing--
	return nil
}

// =============================================================================

func TestNewRequiresChatter(t *testing.T) {
	if _, err := New(nil, nil); err == nil {
		t.Fatalf("expected an error without a chatter")
	}
}

func TestComment(t *testing.T) {
	tests := []struct {
		feedback string
		contains string
	}{
		{FeedbackNormal, "The Blue player goes next."},
		{FeedbackBlocked, "and blocked a win."},
		{FeedbackWillWin, "can win on the next move."},
		{FeedbackWon, "The Red player just won the game."},
		{FeedbackLost, "The Red player just lost the game."},
		{FeedbackTie, "just tied the game."},
		{"unknown", "The Blue player goes next."},
	}

	for _, tt := range tests {
		t.Run(tt.feedback, func(t *testing.T) {
			chat := fakeChatter{response: "  \"I saw that coming.\"\n"}

			ai, err := New(&chat, nil)
			if err != nil {
				t.Fatalf("new: %s", err)
			}

			got, err := ai.Comment(context.Background(), tt.feedback, "Red", 4, 3, 5)
			if err != nil {
				t.Fatalf("comment: %s", err)
			}

			if got != "I saw that coming." {
				t.Fatalf("expected trimmed response, got %q", got)
			}

			prompt := chat.prompts[0]
			if !strings.Contains(prompt, tt.contains) {
				t.Fatalf("expected prompt to contain %q, got:\n%s", tt.contains, prompt)
			}
			if !strings.Contains(prompt, "There are 4 Blue pieces and 3 Red pieces on the board.") {
				t.Fatalf("expected marker counts in prompt, got:\n%s", prompt)
			}
			if !strings.Contains(prompt, "column 5") {
				t.Fatalf("expected last column in prompt, got:\n%s", prompt)
			}

			if chat.options.MaxTokens != 5000 || chat.options.Temperature != 0.8 {
				t.Fatalf("unexpected call options: %+v", chat.options)
			}
		})
	}
}

func TestCommentAsBlue(t *testing.T) {
	chat := fakeChatter{response: "I saw that coming."}

	ai, err := New(&chat, nil)
	if err != nil {
		t.Fatalf("new: %s", err)
	}

	if _, err := ai.Comment(context.Background(), FeedbackWon, "Blue", 4, 3, 5); err != nil {
		t.Fatalf("comment: %s", err)
	}

	prompt := chat.prompts[0]
	for _, want := range []string{
		"You are the Blue player and the other player is the Red player.",
		"Always refer to yourself (Blue Player) as 'I'.",
		"There are 3 Red pieces and 4 Blue pieces on the board.",
		"The Blue player just won the game.",
		"The Red player just lost the game.",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("expected prompt to contain %q, got:\n%s", want, prompt)
		}
	}
}

func TestCommentError(t *testing.T) {
	chatErr := errors.New("connection refused")
	chat := fakeChatter{err: chatErr}

	ai, err := New(&chat, nil)
	if err != nil {
		t.Fatalf("new: %s", err)
	}

	if _, err := ai.Comment(context.Background(), FeedbackNormal, "Red", 0, 0, 1); !errors.Is(err, chatErr) {
		t.Fatalf("expected wrapped chat error, got %v", err)
	}
}

func TestSpeak(t *testing.T) {
	ai, err := New(&fakeChatter{}, nil)
	if err != nil {
		t.Fatalf("new: %s", err)
	}

	var fs fakeSpeaker
	ai.speaker = &fs

	ai.Speak("muted")
	ai.Close()

	if !ai.TurnSoundOnOff() {
		t.Fatalf("expected sound to be on")
	}

	ai.Speak("")
	ai.Speak("loud")
	ai.Close()

	if ai.TurnSoundOnOff() {
		t.Fatalf("expected sound to be off")
	}

	if diff := cmp.Diff([]string{"loud"}, fs.spoken); diff != "" {
		t.Fatalf("spoken mismatch (-want +got):\n%s", diff)
	}
}

func TestSpeakOneAtATime(t *testing.T) {
	ai, err := New(&fakeChatter{}, nil)
	if err != nil {
		t.Fatalf("new: %s", err)
	}

	fs := fakeSpeaker{delay: 10 * time.Millisecond}
	ai.speaker = &fs
	ai.TurnSoundOnOff()

	msgs := []string{"one", "two", "three", "four"}
	for _, msg := range msgs {
		ai.Speak(msg)
	}
	ai.Close()

	if fs.overlap != 1 {
		t.Fatalf("expected one message at a time, got %d playing together", fs.overlap)
	}

	sort.Strings(fs.spoken)
	want := []string{"four", "one", "three", "two"}
	if diff := cmp.Diff(want, fs.spoken); diff != "" {
		t.Fatalf("spoken mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateImage(t *testing.T) {
	s := engine.ParseState("000000000000000000000000000022000001110002")

	data, err := GenerateImage(s)
	if err != nil {
		t.Fatalf("generate image: %s", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode png: %s", err)
	}

	if b := img.Bounds(); b.Dx() != imageWidth || b.Dy() != imageHeight {
		t.Fatalf("expected %dx%d image, got %dx%d", imageWidth, imageHeight, b.Dx(), b.Dy())
	}

	green := color.RGBA{0, 255, 0, 255}
	blue := color.RGBA{0, 0, 255, 255}
	red := color.RGBA{255, 0, 0, 255}
	white := color.RGBA{255, 255, 255, 255}

	tests := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"top left empty", center(0), center(0), green},
		{"player A", center(0), center(5), blue},
		{"player B", center(1), center(4), red},
		{"player B corner", center(6), center(5), red},
		{"background", 1, 1, white},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := img.At(tt.x, tt.y).RGBA()
			got := color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
			if got != tt.want {
				t.Fatalf("pixel (%d,%d): expected %v, got %v", tt.x, tt.y, tt.want, got)
			}
		})
	}
}

func center(i int) int {
	return imageMargin + i*imageGap
}
