package ai

import (
	"os"
	"path/filepath"

	htgotts "github.com/hegedustibor/htgo-tts"
	handlers "github.com/hegedustibor/htgo-tts/handlers"
	voices "github.com/hegedustibor/htgo-tts/voices"
	"go.uber.org/zap"
)

const (
	speechFolder = "audio"
	speechName   = "speech"
)

// speaker is the text to speech behavior used by Speak.
type speaker interface {
	CreateSpeechFile(text string, fileName string) (string, error)
	PlaySpeechFile(fileName string) error
}

func newSpeech() *htgotts.Speech {
	return &htgotts.Speech{
		Folder:   speechFolder,
		Language: voices.English,
		Handler:  &handlers.MPlayer{},
	}
}

// TurnSoundOnOff turns the sound for speaking on or off.
func (ai *AI) TurnSoundOnOff() bool {
	ai.mu.Lock()
	defer ai.mu.Unlock()

	ai.sound = !ai.sound
	return ai.sound
}

// Sound reports whether speaking is turned on.
func (ai *AI) Sound() bool {
	ai.mu.Lock()
	defer ai.mu.Unlock()

	return ai.sound
}

// Speak will use the MPlayer to speak the specified message. The call
// returns immediately and the speech plays in the background. Messages are
// spoken one at a time in the order the goroutines acquire the speaker.
func (ai *AI) Speak(msg string) {
	if msg == "" || !ai.Sound() {
		return
	}

	ai.wg.Add(1)

	go func() {
		defer ai.wg.Done()

		ai.speakMu.Lock()
		defer ai.speakMu.Unlock()

		file := filepath.Join(speechFolder, speechName+".mp3")
		os.Remove(file)

		fileName, err := ai.speaker.CreateSpeechFile(msg, speechName)
		if err != nil {
			ai.log.Warn("create speech file", zap.Error(err))
			return
		}
		defer os.Remove(fileName)

		if err := ai.speaker.PlaySpeechFile(fileName); err != nil {
			ai.log.Warn("play speech file", zap.Error(err))
			return
		}
	}()
}
