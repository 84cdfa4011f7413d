// Package ollama provides an implementation for using ollama.
package ollama

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
)

// Chatter implements the Chatter interface.
type Chatter struct {
	llm *ollama.LLM
}

// NewChatter constructs Ollama support for chatting.
func NewChatter(model string) (*Chatter, error) {
	llm, err := ollama.New(ollama.WithModel(model))
	if err != nil {
		return nil, fmt.Errorf("chatter: %w", err)
	}

	chatter := Chatter{
		llm: llm,
	}

	return &chatter, nil
}

// Chat implements the Chatter inteface.
func (cht *Chatter) Chat(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	response, err := llms.GenerateFromSinglePrompt(ctx, cht.llm, prompt, options...)
	if err != nil {
		return "", fmt.Errorf("generate: %w", err)
	}

	return response, nil
}
