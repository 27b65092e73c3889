// Package llm abstracts the remote text-generation collaborator. Calls
// are best-effort: failures are reported to the caller, never retried.
package llm

import (
	"context"
	"fmt"

	"github.com/li2990555-pixel/patapal11111/internal/config"
)

// Message is one role-tagged turn of chat history.
type Message struct {
	Role string // "user" or "model"
	Text string
}

// Response holds the result of a completed generation.
type Response struct {
	Content  string
	Provider string
}

// Client is the interface for text-generation providers.
type Client interface {
	// Complete runs a one-shot generation for the given prompt.
	Complete(ctx context.Context, system, prompt string) (*Response, error)

	// StreamChat sends a conversational message with history and streams
	// the reply. onDelta receives each text fragment as it arrives; the
	// returned Response carries the assembled full reply.
	StreamChat(ctx context.Context, system string, history []Message, message string, onDelta func(string)) (*Response, error)
}

// NewClient creates a client based on the config provider setting.
func NewClient(cfg config.LLMConfig) (Client, error) {
	switch cfg.Provider {
	case "gemini":
		if cfg.GeminiKey == "" {
			return nil, fmt.Errorf("gemini provider requires GEMINI_API_KEY or config")
		}
		model := cfg.Model
		if model == "" {
			model = "gemini-2.5-flash"
		}
		return NewGemini(cfg.GeminiKey, model), nil
	case "ollama":
		url := cfg.OllamaURL
		if url == "" {
			url = "http://localhost:11434"
		}
		model := cfg.OllamaModel
		if model == "" {
			model = "llama3.2"
		}
		return NewOllama(url, model), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
}
