// Package ai translates application requests into prompts for the Google
// generative language API and parses the structured or free-text responses.
// The gateway has no authority over user data: transport and parse failures
// degrade to safe defaults and are never surfaced to the view layer.
package ai

import (
	"context"
	"errors"

	"github.com/srivalli27/dhanai/internal/model"
)

// ModelName is the fixed model identifier used for every AI call.
const ModelName = "gemini-2.5-flash"

// ErrMissingAPIKey is returned when the gateway is constructed without an
// API key. This is the only error the AI layer raises synchronously; all
// later failures degrade to fallback values.
var ErrMissingAPIKey = errors.New("gemini API key is not set (DHANAI_GEMINI_API_KEY)")

// Chunk is one increment of a streamed response.
type Chunk struct {
	Err  error
	Text string
}

// Generator is the text-generation backend behind the gateway. Implemented
// by geminiGenerator for production and by stubs in tests.
type Generator interface {
	// GenerateCategorization sends a prompt constrained to the two-field
	// categorization JSON schema and returns the raw response text.
	GenerateCategorization(ctx context.Context, prompt string) (string, error)

	// GenerateText sends a single-shot free-text request under a system
	// instruction.
	GenerateText(ctx context.Context, systemInstruction, prompt string) (string, error)

	// StreamChat opens an incremental chat response to message, with the
	// prior conversation as history. The returned channel is closed when
	// the stream ends or ctx is canceled.
	StreamChat(ctx context.Context, systemInstruction string, history []model.Message, message string) (<-chan Chunk, error)
}
