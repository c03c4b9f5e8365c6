package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"github.com/srivalli27/dhanai/internal/model"
)

// geminiGenerator implements Generator against the Gemini API.
type geminiGenerator struct {
	client *genai.Client
}

// NewGeminiGenerator creates the production text-generation backend. An
// absent API key is a fatal condition for any AI-dependent call, so it is
// rejected here, synchronously, before any request is attempted.
func NewGeminiGenerator(ctx context.Context, apiKey string) (Generator, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiGenerator{client: client}, nil
}

// GenerateCategorization requests a strict two-field JSON object. The schema
// constrains the response shape, not the category value; the gateway still
// validates the category against the permitted list.
func (g *geminiGenerator) GenerateCategorization(ctx context.Context, prompt string) (string, error) {
	m := g.client.GenerativeModel(ModelName)
	m.ResponseMIMEType = "application/json"
	m.ResponseSchema = &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"category":    {Type: genai.TypeString, Description: "The transaction category."},
			"explanation": {Type: genai.TypeString, Description: "The reason for the categorization."},
		},
		Required: []string{"category", "explanation"},
	}

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("categorization request failed: %w", err)
	}

	return responseText(resp), nil
}

// GenerateText sends a single-shot free-text request.
func (g *geminiGenerator) GenerateText(ctx context.Context, systemInstruction, prompt string) (string, error) {
	m := g.client.GenerativeModel(ModelName)
	if systemInstruction != "" {
		m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemInstruction)}}
	}

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("generation request failed: %w", err)
	}

	return responseText(resp), nil
}

// StreamChat opens an incremental chat response. Fragments arrive in order;
// canceling ctx abandons the stream and closes the channel.
func (g *geminiGenerator) StreamChat(ctx context.Context, systemInstruction string, history []model.Message, message string) (<-chan Chunk, error) {
	m := g.client.GenerativeModel(ModelName)
	if systemInstruction != "" {
		m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemInstruction)}}
	}

	chat := m.StartChat()
	for _, msg := range history {
		chat.History = append(chat.History, &genai.Content{
			Role:  chatRole(msg.Sender),
			Parts: []genai.Part{genai.Text(msg.Text)},
		})
	}

	iter := chat.SendMessageStream(ctx, genai.Text(message))

	ch := make(chan Chunk)
	go func() {
		defer close(ch)
		for {
			resp, err := iter.Next()
			if errors.Is(err, iterator.Done) {
				return
			}
			if err != nil {
				select {
				case ch <- Chunk{Err: err}:
				case <-ctx.Done():
				}
				return
			}

			text := responseText(resp)
			if text == "" {
				continue
			}

			select {
			case ch <- Chunk{Text: text}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return ch, nil
}

// Close releases the underlying API client.
func (g *geminiGenerator) Close() error {
	return g.client.Close()
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return b.String()
}

func chatRole(sender model.MessageSender) string {
	if sender == model.SenderAI {
		return "model"
	}
	return "user"
}
