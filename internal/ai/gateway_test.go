package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srivalli27/dhanai/internal/model"
)

// stubGenerator is a scripted Generator for gateway tests. It records the
// prompts it receives so rule embedding can be asserted.
type stubGenerator struct {
	categorizationResponse string
	categorizationErr      error
	textResponse           string
	textErr                error
	chunks                 []Chunk
	streamErr              error
	prompts                []string
	systemInstructions     []string
}

func (s *stubGenerator) GenerateCategorization(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	return s.categorizationResponse, s.categorizationErr
}

func (s *stubGenerator) GenerateText(_ context.Context, systemInstruction, prompt string) (string, error) {
	s.systemInstructions = append(s.systemInstructions, systemInstruction)
	s.prompts = append(s.prompts, prompt)
	return s.textResponse, s.textErr
}

func (s *stubGenerator) StreamChat(ctx context.Context, systemInstruction string, _ []model.Message, message string) (<-chan Chunk, error) {
	s.systemInstructions = append(s.systemInstructions, systemInstruction)
	s.prompts = append(s.prompts, message)
	if s.streamErr != nil {
		return nil, s.streamErr
	}

	out := make(chan Chunk)
	go func() {
		defer close(out)
		for _, chunk := range s.chunks {
			select {
			case out <- chunk:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

func TestCategorizeTransaction(t *testing.T) {
	tests := []struct {
		name            string
		response        string
		err             error
		mode            model.Mode
		wantCategory    string
		wantExplanation string
	}{
		{
			name:            "valid response",
			response:        `{"category": "Food", "explanation": "Food delivery from Swiggy."}`,
			mode:            model.ModePersonal,
			wantCategory:    "Food",
			wantExplanation: "Food delivery from Swiggy.",
		},
		{
			name:            "code-fenced response",
			response:        "```json\n{\"category\": \"Travel\", \"explanation\": \"Cab ride.\"}\n```",
			mode:            model.ModePersonal,
			wantCategory:    "Travel",
			wantExplanation: "Cab ride.",
		},
		{
			name:            "generation error falls back to Other",
			err:             errors.New("transport failure"),
			mode:            model.ModePersonal,
			wantCategory:    model.CategoryOther,
			wantExplanation: "AI categorization failed.",
		},
		{
			name:            "malformed JSON falls back to Other",
			response:        `category: Food`,
			mode:            model.ModePersonal,
			wantCategory:    model.CategoryOther,
			wantExplanation: "AI categorization failed.",
		},
		{
			name:            "category outside permitted list falls back to Other",
			response:        `{"category": "Groceries", "explanation": "Supermarket run."}`,
			mode:            model.ModePersonal,
			wantCategory:    model.CategoryOther,
			wantExplanation: "Could not determine a specific category.",
		},
		{
			name:            "personal category invalid in business mode",
			response:        `{"category": "Food", "explanation": "Lunch."}`,
			mode:            model.ModeBusiness,
			wantCategory:    model.CategoryOther,
			wantExplanation: "Could not determine a specific category.",
		},
		{
			name:            "empty explanation is backfilled",
			response:        `{"category": "Bills", "explanation": ""}`,
			mode:            model.ModePersonal,
			wantCategory:    "Bills",
			wantExplanation: "Could not determine a specific category.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubGenerator{categorizationResponse: tt.response, categorizationErr: tt.err}
			gateway := NewGateway(stub, nil)

			result := gateway.CategorizeTransaction(context.Background(), "Some Transaction", tt.mode, nil)

			assert.Equal(t, tt.wantCategory, result.Category)
			assert.Equal(t, tt.wantExplanation, result.Explanation)
			assert.NotEmpty(t, result.Explanation, "explanation must never be empty")
		})
	}
}

func TestCategorizeTransactionEmbedsMatchingRules(t *testing.T) {
	stub := &stubGenerator{categorizationResponse: `{"category": "Travel", "explanation": "User rule applied."}`}
	gateway := NewGateway(stub, nil)

	rules := []model.CategorizationRule{
		{Keyword: "uber", Category: "Travel"},
		{Keyword: "netflix", Category: "Entertainment"},
	}

	result := gateway.CategorizeTransaction(context.Background(), "UBER RIDE #123", model.ModePersonal, rules)
	assert.Equal(t, "Travel", result.Category)

	require.Len(t, stub.prompts, 1)
	prompt := stub.prompts[0]
	assert.Contains(t, prompt, "IMPORTANT USER RULES", "matching rule must be embedded as a mandatory override")
	assert.Contains(t, prompt, `"uber"`, "keyword matches case-insensitively")
	assert.NotContains(t, prompt, "netflix", "non-matching rules stay out of the prompt")
	assert.Contains(t, prompt, `"UBER RIDE #123"`)
}

func TestCategorizeTransactionWithoutMatchingRules(t *testing.T) {
	stub := &stubGenerator{categorizationResponse: `{"category": "Food", "explanation": "ok"}`}
	gateway := NewGateway(stub, nil)

	gateway.CategorizeTransaction(context.Background(), "Swiggy Order", model.ModePersonal, []model.CategorizationRule{
		{Keyword: "uber", Category: "Travel"},
	})

	require.Len(t, stub.prompts, 1)
	assert.NotContains(t, stub.prompts[0], "IMPORTANT USER RULES")
}

func collectStream(t *testing.T, ch <-chan string) []string {
	t.Helper()
	var fragments []string
	for fragment := range ch {
		fragments = append(fragments, fragment)
	}
	return fragments
}

func TestGetFinancialAdvice(t *testing.T) {
	t.Run("fragments arrive in order", func(t *testing.T) {
		stub := &stubGenerator{chunks: []Chunk{{Text: "Save "}, {Text: "more "}, {Text: "money."}}}
		gateway := NewGateway(stub, nil)

		history := []model.Message{{Sender: model.SenderUser, Text: "How do I save?"}}
		fragments := collectStream(t, gateway.GetFinancialAdvice(context.Background(), history, model.ModePersonal))

		assert.Equal(t, []string{"Save ", "more ", "money."}, fragments)
	})

	t.Run("persona follows mode", func(t *testing.T) {
		stub := &stubGenerator{chunks: []Chunk{{Text: "ok"}}}
		gateway := NewGateway(stub, nil)
		history := []model.Message{{Sender: model.SenderUser, Text: "hi"}}

		collectStream(t, gateway.GetFinancialAdvice(context.Background(), history, model.ModeBusiness))
		collectStream(t, gateway.GetFinancialAdvice(context.Background(), history, model.ModePersonal))

		require.Len(t, stub.systemInstructions, 2)
		assert.Contains(t, stub.systemInstructions[0], "business financial advisor")
		assert.Contains(t, stub.systemInstructions[1], "friendly financial advisor")
	})

	t.Run("open failure yields a single apology fragment", func(t *testing.T) {
		stub := &stubGenerator{streamErr: errors.New("connection refused")}
		gateway := NewGateway(stub, nil)

		history := []model.Message{{Sender: model.SenderUser, Text: "hi"}}
		fragments := collectStream(t, gateway.GetFinancialAdvice(context.Background(), history, model.ModePersonal))

		require.Len(t, fragments, 1)
		assert.Contains(t, fragments[0], "advisor is unavailable")
	})

	t.Run("mid-stream error keeps earlier fragments", func(t *testing.T) {
		stub := &stubGenerator{chunks: []Chunk{{Text: "Partial "}, {Err: errors.New("stream reset")}, {Text: "never delivered"}}}
		gateway := NewGateway(stub, nil)

		history := []model.Message{{Sender: model.SenderUser, Text: "hi"}}
		fragments := collectStream(t, gateway.GetFinancialAdvice(context.Background(), history, model.ModePersonal))

		assert.Equal(t, []string{"Partial "}, fragments)
	})

	t.Run("empty history yields the fallback", func(t *testing.T) {
		gateway := NewGateway(&stubGenerator{}, nil)

		fragments := collectStream(t, gateway.GetFinancialAdvice(context.Background(), nil, model.ModePersonal))

		require.Len(t, fragments, 1)
		assert.Contains(t, fragments[0], "advisor is unavailable")
	})

	t.Run("cancellation closes the stream", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		stub := &stubGenerator{chunks: []Chunk{{Text: "a"}, {Text: "b"}, {Text: "c"}}}
		gateway := NewGateway(stub, nil)

		history := []model.Message{{Sender: model.SenderUser, Text: "hi"}}
		ch := gateway.GetFinancialAdvice(ctx, history, model.ModePersonal)

		// The channel must close; whatever was buffered before
		// cancellation may still be delivered.
		fragments := collectStream(t, ch)
		assert.LessOrEqual(t, len(fragments), len(stub.chunks))
	})
}

func TestAnswerTransactionQuestion(t *testing.T) {
	transactions := []model.Transaction{
		{ID: 1, Description: "Client Payment #INV001 - TechCorp", Amount: 120000, Direction: model.DirectionCredit, Category: "Revenue"},
	}

	t.Run("returns model answer", func(t *testing.T) {
		stub := &stubGenerator{textResponse: "TechCorp is your top client."}
		gateway := NewGateway(stub, nil)

		answer := gateway.AnswerTransactionQuestion(context.Background(), "Who is my best client?", transactions, model.ModeBusiness)

		assert.Equal(t, "TechCorp is your top client.", answer)
		require.Len(t, stub.prompts, 1)
		assert.Contains(t, stub.prompts[0], "Client Payment #INV001 - TechCorp", "full transaction list is embedded")
		assert.Contains(t, stub.prompts[0], "highest total revenue", "business mode carries the top-client instruction")
	})

	t.Run("personal mode omits the client analysis", func(t *testing.T) {
		stub := &stubGenerator{textResponse: "ok"}
		gateway := NewGateway(stub, nil)

		gateway.AnswerTransactionQuestion(context.Background(), "How much did I spend?", transactions, model.ModePersonal)

		require.Len(t, stub.prompts, 1)
		assert.NotContains(t, stub.prompts[0], "highest total revenue")
	})

	t.Run("failure returns apology", func(t *testing.T) {
		gateway := NewGateway(&stubGenerator{textErr: errors.New("boom")}, nil)

		answer := gateway.AnswerTransactionQuestion(context.Background(), "anything", transactions, model.ModeBusiness)

		assert.Equal(t, "Sorry, I couldn't process that request.", answer)
	})

	t.Run("blank answer is replaced", func(t *testing.T) {
		gateway := NewGateway(&stubGenerator{textResponse: "   "}, nil)

		answer := gateway.AnswerTransactionQuestion(context.Background(), "anything", transactions, model.ModeBusiness)

		assert.Equal(t, "I couldn't generate an answer.", answer)
	})
}

func TestGetSMELedgerSummary(t *testing.T) {
	transactions := []model.Transaction{
		{ID: 1, Description: "Client Payment #INV001 - TechCorp", Amount: 120000, Direction: model.DirectionCredit, Category: "Revenue"},
		{ID: 2, Description: "Staff Salaries - July", Amount: 150000, Direction: model.DirectionDebit, Category: "Salaries"},
	}

	t.Run("returns model summary", func(t *testing.T) {
		stub := &stubGenerator{textResponse: "**Profit:** -30000"}
		gateway := NewGateway(stub, nil)

		summary := gateway.GetSMELedgerSummary(context.Background(), transactions)

		assert.Equal(t, "**Profit:** -30000", summary)
		require.Len(t, stub.prompts, 1)
		assert.Contains(t, stub.prompts[0], "Total Profit")
		assert.Contains(t, stub.prompts[0], "Staff Salaries - July")
	})

	t.Run("failure returns fallback", func(t *testing.T) {
		gateway := NewGateway(&stubGenerator{textErr: errors.New("boom")}, nil)

		assert.Equal(t, "Accounting summary unavailable.", gateway.GetSMELedgerSummary(context.Background(), transactions))
	})

	t.Run("blank summary is replaced", func(t *testing.T) {
		gateway := NewGateway(&stubGenerator{textResponse: ""}, nil)

		assert.Equal(t, "Summary unavailable.", gateway.GetSMELedgerSummary(context.Background(), transactions))
	})
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: `{"a":1}`, want: `{"a":1}`},
		{name: "json fence", in: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "bare fence", in: "```\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "surrounding whitespace", in: "  {\"a\":1}  ", want: `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripCodeFence(tt.in))
		})
	}
}
