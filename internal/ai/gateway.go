package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/srivalli27/dhanai/internal/model"
)

// Fallback strings returned when an AI call fails. The gateway guarantees a
// well-formed result for every operation; these are the floors.
const (
	fallbackExplanation        = "AI categorization failed."
	unknownCategoryExplanation = "Could not determine a specific category."
	fallbackAnswer             = "Sorry, I couldn't process that request."
	emptyAnswer                = "I couldn't generate an answer."
	fallbackSummary            = "Accounting summary unavailable."
	emptySummary               = "Summary unavailable."
	fallbackAdvice             = "Sorry, the advisor is unavailable right now. Please try again later."
)

// Advisor personas, selected by mode.
const (
	personaBusiness = "You are DhanAI, a professional and astute business financial advisor for users in India. " +
		"Provide concise, data-driven, and actionable financial advice for businesses. Your tone should be formal and analytical."
	personaPersonal = "You are DhanAI, a helpful and friendly financial advisor for users in India. " +
		"Provide concise, clear, and actionable financial advice. Keep your responses brief and easy to understand."
)

// CategorizationResult is the outcome of a categorization request. It is
// always well-formed: on any failure Category is model.CategoryOther and
// Explanation is a non-empty fallback.
type CategorizationResult struct {
	Category    string
	Explanation string
}

// Gateway builds prompts from transaction data and dispatches them to a
// Generator.
type Gateway struct {
	generator Generator
	logger    *slog.Logger
}

// NewGateway creates a gateway over the given generation backend.
func NewGateway(generator Generator, logger *slog.Logger) *Gateway {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gateway{generator: generator, logger: logger}
}

// CategorizeTransaction asks the model to place a transaction description
// into one of the mode's permitted categories. Matching user rules are
// embedded in the prompt as mandatory overrides. This call never fails: any
// transport or parse error, and any category outside the permitted list,
// resolves to CategoryOther with a generic explanation.
func (g *Gateway) CategorizeTransaction(ctx context.Context, description string, mode model.Mode, rules []model.CategorizationRule) CategorizationResult {
	prompt := buildCategorizationPrompt(description, mode, rules)

	raw, err := g.generator.GenerateCategorization(ctx, prompt)
	if err != nil {
		g.logger.Warn("transaction categorization failed",
			"description", description,
			"error", err)
		return CategorizationResult{Category: model.CategoryOther, Explanation: fallbackExplanation}
	}

	var parsed struct {
		Category    string `json:"category"`
		Explanation string `json:"explanation"`
	}
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &parsed); err != nil {
		g.logger.Warn("categorization response is not valid JSON",
			"response", raw,
			"error", err)
		return CategorizationResult{Category: model.CategoryOther, Explanation: fallbackExplanation}
	}

	if !model.IsValidCategory(mode, parsed.Category) {
		g.logger.Warn("model returned a category outside the permitted list",
			"category", parsed.Category,
			"mode", mode)
		return CategorizationResult{Category: model.CategoryOther, Explanation: unknownCategoryExplanation}
	}

	if parsed.Explanation == "" {
		parsed.Explanation = unknownCategoryExplanation
	}

	return CategorizationResult{Category: parsed.Category, Explanation: parsed.Explanation}
}

// GetFinancialAdvice opens a streamed advisor reply to the latest user
// message. Fragments are delivered in order on the returned channel, which
// closes when the reply is complete or ctx is canceled. The stream is not
// restartable. If the stream cannot be opened at all, the channel carries a
// single apology fragment.
func (g *Gateway) GetFinancialAdvice(ctx context.Context, history []model.Message, mode model.Mode) <-chan string {
	persona := personaPersonal
	if mode == model.ModeBusiness {
		persona = personaBusiness
	}

	out := make(chan string, 1)

	if len(history) == 0 {
		out <- fallbackAdvice
		close(out)
		return out
	}
	latest := history[len(history)-1]

	chunks, err := g.generator.StreamChat(ctx, persona, history[:len(history)-1], latest.Text)
	if err != nil {
		g.logger.Warn("failed to open advice stream", "error", err)
		out <- fallbackAdvice
		close(out)
		return out
	}

	go func() {
		defer close(out)
		for chunk := range chunks {
			if chunk.Err != nil {
				// Mid-stream failure: keep whatever was already
				// delivered and end the sequence.
				g.logger.Warn("advice stream interrupted", "error", chunk.Err)
				return
			}
			select {
			case out <- chunk.Text:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// AnswerTransactionQuestion answers a free-text question about the full
// transaction list. Returns a fixed apology string on failure.
func (g *Gateway) AnswerTransactionQuestion(ctx context.Context, question string, transactions []model.Transaction, mode model.Mode) string {
	prompt := buildQuestionPrompt(question, transactions, mode)

	answer, err := g.generator.GenerateText(ctx, "", prompt)
	if err != nil {
		g.logger.Warn("transaction question failed", "error", err)
		return fallbackAnswer
	}
	if strings.TrimSpace(answer) == "" {
		return emptyAnswer
	}
	return answer
}

// GetSMELedgerSummary produces a short accounting summary of a business
// ledger: total profit, top expense category and one cash-flow tip. Returns
// a fixed fallback string on failure.
func (g *Gateway) GetSMELedgerSummary(ctx context.Context, transactions []model.Transaction) string {
	prompt := buildSummaryPrompt(transactions)

	summary, err := g.generator.GenerateText(ctx, "", prompt)
	if err != nil {
		g.logger.Warn("SME ledger summary failed", "error", err)
		return fallbackSummary
	}
	if strings.TrimSpace(summary) == "" {
		return emptySummary
	}
	return summary
}

func buildCategorizationPrompt(description string, mode model.Mode, rules []model.CategorizationRule) string {
	categories := model.CategoriesForMode(mode)

	rulesContext := ""
	if matched := model.MatchingRules(rules, description); len(matched) > 0 {
		encoded, err := json.Marshal(matched)
		if err == nil {
			rulesContext = fmt.Sprintf(`IMPORTANT USER RULES: The user has defined the following strict rules. If the description matches the keyword, you MUST use the specified category.
%s

`, encoded)
		}
	}

	return fmt.Sprintf(`You are an expert financial transaction categorizer for Indian users. Your task is to categorize the transaction and provide a brief explanation.

Transaction Description: %q

%sIf no user rule applies, please categorize it into one of the following %s finance categories:
[%s]

Respond ONLY with a valid JSON object in the following format:
{"category": "...", "explanation": "..."}

The "category" must be one of the provided categories. The "explanation" should be a concise, one-sentence reason for your choice. Always explain why this category was chosen.`,
		description,
		rulesContext,
		mode,
		strings.Join(categories, ", "))
}

func buildQuestionPrompt(question string, transactions []model.Transaction, mode model.Mode) string {
	instructions := `Answer based ONLY on the transaction data provided above with a friendly and helpful tone.`
	if mode == model.ModeBusiness {
		instructions = `If the question is about identifying the "best" or "top" client, you MUST analyze the 'Revenue' category transactions. Sum up the total credit amounts from each client (identified by their name in the description, e.g., 'Client Payment #INV003 - TechCorp'). The best client is the one with the highest total revenue. State the client's name and the total amount received from them.

If the question is about the "worst" or "lowest" client, perform a similar analysis but identify the client with the lowest total revenue.

For all other business-related questions, answer based on the provided data with a professional and analytical tone.`
	}

	return fmt.Sprintf(`You are an AI assistant analyzing a user's financial transactions.
The user is currently in %q mode.

Here is a list of financial transactions:
%s

%s

If the answer cannot be found in the data, state that clearly.
Question: %q`,
		mode,
		encodeTransactions(transactions),
		instructions,
		question)
}

func buildSummaryPrompt(transactions []model.Transaction) string {
	return fmt.Sprintf(`You are an expert accountant and financial analyst for Small and Medium Enterprises (SMEs) in India.

Analyze the following business transactions:
%s

Provide a concise "SME Ledger Summary" that includes:
1. Total Profit (Revenue - Expenses).
2. Top Expense Category.
3. One brief strategic tip to improve cash flow.

Format the output as a short Markdown text suitable for a mobile dashboard card. Do not include greetings.`,
		encodeTransactions(transactions))
}

func encodeTransactions(transactions []model.Transaction) string {
	encoded, err := json.MarshalIndent(transactions, "", "  ")
	if err != nil {
		return "[]"
	}
	return string(encoded)
}

// stripCodeFence removes a markdown code fence wrapper from a model
// response, if present.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
