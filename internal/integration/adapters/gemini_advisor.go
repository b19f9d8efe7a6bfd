package adapters

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/finapple/backend/internal/application/adapter"
	"github.com/finapple/backend/internal/domain/entity"
	"github.com/finapple/backend/internal/domain/valueobject"
)

// DefaultGeminiModel is used when no model is configured.
const DefaultGeminiModel = "gemini-2.5-flash-lite"

// promptTransactionCount is how many recent transactions the prompt includes.
const promptTransactionCount = 20

// GeminiAdvisor implements adapter.Advisor using Google Gemini.
type GeminiAdvisor struct {
	apiKey    string
	modelName string
}

// NewGeminiAdvisor creates a new Gemini advisor instance.
func NewGeminiAdvisor(apiKey, modelName string) *GeminiAdvisor {
	if modelName == "" {
		modelName = DefaultGeminiModel
	}
	return &GeminiAdvisor{
		apiKey:    apiKey,
		modelName: modelName,
	}
}

// IsAvailable checks if the Gemini advisor is properly configured.
func (a *GeminiAdvisor) IsAvailable() bool {
	return a.apiKey != ""
}

// Advise asks Gemini for a single short tip based on the given figures.
func (a *GeminiAdvisor) Advise(ctx context.Context, request *adapter.AdviceRequest) (string, error) {
	if !a.IsAvailable() {
		return "", fmt.Errorf("gemini advisor is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(a.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(a.modelName)
	model.SetTemperature(0.7)
	model.SetMaxOutputTokens(200)

	resp, err := model.GenerateContent(ctx, genai.Text(buildAdvicePrompt(request)))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return parseAdvice(resp)
}

// buildAdvicePrompt renders the owner's figures into a prompt.
func buildAdvicePrompt(request *adapter.AdviceRequest) string {
	var sb strings.Builder

	sb.WriteString("You are a personal finance coach. Give ONE practical tip of at most two sentences ")
	sb.WriteString("based on the figures below. Do not use markdown.\n")
	if request.Language == entity.LanguageUkrainian {
		sb.WriteString("Answer in Ukrainian.\n")
	} else {
		sb.WriteString("Answer in English.\n")
	}

	sb.WriteString("\nWALLETS:\n")
	for _, w := range request.Wallets {
		fmt.Fprintf(&sb, "- %s: %s %s\n", w.Name, w.Balance.StringFixed(2), w.Currency)
	}
	fmt.Fprintf(&sb, "Total: %s UAH\n", valueobject.TotalBalance(request.Wallets, valueobject.BasisLocal).StringFixed(2))

	sb.WriteString("\nBUDGETS:\n")
	for _, b := range request.Budgets {
		fmt.Fprintf(&sb, "- %s: spent %s of %s %s\n", b.Name, b.Spent.StringFixed(2), b.Limit.StringFixed(2), b.Currency)
	}

	sb.WriteString("\nSAVINGS GOALS:\n")
	for _, e := range request.Envelopes {
		fmt.Fprintf(&sb, "- %s: %s of %s %s\n", e.Name, e.Balance.StringFixed(2), e.Goal.StringFixed(2), e.Currency)
	}

	sb.WriteString("\nRECENT TRANSACTIONS:\n")
	txs := request.Transactions
	if len(txs) > promptTransactionCount {
		txs = txs[:promptTransactionCount]
	}
	for _, tx := range txs {
		fmt.Fprintf(&sb, "- %s %s %s %s (%s)\n",
			tx.Date.Format(entity.DateLayout), tx.Type, tx.Amount.StringFixed(2), tx.Currency, tx.Category)
	}

	return sb.String()
}

// parseAdvice extracts the tip text from the Gemini response.
func parseAdvice(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from gemini")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	tip := strings.TrimSpace(sb.String())
	if tip == "" {
		return "", fmt.Errorf("no text content in response")
	}
	return tip, nil
}
