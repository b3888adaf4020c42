package classifier

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bragabarreto/financeai-pro-sub000/internal/logging"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiConfig is the explicit configuration for the Gemini-backed
// classifier. It is passed in by the caller; there is no environment-backed
// singleton.
type GeminiConfig struct {
	APIKey         string
	Model          string
	TimeoutSeconds int
}

// GeminiClient implements AIClient against the Google Gemini API.
type GeminiClient struct {
	client  *genai.Client
	model   *genai.GenerativeModel
	timeout time.Duration
	logger  logging.Logger
}

// NewGeminiClient creates a Gemini-backed AIClient.
func NewGeminiClient(ctx context.Context, cfg GeminiConfig, logger logging.Logger) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key not configured")
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	modelName := cfg.Model
	if modelName == "" {
		modelName = "gemini-2.0-flash"
	}
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &GeminiClient{
		client:  client,
		model:   client.GenerativeModel(modelName),
		timeout: timeout,
		logger:  logger,
	}, nil
}

// Close releases the underlying API client.
func (c *GeminiClient) Close() error {
	return c.client.Close()
}

// Suggest sends one transaction to Gemini and decodes the JSON answer.
// A malformed or off-list response yields (nil, nil): no enrichment.
func (c *GeminiClient) Suggest(ctx context.Context, req Request) (*Suggestion, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	prompt := buildPrompt(req)
	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}

	raw := responseText(resp)
	if raw == "" {
		c.logger.Warn("Empty Gemini response",
			logging.Field{Key: logging.FieldOperation, Value: "ai_suggest"})
		return nil, nil
	}

	suggestion := DecodeSuggestion(raw, req.Categories)
	if suggestion == nil {
		c.logger.Debug("Gemini response rejected by decoder",
			logging.Field{Key: logging.FieldOperation, Value: "ai_suggest"})
	}
	return suggestion, nil
}

// ExtractText sends a photographed document to Gemini and returns the raw
// text answer. Used by the receipt and paycheck paths.
func (c *GeminiClient) ExtractText(ctx context.Context, image []byte, mimeType, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	format := strings.TrimPrefix(mimeType, "image/")
	resp, err := c.model.GenerateContent(ctx, genai.ImageData(format, image), genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini vision request failed: %w", err)
	}
	return responseText(resp), nil
}

func buildPrompt(req Request) string {
	var b strings.Builder
	b.WriteString("Classify the following Brazilian financial transaction.\n")
	fmt.Fprintf(&b, "Description: %s\nDate: %s\nAmount: %s\nType: %s\n",
		req.Description, req.Date, req.Amount, req.Type)
	fmt.Fprintf(&b, "Registered categories: %s\n", strings.Join(req.Categories, ", "))
	if len(req.Cards) > 0 {
		fmt.Fprintf(&b, "Registered cards: %s\n", strings.Join(req.Cards, ", "))
	}
	if len(req.Accounts) > 0 {
		fmt.Fprintf(&b, "Registered accounts: %s\n", strings.Join(req.Accounts, ", "))
	}
	b.WriteString(`Answer with a single JSON object and nothing else:
{"category": "<one of the registered categories, exactly as listed>",
 "confidence": <0.0-1.0>,
 "suggested_card": "<registered card name or empty>",
 "suggested_account": "<registered account name or empty>"}`)
	return b.String()
}

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
