package scrape

import (
	"context"
	"encoding/json"

	"google.golang.org/genai"

	"github.com/modelpareto/pareto/pkg/errors"
	"github.com/modelpareto/pareto/pkg/extract"
	"github.com/modelpareto/pareto/pkg/logging"
)

// DefaultGeminiModel is used when no model is configured.
const DefaultGeminiModel = "gemini-2.0-flash"

// defaultMaxRetries bounds re-prompting when extraction fails. A second
// attempt with the same prompt usually lands; more rarely helps.
const defaultMaxRetries = 2

// Parser turns a prompt into structured JSON. The Gemini implementation
// is the production backend; tests substitute their own.
type Parser interface {
	Parse(ctx context.Context, prompt string) (json.RawMessage, error)
}

// GeminiParser asks the Gemini API to perform extraction and recovers
// JSON from the free-form response.
type GeminiParser struct {
	client     *genai.Client
	model      string
	maxRetries int
}

// NewGeminiParser creates a parser backed by the Gemini API.
func NewGeminiParser(ctx context.Context, apiKey, model string) (*GeminiParser, error) {
	if apiKey == "" {
		return nil, errors.ErrAPIKeyRequired
	}
	if model == "" {
		model = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend: genai.BackendGeminiAPI,
		APIKey:  apiKey,
	})
	if err != nil {
		return nil, err
	}

	return &GeminiParser{
		client:     client,
		model:      model,
		maxRetries: defaultMaxRetries,
	}, nil
}

// Parse sends the prompt and extracts JSON from the response, retrying a
// bounded number of times when no JSON can be recovered. Transport errors
// are not retried; extraction exhaustion is.
func (p *GeminiParser) Parse(ctx context.Context, prompt string) (json.RawMessage, error) {
	var lastErr error

	for attempt := 1; attempt <= p.maxRetries; attempt++ {
		resp, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), nil)
		if err != nil {
			return nil, err
		}

		raw, err := extract.JSON(resp.Text())
		if err == nil {
			return raw, nil
		}
		if !errors.IsNoJSON(err) {
			return nil, err
		}

		lastErr = err
		logging.Warn().
			Int("attempt", attempt).
			Int("max_retries", p.maxRetries).
			Str("model", p.model).
			Msg("no JSON in response, retrying")
	}

	return nil, lastErr
}
