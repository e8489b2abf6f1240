package scrape

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeParser returns canned JSON per prompt, keyed by a substring.
type fakeParser struct {
	responses map[string]string
	err       error
	prompts   []string
}

func (p *fakeParser) Parse(_ context.Context, prompt string) (json.RawMessage, error) {
	p.prompts = append(p.prompts, prompt)
	if p.err != nil {
		return nil, p.err
	}
	for key, response := range p.responses {
		if strings.Contains(prompt, key) {
			return json.RawMessage(response), nil
		}
	}
	return json.RawMessage(`[]`), nil
}

func TestCollectPricing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>pricing table</html>"))
	}))
	defer server.Close()

	parser := &fakeParser{responses: map[string]string{
		"OpenAI": `[
  {"model_id": "gpt-4o", "model_name": "GPT-4o", "input_per_1m_tokens": 5.0, "output_per_1m_tokens": 15.0},
  {"model_id": "", "model_name": "nameless"}
]`,
	}}

	scraper := NewScraper(NewTransport(), parser)
	batches, failures := scraper.CollectPricing(context.Background(), []Source{
		{Provider: "OpenAI", URL: server.URL},
	})

	require.Empty(t, failures)
	require.Len(t, batches, 1)

	batch := batches[0]
	assert.Equal(t, "OpenAI", batch.Provider)
	// the row without a model_id is dropped
	require.Len(t, batch.Models, 1)

	model := batch.Models[0]
	assert.Equal(t, "gpt-4o", model.ID)
	assert.Equal(t, "GPT-4", model.Family)
	require.NotNil(t, model.Pricing)
	assert.Equal(t, 5.0, model.Pricing.InputPer1MTokens)
	assert.Equal(t, 15.0, model.Pricing.OutputPer1MTokens)

	require.NotNil(t, model.Pricing.Source)
	assert.Equal(t, server.URL, model.Pricing.Source.URL)
	assert.Equal(t, "primary", model.Pricing.Source.Type)
	assert.Equal(t, "llm", model.Pricing.Source.ScrapeMethod)
	assert.NotEmpty(t, model.Pricing.Source.Collected)
}

func TestCollectPricingContinuesPastFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "down") {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("<html>ok</html>"))
	}))
	defer server.Close()

	parser := &fakeParser{responses: map[string]string{
		"Anthropic": `[{"model_id": "claude-sonnet", "input_per_1m_tokens": 3.0, "output_per_1m_tokens": 15.0}]`,
	}}

	scraper := NewScraper(NewTransport(), parser)
	batches, failures := scraper.CollectPricing(context.Background(), []Source{
		{Provider: "OpenAI", URL: server.URL + "/down"},
		{Provider: "Anthropic", URL: server.URL + "/pricing"},
	})

	// the failed provider is reported but the run continues
	require.Len(t, failures, 1)
	assert.Contains(t, failures[0].Error(), "OpenAI")
	require.Len(t, batches, 1)
	assert.Equal(t, "Anthropic", batches[0].Provider)
}

func TestCollectPricingRejectsNonArrayResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>ok</html>"))
	}))
	defer server.Close()

	parser := &fakeParser{responses: map[string]string{
		"OpenAI": `{"model_id": "gpt-4o"}`,
	}}

	scraper := NewScraper(NewTransport(), parser)
	batches, failures := scraper.CollectPricing(context.Background(), []Source{
		{Provider: "OpenAI", URL: server.URL},
	})

	assert.Empty(t, batches)
	require.Len(t, failures, 1)
}

func TestGuessFamily(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"gpt-4o", "GPT-4"},
		{"gpt-4o-mini", "GPT-4"},
		{"gpt-3.5-turbo", "GPT-3"},
		{"o1-preview", "o-series"},
		{"claude-3-5-sonnet", "Claude"},
		{"gemini-2.0-flash", "Gemini"},
		{"llama-3-70b", "Llama"},
		{"mixtral-8x22b", "Mistral"},
		{"command-r", "Other"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, guessFamily(tt.id))
		})
	}
}

func TestTransportFetch(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte("body"))
	}))
	defer server.Close()

	body, err := NewTransport().Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "body", body)
	assert.Equal(t, userAgent, gotUA)
}

func TestTransportFetchNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := NewTransport().Fetch(context.Background(), server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestPricingPromptTruncation(t *testing.T) {
	content := strings.Repeat("x", maxPromptContent+1000)

	prompt := PricingPrompt(content, "OpenAI")
	assert.Contains(t, prompt, "OpenAI")
	assert.Contains(t, prompt, "... [truncated]")
	assert.Less(t, len(prompt), maxPromptContent+2000)
}

func TestModelCardPrompt(t *testing.T) {
	prompt := ModelCardPrompt("MMLU: 85.2", "Llama 3 70B")
	assert.Contains(t, prompt, "Llama 3 70B")
	assert.Contains(t, prompt, "MMLU: 85.2")
	assert.NotContains(t, prompt, "[truncated]")
}
