package scrape

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/agentstation/utc"

	"github.com/modelpareto/pareto/pkg/dataset"
	"github.com/modelpareto/pareto/pkg/errors"
	"github.com/modelpareto/pareto/pkg/logging"
)

// PricingRow is one model's pricing as extracted from a provider page.
type PricingRow struct {
	ModelID           string  `json:"model_id"`
	ModelName         string  `json:"model_name"`
	InputPer1MTokens  float64 `json:"input_per_1m_tokens"`
	OutputPer1MTokens float64 `json:"output_per_1m_tokens"`
	Notes             string  `json:"notes,omitempty"`
}

// Scraper collects pricing from provider pages and shapes the results
// into model batches for the merge engine.
type Scraper struct {
	transport *Transport
	parser    Parser
}

// NewScraper creates a scraper over the given transport and parser.
func NewScraper(transport *Transport, parser Parser) *Scraper {
	return &Scraper{transport: transport, parser: parser}
}

// CollectPricing fetches and extracts pricing for every source. One
// provider failing does not stop the run; failures come back alongside
// the batches that succeeded.
func (s *Scraper) CollectPricing(ctx context.Context, sources []Source) ([]dataset.ModelBatch, []error) {
	var batches []dataset.ModelBatch
	var failures []error

	for _, src := range sources {
		batch, err := s.collectProvider(ctx, src)
		if err != nil {
			failures = append(failures, &errors.ScrapeError{
				Provider: src.Provider,
				URL:      src.URL,
				Err:      err,
			})
			logging.Warn().
				Str("provider", src.Provider).
				Str("url", src.URL).
				Err(err).
				Msg("provider collection failed")
			continue
		}
		logging.Info().
			Str("provider", src.Provider).
			Int("models", len(batch.Models)).
			Msg("collected pricing")
		batches = append(batches, batch)
	}
	return batches, failures
}

// collectProvider runs the fetch/extract pipeline for one source.
func (s *Scraper) collectProvider(ctx context.Context, src Source) (dataset.ModelBatch, error) {
	page, err := s.transport.Fetch(ctx, src.URL)
	if err != nil {
		return dataset.ModelBatch{}, err
	}

	raw, err := s.parser.Parse(ctx, PricingPrompt(page, src.Provider))
	if err != nil {
		return dataset.ModelBatch{}, err
	}

	var rows []PricingRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		return dataset.ModelBatch{}, errors.WrapParse("json", src.URL, err)
	}

	collected := utc.Now().Format("2006-01-02")
	batch := dataset.ModelBatch{Provider: src.Provider}
	for _, row := range rows {
		if row.ModelID == "" {
			continue
		}
		batch.Models = append(batch.Models, dataset.Model{
			ID:       row.ModelID,
			Name:     row.ModelName,
			Provider: src.Provider,
			Family:   guessFamily(row.ModelID),
			Pricing: &dataset.Pricing{
				InputPer1MTokens:  row.InputPer1MTokens,
				OutputPer1MTokens: row.OutputPer1MTokens,
				Source: &dataset.ScrapeSource{
					URL:          src.URL,
					Type:         "primary",
					Collected:    collected,
					ScrapeMethod: "llm",
				},
			},
		})
	}
	return batch, nil
}

// guessFamily derives a model family from the model identifier.
func guessFamily(modelID string) string {
	id := strings.ToLower(modelID)
	switch {
	case strings.HasPrefix(id, "gpt-4"):
		return "GPT-4"
	case strings.HasPrefix(id, "gpt-3"):
		return "GPT-3"
	case strings.HasPrefix(id, "o1") || strings.HasPrefix(id, "o3"):
		return "o-series"
	case strings.Contains(id, "claude"):
		return "Claude"
	case strings.Contains(id, "gemini"):
		return "Gemini"
	case strings.Contains(id, "llama"):
		return "Llama"
	case strings.Contains(id, "mistral") || strings.Contains(id, "mixtral"):
		return "Mistral"
	default:
		return "Other"
	}
}
