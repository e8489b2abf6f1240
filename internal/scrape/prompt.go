package scrape

import "fmt"

// maxPromptContent caps how much page content goes into a prompt. Pricing
// tables sit near the top of provider pages, so truncation rarely loses
// the payload.
const maxPromptContent = 15000

// PricingPrompt builds the extraction prompt for one provider's pricing
// page.
func PricingPrompt(content, provider string) string {
	return fmt.Sprintf(`Extract pricing information for ALL %s language models from the HTML below.

Return a JSON array with this exact structure:
[
  {
    "model_id": "gpt-4o",
    "model_name": "GPT-4o",
    "input_per_1m_tokens": 5.00,
    "output_per_1m_tokens": 15.00,
    "notes": "any relevant notes or context"
  }
]

Important:
- Convert all prices to dollars per 1 million tokens
- Use lowercase-with-hyphens for model_id (e.g., "gpt-4o", "claude-3-5-sonnet")
- Include only current production models (not deprecated/legacy)
- If a model has multiple pricing tiers, use the standard tier
- Return ONLY the JSON array, no other text

HTML:
%s
`, provider, truncate(content))
}

// ModelCardPrompt builds the extraction prompt for benchmark scores from a
// model card page.
func ModelCardPrompt(content, modelName string) string {
	return fmt.Sprintf(`Extract benchmark scores for %s from the model card below.

Return a JSON object with this structure:
{
  "model_name": "%s",
  "parameters_billions": 70.0,
  "benchmarks": {
    "mmlu": 85.2,
    "humaneval": 80.5,
    "gsm8k": 95.1
  },
  "notes": "any relevant context"
}

Common benchmark names (use these keys if found):
- mmlu: MMLU score (0-100)
- humaneval: HumanEval pass@1 (0-100)
- gsm8k: GSM8K score (0-100)
- bbh: Big-Bench Hard (0-100)
- mbpp: MBPP pass@1 (0-100)

Important:
- Only include benchmarks explicitly mentioned
- Scores should be 0-100 range (convert percentages if needed)
- If parameter count is mentioned, extract it
- Return ONLY the JSON object, no other text

Content:
%s
`, modelName, modelName, truncate(content))
}

func truncate(content string) string {
	if len(content) <= maxPromptContent {
		return content
	}
	return content[:maxPromptContent] + "\n... [truncated]"
}
