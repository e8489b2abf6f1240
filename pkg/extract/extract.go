// Package extract recovers structured JSON from free-form LLM output.
// Language models often wrap their answer in prose or markdown fences, so
// extraction runs an ordered list of strategies and the first one that
// yields valid JSON wins. Exhausting every strategy is a distinct error
// kind (errors.ErrNoJSON) so callers can retry with a different prompt
// instead of failing silently.
package extract

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/modelpareto/pareto/pkg/errors"
)

// Strategy attempts to pull a JSON document out of text. It returns the
// raw JSON and true on success.
type Strategy func(text string) (json.RawMessage, bool)

// fencedBlock matches a ```json ... ``` markdown block.
var fencedBlock = regexp.MustCompile("(?s)```(?:json)?\\s*\\n(.*?)\\n\\s*```")

// jsonSpan matches the widest {...} or [...] span in the text.
var jsonSpan = regexp.MustCompile(`(?s)(\{.*\}|\[.*\])`)

// DefaultStrategies are tried in order: the whole text as JSON, then a
// fenced code block, then the widest brace or bracket span.
var DefaultStrategies = []Strategy{
	Direct,
	FencedBlock,
	BraceSpan,
}

// JSON runs DefaultStrategies against text.
func JSON(text string) (json.RawMessage, error) {
	return JSONWith(text, DefaultStrategies)
}

// JSONWith runs the given strategies in order, short-circuiting on the
// first success.
func JSONWith(text string, strategies []Strategy) (json.RawMessage, error) {
	for _, strategy := range strategies {
		if raw, ok := strategy(text); ok {
			return raw, nil
		}
	}
	return nil, &errors.ExtractionError{
		Strategies: len(strategies),
		Snippet:    snippet(text),
	}
}

// Direct parses the whole text as JSON.
func Direct(text string) (json.RawMessage, bool) {
	return tryParse(strings.TrimSpace(text))
}

// FencedBlock parses the contents of the first markdown code fence.
func FencedBlock(text string) (json.RawMessage, bool) {
	m := fencedBlock.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}
	return tryParse(strings.TrimSpace(m[1]))
}

// BraceSpan parses the widest object or array span in the text.
func BraceSpan(text string) (json.RawMessage, bool) {
	m := jsonSpan.FindString(text)
	if m == "" {
		return nil, false
	}
	return tryParse(m)
}

func tryParse(candidate string) (json.RawMessage, bool) {
	if candidate == "" {
		return nil, false
	}
	if !json.Valid([]byte(candidate)) {
		return nil, false
	}
	return json.RawMessage(candidate), true
}

func snippet(text string) string {
	const max = 120
	text = strings.TrimSpace(text)
	if len(text) > max {
		return text[:max] + "..."
	}
	return text
}
