package extract

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelpareto/pareto/pkg/errors"
)

func TestJSON(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "bare object",
			text: `{"model_id": "gpt-4o"}`,
			want: `{"model_id": "gpt-4o"}`,
		},
		{
			name: "bare array with whitespace",
			text: "  \n[1, 2, 3]\n",
			want: `[1, 2, 3]`,
		},
		{
			name: "fenced json block",
			text: "Here you go:\n```json\n{\"a\": 1}\n```\nAnything else?",
			want: `{"a": 1}`,
		},
		{
			name: "fenced block without language tag",
			text: "```\n[{\"a\": 1}]\n```",
			want: `[{"a": 1}]`,
		},
		{
			name: "object buried in prose",
			text: `The extracted data is {"a": 1, "b": [2]} as requested.`,
			want: `{"a": 1, "b": [2]}`,
		},
		{
			name: "array buried in prose",
			text: `Results: [{"model_id": "gpt-4o"}] end.`,
			want: `[{"model_id": "gpt-4o"}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := JSON(tt.text)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}

func TestJSONNoPayload(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "empty", text: ""},
		{name: "plain prose", text: "I could not find any pricing information."},
		{name: "broken braces", text: "{this is not json"},
		{name: "fenced non-json", text: "```\nnot json either\n```"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := JSON(tt.text)
			require.Error(t, err)
			assert.True(t, errors.IsNoJSON(err))

			var extractionErr *errors.ExtractionError
			require.ErrorAs(t, err, &extractionErr)
			assert.Equal(t, len(DefaultStrategies), extractionErr.Strategies)
		})
	}
}

func TestJSONStrategyOrder(t *testing.T) {
	// a fenced block inside valid JSON: Direct wins before FencedBlock runs
	text := `{"note": "see block"}`
	got, err := JSON(text)
	require.NoError(t, err)
	assert.JSONEq(t, text, string(got))

	// the fence wins over the brace span when the whole text isn't JSON
	text = "prefix {broken\n```json\n{\"a\": 1}\n```"
	got, err = JSON(text)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": 1}`, string(got))
}

func TestJSONWithCustomStrategies(t *testing.T) {
	calls := 0
	failing := func(string) (json.RawMessage, bool) {
		calls++
		return nil, false
	}

	_, err := JSONWith("anything", []Strategy{failing, failing})
	require.Error(t, err)
	assert.Equal(t, 2, calls)
}

func TestExtractionErrorSnippet(t *testing.T) {
	long := make([]byte, 500)
	for i := range long {
		long[i] = 'x'
	}

	_, err := JSON(string(long))
	require.Error(t, err)

	var extractionErr *errors.ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.LessOrEqual(t, len(extractionErr.Snippet), 123)
}
