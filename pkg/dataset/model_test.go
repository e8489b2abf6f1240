package dataset

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelRoundTripPreservesUnknownFields(t *testing.T) {
	raw := `{
  "id": "gpt-4o",
  "name": "GPT-4o",
  "release_date": "2024-05-13",
  "curator_notes": {"reviewed": true}
}`

	var model Model
	require.NoError(t, json.Unmarshal([]byte(raw), &model))

	assert.Equal(t, "gpt-4o", model.ID)
	require.Contains(t, model.Extra, "release_date")
	require.Contains(t, model.Extra, "curator_notes")

	out, err := json.Marshal(model)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, "2024-05-13", got["release_date"])
	assert.Equal(t, map[string]any{"reviewed": true}, got["curator_notes"])
}

func TestMergeOverwritesPresentFieldsOnly(t *testing.T) {
	params := 70.0
	existing := Model{
		ID:                 "llama-3-70b",
		Name:               "Llama 3 70B",
		Family:             "Llama",
		ParametersBillions: &params,
		Pricing: &Pricing{
			InputPer1MTokens:  0.6,
			OutputPer1MTokens: 0.7,
		},
	}
	update := Model{
		ID: "llama-3-70b",
		Pricing: &Pricing{
			InputPer1MTokens:  0.5,
			OutputPer1MTokens: 0.7,
		},
	}

	merged, err := Merge(existing, update)
	require.NoError(t, err)

	// fields absent from the update survive
	assert.Equal(t, "Llama 3 70B", merged.Name)
	assert.Equal(t, "Llama", merged.Family)
	require.NotNil(t, merged.ParametersBillions)
	assert.Equal(t, 70.0, *merged.ParametersBillions)

	// pricing is replaced wholesale
	require.NotNil(t, merged.Pricing)
	assert.Equal(t, 0.5, merged.Pricing.InputPer1MTokens)
}

func TestMergeZeroValueFieldOverwrites(t *testing.T) {
	existing := Model{ID: "m1", Name: "M1", Family: "F"}

	// an explicit empty string in the incoming JSON is present, not absent
	var update Model
	require.NoError(t, json.Unmarshal([]byte(`{"id": "m1", "name": ""}`), &update))

	merged, err := Merge(existing, update)
	require.NoError(t, err)

	assert.Equal(t, "", merged.Name)
	// fields the update never mentioned still survive
	assert.Equal(t, "F", merged.Family)
}

func TestMergeNullClearsSubRecord(t *testing.T) {
	existing := Model{
		ID: "m1",
		Pricing: &Pricing{
			InputPer1MTokens:  5.0,
			OutputPer1MTokens: 15.0,
		},
	}

	var update Model
	require.NoError(t, json.Unmarshal([]byte(`{"id": "m1", "pricing": null}`), &update))

	merged, err := Merge(existing, update)
	require.NoError(t, err)
	assert.Nil(t, merged.Pricing)
}

func TestMergeStructLiteralUpdateSkipsZeroFields(t *testing.T) {
	// updates built in code carry no presence info, so zero fields mean
	// "leave alone" exactly as before
	existing := Model{ID: "m1", Name: "M1"}
	update := Model{ID: "m1", Family: "F"}

	merged, err := Merge(existing, update)
	require.NoError(t, err)
	assert.Equal(t, "M1", merged.Name)
	assert.Equal(t, "F", merged.Family)
}

func TestMergeReplacesSubRecordsWholesale(t *testing.T) {
	existing := Model{
		ID: "m",
		Benchmarks: map[string]Score{
			"mmlu":      {"score": 80.0},
			"humaneval": {"score": 70.0},
		},
	}
	update := Model{
		ID: "m",
		Benchmarks: map[string]Score{
			"mmlu": {"score": 85.0},
		},
	}

	merged, err := Merge(existing, update)
	require.NoError(t, err)

	// the benchmarks map is replaced, not merged key-by-key
	require.Len(t, merged.Benchmarks, 1)
	assert.NotContains(t, merged.Benchmarks, "humaneval")
}

func TestMergePreservesExtraFields(t *testing.T) {
	var existing Model
	require.NoError(t, json.Unmarshal([]byte(`{
  "id": "m",
  "name": "M",
  "release_date": "2024-01-01"
}`), &existing))

	update := Model{ID: "m", Name: "M v2"}

	merged, err := Merge(existing, update)
	require.NoError(t, err)

	assert.Equal(t, "M v2", merged.Name)
	require.Contains(t, merged.Extra, "release_date")
}

func TestModelEqualNormalizesRepresentation(t *testing.T) {
	var a, b Model
	require.NoError(t, json.Unmarshal([]byte(`{"id":"m","benchmarks":{"mmlu":{"score":85}}}`), &a))
	require.NoError(t, json.Unmarshal([]byte(`{"id":"m","benchmarks":{"mmlu":{"score":85.0}}}`), &b))

	assert.True(t, a.Equal(b))
}

func TestScoreValue(t *testing.T) {
	s := Score{"score": 91.5, "source": "paper"}
	v, ok := s.Value()
	require.True(t, ok)
	assert.Equal(t, 91.5, v)

	_, ok = Score{"source": "paper"}.Value()
	assert.False(t, ok)
}

func TestBenchmarkCategory(t *testing.T) {
	assert.Equal(t, "coding", Benchmark{"category": "coding"}.Category())
	assert.Equal(t, DefaultCategory, Benchmark{}.Category())
	assert.Equal(t, DefaultCategory, Benchmark{"category": ""}.Category())
}
