package dataset

import (
	"encoding/json"
	"reflect"
)

// Model represents one language model record. Known fields are typed;
// any other keys found in a file are carried through Extra so a whole-file
// rewrite never drops hand-edited data.
type Model struct {
	// Core identity
	ID       string `json:"id"`                 // Unique model identifier (must not be empty)
	Name     string `json:"name,omitempty"`     // Display name
	Provider string `json:"provider,omitempty"` // Vendor name
	Family   string `json:"family,omitempty"`   // Model family (e.g. "GPT-4", "Claude")

	// Parameter counts, in billions. Optional; active counts apply to
	// mixture-of-experts models.
	ParametersBillions       *float64         `json:"parameters_billions,omitempty"`
	ActiveParametersBillions *float64         `json:"active_parameters_billions,omitempty"`
	ParametersSource         *ParameterSource `json:"parameters_source,omitempty"`

	// Operational characteristics
	Pricing    *Pricing         `json:"pricing,omitempty"`    // Optional pricing information
	Benchmarks map[string]Score `json:"benchmarks,omitempty"` // Benchmark key -> score record

	// Extra holds unknown fields verbatim for round-trip preservation.
	Extra map[string]json.RawMessage `json:"-"`

	// present records the raw value of every known key seen in the source
	// JSON, so Merge can tell a zero value apart from an absent field.
	// Nil for records built as struct literals.
	present map[string]json.RawMessage
}

// ParameterSource documents where a parameter count came from.
type ParameterSource struct {
	Type  string `json:"type,omitempty"` // "official", "estimate", "leak"
	URL   string `json:"url,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// Pricing represents per-token costs in dollars per million tokens.
type Pricing struct {
	InputPer1MTokens  float64       `json:"input_per_1m_tokens"`
	OutputPer1MTokens float64       `json:"output_per_1m_tokens"`
	Source            *ScrapeSource `json:"source,omitempty"`
}

// ScrapeSource records where and how a pricing figure was collected.
type ScrapeSource struct {
	URL          string `json:"url,omitempty"`
	Type         string `json:"type,omitempty"` // "primary", "secondary"
	Collected    string `json:"collected,omitempty"`
	ScrapeMethod string `json:"scrape_method,omitempty"` // "api", "llm", "regex"
}

// Score is one benchmark score record. Kept as a bag because contributors
// attach arbitrary context (date, source, harness) alongside the number.
type Score map[string]any

// Value returns the numeric score, if present.
func (s Score) Value() (float64, bool) {
	v, ok := s["score"].(float64)
	return v, ok
}

// modelKnownKeys are the JSON keys owned by Model's typed fields.
var modelKnownKeys = []string{
	"id", "name", "provider", "family",
	"parameters_billions", "active_parameters_billions", "parameters_source",
	"pricing", "benchmarks",
}

// modelFields mirrors Model without its methods, for plain JSON codec use.
type modelFields Model

// UnmarshalJSON decodes the typed fields, stashes everything else in Extra,
// and remembers which known keys the source JSON carried.
func (m *Model) UnmarshalJSON(data []byte) error {
	var fields modelFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	present := make(map[string]json.RawMessage, len(modelKnownKeys))
	for _, k := range modelKnownKeys {
		if v, ok := raw[k]; ok {
			present[k] = v
		}
		delete(raw, k)
	}
	if len(raw) > 0 {
		fields.Extra = raw
	}
	fields.present = present
	*m = Model(fields)
	return nil
}

// MarshalJSON emits the typed fields merged with Extra. Typed fields win
// on key collisions.
func (m Model) MarshalJSON() ([]byte, error) {
	return marshalWithExtra(modelFields(m), m.Extra)
}

// Equal reports whether two records are identical field-for-field,
// comparing their canonical JSON forms so that Extra fields participate.
func (m Model) Equal(other Model) bool {
	return jsonEqual(m, other)
}

// Merge overlays update onto existing with shallow key overwrite: every
// top-level field present in update replaces the old value, and fields
// absent from update are preserved. Sub-records (pricing, benchmarks) are
// replaced wholesale when present, never merged recursively.
func Merge(existing, update Model) (Model, error) {
	base, err := toRawMap(existing)
	if err != nil {
		return Model{}, err
	}
	patch, err := toRawMap(update)
	if err != nil {
		return Model{}, err
	}
	for k, v := range patch {
		base[k] = v
	}
	// Re-marshaling the update drops zero-valued known fields through
	// omitempty. Restore any key the update's source JSON actually carried,
	// so an explicit "" or null still overwrites the existing value.
	for k, raw := range update.present {
		if _, ok := patch[k]; !ok {
			base[k] = raw
		}
	}
	data, err := json.Marshal(base)
	if err != nil {
		return Model{}, err
	}
	var merged Model
	if err := json.Unmarshal(data, &merged); err != nil {
		return Model{}, err
	}
	return merged, nil
}

// splitExtra returns the keys of data not claimed by known, or nil when
// there are none.
func splitExtra(data []byte, known []string) (map[string]json.RawMessage, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	for _, k := range known {
		delete(raw, k)
	}
	if len(raw) == 0 {
		return nil, nil
	}
	return raw, nil
}

// marshalWithExtra marshals v and merges extra keys into the result.
func marshalWithExtra(v any, extra map[string]json.RawMessage) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if len(extra) == 0 {
		return data, nil
	}
	var merged map[string]json.RawMessage
	if err := json.Unmarshal(data, &merged); err != nil {
		return nil, err
	}
	for k, val := range extra {
		if _, ok := merged[k]; !ok {
			merged[k] = val
		}
	}
	return json.Marshal(merged)
}

// toRawMap marshals v into a key -> raw value map.
func toRawMap(v any) (map[string]json.RawMessage, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// jsonEqual compares two values through their decoded JSON forms, which
// normalizes numeric types and map ordering.
func jsonEqual(a, b any) bool {
	da, err := json.Marshal(a)
	if err != nil {
		return false
	}
	db, err := json.Marshal(b)
	if err != nil {
		return false
	}
	var va, vb any
	if err := json.Unmarshal(da, &va); err != nil {
		return false
	}
	if err := json.Unmarshal(db, &vb); err != nil {
		return false
	}
	return reflect.DeepEqual(va, vb)
}
