package dataset

import (
	"encoding/json"
	"os"

	"github.com/agentstation/utc"

	"github.com/modelpareto/pareto/pkg/errors"
)

// CategoryFile is the parsed form of one benchmark category file: a JSON
// object with a "benchmarks" mapping plus whatever file-level metadata the
// maintainers keep alongside it.
type CategoryFile struct {
	Benchmarks map[string]Benchmark `json:"benchmarks"`

	// Extra holds unknown file-level fields for round-trip preservation.
	Extra map[string]json.RawMessage `json:"-"`
}

var categoryFileKnownKeys = []string{"benchmarks"}

type categoryFileFields CategoryFile

// UnmarshalJSON decodes the benchmarks mapping and preserves other keys.
func (f *CategoryFile) UnmarshalJSON(data []byte) error {
	var fields categoryFileFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	extra, err := splitExtra(data, categoryFileKnownKeys)
	if err != nil {
		return err
	}
	fields.Extra = extra
	if fields.Benchmarks == nil {
		fields.Benchmarks = make(map[string]Benchmark)
	}
	*f = CategoryFile(fields)
	return nil
}

// MarshalJSON emits the benchmarks mapping merged with preserved keys.
func (f CategoryFile) MarshalJSON() ([]byte, error) {
	return marshalWithExtra(categoryFileFields(f), f.Extra)
}

// ModelFile is the parsed form of one model file: a provider tag, a
// last-updated stamp, and an ordered list of model records.
type ModelFile struct {
	Provider    string    `json:"provider,omitempty"`
	LastUpdated *utc.Time `json:"last_updated,omitempty"`
	Models      []Model   `json:"models"`

	// Extra holds unknown file-level fields for round-trip preservation.
	Extra map[string]json.RawMessage `json:"-"`
}

var modelFileKnownKeys = []string{"provider", "last_updated", "models"}

type modelFileFields ModelFile

// UnmarshalJSON decodes the model list and preserves other keys.
func (f *ModelFile) UnmarshalJSON(data []byte) error {
	var fields modelFileFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	extra, err := splitExtra(data, modelFileKnownKeys)
	if err != nil {
		return err
	}
	fields.Extra = extra
	*f = ModelFile(fields)
	return nil
}

// MarshalJSON emits the model list merged with preserved keys.
func (f ModelFile) MarshalJSON() ([]byte, error) {
	return marshalWithExtra(modelFileFields(f), f.Extra)
}

// Touch refreshes the file's last-updated stamp.
func (f *ModelFile) Touch() {
	now := utc.Now()
	f.LastUpdated = &now
}

// FindModel returns the index of the model with the given ID, or -1.
func (f *ModelFile) FindModel(id string) int {
	for i := range f.Models {
		if f.Models[i].ID == id {
			return i
		}
	}
	return -1
}

// readJSONFile reads and decodes one dataset file. A read failure surfaces
// as an IOError and malformed JSON as a ParseError; both abort the caller's
// whole operation.
func (d *Dataset) readJSONFile(rel string, v any) error {
	data, err := os.ReadFile(d.abs(rel))
	if err != nil {
		return errors.WrapIO("read", rel, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.WrapParse("json", rel, err)
	}
	return nil
}

// writeJSONFile rewrites one dataset file in full with two-space indent.
// Keys come out sorted, which keeps rewrites deterministic.
func (d *Dataset) writeJSONFile(rel string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.WrapParse("json", rel, err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(d.abs(rel), data, 0o644); err != nil {
		return errors.WrapIO("write", rel, err)
	}
	return nil
}

// fileExists reports whether a root-relative path exists.
func (d *Dataset) fileExists(rel string) bool {
	_, err := os.Stat(d.abs(rel))
	return err == nil
}
