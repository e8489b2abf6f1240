package dataset

import (
	"encoding/json"
	"os"

	"github.com/modelpareto/pareto/pkg/errors"
)

// BenchmarkBatch is a caller-supplied set of benchmark records to merge in
// one operation.
type BenchmarkBatch struct {
	Benchmarks map[string]Benchmark `json:"benchmarks"`
}

// ModelBatch is a caller-supplied set of model records to merge into one
// destination file. Either Provider or TargetFile must be set; TargetFile
// wins when both are present.
type ModelBatch struct {
	Provider   string  `json:"provider,omitempty"`
	TargetFile string  `json:"target_file,omitempty"`
	Models     []Model `json:"models"`
}

// ReadBenchmarkBatch parses a benchmark batch from a JSON file.
func ReadBenchmarkBatch(path string) (*BenchmarkBatch, error) {
	var batch BenchmarkBatch
	if err := readBatchFile(path, &batch); err != nil {
		return nil, err
	}
	return &batch, nil
}

// ReadModelBatch parses a model batch from a JSON file.
func ReadModelBatch(path string) (*ModelBatch, error) {
	var batch ModelBatch
	if err := readBatchFile(path, &batch); err != nil {
		return nil, err
	}
	return &batch, nil
}

func readBatchFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.WrapIO("read", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.WrapParse("json", path, err)
	}
	return nil
}
