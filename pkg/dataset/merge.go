package dataset

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/modelpareto/pareto/pkg/logging"
)

// MergeOptions controls how a batch is applied.
type MergeOptions struct {
	// DryRun computes and reports the full classification without writing
	// any file.
	DryRun bool
}

// AddBenchmarks merges a batch of benchmark records into their category
// files. Each key is classified independently as added, updated, or
// skipped; a key whose category file is missing gets an error entry and
// the rest of the batch proceeds. Returned errors are load or write
// failures only — classification outcomes live in the Result.
func (d *Dataset) AddBenchmarks(batch *BenchmarkBatch, opts MergeOptions) (*Result, error) {
	result := NewResult()
	if batch == nil || len(batch.Benchmarks) == 0 {
		return result, nil
	}

	snap, err := d.Load()
	if err != nil {
		return nil, err
	}

	for _, id := range sortedKeys(batch.Benchmarks) {
		record := batch.Benchmarks[id]
		category := record.Category()
		rel := path.Join(BenchmarksDirName, category+".json")

		file, ok := snap.BenchmarkFiles[rel]
		if !ok {
			result.Errors = append(result.Errors, fmt.Sprintf("category file not found: %s.json", category))
			continue
		}

		existing, exists := snap.Benchmarks[id]
		switch {
		case exists && existing.Equal(record):
			result.Skipped = append(result.Skipped, fmt.Sprintf("%s (identical)", id))

		case exists:
			result.Updated = append(result.Updated, fmt.Sprintf("%s (data differs)", id))
			if !opts.DryRun {
				file.Benchmarks[id] = record
				if err := d.writeJSONFile(rel, file); err != nil {
					return nil, err
				}
			}

		default:
			result.Added = append(result.Added, id)
			if !opts.DryRun {
				file.Benchmarks[id] = record
				if err := d.writeJSONFile(rel, file); err != nil {
					return nil, err
				}
			}
		}
	}

	logging.Debug().
		Int("added", len(result.Added)).
		Int("updated", len(result.Updated)).
		Int("skipped", len(result.Skipped)).
		Int("errors", len(result.Errors)).
		Bool("dry_run", opts.DryRun).
		Msg("benchmark batch merged")

	return result, nil
}

// AddModels merges a batch of model records into one destination file.
// The batch must name a provider or an explicit target file; a missing or
// unresolvable destination rejects the whole batch, since every record in
// it targets that one file. Updates merge field-by-field into the existing
// record rather than replacing it. Benchmark references are cross-checked
// against the global index; unknown keys are reported but never block.
func (d *Dataset) AddModels(batch *ModelBatch, opts MergeOptions) (*Result, error) {
	result := NewResult()
	result.MissingBenchmarks = []string{}
	if batch == nil || len(batch.Models) == 0 && batch.Provider == "" && batch.TargetFile == "" {
		return result, nil
	}

	if batch.Provider == "" && batch.TargetFile == "" {
		result.Errors = append(result.Errors, "must specify either 'provider' or 'target_file'")
		return result, nil
	}

	rel := batch.TargetFile
	if rel == "" {
		rel = path.Join(ModelsDirName, strings.ToLower(batch.Provider)+".json")
	}
	rel = path.Clean(rel)

	snap, err := d.Load()
	if err != nil {
		return nil, err
	}

	file, ok := snap.ModelFiles[rel]
	if !ok {
		// An explicit target_file may point anywhere under the data root,
		// not just the models/ subtree the loader walks.
		if !d.fileExists(rel) {
			result.Errors = append(result.Errors, fmt.Sprintf("target file not found: %s", rel))
			return result, nil
		}
		if err := d.loadModelFile(snap, rel); err != nil {
			return nil, err
		}
		file = snap.ModelFiles[rel]
	}

	for _, model := range batch.Models {
		if model.ID == "" {
			result.Errors = append(result.Errors, "model record missing required field 'id'")
			continue
		}

		for _, bench := range sortedKeys(model.Benchmarks) {
			if _, known := snap.Benchmarks[bench]; !known {
				result.MissingBenchmarks = append(result.MissingBenchmarks,
					fmt.Sprintf("%s: %s", model.ID, bench))
			}
		}

		idx := file.FindModel(model.ID)
		switch {
		case idx >= 0 && file.Models[idx].Equal(model):
			result.Skipped = append(result.Skipped, fmt.Sprintf("%s (identical)", model.ID))

		case idx >= 0:
			result.Updated = append(result.Updated, fmt.Sprintf("%s (data differs)", model.ID))
			if !opts.DryRun {
				merged, err := Merge(file.Models[idx], model)
				if err != nil {
					return nil, err
				}
				file.Models[idx] = merged
				file.Touch()
				if err := d.writeJSONFile(rel, file); err != nil {
					return nil, err
				}
			}

		default:
			result.Added = append(result.Added, model.ID)
			if !opts.DryRun {
				file.Models = append(file.Models, model)
				file.Touch()
				if err := d.writeJSONFile(rel, file); err != nil {
					return nil, err
				}
			}
		}
	}

	logging.Debug().
		Str("target", rel).
		Int("added", len(result.Added)).
		Int("updated", len(result.Updated)).
		Int("skipped", len(result.Skipped)).
		Int("missing_benchmarks", len(result.MissingBenchmarks)).
		Bool("dry_run", opts.DryRun).
		Msg("model batch merged")

	return result, nil
}

// sortedKeys returns map keys in sorted order for deterministic reports.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
