package dataset

import (
	"fmt"
	"sort"
)

// Report is the aggregated outcome of a full dataset validation run.
// Warnings never flip validity; errors always do.
type Report struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Validate loads a fresh snapshot and runs three independent checks over
// it: benchmark key uniqueness across category files, model key uniqueness
// across the whole model tree, and referential integrity of benchmark
// references. All findings are collected before returning so the caller
// sees the complete picture.
func (d *Dataset) Validate() (*Report, error) {
	snap, err := d.Load()
	if err != nil {
		return nil, err
	}

	report := &Report{
		Valid:    true,
		Errors:   []string{},
		Warnings: []string{},
	}

	checkBenchmarkUniqueness(snap, report)
	checkModelUniqueness(snap, report)
	checkBenchmarkReferences(snap, report)

	report.Valid = len(report.Errors) == 0
	return report, nil
}

// checkBenchmarkUniqueness flags benchmark keys present in more than one
// category file. Duplicates happen when a key is miscategorized or copied
// by hand-editing.
func checkBenchmarkUniqueness(snap *Snapshot, report *Report) {
	counts := make(map[string]int)
	for _, rel := range sortedKeys(snap.BenchmarkFiles) {
		for id := range snap.BenchmarkFiles[rel].Benchmarks {
			counts[id]++
		}
	}
	for _, id := range sortedKeys(counts) {
		if counts[id] > 1 {
			report.Errors = append(report.Errors,
				fmt.Sprintf("duplicate benchmark ID %q appears in %d category files", id, counts[id]))
		}
	}
}

// checkModelUniqueness flags model keys present in more than one file
// anywhere under the models tree.
func checkModelUniqueness(snap *Snapshot, report *Report) {
	counts := make(map[string]int)
	for _, rel := range sortedKeys(snap.ModelFiles) {
		for _, model := range snap.ModelFiles[rel].Models {
			counts[model.ID]++
		}
	}
	for _, id := range sortedKeys(counts) {
		if counts[id] > 1 {
			report.Errors = append(report.Errors,
				fmt.Sprintf("duplicate model ID %q appears %d times", id, counts[id]))
		}
	}
}

// checkBenchmarkReferences warns about benchmark keys referenced by models
// but absent from the benchmark index. Non-fatal: benchmarks and models
// are contributed out of order.
func checkBenchmarkReferences(snap *Snapshot, report *Report) {
	for _, rel := range sortedKeys(snap.ModelFiles) {
		for _, model := range snap.ModelFiles[rel].Models {
			refs := make([]string, 0, len(model.Benchmarks))
			for bench := range model.Benchmarks {
				if _, known := snap.Benchmarks[bench]; !known {
					refs = append(refs, bench)
				}
			}
			sort.Strings(refs)
			for _, bench := range refs {
				report.Warnings = append(report.Warnings,
					fmt.Sprintf("%s references unknown benchmark: %s", model.ID, bench))
			}
		}
	}
}
