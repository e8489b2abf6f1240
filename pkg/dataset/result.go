package dataset

// Result accumulates every per-record outcome of one merge operation.
// All outcomes are collected before the caller decides what to do, so a
// user always sees the complete set of effects (or would-be effects).
type Result struct {
	Added   []string `json:"added"`
	Updated []string `json:"updated"`
	Skipped []string `json:"skipped"`
	Errors  []string `json:"errors"`

	// MissingBenchmarks lists "<model>: <benchmark>" entries for benchmark
	// keys referenced by a model but absent from the benchmark index.
	// Advisory only; never blocks the merge.
	MissingBenchmarks []string `json:"missing_benchmarks,omitempty"`
}

// NewResult returns an empty result with all lists allocated, so JSON
// output shows empty arrays rather than null.
func NewResult() *Result {
	return &Result{
		Added:   []string{},
		Updated: []string{},
		Skipped: []string{},
		Errors:  []string{},
	}
}

// HasChanges reports whether any record was added or updated.
func (r *Result) HasChanges() bool {
	return len(r.Added) > 0 || len(r.Updated) > 0
}

// HasErrors reports whether any record or batch error was recorded.
func (r *Result) HasErrors() bool {
	return len(r.Errors) > 0
}
