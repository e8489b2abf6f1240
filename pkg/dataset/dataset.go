// Package dataset implements the merge engine for the pareto data tree:
// loading the sharded JSON record set, diffing incoming batches against it,
// applying accepted changes per target file, and validating global
// invariants (key uniqueness, referential integrity).
//
// The on-disk files are the single source of truth. Every operation builds
// a fresh in-memory Snapshot, computes against it, and rewrites whole files
// for accepted changes. Nothing is cached between invocations and no file
// locking is taken; concurrent writers are not coordinated.
package dataset

import (
	"path/filepath"
)

// Default directory names under the dataset root.
const (
	ModelsDirName     = "models"
	BenchmarksDirName = "benchmarks"

	// CategoriesFileName is the category index file, which holds category
	// metadata rather than benchmark records and is skipped by the loader.
	CategoriesFileName = "categories.json"

	// ManifestFileName is the generated index of model files at the
	// dataset root.
	ManifestFileName = "manifest.json"
)

// Dataset is a handle on one dataset directory. It holds no state beyond
// the root path; all reads and writes go straight to disk.
type Dataset struct {
	root string
}

// New returns a Dataset rooted at the given directory.
func New(root string) *Dataset {
	return &Dataset{root: root}
}

// Root returns the dataset root directory.
func (d *Dataset) Root() string {
	return d.root
}

// ModelsDir returns the absolute path of the models subtree.
func (d *Dataset) ModelsDir() string {
	return filepath.Join(d.root, ModelsDirName)
}

// BenchmarksDir returns the absolute path of the benchmarks subtree.
func (d *Dataset) BenchmarksDir() string {
	return filepath.Join(d.root, BenchmarksDirName)
}

// abs resolves a root-relative file path to an absolute one.
func (d *Dataset) abs(rel string) string {
	return filepath.Join(d.root, filepath.FromSlash(rel))
}
