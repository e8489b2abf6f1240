package dataset

import (
	"os"
	"path"
	"strings"
)

// Snapshot is the full in-memory materialization of the dataset at one
// point in time. It is rebuilt from disk on every engine invocation and
// discarded afterwards.
type Snapshot struct {
	// Benchmarks is the flat key -> record index merged across every
	// category file.
	Benchmarks map[string]Benchmark

	// BenchmarkFiles maps root-relative path -> parsed category file.
	BenchmarkFiles map[string]*CategoryFile

	// ModelFiles maps root-relative path -> parsed model file, covering
	// provider-level files and per-model files in provider subdirectories.
	ModelFiles map[string]*ModelFile
}

// Load reads every dataset file into a fresh Snapshot. Any unreadable or
// malformed file aborts the load: the merge engine must operate on a fully
// consistent view, so there is no partial recovery.
func (d *Dataset) Load() (*Snapshot, error) {
	snap := &Snapshot{
		Benchmarks:     make(map[string]Benchmark),
		BenchmarkFiles: make(map[string]*CategoryFile),
		ModelFiles:     make(map[string]*ModelFile),
	}

	if err := d.loadBenchmarks(snap); err != nil {
		return nil, err
	}
	if err := d.loadModels(snap); err != nil {
		return nil, err
	}
	return snap, nil
}

// loadBenchmarks reads every category file under benchmarks/, skipping the
// category index itself. A missing benchmarks directory is treated as an
// empty benchmark set.
func (d *Dataset) loadBenchmarks(snap *Snapshot) error {
	entries, err := os.ReadDir(d.BenchmarksDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") || name == CategoriesFileName {
			continue
		}
		rel := path.Join(BenchmarksDirName, name)
		var file CategoryFile
		if err := d.readJSONFile(rel, &file); err != nil {
			return err
		}
		snap.BenchmarkFiles[rel] = &file
		for id, record := range file.Benchmarks {
			snap.Benchmarks[id] = record
		}
	}
	return nil
}

// loadModels reads provider-level files directly under models/ and
// per-model files one level down in provider subdirectories.
func (d *Dataset) loadModels(snap *Snapshot) error {
	entries, err := os.ReadDir(d.ModelsDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() {
			if !strings.HasSuffix(name, ".json") {
				continue
			}
			rel := path.Join(ModelsDirName, name)
			if err := d.loadModelFile(snap, rel); err != nil {
				return err
			}
			continue
		}

		subEntries, err := os.ReadDir(d.abs(path.Join(ModelsDirName, name)))
		if err != nil {
			return err
		}
		for _, sub := range subEntries {
			if sub.IsDir() || !strings.HasSuffix(sub.Name(), ".json") {
				continue
			}
			rel := path.Join(ModelsDirName, name, sub.Name())
			if err := d.loadModelFile(snap, rel); err != nil {
				return err
			}
		}
	}
	return nil
}

func (d *Dataset) loadModelFile(snap *Snapshot, rel string) error {
	var file ModelFile
	if err := d.readJSONFile(rel, &file); err != nil {
		return err
	}
	snap.ModelFiles[rel] = &file
	return nil
}
