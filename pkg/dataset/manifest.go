package dataset

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/agentstation/utc"

	"github.com/modelpareto/pareto/pkg/errors"
)

// Manifest is the generated index of every model file in the dataset,
// written to manifest.json at the dataset root for consumers that want
// the file list without walking the tree.
type Manifest struct {
	ModelFiles  []string `json:"model_files"`
	LastUpdated utc.Time `json:"last_updated"`
}

// WriteManifest rebuilds manifest.json from the model tree. Every .json
// file under models/ is listed by its root-relative path, sorted, at any
// depth. A missing models directory is an error: a manifest of nothing
// is a sign the caller pointed at the wrong root.
func (d *Dataset) WriteManifest() (*Manifest, error) {
	files := []string{}
	err := filepath.WalkDir(d.ModelsDir(), func(p string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			return nil
		}
		rel, err := filepath.Rel(d.root, p)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, errors.WrapIO("walk", ModelsDirName, err)
	}
	sort.Strings(files)

	manifest := &Manifest{
		ModelFiles:  files,
		LastUpdated: utc.Now(),
	}
	if err := d.writeJSONFile(ManifestFileName, manifest); err != nil {
		return nil, err
	}
	return manifest, nil
}
