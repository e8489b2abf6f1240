package dataset

import (
	"sort"

	"github.com/modelpareto/pareto/pkg/errors"
)

// ModelInfo is the result of a point lookup: the record itself plus where
// it lives.
type ModelInfo struct {
	Model    Model  `json:"model"`
	File     string `json:"file"`
	Provider string `json:"provider"`
}

// ModelSummary is one row of a model listing.
type ModelSummary struct {
	ID                       string   `json:"id"`
	Name                     string   `json:"name"`
	Provider                 string   `json:"provider"`
	Family                   string   `json:"family"`
	ParametersBillions       *float64 `json:"parameters_billions,omitempty"`
	ActiveParametersBillions *float64 `json:"active_parameters_billions,omitempty"`
	File                     string   `json:"file"`
}

// ListFilter narrows a model listing. Zero values match everything.
type ListFilter struct {
	Provider string
	Family   string
}

// QueryModel looks up one model by key across the whole tree. Returns
// errors.ErrNotFound (via NotFoundError) when no file contains the key.
func (d *Dataset) QueryModel(id string) (*ModelInfo, error) {
	snap, err := d.Load()
	if err != nil {
		return nil, err
	}

	for _, rel := range sortedKeys(snap.ModelFiles) {
		file := snap.ModelFiles[rel]
		if idx := file.FindModel(id); idx >= 0 {
			return &ModelInfo{
				Model:    file.Models[idx],
				File:     rel,
				Provider: providerOf(file.Models[idx], file),
			}, nil
		}
	}
	return nil, errors.NewNotFoundError("model", id)
}

// ListModels returns summaries of every model matching the filter, sorted
// by (provider, family, id) for stable output. Pure read: nothing is
// mutated and nothing beyond the initial load touches the filesystem.
func (d *Dataset) ListModels(filter ListFilter) ([]ModelSummary, error) {
	snap, err := d.Load()
	if err != nil {
		return nil, err
	}

	var summaries []ModelSummary
	for rel, file := range snap.ModelFiles {
		for _, model := range file.Models {
			provider := providerOf(model, file)
			family := model.Family
			if family == "" {
				family = "Unknown"
			}
			if filter.Provider != "" && provider != filter.Provider {
				continue
			}
			if filter.Family != "" && family != filter.Family {
				continue
			}
			summaries = append(summaries, ModelSummary{
				ID:                       model.ID,
				Name:                     model.Name,
				Provider:                 provider,
				Family:                   family,
				ParametersBillions:       model.ParametersBillions,
				ActiveParametersBillions: model.ActiveParametersBillions,
				File:                     rel,
			})
		}
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Provider != summaries[j].Provider {
			return summaries[i].Provider < summaries[j].Provider
		}
		if summaries[i].Family != summaries[j].Family {
			return summaries[i].Family < summaries[j].Family
		}
		return summaries[i].ID < summaries[j].ID
	})
	return summaries, nil
}

// providerOf resolves a model's provider, falling back to the file-level
// tag and then to "Unknown".
func providerOf(model Model, file *ModelFile) string {
	if model.Provider != "" {
		return model.Provider
	}
	if file.Provider != "" {
		return file.Provider
	}
	return "Unknown"
}
