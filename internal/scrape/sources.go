package scrape

import (
	"os"

	"github.com/goccy/go-yaml"

	"github.com/modelpareto/pareto/pkg/errors"
)

// Source is one provider pricing page to collect from.
type Source struct {
	Provider string `yaml:"provider" json:"provider"`
	URL      string `yaml:"url" json:"url"`
}

// DefaultSources are the built-in provider pricing pages, used when no
// sources file is given.
func DefaultSources() []Source {
	return []Source{
		{Provider: "OpenAI", URL: "https://openai.com/api/pricing/"},
		{Provider: "Anthropic", URL: "https://www.anthropic.com/pricing"},
		{Provider: "Google", URL: "https://ai.google.dev/pricing"},
	}
}

// sourcesFile is the on-disk shape of a sources config.
type sourcesFile struct {
	Sources []Source `yaml:"sources"`
}

// LoadSources reads a YAML sources file. An empty path returns the
// built-in defaults.
func LoadSources(path string) ([]Source, error) {
	if path == "" {
		return DefaultSources(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var file sourcesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}

	valid := make([]Source, 0, len(file.Sources))
	for _, src := range file.Sources {
		if src.Provider == "" || src.URL == "" {
			return nil, errors.NewValidationError("sources", src,
				"each source needs both provider and url")
		}
		valid = append(valid, src)
	}
	if len(valid) == 0 {
		return nil, errors.NewValidationError("sources", path, "no sources defined")
	}
	return valid, nil
}
