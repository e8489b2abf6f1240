package scrape

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSourcesDefaults(t *testing.T) {
	sources, err := LoadSources("")
	require.NoError(t, err)
	require.Len(t, sources, 3)
	assert.Equal(t, "OpenAI", sources[0].Provider)
}

func TestLoadSourcesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sources.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`sources:
  - provider: Mistral
    url: https://mistral.ai/technology/#pricing
  - provider: Cohere
    url: https://cohere.com/pricing
`), 0o644))

	sources, err := LoadSources(path)
	require.NoError(t, err)
	require.Len(t, sources, 2)
	assert.Equal(t, "Mistral", sources[0].Provider)
	assert.Equal(t, "https://cohere.com/pricing", sources[1].URL)
}

func TestLoadSourcesRejectsIncomplete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sources.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`sources:
  - provider: Mistral
`), 0o644))

	_, err := LoadSources(path)
	require.Error(t, err)
}

func TestLoadSourcesRejectsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sources.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sources: []\n"), 0o644))

	_, err := LoadSources(path)
	require.Error(t, err)
}

func TestLoadSourcesMissingFile(t *testing.T) {
	_, err := LoadSources(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
