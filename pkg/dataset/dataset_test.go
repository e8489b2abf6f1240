package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestDataset builds a small dataset tree in a temp directory:
// two benchmark category files, the category index, a provider-level
// model file and one per-model file in a provider subdirectory.
func newTestDataset(t *testing.T) *Dataset {
	t.Helper()
	root := t.TempDir()

	writeTestFile(t, root, "benchmarks/categories.json", `{
  "categories": {
    "knowledge": "General knowledge",
    "coding": "Code generation"
  }
}
`)
	writeTestFile(t, root, "benchmarks/knowledge.json", `{
  "benchmarks": {
    "mmlu": {
      "name": "MMLU",
      "category": "knowledge",
      "max_score": 100
    }
  }
}
`)
	writeTestFile(t, root, "benchmarks/coding.json", `{
  "benchmarks": {
    "humaneval": {
      "name": "HumanEval",
      "category": "coding",
      "max_score": 100
    }
  }
}
`)
	writeTestFile(t, root, "models/openai.json", `{
  "provider": "OpenAI",
  "models": [
    {
      "id": "gpt-4o",
      "name": "GPT-4o",
      "family": "GPT-4",
      "pricing": {
        "input_per_1m_tokens": 5.0,
        "output_per_1m_tokens": 15.0
      },
      "benchmarks": {
        "mmlu": {"score": 88.7}
      }
    }
  ]
}
`)
	writeTestFile(t, root, "models/anthropic/claude-sonnet.json", `{
  "provider": "Anthropic",
  "models": [
    {
      "id": "claude-sonnet",
      "name": "Claude Sonnet",
      "family": "Claude"
    }
  ]
}
`)

	return New(root)
}

func writeTestFile(t *testing.T, root, rel, content string) {
	t.Helper()
	abs := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0o755))
	require.NoError(t, os.WriteFile(abs, []byte(content), 0o644))
}

// readTestFile returns the raw bytes of a root-relative dataset file.
func readTestFile(t *testing.T, d *Dataset, rel string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(d.Root(), filepath.FromSlash(rel)))
	require.NoError(t, err)
	return data
}

func TestLoad(t *testing.T) {
	d := newTestDataset(t)

	snap, err := d.Load()
	require.NoError(t, err)

	// categories.json is index metadata, not a category file
	require.Len(t, snap.BenchmarkFiles, 2)
	require.Contains(t, snap.BenchmarkFiles, "benchmarks/knowledge.json")
	require.Contains(t, snap.BenchmarkFiles, "benchmarks/coding.json")

	require.Len(t, snap.Benchmarks, 2)
	require.Contains(t, snap.Benchmarks, "mmlu")
	require.Contains(t, snap.Benchmarks, "humaneval")

	// one provider-level file plus one file in a provider subdirectory
	require.Len(t, snap.ModelFiles, 2)
	require.Contains(t, snap.ModelFiles, "models/openai.json")
	require.Contains(t, snap.ModelFiles, "models/anthropic/claude-sonnet.json")
	require.Equal(t, "OpenAI", snap.ModelFiles["models/openai.json"].Provider)
}

func TestLoadEmptyRoot(t *testing.T) {
	d := New(t.TempDir())

	snap, err := d.Load()
	require.NoError(t, err)
	require.Empty(t, snap.Benchmarks)
	require.Empty(t, snap.BenchmarkFiles)
	require.Empty(t, snap.ModelFiles)
}

func TestLoadMalformedFileFails(t *testing.T) {
	d := newTestDataset(t)
	writeTestFile(t, d.Root(), "models/broken.json", `{"models": [`)

	_, err := d.Load()
	require.Error(t, err)
}
