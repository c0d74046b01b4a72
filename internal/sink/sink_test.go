// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sink

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/rtextract/pkg/types"
)

func sampleDoc() Document {
	return Document{
		RunID:     "3f2b8c1e-0000-4000-8000-000000000001",
		Source:    "tokens.txt",
		Found:     3,
		Unique:    2,
		Timestamp: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Tokens:    []string{"rt_AAA", "rt_BBB"},
	}
}

func TestWriteFileText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rt_tokens.txt")

	require.NoError(t, WriteFile(path, types.FormatText, sampleDoc()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "rt_AAA\nrt_BBB\n", string(data))
}

func TestWriteFileOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rt_tokens.txt")
	require.NoError(t, os.WriteFile(path, []byte("rt_OLD\nrt_OLDER\nrt_OLDEST\n"), 0o644))

	doc := sampleDoc()
	doc.Tokens = []string{"rt_NEW"}
	require.NoError(t, WriteFile(path, types.FormatText, doc))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "rt_NEW\n", string(data))
}

func TestWriteFileYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rt_tokens.yaml")

	require.NoError(t, WriteFile(path, types.FormatYAML, sampleDoc()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "run_id: 3f2b8c1e-0000-4000-8000-000000000001")

	var got Document
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, []string{"rt_AAA", "rt_BBB"}, got.Tokens)
	assert.Equal(t, 3, got.Found)
	assert.Equal(t, 2, got.Unique)
}

func TestWriteFileJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rt_tokens.json")

	require.NoError(t, WriteFile(path, types.FormatJSON, sampleDoc()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "tokens.txt", got["source"])
	assert.Equal(t, []any{"rt_AAA", "rt_BBB"}, got["tokens"])
}

func TestWriteFileErrors(t *testing.T) {
	dir := t.TempDir()

	err := WriteFile(filepath.Join(dir, "out"), types.OutputFormat("csv"), sampleDoc())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported format "csv"`)
	assert.NoFileExists(t, filepath.Join(dir, "out"))

	err = WriteFile(filepath.Join(dir, "missing", "out"), types.FormatText, sampleDoc())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "writing output")
}

func TestPrintReport(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   string
	}{
		{
			name:   "tokens",
			tokens: []string{"rt_AbC123.xyz", "rt_TOKEN1"},
			want:   "Found 2 refresh token(s):\n\nrt_AbC123.xyz\nrt_TOKEN1\n",
		},
		{
			name:   "none",
			tokens: []string{},
			want:   "No refresh tokens found.\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			PrintReport(&buf, tt.tokens)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
