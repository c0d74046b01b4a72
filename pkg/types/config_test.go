// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		in     string
		want   OutputFormat
		errMsg string
	}{
		{in: "", want: FormatText},
		{in: "text", want: FormatText},
		{in: "yaml", want: FormatYAML},
		{in: "json", want: FormatJSON},
		{in: "csv", errMsg: `unsupported format "csv"`},
		{in: "YAML", errMsg: "use text, yaml, or json"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOutputFormat(tt.in)
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCollectConfigWithDefaults(t *testing.T) {
	got := CollectConfig{}.WithDefaults()
	assert.Equal(t, CollectConfig{
		InputPath:  "tokens.txt",
		OutputPath: "rt_tokens.txt",
		Format:     FormatText,
	}, got)

	custom := CollectConfig{InputPath: "in.log", OutputPath: "out.yaml", Format: FormatYAML}
	assert.Equal(t, custom, custom.WithDefaults())
}
