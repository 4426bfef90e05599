package envs

import (
	"context"
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePythonVersion(t *testing.T) {
	tests := []struct {
		output string
		want   string
	}{
		{"Python 3.12.1\n", "3.12.1"},
		{"Python 2.7.18", "2.7.18"},
		{"Python 3.13.0rc1", "3.13.0"},
		{"python 3.9", "3.9.0"},
	}
	for _, tt := range tests {
		v, err := ParsePythonVersion(tt.output)
		require.NoError(t, err, tt.output)
		assert.Equal(t, tt.want, v.String(), tt.output)
	}
}

func TestParsePythonVersionInvalid(t *testing.T) {
	_, err := ParsePythonVersion("command not found")
	assert.Error(t, err)
}

func TestSupportsVenv(t *testing.T) {
	assert.True(t, SupportsVenv(semver.MustParse("3.3.0")))
	assert.True(t, SupportsVenv(semver.MustParse("3.12.1")))
	assert.False(t, SupportsVenv(semver.MustParse("3.2.6")))
	assert.False(t, SupportsVenv(semver.MustParse("2.7.18")))
}

func TestVenvBuilderMissingInterpreter(t *testing.T) {
	b := &VenvBuilder{Python: "pyboot-definitely-not-a-python"}
	err := b.Build(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
