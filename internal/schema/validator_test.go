package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateYAMLSettings(t *testing.T) {
	r, err := ValidateYAML(Settings, []byte("project_name: 'My Project'\n"))
	require.NoError(t, err)
	assert.True(t, r.Valid)
	assert.Empty(t, r.Issues)
}

func TestValidateYAMLSettingsMissingName(t *testing.T) {
	r, err := ValidateYAML(Settings, []byte("other: 1\n"))
	require.NoError(t, err)
	assert.False(t, r.Valid)
	require.NotEmpty(t, r.Issues)
	assert.Equal(t, "required", r.Issues[0].Keyword)
}

func TestValidateYAMLSettingsEmptyName(t *testing.T) {
	r, err := ValidateYAML(Settings, []byte("project_name: ''\n"))
	require.NoError(t, err)
	assert.False(t, r.Valid)
	require.Len(t, r.Issues, 1)
	assert.Equal(t, "/project_name", r.Issues[0].Path)
	assert.Equal(t, "minLength", r.Issues[0].Keyword)
}

func TestValidateYAMLParseError(t *testing.T) {
	_, err := ValidateYAML(Settings, []byte("project_name: 'it's broken'\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing YAML")
}

func TestValidateJSONSampleData(t *testing.T) {
	data := `[{"id": 1, "question": "What is the capital of France?", "answer": "Paris"}]`
	r, err := ValidateJSON(SampleData, []byte(data))
	require.NoError(t, err)
	assert.True(t, r.Valid)
}

func TestValidateJSONSampleDataBadRecord(t *testing.T) {
	data := `[{"id": "one", "answer": "Paris"}]`
	r, err := ValidateJSON(SampleData, []byte(data))
	require.NoError(t, err)
	assert.False(t, r.Valid)

	keywords := map[string]bool{}
	for _, is := range r.Issues {
		keywords[is.Keyword] = true
	}
	assert.True(t, keywords["required"])
	assert.True(t, keywords["type"])
}

func TestValidateUnknownSchema(t *testing.T) {
	_, err := ValidateJSON("nope", []byte(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown schema")
}

func TestValidateFileByExtension(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "settings.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("project_name: demo\n"), 0644))
	r, err := ValidateFile(Settings, yamlPath)
	require.NoError(t, err)
	assert.True(t, r.Valid)

	txtPath := filepath.Join(dir, "settings.txt")
	require.NoError(t, os.WriteFile(txtPath, []byte("x"), 0644))
	_, err = ValidateFile(Settings, txtPath)
	assert.Error(t, err)
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "no validation issues", Summary(&ValidationResult{Valid: true}))
	assert.Equal(t, "1 validation issue", Summary(&ValidationResult{Issues: make([]ValidationIssue, 1)}))
	assert.Equal(t, "3 validation issues", Summary(&ValidationResult{Issues: make([]ValidationIssue, 3)}))
}
