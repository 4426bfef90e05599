package doctor

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/pyboot-labs/pyboot/internal/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func probeReturning(version string, err error) ProbeFunc {
	return func(context.Context, string) (*semver.Version, error) {
		if err != nil {
			return nil, err
		}
		return semver.MustParse(version), nil
	}
}

func TestRunAllOK(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(base, "envs", "dev"), 0755))
	cfg := filepath.Join(base, "config.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("python: python3\n"), 0644))

	c := &Checker{Probe: probeReturning("3.12.1", nil)}
	results := c.Run(context.Background(), Options{
		Python:     "python3",
		Start:      base,
		EnvsDir:    "envs",
		ConfigFile: cfg,
	})

	require.Len(t, results, 3)
	for _, r := range results {
		assert.Equal(t, StatusOK, r.Status, r.Name)
	}
	assert.Contains(t, results[1].Detail, "1 environments")

	var buf bytes.Buffer
	assert.Equal(t, 0, Print(ui.New(&buf), results))
	assert.Contains(t, buf.String(), "[ OK ] python  python3 3.12.1")
}

func TestRunReportsProblems(t *testing.T) {
	base := t.TempDir()

	c := &Checker{Probe: probeReturning("", errors.New("python interpreter \"python3\" not found"))}
	results := c.Run(context.Background(), Options{
		Python:     "python3",
		Start:      base,
		EnvsDir:    "pyboot-missing-envs",
		ConfigFile: filepath.Join(base, "none.yaml"),
	})

	assert.Equal(t, StatusFail, results[0].Status)
	assert.Equal(t, StatusMiss, results[1].Status)
	assert.Equal(t, StatusMiss, results[2].Status)
	assert.Equal(t, 3, Print(ui.New(&bytes.Buffer{}), results))
}

func TestOldPythonWarns(t *testing.T) {
	c := &Checker{Probe: probeReturning("2.7.18", nil)}
	results := c.Run(context.Background(), Options{Python: "python", Start: t.TempDir(), EnvsDir: "envs"})
	assert.Equal(t, StatusWarn, results[0].Status)
	assert.Contains(t, results[0].Detail, "no venv module")
}
