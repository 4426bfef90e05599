//go:build integration

package integration_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/spf13/viper"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir    string // PYBOOT_HOME, holds config.yaml
	Workspace  string // contains envs/ and a nested working directory
	EnvsRoot   string
	WorkingDir string
}

// setupTestEnv creates isolated temp directories and sets environment
// variables so config reads and writes stay sandboxed.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	env := &testEnv{
		HomeDir:   t.TempDir(),
		Workspace: t.TempDir(),
	}
	env.EnvsRoot = filepath.Join(env.Workspace, "envs")
	env.WorkingDir = filepath.Join(env.Workspace, "code", "service", "cmd")

	t.Setenv("PYBOOT_HOME", env.HomeDir)
	for _, dir := range []string{env.EnvsRoot, env.WorkingDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("creating %s: %v", dir, err)
		}
	}
	return env
}

// requirePython skips the test when no usable interpreter is on PATH and
// returns its name otherwise.
func requirePython(t *testing.T) string {
	t.Helper()
	candidates := []string{"python3", "python"}
	if runtime.GOOS == "windows" {
		candidates = []string{"python", "py"}
	}
	for _, c := range candidates {
		if _, err := exec.LookPath(c); err == nil {
			return c
		}
	}
	t.Skip("no python interpreter on PATH")
	return ""
}
