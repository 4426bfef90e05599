package envs

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// MinPythonVersion is the first Python release that ships the venv module.
const MinPythonVersion = ">= 3.3"

var pythonVersionPattern = regexp.MustCompile(`(?i)python\s+(\d+(?:\.\d+){0,2})`)

// ParsePythonVersion extracts the version from `python --version` output,
// e.g. "Python 3.12.1" or "Python 3.13.0rc1".
func ParsePythonVersion(output string) (*semver.Version, error) {
	m := pythonVersionPattern.FindStringSubmatch(strings.TrimSpace(output))
	if m == nil {
		return nil, fmt.Errorf("unrecognized python version output %q", strings.TrimSpace(output))
	}
	return semver.NewVersion(m[1])
}

// SupportsVenv reports whether v satisfies MinPythonVersion.
func SupportsVenv(v *semver.Version) bool {
	c, err := semver.NewConstraint(MinPythonVersion)
	if err != nil {
		return false
	}
	return c.Check(v)
}

// ProbePython runs `<python> --version` and returns the parsed version.
// Python 2 prints its version to stderr, so both streams are read.
func ProbePython(ctx context.Context, python string) (*semver.Version, error) {
	bin, err := exec.LookPath(python)
	if err != nil {
		return nil, fmt.Errorf("python interpreter %q not found: %w", python, err)
	}

	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, "--version")
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("running %s --version: %w", python, err)
	}
	return ParsePythonVersion(out.String())
}

// VenvBuilder creates environments with `<python> -m venv <path>`.
type VenvBuilder struct {
	Python string
	// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// Build checks the interpreter version and runs the venv module, waiting for
// it to exit. A non-zero exit status is returned as an error.
func (b *VenvBuilder) Build(ctx context.Context, path string) error {
	v, err := ProbePython(ctx, b.Python)
	if err != nil {
		return err
	}
	if !SupportsVenv(v) {
		return fmt.Errorf("python %s does not provide the venv module (need %s)", v, MinPythonVersion)
	}
	slog.Debug("building virtual environment", "python", b.Python, "version", v.String(), "path", path)

	cmd := exec.CommandContext(ctx, b.Python, "-m", "venv", path)
	cmd.Stdout = b.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = b.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return fmt.Errorf("%s -m venv exited with status %d", b.Python, exitErr.ExitCode())
		}
		return fmt.Errorf("running %s -m venv: %w", b.Python, err)
	}
	return nil
}
