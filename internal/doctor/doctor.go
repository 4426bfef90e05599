// Package doctor runs health checks for the Python interpreter used to build
// environments, the envs folder reachable from the working directory, and the
// config file.
package doctor

import (
	"context"
	"fmt"
	"os"

	"github.com/Masterminds/semver/v3"
	"github.com/pyboot-labs/pyboot/internal/envs"
	"github.com/pyboot-labs/pyboot/internal/ui"
)

// Status is the result of a single check.
type Status string

const (
	StatusOK   Status = " OK "
	StatusWarn Status = "WARN"
	StatusMiss Status = "MISS"
	StatusFail Status = "FAIL"
)

// Result is one line of the doctor report.
type Result struct {
	Name   string
	Status Status
	Detail string
}

// Options selects what the checks look at.
type Options struct {
	Python     string
	Start      string
	EnvsDir    string
	ConfigFile string
}

// ProbeFunc returns the version of a Python interpreter.
type ProbeFunc func(ctx context.Context, python string) (*semver.Version, error)

// Checker runs the checks. Probe defaults to envs.ProbePython.
type Checker struct {
	Probe ProbeFunc
}

// Run executes every check and returns the results in display order.
func (c *Checker) Run(ctx context.Context, opts Options) []Result {
	return []Result{
		c.checkPython(ctx, opts.Python),
		checkEnvsRoot(opts.Start, opts.EnvsDir),
		checkConfigFile(opts.ConfigFile),
	}
}

func (c *Checker) checkPython(ctx context.Context, python string) Result {
	probe := c.Probe
	if probe == nil {
		probe = envs.ProbePython
	}

	r := Result{Name: "python"}
	v, err := probe(ctx, python)
	if err != nil {
		r.Status = StatusFail
		r.Detail = err.Error()
		return r
	}
	if !envs.SupportsVenv(v) {
		r.Status = StatusWarn
		r.Detail = fmt.Sprintf("%s %s has no venv module (need %s)", python, v, envs.MinPythonVersion)
		return r
	}
	r.Status = StatusOK
	r.Detail = fmt.Sprintf("%s %s", python, v)
	return r
}

func checkEnvsRoot(start, dirName string) Result {
	r := Result{Name: "envs"}
	root, ok := envs.FindRoot(start, dirName)
	if !ok {
		r.Status = StatusMiss
		r.Detail = fmt.Sprintf("no %q folder in %s or its parents", dirName, start)
		return r
	}

	names, err := envs.List(root)
	if err != nil {
		r.Status = StatusFail
		r.Detail = err.Error()
		return r
	}
	r.Status = StatusOK
	r.Detail = fmt.Sprintf("%s (%d environments)", root, len(names))
	return r
}

func checkConfigFile(path string) Result {
	r := Result{Name: "config"}
	if _, err := os.Stat(path); err != nil {
		r.Status = StatusMiss
		r.Detail = path + " does not exist (defaults in use)"
		return r
	}
	r.Status = StatusOK
	r.Detail = path
	return r
}

// Print writes results and returns how many were not OK.
func Print(c *ui.Console, results []Result) int {
	problems := 0
	for _, r := range results {
		if r.Status != StatusOK {
			problems++
		}
		c.Status(string(r.Status), "%-7s %s", r.Name, r.Detail)
	}
	return problems
}
