package scaffold

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pyboot-labs/pyboot/internal/platform"
	"github.com/pyboot-labs/pyboot/internal/schema"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ScaffoldData holds all template variables available to scaffold templates.
type ScaffoldData struct {
	Name string // As entered, e.g. "My Project"
	Slug string // Derived: "my_project"
	Year int
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	OutputDir string // absolute
	Dirs      []string
	Files     []string
	Checks    []CheckResult
	Warnings  []string
}

// CheckResult is the schema validation outcome for one generated file.
// Validation is nil when the file could not be validated at all.
type CheckResult struct {
	Path       string
	Validation *schema.ValidationResult
}

var lower = cases.Lower(language.Und)

// Slugify lowercases name and replaces spaces with underscores. No other
// characters are touched.
func Slugify(name string) string {
	return strings.ReplaceAll(lower.String(name), " ", "_")
}

// NewScaffoldData creates a ScaffoldData with derived fields populated.
func NewScaffoldData(name string) *ScaffoldData {
	return &ScaffoldData{
		Name: name,
		Slug: Slugify(name),
		Year: time.Now().Year(),
	}
}

// validateSlug rejects slugs that cannot name a single folder.
func validateSlug(slug string) error {
	if slug == "" {
		return fmt.Errorf("project name must not be empty")
	}
	if slug == "." || slug == ".." || strings.ContainsAny(slug, `/\`) {
		return fmt.Errorf("project name %q does not produce a usable folder name", slug)
	}
	return nil
}

// Generate writes set for data under baseDir/<slug>. Directories that already
// exist are reused and files are overwritten. Generated files named in the
// set's checks are validated afterwards; problems become warnings.
func Generate(set *Set, data *ScaffoldData, baseDir string) (*Result, error) {
	if err := validateSlug(data.Slug); err != nil {
		return nil, err
	}

	dirs, files, err := Plan(set, data)
	if err != nil {
		return nil, err
	}

	outputDir, err := filepath.Abs(filepath.Join(baseDir, data.Slug))
	if err != nil {
		return nil, fmt.Errorf("resolving output directory: %w", err)
	}

	result := &Result{OutputDir: outputDir}

	for _, d := range dirs {
		full := filepath.Join(outputDir, filepath.FromSlash(d))
		if err := os.MkdirAll(full, dirMode); err != nil {
			return result, fmt.Errorf("creating directory %s: %w", full, err)
		}
		result.Dirs = append(result.Dirs, d)
	}

	for _, f := range files {
		full := filepath.Join(outputDir, filepath.FromSlash(f.Path))
		if err := platform.WriteFile(full, []byte(f.Content), f.Mode); err != nil {
			return result, err
		}
		slog.Debug("wrote scaffold file", "path", full, "bytes", len(f.Content))
		result.Files = append(result.Files, f.Path)
	}

	for _, c := range set.Checks {
		full := filepath.Join(outputDir, filepath.FromSlash(c.Path))
		vr, err := schema.ValidateFile(c.Schema, full)
		result.Checks = append(result.Checks, CheckResult{Path: c.Path, Validation: vr})
		if err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("could not validate %s: %v", c.Path, err))
			continue
		}
		for _, issue := range vr.Issues {
			result.Warnings = append(result.Warnings, c.Path+": "+issue.String())
		}
	}

	return result, nil
}
