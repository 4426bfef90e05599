package scaffold

import (
	"fmt"
	"os"
	"sort"

	"github.com/pyboot-labs/pyboot/internal/schema"
)

// FileSpec describes one generated file. Path is a relative, slash-separated
// template (it may use {{.Slug}}); Template names a file under
// scaffolds/<set>/, or is empty for an empty file.
type FileSpec struct {
	Path     string
	Template string
	Mode     os.FileMode
}

// Check validates one generated file against an embedded schema.
type Check struct {
	Path   string
	Schema string
}

// Set is a named project layout.
type Set struct {
	Name        string
	Description string
	Dirs        []string
	Files       []FileSpec
	Checks      []Check
}

const (
	fileMode   os.FileMode = 0644
	secretMode os.FileMode = 0600
	dirMode    os.FileMode = 0755
)

var basicSet = &Set{
	Name:        "basic",
	Description: "Minimal package with a main entry point",
	Dirs: []string{
		".",
		"{{.Slug}}",
	},
	Files: []FileSpec{
		{Path: "README.md", Template: "README.md.tmpl"},
		{Path: "requirements.txt"},
		{Path: ".gitignore", Template: "gitignore.tmpl"},
		{Path: "{{.Slug}}/__init__.py"},
		{Path: "{{.Slug}}/main.py", Template: "main.py.tmpl"},
	},
}

var apiSet = &Set{
	Name:        "api",
	Description: "API client layout with config, secrets, tests, docs and sample data",
	Dirs: []string{
		".",
		"config",
		"{{.Slug}}",
		"tests",
		"docs",
		"scripts",
		"data",
		"assets",
		"logs",
	},
	Files: []FileSpec{
		{Path: "README.md", Template: "README.md.tmpl"},
		{Path: "requirements.txt", Template: "requirements.txt.tmpl"},
		{Path: ".gitignore", Template: "gitignore.tmpl"},
		{Path: "LICENSE", Template: "LICENSE.tmpl"},
		{Path: "CHANGELOG.md", Template: "CHANGELOG.md.tmpl"},
		{Path: "config/secrets.env", Template: "secrets.env.tmpl", Mode: secretMode},
		{Path: "config/settings.yaml", Template: "settings.yaml.tmpl"},
		{Path: "{{.Slug}}/__init__.py"},
		{Path: "{{.Slug}}/main.py", Template: "main.py.tmpl"},
		{Path: "{{.Slug}}/api_key_handler.py", Template: "api_key_handler.py.tmpl"},
		{Path: "tests/__init__.py"},
		{Path: "tests/test_api_key_handler.py", Template: "test_api_key_handler.py.tmpl"},
		{Path: "docs/index.md", Template: "index.md.tmpl"},
		{Path: "scripts/data_importer.py", Template: "data_importer.py.tmpl"},
		{Path: "data/sample_data.json", Template: "sample_data.json.tmpl"},
		{Path: "logs/app.log"},
	},
	Checks: []Check{
		{Path: "config/settings.yaml", Schema: schema.Settings},
		{Path: "data/sample_data.json", Schema: schema.SampleData},
	},
}

var sets = map[string]*Set{
	basicSet.Name: basicSet,
	apiSet.Name:   apiSet,
}

// Lookup returns the built-in set with the given name.
func Lookup(name string) (*Set, error) {
	s, ok := sets[name]
	if !ok {
		return nil, fmt.Errorf("unknown template %q (available: %v)", name, Names())
	}
	return s, nil
}

// Names returns the built-in set names in sorted order.
func Names() []string {
	names := make([]string, 0, len(sets))
	for n := range sets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Sets returns the built-in sets sorted by name.
func Sets() []*Set {
	out := make([]*Set, 0, len(sets))
	for _, n := range Names() {
		out = append(out, sets[n])
	}
	return out
}
