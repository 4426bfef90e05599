package scaffold

import (
	"bytes"
	"fmt"
	"os"
	"path"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// File is one rendered file of a plan.
type File struct {
	Path    string // relative, slash-separated
	Content string
	Mode    os.FileMode
}

var templateCache sync.Map

// Plan renders the directory list and every file of set for data. It touches
// nothing on disk, so the result depends only on its inputs.
func Plan(set *Set, data *ScaffoldData) (dirs []string, files []File, err error) {
	for _, d := range set.Dirs {
		p, err := renderPath(d, data)
		if err != nil {
			return nil, nil, err
		}
		dirs = append(dirs, p)
	}

	for _, spec := range set.Files {
		p, err := renderPath(spec.Path, data)
		if err != nil {
			return nil, nil, err
		}

		content := ""
		if spec.Template != "" {
			content, err = renderTemplate(set.Name, spec.Template, data)
			if err != nil {
				return nil, nil, err
			}
		}

		mode := spec.Mode
		if mode == 0 {
			mode = fileMode
		}
		files = append(files, File{Path: p, Content: content, Mode: mode})
	}
	return dirs, files, nil
}

func renderPath(pattern string, data *ScaffoldData) (string, error) {
	tmpl, err := template.New("path").Option("missingkey=error").Parse(pattern)
	if err != nil {
		return "", fmt.Errorf("parsing path %q: %w", pattern, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering path %q: %w", pattern, err)
	}
	return path.Clean(buf.String()), nil
}

func renderTemplate(setName, name string, data *ScaffoldData) (string, error) {
	tmpl, err := loadTemplate(setName, name)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template %s/%s: %w", setName, name, err)
	}
	return buf.String(), nil
}

func loadTemplate(setName, name string) (*template.Template, error) {
	key := setName + "/" + name
	if cached, ok := templateCache.Load(key); ok {
		return cached.(*template.Template), nil
	}

	raw, err := scaffoldFS.ReadFile(path.Join("scaffolds", setName, name))
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", key, err)
	}
	tmpl, err := template.New(name).Funcs(sprig.TxtFuncMap()).Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", key, err)
	}
	templateCache.Store(key, tmpl)
	return tmpl, nil
}
