package schema

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Built-in schema names.
const (
	Settings   = "settings"
	SampleData = "sample_data"
)

//go:embed schemas/*.schema.json
var schemaFS embed.FS

const issueCountKey = "%d validation issue(s)"

var (
	compiled   = map[string]*jsonschema.Schema{}
	compileMu  sync.Mutex
	printer    = message.NewPrinter(language.English)
	pluralOnce sync.Once
)

// ValidationResult contains the outcome of a schema validation.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue represents a single validation error from the schema.
type ValidationIssue struct {
	Path    string // Instance location (e.g., "/project_name", "/0/id")
	Message string // Human-readable error message
	Keyword string // Schema keyword that failed
}

func (i ValidationIssue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// getSchema compiles the named embedded schema once and caches it.
func getSchema(name string) (*jsonschema.Schema, error) {
	compileMu.Lock()
	defer compileMu.Unlock()

	if s, ok := compiled[name]; ok {
		return s, nil
	}

	file := name + ".schema.json"
	raw, err := schemaFS.ReadFile("schemas/" + file)
	if err != nil {
		return nil, fmt.Errorf("unknown schema %q: %w", name, err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("unmarshaling schema JSON: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(file, doc); err != nil {
		return nil, fmt.Errorf("adding schema resource: %w", err)
	}
	s, err := c.Compile(file)
	if err != nil {
		return nil, fmt.Errorf("compiling schema: %w", err)
	}
	compiled[name] = s
	return s, nil
}

// ValidateJSON validates raw JSON bytes against the named schema.
// The error return is for parse or schema compilation failures; validation
// issues are returned in the ValidationResult.
func ValidateJSON(name string, data []byte) (*ValidationResult, error) {
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}
	return validate(name, inst)
}

// ValidateYAML validates raw YAML bytes against the named schema.
func ValidateYAML(name string, data []byte) (*ValidationResult, error) {
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	// Round-trip through JSON so numbers arrive as json.Number, which is
	// what the validator expects.
	jsonData, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("converting to JSON: %w", err)
	}
	return ValidateJSON(name, jsonData)
}

// ValidateFile validates a file, choosing the parser from its extension.
func ValidateFile(name, path string) (*ValidationResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ValidateYAML(name, data)
	case ".json":
		return ValidateJSON(name, data)
	default:
		return nil, fmt.Errorf("cannot validate %s: unsupported extension", path)
	}
}

func validate(name string, inst interface{}) (*ValidationResult, error) {
	s, err := getSchema(name)
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	err = s.Validate(inst)
	if err == nil {
		return &ValidationResult{Valid: true}, nil
	}

	validationErr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return nil, fmt.Errorf("unexpected validation error type: %w", err)
	}

	return &ValidationResult{
		Valid:  false,
		Issues: extractIssues(validationErr),
	}, nil
}

// Summary returns a one-line description of the result, e.g. "2 validation issues".
func Summary(r *ValidationResult) string {
	pluralOnce.Do(func() {
		_ = message.Set(language.English, issueCountKey,
			plural.Selectf(1, "%d",
				"=0", "no validation issues",
				"=1", "1 validation issue",
				"other", "%d validation issues",
			))
	})
	return printer.Sprintf(issueCountKey, len(r.Issues))
}

// extractIssues walks the ValidationError tree and returns leaf-level issues.
func extractIssues(ve *jsonschema.ValidationError) []ValidationIssue {
	var issues []ValidationIssue
	collectIssues(ve, &issues)

	if len(issues) == 0 {
		return []ValidationIssue{{Message: ve.Error()}}
	}
	return deduplicate(issues)
}

func collectIssues(ve *jsonschema.ValidationError, issues *[]ValidationIssue) {
	if len(ve.Causes) > 0 {
		for _, cause := range ve.Causes {
			collectIssues(cause, issues)
		}
		return
	}

	path := ""
	if len(ve.InstanceLocation) > 0 {
		path = "/" + strings.Join(ve.InstanceLocation, "/")
	}

	keyword := ""
	msg := ""
	if ve.ErrorKind != nil {
		if kw := ve.ErrorKind.KeywordPath(); len(kw) > 0 {
			keyword = kw[len(kw)-1]
		}
		msg = ve.ErrorKind.LocalizedString(printer)
	}
	if keyword == "" || keyword == "allOf" || keyword == "$ref" {
		return
	}

	*issues = append(*issues, ValidationIssue{Path: path, Message: msg, Keyword: keyword})
}

func deduplicate(issues []ValidationIssue) []ValidationIssue {
	seen := make(map[string]bool)
	var result []ValidationIssue
	for _, issue := range issues {
		key := issue.Path + "|" + issue.Keyword + "|" + issue.Message
		if !seen[key] {
			seen[key] = true
			result = append(result, issue)
		}
	}
	return result
}
