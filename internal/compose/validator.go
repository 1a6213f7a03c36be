package compose

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/compose.schema.json
var schemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// ValidationResult contains the outcome of a schema validation.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue represents a single validation error.
type ValidationIssue struct {
	Path    string // Instance location (e.g., "/services/ngrok/ports/0")
	Message string
	Keyword string // Schema keyword that failed
}

func (i ValidationIssue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("compose.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("compose.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// Validate checks raw compose YAML against the embedded schema, then checks
// that every depends_on entry names a declared service. The error return is
// for parse or schema compilation failures; validation problems are reported
// in the result.
func Validate(data []byte) (*ValidationResult, error) {
	schema, err := getSchema()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	// Round-trip through JSON so numbers arrive as json.Number.
	jsonData, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("converting to JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("preparing JSON for validation: %w", err)
	}

	var issues []ValidationIssue
	if err := schema.Validate(inst); err != nil {
		ve, ok := err.(*jsonschema.ValidationError)
		if !ok {
			return nil, fmt.Errorf("unexpected validation error type: %w", err)
		}
		issues = extractIssues(ve)
	} else {
		// Cross-references are only meaningful once the shape is valid.
		f, err := Parse(data)
		if err != nil {
			return nil, err
		}
		issues = checkDependencies(f)
	}

	return &ValidationResult{Valid: len(issues) == 0, Issues: issues}, nil
}

// ValidateFile reads a file and validates it.
func ValidateFile(path string) (*ValidationResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Validate(data)
}

func checkDependencies(f *File) []ValidationIssue {
	names := make([]string, 0, len(f.Services))
	for name := range f.Services {
		names = append(names, name)
	}
	sort.Strings(names)

	var issues []ValidationIssue
	for _, name := range names {
		for i, dep := range f.Services[name].DependsOn {
			if _, ok := f.Services[dep]; ok && dep != name {
				continue
			}
			issues = append(issues, ValidationIssue{
				Path:    fmt.Sprintf("/services/%s/depends_on/%d", name, i),
				Message: printer.Sprintf("service %q depends on unknown service %q", name, dep),
				Keyword: "depends_on",
			})
		}
	}
	return issues
}

// extractIssues walks the ValidationError tree and returns leaf-level issues.
func extractIssues(ve *jsonschema.ValidationError) []ValidationIssue {
	var issues []ValidationIssue
	collectValidationIssues(ve, &issues)

	if len(issues) == 0 {
		return []ValidationIssue{{Message: ve.Error()}}
	}
	return deduplicateIssues(issues)
}

func collectValidationIssues(ve *jsonschema.ValidationError, issues *[]ValidationIssue) {
	if len(ve.Causes) > 0 {
		for _, cause := range ve.Causes {
			collectValidationIssues(cause, issues)
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

	// Container keywords carry no detail of their own.
	if keyword == "anyOf" || keyword == "allOf" || keyword == "$ref" || keyword == "" {
		return
	}

	*issues = append(*issues, ValidationIssue{Path: path, Message: msg, Keyword: keyword})
}

func deduplicateIssues(issues []ValidationIssue) []ValidationIssue {
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
