package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNotFound reports that the manifest path does not exist.
	ErrNotFound = errors.New("cannot open given license file")

	// ErrUnreadable reports that the manifest exists but could not be read,
	// parsed, or validated.
	ErrUnreadable = errors.New("reading given license file failed")
)

// LoadError describes a failure to acquire a manifest.
// Its message names the path only; the underlying cause is kept in Err
// so parser output never reaches the user unless asked for.
type LoadError struct {
	Path string
	Kind error // ErrNotFound or ErrUnreadable
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Path)
}

func (e *LoadError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Cause returns the underlying error, or nil.
func (e *LoadError) Cause() error {
	return e.Err
}

// Exists checks that the manifest path names an existing filesystem entry.
func Exists(path string) error {
	if path == "" {
		return &LoadError{Path: path, Kind: ErrNotFound}
	}
	if _, err := os.Stat(path); err != nil {
		return &LoadError{Path: path, Kind: ErrNotFound, Err: err}
	}
	return nil
}

// DetectFormat picks the manifest encoding from the file extension.
// Anything other than .yaml or .yml is treated as JSON.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads, parses, and validates a manifest file.
func Load(path string) (*Manifest, error) {
	if err := Exists(path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Kind: ErrUnreadable, Err: fmt.Errorf("reading manifest: %w", err)}
	}

	m, err := Parse(data, DetectFormat(path))
	if err != nil {
		return nil, &LoadError{Path: path, Kind: ErrUnreadable, Err: err}
	}
	return m, nil
}

// Parse decodes and validates manifest content in the given format.
func Parse(data []byte, format Format) (*Manifest, error) {
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("parsing manifest: content is not valid UTF-8")
	}

	var m Manifest
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parsing manifest: %w", err)
		}
	case FormatJSON:
		licenses, err := decodeJSONLicenses(data)
		if err != nil {
			return nil, fmt.Errorf("parsing manifest: %w", err)
		}
		m.Licenses = licenses
	default:
		return nil, fmt.Errorf("unsupported manifest format %q", format)
	}

	if errs := Validate(&m); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}
	return &m, nil
}

// decodeJSONLicenses extracts the top-level "licenses" member. The key is
// matched exactly; encoding/json would otherwise fold case when mapping
// keys onto struct fields.
func decodeJSONLicenses(data []byte) (map[string]string, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	raw, ok := doc["licenses"]
	if !ok {
		return nil, nil
	}
	var licenses map[string]string
	if err := json.Unmarshal(raw, &licenses); err != nil {
		return nil, fmt.Errorf("licenses: %w", err)
	}
	return licenses, nil
}

// ValidationError holds multiple validation failures.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("manifest validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

// Validate checks a Manifest for semantic correctness.
// Returns a list of validation error messages (empty if valid).
func Validate(m *Manifest) []string {
	var errs []string

	if m.Licenses == nil {
		errs = append(errs, "'licenses' is required: add a \"licenses\" mapping of file name to license identifier")
	}

	return errs
}
