// Package report renders reconciliation results.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bianoble/validate-licenses/internal/engine"
)

// Format selects how a result is rendered.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the supported format names.
var Formats = []Format{FormatText, FormatJSON, FormatYAML}

// FormatNames returns the supported format names as a comma-separated list.
func FormatNames() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// Section headings of the text report.
const (
	headingMatched    = "files found from the license file:"
	headingUnlicensed = "files found that are in the directory but not in license file:"
	headingUnknown    = "files found that are in the license file but in the directory:"
)

// ParseFormat converts a format name to a Format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("invalid format %q: must be one of: %s", name, FormatNames())
	}
}

// Write renders r to w in the given format.
func Write(w io.Writer, format Format, r *engine.Result) error {
	switch format {
	case FormatText, "":
		return writeText(w, r)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

func writeText(w io.Writer, r *engine.Result) error {
	var b strings.Builder
	section := func(heading string, names []string) {
		b.WriteString("\n")
		b.WriteString(heading)
		b.WriteString("\n")
		for _, n := range names {
			b.WriteString(n)
			b.WriteString("\n")
		}
	}

	section(headingMatched, r.Matched)
	section(headingUnlicensed, r.Unlicensed)
	section(headingUnknown, r.Unknown)

	_, err := io.WriteString(w, b.String())
	return err
}
