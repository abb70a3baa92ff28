package manifest

import "github.com/bianoble/validate-licenses/internal/fileset"

// Manifest represents a license manifest file.
//
//	{ "licenses": { "<filename>": "<license-identifier>", ... } }
//
// Any other top-level keys are ignored.
type Manifest struct {
	// Licenses maps a file name to its declared license identifier.
	// A nil map means the key was absent from the document.
	Licenses map[string]string `json:"licenses" yaml:"licenses"`
}

// Keys returns the set of file names declared in the manifest.
func (m *Manifest) Keys() fileset.Set {
	s := make(fileset.Set, len(m.Licenses))
	for name := range m.Licenses {
		s.Add(name)
	}
	return s
}

// Format identifies the encoding of a manifest file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)
