package engine

// Result holds the outcome of reconciling a manifest with a directory.
// Each list is sorted lexicographically and never nil.
type Result struct {
	// Matched lists files present in the directory and declared in the manifest.
	Matched []string `json:"matched" yaml:"matched"`

	// Unlicensed lists files present in the directory but not declared.
	Unlicensed []string `json:"unlicensed" yaml:"unlicensed"`

	// Unknown lists files declared in the manifest but absent from the directory.
	Unknown []string `json:"unknown" yaml:"unknown"`
}

// Clean reports whether the directory and the manifest agree exactly.
func (r *Result) Clean() bool {
	return len(r.Unlicensed) == 0 && len(r.Unknown) == 0
}

// Discrepancies returns the number of unlicensed plus unknown files.
func (r *Result) Discrepancies() int {
	return len(r.Unlicensed) + len(r.Unknown)
}
