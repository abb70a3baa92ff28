package licensecheck

import (
	"github.com/bianoble/validate-licenses/internal/engine"
	"github.com/bianoble/validate-licenses/internal/listing"
	"github.com/bianoble/validate-licenses/internal/manifest"
)

// Result re-exports the engine result as the public API type.
type Result = engine.Result

// Errors returned by Validate, for use with errors.Is.
var (
	ErrManifestNotFound   = manifest.ErrNotFound
	ErrManifestUnreadable = manifest.ErrUnreadable
	ErrDirectoryNotFound  = listing.ErrNotFound
)
