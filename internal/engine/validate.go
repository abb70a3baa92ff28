package engine

import (
	"context"
	"errors"

	"github.com/bianoble/validate-licenses/internal/listing"
	"github.com/bianoble/validate-licenses/internal/logging"
	"github.com/bianoble/validate-licenses/internal/manifest"
)

// ValidateEngine cross-checks a license manifest against the files in a directory.
type ValidateEngine struct {
	Directory   string
	LicenseFile string
}

// Validate acquires both name sets and reconciles them.
//
// Inputs are checked in a fixed order so that the first failure is the one
// reported: the manifest must exist, then the directory must be accessible,
// then the manifest must parse. Errors wrap manifest.ErrNotFound,
// manifest.ErrUnreadable, or listing.ErrNotFound.
func (e *ValidateEngine) Validate(ctx context.Context) (*Result, error) {
	log := logging.FromContext(ctx)

	if err := manifest.Exists(e.LicenseFile); err != nil {
		return nil, err
	}
	if err := listing.CheckDir(e.Directory); err != nil {
		return nil, err
	}

	m, err := manifest.Load(e.LicenseFile)
	if err != nil {
		var le *manifest.LoadError
		if errors.As(err, &le) && le.Cause() != nil {
			log.Debug().Msgf("license file error: %v", le.Cause())
		}
		return nil, err
	}
	declared := m.Keys()
	log.Debug().Msgf("license file lists %d file(s)", declared.Len())

	present, err := listing.List(ctx, e.Directory)
	if err != nil {
		return nil, err
	}

	for _, name := range present.Sorted() {
		log.Debug().Msgf("processing %s ...", name)
		if declared.Has(name) {
			log.Debug().Msgf("found %s", name)
		}
	}

	return Reconcile(declared, present), nil
}
