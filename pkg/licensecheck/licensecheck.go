// Package licensecheck provides the public Go library API for
// validate-licenses.
//
// It cross-checks a license manifest against the regular files directly
// inside a directory and reports files present in both, files present only
// in the directory (unlicensed), and files declared only in the manifest
// (unknown).
//
// # Basic Usage
//
//	client, err := licensecheck.New(licensecheck.Options{
//	    Directory:   "/path/to/tree",
//	    LicenseFile: "/path/to/licenses.json",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := client.Validate(ctx)
//	if errors.Is(err, licensecheck.ErrManifestNotFound) {
//	    ...
//	}
//	fmt.Println(result.Unlicensed)
package licensecheck

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/bianoble/validate-licenses/internal/engine"
	"github.com/bianoble/validate-licenses/internal/fileset"
	"github.com/bianoble/validate-licenses/internal/logging"
)

// Validator cross-checks a manifest against a directory.
type Validator interface {
	Validate(ctx context.Context) (*Result, error)
}

// Options configures a Client.
type Options struct {
	// Directory is the directory to scan. If empty, the current working
	// directory at New time is used.
	Directory string

	// LicenseFile is the path to the manifest (JSON, or YAML by extension).
	LicenseFile string

	// Logger receives progress messages at debug level. Nil disables logging.
	Logger *zerolog.Logger
}

// Client is the main entry point for the library. It implements Validator.
type Client struct {
	directory   string
	licenseFile string
	logger      *zerolog.Logger
}

var _ Validator = (*Client)(nil)

// New creates a new Client.
func New(opts Options) (*Client, error) {
	dir := opts.Directory
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolving current directory: %w", err)
		}
		dir = wd
	}

	return &Client{
		directory:   dir,
		licenseFile: opts.LicenseFile,
		logger:      opts.Logger,
	}, nil
}

// Directory returns the directory the client scans.
func (c *Client) Directory() string {
	return c.directory
}

// Validate reads the manifest and the directory listing and reconciles them.
// Errors match ErrManifestNotFound, ErrManifestUnreadable, or
// ErrDirectoryNotFound under errors.Is.
func (c *Client) Validate(ctx context.Context) (*Result, error) {
	if c.logger != nil {
		ctx = logging.WithLogger(ctx, c.logger)
	}

	eng := &engine.ValidateEngine{
		Directory:   c.directory,
		LicenseFile: c.licenseFile,
	}
	return eng.Validate(ctx)
}

// Reconcile classifies in-memory name lists without touching the filesystem.
// Duplicate names collapse.
func Reconcile(manifestNames, directoryNames []string) *Result {
	return engine.Reconcile(fileset.New(manifestNames...), fileset.New(directoryNames...))
}
