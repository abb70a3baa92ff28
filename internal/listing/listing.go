// Package listing enumerates the regular files directly inside a directory.
package listing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bianoble/validate-licenses/internal/fileset"
)

// ErrNotFound reports that the directory is missing, is not a directory,
// or cannot be read.
var ErrNotFound = errors.New("given evaluation directory not accessible")

// batchSize bounds how many entries are read between context checks.
const batchSize = 128

// Error describes a failure to list a directory.
type Error struct {
	Dir string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", ErrNotFound, e.Dir)
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrNotFound}
	}
	return []error{ErrNotFound, e.Err}
}

// Cause returns the underlying error, or nil.
func (e *Error) Cause() error {
	return e.Err
}

// CheckDir verifies that dir exists and is a directory.
func CheckDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return &Error{Dir: dir, Err: err}
	}
	if !info.IsDir() {
		return &Error{Dir: dir, Err: fmt.Errorf("%s is not a directory", dir)}
	}
	return nil
}

// List returns the names of the regular files directly inside dir.
// Subdirectories are not descended into. Symlinks are followed, so a link
// to a regular file is listed while links to directories and dangling
// links are not. Hidden files are included.
func List(ctx context.Context, dir string) (fileset.Set, error) {
	if err := CheckDir(dir); err != nil {
		return nil, err
	}

	f, err := os.Open(dir)
	if err != nil {
		return nil, &Error{Dir: dir, Err: err}
	}
	defer f.Close()

	files := make(fileset.Set)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		entries, readErr := f.ReadDir(batchSize)
		for _, entry := range entries {
			if isRegularFile(dir, entry) {
				files.Add(entry.Name())
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, &Error{Dir: dir, Err: fmt.Errorf("reading entries: %w", readErr)}
		}
	}

	return files, nil
}

func isRegularFile(dir string, entry os.DirEntry) bool {
	mode := entry.Type()
	if mode.IsRegular() {
		return true
	}
	if mode&os.ModeSymlink == 0 {
		return false
	}

	// Stat follows the link.
	info, err := os.Stat(filepath.Join(dir, entry.Name()))
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
