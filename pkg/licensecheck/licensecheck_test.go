package licensecheck

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bianoble/validate-licenses/internal/logging"
)

func writeTree(t *testing.T, files []string, manifest string) (string, string) {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, "tree")
	require.NoError(t, os.MkdirAll(dir, 0755))
	for _, f := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, f), []byte("content"), 0644))
	}
	path := filepath.Join(root, "licenses.json")
	require.NoError(t, os.WriteFile(path, []byte(manifest), 0644))
	return dir, path
}

func TestClientValidate(t *testing.T) {
	dir, path := writeTree(t, []string{"a.txt", "b.txt"}, `{"licenses": {"a.txt": "MIT"}}`)

	client, err := New(Options{Directory: dir, LicenseFile: path})
	require.NoError(t, err)

	result, err := client.Validate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt"}, result.Matched)
	assert.Equal(t, []string{"b.txt"}, result.Unlicensed)
	assert.Empty(t, result.Unknown)
	assert.False(t, result.Clean())
}

func TestClientDefaultsToWorkingDirectory(t *testing.T) {
	dir, path := writeTree(t, []string{"a.txt"}, `{"licenses": {"a.txt": "MIT"}}`)
	t.Chdir(dir)

	client, err := New(Options{LicenseFile: path})
	require.NoError(t, err)

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, wd, client.Directory())

	result, err := client.Validate(context.Background())
	require.NoError(t, err)
	assert.True(t, result.Clean())
}

func TestClientLogger(t *testing.T) {
	dir, path := writeTree(t, []string{"a.txt"}, `{"licenses": {"a.txt": "MIT"}}`)
	tl := logging.NewTestLogger(t)

	client, err := New(Options{Directory: dir, LicenseFile: path, Logger: tl.Logger})
	require.NoError(t, err)

	_, err = client.Validate(context.Background())
	require.NoError(t, err)
	tl.AssertContains(t, "found a.txt")
}

func TestClientErrors(t *testing.T) {
	dir, path := writeTree(t, nil, `{"nothing": true}`)

	tests := []struct {
		name string
		opts Options
		want error
	}{
		{"manifest missing", Options{Directory: dir, LicenseFile: path + ".gone"}, ErrManifestNotFound},
		{"manifest without licenses", Options{Directory: dir, LicenseFile: path}, ErrManifestUnreadable},
		{"directory missing", Options{Directory: dir + "-gone", LicenseFile: path}, ErrDirectoryNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := New(tt.opts)
			require.NoError(t, err)

			_, err = client.Validate(context.Background())
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestReconcile(t *testing.T) {
	r := Reconcile([]string{"c.txt", "a.txt", "a.txt"}, []string{"a.txt", "b.txt"})
	assert.Equal(t, []string{"a.txt"}, r.Matched)
	assert.Equal(t, []string{"b.txt"}, r.Unlicensed)
	assert.Equal(t, []string{"c.txt"}, r.Unknown)
}
