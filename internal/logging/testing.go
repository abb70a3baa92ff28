package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// TestLogger captures log output for assertions.
type TestLogger struct {
	Logger *zerolog.Logger
	buf    *bytes.Buffer
}

// NewTestLogger returns a debug-level logger writing plain console lines
// into a buffer.
func NewTestLogger(t *testing.T) *TestLogger {
	t.Helper()
	buf := &bytes.Buffer{}
	l := New(&Config{Level: "debug", Output: buf, NoColor: true})
	return &TestLogger{Logger: &l, buf: buf}
}

// Lines returns the non-empty logged lines with surrounding space trimmed.
func (tl *TestLogger) Lines() []string {
	var lines []string
	for _, line := range strings.Split(tl.buf.String(), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// AssertContains fails the test if the output does not contain s.
func (tl *TestLogger) AssertContains(t *testing.T, s string) {
	t.Helper()
	if !strings.Contains(tl.buf.String(), s) {
		t.Errorf("expected log output to contain %q, got:\n%s", s, tl.buf.String())
	}
}
