package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bianoble/validate-licenses/internal/logging"
)

// evaluationDirectory returns dir, or the current working directory if dir is empty.
func evaluationDirectory(dir string) (string, error) {
	if dir != "" {
		return dir, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolving current directory: %w", err)
	}
	return wd, nil
}

// withLogger builds the progress logger from the flags and attaches it to
// the command's context. Logs go to the command's stderr.
func withLogger(cmd *cobra.Command, opts *options) (context.Context, *zerolog.Logger) {
	cfg := logging.DefaultConfig()
	cfg.Output = cmd.ErrOrStderr()
	if opts.noColor {
		cfg.NoColor = true
	}
	if opts.verbose {
		cfg.Level = "debug"
	}
	if opts.quiet && !opts.verbose {
		cfg.Level = "error"
	}

	logger := logging.New(cfg)
	return logging.WithLogger(cmd.Context(), &logger), &logger
}
