package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bianoble/validate-licenses/cmd/validate-licenses/internal/clierr"
	"github.com/bianoble/validate-licenses/internal/engine"
	"github.com/bianoble/validate-licenses/internal/report"
)

// Build-time variables set via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// options holds the parsed command-line flags.
type options struct {
	directory   string
	licenseFile string
	format      string
	verbose     bool
	quiet       bool
	strict      bool
	noColor     bool
}

// NewRootCmd constructs the validate-licenses command.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "validate-licenses -l <licensefile> [-d <directory>]",
		Short: "Cross-check a license file with the files in a directory",
		Long: `validate-licenses cross-checks a license file in JSON format with the
files actually present in a directory.

The license file maps file names to license identifiers:

  { "licenses": { "main.c": "GPL-3.0-or-later", "README.md": "CC-BY-4.0" } }

Only the regular files directly inside the directory are considered. The
report lists files found in both places, files in the directory that the
license file does not mention, and files the license file mentions that
are not in the directory. A license file ending in .yaml or .yml is read
as YAML.

Exit codes:
  0  success (or help shown)
  1  license file missing or unreadable, or directory not accessible
  2  invalid command-line arguments
  3  --strict and the license file disagrees with the directory`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return clierr.Newf(clierr.CodeUsage, "unexpected argument %q", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	cmd.SetVersionTemplate(fmt.Sprintf("validate-licenses %s\n  commit:  %s\n  built:   %s\n", version, commit, date))
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return clierr.Wrap(clierr.CodeUsage, "", err)
	})

	f := cmd.Flags()
	f.StringVarP(&opts.directory, "directory", "d", "", "read files from this directory (default: current directory)")
	f.StringVarP(&opts.licenseFile, "licensefile", "l", "", "name of the license file")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	f.BoolVarP(&opts.quiet, "quiet", "q", false, "do not print the report, only set the exit code")
	f.StringVar(&opts.format, "format", string(report.FormatText), "report format: "+report.FormatNames())
	f.BoolVar(&opts.strict, "strict", false, "exit with code 3 if any file is unlicensed or unknown")
	f.BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	format, err := report.ParseFormat(opts.format)
	if err != nil {
		return clierr.Wrap(clierr.CodeUsage, "", err)
	}

	ctx, log := withLogger(cmd, opts)

	dir, err := evaluationDirectory(opts.directory)
	if err != nil {
		return clierr.Wrap(clierr.CodeInput, "", err)
	}
	log.Debug().Msgf("read evaluation directory (%s)", dir)
	log.Debug().Msgf("read name of license file (%s)", opts.licenseFile)

	eng := &engine.ValidateEngine{
		Directory:   dir,
		LicenseFile: opts.licenseFile,
	}

	result, err := eng.Validate(ctx)
	if err != nil {
		return clierr.Wrap(clierr.CodeInput, "", err)
	}

	if !opts.quiet {
		if err := report.Write(cmd.OutOrStdout(), format, result); err != nil {
			return err
		}
	}

	if opts.strict && !result.Clean() {
		return clierr.Newf(clierr.CodeDiscrepancy, "%d file(s) out of sync with the license file: %d unlicensed and %d unknown file(s)",
			result.Discrepancies(), len(result.Unlicensed), len(result.Unknown))
	}

	log.Debug().Msgf("%d file(s) matched", len(result.Matched))
	return nil
}

// Execute runs the root command against os.Args.
func Execute() error {
	return execute(NewRootCmd(), os.Args[1:])
}

func execute(root *cobra.Command, args []string) error {
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		reportError(root.ErrOrStderr(), err)
		return err
	}
	return nil
}

// reportError prints err to w, adding a usage hint for argument errors.
func reportError(w io.Writer, err error) {
	fmt.Fprintln(w, err)

	var ee *clierr.ExitError
	if errors.As(err, &ee) && ee.ExitCode() == clierr.CodeUsage {
		fmt.Fprintln(w, "Run 'validate-licenses --help' for usage.")
	}
}
