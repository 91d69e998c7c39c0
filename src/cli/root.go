// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/check-certificate/src/internal/audit"
	"github.com/H0llyW00dzZ/check-certificate/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/check-certificate/src/internal/x509/dates"
	"github.com/H0llyW00dzZ/check-certificate/src/logger"
)

// ErrCheckFailed indicates that at least one certificate was expired or could
// not be checked. It maps onto exit status 1 without any extra diagnostic;
// the per-file failures were already reported during the run.
var ErrCheckFailed = errors.New("cli: certificate check failed")

// options holds the flag values of one invocation. No process-wide state;
// everything flows explicitly into the pipeline.
type options struct {
	quiet      bool
	recursive  bool
	verbose    bool
	debug      bool
	tool       string
	configFile string
	showTable  bool
	showJSON   bool
}

// level maps the verbosity flags onto a reporter level.
// Debug implies verbose-level detail; debug and verbose win over quiet.
func (o *options) level() audit.Level {
	switch {
	case o.debug:
		return audit.LevelDebug
	case o.verbose:
		return audit.LevelVerbose
	case o.quiet:
		return audit.LevelQuiet
	default:
		return audit.LevelDefault
	}
}

// Execute runs the root command and returns its error, if any.
// The returned error is [ErrCheckFailed] when the run completed but the
// aggregate verdict was a failure; anything else is an invocation problem.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	opts := &options{}

	exeName := posix.GetExecutableName()
	rootCmd := &cobra.Command{
		Use:           exeName + " [flags] CERTFILE_OR_DIR...",
		Short:         "Audit X.509 certificates for date validity",
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAudit(cmd, args, opts, log)
		},
	}

	rootCmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress non-failure output")
	rootCmd.Flags().BoolVarP(&opts.recursive, "recursive", "r", false, "descend into directory arguments")
	rootCmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "show the notAfter instant per file")
	rootCmd.Flags().BoolVarP(&opts.debug, "debug", "d", false, "show each invoked external command (implies --verbose)")
	rootCmd.Flags().StringVarP(&opts.tool, "tool", "t", "", "OpenSSL-compatible binary to invoke (default from config, else \"openssl\")")
	rootCmd.Flags().StringVar(&opts.configFile, "config", "", "configuration file (JSON or YAML)")
	rootCmd.Flags().BoolVar(&opts.showTable, "table", false, "render a markdown summary table after the run")
	rootCmd.Flags().BoolVar(&opts.showJSON, "json", false, "emit the run summary as JSON on stdout")

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, ErrCheckFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return err
	}
	return nil
}

// runAudit assembles the pipeline from the resolved configuration and flags,
// runs it over the path arguments, and renders the requested summaries.
func runAudit(cmd *cobra.Command, args []string, opts *options, log logger.Logger) error {
	cfg, err := loadConfig(opts.configFile)
	if err != nil {
		return err
	}

	// Flag wins over env and config file.
	tool := cfg.Tool.Path
	if opts.tool != "" {
		tool = opts.tool
	}

	// In JSON mode stdout carries the summary alone; diagnostics become
	// structured lines on stderr.
	if opts.showJSON {
		log = logger.NewJSONLogger(cmd.ErrOrStderr())
	}

	reporter := audit.NewReporter(opts.level(), log)

	extractor := dates.NewOpenSSL(tool)
	extractor.CommandObserver = reporter.Command

	auditor := audit.New(extractor, reporter, audit.Options{
		Recursive: opts.recursive,
	})

	summary, err := auditor.Run(cmd.Context(), args)
	if err != nil {
		return err
	}

	if opts.showTable {
		fmt.Fprintln(cmd.OutOrStdout(), summary.RenderTable())
	}

	if opts.showJSON {
		data, err := summary.RenderJSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	}

	if !summary.OK {
		return ErrCheckFailed
	}
	return nil
}
