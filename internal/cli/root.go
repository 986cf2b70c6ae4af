package cli

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/sqlfn/internal/config"
	"github.com/roach88/sqlfn/internal/funcs"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	Config  string // optional CUE registry configuration

	cfg      *config.Config
	registry *funcs.Registry
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the sqlfn CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "sqlfn",
		Short: "SQL function registry",
		Long: `Inspect and exercise the SQL function registry.

Lists registered functions and aliases, resolves calls the way the query
analyzer does, runs resolution scenarios, and exports catalog snapshots.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			setupLogging(cmd.ErrOrStderr(), opts.Verbose)
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVarP(&opts.Config, "config", "c", "", "path to a CUE registry configuration")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return WrapExitError(ExitCommandError, "invalid flags", err)
	})

	cmd.AddCommand(NewFunctionsCommand(opts))
	cmd.AddCommand(NewDescribeCommand(opts))
	cmd.AddCommand(NewResolveCommand(opts))
	cmd.AddCommand(NewTestCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))

	return cmd
}

// setupLogging installs a text slog handler on w. Debug records are shown
// only in verbose mode.
func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:  o.Format,
		Writer:  cmd.OutOrStdout(),
		Verbose: o.Verbose,
	}
}

// loadConfig loads --config once. It returns nil when no file was given.
func (o *RootOptions) loadConfig() (*config.Config, error) {
	if o.Config == "" || o.cfg != nil {
		return o.cfg, nil
	}
	cfg, err := config.Load(o.Config)
	if err != nil {
		return nil, err
	}
	o.cfg = cfg
	return cfg, nil
}

// Registry builds the function registry once: the defaults, with --config
// applied when given.
func (o *RootOptions) Registry() (*funcs.Registry, error) {
	if o.registry != nil {
		return o.registry, nil
	}

	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}
	reg, err := cfg.Registry()
	if err != nil {
		return nil, err
	}

	slog.Debug("registry loaded", "source", o.source(), "keys", reg.Len())
	o.registry = reg
	return reg, nil
}

// Location returns the session time zone: override when non-empty, else
// the configured zone, else UTC.
func (o *RootOptions) Location(override string) (*time.Location, error) {
	if override != "" {
		loc, err := time.LoadLocation(override)
		if err != nil {
			return nil, &config.LoadError{
				Code:    config.ErrCodeTimeZone,
				Message: fmt.Sprintf("unknown timezone %q", override),
			}
		}
		return loc, nil
	}

	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}
	return cfg.Location()
}

// source names where the registry came from.
func (o *RootOptions) source() string {
	if o.Config != "" {
		return o.Config
	}
	return "defaults"
}

// setupFailed reports a registry or config error as a command error.
func setupFailed(f *OutputFormatter, err error) error {
	return f.Fail(ExitCommandError, errorCode(err), err.Error(), nil)
}
