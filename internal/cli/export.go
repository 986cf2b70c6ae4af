package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/sqlfn/internal/catalog"
)

// ExportOptions holds flags for the export command.
type ExportOptions struct {
	*RootOptions
	Database string
	List     bool
}

// ExportResult is the JSON payload of the export command.
type ExportResult struct {
	ExportID    string                `json:"export_id"`
	Source      string                `json:"source"`
	Fingerprint string                `json:"fingerprint"`
	SameAs      string                `json:"same_as,omitempty"` // earlier export with an identical listing
	Functions   []catalog.FunctionRow `json:"functions"`
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "export --db <path> [pattern]",
		Short: "Export the function catalog to SQLite",
		Long: `Write a snapshot of the function listing to a SQLite catalog.

Every export gets a new id; earlier exports are kept. The optional pattern
limits the snapshot the same way it limits the functions command.
With --list, prints the exports already in the catalog instead.

Examples:
  sqlfn export --db ./catalog.db
  sqlfn export --db ./catalog.db 'day.*'
  sqlfn export --db ./catalog.db --list`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := ""
			if len(args) == 1 {
				pattern = args[0]
			}
			return runExport(cmd.Context(), opts, pattern, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite catalog (required)")
	cmd.Flags().BoolVar(&opts.List, "list", false, "list existing exports instead of writing one")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runExport(ctx context.Context, opts *ExportOptions, pattern string, cmd *cobra.Command) error {
	if ctx == nil {
		ctx = context.Background()
	}
	f := opts.formatter(cmd)

	st, err := catalog.Open(opts.Database)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeCatalog, err.Error(), nil)
	}
	defer st.Close()

	if opts.List {
		return listExports(ctx, f, st)
	}

	reg, err := opts.Registry()
	if err != nil {
		return setupFailed(f, err)
	}

	defs, err := reg.ListPattern(pattern)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodePattern, err.Error(), nil)
	}

	id, err := st.Export(ctx, opts.source(), catalog.Rows(reg, defs))
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeCatalog, err.Error(), nil)
	}

	stored, err := st.Functions(ctx, id, catalog.Filter{})
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeCatalog, err.Error(), nil)
	}

	info, err := st.Info(ctx, id)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeCatalog, err.Error(), nil)
	}
	prev, err := st.Previous(ctx, id)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeCatalog, err.Error(), nil)
	}

	result := ExportResult{
		ExportID:    id,
		Source:      opts.source(),
		Fingerprint: info.Fingerprint,
		SameAs:      prev,
		Functions:   stored,
	}
	return f.Render(result, func(w io.Writer) {
		fmt.Fprintf(w, "Exported %d function name(s) from %s\n", len(stored), result.Source)
		fmt.Fprintf(w, "  export id:   %s\n", id)
		fmt.Fprintf(w, "  fingerprint: %s\n", info.Fingerprint)
		fmt.Fprintf(w, "  database:    %s\n", opts.Database)
		if prev != "" {
			fmt.Fprintf(w, "  unchanged since export %s\n", prev)
		}
	})
}

// ExportList is the JSON payload of export --list.
type ExportList struct {
	Latest  string               `json:"latest,omitempty"`
	Exports []catalog.ExportInfo `json:"exports"`
}

func listExports(ctx context.Context, f *OutputFormatter, st *catalog.Store) error {
	exports, err := st.Exports(ctx)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeCatalog, err.Error(), nil)
	}
	latest, err := st.Latest(ctx)
	if err != nil && !errors.Is(err, catalog.ErrNoExports) {
		return f.Fail(ExitCommandError, ErrCodeCatalog, err.Error(), nil)
	}

	list := ExportList{Latest: latest, Exports: exports}
	return f.Render(list, func(w io.Writer) {
		if len(exports) == 0 {
			fmt.Fprintln(w, "No exports.")
			return
		}
		for _, e := range exports {
			marker := " "
			if e.ID == latest {
				marker = "*"
			}
			fmt.Fprintf(w, "%s %d  %s  %s  (%d functions, %d names)\n",
				marker, e.Seq, e.ID, e.Source, e.FunctionCount, e.KeyCount)
		}
	})
}
