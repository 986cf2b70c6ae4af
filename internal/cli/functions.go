package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/sqlfn/internal/funcs"
)

// FunctionsResult is the JSON payload of the functions command.
type FunctionsResult struct {
	Pattern   string             `json:"pattern,omitempty"`
	Functions []funcs.Definition `json:"functions"`
}

// NewFunctionsCommand creates the functions command.
func NewFunctionsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "functions [pattern]",
		Short: "List registered functions",
		Long: `List every registered function name and alias, in registration order.

Each alias is listed as its own row with the type of the function it
resolves to. The optional pattern is a regular expression matched
case-insensitively against the whole name.

Examples:
  sqlfn functions
  sqlfn functions 'day.*'
  sqlfn functions --format json 'percentile.*'`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := ""
			if len(args) == 1 {
				pattern = args[0]
			}
			return runFunctions(rootOpts, pattern, cmd)
		},
	}

	return cmd
}

func runFunctions(opts *RootOptions, pattern string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	reg, err := opts.Registry()
	if err != nil {
		return setupFailed(f, err)
	}

	defs, err := reg.ListPattern(pattern)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodePattern, err.Error(), nil)
	}

	result := FunctionsResult{Pattern: pattern, Functions: defs}
	return f.Render(result, func(w io.Writer) {
		writeFunctionTable(w, defs)
	})
}

// writeFunctionTable prints name and type columns, like SHOW FUNCTIONS.
func writeFunctionTable(w io.Writer, defs []funcs.Definition) {
	if len(defs) == 0 {
		fmt.Fprintln(w, "No functions match.")
		return
	}

	width := len("name")
	for _, d := range defs {
		width = max(width, len(d.Name))
	}

	fmt.Fprintf(w, "%-*s  %s\n", width, "name", "type")
	for _, d := range defs {
		fmt.Fprintf(w, "%-*s  %s\n", width, d.Name, d.Kind)
	}
}
