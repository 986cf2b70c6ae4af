package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/sqlfn/internal/analyzer"
	"github.com/roach88/sqlfn/internal/expr"
	"github.com/roach88/sqlfn/internal/funcs"
	"github.com/roach88/sqlfn/internal/harness"
)

// ResolveOptions holds flags for the resolve command.
type ResolveOptions struct {
	*RootOptions
	Distinct bool
	TimeZone string
	Line     int
	Column   int
}

// Resolution is the JSON payload of a successful resolve.
type Resolution struct {
	Call     string    `json:"call"`
	Function string    `json:"function"`
	Type     expr.Kind `json:"type"`
	Expr     string    `json:"expr"`
	Zone     string    `json:"zone,omitempty"`
}

// NewResolveCommand creates the resolve command.
func NewResolveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ResolveOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "resolve <name> [args...]",
		Short: "Resolve a function call",
		Long: `Resolve a function call the way the query analyzer does.

Arguments are field names, numbers, or 'quoted' string literals.

Exit codes:
  0 - Call resolved
  1 - Unknown function or call rejected by its builder
  2 - Command error

Examples:
  sqlfn resolve DAY order_date --timezone Europe/Paris
  sqlfn resolve count user_id --distinct
  sqlfn resolve percentile latency 95 --format json`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(opts, args[0], args[1:], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Distinct, "distinct", false, "call with DISTINCT")
	cmd.Flags().StringVar(&opts.TimeZone, "timezone", "", "session time zone (default from config, else UTC)")
	cmd.Flags().IntVar(&opts.Line, "line", 1, "line of the call in the statement")
	cmd.Flags().IntVar(&opts.Column, "column", 1, "column of the call in the statement")

	return cmd
}

func runResolve(opts *ResolveOptions, name string, rawArgs []string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	reg, err := opts.Registry()
	if err != nil {
		return setupFailed(f, err)
	}
	tz, err := opts.Location(opts.TimeZone)
	if err != nil {
		return setupFailed(f, err)
	}

	loc := expr.Location{Line: opts.Line, Column: opts.Column}
	args := make([]expr.Expression, 0, len(rawArgs))
	for _, raw := range rawArgs {
		args = append(args, parseArg(raw, loc))
	}
	call := &expr.UnresolvedCall{Name: name, Args: args, Distinct: opts.Distinct, Loc: loc}

	out, err := analyzer.New(reg, tz).Analyze(call)
	if err != nil {
		var verr *analyzer.VerificationError
		if errors.As(err, &verr) {
			return unknownFunction(f, reg, name)
		}
		details := map[string]int{"line": loc.Line, "column": loc.Column}
		return f.Fail(ExitFailure, ErrCodeResolve, harness.ErrorText(err), details)
	}

	fn := out.(expr.Function)
	res := Resolution{
		Call:     expr.String(call),
		Function: funcs.Normalize(string(fn.Kind())),
		Type:     fn.Kind(),
		Expr:     expr.String(fn),
	}
	if dt, ok := fn.(*expr.DateTimeFunction); ok {
		res.Zone = dt.Zone()
	}

	return f.Render(res, func(w io.Writer) {
		fmt.Fprintf(w, "%s -> %s\n", res.Call, res.Expr)
		fmt.Fprintf(w, "  function: %s\n", res.Function)
		if res.Zone != "" {
			fmt.Fprintf(w, "  zone:     %s\n", res.Zone)
		}
	})
}

// parseArg turns a command-line argument into an expression: numbers and
// 'quoted' strings are literals, anything else is a field reference.
func parseArg(raw string, loc expr.Location) expr.Expression {
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return &expr.Literal{Loc: loc, Value: i}
	}
	// ParseFloat also accepts "NaN" and "Inf", which are valid field names.
	if raw != "" && strings.ContainsAny(raw[:1], "0123456789+-.") {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			return &expr.Literal{Loc: loc, Value: v}
		}
	}
	if len(raw) >= 2 && strings.HasPrefix(raw, "'") && strings.HasSuffix(raw, "'") {
		return &expr.Literal{Loc: loc, Value: strings.ReplaceAll(raw[1:len(raw)-1], "''", "'")}
	}
	return &expr.FieldRef{Loc: loc, Name: raw}
}
