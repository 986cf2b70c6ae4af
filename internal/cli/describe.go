package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/sqlfn/internal/analyzer"
	"github.com/roach88/sqlfn/internal/expr"
	"github.com/roach88/sqlfn/internal/funcs"
)

// Description is the JSON payload of the describe command.
type Description struct {
	Name     string            `json:"name"`
	Primary  string            `json:"primary"`
	Alias    bool              `json:"alias"`
	Type     expr.Kind         `json:"type"`
	Builder  funcs.BuilderKind `json:"builder"`
	Arity    int               `json:"arity"`
	Distinct bool              `json:"distinct"`
	Aliases  []string          `json:"aliases"`
}

// NewDescribeCommand creates the describe command.
func NewDescribeCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe <name>",
		Short: "Describe a function or alias",
		Long: `Show what a function name resolves to: its primary name, type,
builder contract and aliases. Names are case-insensitive.

Exit codes:
  0 - Name is registered
  1 - Name is not registered
  2 - Command error

Examples:
  sqlfn describe DAY
  sqlfn describe --format json percentile`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDescribe(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runDescribe(opts *RootOptions, name string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	reg, err := opts.Registry()
	if err != nil {
		return setupFailed(f, err)
	}

	def, ok := reg.Get(name)
	if !ok {
		return unknownFunction(f, reg, name)
	}

	key := funcs.Normalize(name)
	aliases := def.Aliases
	if aliases == nil {
		aliases = []string{}
	}
	desc := Description{
		Name:     key,
		Primary:  def.Name,
		Alias:    key != def.Name,
		Type:     def.Kind,
		Builder:  def.Builder.Kind(),
		Arity:    def.Builder.Arity(),
		Distinct: def.Builder.AcceptsDistinct(),
		Aliases:  aliases,
	}

	return f.Render(desc, func(w io.Writer) {
		if desc.Alias {
			fmt.Fprintf(w, "%s (alias of %s)\n", desc.Name, desc.Primary)
		} else {
			fmt.Fprintln(w, desc.Name)
		}
		fmt.Fprintf(w, "  type:     %s\n", desc.Type)
		fmt.Fprintf(w, "  builder:  %s\n", desc.Builder)
		fmt.Fprintf(w, "  arity:    %d\n", desc.Arity)
		fmt.Fprintf(w, "  distinct: %t\n", desc.Distinct)
		if len(desc.Aliases) > 0 {
			fmt.Fprintf(w, "  aliases:  %s\n", strings.Join(desc.Aliases, ", "))
		}
	})
}

// unknownFunction reports name as unregistered, with suggestions.
func unknownFunction(f *OutputFormatter, reg *funcs.Registry, name string) error {
	verr := &analyzer.VerificationError{
		Name:        name,
		Suggestions: analyzer.Suggest(funcs.Normalize(name), reg.Keys()),
	}
	var details any
	if len(verr.Suggestions) > 0 {
		details = map[string][]string{"suggestions": verr.Suggestions}
	}
	return f.Fail(ExitFailure, ErrCodeUnknownFunction, verr.Message(), details)
}
