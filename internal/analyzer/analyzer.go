// Package analyzer binds the function calls of a parsed expression to the
// function registry.
//
// The registry assumes its caller has already checked that a function
// exists. The analyzer is that caller: unknown names become user-facing
// errors with suggestions, and only known names reach funcs.Registry.Resolve.
package analyzer

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/roach88/sqlfn/internal/expr"
	"github.com/roach88/sqlfn/internal/funcs"
)

// VerificationError reports a function name the registry does not know.
type VerificationError struct {
	Name        string
	Line        int
	Column      int
	Suggestions []string
}

// Error implements the error interface.
func (e *VerificationError) Error() string {
	return fmt.Sprintf("line %d:%d: %s", e.Line, e.Column, e.Message())
}

// Message is the error text without location.
func (e *VerificationError) Message() string {
	msg := fmt.Sprintf("unknown function [%s]", e.Name)
	switch len(e.Suggestions) {
	case 0:
		return msg
	case 1:
		return fmt.Sprintf("%s, did you mean [%s]?", msg, e.Suggestions[0])
	default:
		return fmt.Sprintf("%s, did you mean any of [%s]?", msg, strings.Join(e.Suggestions, ", "))
	}
}

// Analyzer resolves function calls against a registry in a fixed time zone.
type Analyzer struct {
	registry *funcs.Registry
	timeZone *time.Location
}

// New creates an analyzer. A nil tz means UTC.
func New(registry *funcs.Registry, tz *time.Location) *Analyzer {
	if tz == nil {
		tz = time.UTC
	}
	return &Analyzer{registry: registry, timeZone: tz}
}

// TimeZone returns the zone passed to time zone aware functions.
func (a *Analyzer) TimeZone() *time.Location {
	return a.timeZone
}

// Analyze returns e with every UnresolvedCall replaced by its function node.
// Calls are resolved innermost first. All failures in the tree are
// reported, joined with errors.Join; on failure the returned expression is nil.
func (a *Analyzer) Analyze(e expr.Expression) (expr.Expression, error) {
	var errs []error
	out := a.analyze(e, &errs)
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return out, nil
}

func (a *Analyzer) analyze(e expr.Expression, errs *[]error) expr.Expression {
	call, ok := e.(*expr.UnresolvedCall)
	if !ok {
		return e
	}

	args := make([]expr.Expression, len(call.Args))
	failed := false
	for i, arg := range call.Args {
		before := len(*errs)
		args[i] = a.analyze(arg, errs)
		failed = failed || len(*errs) > before
	}

	if !a.registry.Exists(call.Name) {
		*errs = append(*errs, &VerificationError{
			Name:        call.Name,
			Line:        call.Loc.Line,
			Column:      call.Loc.Column,
			Suggestions: Suggest(funcs.Normalize(call.Name), a.registry.Keys()),
		})
		return nil
	}
	if failed {
		return nil
	}

	bound := &expr.UnresolvedCall{
		Name:     call.Name,
		Args:     args,
		Distinct: call.Distinct,
		Loc:      call.Loc,
	}
	fn, err := a.registry.Resolve(bound, a.timeZone)
	if err != nil {
		*errs = append(*errs, err)
		return nil
	}

	slog.Debug("function resolved",
		"name", call.Name,
		"function", a.registry.ConcreteName(call.Name),
		"kind", fn.Kind(),
		"location", call.Loc.String(),
	)
	return fn
}
