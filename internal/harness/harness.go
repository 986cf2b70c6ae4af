package harness

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/roach88/sqlfn/internal/analyzer"
	"github.com/roach88/sqlfn/internal/expr"
	"github.com/roach88/sqlfn/internal/funcs"
)

// Run analyzes every call of scenario against registry and returns the
// result.
//
// Calls are independent: a failing call does not stop the scenario. An
// error is returned only when the scenario itself cannot run.
func Run(registry *funcs.Registry, scenario *Scenario) (*Result, error) {
	if registry == nil {
		return nil, fmt.Errorf("registry is required")
	}

	tz, err := scenarioZone(scenario)
	if err != nil {
		return nil, err
	}
	a := analyzer.New(registry, tz)

	result := NewResult()
	for i := range scenario.Calls {
		step := &scenario.Calls[i]
		call := step.Call.Expression()

		ev := TraceEvent{Call: expr.String(call)}
		out, err := a.Analyze(call)
		if err != nil {
			ev.Error = ErrorText(err)
		} else if fn, ok := out.(expr.Function); ok {
			ev.Function = funcs.Normalize(string(fn.Kind()))
			ev.Expr = expr.String(fn)
			if dt, ok := fn.(*expr.DateTimeFunction); ok {
				ev.Zone = dt.Zone()
			}
		}
		result.AddTrace(ev)

		for _, msg := range checkExpect(i, step.Expect, ev) {
			result.AddError(msg)
		}
	}

	slog.Debug("scenario finished",
		"scenario", scenario.Name,
		"calls", len(scenario.Calls),
		"pass", result.Pass,
	)

	return result, nil
}

func scenarioZone(s *Scenario) (*time.Location, error) {
	if s.TimeZone == "" {
		return time.UTC, nil
	}
	tz, err := time.LoadLocation(s.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: timezone: %w", s.Name, err)
	}
	return tz, nil
}

func checkExpect(index int, want *ExpectClause, got TraceEvent) []string {
	if want == nil {
		return nil
	}

	var errs []string
	if want.Error != "" {
		if got.Error != want.Error {
			errs = append(errs, fmt.Sprintf("calls[%d] %s: expected error %q, got %s",
				index, got.Call, want.Error, describe(got)))
		}
		return errs
	}

	if got.Function != want.Function {
		errs = append(errs, fmt.Sprintf("calls[%d] %s: expected function %q, got %s",
			index, got.Call, want.Function, describe(got)))
		return errs
	}
	if want.Expr != "" && got.Expr != want.Expr {
		errs = append(errs, fmt.Sprintf("calls[%d] %s: expected expr %q, got %q",
			index, got.Call, want.Expr, got.Expr))
	}
	return errs
}

func describe(ev TraceEvent) string {
	if ev.Error != "" {
		return fmt.Sprintf("error %q", ev.Error)
	}
	return fmt.Sprintf("function %q", ev.Function)
}

// ErrorText renders an analysis error without locations. Joined errors are
// separated by "; ".
func ErrorText(err error) string {
	var parts []string
	for _, e := range flatten(err) {
		parts = append(parts, message(e))
	}
	return strings.Join(parts, "; ")
}

func flatten(err error) []error {
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		var out []error
		for _, e := range j.Unwrap() {
			out = append(out, flatten(e)...)
		}
		return out
	}
	return []error{err}
}

func message(err error) string {
	var ve *analyzer.VerificationError
	if errors.As(err, &ve) {
		return ve.Message()
	}
	var pe *funcs.ParsingError
	if errors.As(err, &pe) {
		return pe.Message
	}
	var ie *funcs.InternalError
	if errors.As(err, &ie) {
		return ie.Message
	}
	return err.Error()
}
