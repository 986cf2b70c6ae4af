package analyzer

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/sqlfn/internal/expr"
	"github.com/roach88/sqlfn/internal/funcs"
)

func newAnalyzer(t *testing.T, tz *time.Location) *Analyzer {
	t.Helper()
	reg, err := funcs.NewDefault()
	require.NoError(t, err)
	return New(reg, tz)
}

func call(name string, args ...expr.Expression) *expr.UnresolvedCall {
	return &expr.UnresolvedCall{Name: name, Args: args, Loc: expr.Location{Line: 1, Column: 1}}
}

func ref(name string) expr.Expression {
	return &expr.FieldRef{Name: name}
}

func joined(err error) []error {
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		return j.Unwrap()
	}
	return []error{err}
}

func TestAnalyze_LeavesAreUntouched(t *testing.T) {
	a := newAnalyzer(t, nil)

	in := ref("price")
	out, err := a.Analyze(in)
	require.NoError(t, err)
	assert.Same(t, in, out)
}

func TestAnalyze_NestedCalls(t *testing.T) {
	a := newAnalyzer(t, nil)

	out, err := a.Analyze(call("ABS", call("round", ref("x"))))
	require.NoError(t, err)

	abs, ok := out.(*expr.MathFunction)
	require.True(t, ok)
	assert.Equal(t, expr.KindAbs, abs.Kind())

	round, ok := abs.Field.(*expr.MathFunction)
	require.True(t, ok)
	assert.Equal(t, expr.KindRound, round.Kind())
	assert.Equal(t, "Abs(Round(x))", expr.String(out))
}

func TestAnalyze_PassesTimeZone(t *testing.T) {
	tz := time.FixedZone("UTC+9", 9*3600)
	a := newAnalyzer(t, tz)
	assert.Same(t, tz, a.TimeZone())

	out, err := a.Analyze(call("HOUR", ref("ts")))
	require.NoError(t, err)
	dt := out.(*expr.DateTimeFunction)
	assert.Equal(t, expr.KindHourOfDay, dt.Kind())
	assert.Same(t, tz, dt.TimeZone)
}

func TestAnalyze_DefaultsToUTC(t *testing.T) {
	a := newAnalyzer(t, nil)
	assert.Same(t, time.UTC, a.TimeZone())
}

func TestAnalyze_UnknownFunctionWithSuggestion(t *testing.T) {
	a := newAnalyzer(t, nil)

	c := call("DAY_OF_MONT", ref("ts"))
	c.Loc = expr.Location{Line: 2, Column: 9}

	out, err := a.Analyze(c)
	require.Error(t, err)
	assert.Nil(t, out)

	var ve *VerificationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{"day_of_month"}, ve.Suggestions)
	assert.Equal(t, "line 2:9: unknown function [DAY_OF_MONT], did you mean [day_of_month]?", ve.Error())
	assert.False(t, funcs.IsUnknownFunction(err), "unknown names must never reach Resolve")
}

func TestAnalyze_UnknownFunctionWithoutSuggestion(t *testing.T) {
	a := newAnalyzer(t, nil)

	_, err := a.Analyze(call("frobnicate", ref("x")))
	var ve *VerificationError
	require.ErrorAs(t, err, &ve)
	assert.Empty(t, ve.Suggestions)
	assert.Equal(t, "unknown function [frobnicate]", ve.Message())
}

func TestAnalyze_ShapeErrorIsLocated(t *testing.T) {
	a := newAnalyzer(t, nil)

	c := &expr.UnresolvedCall{
		Name:     "abs",
		Args:     []expr.Expression{ref("x")},
		Distinct: true,
		Loc:      expr.Location{Line: 5, Column: 3},
	}
	_, err := a.Analyze(c)
	require.Error(t, err)

	var pe *funcs.ParsingError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "error building [abs]: does not support DISTINCT yet it was specified", pe.Message)
	assert.Equal(t, 5, pe.Line)
	assert.Equal(t, 3, pe.Column)
}

func TestAnalyze_CollectsAllErrors(t *testing.T) {
	a := newAnalyzer(t, nil)

	_, err := a.Analyze(call("foo", call("bar", ref("x")), call("abs")))
	require.Error(t, err)

	errs := joined(err)
	require.Len(t, errs, 3)

	var ve *VerificationError
	require.True(t, errors.As(errs[0], &ve))
	assert.Equal(t, "bar", ve.Name)
	var pe *funcs.ParsingError
	require.True(t, errors.As(errs[1], &pe))
	assert.Equal(t, "error building [abs]: expects exactly one argument", pe.Message)
	require.True(t, errors.As(errs[2], &ve))
	assert.Equal(t, "foo", ve.Name)
}

func TestAnalyze_ArgumentFailureSkipsOuterResolve(t *testing.T) {
	a := newAnalyzer(t, nil)

	// Only the inner failure is reported; ABS itself is well formed.
	_, err := a.Analyze(call("abs", call("nope", ref("x"))))
	require.Error(t, err)
	assert.Len(t, joined(err), 1)
}
