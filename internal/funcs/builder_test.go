package funcs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/sqlfn/internal/expr"
)

func field(name string) expr.Expression {
	return &expr.FieldRef{Name: name}
}

// countingCtor records how often a constructor ran so tests can prove
// validation happens before delegation.
type countingCtor struct {
	calls int
}

func (c *countingCtor) nullary(loc expr.Location) expr.Function {
	c.calls++
	return expr.Constant(expr.KindPi)(loc)
}

func (c *countingCtor) unary(loc expr.Location, e expr.Expression) expr.Function {
	c.calls++
	return expr.Math(expr.KindAbs)(loc, e)
}

func TestBuilder_ArityAndDistinct(t *testing.T) {
	loc := expr.Location{Line: 3, Column: 7}
	tz := time.UTC

	tests := []struct {
		name     string
		builder  Builder
		args     []expr.Expression
		distinct bool
		wantErr  string
	}{
		{"nullary ok", Nullary(expr.Constant(expr.KindPi)), nil, false, ""},
		{"nullary with argument", Nullary(expr.Constant(expr.KindPi)), []expr.Expression{field("x")}, false, "expects no arguments"},
		{"nullary distinct", Nullary(expr.Constant(expr.KindPi)), nil, true, "does not support DISTINCT yet it was specified"},

		{"unary ok", Unary(expr.Math(expr.KindAbs)), []expr.Expression{field("x")}, false, ""},
		{"unary no args", Unary(expr.Math(expr.KindAbs)), nil, false, "expects exactly one argument"},
		{"unary two args", Unary(expr.Math(expr.KindAbs)), []expr.Expression{field("x"), field("y")}, false, "expects exactly one argument"},
		{"unary distinct", Unary(expr.Math(expr.KindAbs)), []expr.Expression{field("x")}, true, "does not support DISTINCT yet it was specified"},

		{"unary distinct aware", UnaryDistinct(expr.DistinctAggregate(expr.KindCount)), []expr.Expression{field("x")}, true, ""},
		{"unary distinct aware two args", UnaryDistinct(expr.DistinctAggregate(expr.KindCount)), []expr.Expression{field("x"), field("y")}, true, "expects exactly one argument"},

		{"timezone ok", UnaryTimeZone(expr.DateTime(expr.KindYear)), []expr.Expression{field("ts")}, false, ""},
		{"timezone distinct", UnaryTimeZone(expr.DateTime(expr.KindYear)), []expr.Expression{field("ts")}, true, "does not support DISTINCT yet it was specified"},
		{"timezone no args", UnaryTimeZone(expr.DateTime(expr.KindYear)), nil, false, "expects exactly one argument"},

		{"binary ok", Binary(expr.BinaryAggregate(expr.KindPercentile)), []expr.Expression{field("x"), &expr.Literal{Value: 99}}, false, ""},
		{"binary one arg", Binary(expr.BinaryAggregate(expr.KindPercentile)), []expr.Expression{field("x")}, false, "expects exactly two arguments"},
		{"binary distinct", Binary(expr.BinaryAggregate(expr.KindPercentile)), []expr.Expression{field("x"), field("y")}, true, "does not support DISTINCT yet it was specified"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, err := tt.builder.Build(loc, tt.args, tt.distinct, tz)
			if tt.wantErr == "" {
				require.NoError(t, err)
				require.NotNil(t, fn)
				assert.Equal(t, loc, fn.Location())
				return
			}

			require.Error(t, err)
			assert.Nil(t, fn)
			var argErr *ArgumentError
			require.ErrorAs(t, err, &argErr)
			assert.Equal(t, tt.wantErr, argErr.Message)
		})
	}
}

func TestBuilder_ArityCheckedBeforeDistinct(t *testing.T) {
	_, err := Unary(expr.Math(expr.KindAbs)).Build(expr.Location{}, nil, true, nil)
	require.Error(t, err)
	assert.Equal(t, "expects exactly one argument", err.Error())
}

func TestBuilder_ConstructorNotCalledOnFailure(t *testing.T) {
	c := &countingCtor{}

	_, err := Nullary(c.nullary).Build(expr.Location{}, []expr.Expression{field("x")}, false, nil)
	require.Error(t, err)
	_, err = Unary(c.unary).Build(expr.Location{}, []expr.Expression{field("x")}, true, nil)
	require.Error(t, err)
	assert.Equal(t, 0, c.calls)

	_, err = Unary(c.unary).Build(expr.Location{}, []expr.Expression{field("x")}, false, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, c.calls)
}

func TestBuilder_PassesThroughDistinctAndTimeZone(t *testing.T) {
	paris := time.FixedZone("CET", 3600)

	fn, err := UnaryDistinct(expr.DistinctAggregate(expr.KindCount)).Build(expr.Location{}, []expr.Expression{field("x")}, true, nil)
	require.NoError(t, err)
	agg, ok := fn.(*expr.Aggregate)
	require.True(t, ok)
	assert.True(t, agg.Distinct)

	fn, err = UnaryTimeZone(expr.DateTime(expr.KindHourOfDay)).Build(expr.Location{}, []expr.Expression{field("ts")}, false, paris)
	require.NoError(t, err)
	dt, ok := fn.(*expr.DateTimeFunction)
	require.True(t, ok)
	assert.Same(t, paris, dt.TimeZone)
}

func TestBuilder_Metadata(t *testing.T) {
	tests := []struct {
		builder  Builder
		kind     BuilderKind
		arity    int
		distinct bool
	}{
		{Nullary(expr.NewScore), KindNullary, 0, false},
		{Unary(expr.Math(expr.KindAbs)), KindUnary, 1, false},
		{UnaryDistinct(expr.DistinctAggregate(expr.KindCount)), KindUnaryDistinct, 1, true},
		{UnaryTimeZone(expr.DateTime(expr.KindYear)), KindUnaryTimeZone, 1, false},
		{Binary(expr.BinaryAggregate(expr.KindCovariance)), KindBinary, 2, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.builder.Kind())
			assert.Equal(t, tt.arity, tt.builder.Arity())
			assert.Equal(t, tt.distinct, tt.builder.AcceptsDistinct())
			assert.True(t, tt.builder.Valid())
		})
	}
}

func TestBuilder_ZeroValue(t *testing.T) {
	var b Builder
	assert.False(t, b.Valid())

	_, err := b.Build(expr.Location{}, nil, false, nil)
	require.Error(t, err)
}

func TestBuilder_NilConstructorPanics(t *testing.T) {
	assert.Panics(t, func() { Unary(nil) })
	assert.Panics(t, func() { Nullary(nil) })
}
