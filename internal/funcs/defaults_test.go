package funcs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/sqlfn/internal/expr"
)

func TestDefaults_BuildWithoutConflict(t *testing.T) {
	r, err := NewDefault()
	require.NoError(t, err)

	defs := Defaults()
	aliases := 0
	for _, d := range defs {
		aliases += len(d.Aliases)
	}
	assert.Equal(t, len(defs)+aliases, r.Len())
}

func TestDefaults_FreshSliceEachCall(t *testing.T) {
	a := Defaults()
	a[0].Name = "mutated"
	assert.Equal(t, "avg", Defaults()[0].Name)
}

func TestDefaults_PrimaryNamesDeriveFromKind(t *testing.T) {
	for _, d := range Defaults() {
		assert.Equal(t, Normalize(string(d.Kind)), d.Name)
	}
}

func TestDefaults_Aliases(t *testing.T) {
	r := MustNew(Defaults())

	tests := map[string]string{
		"DAY":    "day_of_month",
		"DOM":    "day_of_month",
		"DOW":    "day_of_week",
		"DOY":    "day_of_year",
		"HOUR":   "hour_of_day",
		"MINUTE": "minute_of_hour",
		"SECOND": "second_of_minute",
		"MONTH":  "month_of_year",
	}
	for alias, primary := range tests {
		assert.Equal(t, primary, r.ConcreteName(alias), alias)
	}
}

func TestDefaults_ContractsMatchFunctionShapes(t *testing.T) {
	r := MustNew(Defaults())

	tests := map[string]BuilderKind{
		"avg":             KindUnary,
		"count":           KindUnaryDistinct,
		"percentile":      KindBinary,
		"percentile_rank": KindBinary,
		"covariance":      KindBinary,
		"correlation":     KindBinary,
		"day_of_month":    KindUnaryTimeZone,
		"year":            KindUnaryTimeZone,
		"abs":             KindUnary,
		"acos":            KindUnary,
		"log10":           KindUnary,
		"e":               KindNullary,
		"pi":              KindNullary,
		"score":           KindNullary,
	}
	for name, kind := range tests {
		d, ok := r.Get(name)
		require.True(t, ok, name)
		assert.Equal(t, kind, d.Builder.Kind(), name)
	}
}

func TestDefaults_EveryFunctionBuildsWithItsArity(t *testing.T) {
	r := MustNew(Defaults())
	tz := time.FixedZone("UTC+2", 2*3600)

	for _, d := range Defaults() {
		args := make([]expr.Expression, d.Builder.Arity())
		for i := range args {
			args[i] = field("f")
		}
		fn, err := r.Resolve(&expr.UnresolvedCall{Name: d.Name, Args: args}, tz)
		require.NoError(t, err, d.Name)
		assert.Equal(t, d.Kind, fn.Kind(), d.Name)
		assert.Len(t, fn.Children(), d.Builder.Arity(), d.Name)
	}
}
