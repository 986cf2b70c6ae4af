package funcs

import (
	"time"

	"github.com/roach88/sqlfn/internal/expr"
)

// BuilderKind names an argument-shape contract.
type BuilderKind string

const (
	// KindNullary takes no arguments and rejects DISTINCT.
	KindNullary BuilderKind = "nullary"

	// KindUnary takes one argument and rejects DISTINCT.
	KindUnary BuilderKind = "unary"

	// KindUnaryDistinct takes one argument and passes DISTINCT to the constructor.
	KindUnaryDistinct BuilderKind = "unary_distinct"

	// KindUnaryTimeZone takes one argument, rejects DISTINCT and receives the time zone.
	KindUnaryTimeZone BuilderKind = "unary_timezone"

	// KindBinary takes two arguments and rejects DISTINCT.
	KindBinary BuilderKind = "binary"
)

// Validation messages carried by ArgumentError.
const (
	msgNoArguments       = "expects no arguments"
	msgOneArgument       = "expects exactly one argument"
	msgTwoArguments      = "expects exactly two arguments"
	msgDistinctForbidden = "does not support DISTINCT yet it was specified"
)

type buildFunc func(loc expr.Location, args []expr.Expression, distinct bool, tz *time.Location) (expr.Function, error)

// Builder checks the shape of a call and delegates to a typed constructor.
//
// Builders are only created through Nullary, Unary, UnaryDistinct,
// UnaryTimeZone and Binary; the zero Builder is invalid and rejected by New.
type Builder struct {
	kind  BuilderKind
	arity int
	build buildFunc
}

// Kind returns the contract the builder enforces.
func (b Builder) Kind() BuilderKind { return b.kind }

// Arity returns the exact number of arguments the builder accepts.
func (b Builder) Arity() int { return b.arity }

// AcceptsDistinct reports whether DISTINCT reaches the constructor instead
// of being rejected.
func (b Builder) AcceptsDistinct() bool { return b.kind == KindUnaryDistinct }

// Valid reports whether the builder was created by one of the contract
// constructors.
func (b Builder) Valid() bool { return b.build != nil }

// Build validates the call shape and invokes the constructor. Validation
// failures are returned as *ArgumentError and the constructor is not called.
func (b Builder) Build(loc expr.Location, args []expr.Expression, distinct bool, tz *time.Location) (expr.Function, error) {
	if b.build == nil {
		return nil, &ArgumentError{Message: "has no builder"}
	}
	return b.build(loc, args, distinct, tz)
}

// Nullary wraps a constructor for a function without arguments.
func Nullary(ctor func(expr.Location) expr.Function) Builder {
	mustConstructor(ctor != nil)
	return Builder{
		kind:  KindNullary,
		arity: 0,
		build: func(loc expr.Location, args []expr.Expression, distinct bool, _ *time.Location) (expr.Function, error) {
			if len(args) != 0 {
				return nil, &ArgumentError{Message: msgNoArguments}
			}
			if distinct {
				return nil, &ArgumentError{Message: msgDistinctForbidden}
			}
			return ctor(loc), nil
		},
	}
}

// Unary wraps a constructor for a one-argument function that is neither
// time zone aware nor DISTINCT aware.
func Unary(ctor func(expr.Location, expr.Expression) expr.Function) Builder {
	mustConstructor(ctor != nil)
	return Builder{
		kind:  KindUnary,
		arity: 1,
		build: func(loc expr.Location, args []expr.Expression, distinct bool, _ *time.Location) (expr.Function, error) {
			if len(args) != 1 {
				return nil, &ArgumentError{Message: msgOneArgument}
			}
			if distinct {
				return nil, &ArgumentError{Message: msgDistinctForbidden}
			}
			return ctor(loc, args[0]), nil
		},
	}
}

// UnaryDistinct wraps a constructor for a one-argument function that
// handles DISTINCT itself.
func UnaryDistinct(ctor func(expr.Location, expr.Expression, bool) expr.Function) Builder {
	mustConstructor(ctor != nil)
	return Builder{
		kind:  KindUnaryDistinct,
		arity: 1,
		build: func(loc expr.Location, args []expr.Expression, distinct bool, _ *time.Location) (expr.Function, error) {
			if len(args) != 1 {
				return nil, &ArgumentError{Message: msgOneArgument}
			}
			return ctor(loc, args[0], distinct), nil
		},
	}
}

// UnaryTimeZone wraps a constructor for a one-argument function that needs
// the session time zone.
func UnaryTimeZone(ctor func(expr.Location, expr.Expression, *time.Location) expr.Function) Builder {
	mustConstructor(ctor != nil)
	return Builder{
		kind:  KindUnaryTimeZone,
		arity: 1,
		build: func(loc expr.Location, args []expr.Expression, distinct bool, tz *time.Location) (expr.Function, error) {
			if len(args) != 1 {
				return nil, &ArgumentError{Message: msgOneArgument}
			}
			if distinct {
				return nil, &ArgumentError{Message: msgDistinctForbidden}
			}
			return ctor(loc, args[0], tz), nil
		},
	}
}

// Binary wraps a constructor for a two-argument function.
func Binary(ctor func(expr.Location, expr.Expression, expr.Expression) expr.Function) Builder {
	mustConstructor(ctor != nil)
	return Builder{
		kind:  KindBinary,
		arity: 2,
		build: func(loc expr.Location, args []expr.Expression, distinct bool, _ *time.Location) (expr.Function, error) {
			if len(args) != 2 {
				return nil, &ArgumentError{Message: msgTwoArguments}
			}
			if distinct {
				return nil, &ArgumentError{Message: msgDistinctForbidden}
			}
			return ctor(loc, args[0], args[1]), nil
		},
	}
}

func mustConstructor(ok bool) {
	if !ok {
		panic("funcs: nil function constructor")
	}
}
