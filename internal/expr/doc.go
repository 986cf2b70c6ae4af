// Package expr defines the expression tree the function registry reads and
// produces.
//
// A parser hands the registry UnresolvedCall nodes: a function name as
// written, its argument expressions, the DISTINCT flag and a source
// Location. Resolution replaces each call with a Function node of one of the
// concrete families below.
//
// SEALED INTERFACES:
//
// Expression and Function are sealed using the marker method pattern. Only
// types in this package implement them, so consumers can switch over the
// families exhaustively:
//
//	switch f := fn.(type) {
//	case *Aggregate:
//	case *DateTimeFunction:
//	case *MathFunction:
//	case *MathConstant:
//	case *Score:
//	}
//
// FUNCTION FAMILIES:
//
//	Aggregate         AVG, COUNT, PERCENTILE, ...   (field, optional parameter, DISTINCT)
//	DateTimeFunction  DAY_OF_MONTH, YEAR, ...       (field, time zone)
//	MathFunction      ABS, SQRT, ...                (field)
//	MathConstant      E, PI                          (no arguments)
//	Score             SCORE                          (no arguments)
//
// Every Function carries a Kind: the declared identifier of the function
// (e.g. "DayOfMonth"). The registry derives the canonical primary name of a
// function from its Kind.
//
// Evaluation semantics are out of scope for this package; nodes are plain
// immutable values.
package expr
