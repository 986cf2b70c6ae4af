package expr

import "time"

// Constructors below return the function values the registry's builder
// contracts wrap. Each factory captures the Kind so a table entry can name
// its constructor explicitly.

// UnaryAggregate returns a constructor for a one-field aggregate that does
// not accept DISTINCT.
func UnaryAggregate(k Kind) func(Location, Expression) Function {
	return func(loc Location, field Expression) Function {
		return &Aggregate{Loc: loc, FuncKind: k, Field: field}
	}
}

// DistinctAggregate returns a constructor for a one-field aggregate that
// decides for itself what DISTINCT means.
func DistinctAggregate(k Kind) func(Location, Expression, bool) Function {
	return func(loc Location, field Expression, distinct bool) Function {
		return &Aggregate{Loc: loc, FuncKind: k, Field: field, Distinct: distinct}
	}
}

// BinaryAggregate returns a constructor for an aggregate over a field and a
// second argument (a percentile, or a second field for covariance).
func BinaryAggregate(k Kind) func(Location, Expression, Expression) Function {
	return func(loc Location, field, param Expression) Function {
		return &Aggregate{Loc: loc, FuncKind: k, Field: field, Parameter: param}
	}
}

// DateTime returns a constructor for a time zone aware date/time extraction.
func DateTime(k Kind) func(Location, Expression, *time.Location) Function {
	return func(loc Location, field Expression, tz *time.Location) Function {
		return &DateTimeFunction{Loc: loc, FuncKind: k, Field: field, TimeZone: tz}
	}
}

// Math returns a constructor for a unary math function.
func Math(k Kind) func(Location, Expression) Function {
	return func(loc Location, field Expression) Function {
		return &MathFunction{Loc: loc, FuncKind: k, Field: field}
	}
}

// Constant returns a constructor for a zero-argument math constant.
func Constant(k Kind) func(Location) Function {
	return func(loc Location) Function {
		return &MathConstant{Loc: loc, FuncKind: k}
	}
}

// NewScore builds a SCORE() node.
func NewScore(loc Location) Function {
	return &Score{Loc: loc}
}
