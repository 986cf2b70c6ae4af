package expr

import (
	"math"
	"time"
)

// Kind identifies the concrete function a node was built as. Its value is
// the declared identifier of the function in CamelCase, e.g. "DayOfMonth".
type Kind string

// Aggregate kinds.
const (
	KindAvg            Kind = "Avg"
	KindCount          Kind = "Count"
	KindMax            Kind = "Max"
	KindMin            Kind = "Min"
	KindSum            Kind = "Sum"
	KindMean           Kind = "Mean"
	KindStddevPop      Kind = "StddevPop"
	KindVarPop         Kind = "VarPop"
	KindPercentile     Kind = "Percentile"
	KindPercentileRank Kind = "PercentileRank"
	KindSumOfSquares   Kind = "SumOfSquares"
	KindMatrixCount    Kind = "MatrixCount"
	KindMatrixMean     Kind = "MatrixMean"
	KindMatrixVariance Kind = "MatrixVariance"
	KindSkewness       Kind = "Skewness"
	KindKurtosis       Kind = "Kurtosis"
	KindCovariance     Kind = "Covariance"
	KindCorrelation    Kind = "Correlation"
)

// Date/time kinds.
const (
	KindDayOfMonth     Kind = "DayOfMonth"
	KindDayOfWeek      Kind = "DayOfWeek"
	KindDayOfYear      Kind = "DayOfYear"
	KindHourOfDay      Kind = "HourOfDay"
	KindMinuteOfDay    Kind = "MinuteOfDay"
	KindMinuteOfHour   Kind = "MinuteOfHour"
	KindSecondOfMinute Kind = "SecondOfMinute"
	KindMonthOfYear    Kind = "MonthOfYear"
	KindYear           Kind = "Year"
)

// Math kinds.
const (
	KindAbs     Kind = "Abs"
	KindACos    Kind = "ACos"
	KindASin    Kind = "ASin"
	KindATan    Kind = "ATan"
	KindCbrt    Kind = "Cbrt"
	KindCeil    Kind = "Ceil"
	KindCos     Kind = "Cos"
	KindCosh    Kind = "Cosh"
	KindDegrees Kind = "Degrees"
	KindE       Kind = "E"
	KindExp     Kind = "Exp"
	KindExpm1   Kind = "Expm1"
	KindFloor   Kind = "Floor"
	KindLog     Kind = "Log"
	KindLog10   Kind = "Log10"
	KindPi      Kind = "Pi"
	KindRadians Kind = "Radians"
	KindRound   Kind = "Round"
	KindSin     Kind = "Sin"
	KindSinh    Kind = "Sinh"
	KindSqrt    Kind = "Sqrt"
	KindTan     Kind = "Tan"
)

// KindScore is the full-text relevance score.
const KindScore Kind = "Score"

// Function is a resolved function node.
//
// This is a sealed interface - only types in this package implement it.
type Function interface {
	Expression
	functionNode()

	// Kind returns the concrete function this node was built as.
	Kind() Kind
}

// Aggregate is an aggregate function over a field, e.g. AVG(price) or
// PERCENTILE(latency, 99). Parameter is nil for single-argument aggregates.
// Distinct is only ever set for aggregates that accept DISTINCT.
type Aggregate struct {
	Loc       Location
	FuncKind  Kind
	Field     Expression
	Parameter Expression
	Distinct  bool
}

func (*Aggregate) exprNode()     {}
func (*Aggregate) functionNode() {}

func (a *Aggregate) Location() Location { return a.Loc }
func (a *Aggregate) Kind() Kind         { return a.FuncKind }

func (a *Aggregate) Children() []Expression {
	if a.Parameter == nil {
		return []Expression{a.Field}
	}
	return []Expression{a.Field, a.Parameter}
}

func (a *Aggregate) String() string {
	return formatCall(string(a.FuncKind), a.Distinct, a.Children())
}

// DateTimeFunction extracts a calendar field from a date/time expression,
// interpreted in TimeZone. A nil TimeZone means UTC.
type DateTimeFunction struct {
	Loc      Location
	FuncKind Kind
	Field    Expression
	TimeZone *time.Location
}

func (*DateTimeFunction) exprNode()     {}
func (*DateTimeFunction) functionNode() {}

func (d *DateTimeFunction) Location() Location     { return d.Loc }
func (d *DateTimeFunction) Kind() Kind             { return d.FuncKind }
func (d *DateTimeFunction) Children() []Expression { return []Expression{d.Field} }

func (d *DateTimeFunction) String() string {
	return formatCall(string(d.FuncKind), false, d.Children())
}

// Zone returns the time zone name the function extracts in.
func (d *DateTimeFunction) Zone() string {
	if d.TimeZone == nil {
		return time.UTC.String()
	}
	return d.TimeZone.String()
}

// MathFunction applies a scalar math operation to one argument.
type MathFunction struct {
	Loc      Location
	FuncKind Kind
	Field    Expression
}

func (*MathFunction) exprNode()     {}
func (*MathFunction) functionNode() {}

func (m *MathFunction) Location() Location     { return m.Loc }
func (m *MathFunction) Kind() Kind             { return m.FuncKind }
func (m *MathFunction) Children() []Expression { return []Expression{m.Field} }

func (m *MathFunction) String() string {
	return formatCall(string(m.FuncKind), false, m.Children())
}

// MathConstant is a zero-argument function returning a constant.
type MathConstant struct {
	Loc      Location
	FuncKind Kind
}

func (*MathConstant) exprNode()     {}
func (*MathConstant) functionNode() {}

func (c *MathConstant) Location() Location     { return c.Loc }
func (c *MathConstant) Kind() Kind             { return c.FuncKind }
func (c *MathConstant) Children() []Expression { return nil }

func (c *MathConstant) String() string {
	return formatCall(string(c.FuncKind), false, nil)
}

// Value returns the constant. Unknown kinds yield NaN.
func (c *MathConstant) Value() float64 {
	switch c.FuncKind {
	case KindE:
		return math.E
	case KindPi:
		return math.Pi
	default:
		return math.NaN()
	}
}

// Score is the relevance score of the current document.
type Score struct {
	Loc Location
}

func (*Score) exprNode()     {}
func (*Score) functionNode() {}

func (s *Score) Location() Location     { return s.Loc }
func (s *Score) Kind() Kind             { return KindScore }
func (s *Score) Children() []Expression { return nil }
func (s *Score) String() string         { return formatCall(string(KindScore), false, nil) }
