package funcs

import "github.com/roach88/sqlfn/internal/expr"

// Defaults returns the built-in function definitions in registration order.
// The slice is freshly allocated on every call; build the registry once at
// startup and pass it to whoever needs it.
func Defaults() []Definition {
	return []Definition{
		// Aggregate functions
		Def(expr.KindAvg, Unary(expr.UnaryAggregate(expr.KindAvg))),
		Def(expr.KindCount, UnaryDistinct(expr.DistinctAggregate(expr.KindCount))),
		Def(expr.KindMax, Unary(expr.UnaryAggregate(expr.KindMax))),
		Def(expr.KindMin, Unary(expr.UnaryAggregate(expr.KindMin))),
		Def(expr.KindSum, Unary(expr.UnaryAggregate(expr.KindSum))),
		// Statistics
		Def(expr.KindMean, Unary(expr.UnaryAggregate(expr.KindMean))),
		Def(expr.KindStddevPop, Unary(expr.UnaryAggregate(expr.KindStddevPop))),
		Def(expr.KindVarPop, Unary(expr.UnaryAggregate(expr.KindVarPop))),
		Def(expr.KindPercentile, Binary(expr.BinaryAggregate(expr.KindPercentile))),
		Def(expr.KindPercentileRank, Binary(expr.BinaryAggregate(expr.KindPercentileRank))),
		Def(expr.KindSumOfSquares, Unary(expr.UnaryAggregate(expr.KindSumOfSquares))),
		// Matrix aggregates
		Def(expr.KindMatrixCount, Unary(expr.UnaryAggregate(expr.KindMatrixCount))),
		Def(expr.KindMatrixMean, Unary(expr.UnaryAggregate(expr.KindMatrixMean))),
		Def(expr.KindMatrixVariance, Unary(expr.UnaryAggregate(expr.KindMatrixVariance))),
		Def(expr.KindSkewness, Unary(expr.UnaryAggregate(expr.KindSkewness))),
		Def(expr.KindKurtosis, Unary(expr.UnaryAggregate(expr.KindKurtosis))),
		Def(expr.KindCovariance, Binary(expr.BinaryAggregate(expr.KindCovariance))),
		Def(expr.KindCorrelation, Binary(expr.BinaryAggregate(expr.KindCorrelation))),

		// Date
		Def(expr.KindDayOfMonth, UnaryTimeZone(expr.DateTime(expr.KindDayOfMonth)), "DAY", "DOM"),
		Def(expr.KindDayOfWeek, UnaryTimeZone(expr.DateTime(expr.KindDayOfWeek)), "DOW"),
		Def(expr.KindDayOfYear, UnaryTimeZone(expr.DateTime(expr.KindDayOfYear)), "DOY"),
		Def(expr.KindHourOfDay, UnaryTimeZone(expr.DateTime(expr.KindHourOfDay)), "HOUR"),
		Def(expr.KindMinuteOfDay, UnaryTimeZone(expr.DateTime(expr.KindMinuteOfDay))),
		Def(expr.KindMinuteOfHour, UnaryTimeZone(expr.DateTime(expr.KindMinuteOfHour)), "MINUTE"),
		Def(expr.KindSecondOfMinute, UnaryTimeZone(expr.DateTime(expr.KindSecondOfMinute)), "SECOND"),
		Def(expr.KindMonthOfYear, UnaryTimeZone(expr.DateTime(expr.KindMonthOfYear)), "MONTH"),
		Def(expr.KindYear, UnaryTimeZone(expr.DateTime(expr.KindYear))),

		// Math
		Def(expr.KindAbs, Unary(expr.Math(expr.KindAbs))),
		Def(expr.KindACos, Unary(expr.Math(expr.KindACos))),
		Def(expr.KindASin, Unary(expr.Math(expr.KindASin))),
		Def(expr.KindATan, Unary(expr.Math(expr.KindATan))),
		Def(expr.KindCbrt, Unary(expr.Math(expr.KindCbrt))),
		Def(expr.KindCeil, Unary(expr.Math(expr.KindCeil))),
		Def(expr.KindCos, Unary(expr.Math(expr.KindCos))),
		Def(expr.KindCosh, Unary(expr.Math(expr.KindCosh))),
		Def(expr.KindDegrees, Unary(expr.Math(expr.KindDegrees))),
		Def(expr.KindE, Nullary(expr.Constant(expr.KindE))),
		Def(expr.KindExp, Unary(expr.Math(expr.KindExp))),
		Def(expr.KindExpm1, Unary(expr.Math(expr.KindExpm1))),
		Def(expr.KindFloor, Unary(expr.Math(expr.KindFloor))),
		Def(expr.KindLog, Unary(expr.Math(expr.KindLog))),
		Def(expr.KindLog10, Unary(expr.Math(expr.KindLog10))),
		Def(expr.KindPi, Nullary(expr.Constant(expr.KindPi))),
		Def(expr.KindRadians, Unary(expr.Math(expr.KindRadians))),
		Def(expr.KindRound, Unary(expr.Math(expr.KindRound))),
		Def(expr.KindSin, Unary(expr.Math(expr.KindSin))),
		Def(expr.KindSinh, Unary(expr.Math(expr.KindSinh))),
		Def(expr.KindSqrt, Unary(expr.Math(expr.KindSqrt))),
		Def(expr.KindTan, Unary(expr.Math(expr.KindTan))),

		// Special
		Def(expr.KindScore, Nullary(expr.NewScore)),
	}
}
