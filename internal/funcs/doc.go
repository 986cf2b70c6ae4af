// Package funcs is the function registry of the SQL compiler.
//
// It turns the name of a function as written in a query (any case, possibly
// an alias) into a typed expression node, checking argument count and the
// DISTINCT modifier on the way.
//
// ARCHITECTURE:
//
//	UnresolvedCall --Normalize--> canonical key --table--> Definition
//	                                                          |
//	                                           Builder contract (arity, DISTINCT)
//	                                                          |
//	                                                   expr.Function
//
// NAMES:
//
// Every lookup goes through Normalize, which maps CamelCase and any case
// variant to one snake_case key: DayOfMonth, DAY_OF_MONTH and day_of_month
// are the same function. A Definition's primary name is derived from its
// expr.Kind; aliases (DAY, DOM) are extra keys resolving to the same
// Definition. An alias may belong to one function only; New rejects a table
// that breaks this with a *ConfigError.
//
// BUILDER CONTRACTS:
//
// Each Definition carries exactly one of five contracts, chosen explicitly
// when the table is written:
//
//	Nullary        no arguments, DISTINCT rejected
//	Unary          one argument, DISTINCT rejected
//	UnaryDistinct  one argument, DISTINCT passed to the constructor
//	UnaryTimeZone  one argument, DISTINCT rejected, time zone passed through
//	Binary         two arguments, DISTINCT rejected
//
// ERRORS:
//
//   - *ConfigError: alias collision or malformed definition at build time (fatal)
//   - *InternalError: Resolve called with an unknown name (caller defect)
//   - *ParsingError: wrong argument shape, located at the call
//     ("error building [abs]: expects exactly one argument")
//
// CONCURRENCY:
//
// A Registry is immutable after New. Share it freely.
package funcs
