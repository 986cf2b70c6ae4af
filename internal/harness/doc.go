// Package harness runs function resolution scenarios.
//
// A scenario is a list of function calls, each with the outcome expected
// when the call is analyzed against a registry: the function it resolves to,
// or the error it is rejected with.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: date_aliases
//	description: "Date aliases resolve to their primary function"
//	timezone: Europe/Paris
//	calls:
//	  - call: { name: day, args: [order_date], line: 1, column: 8 }
//	    expect: { function: day_of_month, expr: "DayOfMonth(order_date)" }
//	  - call: { name: ABS, args: [x], distinct: true }
//	    expect: { error: "error building [abs]: does not support DISTINCT yet it was specified" }
//
// # Arguments
//
// Call arguments take three forms:
//
//   - a plain scalar word is a field reference: order_date
//   - a number, boolean or quoted string is a literal: 95, true, "EUR"
//   - a mapping is a nested call: { name: round, args: [price] }
//
// # Expectations
//
// An expect clause names either the canonical function the call must
// resolve to (optionally with its rendered expression) or the exact error
// message, without location, the call must fail with.
//
// # Golden Traces
//
// Every call produces one trace event. RunWithGolden compares the JSON
// trace against testdata/golden/<name>.golden.
//
// # Usage
//
//	sc, err := harness.LoadScenario("testdata/scenarios/date_aliases.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := harness.Run(registry, sc)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !result.Pass {
//	    for _, msg := range result.Errors {
//	        log.Println(msg)
//	    }
//	}
package harness
