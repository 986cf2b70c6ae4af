package funcs

import "github.com/roach88/sqlfn/internal/expr"

// Definition binds a canonical function name and its aliases to a builder.
//
// Name and Aliases are canonical keys (see Normalize). Kind is the type tag
// of the nodes the builder produces. Definitions are values; the registry
// keeps its own copy of Aliases.
type Definition struct {
	Name    string    `json:"name"`
	Aliases []string  `json:"aliases,omitempty"`
	Kind    expr.Kind `json:"type"`
	Builder Builder   `json:"-"`
}

// Def builds a Definition whose primary name is derived from kind and whose
// aliases are normalized, e.g.
//
//	Def(expr.KindDayOfMonth, UnaryTimeZone(...), "DAY", "DOM")
//
// yields name "day_of_month" with aliases "day" and "dom".
func Def(kind expr.Kind, b Builder, aliases ...string) Definition {
	normalized := make([]string, 0, len(aliases))
	for _, a := range aliases {
		normalized = append(normalized, Normalize(a))
	}
	return Definition{
		Name:    Normalize(string(kind)),
		Aliases: normalized,
		Kind:    kind,
		Builder: b,
	}
}

// WithAliases returns a copy of d with extra aliases appended.
func (d Definition) WithAliases(aliases ...string) Definition {
	merged := make([]string, 0, len(d.Aliases)+len(aliases))
	merged = append(merged, d.Aliases...)
	for _, a := range aliases {
		merged = append(merged, Normalize(a))
	}
	d.Aliases = merged
	return d
}

// standalone returns the introspection row for key: the same function,
// listed under key, with no alias group.
func (d Definition) standalone(key string) Definition {
	return Definition{
		Name:    key,
		Aliases: nil,
		Kind:    d.Kind,
		Builder: d.Builder,
	}
}
