package expr

import (
	"fmt"
	"strings"
)

// Location is a position in the statement being compiled.
// Line and Column are 1-based; the zero value means "unknown".
type Location struct {
	Line   int `json:"line" yaml:"line"`
	Column int `json:"column" yaml:"column"`
}

// String renders the location as "line L:C".
func (l Location) String() string {
	return fmt.Sprintf("line %d:%d", l.Line, l.Column)
}

// Expression is any node of the expression tree.
//
// This is a sealed interface - only types in this package implement it.
type Expression interface {
	exprNode() // Marker method - seals interface to this package

	// Location returns where the expression starts in the source.
	Location() Location

	// Children returns the direct sub-expressions in argument order.
	Children() []Expression
}

// FieldRef references a column or field by name.
type FieldRef struct {
	Loc  Location
	Name string
}

func (*FieldRef) exprNode() {}

func (f *FieldRef) Location() Location { return f.Loc }

func (f *FieldRef) Children() []Expression { return nil }

func (f *FieldRef) String() string { return f.Name }

// Literal is a constant value (number, string, bool).
type Literal struct {
	Loc   Location
	Value any
}

func (*Literal) exprNode() {}

func (l *Literal) Location() Location { return l.Loc }

func (l *Literal) Children() []Expression { return nil }

func (l *Literal) String() string {
	if s, ok := l.Value.(string); ok {
		return "'" + strings.ReplaceAll(s, "'", "''") + "'"
	}
	return fmt.Sprint(l.Value)
}

// UnresolvedCall is a parsed function invocation that has not been bound to
// a concrete function yet.
//
// Name is the function name exactly as written (any case, possibly an
// alias). UnresolvedCall is itself an Expression so that calls nest, e.g.
// ABS(ROUND(x)).
type UnresolvedCall struct {
	Name     string
	Args     []Expression
	Distinct bool
	Loc      Location
}

func (*UnresolvedCall) exprNode() {}

func (c *UnresolvedCall) Location() Location { return c.Loc }

func (c *UnresolvedCall) Children() []Expression { return c.Args }

func (c *UnresolvedCall) String() string {
	return formatCall(c.Name, c.Distinct, c.Args)
}

// formatCall renders NAME([DISTINCT ]arg, ...).
func formatCall(name string, distinct bool, args []Expression) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('(')
	if distinct {
		b.WriteString("DISTINCT ")
	}
	for i, a := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(String(a))
	}
	b.WriteByte(')')
	return b.String()
}

// String renders an expression in SQL-like form.
func String(e Expression) string {
	if e == nil {
		return "<nil>"
	}
	if s, ok := e.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", e)
}
