package funcs

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/roach88/sqlfn/internal/expr"
)

// Registry resolves function names to builders.
//
// A Registry is built once by New and never modified afterwards, so it can
// be shared by any number of goroutines without locking.
type Registry struct {
	table *table
}

// New builds a registry from defs. Names and aliases must already be
// canonical (Def takes care of that). A key claimed by two definitions is a
// *ConfigError; callers should refuse to start.
func New(defs []Definition) (*Registry, error) {
	t, err := newTable(defs)
	if err != nil {
		return nil, err
	}

	slog.Debug("function registry built",
		"functions", len(defs),
		"keys", len(t.keys),
		"aliases", len(t.aliases),
	)

	return &Registry{table: t}, nil
}

// MustNew is like New but panics on a configuration error.
func MustNew(defs []Definition) *Registry {
	r, err := New(defs)
	if err != nil {
		panic(fmt.Sprintf("function registry: %v", err))
	}
	return r
}

// NewDefault builds a registry from Defaults().
func NewDefault() (*Registry, error) {
	return New(Defaults())
}

// Resolve binds an unresolved call to a function node.
//
// The analyzer must have checked Exists first; an unknown name here is a
// defect in the caller and is reported as *InternalError. A call with the
// wrong shape is reported as *ParsingError located at the call.
//
// tz is passed unexamined to time zone aware functions.
func (r *Registry) Resolve(call *expr.UnresolvedCall, tz *time.Location) (expr.Function, error) {
	if call == nil {
		return nil, &InternalError{
			Code:    ErrCodeUnknownFunction,
			Message: "cannot resolve a nil function call",
			Err:     ErrUnknownFunction,
		}
	}

	def, ok := r.table.get(Normalize(call.Name))
	if !ok {
		return nil, &InternalError{
			Code:    ErrCodeUnknownFunction,
			Message: fmt.Sprintf("cannot find function %s; this should have been caught during analysis", call.Name),
			Err:     ErrUnknownFunction,
		}
	}

	fn, err := def.Builder.Build(call.Loc, call.Args, call.Distinct, tz)
	if err != nil {
		var argErr *ArgumentError
		if !errors.As(err, &argErr) {
			return nil, err
		}
		return nil, &ParsingError{
			Message: fmt.Sprintf("error building [%s]: %s", def.Name, argErr.Message),
			Line:    call.Loc.Line,
			Column:  call.Loc.Column,
			Err:     err,
		}
	}

	return fn, nil
}

// Get returns the definition registered under name (any spelling). The
// returned definition keeps its alias group.
func (r *Registry) Get(name string) (Definition, bool) {
	return r.table.get(Normalize(name))
}

// Exists reports whether name or an alias of it is registered.
func (r *Registry) Exists(name string) bool {
	return r.table.contains(Normalize(name))
}

// ConcreteName returns the primary name of a registered alias. Any other
// input, registered or not, comes back normalized but otherwise unchanged.
func (r *Registry) ConcreteName(name string) string {
	return r.table.concreteName(Normalize(name))
}

// Len returns the number of registered keys (primary names plus aliases).
func (r *Registry) Len() int {
	return len(r.table.keys)
}
