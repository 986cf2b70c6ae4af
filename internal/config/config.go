// Package config loads registry configuration written in CUE.
//
// A configuration file can add aliases to built-in functions, disable
// functions, and set the session time zone:
//
//	timezone: "Europe/Paris"
//	aliases: {
//		day_of_month: ["DAYOFMONTH"]
//	}
//	disabled: ["score"]
//
// Files are unified with the embedded #Config schema, so unknown fields and
// wrongly typed values are rejected with their source position.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"time"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"

	"github.com/roach88/sqlfn/internal/funcs"
)

//go:embed schema.cue
var schemaSource string

// Load error codes (E200-E299).
const (
	ErrCodeNotFound        = "E201" // config file missing or unreadable
	ErrCodeBuildFailed     = "E202" // CUE syntax or evaluation error
	ErrCodeSchema          = "E203" // value does not match #Config
	ErrCodeUnknownFunction = "E204" // alias target or disabled name not registered
	ErrCodeTimeZone        = "E205" // timezone is not a known IANA zone
)

// LoadError represents an error loading or applying a configuration.
type LoadError struct {
	Code    string
	Message string
	Pos     token.Pos // CUE position if available
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Config is a decoded registry configuration.
type Config struct {
	TimeZone string              `json:"timezone,omitempty"`
	Aliases  map[string][]string `json:"aliases,omitempty"`
	Disabled []string            `json:"disabled,omitempty"`

	value cue.Value // source value, for error positions
}

// Load reads and validates a CUE configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("reading config: %v", err)}
	}
	return Parse(data, path)
}

// Parse validates CUE source against the #Config schema. filename is used
// in error positions only.
func Parse(data []byte, filename string) (*Config, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaSource, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("config schema: %w", err)
	}

	v := ctx.CompileBytes(data, cue.Filename(filename))
	if err := v.Err(); err != nil {
		return nil, cueLoadError(ErrCodeBuildFailed, err)
	}

	unified := schema.LookupPath(cue.ParsePath("#Config")).Unify(v)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, cueLoadError(ErrCodeSchema, err)
	}

	var decoded struct {
		TimeZone string              `json:"timezone"`
		Aliases  map[string][]string `json:"aliases"`
		Disabled []string            `json:"disabled"`
	}
	if err := unified.Decode(&decoded); err != nil {
		return nil, cueLoadError(ErrCodeSchema, err)
	}

	return &Config{
		TimeZone: decoded.TimeZone,
		Aliases:  decoded.Aliases,
		Disabled: decoded.Disabled,
		value:    unified,
	}, nil
}

// Location returns the configured time zone, or UTC when none is set.
func (c *Config) Location() (*time.Location, error) {
	if c == nil || c.TimeZone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, &LoadError{
			Code:    ErrCodeTimeZone,
			Message: fmt.Sprintf("unknown timezone %q", c.TimeZone),
			Pos:     c.pos(cue.Str("timezone")),
		}
	}
	return loc, nil
}

// Apply returns defs with disabled functions removed and configured aliases
// added. Names in the configuration may use any spelling. Alias collisions
// are not checked here; funcs.New reports them when the registry is built.
func (c *Config) Apply(defs []funcs.Definition) ([]funcs.Definition, error) {
	if c == nil {
		return defs, nil
	}

	owner := make(map[string]int, len(defs)*2)
	for i, d := range defs {
		owner[d.Name] = i
		for _, a := range d.Aliases {
			if _, taken := owner[a]; !taken {
				owner[a] = i
			}
		}
	}

	disabled := make(map[int]bool, len(c.Disabled))
	for i, name := range c.Disabled {
		idx, ok := owner[funcs.Normalize(name)]
		if !ok {
			return nil, &LoadError{
				Code:    ErrCodeUnknownFunction,
				Message: fmt.Sprintf("cannot disable unknown function [%s]", name),
				Pos:     c.pos(cue.Str("disabled"), cue.Index(i)),
			}
		}
		disabled[idx] = true
	}

	targets := make([]string, 0, len(c.Aliases))
	for target := range c.Aliases {
		targets = append(targets, target)
	}
	sort.Strings(targets)

	out := make([]funcs.Definition, len(defs))
	copy(out, defs)
	for _, target := range targets {
		idx, ok := owner[funcs.Normalize(target)]
		if !ok || disabled[idx] {
			reason := "unknown"
			if ok {
				reason = "disabled"
			}
			return nil, &LoadError{
				Code:    ErrCodeUnknownFunction,
				Message: fmt.Sprintf("cannot alias %s function [%s]", reason, target),
				Pos:     c.pos(cue.Str("aliases"), cue.Str(target)),
			}
		}
		out[idx] = out[idx].WithAliases(c.Aliases[target]...)
	}

	result := make([]funcs.Definition, 0, len(out))
	for i, d := range out {
		if !disabled[i] {
			result = append(result, d)
		}
	}
	return result, nil
}

// Registry builds a registry from funcs.Defaults with the configuration
// applied. A nil Config yields the plain default registry.
func (c *Config) Registry() (*funcs.Registry, error) {
	defs, err := c.Apply(funcs.Defaults())
	if err != nil {
		return nil, err
	}
	return funcs.New(defs)
}

func (c *Config) pos(sels ...cue.Selector) token.Pos {
	if !c.value.Exists() {
		return token.NoPos
	}
	return c.value.LookupPath(cue.MakePath(sels...)).Pos()
}

// cueLoadError converts a CUE error into a LoadError carrying the first
// reported position.
func cueLoadError(code string, err error) *LoadError {
	errs := errors.Errors(err)
	if len(errs) == 0 {
		return &LoadError{Code: code, Message: err.Error()}
	}

	first := errs[0]
	le := &LoadError{Code: code, Message: first.Error()}
	if positions := errors.Positions(first); len(positions) > 0 {
		le.Pos = positions[0]
	}
	return le
}
