package harness

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/roach88/sqlfn/internal/expr"
)

// Scenario defines a resolution test scenario.
type Scenario struct {
	// Name uniquely identifies this scenario. It also names the golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// TimeZone is the IANA zone passed to date/time functions.
	// Empty means UTC.
	TimeZone string `yaml:"timezone,omitempty"`

	// Calls are analyzed in order, each independently.
	Calls []Step `yaml:"calls"`
}

// Step is one call and its expected outcome.
type Step struct {
	Call   CallSpec      `yaml:"call"`
	Expect *ExpectClause `yaml:"expect"`
}

// CallSpec describes a function call as the parser would produce it.
type CallSpec struct {
	Name     string    `yaml:"name"`
	Args     []ArgSpec `yaml:"args,omitempty"`
	Distinct bool      `yaml:"distinct,omitempty"`
	Line     int       `yaml:"line,omitempty"`
	Column   int       `yaml:"column,omitempty"`
}

// callFields are the keys a nested call mapping may use.
var callFields = map[string]bool{
	"name":     true,
	"args":     true,
	"distinct": true,
	"line":     true,
	"column":   true,
}

// ArgSpec is a call argument: exactly one of Field, Literal or Call is set.
type ArgSpec struct {
	Field   string
	Literal any
	Call    *CallSpec
}

// UnmarshalYAML decodes a plain word as a field reference, any other scalar
// as a literal and a mapping as a nested call.
func (a *ArgSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		quoted := node.Style&(yaml.DoubleQuotedStyle|yaml.SingleQuotedStyle) != 0
		if node.Tag == "!!str" && !quoted {
			a.Field = node.Value
			return nil
		}
		var v any
		if err := node.Decode(&v); err != nil {
			return err
		}
		a.Literal = v
		return nil

	case yaml.MappingNode:
		// Nested decodes do not inherit KnownFields; check keys here.
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i]
			if !callFields[key.Value] {
				return fmt.Errorf("line %d: field %s not found in call", key.Line, key.Value)
			}
		}
		var c CallSpec
		if err := node.Decode(&c); err != nil {
			return err
		}
		a.Call = &c
		return nil

	default:
		return fmt.Errorf("line %d: argument must be a scalar or a call mapping", node.Line)
	}
}

// ExpectClause specifies the expected outcome of a call. Exactly one of
// Function and Error is set.
type ExpectClause struct {
	// Function is the canonical name of the function the call resolves to.
	Function string `yaml:"function,omitempty"`

	// Expr optionally pins the rendered resolved expression.
	Expr string `yaml:"expr,omitempty"`

	// Error is the expected error message without location.
	Error string `yaml:"error,omitempty"`
}

// Expression converts the call into an unresolved call tree.
func (c *CallSpec) Expression() *expr.UnresolvedCall {
	loc := expr.Location{Line: c.Line, Column: c.Column}
	args := make([]expr.Expression, 0, len(c.Args))
	for _, a := range c.Args {
		args = append(args, a.expression(loc))
	}
	return &expr.UnresolvedCall{
		Name:     c.Name,
		Args:     args,
		Distinct: c.Distinct,
		Loc:      loc,
	}
}

func (a *ArgSpec) expression(loc expr.Location) expr.Expression {
	switch {
	case a.Call != nil:
		return a.Call.Expression()
	case a.Field != "":
		return &expr.FieldRef{Loc: loc, Name: a.Field}
	default:
		return &expr.Literal{Loc: loc, Value: a.Literal}
	}
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses and validates scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if s.TimeZone != "" {
		if _, err := time.LoadLocation(s.TimeZone); err != nil {
			return fmt.Errorf("timezone: unknown zone %q", s.TimeZone)
		}
	}

	if len(s.Calls) == 0 {
		return fmt.Errorf("calls list is required and must be non-empty")
	}

	for i, step := range s.Calls {
		if err := validateCall(fmt.Sprintf("calls[%d].call", i), &step.Call); err != nil {
			return err
		}
		if err := validateExpect(i, step.Expect); err != nil {
			return err
		}
	}

	return nil
}

func validateCall(path string, c *CallSpec) error {
	if c.Name == "" {
		return fmt.Errorf("%s: name is required", path)
	}
	if c.Line < 0 || c.Column < 0 {
		return fmt.Errorf("%s: line and column must be non-negative", path)
	}
	for j := range c.Args {
		arg := &c.Args[j]
		if arg.Field == "" && arg.Literal == nil && arg.Call == nil {
			return fmt.Errorf("%s.args[%d]: argument must not be null", path, j)
		}
		if nested := arg.Call; nested != nil {
			if err := validateCall(fmt.Sprintf("%s.args[%d]", path, j), nested); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateExpect(index int, e *ExpectClause) error {
	if e == nil {
		return fmt.Errorf("calls[%d]: expect is required", index)
	}

	switch {
	case e.Function == "" && e.Error == "":
		return fmt.Errorf("calls[%d].expect: one of function or error is required", index)
	case e.Function != "" && e.Error != "":
		return fmt.Errorf("calls[%d].expect: function and error are mutually exclusive", index)
	case e.Expr != "" && e.Function == "":
		return fmt.Errorf("calls[%d].expect: expr requires function", index)
	}

	return nil
}
