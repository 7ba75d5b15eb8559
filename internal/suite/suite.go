// Package suite loads declarative assertion suites from YAML files and
// registers them into a harness registry.
//
// A suite file names groups of scalar checks over literal operands:
//
//	name: arithmetic
//	description: "Scalar checks over literals"
//	groups:
//	  - name: Math
//	    cases:
//	      - name: addition
//	        check: equal
//	        left: 4
//	        right: 4
//	cases:
//	  - name: flag
//	    check: "true"
//	    value: true
//
// Grouped cases register under "{group}::{case}"; top-level cases under
// their bare name. The true/false checks must be quoted in YAML so they
// parse as strings.
package suite

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/attest/harness"
)

// Suite is a parsed suite file.
type Suite struct {
	// Name identifies the suite.
	Name string `yaml:"name"`

	// Description explains what the suite covers.
	Description string `yaml:"description"`

	// Groups holds cases registered under "{group}::{case}".
	Groups []Group `yaml:"groups,omitempty"`

	// Cases holds top-level cases registered under their bare name.
	// They run after all grouped cases, in file order.
	Cases []Case `yaml:"cases,omitempty"`
}

// Group is a named set of cases.
type Group struct {
	Name  string `yaml:"name"`
	Cases []Case `yaml:"cases"`
}

// Case is a single declarative check over literal scalar operands.
// Binary checks take Left and Right; the true/false checks take Value.
type Case struct {
	Name  string `yaml:"name"`
	Check string `yaml:"check"`
	Left  any    `yaml:"left,omitempty"`
	Right any    `yaml:"right,omitempty"`
	Value any    `yaml:"value,omitempty"`
}

// Check kinds accepted in suite files.
const (
	CheckEqual    = "equal"
	CheckNotEqual = "not_equal"
	CheckLt       = "lt"
	CheckLte      = "lte"
	CheckGt       = "gt"
	CheckGte      = "gte"
	CheckTrue     = "true"
	CheckFalse    = "false"
)

// Load reads and parses a suite YAML file. Unknown fields are rejected so
// typos surface as load errors rather than silently dropped cases.
func Load(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read suite file: %w", err)
	}

	var s Suite
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateSuite(&s); err != nil {
		return nil, fmt.Errorf("invalid suite: %w", err)
	}

	return &s, nil
}

// Register appends every case to reg: grouped cases first, then top-level
// cases, each list in file order. The suite must have been validated by
// Load; Register itself performs no checks.
func (s *Suite) Register(reg *harness.Registry) {
	for _, g := range s.Groups {
		grp := reg.Group(g.Name)
		for _, c := range g.Cases {
			grp.Add(c.Name, c.action())
		}
	}
	for _, c := range s.Cases {
		reg.Add(c.Name, c.action())
	}
}

// validateSuite checks required fields and operand kinds.
func validateSuite(s *Suite) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	total := len(s.Cases)
	for _, g := range s.Groups {
		total += len(g.Cases)
	}
	if total == 0 {
		return fmt.Errorf("suite has no cases")
	}

	for i, g := range s.Groups {
		if g.Name == "" {
			return fmt.Errorf("groups[%d]: name is required", i)
		}
		if len(g.Cases) == 0 {
			return fmt.Errorf("groups[%d]: cases list is required and must be non-empty", i)
		}
		for j, c := range g.Cases {
			if err := validateCase(&c); err != nil {
				return fmt.Errorf("groups[%d].cases[%d]: %w", i, j, err)
			}
		}
	}

	for i, c := range s.Cases {
		if err := validateCase(&c); err != nil {
			return fmt.Errorf("cases[%d]: %w", i, err)
		}
	}

	return nil
}

// validateCase checks one case against its check kind.
func validateCase(c *Case) error {
	if c.Name == "" {
		return fmt.Errorf("name is required")
	}

	switch c.Check {
	case CheckTrue, CheckFalse:
		if c.Value == nil {
			return fmt.Errorf("check %q requires value", c.Check)
		}
		if c.Left != nil || c.Right != nil {
			return fmt.Errorf("check %q takes value, not left/right", c.Check)
		}
		if _, ok := c.Value.(bool); !ok {
			return fmt.Errorf("check %q requires a bool value, got %T", c.Check, c.Value)
		}
		return nil

	case CheckEqual, CheckNotEqual, CheckLt, CheckLte, CheckGt, CheckGte:
		if c.Value != nil {
			return fmt.Errorf("check %q takes left/right, not value", c.Check)
		}
		if c.Left == nil || c.Right == nil {
			return fmt.Errorf("check %q requires left and right", c.Check)
		}
		if err := validateIntRange("left", c.Left); err != nil {
			return err
		}
		if err := validateIntRange("right", c.Right); err != nil {
			return err
		}

		lk, rk := scalarKind(c.Left), scalarKind(c.Right)
		if lk == "" {
			return fmt.Errorf("left operand has unsupported type %T", c.Left)
		}
		if rk == "" {
			return fmt.Errorf("right operand has unsupported type %T", c.Right)
		}
		if lk != rk {
			return fmt.Errorf("operand kinds differ: left is %s, right is %s", lk, rk)
		}
		if lk == "bool" && c.Check != CheckEqual && c.Check != CheckNotEqual {
			return fmt.Errorf("check %q requires orderable operands, got bool", c.Check)
		}
		return nil

	case "":
		return fmt.Errorf("check is required")
	default:
		return fmt.Errorf("unknown check %q", c.Check)
	}
}

// scalarKind classifies a YAML-decoded operand. Returns "" for values the
// suite format does not support (lists, maps, nulls, timestamps).
func scalarKind(v any) string {
	switch normalize(v).(type) {
	case int64:
		return "int"
	case float64:
		return "float"
	case string:
		return "string"
	case bool:
		return "bool"
	default:
		return ""
	}
}

// validateIntRange rejects integer literals the int64 comparison domain
// cannot hold. The YAML decoder hands them over as uint64, which would
// otherwise wrap negative during normalization and invert ordering checks.
func validateIntRange(side string, v any) error {
	if n, ok := v.(uint64); ok && n > math.MaxInt64 {
		return fmt.Errorf("%s operand %d overflows int64", side, n)
	}
	return nil
}

// normalize widens YAML integer representations to int64 so comparisons run
// over one integer type regardless of how the decoder sized the literal.
// uint64 values above MaxInt64 are left untouched; validation has already
// rejected them before any comparison runs.
func normalize(v any) any {
	switch n := v.(type) {
	case int:
		return int64(n)
	case int64:
		return n
	case uint64:
		if n <= math.MaxInt64 {
			return int64(n)
		}
		return v
	default:
		return v
	}
}
