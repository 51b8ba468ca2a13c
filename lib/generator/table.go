package generator

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// Table is the parsed element table.
type Table struct {
	Global   []string  `yaml:"global"`
	Elements []Element `yaml:"elements"`
}

// Element describes one HTML element.
type Element struct {
	Name       string   `yaml:"name"`
	Void       bool     `yaml:"void,omitempty"`
	Attributes []string `yaml:"attributes,omitempty"`
	// Constructor defaults to true; set false when the package defines
	// its own constructor for the element.
	Constructor *bool `yaml:"constructor,omitempty"`
}

// HasConstructor reports whether a constructor is generated.
func (e Element) HasConstructor() bool {
	return e.Constructor == nil || *e.Constructor
}

// GoName is the exported constructor name ("h1" -> "H1").
func (e Element) GoName() string {
	return goName(e.Name)
}

// LoadTable reads and validates a table file.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read element table: %w", err)
	}
	return ParseTable(data)
}

// ParseTable parses and validates table data. Element and attribute
// names are lower-cased and sorted.
func ParseTable(data []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse element table: %w", err)
	}
	if err := t.normalize(); err != nil {
		return nil, err
	}
	return &t, nil
}

func (t *Table) normalize() error {
	t.Global = normalizeNames(t.Global)

	seen := make(map[string]bool)
	ctors := make(map[string]string)
	for i := range t.Elements {
		e := &t.Elements[i]
		e.Name = strings.ToLower(strings.TrimSpace(e.Name))
		if !validIdent(e.Name) {
			return fmt.Errorf("invalid element name %q", e.Name)
		}
		if seen[e.Name] {
			return fmt.Errorf("duplicate element %q", e.Name)
		}
		seen[e.Name] = true
		for _, a := range e.Attributes {
			if !validIdent(strings.ToLower(a)) {
				return fmt.Errorf("element %q: invalid attribute name %q", e.Name, a)
			}
		}
		e.Attributes = normalizeNames(e.Attributes)
		if e.HasConstructor() {
			if other, ok := ctors[e.GoName()]; ok {
				return fmt.Errorf("elements %q and %q both generate %s", other, e.Name, e.GoName())
			}
			ctors[e.GoName()] = e.Name
		}
	}
	slices.SortFunc(t.Elements, func(a, b Element) int { return strings.Compare(a.Name, b.Name) })
	return nil
}

func normalizeNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n != "" {
			out = append(out, n)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

func validIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case (r >= '0' && r <= '9' || r == '-') && i > 0:
		default:
			return false
		}
	}
	return true
}

// goName converts "foo-bar" to "FooBar".
func goName(s string) string {
	var sb strings.Builder
	upper := true
	for _, r := range s {
		if r == '-' {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
