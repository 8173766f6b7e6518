package xsd

import (
	"io"

	"gopkg.in/yaml.v3"
)

// The MarshalYAML methods give every variant an explicit kind so that a
// dumped Schema can be read without knowing the Go types.

// Dump writes s to w as a YAML document.
func Dump(w io.Writer, s *Schema) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(s); err != nil {
		return err
	}

	return enc.Close()
}

func (t SimpleTypeRestriction) MarshalYAML() (any, error) {
	return struct {
		Kind         string            `yaml:"kind"`
		Name         string            `yaml:"name"`
		Base         string            `yaml:"base"`
		Restrictions []RestrictionKind `yaml:"restrictions,omitempty"`
	}{"restriction", t.Name, t.Kind.Base, t.Kind.Restrictions}, nil
}

func (f FractionDigits) MarshalYAML() (any, error) { return facetYAML(f, int64(f)) }
func (f TotalDigits) MarshalYAML() (any, error)    { return facetYAML(f, int64(f)) }
func (f MinInclusive) MarshalYAML() (any, error)   { return facetYAML(f, int64(f)) }
func (f MinLength) MarshalYAML() (any, error)      { return facetYAML(f, int64(f)) }
func (f MaxLength) MarshalYAML() (any, error)      { return facetYAML(f, int64(f)) }
func (f Pattern) MarshalYAML() (any, error)        { return facetYAML(f, string(f)) }
func (f Enumeration) MarshalYAML() (any, error)    { return facetYAML(f, string(f)) }

func facetYAML(f RestrictionKind, value any) (any, error) {
	return map[string]any{f.Facet(): value}, nil
}

func (e Extension) MarshalYAML() (any, error) {
	return struct {
		Kind      string    `yaml:"kind"`
		Base      string    `yaml:"base"`
		Attribute Attribute `yaml:"attribute"`
	}{"extension", e.Base, e.Attribute}, nil
}

func (s Sequence) MarshalYAML() (any, error) {
	return struct {
		Kind     string    `yaml:"kind"`
		Elements []Element `yaml:"elements"`
	}{"sequence", s.Elements}, nil
}

func (c Choice) MarshalYAML() (any, error) {
	return struct {
		Kind    string    `yaml:"kind"`
		Choices []Element `yaml:"choices"`
	}{"choice", c.Choices}, nil
}

func (e NamedElement) MarshalYAML() (any, error) {
	return struct {
		Kind string `yaml:"kind"`
		Name string `yaml:"name"`
		Type string `yaml:"type"`
	}{"element", e.Name, e.Type}, nil
}

func (Wildcard) MarshalYAML() (any, error) {
	return struct {
		Kind string `yaml:"kind"`
	}{"any"}, nil
}
