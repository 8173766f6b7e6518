package gen

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/dave/jennifer/jen"
	"github.com/koskimas/xsdgo/internal/xsd"
)

// simpleType collects the facets of one simple type by how they are
// generated.
type simpleType struct {
	id           string
	base         string
	minLength    *int64
	maxLength    *int64
	minInclusive *int64
	patterns     []string
	enumerations []string
	// documented holds facets that are only mentioned in the type comment.
	documented []string
}

func (g *generator) genSimpleType(st xsd.SimpleType) error {
	r, ok := st.(xsd.SimpleTypeRestriction)
	if !ok {
		return fmt.Errorf("unsupported simple type %T", st)
	}

	baseType, err := g.goType(r.Kind.Base)
	if err != nil {
		return err
	}

	t := g.collectFacets(g.types[r.Name], r.Kind)

	g.f.Commentf("%s is generated from the simple type %s.", t.id, r.Name)
	if len(t.documented) > 0 {
		g.f.Comment("")
		g.f.Commentf("Not validated: %s.", strings.Join(t.documented, ", "))
	}
	g.f.Type().Id(t.id).Add(baseType)
	g.f.Empty()

	consts := g.genEnumerationConsts(t)

	patternVar, err := g.genPatternVar(t)
	if err != nil {
		return err
	}

	if t.hasChecks() {
		g.genValidate(t, consts, patternVar)
	}

	return nil
}

func (g *generator) collectFacets(id string, r xsd.Restriction) *simpleType {
	t := &simpleType{id: id, base: r.Base}

	isString := r.Base == xsd.PrimitiveString && g.isDefaultType(xsd.PrimitiveString)
	isDecimal := r.Base == xsd.PrimitiveDecimal && g.isDefaultType(xsd.PrimitiveDecimal)

	for _, f := range r.Restrictions {
		switch f := f.(type) {
		case xsd.MinLength:
			if isString {
				t.minLength = ptr(int64(f))
				continue
			}
		case xsd.MaxLength:
			if isString {
				t.maxLength = ptr(int64(f))
				continue
			}
		case xsd.Pattern:
			if isString {
				t.patterns = append(t.patterns, string(f))
				continue
			}
		case xsd.Enumeration:
			if isString {
				if !slices.Contains(t.enumerations, string(f)) {
					t.enumerations = append(t.enumerations, string(f))
				}
				continue
			}
		case xsd.MinInclusive:
			if isDecimal {
				t.minInclusive = ptr(int64(f))
				continue
			}
		}

		t.documented = append(t.documented, facetString(f))
	}

	return t
}

func (t *simpleType) hasChecks() bool {
	return t.minLength != nil ||
		t.maxLength != nil ||
		t.minInclusive != nil ||
		len(t.patterns) > 0 ||
		len(t.enumerations) > 0
}

func facetString(f xsd.RestrictionKind) string {
	switch f := f.(type) {
	case xsd.Pattern:
		return fmt.Sprintf("%s=%q", f.Facet(), string(f))
	case xsd.Enumeration:
		return fmt.Sprintf("%s=%q", f.Facet(), string(f))
	}

	return fmt.Sprintf("%s=%d", f.Facet(), f)
}

// genEnumerationConsts declares one constant per enumeration value and
// returns their identifiers.
func (g *generator) genEnumerationConsts(t *simpleType) []string {
	if len(t.enumerations) == 0 {
		return nil
	}

	ids := make([]string, len(t.enumerations))
	g.f.Const().DefsFunc(func(group *jen.Group) {
		for i, v := range t.enumerations {
			id := t.id + pascal(v)
			if id == t.id {
				id = fmt.Sprintf("%sValue%d", t.id, i+1)
			}

			ids[i] = g.names.add(id, id)
			group.Id(ids[i]).Id(t.id).Op("=").Lit(v)
		}
	})
	g.f.Empty()

	return ids
}

// genPatternVar declares a compiled regexp matching any of the patterns
// of t. Schema patterns match the whole value.
func (g *generator) genPatternVar(t *simpleType) (string, error) {
	if len(t.patterns) == 0 {
		return "", nil
	}

	alternatives := make([]string, len(t.patterns))
	for i, p := range t.patterns {
		alternatives[i] = "(?:" + regexpPattern(p) + ")"
	}

	expr := "^(?:" + strings.Join(alternatives, "|") + ")$"
	if _, err := regexp.Compile(expr); err != nil {
		return "", fmt.Errorf("pattern is not supported by Go regular expressions: %w", err)
	}

	id := g.names.add(firstLower(t.id)+"Pattern", "pattern")
	g.f.Var().Id(id).Op("=").Qual("regexp", "MustCompile").Call(jen.Lit(expr))
	g.f.Empty()

	return id, nil
}

// regexpPattern rewrites a schema pattern for RE2. Schema patterns have
// no anchors, so ^ and $ outside character classes match themselves.
func regexpPattern(p string) string {
	var b strings.Builder
	inClass, escaped := false, false
	// classLen counts the runes of the current class after [ and a
	// negating ^. A ] is literal when it comes first.
	classLen := 0

	for _, r := range p {
		switch {
		case escaped:
			escaped = false
		case r == '\\':
			escaped = true
		case !inClass && r == '[':
			inClass, classLen = true, -1
		case !inClass && (r == '^' || r == '$'):
			b.WriteRune('\\')
		case inClass && r == ']' && classLen > 0:
			inClass = false
		case inClass && r == '^' && classLen == 0:
			classLen--
		}

		if inClass {
			classLen++
		}

		b.WriteRune(r)
	}

	return b.String()
}

func (g *generator) genValidate(t *simpleType, consts []string, patternVar string) {
	str := func() *jen.Statement { return jen.String().Call(jen.Id(idParamValue)) }
	length := func() *jen.Statement {
		return jen.Qual("unicode/utf8", "RuneCountInString").Call(str())
	}

	g.f.Commentf("%s checks the facets of the simple type %s.", idFuncValidate, t.id)
	g.f.Func().Params(jen.Id(idParamValue).Id(t.id)).Id(idFuncValidate).Params().Error().BlockFunc(func(group *jen.Group) {
		if t.minLength != nil {
			group.If(length().Op("<").Lit(int(*t.minLength))).Block(
				jen.Return(errorf("%s: length must be at least %d", t.id, *t.minLength)),
			)
		}

		if t.maxLength != nil {
			group.If(length().Op(">").Lit(int(*t.maxLength))).Block(
				jen.Return(errorf("%s: length must be at most %d", t.id, *t.maxLength)),
			)
		}

		if t.minInclusive != nil {
			group.If(jen.Id(idParamValue).Op("<").Lit(int(*t.minInclusive))).Block(
				jen.Return(errorf("%s: value must be at least %d", t.id, *t.minInclusive)),
			)
		}

		if len(patternVar) > 0 {
			group.If(jen.Op("!").Id(patternVar).Dot("MatchString").Call(str())).Block(
				jen.Return(jen.Qual("fmt", "Errorf").Call(
					jen.Lit(t.id+": %q does not match the pattern"),
					str(),
				)),
			)
		}

		if len(consts) > 0 {
			cases := make([]jen.Code, len(consts))
			for i, c := range consts {
				cases[i] = jen.Id(c)
			}

			group.Switch(jen.Id(idParamValue)).Block(
				jen.Case(cases...).Block(),
				jen.Default().Block(
					jen.Return(jen.Qual("fmt", "Errorf").Call(
						jen.Lit(t.id+": %q is not an allowed value"),
						str(),
					)),
				),
			)
		}

		group.Return(jen.Nil())
	})
	g.f.Empty()
}

func errorf(format string, args ...any) *jen.Statement {
	return jen.Qual("errors", "New").Call(jen.Lit(fmt.Sprintf(format, args...)))
}

func ptr[T any](v T) *T {
	return &v
}
