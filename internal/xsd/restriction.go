package xsd

import (
	"strconv"

	"aqwari.net/xml/xmltree"
)

type facetParser func(tag, value string) (RestrictionKind, error)

// facetParsers is the closed set of supported facets. A facet tag that
// is not listed here fails the whole schema.
var facetParsers = map[string]facetParser{
	"fractionDigits": intFacet(func(v int64) RestrictionKind { return FractionDigits(v) }),
	"totalDigits":    intFacet(func(v int64) RestrictionKind { return TotalDigits(v) }),
	"minInclusive":   intFacet(func(v int64) RestrictionKind { return MinInclusive(v) }),
	"minLength":      intFacet(func(v int64) RestrictionKind { return MinLength(v) }),
	"maxLength":      intFacet(func(v int64) RestrictionKind { return MaxLength(v) }),
	"pattern":        stringFacet(func(v string) RestrictionKind { return Pattern(v) }),
	"enumeration":    stringFacet(func(v string) RestrictionKind { return Enumeration(v) }),
}

func intFacet(create func(int64) RestrictionKind) facetParser {
	return func(tag, value string) (RestrictionKind, error) {
		v, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, invalidNumericFacet(tag, value, err)
		}

		return create(v), nil
	}
}

func stringFacet(create func(string) RestrictionKind) facetParser {
	return func(_, value string) (RestrictionKind, error) {
		return create(value), nil
	}
}

func classifyFacet(el *xmltree.Element) (RestrictionKind, error) {
	tag := el.Name.Local

	parse, ok := facetParsers[tag]
	if !ok {
		return nil, unsupportedFacet(tag)
	}

	value, err := requireAttr(el, "value")
	if err != nil {
		return nil, err
	}

	return parse(tag, value)
}

// classifyRestriction finds the first restriction anywhere below el and
// classifies it together with its facets.
func classifyRestriction(el *xmltree.Element) (Restriction, error) {
	restriction := firstDescendant(el, hasTag("restriction"))
	if restriction == nil {
		return Restriction{}, structuralMismatch(el, "restriction")
	}

	baseName, err := requireAttr(restriction, "base")
	if err != nil {
		return Restriction{}, err
	}

	base, err := ResolveBase(baseName)
	if err != nil {
		return Restriction{}, err
	}

	facets := make([]RestrictionKind, 0, len(restriction.Children))
	for i := range restriction.Children {
		f, err := classifyFacet(&restriction.Children[i])
		if err != nil {
			return Restriction{}, err
		}

		facets = append(facets, f)
	}

	return Restriction{
		Base:         base,
		Restrictions: facets,
	}, nil
}
