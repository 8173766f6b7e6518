package xsd

import "aqwari.net/xml/xmltree"

// complexTypeBodies are the constructs that may govern a complex type.
var complexTypeBodies = []string{"choice", "simpleContent", "sequence"}

func classifySimpleType(el *xmltree.Element) (SimpleType, error) {
	name, err := requireAttr(el, "name")
	if err != nil {
		return nil, err
	}

	kind, err := classifyRestriction(el)
	if err != nil {
		return nil, err
	}

	return SimpleTypeRestriction{Name: name, Kind: kind}, nil
}

func classifySimpleContent(el *xmltree.Element) (SimpleContent, error) {
	extension := firstChild(el, hasTag("extension"))
	if extension == nil {
		return nil, structuralMismatch(el, "extension")
	}

	base, err := requireAttr(extension, "base")
	if err != nil {
		return nil, err
	}

	attribute, err := classifyAttribute(extension)
	if err != nil {
		return nil, err
	}

	return Extension{Base: base, Attribute: attribute}, nil
}

// classifyAttribute reads the first attribute declared directly in an
// extension. Any further attributes are not represented.
func classifyAttribute(extension *xmltree.Element) (Attribute, error) {
	el := firstChild(extension, hasTag("attribute"))
	if el == nil {
		return Attribute{}, structuralMismatch(extension, "attribute")
	}

	var a Attribute
	var err error

	if a.Name, err = requireAttr(el, "name"); err != nil {
		return Attribute{}, err
	}

	if a.Type, err = requireAttr(el, "type"); err != nil {
		return Attribute{}, err
	}

	if a.Use, err = requireAttr(el, "use"); err != nil {
		return Attribute{}, err
	}

	return a, nil
}

// classifyComplexType classifies a complex type by the first choice,
// simpleContent or sequence found anywhere below it in document order.
// Any other body further down is ignored.
func classifyComplexType(el *xmltree.Element) (ComplexType, error) {
	name, err := requireAttr(el, "name")
	if err != nil {
		return ComplexType{}, err
	}

	body := firstDescendant(el, hasTag(complexTypeBodies...))
	if body == nil {
		return ComplexType{}, structuralMismatch(el, "sequence, choice or simpleContent")
	}

	var kind ComplexTypeKind

	switch body.Name.Local {
	case "choice":
		kind, err = classifyChoice(body)
	case "simpleContent":
		kind, err = classifySimpleContent(body)
	case "sequence":
		kind, err = classifySequence(body)
	}

	if err != nil {
		return ComplexType{}, err
	}

	return ComplexType{Name: name, Kind: kind}, nil
}
