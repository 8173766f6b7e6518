package xsd

import "aqwari.net/xml/xmltree"

func classifyElement(el *xmltree.Element) (Element, error) {
	if el.Name.Local == "any" {
		return Wildcard{}, nil
	}

	name, err := requireAttr(el, "name")
	if err != nil {
		return nil, err
	}

	typ, err := requireAttr(el, "type")
	if err != nil {
		return nil, err
	}

	return NamedElement{Name: name, Type: typ}, nil
}

// classifyChildren classifies every direct child of el as an element.
// Text never appears among the children of an xmltree.Element.
func classifyChildren(el *xmltree.Element) ([]Element, error) {
	elements := make([]Element, 0, len(el.Children))

	for i := range el.Children {
		e, err := classifyElement(&el.Children[i])
		if err != nil {
			return nil, err
		}

		elements = append(elements, e)
	}

	return elements, nil
}

func classifySequence(el *xmltree.Element) (Sequence, error) {
	elements, err := classifyChildren(el)
	if err != nil {
		return Sequence{}, err
	}

	return Sequence{Elements: elements}, nil
}

func classifyChoice(el *xmltree.Element) (Choice, error) {
	choices, err := classifyChildren(el)
	if err != nil {
		return Choice{}, err
	}

	return Choice{Choices: choices}, nil
}
