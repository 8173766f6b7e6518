package xsd

import (
	"fmt"

	"aqwari.net/xml/xmltree"
)

// Tags are compared by local name only. A document may bind the schema
// vocabulary to any prefix, or to none.
func hasTag(tags ...string) func(*xmltree.Element) bool {
	return func(el *xmltree.Element) bool {
		for _, t := range tags {
			if el.Name.Local == t {
				return true
			}
		}
		return false
	}
}

// firstDescendant returns the first node below el, in document pre-order,
// for which match returns true. el itself is not considered.
func firstDescendant(el *xmltree.Element, match func(*xmltree.Element) bool) *xmltree.Element {
	for i := range el.Children {
		c := &el.Children[i]

		if match(c) {
			return c
		}

		if d := firstDescendant(c, match); d != nil {
			return d
		}
	}

	return nil
}

func firstChild(el *xmltree.Element, match func(*xmltree.Element) bool) *xmltree.Element {
	for i := range el.Children {
		if match(&el.Children[i]) {
			return &el.Children[i]
		}
	}

	return nil
}

// attr looks an attribute up by its local name. Namespace declarations
// are never returned.
func attr(el *xmltree.Element, name string) (string, bool) {
	for _, a := range el.StartElement.Attr {
		if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
			continue
		}

		if a.Name.Local == name {
			return a.Value, true
		}
	}

	return "", false
}

func requireAttr(el *xmltree.Element, name string) (string, error) {
	v, ok := attr(el, name)
	if !ok {
		return "", missingAttribute(el, name)
	}

	return v, nil
}

// describe renders a node for error messages, e.g. `complexType "Person"`.
func describe(el *xmltree.Element) string {
	if name, ok := attr(el, "name"); ok {
		return fmt.Sprintf(`%s "%s"`, el.Name.Local, name)
	}

	return el.Name.Local
}
