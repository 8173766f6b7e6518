// Package xsd converts a subset of XML Schema into a typed AST.
//
// Supported constructs are named simple types restricting a built-in
// type by facets, named complex types whose body is a sequence, a choice
// or a simple content extension with one attribute, and elements. Tags
// are matched by local name without namespace resolution, and built-in
// type names must carry the literal "xs:" prefix.
//
// Any construct that cannot be classified fails the whole document.
// There is no partial result.
package xsd

import (
	"os"

	"aqwari.net/xml/xmltree"
)

// ParseFile reads the schema document at filePath and builds its AST.
func ParseFile(filePath string) (*Schema, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, ioError(filePath, err)
	}

	return Parse(data)
}

func Parse(data []byte) (*Schema, error) {
	root, err := xmltree.Parse(data)
	if err != nil {
		return nil, malformedDocument(err)
	}

	return Build(root)
}

// Build classifies the document rooted at root. Complex types, simple
// types and the root element are found by three independent scans of the
// whole document, so nested declarations are picked up as well. The root
// element is the first element declaration in document order.
func Build(root *xmltree.Element) (*Schema, error) {
	complexTypes, err := buildComplexTypes(root)
	if err != nil {
		return nil, err
	}

	simpleTypes, err := buildSimpleTypes(root)
	if err != nil {
		return nil, err
	}

	element, err := buildRootElement(root)
	if err != nil {
		return nil, err
	}

	return &Schema{
		Element:      element,
		ComplexTypes: complexTypes,
		SimpleTypes:  simpleTypes,
	}, nil
}

func buildComplexTypes(root *xmltree.Element) ([]ComplexType, error) {
	nodes := searchWithRoot(root, hasTag("complexType"))
	complexTypes := make([]ComplexType, 0, len(nodes))

	for _, n := range nodes {
		t, err := classifyComplexType(n)
		if err != nil {
			return nil, err
		}

		complexTypes = append(complexTypes, t)
	}

	return complexTypes, nil
}

func buildSimpleTypes(root *xmltree.Element) ([]SimpleType, error) {
	nodes := searchWithRoot(root, hasTag("simpleType"))
	simpleTypes := make([]SimpleType, 0, len(nodes))

	for _, n := range nodes {
		t, err := classifySimpleType(n)
		if err != nil {
			return nil, err
		}

		simpleTypes = append(simpleTypes, t)
	}

	return simpleTypes, nil
}

// searchWithRoot returns every node of the document matching match, in
// document order. SearchFunc never returns the node it is called on.
func searchWithRoot(root *xmltree.Element, match func(*xmltree.Element) bool) []*xmltree.Element {
	nodes := root.SearchFunc(match)
	if match(root) {
		nodes = append([]*xmltree.Element{root}, nodes...)
	}

	return nodes
}

func buildRootElement(root *xmltree.Element) (Element, error) {
	var el *xmltree.Element

	if hasTag("element")(root) {
		el = root
	} else {
		el = firstDescendant(root, hasTag("element"))
	}

	if el == nil {
		return nil, structuralMismatch(root, "element")
	}

	return classifyElement(el)
}
