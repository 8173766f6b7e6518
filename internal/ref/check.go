package ref

import (
	"fmt"
	"strings"

	"github.com/koskimas/xsdgo/internal/xsd"
)

// RefError is returned by Check. Path locates the reference, e.g.
// ["Person", "age"] for the element age of the complex type Person.
type RefError struct {
	Message string
	Path    []string
	Ref     string
}

func (e *RefError) Error() string {
	return e.Message
}

func refErrorf(path []string, ref string, format string, args ...any) *RefError {
	return &RefError{
		Message: fmt.Sprintf(format, args...),
		Path:    append([]string(nil), path...),
		Ref:     ref,
	}
}

// Check verifies that every type name is declared once and that every
// type reference in schema resolves. The first problem found is returned
// as a *RefError.
func Check(schema *xsd.Schema) error {
	idx := NewIndex(schema)

	if len(idx.duplicates) > 0 {
		name := idx.duplicates[0]
		return refErrorf([]string{name}, name, `type "%s" is declared more than once`, name)
	}

	if err := idx.checkElement(schema.Element, nil); err != nil {
		return err
	}

	for _, ct := range schema.ComplexTypes {
		path := []string{ct.Name}

		switch k := ct.Kind.(type) {
		case xsd.Sequence:
			for _, e := range k.Elements {
				if err := idx.checkElement(e, path); err != nil {
					return err
				}
			}
		case xsd.Choice:
			for _, e := range k.Choices {
				if err := idx.checkElement(e, path); err != nil {
					return err
				}
			}
		case xsd.Extension:
			if err := idx.checkRef(k.Base, path); err != nil {
				return err
			}

			if err := idx.checkRef(k.Attribute.Type, append(path, "@"+k.Attribute.Name)); err != nil {
				return err
			}
		}
	}

	return nil
}

func (idx *Index) checkElement(e xsd.Element, path []string) error {
	named, ok := e.(xsd.NamedElement)
	if !ok {
		return nil
	}

	return idx.checkRef(named.Type, append(path, named.Name))
}

func (idx *Index) checkRef(typeRef string, path []string) error {
	if _, err := idx.Resolve(typeRef); err != nil {
		return refErrorf(path, typeRef, "%s: %s", strings.Join(path, "."), err)
	}

	return nil
}
