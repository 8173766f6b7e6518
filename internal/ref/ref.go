// Package ref resolves the type references left as text in an xsd.Schema.
package ref

import (
	"fmt"
	"strings"

	"github.com/koskimas/xsdgo/internal/xsd"
)

type TargetKind string

const (
	TargetBuiltin     TargetKind = "builtin"
	TargetSimpleType  TargetKind = "simpleType"
	TargetComplexType TargetKind = "complexType"
)

// Target is what a type reference points to. For built-ins Name is the
// host primitive name, otherwise it is the declared type name.
type Target struct {
	Kind        TargetKind
	Name        string
	SimpleType  xsd.SimpleType
	ComplexType *xsd.ComplexType
}

// Index holds the declared types of a schema by name.
type Index struct {
	simpleTypes  map[string]xsd.SimpleType
	complexTypes map[string]*xsd.ComplexType
	duplicates   []string
}

func NewIndex(schema *xsd.Schema) *Index {
	idx := &Index{
		simpleTypes:  make(map[string]xsd.SimpleType, len(schema.SimpleTypes)),
		complexTypes: make(map[string]*xsd.ComplexType, len(schema.ComplexTypes)),
	}

	for _, st := range schema.SimpleTypes {
		if idx.has(st.TypeName()) {
			idx.duplicates = append(idx.duplicates, st.TypeName())
			continue
		}

		idx.simpleTypes[st.TypeName()] = st
	}

	for i := range schema.ComplexTypes {
		ct := &schema.ComplexTypes[i]

		if idx.has(ct.Name) {
			idx.duplicates = append(idx.duplicates, ct.Name)
			continue
		}

		idx.complexTypes[ct.Name] = ct
	}

	return idx
}

// Duplicates returns the type names declared more than once, in
// document order, simple types first.
func (idx *Index) Duplicates() []string {
	return idx.duplicates
}

func (idx *Index) has(name string) bool {
	_, isSimple := idx.simpleTypes[name]
	_, isComplex := idx.complexTypes[name]
	return isSimple || isComplex
}

// Resolve resolves typeRef against the built-in types first and the
// declared types second. Declared types are matched by local name, so
// "tns:Person" and "Person" both find a type named Person.
func (idx *Index) Resolve(typeRef string) (*Target, error) {
	if p, err := xsd.ResolveBase(typeRef); err == nil {
		return &Target{Kind: TargetBuiltin, Name: p}, nil
	}

	name := localName(typeRef)

	if st, ok := idx.simpleTypes[name]; ok {
		return &Target{Kind: TargetSimpleType, Name: name, SimpleType: st}, nil
	}

	if ct, ok := idx.complexTypes[name]; ok {
		return &Target{Kind: TargetComplexType, Name: name, ComplexType: ct}, nil
	}

	return nil, fmt.Errorf(`failed to resolve reference "%s": no built-in or declared type "%s"`, typeRef, name)
}

func Resolve(schema *xsd.Schema, typeRef string) (*Target, error) {
	return NewIndex(schema).Resolve(typeRef)
}

func localName(typeRef string) string {
	if i := strings.LastIndexByte(typeRef, ':'); i != -1 {
		return typeRef[i+1:]
	}

	return typeRef
}
