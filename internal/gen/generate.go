package gen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dave/jennifer/jen"
	"github.com/koskimas/xsdgo/internal/config"
	"github.com/koskimas/xsdgo/internal/ref"
	"github.com/koskimas/xsdgo/internal/xsd"
)

const (
	idConstRootElement = "RootElement"
	idStructAnyElement = "AnyElement"
	idFuncValidate     = "Validate"
	idParamValue       = "v"

	idFieldValue   = "Value"
	idFieldAny     = "Any"
	idFieldXMLName = "XMLName"
	idFieldAttrs   = "Attrs"
	idFieldInner   = "Inner"

	headerComment = "Code generated by xsdgo. DO NOT EDIT."
)

// defaultGoTypes maps host primitive names to Go types. Entries can be
// overridden with Options.Types.
var defaultGoTypes = map[string]string{
	xsd.PrimitiveDecimal: "float64",
	xsd.PrimitiveString:  "string",
	xsd.PrimitiveBool:    "bool",
}

type Options struct {
	// PackageName is the name of the generated package.
	PackageName string
	// ImportPath is the import path of the generated package, if known.
	ImportPath string
	// Types overrides the Go type of a host primitive, see config.Config.
	Types map[string]string
	// Strict makes unresolved type references an error. Otherwise they are
	// generated as string.
	Strict bool
}

type generator struct {
	f      *jen.File
	opts   Options
	index  *ref.Index
	names  *scope
	types  map[string]string
	hasAny bool
}

// Generate renders schema as Go declarations: a RootElement constant,
// one defined type per simple type and one struct per complex type.
func Generate(schema *xsd.Schema, opts Options) (*jen.File, error) {
	var f *jen.File
	if len(opts.ImportPath) > 0 {
		f = jen.NewFilePathName(opts.ImportPath, opts.PackageName)
	} else {
		f = jen.NewFile(opts.PackageName)
	}

	f.HeaderComment(headerComment)

	g := &generator{
		f:     f,
		opts:  opts,
		index: ref.NewIndex(schema),
		names: newScope(idConstRootElement, idStructAnyElement),
		types: make(map[string]string),
	}

	// Same-named declarations would share one identifier, strict or not.
	if dups := g.index.Duplicates(); len(dups) > 0 {
		return nil, fmt.Errorf(`type "%s" is declared more than once`, dups[0])
	}

	for primitive, goType := range opts.Types {
		if _, _, err := config.SplitGoType(goType); err != nil {
			return nil, fmt.Errorf("type override for %s: %w", primitive, err)
		}
	}

	// Type names are reserved up front so that references to types declared
	// later in the document resolve to the same identifiers.
	for _, st := range schema.SimpleTypes {
		if _, ok := g.types[st.TypeName()]; !ok {
			g.types[st.TypeName()] = g.names.add(exported(st.TypeName()), "Type")
		}
	}
	for _, ct := range schema.ComplexTypes {
		if _, ok := g.types[ct.Name]; !ok {
			g.types[ct.Name] = g.names.add(exported(ct.Name), "Type")
		}
	}

	g.genRootElement(schema.Element)

	for _, st := range schema.SimpleTypes {
		if err := g.genSimpleType(st); err != nil {
			return nil, fmt.Errorf(`simple type "%s": %w`, st.TypeName(), err)
		}
	}

	for _, ct := range schema.ComplexTypes {
		if err := g.genComplexType(ct); err != nil {
			return nil, fmt.Errorf(`complex type "%s": %w`, ct.Name, err)
		}
	}

	if g.hasAny {
		g.genAnyElement()
	}

	return f, nil
}

func (g *generator) genRootElement(el xsd.Element) {
	named, ok := el.(xsd.NamedElement)
	if !ok {
		return
	}

	g.f.Commentf("%s is the name of the document element, of type %s.", idConstRootElement, named.Type)
	g.f.Const().Id(idConstRootElement).Op("=").Lit(named.Name)
	g.f.Empty()
}

func (g *generator) genAnyElement() {
	g.f.Commentf("%s holds an element matched by a wildcard.", idStructAnyElement)
	g.f.Type().Id(idStructAnyElement).Struct(
		jen.Id(idFieldXMLName).Qual("encoding/xml", "Name"),
		jen.Id(idFieldAttrs).Index().Qual("encoding/xml", "Attr").Tag(map[string]string{"xml": ",any,attr"}),
		jen.Id(idFieldInner).Index().Byte().Tag(map[string]string{"xml": ",innerxml"}),
	)
	g.f.Empty()
}

// goType returns the Go type of a host primitive.
func (g *generator) goType(primitive string) (*jen.Statement, error) {
	goType, ok := g.opts.Types[primitive]
	if !ok {
		goType, ok = defaultGoTypes[primitive]
	}

	if !ok {
		return nil, fmt.Errorf(`no Go type for primitive "%s"`, primitive)
	}

	importPath, name, err := config.SplitGoType(goType)
	if err != nil {
		return nil, err
	}

	if len(importPath) == 0 {
		return jen.Id(name), nil
	}

	return jen.Qual(importPath, name), nil
}

// isDefaultType reports whether primitive is generated as its default
// Go type. Validation code is only generated for default types.
func (g *generator) isDefaultType(primitive string) bool {
	_, overridden := g.opts.Types[primitive]
	return !overridden
}

// refType returns the Go type for a type reference. allowComplex is
// false where only simple values may appear.
func (g *generator) refType(typeRef string, allowComplex bool) (*jen.Statement, error) {
	target, err := g.index.Resolve(typeRef)
	if err != nil {
		if g.opts.Strict {
			return nil, err
		}

		return jen.String(), nil
	}

	switch target.Kind {
	case ref.TargetBuiltin:
		return g.goType(target.Name)
	case ref.TargetComplexType:
		if !allowComplex {
			return nil, fmt.Errorf(`complex type "%s" cannot be used as a simple value`, typeRef)
		}
	}

	return jen.Id(g.types[target.Name]), nil
}

func (g *generator) genComplexType(ct xsd.ComplexType) error {
	id := g.types[ct.Name]

	var fields []jen.Code
	var err error

	switch k := ct.Kind.(type) {
	case xsd.Sequence:
		g.f.Commentf("%s is generated from the complex type %s.", id, ct.Name)
		fields, err = g.sequenceFields(ct.Name, k)
	case xsd.Choice:
		g.f.Commentf("%s is generated from the complex type %s. At most one field is set.", id, ct.Name)
		fields, err = g.choiceFields(k)
	case xsd.SimpleContent:
		g.f.Commentf("%s is generated from the complex type %s.", id, ct.Name)
		fields, err = g.simpleContentFields(k)
	default:
		err = fmt.Errorf("unsupported complex type kind %T", ct.Kind)
	}

	if err != nil {
		return err
	}

	g.f.Type().Id(id).Struct(fields...)
	g.f.Empty()
	return nil
}

func (g *generator) sequenceFields(typeName string, seq xsd.Sequence) ([]jen.Code, error) {
	fieldNames := newScope()
	fields := make([]jen.Code, 0, len(seq.Elements))

	for _, e := range seq.Elements {
		switch e := e.(type) {
		case xsd.NamedElement:
			t, err := g.refType(e.Type, true)
			if err != nil {
				return nil, err
			}

			field := jen.Id(fieldNames.add(exported(e.Name), "Field"))
			if g.isRecursive(e.Type, typeName) {
				field.Op("*")
			}

			fields = append(fields, field.Add(t).Tag(map[string]string{
				"xml": e.Name,
			}))
		case xsd.Wildcard:
			fields = append(fields, g.wildcardField(fieldNames))
		}
	}

	return fields, nil
}

// isRecursive reports whether a sequence field of type typeRef would
// embed the complex type typeName in itself by value. Such fields are
// generated as pointers.
func (g *generator) isRecursive(typeRef string, typeName string) bool {
	return g.reaches(typeRef, typeName, make(map[string]bool))
}

func (g *generator) reaches(typeRef string, typeName string, seen map[string]bool) bool {
	target, err := g.index.Resolve(typeRef)
	if err != nil || target.Kind != ref.TargetComplexType {
		return false
	}

	if target.Name == typeName {
		return true
	}

	if seen[target.Name] {
		return false
	}
	seen[target.Name] = true

	seq, ok := target.ComplexType.Kind.(xsd.Sequence)
	if !ok {
		return false
	}

	for _, e := range seq.Elements {
		if named, ok := e.(xsd.NamedElement); ok && g.reaches(named.Type, typeName, seen) {
			return true
		}
	}

	return false
}

func (g *generator) choiceFields(choice xsd.Choice) ([]jen.Code, error) {
	fieldNames := newScope()
	fields := make([]jen.Code, 0, len(choice.Choices))

	for _, e := range choice.Choices {
		switch e := e.(type) {
		case xsd.NamedElement:
			t, err := g.refType(e.Type, true)
			if err != nil {
				return nil, err
			}

			fields = append(fields, jen.Id(fieldNames.add(exported(e.Name), "Field")).Op("*").Add(t).Tag(map[string]string{
				"xml": e.Name + ",omitempty",
			}))
		case xsd.Wildcard:
			fields = append(fields, g.wildcardField(fieldNames))
		}
	}

	return fields, nil
}

func (g *generator) wildcardField(fieldNames *scope) jen.Code {
	g.hasAny = true

	return jen.Id(fieldNames.add(idFieldAny, idFieldAny)).Index().Id(idStructAnyElement).Tag(map[string]string{
		"xml": ",any",
	})
}

func (g *generator) simpleContentFields(sc xsd.SimpleContent) ([]jen.Code, error) {
	ext, ok := sc.(xsd.Extension)
	if !ok {
		return nil, fmt.Errorf("unsupported simple content %T", sc)
	}

	base, err := g.refType(ext.Base, false)
	if err != nil {
		return nil, err
	}

	fieldNames := newScope(idFieldValue)
	fields := []jen.Code{
		jen.Id(idFieldValue).Add(base).Tag(map[string]string{"xml": ",chardata"}),
	}

	attr := ext.Attribute
	if attr.Use == "prohibited" {
		return fields, nil
	}

	t, err := g.refType(attr.Type, false)
	if err != nil {
		return nil, err
	}

	field := jen.Id(fieldNames.add(exported(attr.Name), "Attr"))
	if attr.Use == "required" {
		field.Add(t).Tag(map[string]string{"xml": attr.Name + ",attr"})
	} else {
		field.Op("*").Add(t).Tag(map[string]string{"xml": attr.Name + ",attr,omitempty"})
	}

	return append(fields, field), nil
}

// Write renders f into filePath, creating the parent directories.
func Write(f *jen.File, filePath string) error {
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return fmt.Errorf(`failed to render "%s": %w`, filePath, err)
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0700); err != nil {
		return err
	}

	return os.WriteFile(filePath, buf.Bytes(), 0600)
}
