package xsd

import (
	"os"
	"path/filepath"
	"testing"

	assert "github.com/stretchr/testify/require"
)

const personSchema = `
<xs:element name="person" type="Person"/>

<xs:simpleType name="Age">
  <xs:restriction base="xs:decimal">
    <xs:totalDigits value="3"/>
  </xs:restriction>
</xs:simpleType>

<xs:complexType name="Person">
  <xs:sequence>
    <xs:element name="first" type="xs:string"/>
    <xs:element name="age" type="Age"/>
    <xs:element name="contact" type="Contact"/>
  </xs:sequence>
</xs:complexType>

<xs:complexType name="Contact">
  <xs:choice>
    <xs:element name="email" type="xs:string"/>
    <xs:any/>
  </xs:choice>
</xs:complexType>

<xs:simpleType name="Email">
  <xs:restriction base="xs:string">
    <xs:pattern value=".+@.+"/>
    <xs:maxLength value="254"/>
  </xs:restriction>
</xs:simpleType>
`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(schemaDoc(personSchema)))
	assert.NoError(t, err)

	assert.Equal(t, &Schema{
		Element: NamedElement{Name: "person", Type: "Person"},
		ComplexTypes: []ComplexType{
			{
				Name: "Person",
				Kind: Sequence{Elements: []Element{
					NamedElement{Name: "first", Type: "xs:string"},
					NamedElement{Name: "age", Type: "Age"},
					NamedElement{Name: "contact", Type: "Contact"},
				}},
			},
			{
				Name: "Contact",
				Kind: Choice{Choices: []Element{
					NamedElement{Name: "email", Type: "xs:string"},
					Wildcard{},
				}},
			},
		},
		SimpleTypes: []SimpleType{
			SimpleTypeRestriction{
				Name: "Age",
				Kind: Restriction{Base: "Decimal", Restrictions: []RestrictionKind{TotalDigits(3)}},
			},
			SimpleTypeRestriction{
				Name: "Email",
				Kind: Restriction{Base: "String", Restrictions: []RestrictionKind{Pattern(".+@.+"), MaxLength(254)}},
			},
		},
	}, s)
}

func TestParseUnprefixedTags(t *testing.T) {
	doc := `<schema xmlns="http://www.w3.org/2001/XMLSchema">
  <element name="n" type="N"/>
  <simpleType name="N"><restriction base="xs:string"/></simpleType>
</schema>`

	s, err := Parse([]byte(doc))
	assert.NoError(t, err)
	assert.Equal(t, NamedElement{Name: "n", Type: "N"}, s.Element)
	assert.Len(t, s.SimpleTypes, 1)
}

func TestRootElementIsFirstInDocumentOrder(t *testing.T) {
	// The element inside the complex type comes first in document order,
	// so it becomes the root element even though it is not top level.
	doc := schemaDoc(`
<xs:complexType name="Wrapper">
  <xs:sequence>
    <xs:element name="inner" type="xs:string"/>
  </xs:sequence>
</xs:complexType>
<xs:element name="outer" type="Wrapper"/>
<xs:element name="second" type="Wrapper"/>`)

	s, err := Parse([]byte(doc))
	assert.NoError(t, err)
	assert.Equal(t, NamedElement{Name: "inner", Type: "xs:string"}, s.Element)
}

func TestParseTypeAsDocumentRoot(t *testing.T) {
	complexDoc := `<xs:complexType name="P" ` + schemaNS + `>
  <xs:sequence>
    <xs:element name="a" type="xs:string"/>
  </xs:sequence>
</xs:complexType>`

	s, err := Parse([]byte(complexDoc))
	assert.NoError(t, err)
	assert.Equal(t, NamedElement{Name: "a", Type: "xs:string"}, s.Element)
	assert.Equal(t, []ComplexType{
		{
			Name: "P",
			Kind: Sequence{Elements: []Element{NamedElement{Name: "a", Type: "xs:string"}}},
		},
	}, s.ComplexTypes)
	assert.Empty(t, s.SimpleTypes)

	// The simple type is the document root, the nested one follows it.
	simpleDoc := `<xs:simpleType name="Outer" ` + schemaNS + `>
  <xs:restriction base="xs:string"/>
  <xs:annotation>
    <xs:simpleType name="Inner"><xs:restriction base="xs:boolean"/></xs:simpleType>
    <xs:element name="e" type="Inner"/>
  </xs:annotation>
</xs:simpleType>`

	s, err = Parse([]byte(simpleDoc))
	assert.NoError(t, err)
	assert.Equal(t, []SimpleType{
		SimpleTypeRestriction{Name: "Outer", Kind: Restriction{Base: PrimitiveString, Restrictions: []RestrictionKind{}}},
		SimpleTypeRestriction{Name: "Inner", Kind: Restriction{Base: PrimitiveBool, Restrictions: []RestrictionKind{}}},
	}, s.SimpleTypes)
}

func TestRootElementIgnoresEarlierWildcard(t *testing.T) {
	doc := schemaDoc(`
<xs:complexType name="Open">
  <xs:sequence>
    <xs:any/>
  </xs:sequence>
</xs:complexType>
<xs:element name="open" type="Open"/>`)

	s, err := Parse([]byte(doc))
	assert.NoError(t, err)
	assert.Equal(t, NamedElement{Name: "open", Type: "Open"}, s.Element)
}

func TestMissingRootElement(t *testing.T) {
	doc := schemaDoc(`
<xs:simpleType name="Age">
  <xs:restriction base="xs:decimal"/>
</xs:simpleType>
<xs:complexType name="Open">
  <xs:sequence><xs:any/></xs:sequence>
</xs:complexType>`)

	s, err := Parse([]byte(doc))
	assert.Nil(t, s)

	e := assertKind(t, err, StructuralMismatch)
	assert.Equal(t, "element", e.Name)
	assert.Equal(t, "schema", e.Construct)
}

func TestParseIsAllOrNothing(t *testing.T) {
	tests := []struct {
		name string
		body string
		kind ErrorKind
	}{
		{
			name: "bad complex type",
			body: personSchema + `<xs:complexType name="Bad"/>`,
			kind: StructuralMismatch,
		},
		{
			name: "bad simple type",
			body: personSchema + `<xs:simpleType name="Bad"><xs:restriction base="xs:double"/></xs:simpleType>`,
			kind: UnsupportedBaseType,
		},
		{
			name: "bad facet",
			body: personSchema + `<xs:simpleType name="Bad"><xs:restriction base="xs:string"><xs:whiteSpace value="collapse"/></xs:restriction></xs:simpleType>`,
			kind: UnsupportedFacet,
		},
		{
			name: "bad numeric facet",
			body: personSchema + `<xs:simpleType name="Bad"><xs:restriction base="xs:string"><xs:maxLength value="ten"/></xs:restriction></xs:simpleType>`,
			kind: InvalidNumericFacet,
		},
		{
			name: "bad root element",
			body: `<xs:element name="noType"/>` + personSchema,
			kind: MissingAttribute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Parse([]byte(schemaDoc(tt.body)))
			assert.Nil(t, s)
			assertKind(t, err, tt.kind)
		})
	}
}

func TestParseMalformed(t *testing.T) {
	for _, doc := range []string{
		`<xs:schema ` + schemaNS + `><xs:element name="a" type="b"></xs:schema>`,
		`not xml at all`,
		``,
	} {
		s, err := Parse([]byte(doc))
		assert.Nil(t, s)
		assertKind(t, err, MalformedDocument)
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "person.xsd")
	assert.NoError(t, os.WriteFile(path, []byte(schemaDoc(personSchema)), 0600))

	s, err := ParseFile(path)
	assert.NoError(t, err)
	assert.Len(t, s.ComplexTypes, 2)
	assert.Len(t, s.SimpleTypes, 2)
}

func TestParseFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.xsd")

	s, err := ParseFile(path)
	assert.Nil(t, s)

	e := assertKind(t, err, IOError)
	assert.Equal(t, path, e.Name)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
