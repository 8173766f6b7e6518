package xsd

// Schema is the typed form of a schema document. It is built once by
// Build and never modified afterwards.
type Schema struct {
	// Element is the first element declaration found in the document.
	Element      Element       `yaml:"element"`
	ComplexTypes []ComplexType `yaml:"complexTypes"`
	SimpleTypes  []SimpleType  `yaml:"simpleTypes"`
}

// SimpleType is a named scalar type. SimpleTypeRestriction is the only
// variant.
type SimpleType interface {
	TypeName() string
	isSimpleType()
}

type SimpleTypeRestriction struct {
	Name string
	Kind Restriction
}

func (SimpleTypeRestriction) isSimpleType() {}

func (t SimpleTypeRestriction) TypeName() string {
	return t.Name
}

// Restriction narrows a host primitive by an ordered list of facets.
type Restriction struct {
	// Base is the host primitive name returned by ResolveBase.
	Base         string            `yaml:"base"`
	Restrictions []RestrictionKind `yaml:"restrictions"`
}

// RestrictionKind is a single facet of a restriction. The set of
// implementations is closed.
type RestrictionKind interface {
	// Facet returns the schema tag of the facet, e.g. "totalDigits".
	Facet() string
	isRestrictionKind()
}

type (
	FractionDigits int64
	TotalDigits    int64
	MinInclusive   int64
	MinLength      int64
	MaxLength      int64
	Pattern        string
	Enumeration    string
)

func (FractionDigits) isRestrictionKind() {}
func (TotalDigits) isRestrictionKind()    {}
func (MinInclusive) isRestrictionKind()   {}
func (MinLength) isRestrictionKind()      {}
func (MaxLength) isRestrictionKind()      {}
func (Pattern) isRestrictionKind()        {}
func (Enumeration) isRestrictionKind()    {}

func (FractionDigits) Facet() string { return "fractionDigits" }
func (TotalDigits) Facet() string    { return "totalDigits" }
func (MinInclusive) Facet() string   { return "minInclusive" }
func (MinLength) Facet() string      { return "minLength" }
func (MaxLength) Facet() string      { return "maxLength" }
func (Pattern) Facet() string        { return "pattern" }
func (Enumeration) Facet() string    { return "enumeration" }

type ComplexType struct {
	Name string          `yaml:"name"`
	Kind ComplexTypeKind `yaml:"kind"`
}

// ComplexTypeKind is the body of a complex type: a SimpleContent,
// a Sequence or a Choice.
type ComplexTypeKind interface {
	isComplexTypeKind()
}

// SimpleContent is a scalar value with attributes. Extension is the only
// variant.
type SimpleContent interface {
	ComplexTypeKind
	isSimpleContent()
}

// Extension extends the scalar Base with exactly one attribute.
type Extension struct {
	Base      string
	Attribute Attribute
}

func (Extension) isComplexTypeKind() {}
func (Extension) isSimpleContent()   {}

type Attribute struct {
	Name string `yaml:"name"`
	// Type is the unresolved type reference, e.g. "xs:string".
	Type string `yaml:"type"`
	// Use is carried as written: "required", "optional" or "prohibited".
	Use string `yaml:"use"`
}

// Sequence is an ordered list of elements. The order is the field order
// of the generated struct.
type Sequence struct {
	Elements []Element
}

func (Sequence) isComplexTypeKind() {}

// Choice is a set of mutually exclusive alternatives. Choices keeps the
// document order only so that output is deterministic.
type Choice struct {
	Choices []Element
}

func (Choice) isComplexTypeKind() {}

// Element is either a NamedElement or a Wildcard.
type Element interface {
	isElement()
}

type NamedElement struct {
	Name string
	// Type is the unresolved type reference as written in the document.
	Type string
}

// Wildcard is an <any/> particle.
type Wildcard struct{}

func (NamedElement) isElement() {}
func (Wildcard) isElement()     {}
