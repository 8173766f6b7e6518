package xsd

import (
	"sort"
)

// Host primitive names produced by ResolveBase.
const (
	PrimitiveDecimal = "Decimal"
	PrimitiveString  = "String"
	PrimitiveBool    = "bool"
)

// baseTypes maps built-in schema types to host primitives. The prefix is
// matched literally. Date and binary kinds are carried as plain text.
var baseTypes = map[string]string{
	"xs:decimal":      PrimitiveDecimal,
	"xs:string":       PrimitiveString,
	"xs:boolean":      PrimitiveBool,
	"xs:date":         PrimitiveString,
	"xs:dateTime":     PrimitiveString,
	"xs:gYear":        PrimitiveString,
	"xs:base64Binary": PrimitiveString,
}

// ResolveBase maps a built-in type name such as "xs:decimal" to its host
// primitive name.
func ResolveBase(name string) (string, error) {
	if p, ok := baseTypes[name]; ok {
		return p, nil
	}

	return "", unsupportedBaseType(name)
}

// BaseTypes returns the built-in type names ResolveBase accepts, sorted.
func BaseTypes() []string {
	names := make([]string, 0, len(baseTypes))
	for n := range baseTypes {
		names = append(names, n)
	}

	sort.Strings(names)
	return names
}
