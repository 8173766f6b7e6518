package xsd

import (
	"fmt"
	"testing"

	"aqwari.net/xml/xmltree"
	assert "github.com/stretchr/testify/require"
)

const schemaNS = `xmlns:xs="http://www.w3.org/2001/XMLSchema"`

// schemaDoc wraps body in an xs:schema element.
func schemaDoc(body string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<xs:schema %s>
%s
</xs:schema>`, schemaNS, body)
}

// parseNode parses a single construct and returns it as the tree root.
// The snippet may use the xs prefix.
func parseNode(t *testing.T, snippet string) *xmltree.Element {
	root, err := xmltree.Parse([]byte(schemaDoc(snippet)))
	assert.NoError(t, err, "failed to parse test document")
	assert.NotEmpty(t, root.Children, "test document has no construct")
	return &root.Children[0]
}

func assertKind(t *testing.T, err error, kind ErrorKind) *Error {
	assert.Error(t, err)
	assert.True(t, IsKind(err, kind), "expected %s, got %v", kind, err)

	var e *Error
	assert.ErrorAs(t, err, &e)
	return e
}
