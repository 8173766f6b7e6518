package gen

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	assert "github.com/stretchr/testify/require"
)

var stdImporter = importer.ForCompiler(token.NewFileSet(), "source", nil)

// stubImporter serves the standard library from source and empty
// placeholder packages for the third-party types used in overrides.
type stubImporter map[string]*types.Package

func (s stubImporter) Import(path string) (*types.Package, error) {
	if pkg, ok := s[path]; ok {
		return pkg, nil
	}

	return stdImporter.Import(path)
}

func stubPackage(path, name string, typeNames ...string) *types.Package {
	pkg := types.NewPackage(path, name)

	for _, n := range typeNames {
		obj := types.NewTypeName(token.NoPos, pkg, n, nil)
		types.NewNamed(obj, types.NewStruct(nil, nil), nil)
		pkg.Scope().Insert(obj)
	}

	pkg.MarkComplete()
	return pkg
}

// typeCheck fails the test unless src is a valid Go package on its own.
func typeCheck(t *testing.T, src []byte) {
	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, "generated.go", src, parser.AllErrors)
	assert.NoError(t, err, "generated code does not parse:\n%s", src)

	conf := types.Config{
		Importer: stubImporter{
			"github.com/shopspring/decimal": stubPackage("github.com/shopspring/decimal", "decimal", "Decimal"),
		},
	}

	_, err = conf.Check(f.Name.Name, fset, []*ast.File{f}, nil)
	assert.NoError(t, err, "generated code does not type check:\n%s", src)
}
