package test

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	assert "github.com/stretchr/testify/require"
)

func getWd(t *testing.T, folder string) string {
	wd, err := os.Getwd()
	assert.NoError(t, err, "failed to get working directory")
	return filepath.Join(wd, folder)
}

// copyTest copies a test folder into a temporary directory so that the
// generated files don't end up in the source tree.
func copyTest(t *testing.T, folder string) string {
	src := getWd(t, folder)
	dst := t.TempDir()

	err := filepath.WalkDir(src, func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, filePath)
		if err != nil {
			return err
		}

		if d.IsDir() {
			return os.MkdirAll(filepath.Join(dst, rel), 0700)
		}

		data, err := os.ReadFile(filePath)
		if err != nil {
			return err
		}

		return os.WriteFile(filepath.Join(dst, rel), data, 0600)
	})

	assert.NoError(t, err, "failed to copy test folder")
	return dst
}

// readGenerated reads a generated Go file, checks that it type checks
// and returns it with runs of blanks collapsed.
func readGenerated(t *testing.T, filePath string) string {
	data, err := os.ReadFile(filePath)
	assert.NoError(t, err, "generated file missing")

	typeCheck(t, filePath, data)

	lines := strings.Split(string(data), "\n")
	for i, l := range lines {
		lines[i] = strings.Join(strings.Fields(l), " ")
	}

	return strings.Join(lines, "\n")
}

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

func typeCheck(t *testing.T, filePath string, src []byte) {
	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, filePath, src, parser.AllErrors)
	assert.NoError(t, err, "generated file does not parse")

	conf := types.Config{
		Importer: stubImporter{
			"github.com/shopspring/decimal": stubPackage("github.com/shopspring/decimal", "decimal", "Decimal"),
		},
	}

	_, err = conf.Check(f.Name.Name, fset, []*ast.File{f}, nil)
	assert.NoError(t, err, "generated file does not type check:\n%s", src)
}
