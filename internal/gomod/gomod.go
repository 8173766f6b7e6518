// Package gomod finds the import path of a directory from the go.mod
// file of the module that contains it.
package gomod

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"golang.org/x/mod/modfile"
)

const fileName = "go.mod"

var ErrNoModule = errors.New("no go.mod found")

type Module struct {
	// Path is the module path declared in go.mod.
	Path string
	// Dir is the directory containing go.mod.
	Dir string
}

// Find returns the module containing dir, looking for go.mod in dir and
// its parents.
func Find(dir string) (*Module, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	for {
		filePath := filepath.Join(dir, fileName)

		data, err := os.ReadFile(filePath)
		if err == nil {
			modPath := modfile.ModulePath(data)
			if len(modPath) == 0 {
				return nil, fmt.Errorf(`no module directive in "%s"`, filePath)
			}

			return &Module{Path: modPath, Dir: dir}, nil
		}

		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf(`failed to read "%s": %w`, filePath, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, ErrNoModule
		}

		dir = parent
	}
}

// ImportPath returns the import path of the package in dir, which must be
// inside the module.
func (m *Module) ImportPath(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	rel, err := filepath.Rel(m.Dir, dir)
	if err != nil {
		return "", err
	}

	if rel == ".." || len(rel) > 2 && rel[:3] == ".."+string(filepath.Separator) {
		return "", fmt.Errorf(`"%s" is outside of module %s`, dir, m.Path)
	}

	if rel == "." {
		return m.Path, nil
	}

	return path.Join(m.Path, filepath.ToSlash(rel)), nil
}

// ImportPath finds the module containing dir and returns the import path
// of the package in dir. dir does not need to exist.
func ImportPath(dir string) (string, error) {
	mod, err := Find(nearestExisting(dir))
	if err != nil {
		return "", err
	}

	return mod.ImportPath(dir)
}

func nearestExisting(dir string) string {
	for {
		if _, err := os.Stat(dir); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}

		dir = parent
	}
}
