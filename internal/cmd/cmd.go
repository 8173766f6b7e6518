package cmd

import (
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/koskimas/xsdgo/internal/config"
	"github.com/koskimas/xsdgo/internal/gen"
	"github.com/koskimas/xsdgo/internal/gomod"
	"github.com/koskimas/xsdgo/internal/ref"
	"github.com/koskimas/xsdgo/internal/xsd"
)

type Settings struct {
	WorkingDir string
	// ConfigFile overrides the config file path. Relative paths are
	// relative to WorkingDir.
	ConfigFile string
	// Logf, if set, is called once for every generated file.
	Logf func(format string, args ...any)
}

// Resolve returns filePath relative to the working directory. Absolute
// paths are returned as is.
func (s Settings) Resolve(filePath string) string {
	if filepath.IsAbs(filePath) {
		return filePath
	}

	return filepath.Join(s.WorkingDir, filePath)
}

func (s Settings) configPath() string {
	if len(s.ConfigFile) == 0 {
		return s.Resolve(config.FileName)
	}

	return s.Resolve(s.ConfigFile)
}

func Run(s Settings) error {
	cfg, err := config.Read(s.configPath())
	if err != nil {
		return err
	}

	for _, sc := range cfg.Schemas {
		filePath, err := generateSchema(s, cfg, sc)
		if err != nil {
			return fmt.Errorf(`failed to generate code for schema "%s": %w`, sc.Path, err)
		}

		if s.Logf != nil {
			s.Logf("%s -> %s", sc.Path, filePath)
		}
	}

	return nil
}

// generateSchema runs one load, check and emit cycle for a configured
// schema and returns the path of the written file. The file is named
// after the schema file and placed in the package directory, e.g.
// schema/person.xsd with package gen/person is written to
// gen/person/person.go.
func generateSchema(s Settings, cfg *config.Config, sc config.Schema) (string, error) {
	schema, err := xsd.ParseFile(filepath.Join(s.WorkingDir, sc.Path))
	if err != nil {
		return "", err
	}

	if sc.IsStrict() {
		if err := ref.Check(schema); err != nil {
			return "", err
		}
	}

	pkgDir := filepath.Join(s.WorkingDir, sc.Package.Path)

	importPath, err := gomod.ImportPath(pkgDir)
	if err != nil && !errors.Is(err, gomod.ErrNoModule) {
		return "", err
	}

	f, err := gen.Generate(schema, gen.Options{
		PackageName: packageName(sc.Package.Path),
		ImportPath:  importPath,
		Types:       cfg.Types,
		Strict:      sc.IsStrict(),
	})
	if err != nil {
		return "", err
	}

	base := filepath.Base(sc.Path)
	filePath := filepath.Join(pkgDir, strings.TrimSuffix(base, filepath.Ext(base))+".go")

	if err := gen.Write(f, filePath); err != nil {
		return "", err
	}

	return filePath, nil
}

// packageName returns the last element of a package path with the
// characters Go doesn't allow in package names removed.
func packageName(pkgPath string) string {
	name := strings.Map(func(r rune) rune {
		if r == '-' || r == '.' {
			return -1
		}

		return r
	}, path.Base(filepath.ToSlash(pkgPath)))

	return strings.ToLower(name)
}

// Dump builds the schema at filePath and writes its AST to w as YAML.
func Dump(filePath string, w io.Writer) error {
	schema, err := xsd.ParseFile(filePath)
	if err != nil {
		return fmt.Errorf(`failed to build schema "%s": %w`, filePath, err)
	}

	return xsd.Dump(w, schema)
}
