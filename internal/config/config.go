package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const FileName = "xsdgo.yaml"

type Config struct {
	Version int      `yaml:"version"`
	Schemas []Schema `yaml:"schemas"`
	// Types overrides the Go type used for a host primitive, e.g.
	// `Decimal: github.com/shopspring/decimal.Decimal`.
	Types map[string]string `yaml:"types"`
}

type Schema struct {
	Path    string  `yaml:"path"`
	Package Package `yaml:"package"`
	// Strict makes unresolved type references a generation error.
	// Defaults to true.
	Strict *bool `yaml:"strict"`
}

type Package struct {
	Path string `yaml:"path"`
}

func (s Schema) IsStrict() bool {
	return s.Strict == nil || *s.Strict
}

func Read(configPath string) (*Config, error) {
	fileData, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf(`failed to read config file "%s": %w`, configPath, err)
	}

	var config Config
	if err := yaml.Unmarshal(fileData, &config); err != nil {
		return nil, fmt.Errorf(`failed to unmarshal config file "%s": %w`, configPath, err)
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf(`invalid config file "%s": %w`, configPath, err)
	}

	return &config, nil
}

func (c *Config) validate() error {
	if c.Version != 1 {
		return fmt.Errorf("unsupported version %d", c.Version)
	}

	if len(c.Schemas) == 0 {
		return errors.New("no schemas configured")
	}

	for i, s := range c.Schemas {
		if len(s.Path) == 0 {
			return fmt.Errorf("schemas[%d]: missing path", i)
		}

		if len(s.Package.Path) == 0 {
			return fmt.Errorf("schemas[%d]: missing package path", i)
		}
	}

	for primitive, goType := range c.Types {
		if _, _, err := SplitGoType(goType); err != nil {
			return fmt.Errorf("types.%s: %w", primitive, err)
		}
	}

	return nil
}

// SplitGoType splits a qualified Go type like "github.com/a/b.Type" into
// its import path and name. Unqualified types like "int64" return an
// empty import path.
func SplitGoType(goType string) (importPath string, name string, err error) {
	dot := strings.LastIndexByte(goType, '.')
	if dot == -1 {
		importPath, name = "", goType
	} else {
		importPath, name = goType[:dot], goType[dot+1:]

		if len(importPath) == 0 {
			return "", "", fmt.Errorf(`invalid Go type "%s"`, goType)
		}
	}

	if len(name) == 0 || strings.ContainsAny(name, "/ ") {
		return "", "", fmt.Errorf(`invalid Go type "%s"`, goType)
	}

	return importPath, name, nil
}
