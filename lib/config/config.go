// Package config reads the optional livedom.yaml project file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file looked up in a directory.
const FileName = "livedom.yaml"

const (
	defaultElements = "elements.yaml"
	defaultOutput   = "elements_gen.go"
)

// Config represents the optional livedom.yaml configuration.
type Config struct {
	Generate GenerateConfig `yaml:"generate"`
}

// GenerateConfig controls `livedom generate`.
type GenerateConfig struct {
	Elements string `yaml:"elements,omitempty"`
	Output   string `yaml:"output,omitempty"`
	Package  string `yaml:"package,omitempty"`
}

// Resolved contains resolved configuration values. Paths are absolute.
type Resolved struct {
	Root       string
	ModulePath string
	Elements   string
	Output     string
	Package    string
}

// LoadOptional reads livedom.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}

// Resolve loads livedom.yaml from dir (if present) and fills defaults.
// The module path comes from the nearest go.mod at or above dir.
func Resolve(dir string) (*Resolved, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	root, err := findRoot(dir)
	if err != nil {
		return nil, err
	}
	modPath, err := modulePath(root)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	elements := strings.TrimSpace(cfg.Generate.Elements)
	if elements == "" {
		elements = defaultElements
	}
	output := strings.TrimSpace(cfg.Generate.Output)
	if output == "" {
		output = defaultOutput
	}
	pkg := strings.TrimSpace(cfg.Generate.Package)
	if pkg == "" {
		pkg = defaultPackage(modPath, root, dir)
	}
	if !validPackageName(pkg) {
		return nil, fmt.Errorf("invalid package name %q", pkg)
	}

	return &Resolved{
		Root:       root,
		ModulePath: modPath,
		Elements:   absJoin(dir, elements),
		Output:     absJoin(dir, output),
		Package:    pkg,
	}, nil
}

// FindProjectRoot walks up from the current directory to find go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return findRoot(dir)
}

func findRoot(dir string) (string, error) {
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

// defaultPackage is the last element of the module path for the module
// root, or the directory name for nested packages.
func defaultPackage(modPath, root, dir string) string {
	base := filepath.Base(dir)
	if dir == root {
		if prefix, _, ok := module.SplitPathVersion(modPath); ok {
			parts := strings.Split(prefix, "/")
			base = parts[len(parts)-1]
		}
	}
	base = strings.ToLower(strings.Map(func(r rune) rune {
		if r == '-' || r == '.' {
			return -1
		}
		return r
	}, base))
	if base == "" {
		return "main"
	}
	return base
}

func validPackageName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r == '_':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

func absJoin(dir, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}
