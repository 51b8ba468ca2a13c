// Package generator compiles an element table (elements.yaml) into Go
// source: element constructors and the attribute table used to validate
// Tag.Attr calls.
package generator

import (
	"errors"
	"fmt"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"github.com/pthm/livedom/lib/config"
)

// Options configures the generator.
type Options struct {
	DryRun bool
}

// Generator generates element tables.
type Generator struct {
	opts Options
	fset *token.FileSet
}

// New creates a new generator.
func New(opts Options) *Generator {
	return &Generator{
		opts: opts,
		fset: token.NewFileSet(),
	}
}

// Generate generates code for the given directory patterns.
func (g *Generator) Generate(patterns ...string) error {
	dirs, err := g.findDirs(patterns)
	if err != nil {
		return err
	}

	for _, dir := range dirs {
		if err := g.generateDir(dir); err != nil {
			return fmt.Errorf("directory %s: %w", dir, err)
		}
	}

	return nil
}

// Clean removes generated files for the given directory patterns.
func (g *Generator) Clean(patterns ...string) error {
	dirs, err := g.findDirs(patterns)
	if err != nil {
		return err
	}

	for _, dir := range dirs {
		if err := g.cleanDir(dir); err != nil {
			return fmt.Errorf("directory %s: %w", dir, err)
		}
	}

	return nil
}

// findDirs resolves patterns to directories holding an element table or
// a livedom.yaml.
func (g *Generator) findDirs(patterns []string) ([]string, error) {
	var dirs []string

	for _, pattern := range patterns {
		if !strings.HasSuffix(pattern, "/...") {
			dirs = append(dirs, pattern)
			continue
		}

		root := strings.TrimSuffix(pattern, "/...")
		if root == "" {
			root = "."
		}

		err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() {
				return nil
			}
			// Skip hidden directories, vendor and testdata
			base := filepath.Base(path)
			if path != root && (strings.HasPrefix(base, ".") || strings.HasPrefix(base, "_") || base == "vendor" || base == "testdata") {
				return filepath.SkipDir
			}
			if hasTable(path) {
				dirs = append(dirs, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return dirs, nil
}

func hasTable(dir string) bool {
	for _, name := range []string{config.FileName, "elements.yaml"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return true
		}
	}
	return false
}

func (g *Generator) generateDir(dir string) error {
	cfg, err := config.Resolve(dir)
	if err != nil {
		return err
	}

	table, err := LoadTable(cfg.Elements)
	if err != nil {
		return err
	}

	declared, err := g.declaredNames(dir, cfg.Package, cfg.Output)
	if err != nil {
		return err
	}
	if err := table.CheckConstructors(declared); err != nil {
		return err
	}

	return g.writeOutput(cfg.Output, cfg.Package, table)
}

func (g *Generator) cleanDir(dir string) error {
	cfg, err := config.Resolve(dir)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(cfg.Output)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if !strings.HasPrefix(string(data), generatedHeader) {
		return fmt.Errorf("%s was not generated by livedom; refusing to remove it", cfg.Output)
	}

	fmt.Printf("removing %s\n", cfg.Output)
	if g.opts.DryRun {
		return nil
	}
	return os.Remove(cfg.Output)
}
