package generator

import (
	"fmt"
	"go/ast"
	"go/parser"
	"os"
	"path/filepath"
	"strings"
)

// declaredNames returns the package-level identifiers declared in dir by
// package pkgName, ignoring the generated output file.
func (g *Generator) declaredNames(dir, pkgName, output string) (map[string]bool, error) {
	outBase := filepath.Base(output)
	pkgs, err := parser.ParseDir(g.fset, dir, func(info os.FileInfo) bool {
		return info.Name() != outBase
	}, parser.SkipObjectResolution)
	if err != nil {
		return nil, fmt.Errorf("failed to parse package: %w", err)
	}

	names := make(map[string]bool)
	pkg, ok := pkgs[pkgName]
	if !ok {
		return names, nil
	}
	for _, file := range pkg.Files {
		for _, decl := range file.Decls {
			switch d := decl.(type) {
			case *ast.FuncDecl:
				if d.Recv == nil {
					names[d.Name.Name] = true
				}
			case *ast.GenDecl:
				for _, spec := range d.Specs {
					switch s := spec.(type) {
					case *ast.TypeSpec:
						names[s.Name.Name] = true
					case *ast.ValueSpec:
						for _, n := range s.Names {
							names[n.Name] = true
						}
					}
				}
			}
		}
	}
	return names, nil
}

// CheckConstructors fails when a generated constructor would collide
// with a name the package already declares.
func (t *Table) CheckConstructors(declared map[string]bool) error {
	var clashes []string
	for _, e := range t.Elements {
		if e.HasConstructor() && declared[e.GoName()] {
			clashes = append(clashes, fmt.Sprintf("%s (<%s>)", e.GoName(), e.Name))
		}
	}
	if len(clashes) > 0 {
		return fmt.Errorf("constructors already declared in package: %s; set constructor: false for these elements",
			strings.Join(clashes, ", "))
	}
	return nil
}
