package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestResolveDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "go.mod"), "module github.com/acme/todo-app/v2\n\ngo 1.24\n")

	got, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got.ModulePath != "github.com/acme/todo-app/v2" {
		t.Errorf("ModulePath = %q", got.ModulePath)
	}
	if got.Package != "todoapp" {
		t.Errorf("Package = %q, want todoapp", got.Package)
	}
	if got.Elements != filepath.Join(dir, "elements.yaml") {
		t.Errorf("Elements = %q", got.Elements)
	}
	if got.Output != filepath.Join(dir, "elements_gen.go") {
		t.Errorf("Output = %q", got.Output)
	}
}

func TestResolveFromFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "go.mod"), "module example.com/site\n")
	sub := filepath.Join(dir, "ui")
	writeFile(t, filepath.Join(sub, FileName), `
generate:
  elements: tables/html.yaml
  output: html_gen.go
  package: widgets
`)

	got, err := Resolve(sub)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got.Root != dir {
		t.Errorf("Root = %q, want %q", got.Root, dir)
	}
	if got.Package != "widgets" {
		t.Errorf("Package = %q", got.Package)
	}
	if got.Elements != filepath.Join(sub, "tables", "html.yaml") {
		t.Errorf("Elements = %q", got.Elements)
	}
	if got.Output != filepath.Join(sub, "html_gen.go") {
		t.Errorf("Output = %q", got.Output)
	}
}

func TestResolveNestedDefaultPackage(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "go.mod"), "module example.com/site\n")
	sub := filepath.Join(dir, "components")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := Resolve(sub)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got.Package != "components" {
		t.Errorf("Package = %q, want components", got.Package)
	}
}

func TestResolveErrors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "go.mod"), "module example.com/site\n")
	writeFile(t, filepath.Join(dir, FileName), "generate: [not, a, map]\n")
	if _, err := Resolve(dir); err == nil {
		t.Error("expected parse error")
	}

	writeFile(t, filepath.Join(dir, FileName), "generate:\n  package: Bad-Name\n")
	if _, err := Resolve(dir); err == nil {
		t.Error("expected invalid package error")
	}
}

func TestLoadOptionalMissing(t *testing.T) {
	cfg, err := LoadOptional(t.TempDir())
	if err != nil {
		t.Fatalf("LoadOptional failed: %v", err)
	}
	if cfg.Generate != (GenerateConfig{}) {
		t.Errorf("expected empty config, got %+v", cfg.Generate)
	}
}
