package generator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sampleTable = `
global: [id, Class, id]
elements:
  - name: UL
  - name: br
    void: true
  - name: a
    attributes: [target, href]
  - name: input
    void: true
    constructor: false
    attributes: [type, value]
  - name: my-widget
`

func TestParseTableNormalizes(t *testing.T) {
	table, err := ParseTable([]byte(sampleTable))
	if err != nil {
		t.Fatalf("ParseTable failed: %v", err)
	}

	if diff := cmp.Diff([]string{"class", "id"}, table.Global); diff != "" {
		t.Errorf("Global (-want +got):\n%s", diff)
	}

	var names []string
	for _, e := range table.Elements {
		names = append(names, e.Name)
	}
	if diff := cmp.Diff([]string{"a", "br", "input", "my-widget", "ul"}, names); diff != "" {
		t.Errorf("element order (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"href", "target"}, table.Elements[0].Attributes); diff != "" {
		t.Errorf("a attributes (-want +got):\n%s", diff)
	}
	if table.Elements[2].HasConstructor() {
		t.Error("input should not have a constructor")
	}
	if got := table.Elements[3].GoName(); got != "MyWidget" {
		t.Errorf("GoName() = %q, want MyWidget", got)
	}
}

func TestParseTableErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"bad yaml", "elements: [", "failed to parse"},
		{"bad element", "elements:\n  - name: 1div\n", "invalid element name"},
		{"duplicate", "elements:\n  - name: p\n  - name: P\n", "duplicate element"},
		{"bad attribute", "elements:\n  - name: p\n    attributes: [\"on click\"]\n", "invalid attribute name"},
		{"constructor clash", "elements:\n  - name: a-b\n  - name: a--b\n", "both generate AB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTable([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestRender(t *testing.T) {
	table, err := ParseTable([]byte(sampleTable))
	if err != nil {
		t.Fatal(err)
	}
	code, err := Render("ui", table)
	if err != nil {
		t.Fatalf("Render failed: %v\n%s", err, code)
	}
	src := string(code)

	if !strings.HasPrefix(src, generatedHeader) {
		t.Error("missing generated header")
	}
	for _, want := range []string{
		"package ui",
		`var globalAttributes = []string{"class", "id"}`,
		`{Name: "a", Attributes: []string{"href", "target"}},`,
		`{Name: "br", Void: true},`,
		`func Br() *Tag { return NewTag("br") }`,
		`func Ul(children ...any) *Tag { return NewTag("ul").Push(children...) }`,
		`func MyWidget(children ...any) *Tag`,
	} {
		if !strings.Contains(src, want) {
			t.Errorf("output missing %q:\n%s", want, src)
		}
	}
	if strings.Contains(src, "func Input(") {
		t.Error("constructor: false should suppress Input")
	}
}

func setupModule(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"go.mod":                "module example.com/site\n\ngo 1.24\n",
		"elements.yaml":         sampleTable,
		"widgets/livedom.yaml":  "generate:\n  output: tags_gen.go\n",
		"widgets/elements.yaml": "elements:\n  - name: p\n",
		"_skip/elements.yaml":   "elements:\n  - name: p\n",
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestGenerateAndClean(t *testing.T) {
	dir := setupModule(t)
	g := New(Options{})

	if err := g.Generate(dir + "/..."); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	root, err := os.ReadFile(filepath.Join(dir, "elements_gen.go"))
	if err != nil {
		t.Fatalf("root output missing: %v", err)
	}
	if !strings.Contains(string(root), "package site") {
		t.Errorf("root package name wrong:\n%s", root)
	}
	nested, err := os.ReadFile(filepath.Join(dir, "widgets", "tags_gen.go"))
	if err != nil {
		t.Fatalf("nested output missing: %v", err)
	}
	if !strings.Contains(string(nested), "package widgets") {
		t.Errorf("nested package name wrong:\n%s", nested)
	}
	if _, err := os.Stat(filepath.Join(dir, "_skip", "elements_gen.go")); !os.IsNotExist(err) {
		t.Error("underscore directories should be skipped")
	}

	if err := g.Clean(dir + "/..."); err != nil {
		t.Fatalf("Clean failed: %v", err)
	}
	for _, p := range []string{"elements_gen.go", "widgets/tags_gen.go"} {
		if _, err := os.Stat(filepath.Join(dir, p)); !os.IsNotExist(err) {
			t.Errorf("%s should be removed", p)
		}
	}
}

func TestGenerateDryRun(t *testing.T) {
	dir := setupModule(t)
	if err := New(Options{DryRun: true}).Generate(dir); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "elements_gen.go")); !os.IsNotExist(err) {
		t.Error("dry run should not write files")
	}
}

func TestCleanRefusesHandWrittenFile(t *testing.T) {
	dir := setupModule(t)
	out := filepath.Join(dir, "elements_gen.go")
	if err := os.WriteFile(out, []byte("package site\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := New(Options{}).Clean(dir); err == nil {
		t.Fatal("Clean should refuse to remove a file it did not generate")
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("hand-written file removed: %v", err)
	}
}

func TestGenerateRefusesDeclaredConstructor(t *testing.T) {
	dir := setupModule(t)
	hand := filepath.Join(dir, "lists.go")
	if err := os.WriteFile(hand, []byte("package site\n\nfunc Ul(n int) int { return n }\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := New(Options{}).Generate(dir)
	if err == nil {
		t.Fatal("Generate should refuse a constructor the package already declares")
	}
	if !strings.Contains(err.Error(), "Ul (<ul>)") {
		t.Errorf("error = %q, want it to name Ul", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "elements_gen.go")); !os.IsNotExist(err) {
		t.Error("nothing should be written on a clash")
	}
}

func TestGenerateIgnoresPreviousOutput(t *testing.T) {
	dir := setupModule(t)
	g := New(Options{})
	for i := 0; i < 2; i++ {
		if err := g.Generate(dir); err != nil {
			t.Fatalf("Generate run %d failed: %v", i+1, err)
		}
	}
}

func TestCheckConstructors(t *testing.T) {
	table, err := ParseTable([]byte(sampleTable))
	if err != nil {
		t.Fatal(err)
	}
	if err := table.CheckConstructors(map[string]bool{"Input": true, "Quo": true}); err != nil {
		t.Errorf("suppressed constructors should not clash: %v", err)
	}
	err = table.CheckConstructors(map[string]bool{"Br": true, "A": true})
	if err == nil {
		t.Fatal("expected a clash")
	}
	if !strings.Contains(err.Error(), "A (<a>), Br (<br>)") {
		t.Errorf("error = %q", err)
	}
}
