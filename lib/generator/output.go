package generator

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"strings"
	"text/template"
)

const generatedHeader = "// Code generated by livedom generate. DO NOT EDIT."

// writeOutput renders, formats and writes the generated file.
func (g *Generator) writeOutput(outputFile, pkgName string, table *Table) error {
	fmt.Printf("generating %s\n", outputFile)

	if g.opts.DryRun {
		return nil
	}

	code, err := Render(pkgName, table)
	if err != nil {
		if len(code) > 0 {
			// Write unformatted for debugging
			if writeErr := os.WriteFile(outputFile+".unformatted", code, 0o644); writeErr == nil {
				fmt.Printf("  wrote unformatted code to %s.unformatted for debugging\n", outputFile)
			}
		}
		return err
	}

	return os.WriteFile(outputFile, code, 0o644)
}

// Render produces the formatted Go source for table. On a format error
// the unformatted source is returned alongside the error.
func Render(pkgName string, table *Table) ([]byte, error) {
	tmpl, err := template.New("elements").Funcs(template.FuncMap{
		"quote": quoteList,
	}).Parse(elementsTemplate)
	if err != nil {
		return nil, err
	}

	data := struct {
		Header  string
		Package string
		Table   *Table
	}{
		Header:  generatedHeader,
		Package: pkgName,
		Table:   table,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return buf.Bytes(), fmt.Errorf("format source: %w", err)
	}
	return formatted, nil
}

func quoteList(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = fmt.Sprintf("%q", n)
	}
	return strings.Join(quoted, ", ")
}

const elementsTemplate = `{{.Header}}

package {{.Package}}

var globalAttributes = []string{ {{quote .Table.Global}} }

var elementTable = []elementSpec{
{{- range .Table.Elements}}
	{Name: "{{.Name}}"{{if .Void}}, Void: true{{end}}{{if .Attributes}}, Attributes: []string{ {{quote .Attributes}} }{{end}}},
{{- end}}
}
{{range .Table.Elements}}{{if .HasConstructor}}
// {{.GoName}} creates a <{{.Name}}> element.
{{- if .Void}}
func {{.GoName}}() *Tag { return NewTag("{{.Name}}") }
{{- else}}
func {{.GoName}}(children ...any) *Tag { return NewTag("{{.Name}}").Push(children...) }
{{- end}}
{{end}}{{end}}`
