// Package gen renders Go source for named tuple schemas. This package is
// internal and not part of the public API.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"
	"strconv"
	"text/template"

	"github.com/reoring/namedtuple/internal/manifest"
)

// ImportPath is the import path of the runtime package used by generated code.
const ImportPath = "github.com/reoring/namedtuple"

// File is one generated Go file.
type File struct {
	Package string
	Source  string // manifest path, recorded in the header
	Imports []string
	Types   []TypeDef
}

// TypeDef is one tuple type to emit.
type TypeDef struct {
	manifest.Names
	Doc    string
	Fields []FieldDef
}

// FieldDef is one field of a TypeDef.
type FieldDef struct {
	Key   string
	Type  string
	Var   string
	Param string
}

// FromManifest converts a validated manifest into a File.
func FromManifest(m *manifest.File, source string) File {
	f := File{Package: m.Package, Source: source}
	seen := map[string]bool{}
	for _, imp := range m.Imports {
		if !seen[imp] && imp != ImportPath {
			seen[imp] = true
			f.Imports = append(f.Imports, imp)
		}
	}
	sort.Strings(f.Imports)
	for _, s := range m.Schemas {
		n := manifest.NamesOf(s)
		td := TypeDef{Names: n, Doc: s.Doc}
		for i, fd := range s.Fields {
			td.Fields = append(td.Fields, FieldDef{Key: fd.Key, Type: fd.Type, Var: n.Fields[i], Param: n.Params[i]})
		}
		f.Types = append(f.Types, td)
	}
	return f
}

var fileTmpl = template.Must(template.New("file").Funcs(template.FuncMap{
	"quote": strconv.Quote,
	"keys": func(fs []FieldDef) string {
		var b bytes.Buffer
		for i, f := range fs {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(f.Key)
		}
		return b.String()
	},
}).Parse(`// Code generated by namedtuplegen{{with .Source}} from {{.}}{{end}}. DO NOT EDIT.

package {{.Package}}

import (
{{- range .Imports}}
	{{quote .}}
{{- end}}

	"github.com/reoring/namedtuple"
)
{{range .Types}}
type {{.Tag}} struct{}

// {{.Schema}} is the schema of {{.Alias}}.
var {{.Schema}} = namedtuple.MustDeclare[{{.Tag}}](
{{- range .Fields}}
	namedtuple.Named[{{.Type}}]({{quote .Key}}),
{{- end}}
)
{{if .Fields}}
// Fields of {{.Alias}}.
var (
{{- $t := .}}
{{- range .Fields}}
	{{.Var}} = namedtuple.FieldOf[{{$t.Tag}}, {{.Type}}]({{$t.Schema}}, {{quote .Key}})
{{- end}}
)
{{end}}
{{- if .Doc}}
// {{.Alias}} {{.Doc}}
{{- else}}
// {{.Alias}} is a named tuple{{if .Fields}} with keys {{keys .Fields}}{{end}}.
{{- end}}
type {{.Alias}} = namedtuple.Tuple[{{.Tag}}]

// {{.Ctor}} returns a {{.Alias}} holding the given values.
func {{.Ctor}}({{range $i, $f := .Fields}}{{if $i}}, {{end}}{{$f.Param}} {{$f.Type}}{{end}}) *{{.Alias}} {
	t := {{.Schema}}.New()
{{- range .Fields}}
	namedtuple.Set(t, {{.Var}}, {{.Param}})
{{- end}}
	return t
}
{{end}}`))

// RenderFile renders f and formats the result with gofmt rules.
func RenderFile(f File) ([]byte, error) {
	if f.Package == "" {
		return nil, fmt.Errorf("gen: package name required")
	}
	var buf bytes.Buffer
	if err := fileTmpl.Execute(&buf, f); err != nil {
		return nil, fmt.Errorf("gen: execute template: %w", err)
	}
	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("gen: format source: %w\n%s", err, buf.Bytes())
	}
	return out, nil
}
