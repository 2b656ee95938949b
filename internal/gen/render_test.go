package gen

import (
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/reoring/namedtuple/internal/manifest"
)

func sampleManifest() *manifest.File {
	return &manifest.File{
		Package: "people",
		Imports: []string{"time", "github.com/reoring/namedtuple", "time"},
		Schemas: []manifest.Schema{
			{
				Name: "Person",
				Doc:  "is one row of the people table.",
				Fields: []manifest.Field{
					{Key: "name", Type: "string"},
					{Key: "age", Type: "int"},
					{Key: "born_at", Type: "time.Time"},
					{Key: "type", Type: "string"},
				},
			},
			{Name: "Empty"},
		},
	}
}

func TestRenderFile_Manifest(t *testing.T) {
	out, err := RenderFile(FromManifest(sampleManifest(), "people.yaml"))
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	src := string(out)
	for _, want := range []string{
		"// Code generated by namedtuplegen from people.yaml. DO NOT EDIT.",
		"type personTag struct{}",
		"var PersonSchema = namedtuple.MustDeclare[personTag](",
		`namedtuple.Named[time.Time]("born_at"),`,
		`PersonBornAt = namedtuple.FieldOf[personTag, time.Time](PersonSchema, "born_at")`,
		"// Person is one row of the people table.",
		"type Person = namedtuple.Tuple[personTag]",
		"func NewPerson(name string, age int, bornAt time.Time, type_ string) *Person {",
		"namedtuple.Set(t, PersonType, type_)",
		"// Empty is a named tuple.",
		"func NewEmpty() *Empty {",
	} {
		if !strings.Contains(src, want) {
			t.Fatalf("output missing %q:\n%s", want, src)
		}
	}
	if strings.Count(src, `"time"`) != 1 {
		t.Fatalf("imports must be deduplicated:\n%s", src)
	}
	if strings.Count(src, `"github.com/reoring/namedtuple"`) != 1 {
		t.Fatalf("runtime import must appear once:\n%s", src)
	}
	if _, err := parser.ParseFile(token.NewFileSet(), "people_namedtuple.go", out, 0); err != nil {
		t.Fatalf("generated code does not parse: %v", err)
	}
}

func TestRenderFile_DefaultDoc(t *testing.T) {
	m := &manifest.File{Package: "p", Schemas: []manifest.Schema{{
		Name:   "Point",
		Fields: []manifest.Field{{Key: "x", Type: "float64"}, {Key: "y", Type: "float64"}},
	}}}
	out, err := RenderFile(FromManifest(m, ""))
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	src := string(out)
	if !strings.Contains(src, "// Point is a named tuple with keys x, y.") {
		t.Fatalf("default doc missing:\n%s", src)
	}
	if !strings.HasPrefix(src, "// Code generated by namedtuplegen. DO NOT EDIT.") {
		t.Fatalf("header without source:\n%s", src)
	}
}

func TestRenderFile_Errors(t *testing.T) {
	if _, err := RenderFile(File{}); err == nil {
		t.Fatalf("empty package must fail")
	}
	bad := File{Package: "p", Types: []TypeDef{{
		Names:  manifest.Names{Alias: "X", Tag: "xTag", Schema: "XSchema", Ctor: "NewX"},
		Fields: []FieldDef{{Key: "a", Type: "map[", Var: "XA", Param: "a"}},
	}}}
	if _, err := RenderFile(bad); err == nil || !strings.Contains(err.Error(), "format source") {
		t.Fatalf("invalid type must surface as a format error, got %v", err)
	}
}
