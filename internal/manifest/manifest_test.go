package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/reoring/namedtuple"
)

const peopleYAML = `package: people
imports: [time]
schemas:
  - name: Person
    doc: is one row of the people table.
    fields:
      - {key: name, type: string}
      - {key: born_at, type: time.Time}
      - {key: "2fa", type: bool, name: TwoFactor}
`

func TestParse_YAMLAndJSON(t *testing.T) {
	want := &File{
		Package: "people",
		Imports: []string{"time"},
		Schemas: []Schema{{
			Name: "Person",
			Doc:  "is one row of the people table.",
			Fields: []Field{
				{Key: "name", Type: "string"},
				{Key: "born_at", Type: "time.Time"},
				{Key: "2fa", Type: "bool", Name: "TwoFactor"},
			},
		}},
	}
	got, err := Parse([]byte(peopleYAML), FormatYAML)
	if err != nil {
		t.Fatalf("yaml: %v", err)
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Fatalf("yaml mismatch (-want +got):\n%s", d)
	}

	js := `{"package":"people","imports":["time"],"schemas":[{"name":"Person","doc":"is one row of the people table.",
	"fields":[{"key":"name","type":"string"},{"key":"born_at","type":"time.Time"},{"key":"2fa","type":"bool","name":"TwoFactor"}]}]}`
	got, err = Parse([]byte(js), FormatJSON)
	if err != nil {
		t.Fatalf("json: %v", err)
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Fatalf("json mismatch (-want +got):\n%s", d)
	}
}

func TestParse_UnknownFields(t *testing.T) {
	if _, err := Parse([]byte("package: p\nschemaz: []\n"), FormatYAML); err == nil {
		t.Fatalf("unknown yaml field must fail")
	}
	if _, err := Parse([]byte(`{"package":"p","extra":1}`), FormatJSON); err == nil {
		t.Fatalf("unknown json field must fail")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "people.yml")
	if err := os.WriteFile(p, []byte(peopleYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if f.Package != "people" || len(f.Schemas) != 1 {
		t.Fatalf("unexpected manifest %+v", f)
	}
	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatalf("missing file must fail")
	}
	if FormatFor("x.JSON") != FormatJSON || FormatFor("x.yaml") != FormatYAML {
		t.Fatalf("FormatFor by extension")
	}
}

func TestNamesOf(t *testing.T) {
	s := Schema{Name: "Person", Fields: []Field{
		{Key: "born_at"},
		{Key: "type"},
		{Key: "2fa"},
		{Key: "x", Name: "Horizontal"},
		{Key: "t"},
	}}
	want := Names{
		Alias:  "Person",
		Tag:    "personTag",
		Schema: "PersonSchema",
		Ctor:   "NewPerson",
		Fields: []string{"PersonBornAt", "PersonType", "PersonF2fa", "PersonHorizontal", "PersonT"},
		Params: []string{"bornAt", "type_", "f2fa", "horizontal", "t_"},
	}
	if d := cmp.Diff(want, NamesOf(s)); d != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", d)
	}
}

func codes(t *testing.T, err error) []string {
	t.Helper()
	iss, ok := namedtuple.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues, got %v", err)
	}
	return iss.Codes()
}

func TestValidate(t *testing.T) {
	good, err := Parse([]byte(peopleYAML), FormatYAML)
	if err != nil {
		t.Fatal(err)
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("valid manifest rejected: %v", err)
	}

	dup := &File{Package: "p", Schemas: []Schema{{Name: "P", Fields: []Field{
		{Key: "a", Type: "int"}, {Key: "b", Type: "int"}, {Key: "a", Type: "string"},
	}}}}
	err = dup.Validate()
	iss, _ := namedtuple.AsIssues(err)
	if len(iss) != 1 || iss[0].Code != namedtuple.CodeDuplicateKey || iss[0].Key != "P.a" || iss[0].Index != 2 {
		t.Fatalf("duplicate key not reported: %v", err)
	}

	cases := []struct {
		name string
		f    File
		want []string
	}{
		{"bad package", File{Package: "my-pkg", Schemas: []Schema{{Name: "A"}}}, []string{namedtuple.CodeInvalidKey}},
		{"no schemas", File{Package: "p"}, []string{namedtuple.CodeSizeMismatch}},
		{"bad schema name", File{Package: "p", Schemas: []Schema{{Name: "1A"}}}, []string{namedtuple.CodeInvalidKey}},
		{"empty key", File{Package: "p", Schemas: []Schema{{Name: "A", Fields: []Field{{Type: "int"}}}}}, []string{namedtuple.CodeInvalidKey}},
		{"bad type", File{Package: "p", Schemas: []Schema{{Name: "A", Fields: []Field{{Key: "a", Type: "map[int"}}}}}, []string{namedtuple.CodeInvalidType}},
		{"missing type", File{Package: "p", Schemas: []Schema{{Name: "A", Fields: []Field{{Key: "a"}}}}}, []string{namedtuple.CodeInvalidType}},
		{"duplicate schema", File{Package: "p", Schemas: []Schema{{Name: "A"}, {Name: "A"}}}, []string{namedtuple.CodeDuplicateKey}},
		{"generated collision", File{Package: "p", Schemas: []Schema{
			{Name: "A", Fields: []Field{{Key: "schema", Type: "int"}}},
		}}, []string{namedtuple.CodeDuplicateKey}},
	}
	for _, c := range cases {
		f := c.f
		if d := cmp.Diff(c.want, codes(t, f.Validate())); d != "" {
			t.Fatalf("%s: codes mismatch (-want +got):\n%s", c.name, d)
		}
	}
}

func TestIsType(t *testing.T) {
	for _, src := range []string{
		"int", "time.Time", "*big.Int", "[]string", "[4]byte", "map[string][]*time.Time",
		"chan<- int", "func(int) error", "struct{}", "interface{ String() string }",
		"list.List[int]", "pair.Of[string, int]", "(int)",
	} {
		if !isType(src) {
			t.Fatalf("%q must be accepted as a type", src)
		}
	}
	for _, src := range []string{
		"", " ", "1+2", "f()", `"s"`, "42", "a.b.c", "[...]int", "x[1]", "-x", "_", "func() {}",
	} {
		if isType(src) {
			t.Fatalf("%q must be rejected as a type", src)
		}
	}

	f := &File{Package: "p", Schemas: []Schema{{Name: "A", Fields: []Field{{Key: "a", Type: "1+2"}}}}}
	if d := cmp.Diff([]string{namedtuple.CodeInvalidType}, codes(t, f.Validate())); d != "" {
		t.Fatalf("expression type must be rejected (-want +got):\n%s", d)
	}
}

func TestValidate_CollisionMessage(t *testing.T) {
	f := &File{Package: "p", Schemas: []Schema{
		{Name: "A", Fields: []Field{{Key: "b", Type: "int"}}},
		{Name: "AB", Fields: []Field{{Key: "x", Type: "int"}}},
	}}
	err := f.Validate()
	if err == nil || !strings.Contains(err.Error(), "generated identifier AB collides with A.b") {
		t.Fatalf("expected collision between field var and alias, got %v", err)
	}
}
