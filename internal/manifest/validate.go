package manifest

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
	"unicode"

	"github.com/reoring/namedtuple"
	"github.com/reoring/namedtuple/i18n"
)

// Names holds the Go identifiers generated for one schema.
type Names struct {
	Alias  string   // tuple type alias, e.g. Person
	Tag    string   // unexported tag type, e.g. personTag
	Schema string   // schema variable, e.g. PersonSchema
	Ctor   string   // constructor, e.g. NewPerson
	Fields []string // field handle variables, e.g. PersonName
	Params []string // constructor parameter names
}

// NamesOf derives the identifiers for s.
func NamesOf(s Schema) Names {
	n := Names{
		Alias:  s.Name,
		Tag:    lowerFirst(s.Name) + "Tag",
		Schema: s.Name + "Schema",
		Ctor:   "New" + upperFirst(s.Name),
	}
	for _, f := range s.Fields {
		goName := f.GoName()
		n.Fields = append(n.Fields, upperFirst(s.Name)+goName)
		p := lowerFirst(goName)
		if token.IsKeyword(p) || p == "t" || p == "namedtuple" {
			p += "_"
		}
		n.Params = append(n.Params, p)
	}
	return n
}

// GoName returns the identifier part derived from the key, or the explicit
// name when one is set.
func (f Field) GoName() string {
	if f.Name != "" {
		return f.Name
	}
	var b strings.Builder
	upper := true
	for _, r := range f.Key {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = true
			continue
		}
		if upper {
			b.WriteRune(unicode.ToUpper(r))
			upper = false
			continue
		}
		b.WriteRune(r)
	}
	s := b.String()
	if s != "" && unicode.IsDigit([]rune(s)[0]) {
		s = "F" + s
	}
	return s
}

// Validate checks the manifest. Duplicate keys within a schema are found by
// the same uniqueness check that guards namedtuple.Declare, so a manifest that
// validates always yields code whose schemas declare successfully.
func (f *File) Validate() error {
	var iss namedtuple.Issues
	if !token.IsIdentifier(f.Package) {
		iss = append(iss, invalidName("package", f.Package))
	}
	if len(f.Schemas) == 0 {
		iss = append(iss, namedtuple.Issue{Code: namedtuple.CodeSizeMismatch, Key: "schemas", Index: -1, Message: "manifest declares no schemas"})
	}

	names := make([]namedtuple.Key, len(f.Schemas))
	for i, s := range f.Schemas {
		names[i] = namedtuple.NewKey(s.Name)
	}
	iss = append(iss, prefixed("schemas", namedtuple.CheckKeys(names...))...)

	for _, s := range f.Schemas {
		iss = append(iss, validateSchema(s)...)
	}
	if len(iss) == 0 {
		iss = collisions(f.Schemas)
	}
	if len(iss) > 0 {
		return iss
	}
	return nil
}

func validateSchema(s Schema) namedtuple.Issues {
	var iss namedtuple.Issues
	if !token.IsIdentifier(s.Name) {
		iss = append(iss, invalidName("schema", s.Name))
	}
	keys := make([]namedtuple.Key, len(s.Fields))
	for j, fd := range s.Fields {
		keys[j] = namedtuple.NewKey(fd.Key)
		path := s.Name + "." + fd.Key
		if fd.Key == "" {
			iss = append(iss, namedtuple.Issue{
				Code:    namedtuple.CodeInvalidKey,
				Key:     s.Name,
				Index:   j,
				Message: i18n.T(namedtuple.CodeInvalidKey, map[string]string{"index": fmt.Sprint(j)}),
			})
		}
		if !isType(fd.Type) {
			iss = append(iss, namedtuple.Issue{
				Code:    namedtuple.CodeInvalidType,
				Key:     path,
				Index:   j,
				Message: fmt.Sprintf("%q is not a Go type expression", fd.Type),
			})
		}
		if fd.Key != "" && !token.IsIdentifier(fd.GoName()) {
			iss = append(iss, invalidName("field name", fd.GoName()))
		}
	}
	return append(iss, prefixed(s.Name, namedtuple.CheckKeys(keys...))...)
}

// isType reports whether src parses as a Go type expression.
func isType(src string) bool {
	if strings.TrimSpace(src) == "" {
		return false
	}
	e, err := parser.ParseExpr(src)
	return err == nil && typeExpr(e)
}

func typeExpr(e ast.Expr) bool {
	switch x := e.(type) {
	case *ast.Ident:
		return x.Name != "_"
	case *ast.SelectorExpr:
		_, ok := x.X.(*ast.Ident)
		return ok
	case *ast.ParenExpr:
		return typeExpr(x.X)
	case *ast.StarExpr:
		return typeExpr(x.X)
	case *ast.ArrayType:
		if _, ok := x.Len.(*ast.Ellipsis); ok {
			return false
		}
		return typeExpr(x.Elt)
	case *ast.MapType:
		return typeExpr(x.Key) && typeExpr(x.Value)
	case *ast.ChanType:
		return typeExpr(x.Value)
	case *ast.FuncType, *ast.StructType, *ast.InterfaceType:
		return true
	case *ast.IndexExpr:
		return typeExpr(x.X) && typeExpr(x.Index)
	case *ast.IndexListExpr:
		if !typeExpr(x.X) {
			return false
		}
		for _, ix := range x.Indices {
			if !typeExpr(ix) {
				return false
			}
		}
		return true
	}
	return false
}

// collisions reports generated identifiers declared more than once across the
// whole file. It only runs on manifests that are otherwise valid.
func collisions(schemas []Schema) namedtuple.Issues {
	owner := map[string]string{}
	var iss namedtuple.Issues
	add := func(ident, from string) {
		if prev, ok := owner[ident]; ok {
			iss = append(iss, namedtuple.Issue{
				Code:    namedtuple.CodeDuplicateKey,
				Key:     from,
				Index:   -1,
				Message: fmt.Sprintf("generated identifier %s collides with %s", ident, prev),
			})
			return
		}
		owner[ident] = from
	}
	for _, s := range schemas {
		n := NamesOf(s)
		add(n.Alias, s.Name)
		add(n.Tag, s.Name)
		add(n.Schema, s.Name)
		add(n.Ctor, s.Name)
		for j, fv := range n.Fields {
			add(fv, s.Name+"."+s.Fields[j].Key)
		}
	}
	return iss
}

func prefixed(prefix string, err error) namedtuple.Issues {
	got, ok := namedtuple.AsIssues(err)
	if !ok {
		return nil
	}
	out := make(namedtuple.Issues, len(got))
	for i, it := range got {
		it.Key = prefix + "." + it.Key
		out[i] = it
	}
	return out
}

func invalidName(what, name string) namedtuple.Issue {
	return namedtuple.Issue{
		Code:    namedtuple.CodeInvalidKey,
		Key:     what,
		Index:   -1,
		Message: fmt.Sprintf("%s %q is not a Go identifier", what, name),
	}
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
