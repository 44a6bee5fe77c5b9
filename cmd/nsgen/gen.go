package main

import (
	"bytes"
	"fmt"
	"go/format"
	"regexp"
	"strings"
	"text/template"

	"nstravel/pkg/nsdata"
)

type genField struct {
	Name    string
	GoName  string
	GoType  string
	JSONTag string
	Doc     string
	Decode  string
}

type genSchema struct {
	Name   string
	Hook   bool
	Fields []genField
}

type genFile struct {
	Source    string
	Package   string
	NeedsTime bool
	Schemas   []genSchema
}

var fileTemplate = template.Must(template.New("file").Parse(`// Code generated by nsgen from {{.Source}}. DO NOT EDIT.

package {{.Package}}

import (
{{- if .NeedsTime}}
	"time"
{{end}}
	"nstravel/pkg/nsdata"
)
{{range .Schemas}}
// {{.Name}} mirrors the {{.Name}} record of the travel information API.
type {{.Name}} struct {
{{- range .Fields}}
{{- if .Doc}}
	// {{.Doc}}
{{- end}}
	{{.GoName}} {{.GoType}} ` + "`json:\"{{.JSONTag}}\"`" + `
{{- end}}
}

// Decode{{.Name}} maps a raw record onto {{.Name}}.
func Decode{{.Name}}(m map[string]any, opts ...nsdata.Option) ({{.Name}}, error) {
	return nsdata.Decode("{{.Name}}", m, decode{{.Name}}, opts...)
}

func decode{{.Name}}(d *nsdata.Decoder) {{.Name}} {
	var v {{.Name}}
{{- range .Fields}}
	v.{{.GoName}} = {{.Decode}}
{{- end}}
{{- if .Hook}}
	v.afterDecode(d)
{{- end}}
	return v
}
{{end}}`))

// Generate renders the Go records and decoders for a schema file. source
// is the file name quoted in the header.
func Generate(data []byte, source, pkg string) ([]byte, error) {
	f, err := nsdata.ParseSchemaFile(data)
	if err != nil {
		return nil, err
	}

	out := genFile{Source: source, Package: pkg}
	for _, spec := range f.Schemas {
		s := genSchema{Name: spec.Name, Hook: spec.Hook}
		for _, fs := range spec.Fields {
			t, err := nsdata.ParseType(fs.Type)
			if err != nil {
				return nil, fmt.Errorf("%s.%s: %w", spec.Name, fs.Name, err)
			}
			if usesTime(t) {
				out.NeedsTime = true
			}
			tag := fs.Name
			if t.IsOptional() {
				tag += ",omitempty"
			}
			s.Fields = append(s.Fields, genField{
				Name:    fs.Name,
				GoName:  GoName(fs.Name),
				GoType:  goType(t),
				JSONTag: tag,
				Doc:     strings.Join(strings.Fields(fs.Doc), " "),
				Decode:  decodeExpr(fs.Name, t),
			})
		}
		out.Schemas = append(out.Schemas, s)
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, out); err != nil {
		return nil, err
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting output: %w\n%s", err, buf.Bytes())
	}
	return src, nil
}

var initialism = regexp.MustCompile(`(Id|Url|Uri|Uic|Eva|Uid)($|[A-Z0-9])`)

// GoName exports a wire name and upper-cases the initialisms Go style
// expects, e.g. tripRequestId becomes TripRequestID. An initialism only
// counts at a word boundary, so Idx stays Idx.
func GoName(name string) string {
	if name == "" {
		return name
	}
	name = strings.ToUpper(name[:1]) + name[1:]
	for {
		loc := initialism.FindStringSubmatchIndex(name)
		if loc == nil {
			return name
		}
		name = name[:loc[2]] + strings.ToUpper(name[loc[2]:loc[3]]) + name[loc[3]:]
	}
}

// passThrough reports whether an optional t keeps its plain Go type, nil
// standing in for a missing value.
func passThrough(t nsdata.Type) bool {
	switch t.Kind() {
	case nsdata.KindList, nsdata.KindMap, nsdata.KindAny:
		return true
	}
	return false
}

func goType(t nsdata.Type) string {
	switch t.Kind() {
	case nsdata.KindOptional:
		if passThrough(t.Elem()) {
			return goType(t.Elem())
		}
		return "*" + goType(t.Elem())
	case nsdata.KindList:
		return "[]" + goType(t.Elem())
	case nsdata.KindMap:
		return "map[string]" + goType(t.Elem())
	case nsdata.KindRef:
		return t.RefName()
	case nsdata.KindString:
		return "string"
	case nsdata.KindInt:
		return "int"
	case nsdata.KindFloat:
		return "float64"
	case nsdata.KindBool:
		return "bool"
	case nsdata.KindDate, nsdata.KindDateTime:
		return "time.Time"
	default:
		return "any"
	}
}

func conv(t nsdata.Type) string {
	switch t.Kind() {
	case nsdata.KindList:
		return "nsdata.AsList(" + conv(t.Elem()) + ")"
	case nsdata.KindMap:
		return "nsdata.AsMap(" + conv(t.Elem()) + ")"
	case nsdata.KindRef:
		return fmt.Sprintf("nsdata.AsRecord(%q, decode%s)", t.RefName(), t.RefName())
	case nsdata.KindString:
		return "nsdata.AsString"
	case nsdata.KindInt:
		return "nsdata.AsInt"
	case nsdata.KindFloat:
		return "nsdata.AsFloat"
	case nsdata.KindBool:
		return "nsdata.AsBool"
	case nsdata.KindDate:
		return "nsdata.AsDate"
	case nsdata.KindDateTime:
		return "nsdata.AsDateTime"
	default:
		return "nsdata.AsAny"
	}
}

func decodeExpr(name string, t nsdata.Type) string {
	if !t.IsOptional() {
		return fmt.Sprintf("nsdata.Required(d, %q, %s)", name, conv(t))
	}
	if passThrough(t.Elem()) {
		return fmt.Sprintf("nsdata.OptValue(d, %q, %s)", name, conv(t.Elem()))
	}
	return fmt.Sprintf("nsdata.OptField(d, %q, %s)", name, conv(t.Elem()))
}

func usesTime(t nsdata.Type) bool {
	switch t.Kind() {
	case nsdata.KindDate, nsdata.KindDateTime:
		return true
	case nsdata.KindOptional, nsdata.KindList, nsdata.KindMap:
		return usesTime(t.Elem())
	}
	return false
}
