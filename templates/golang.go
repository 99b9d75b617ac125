package templates

// GoFileTemplate renders a Go namespace of Resource values. The output is
// passed through go/format afterwards.
const GoFileTemplate = `// Code generated by xcgen from {{ .Source }}. DO NOT EDIT.

package {{ .Package }}

// Resource is a localized string: its catalog key, its default value and the
// arguments for the default value's format specifiers.
type Resource struct {
	Key          string
	DefaultValue string
	Args         []any
}

// {{ .Enum }} gives access to every string of {{ .Source }}.
var {{ .Enum }} = struct {
{{- range .Categories }}
	{{ .Name }} {{ .TypeName }}
{{- end }}
}{}
{{ range $c := .Categories }}
type {{ $c.TypeName }} struct{}
{{ range $m := $c.Members }}
{{- if $m.Comment }}
// {{ $m.Name }}: {{ $m.Comment }}
{{- if $m.Unused }}
//
{{- end }}
{{- end }}
{{- if $m.Unused }}
// Deprecated: {{ $.Enum }}.{{ $m.UsageID }} is unused.
{{- end }}
func ({{ $c.TypeName }}) {{ $m.Name }}({{ params ", " " " $m.Params }}) Resource {
	return Resource{
		Key:          {{ $m.KeyLiteral }},
		DefaultValue: {{ $m.Value }},
{{- if $m.Params }}
		Args:         []any{ {{- names $m.Params -}} },
{{- end }}
	}
}
{{ end }}
{{- end }}`
