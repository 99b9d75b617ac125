// Package templates holds the text templates of the generated sources.
package templates

import (
	"strings"
	"text/template"
)

// File is the data passed to a target template
type File struct {
	// Source is the base name of the catalog the file was generated from
	Source     string
	Enum       string
	Package    string
	Categories []Category
}

// Category is one nested namespace of the generated enumeration
type Category struct {
	Name string
	// TypeName of the category struct, Go target only
	TypeName string
	Members  []Member
}

// Member is one catalog entry
type Member struct {
	Key string
	// KeyLiteral is Key as a target-language string literal
	KeyLiteral string
	Name       string
	// Value is the complete target-language literal of the default value
	Value   string
	Comment string
	Params  []Param
	Unused  bool
	// UsageID is the identifier as written after the enumeration name
	UsageID string
}

// Param is one typed format argument
type Param struct {
	Name string
	Type string
}

var funcMap = template.FuncMap{
	"params": func(sep, nameSep string, params []Param) string {
		parts := make([]string, len(params))
		for i, p := range params {
			parts[i] = p.Name + nameSep + p.Type
		}
		return strings.Join(parts, sep)
	},
	"names": func(params []Param) string {
		parts := make([]string, len(params))
		for i, p := range params {
			parts[i] = p.Name
		}
		return strings.Join(parts, ", ")
	},
}

// Swift returns the parsed Swift template
func Swift() (*template.Template, error) {
	return template.New("swift").Funcs(funcMap).Parse(SwiftFileTemplate)
}

// Go returns the parsed Go template
func Go() (*template.Template, error) {
	return template.New("go").Funcs(funcMap).Parse(GoFileTemplate)
}
