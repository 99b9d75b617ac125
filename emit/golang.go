package emit

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/iancoleman/strcase"
	"github.com/rs/zerolog"

	"github.com/napalu/xcgen/errs"
	"github.com/napalu/xcgen/placeholder"
	"github.com/napalu/xcgen/templates"
)

// DefaultPackage is the package name of generated Go files when none is configured
const DefaultPackage = "l10n"

var goTypes = map[placeholder.Kind]string{
	placeholder.Integer:         "int",
	placeholder.UnsignedInteger: "uint",
	placeholder.FloatingPoint:   "float64",
	placeholder.Text:            "string",
	placeholder.SingleCharacter: "rune",
	placeholder.WideInteger:     "int64",
	placeholder.Unknown:         "any",
}

// GoType returns the Go parameter type of kind
func GoType(kind placeholder.Kind) string {
	if t, ok := goTypes[kind]; ok {
		return t
	}
	return goTypes[placeholder.Unknown]
}

// GoTarget emits a Go namespace whose methods return Resource values
type GoTarget struct {
	Logger zerolog.Logger
}

func (*GoTarget) Name() string          { return "go" }
func (*GoTarget) Extension() string     { return ".go" }
func (*GoTarget) DefaultOutput() string { return "l10n/strings_generated.go" }

// MemberName returns the exported Go name of a normalized key
func (*GoTarget) MemberName(normalized string) string {
	if isASCII(normalized) {
		return strcase.ToCamel(normalized)
	}
	r, size := utf8.DecodeRuneInString(normalized)
	return string(unicode.ToUpper(r)) + normalized[size:]
}

func (t *GoTarget) Render(doc *Document) ([]byte, error) {
	tmpl, err := templates.Go()
	if err != nil {
		return nil, errs.ErrRender.WithArgs(t.Name()).Wrap(err)
	}

	pkg := doc.Package
	if pkg == "" {
		pkg = DefaultPackage
	}
	data := templates.File{
		Source:  doc.Source,
		Enum:    doc.Enum,
		Package: pkg,
	}
	for _, c := range doc.Categories {
		category := templates.Category{
			Name:     c.Name,
			TypeName: lowerFirst(doc.Enum) + c.Name,
		}
		for _, e := range c.Entries {
			m := templates.Member{
				Key:        e.Key,
				KeyLiteral: strconv.Quote(e.Key),
				Name:       e.Member,
				Value:      strconv.Quote(e.Value),
				Comment:    SanitizeComment(e.Comment),
				Unused:     e.Unused,
				UsageID:    UsageID(c.Name, e.Member),
			}
			for i, kind := range e.Spec {
				m.Params = append(m.Params, templates.Param{
					Name: fmt.Sprintf("p%d", i),
					Type: GoType(kind),
				})
			}
			category.Members = append(category.Members, m)
		}
		data.Categories = append(data.Categories, category)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, errs.ErrRender.WithArgs(t.Name()).Wrap(err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		t.Logger.Warn().Err(err).Msg("failed to format generated Go source, writing it unformatted")
		return buf.Bytes(), nil
	}

	return formatted, nil
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
